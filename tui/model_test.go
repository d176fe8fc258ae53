package tui

import (
	"errors"
	"testing"

	"github.com/young1lin/derin-layout/internal/config"
	"github.com/young1lin/derin-layout/internal/store"
)

// fakeRecorder records snapshots in memory
type fakeRecorder struct {
	saved []store.Snapshot
	err   error
}

func (r *fakeRecorder) SaveSnapshot(s store.Snapshot) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.saved = append(r.saved, s)
	return int64(len(r.saved)), nil
}

func TestNewModel(t *testing.T) {
	model := NewModel(config.DefaultConfig(), "layout.yaml")

	if model.cfg == nil {
		t.Fatal("NewModel() should keep the config")
	}
	if model.engine == nil {
		t.Error("NewModel() should create an engine for the config")
	}
	if model.cache == nil {
		t.Error("NewModel() should create an update cache")
	}
	if model.ready {
		t.Error("NewModel() should not be ready before the first solve")
	}
	if model.showTracks {
		t.Error("NewModel() should hide the track table by default")
	}
	if model.Init() != nil {
		t.Error("Init() should return nil")
	}
}

func TestNewModelWithoutConfig(t *testing.T) {
	model := NewModel(nil, "")

	if model.engine != nil {
		t.Error("NewModel(nil) should not create an engine")
	}
	if cmd := model.solve(); cmd != nil {
		t.Error("solve() without a config should do nothing")
	}
}

func TestModelOptions(t *testing.T) {
	rec := &fakeRecorder{}
	model := NewModel(config.DefaultConfig(), "", WithRecorder(rec, "1.2.3"), WithTracks())

	if model.recorder != rec {
		t.Error("WithRecorder() should set the recorder")
	}
	if model.engineVersion != "1.2.3" {
		t.Errorf("engineVersion = %q, want 1.2.3", model.engineVersion)
	}
	if !model.showTracks {
		t.Error("WithTracks() should show the track table")
	}
}

func TestDefaultStyles(t *testing.T) {
	styles := DefaultStyles()

	if styles.Border.GetBorderStyle().Top == "" {
		t.Error("Border style should have a border")
	}
	if !styles.Title.GetBold() {
		t.Error("Title style should be bold")
	}
	if !styles.Error.GetBold() {
		t.Error("Error style should be bold")
	}
}

func TestSolveRecordsSnapshot(t *testing.T) {
	rec := &fakeRecorder{}
	model := NewModel(config.DefaultConfig(), "", WithRecorder(rec, "1.0.0"))
	model.width, model.height = 202, 64

	cmd := model.solve()
	if cmd == nil {
		t.Fatal("solve() with a recorder should return a command")
	}
	msg := cmd()
	saved, ok := msg.(SnapshotSavedMsg)
	if !ok {
		t.Fatalf("command returned %T, want SnapshotSavedMsg", msg)
	}
	if saved.ID != 1 || len(rec.saved) != 1 {
		t.Fatalf("expected one saved snapshot, got id %d and %d saved", saved.ID, len(rec.saved))
	}

	s := rec.saved[0]
	if s.Name != "sample" || s.EngineVersion != "1.0.0" {
		t.Errorf("snapshot = %q %q", s.Name, s.EngineVersion)
	}
	if s.Width != 200 || s.Height != 60 {
		t.Errorf("snapshot size = %dx%d, want 200x60", s.Width, s.Height)
	}
	if len(s.Cols) != 2 || s.Cols[0] != 110 || s.Cols[1] != 90 {
		t.Errorf("snapshot columns = %v, want [110 90]", s.Cols)
	}
}

func TestSolveRecorderError(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	model := NewModel(config.DefaultConfig(), "", WithRecorder(rec, "1.0.0"))
	model.width, model.height = 100, 20

	msg := model.solve()()
	errMsg, ok := msg.(ErrorMsg)
	if !ok {
		t.Fatalf("command returned %T, want ErrorMsg", msg)
	}
	if !errors.Is(errMsg.Err, rec.err) {
		t.Errorf("ErrorMsg.Err = %v, should wrap %v", errMsg.Err, rec.err)
	}
}
