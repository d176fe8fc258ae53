package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/derin-layout/internal/config"
	"github.com/young1lin/derin-layout/internal/grid"
)

func sized(t *testing.T, m Model, w, h int) Model {
	t.Helper()
	result, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return result.(Model)
}

func TestHandleKeyMsgQuit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := NewModel(config.DefaultConfig(), "")
			result, cmd := model.handleKeyMsg(tt.msg)

			newModel, ok := result.(Model)
			if !ok {
				t.Fatal("handleKeyMsg() should return a Model")
			}
			if !newModel.quitting {
				t.Errorf("handleKeyMsg(%s).quitting should be true", tt.name)
			}
			if cmd == nil {
				t.Errorf("handleKeyMsg(%s) should return tea.Quit cmd", tt.name)
			}
		})
	}
}

func TestHandleKeyMsgUnknown(t *testing.T) {
	model := NewModel(config.DefaultConfig(), "")
	result, cmd := model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	if result.(Model).quitting {
		t.Error("Unknown key should not quit")
	}
	if cmd != nil {
		t.Error("Unknown key should return nil cmd")
	}
}

func TestWindowSizeSolves(t *testing.T) {
	model := sized(t, NewModel(config.DefaultConfig(), ""), 202, 64)

	if !model.ready {
		t.Fatal("WindowSizeMsg should solve and make the model ready")
	}
	if got := model.engine.DesiredSize; got != (grid.Dims{Width: 200, Height: 60}) {
		t.Errorf("DesiredSize = %+v, want 200x60", got)
	}

	names, results := model.Results()
	want := []grid.Rect{
		{X: 0, Y: 0, Width: 110, Height: 60},
		{X: 110, Y: 0, Width: 90, Height: 60},
	}
	if len(results) != len(want) || len(names) != len(want) {
		t.Fatalf("Results() = %v, %v", names, results)
	}
	for i := range want {
		if results[i].Rect != want[i] {
			t.Errorf("%s = %v, want %v", names[i], results[i].Rect, want[i])
		}
	}
}

func TestWindowResizeResolves(t *testing.T) {
	model := sized(t, NewModel(config.DefaultConfig(), ""), 202, 64)
	model = sized(t, model, 102, 24)

	_, results := model.Results()
	// 100 wide: minimums 50 and 30 plus 10 each
	if results[0].Rect.Width != 60 || results[1].Rect.Width != 40 {
		t.Errorf("widths after resize = %d, %d, want 60, 40", results[0].Rect.Width, results[1].Rect.Width)
	}
	if model.solves != 2 {
		t.Errorf("solves = %d, want 2", model.solves)
	}
}

func TestTinyWindow(t *testing.T) {
	model := sized(t, NewModel(config.DefaultConfig(), ""), 1, 1)

	if got := model.engine.DesiredSize; got != (grid.Dims{}) {
		t.Errorf("DesiredSize = %+v, want 0x0", got)
	}
	// The minimums still apply
	if got := model.engine.ActualSize(); got.Width != 80 {
		t.Errorf("ActualSize().Width = %d, want 80", got.Width)
	}
}

func TestToggleTracksShrinksCanvas(t *testing.T) {
	model := sized(t, NewModel(config.DefaultConfig(), ""), 202, 64)

	result, _ := model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	model = result.(Model)
	if !model.showTracks {
		t.Fatal("'t' should show the track table")
	}
	// Header line plus two columns and one row
	if got := model.engine.DesiredSize.Height; got != 56 {
		t.Errorf("canvas height with tracks = %d, want 56", got)
	}

	result, _ = model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	if result.(Model).showTracks {
		t.Error("second 't' should hide the track table")
	}
}

func TestResolveKeyStartsFresh(t *testing.T) {
	model := sized(t, NewModel(config.DefaultConfig(), ""), 202, 64)
	before := model.engine

	result, _ := model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	model = result.(Model)

	if model.engine == before {
		t.Error("'r' should replace the engine")
	}
	_, results := model.Results()
	if results[0].Rect.Width != 110 {
		t.Errorf("re-solve width = %d, want 110", results[0].Rect.Width)
	}
}

func TestLayoutLoaded(t *testing.T) {
	model := sized(t, NewModel(nil, ""), 102, 24)
	if model.ready {
		t.Fatal("model without a layout should not be ready")
	}

	cfg := config.DefaultConfig()
	cfg.Name = "reloaded"
	cfg.Display.Hide = []string{"right"}
	result, _ := model.Update(LayoutLoadedMsg{Config: cfg, Path: "/tmp/layout.yaml"})
	model = result.(Model)

	if !model.ready {
		t.Error("LayoutLoadedMsg should solve once the size is known")
	}
	if model.path != "/tmp/layout.yaml" {
		t.Errorf("path = %q", model.path)
	}
	names, _ := model.Results()
	if len(names) != 1 || names[0] != "left" {
		t.Errorf("names = %v, want [left]", names)
	}
}

func TestLayoutLoadedClearsError(t *testing.T) {
	model := NewModel(config.DefaultConfig(), "")
	model.err = errors.New("bad yaml")

	result, _ := model.Update(LayoutLoadedMsg{Config: config.DefaultConfig()})
	if result.(Model).err != nil {
		t.Error("LayoutLoadedMsg should clear the error")
	}
}

func TestStatusMessages(t *testing.T) {
	model := NewModel(config.DefaultConfig(), "")

	result, _ := model.Update(WatcherStartedMsg{})
	model = result.(Model)
	if !model.watching {
		t.Error("WatcherStartedMsg should set watching")
	}

	result, _ = model.Update(SnapshotSavedMsg{ID: 7})
	model = result.(Model)
	if model.lastSaved != 7 {
		t.Errorf("lastSaved = %d, want 7", model.lastSaved)
	}

	testErr := errors.New("watcher died")
	result, _ = model.Update(WatcherFailedMsg{Err: testErr})
	model = result.(Model)
	if model.watching {
		t.Error("WatcherFailedMsg should clear watching")
	}
	if model.err != testErr {
		t.Errorf("err = %v, want %v", model.err, testErr)
	}

	result, _ = model.Update(ErrorMsg{Err: errors.New("other")})
	if result.(Model).err == nil {
		t.Error("ErrorMsg should set the error")
	}
}

func TestUpdateUnknownMessage(t *testing.T) {
	model := NewModel(config.DefaultConfig(), "")
	_, cmd := model.Update("unknown")
	if cmd != nil {
		t.Error("Update() with unknown message should return nil cmd")
	}
}
