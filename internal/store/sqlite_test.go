package store

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/young1lin/derin-layout/internal/grid"
)

func openTempDB(t *testing.T) *DB {
	t.Helper()
	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })
	tmpFile.Close()

	db, err := Open(tmpFile.Name())
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleSnapshot(name string, ts time.Time) Snapshot {
	return Snapshot{
		Name:          name,
		Timestamp:     ts,
		EngineVersion: "1.2.0",
		Width:         200,
		Height:        60,
		Cols:          []int{110, 90},
		Rows:          []int{60},
		Widgets: []WidgetResult{
			{Name: "left", Rect: grid.Rect{Width: 110, Height: 60}},
			{Name: "right", Rect: grid.Rect{X: 110, Width: 90, Height: 60}},
			{Name: "broken", Err: "widget 2: cell out of bounds"},
		},
	}
}

func TestOpen(t *testing.T) {
	db := openTempDB(t)

	// Verify tables were created
	var tableName string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'").Scan(&tableName)
	if err != nil {
		t.Errorf("Snapshots table was not created: %v", err)
	}
}

func TestOpenInvalidPath(t *testing.T) {
	// Try to open with an invalid path
	_, err := Open("/invalid/path/that/cannot/be/created/test.db")
	if err == nil {
		t.Error("Expected error when opening invalid path, got nil")
	}
}

func TestSaveSnapshot(t *testing.T) {
	db := openTempDB(t)

	want := sampleSnapshot("sample", time.Now())
	id, err := db.SaveSnapshot(want)
	if err != nil {
		t.Fatalf("Failed to save snapshot: %v", err)
	}
	if id == 0 {
		t.Error("Expected a non-zero snapshot id")
	}

	got, err := db.LatestSnapshot("sample")
	if err != nil {
		t.Fatalf("Failed to get saved snapshot: %v", err)
	}
	if got == nil {
		t.Fatal("Expected a snapshot, got nil")
	}

	if got.ID != id {
		t.Errorf("Expected ID %d, got %d", id, got.ID)
	}
	if got.EngineVersion != "1.2.0" {
		t.Errorf("Expected EngineVersion 1.2.0, got %s", got.EngineVersion)
	}
	if !got.Timestamp.Equal(want.Timestamp) {
		t.Errorf("Expected Timestamp %v, got %v", want.Timestamp, got.Timestamp)
	}
	if diffs := got.Diff(&want); len(diffs) != 0 {
		t.Errorf("Loaded snapshot differs from saved one: %v", diffs)
	}
}

func TestSaveSnapshotDefaultsTimestamp(t *testing.T) {
	db := openTempDB(t)

	before := time.Now()
	if _, err := db.SaveSnapshot(sampleSnapshot("sample", time.Time{})); err != nil {
		t.Fatalf("Failed to save snapshot: %v", err)
	}
	got, err := db.LatestSnapshot("sample")
	if err != nil || got == nil {
		t.Fatalf("Failed to get saved snapshot: %v", err)
	}
	if got.Timestamp.Before(before) {
		t.Errorf("Expected Timestamp after %v, got %v", before, got.Timestamp)
	}
}

func TestLatestSnapshot(t *testing.T) {
	db := openTempDB(t)

	now := time.Now()
	older := sampleSnapshot("sample", now.Add(-time.Hour))
	newer := sampleSnapshot("sample", now)
	newer.Cols = []int{100, 100}
	other := sampleSnapshot("other", now.Add(time.Hour))

	for _, s := range []Snapshot{older, newer, other} {
		if _, err := db.SaveSnapshot(s); err != nil {
			t.Fatalf("Failed to save snapshot: %v", err)
		}
	}

	got, err := db.LatestSnapshot("sample")
	if err != nil {
		t.Fatalf("Failed to get latest snapshot: %v", err)
	}
	if got == nil || got.Cols[0] != 100 {
		t.Errorf("Expected the newer sample snapshot, got %+v", got)
	}
}

func TestLatestSnapshotNotFound(t *testing.T) {
	db := openTempDB(t)

	got, err := db.LatestSnapshot("missing")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil for a missing layout, got %+v", got)
	}
}

func TestRecentSnapshots(t *testing.T) {
	db := openTempDB(t)

	now := time.Now()
	for i := 1; i <= 5; i++ {
		s := sampleSnapshot(fmt.Sprintf("layout-%d", i), now.Add(time.Duration(i)*time.Minute))
		if _, err := db.SaveSnapshot(s); err != nil {
			t.Fatalf("Failed to save snapshot: %v", err)
		}
	}

	recent, err := db.RecentSnapshots(3)
	if err != nil {
		t.Fatalf("Failed to get recent snapshots: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 snapshots, got %d", len(recent))
	}
	if recent[0].Name != "layout-5" {
		t.Errorf("Expected first snapshot to be layout-5, got %s", recent[0].Name)
	}
	if recent[2].Name != "layout-3" {
		t.Errorf("Expected last snapshot to be layout-3, got %s", recent[2].Name)
	}
}

func TestDeleteSnapshot(t *testing.T) {
	db := openTempDB(t)

	id, err := db.SaveSnapshot(sampleSnapshot("sample", time.Now()))
	if err != nil {
		t.Fatalf("Failed to save snapshot: %v", err)
	}
	if err := db.DeleteSnapshot(id); err != nil {
		t.Fatalf("Failed to delete snapshot: %v", err)
	}

	got, err := db.LatestSnapshot("sample")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != nil {
		t.Error("Expected snapshot to be deleted")
	}
}
