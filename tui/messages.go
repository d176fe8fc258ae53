package tui

import "github.com/young1lin/derin-layout/internal/config"

// LayoutLoadedMsg is sent when a layout document was (re)loaded
type LayoutLoadedMsg struct {
	Config *config.Config
	Path   string
}

// ErrorMsg is sent when an error occurs
type ErrorMsg struct {
	Err error
}

// WatcherStartedMsg is sent when the file watcher starts
type WatcherStartedMsg struct{}

// WatcherFailedMsg is sent when the file watcher fails
type WatcherFailedMsg struct {
	Err error
}

// SnapshotSavedMsg is sent after a solved layout was recorded
type SnapshotSavedMsg struct {
	ID int64
}
