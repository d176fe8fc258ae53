package main

import (
	"fmt"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/derin-layout/internal/config"
	"github.com/young1lin/derin-layout/internal/store"
	"github.com/young1lin/derin-layout/internal/version"
	"github.com/young1lin/derin-layout/internal/watch"
	"github.com/young1lin/derin-layout/tui"
)

// ProgramSender is an interface for sending messages to a Bubbletea program
type ProgramSender interface {
	Send(msg tea.Msg)
}

// AppDependencies contains the dependencies for the main application
type AppDependencies struct {
	LayoutPath     string // Explicit document; empty searches the project and global paths
	ProjectDir     string
	Record         bool
	ShowTracks     bool
	DBOpener       func(string) (*store.DB, error)
	SnapshotDBPath func() string
	WatcherCreator func(string) (watch.WatcherInterface, error)
	ProgramRunner  func(*tea.Program) error
	Stat           func(string) (fs.FileInfo, error)
}

func run(deps *AppDependencies) error {
	path := findLayout(deps)

	// Load the document, or the built-in sample when there is none
	cfg := config.DefaultConfig()
	if path != "" {
		var err error
		cfg, err = config.LoadFile(path)
		if err != nil {
			return fmt.Errorf("failed to load layout: %w", err)
		}
	}

	var opts []tui.Option
	if deps.ShowTracks {
		opts = append(opts, tui.WithTracks())
	}

	if deps.Record {
		// Get database path
		dbPath := deps.SnapshotDBPath
		if dbPath == nil {
			dbPath = config.SnapshotDBPath
		}

		// Open database
		db, err := deps.DBOpener(dbPath())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		opts = append(opts, tui.WithRecorder(db, version.Version))
	}

	// Create TUI model
	model := tui.NewModel(cfg, path, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Nothing to watch for the built-in sample
	if path != "" {
		watcher, err := deps.WatcherCreator(path)
		if err != nil {
			return fmt.Errorf("failed to start file watcher: %w", err)
		}
		defer watcher.Close()

		go runWatchLoop(p, watcher, path)
	}

	// Run the program
	return deps.ProgramRunner(p)
}

// findLayout returns the explicit document if one was given, otherwise the
// first existing project or global document. It returns "" when none exists.
func findLayout(deps *AppDependencies) string {
	if deps.LayoutPath != "" {
		return deps.LayoutPath
	}

	// Use injected Stat or default to os.Stat
	statFn := deps.Stat
	if statFn == nil {
		statFn = os.Stat
	}

	candidates := []string{config.ProjectLayoutPath(deps.ProjectDir), config.GlobalLayoutPath()}
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if info, err := statFn(c); err == nil && !info.IsDir() {
			return c
		}
	}
	return ""
}

// runWatchLoop reloads the document whenever the watcher reports a change
// and hands it to the program. A document that fails to load is reported and
// the previous layout stays on screen.
func runWatchLoop(sender ProgramSender, watcher watch.WatcherInterface, path string) {
	sender.Send(tui.WatcherStartedMsg{})

	for {
		select {
		case _, ok := <-watcher.Changes():
			if !ok {
				return
			}
			cfg, err := config.LoadFile(path)
			if err != nil {
				sender.Send(tui.ErrorMsg{Err: err})
				continue
			}
			sender.Send(tui.LayoutLoadedMsg{Config: cfg, Path: path})

		case err, ok := <-watcher.Errors():
			if !ok {
				return
			}
			sender.Send(tui.WatcherFailedMsg{Err: fmt.Errorf("watcher error: %w", err)})
			return
		}
	}
}
