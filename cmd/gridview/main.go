// Command gridview previews a layout document in the terminal and re-solves
// it whenever the document is saved.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/derin-layout/internal/grid"
	"github.com/young1lin/derin-layout/internal/store"
	"github.com/young1lin/derin-layout/internal/watch"
)

// exitFunc is the function to call for exiting (can be mocked for testing)
var exitFunc = os.Exit

// debugLog receives solver logs with -v, since the screen belongs to the TUI.
const debugLog = "gridview-debug.log"

func main() {
	verbose := flag.Bool("v", false, "log solver details to "+debugLog)
	record := flag.Bool("record", false, "record a snapshot of every solve")
	tracks := flag.Bool("tracks", false, "show the track table")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gridview [flags] [layout.yaml]\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *verbose {
		f, err := tea.LogToFile(debugLog, "gridview")
		if err != nil {
			logAndExit(err)
			return
		}
		defer f.Close()
		grid.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cwd, err := os.Getwd()
	if err != nil {
		logAndExit(err)
		return
	}

	if err := run(&AppDependencies{
		LayoutPath: flag.Arg(0),
		ProjectDir: cwd,
		Record:     *record,
		ShowTracks: *tracks,
		DBOpener:   store.Open,
		WatcherCreator: func(path string) (watch.WatcherInterface, error) {
			return watch.NewWatcher(path)
		},
		ProgramRunner: func(p *tea.Program) error {
			_, err := p.Run()
			return err
		},
	}); err != nil {
		logAndExit(err)
	}
}

func logAndExit(err error) {
	// This is a separate function to allow testing of error handling
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitFunc(1)
	}
}
