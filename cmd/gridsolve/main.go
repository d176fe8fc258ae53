// Command gridsolve solves a layout document once and prints where every
// widget goes. It can record the result as a snapshot and check later solves
// against it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/young1lin/derin-layout/internal/config"
	"github.com/young1lin/derin-layout/internal/grid"
	"github.com/young1lin/derin-layout/internal/render"
	"github.com/young1lin/derin-layout/internal/store"
	"github.com/young1lin/derin-layout/internal/version"
)

// Exit codes
const (
	exitOK    = 0
	exitFail  = 1 // Error, or a difference from the snapshot
	exitUsage = 2
)

// errNoSnapshot is returned by -check when nothing was recorded yet.
var errNoSnapshot = errors.New("no snapshot recorded")

func main() {
	// Initialize Windows console for UTF-8 and ANSI support
	initConsole()

	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// options are the parsed command line flags.
type options struct {
	verbose bool
	record  string
	check   string
	size    string
	draw    bool
	tracks  bool
	version bool
	file    string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	var opts options
	fs := flag.NewFlagSet("gridsolve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.verbose, "v", false, "log solver details to stderr")
	fs.StringVar(&opts.record, "record", "", "store a snapshot of the result in `db`")
	fs.StringVar(&opts.check, "check", "", "compare the result with the latest snapshot in `db`")
	fs.StringVar(&opts.size, "size", "", "solve at `WxH` instead of the document size")
	fs.BoolVar(&opts.draw, "draw", false, "draw the widgets as boxes")
	fs.BoolVar(&opts.tracks, "tracks", false, "print the resolved columns and rows")
	fs.BoolVar(&opts.version, "version", false, "print the version and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: gridsolve [flags] [layout.yaml]\n\nReads the document from stdin when no file is given.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return nil, fmt.Errorf("expected at most one layout file, got %d", fs.NArg())
	}
	opts.file = fs.Arg(0)
	return &opts, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return exitUsage
	}
	if opts.version {
		fmt.Fprintf(stdout, "gridsolve %s\n", version.String())
		return exitOK
	}

	if opts.verbose {
		grid.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer grid.SetLogger(nil)
	}

	if err := solve(opts, stdin, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFail
	}
	return exitOK
}

func solve(opts *options, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(opts.file, stdin)
	if err != nil {
		return err
	}

	e := cfg.Engine()
	if opts.size != "" {
		size, err := parseSize(opts.size)
		if err != nil {
			return err
		}
		e.DesiredSize = size
	}

	names, hints := cfg.Hints()
	results := make([]grid.SolveResult, len(hints))
	if err := e.UpdateEngine(hints, results, nil); err != nil {
		return fmt.Errorf("failed to solve layout: %w", err)
	}

	fmt.Fprint(stdout, render.ResultTable(names, results).String())
	if opts.tracks {
		fmt.Fprintln(stdout)
		fmt.Fprint(stdout, render.TrackTable(e.Grid()).String())
	}
	if opts.draw {
		actual := e.ActualSize()
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, render.Draw(actual.Width, actual.Height, names, results).String())
	}

	snap := store.Capture(cfg.Name, version.Version, e, names, results)
	if opts.record != "" {
		id, err := record(opts.record, snap)
		if err != nil {
			return err
		}
		fmt.Fprintf(stderr, "Recorded snapshot #%d of %q\n", id, cfg.Name)
	}
	if opts.check != "" {
		return check(opts.check, snap, stdout, stderr)
	}
	return nil
}

// loadConfig reads the document from path, or from stdin when path is empty
// or "-". Empty input falls back to the project, global and built-in layouts.
func loadConfig(path string, stdin io.Reader) (*config.Config, error) {
	if path != "" && path != "-" {
		return config.LoadFile(path)
	}

	// Read all input from stdin
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}

	// Trim null bytes
	data = trimNullBytes(data)
	if len(strings.TrimSpace(string(data))) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		return config.Load(cwd)
	}
	return config.Parse(data)
}

func trimNullBytes(data []byte) []byte {
	result := make([]byte, 0, len(data))
	for _, b := range data {
		if b != 0 {
			result = append(result, b)
		}
	}
	return result
}

// parseSize parses "WxH".
func parseSize(s string) (grid.Dims, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return grid.Dims{}, fmt.Errorf("invalid size %q: want WxH", s)
	}
	width, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil || width < 0 {
		return grid.Dims{}, fmt.Errorf("invalid width in %q", s)
	}
	height, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil || height < 0 {
		return grid.Dims{}, fmt.Errorf("invalid height in %q", s)
	}
	return grid.Dims{Width: width, Height: height}, nil
}

func record(dbPath string, snap store.Snapshot) (int64, error) {
	db, err := store.Open(dbPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	id, err := db.SaveSnapshot(snap)
	if err != nil {
		return 0, fmt.Errorf("failed to save snapshot: %w", err)
	}
	return id, nil
}

// check compares snap with the latest recorded snapshot of the same layout.
// Differences are printed to stdout and reported as an error.
func check(dbPath string, snap store.Snapshot, stdout, stderr io.Writer) error {
	db, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	want, err := db.LatestSnapshot(snap.Name)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}
	if want == nil {
		return fmt.Errorf("%w for %q", errNoSnapshot, snap.Name)
	}
	if version.Newer(want.EngineVersion, snap.EngineVersion) {
		fmt.Fprintf(stderr, "Warning: snapshot #%d was recorded by a newer engine (%s > %s)\n",
			want.ID, want.EngineVersion, snap.EngineVersion)
	}

	diffs := snap.Diff(want)
	if len(diffs) == 0 {
		fmt.Fprintf(stderr, "Layout %q matches snapshot #%d\n", snap.Name, want.ID)
		return nil
	}
	fmt.Fprintf(stdout, "\nLayout %q differs from snapshot #%d:\n", snap.Name, want.ID)
	for _, d := range diffs {
		fmt.Fprintf(stdout, "  %s\n", d)
	}
	return fmt.Errorf("%d difference(s) from snapshot #%d", len(diffs), want.ID)
}
