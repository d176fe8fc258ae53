// Package watch reports changes to a layout document on disk.
package watch

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultPollInterval is how often the document is polled in case a file
// system event is missed.
const DefaultPollInterval = 500 * time.Millisecond

// Change is sent when the watched document was written or replaced.
type Change struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// WatcherInterface defines the interface for file watchers
type WatcherInterface interface {
	Changes() <-chan Change
	Errors() <-chan error
	Close() error
}

// Watcher monitors a layout document for changes
type Watcher struct {
	watcher    *fsnotify.Watcher
	fs         FileSystem
	filePath   string
	interval   time.Duration
	last       fileState
	changeChan chan Change
	errorChan  chan error
	done       chan struct{}
}

type fileState struct {
	exists  bool
	size    int64
	modTime time.Time
}

// NewWatcher creates a new file watcher for a layout document. The file does
// not need to exist yet.
func NewWatcher(filePath string) (*Watcher, error) {
	return NewWatcherWithFS(filePath, OSFileSystem{}, DefaultPollInterval)
}

// NewWatcherWithFS allows injecting a custom file system and poll interval
// for testing
func NewWatcherWithFS(filePath string, fsys FileSystem, interval time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory containing the file so that editors replacing the
	// file by rename are seen too
	if err := fsWatcher.Add(filepath.Dir(abs)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:    fsWatcher,
		fs:         fsys,
		filePath:   abs,
		interval:   interval,
		changeChan: make(chan Change, 1),
		errorChan:  make(chan error, 10),
		done:       make(chan struct{}),
	}
	w.last, _ = w.stat()

	go w.watch()

	return w, nil
}

// Path returns the absolute path of the watched document.
func (w *Watcher) Path() string {
	return w.filePath
}

// watch runs the file watching loop
func (w *Watcher) watch() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	defer close(w.changeChan)
	defer close(w.errorChan)

	for {
		select {
		case <-w.done:
			return

		case <-ticker.C:
			// Periodically check for changes (polling as backup)
			w.checkForChange(false)

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Check if the event is for our file
			if filepath.Clean(event.Name) == w.filePath {
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					w.checkForChange(true)
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

// checkForChange compares the file with the last seen state. A file system
// event forces a change even when size and mtime look the same, since mtime
// resolution may be coarse.
func (w *Watcher) checkForChange(force bool) {
	cur, err := w.stat()
	if err != nil {
		w.sendError(err)
		return
	}
	if !cur.exists {
		// Removed, or between the unlink and rename of an atomic save
		w.last = cur
		return
	}
	if !force && cur == w.last {
		return
	}
	w.last = cur

	// Coalesce: an unread change is replaced by the newer one. This goroutine
	// is the only sender, so the second send cannot block.
	c := Change{Path: w.filePath, Size: cur.size, ModTime: cur.modTime}
	select {
	case w.changeChan <- c:
	default:
		select {
		case <-w.changeChan:
		default:
		}
		w.changeChan <- c
	}
}

func (w *Watcher) stat() (fileState, error) {
	info, err := w.fs.Stat(w.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return fileState{}, nil
	}
	if err != nil {
		return fileState{}, err
	}
	return fileState{exists: true, size: info.Size(), modTime: info.ModTime()}, nil
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errorChan <- err:
	default:
	}
}

// Changes returns a channel that receives a value each time the document
// changes. Changes arriving faster than they are read are merged, keeping the
// latest.
func (w *Watcher) Changes() <-chan Change {
	return w.changeChan
}

// Errors returns a channel of errors that occur during watching
func (w *Watcher) Errors() <-chan error {
	return w.errorChan
}

// Close stops watching the file
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		// Already closed
		return nil
	default:
		close(w.done)
	}
	return w.watcher.Close()
}

// TestWatcher is a helper for testing that provides direct control over channels
type TestWatcher struct {
	changeChan    chan Change
	errorChan     chan error
	closeChan     chan struct{}
	closed        bool
	changesClosed bool
	errorsClosed  bool
	mu            sync.Mutex
}

// NewTestWatcher creates a test watcher with controllable channels
func NewTestWatcher() *TestWatcher {
	return &TestWatcher{
		changeChan: make(chan Change, 100),
		errorChan:  make(chan error, 10),
		closeChan:  make(chan struct{}),
	}
}

func (tw *TestWatcher) Changes() <-chan Change {
	return tw.changeChan
}

func (tw *TestWatcher) Errors() <-chan error {
	return tw.errorChan
}

func (tw *TestWatcher) Close() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.closed {
		return nil
	}
	tw.closed = true

	// Only close channels that haven't been closed yet
	if !tw.changesClosed {
		close(tw.changeChan)
		tw.changesClosed = true
	}
	if !tw.errorsClosed {
		close(tw.errorChan)
		tw.errorsClosed = true
	}
	close(tw.closeChan)
	return nil
}

// Closed reports whether Close was called.
func (tw *TestWatcher) Closed() bool {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return tw.closed
}

// CloseChangesOnly closes only the Changes channel (used for testing specific branches)
func (tw *TestWatcher) CloseChangesOnly() {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if !tw.changesClosed {
		close(tw.changeChan)
		tw.changesClosed = true
	}
}

// CloseErrorsOnly closes only the Errors channel (used for testing specific branches)
func (tw *TestWatcher) CloseErrorsOnly() {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if !tw.errorsClosed {
		close(tw.errorChan)
		tw.errorsClosed = true
	}
}

// SendChange sends a test change to the watcher
func (tw *TestWatcher) SendChange(c Change) {
	tw.changeChan <- c
}

// SendError sends a test error to the watcher
func (tw *TestWatcher) SendError(err error) {
	tw.errorChan <- err
}
