package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/derin-layout/internal/grid"
	"github.com/young1lin/derin-layout/internal/store"
)

// Lines taken by the border, the header and the status line.
const (
	chromeWidth  = 2
	chromeHeight = 4
)

// Update handles incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.solve()

	case LayoutLoadedMsg:
		m.setConfig(msg.Config, msg.Path)
		m.err = nil
		return m, m.solve()

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case WatcherStartedMsg:
		m.watching = true
		return m, nil

	case WatcherFailedMsg:
		m.watching = false
		m.err = msg.Err
		return m, nil

	case SnapshotSavedMsg:
		m.lastSaved = msg.ID
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "r":
		// Solve from scratch with a new engine
		if m.cfg != nil {
			m.setConfig(m.cfg, m.path)
			m.err = nil
		}
		return m, m.solve()
	case "t":
		m.showTracks = !m.showTracks
		return m, m.solve()
	}

	return m, nil
}

// canvasSize returns the size available to the layout: the terminal minus
// the chrome and the track table.
func (m Model) canvasSize() grid.Dims {
	h := m.height - chromeHeight
	if m.showTracks && m.engine != nil {
		g := m.engine.Grid()
		h -= 1 + g.NumCols() + g.NumRows()
	}
	return grid.Dims{
		Width:  max(m.width-chromeWidth, 0),
		Height: max(h, 0),
	}
}

// solve lays out the document at the canvas size. It returns a command that
// records the result when a recorder is set.
func (m *Model) solve() tea.Cmd {
	if m.cfg == nil || m.width == 0 || m.height == 0 {
		return nil
	}

	m.engine.DesiredSize = m.canvasSize()
	names, hints := m.cfg.Hints()
	results := make([]grid.SolveResult, len(hints))
	if err := m.engine.UpdateEngine(hints, results, m.cache); err != nil {
		m.err = fmt.Errorf("failed to solve layout: %w", err)
		return nil
	}
	m.names, m.results = names, results
	m.ready = true
	m.solves++

	if m.recorder == nil {
		return nil
	}
	snap := store.Capture(m.cfg.Name, m.engineVersion, m.engine, names, results)
	rec := m.recorder
	return func() tea.Msg {
		id, err := rec.SaveSnapshot(snap)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to record snapshot: %w", err)}
		}
		return SnapshotSavedMsg{ID: id}
	}
}
