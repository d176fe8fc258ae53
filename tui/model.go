// Package tui is the interactive layout previewer: it solves a layout
// document at the size of the terminal and draws every widget as a box.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/derin-layout/internal/config"
	"github.com/young1lin/derin-layout/internal/grid"
	"github.com/young1lin/derin-layout/internal/store"
)

// Recorder stores snapshots of solved layouts. *store.DB implements it.
type Recorder interface {
	SaveSnapshot(s store.Snapshot) (int64, error)
}

// Model represents the application state
type Model struct {
	// Layout document
	cfg  *config.Config
	path string

	// Solver state, kept across resizes so passes are incremental
	engine  *grid.GridEngine
	cache   *grid.UpdateCache
	names   []string
	results []grid.SolveResult

	// Terminal size
	width  int
	height int

	// State
	ready      bool
	quitting   bool
	watching   bool
	showTracks bool
	solves     int
	lastSaved  int64

	// Snapshot recording, nil when disabled
	recorder      Recorder
	engineVersion string

	// Error state
	err error

	// Styles
	styles Styles
}

// Styles contains the Lipgloss styles for the UI
type Styles struct {
	Border  lipgloss.Style
	Title   lipgloss.Style
	Subtle  lipgloss.Style
	Canvas  lipgloss.Style
	Tracks  lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	OK      lipgloss.Style
}

// DefaultStyles returns the default UI styles
func DefaultStyles() Styles {
	var styles Styles

	// Color palette
	primaryColor := lipgloss.Color("86")    // Green
	secondaryColor := lipgloss.Color("239") // Grey
	errorColor := lipgloss.Color("196")     // Red
	warnColor := lipgloss.Color("208")      // Orange

	// Border style
	styles.Border = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(secondaryColor)

	// Header
	styles.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(primaryColor)

	styles.Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("243"))

	// Widget boxes
	styles.Canvas = lipgloss.NewStyle().
		Foreground(lipgloss.Color("255"))

	styles.Tracks = lipgloss.NewStyle().
		Foreground(lipgloss.Color("250"))

	styles.Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	// Status
	styles.Error = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true)

	styles.Warning = lipgloss.NewStyle().
		Foreground(warnColor)

	styles.OK = lipgloss.NewStyle().
		Foreground(primaryColor)

	return styles
}

// Option configures a Model
type Option func(*Model)

// WithRecorder records a snapshot of every successful solve.
func WithRecorder(r Recorder, engineVersion string) Option {
	return func(m *Model) {
		m.recorder = r
		m.engineVersion = engineVersion
	}
}

// WithTracks shows the track table from the start.
func WithTracks() Option {
	return func(m *Model) {
		m.showTracks = true
	}
}

// NewModel creates a new Model previewing cfg. cfg may be nil when the
// document arrives later in a LayoutLoadedMsg.
func NewModel(cfg *config.Config, path string, opts ...Option) Model {
	m := Model{
		styles: DefaultStyles(),
		cache:  grid.NewUpdateCache(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if cfg != nil {
		m.setConfig(cfg, path)
	}
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Results returns the names and results of the last solve.
func (m Model) Results() ([]string, []grid.SolveResult) {
	return m.names, m.results
}

// Engine returns the engine of the current document, or nil.
func (m Model) Engine() *grid.GridEngine {
	return m.engine
}

// setConfig replaces the document and starts a fresh engine for it.
func (m *Model) setConfig(cfg *config.Config, path string) {
	m.cfg = cfg
	m.path = path
	m.engine = cfg.Engine()
	m.cache.Reset()
	m.names, m.results = nil, nil
}
