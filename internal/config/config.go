// Package config provides YAML layout documents for the grid tools.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/young1lin/derin-layout/internal/grid"
	"github.com/young1lin/derin-layout/internal/layout"
	"github.com/young1lin/derin-layout/internal/version"
)

// Config is a layout document: the grid tracks, the widgets placed on them
// and the size to solve for.
type Config struct {
	Version string         `yaml:"version"`
	Name    string         `yaml:"name"`
	Size    SizeConfig     `yaml:"size"`
	Columns []TrackConfig  `yaml:"columns"`
	Rows    []TrackConfig  `yaml:"rows"`
	Widgets []WidgetConfig `yaml:"widgets"`
	Display DisplayConfig  `yaml:"display"`
}

// SizeConfig is a width and height in pixels.
type SizeConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TrackConfig holds the hints of one column or row.
type TrackConfig struct {
	Min int      `yaml:"min"`
	Max int      `yaml:"max"`          // 0 means unbounded
	Fr  *float32 `yaml:"fr,omitempty"` // Defaults to 1
}

// WidgetConfig places one widget.
type WidgetConfig struct {
	Name    string        `yaml:"name"`
	Col     int           `yaml:"col"`
	Row     int           `yaml:"row"`
	Span    *SpanConfig   `yaml:"span"` // Overrides col and row
	Min     SizeConfig    `yaml:"min"`
	Max     SizeConfig    `yaml:"max"` // 0 means unbounded
	Align   AlignConfig   `yaml:"align"`
	Margins MarginsConfig `yaml:"margins"`
}

// SpanConfig is a [start, end) range of columns and rows. A negative end
// reaches the last track.
type SpanConfig struct {
	Cols []int `yaml:"cols"`
	Rows []int `yaml:"rows"`
}

// AlignConfig places a widget inside its cell: "stretch", "start", "end" or
// "center" per axis.
type AlignConfig struct {
	X string `yaml:"x"`
	Y string `yaml:"y"`
}

// MarginsConfig is the empty space around a widget.
type MarginsConfig struct {
	Left   int `yaml:"left"`
	Top    int `yaml:"top"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
}

// DisplayConfig controls which widgets are laid out
type DisplayConfig struct {
	Show []string `yaml:"show"`
	Hide []string `yaml:"hide"`
}

// Load loads the layout document with priority:
// 1. Project-level: .derin/layout.yaml
// 2. Global: <config dir>/derin-layout/layout.yaml
// 3. Default: built-in sample
func Load(projectDir string) (*Config, error) {
	// Try project-level document first
	projectConfig := ProjectLayoutPath(projectDir)
	if info, err := os.Stat(projectConfig); err == nil && !info.IsDir() {
		return LoadFile(projectConfig)
	}

	// Try global document
	if globalConfig := GlobalLayoutPath(); globalConfig != "" {
		if info, err := os.Stat(globalConfig); err == nil && !info.IsDir() {
			return LoadFile(globalConfig)
		}
	}

	return DefaultConfig(), nil
}

// LoadFile loads a layout document from path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a layout document.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal encodes the document as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// DefaultConfig returns a two-column sample layout.
func DefaultConfig() *Config {
	return &Config{
		Version: version.SchemaVersion,
		Name:    "sample",
		Size:    SizeConfig{Width: 200, Height: 60},
		Columns: []TrackConfig{{}, {}},
		Rows:    []TrackConfig{{}},
		Widgets: []WidgetConfig{
			{Name: "left", Col: 0, Min: SizeConfig{Width: 50}},
			{Name: "right", Col: 1, Min: SizeConfig{Width: 30}},
		},
	}
}

// Validate checks the document for errors a solve cannot recover from.
func (c *Config) Validate() error {
	if err := version.CheckSchema(c.Version); err != nil {
		return err
	}
	if c.Size.Width < 0 || c.Size.Height < 0 {
		return fmt.Errorf("size: width and height must not be negative")
	}
	for i, tr := range c.Columns {
		if err := tr.validate(); err != nil {
			return fmt.Errorf("column %d: %w", i, err)
		}
	}
	for i, tr := range c.Rows {
		if err := tr.validate(); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}

	seen := make(map[string]bool, len(c.Widgets))
	for i, w := range c.Widgets {
		if w.Name == "" {
			return fmt.Errorf("widget at index %d: name is required", i)
		}
		if seen[w.Name] {
			return fmt.Errorf("widget %q: duplicate name", w.Name)
		}
		seen[w.Name] = true
		if err := w.validate(); err != nil {
			return fmt.Errorf("widget %q: %w", w.Name, err)
		}
	}
	return nil
}

func (t TrackConfig) validate() error {
	if t.Min < 0 || t.Max < 0 {
		return fmt.Errorf("min and max must not be negative")
	}
	if t.Fr != nil && *t.Fr < 0 {
		return fmt.Errorf("fr must not be negative")
	}
	return nil
}

func (w WidgetConfig) validate() error {
	if w.Col < 0 || w.Row < 0 {
		return fmt.Errorf("col and row must not be negative")
	}
	if w.Min.Width < 0 || w.Min.Height < 0 || w.Max.Width < 0 || w.Max.Height < 0 {
		return fmt.Errorf("min and max must not be negative")
	}
	if w.Span != nil {
		if len(w.Span.Cols) != 2 || len(w.Span.Rows) != 2 {
			return fmt.Errorf("span: cols and rows need a start and an end")
		}
	}
	if _, err := ParseAlign(w.Align.X); err != nil {
		return err
	}
	if _, err := ParseAlign(w.Align.Y); err != nil {
		return err
	}
	return nil
}

// ParseAlign converts an alignment keyword. The empty string is stretch.
func ParseAlign(s string) (grid.Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "stretch":
		return grid.Stretch, nil
	case "start", "left", "top":
		return grid.Start, nil
	case "end", "right", "bottom":
		return grid.End, nil
	case "center", "middle":
		return grid.Center, nil
	default:
		return grid.Stretch, fmt.Errorf("unknown alignment %q", s)
	}
}

// Hints returns the track hints of a column or row.
func (t TrackConfig) Hints() grid.TrackHints {
	h := grid.DefaultTrackHints()
	h.MinSize = t.Min
	if t.Max > 0 {
		h.MaxSize = t.Max
	}
	if t.Fr != nil {
		h.FrSize = *t.Fr
	}
	return h
}

// Cell converts the widget into a table cell on a grid of the given size.
func (w WidgetConfig) Cell(size grid.GridSize) layout.Cell {
	x, _ := ParseAlign(w.Align.X)
	y, _ := ParseAlign(w.Align.Y)
	c := layout.Cell{
		Name:     w.Name,
		Position: layout.Position{Row: w.Row, Col: w.Col},
		Bounds: grid.SizeBounds{
			Min: grid.Dims{Width: w.Min.Width, Height: w.Min.Height},
			Max: grid.Dims{Width: w.Max.Width, Height: w.Max.Height},
		},
		Place: grid.Align2{X: x, Y: y},
		Margins: grid.Margins{
			Left:   w.Margins.Left,
			Top:    w.Margins.Top,
			Right:  w.Margins.Right,
			Bottom: w.Margins.Bottom,
		},
	}
	if w.Span != nil {
		s := w.span()
		c.Position = layout.Position{Row: w.Span.Rows[0], Col: w.Span.Cols[0]}
		c.ColSpan = s.X.Size(0, size.X)
		c.RowSpan = s.Y.Size(0, size.Y)
	}
	return c
}

// span returns the tracks the widget covers. Open ends resolve against the
// grid when solving.
func (w WidgetConfig) span() grid.WidgetSpan {
	if w.Span == nil {
		return grid.CellSpan(w.Col, w.Row)
	}
	end := func(v int) int {
		if v < 0 {
			return grid.Open
		}
		return v
	}
	return grid.WidgetSpan{
		X: grid.Span(w.Span.Cols[0], end(w.Span.Cols[1])),
		Y: grid.Span(w.Span.Rows[0], end(w.Span.Rows[1])),
	}
}

// ShouldShow returns true if the named widget should be laid out
func (c *Config) ShouldShow(name string) bool {
	for _, h := range c.Display.Hide {
		if h == name {
			return false
		}
	}
	if len(c.Display.Show) == 0 {
		return true
	}
	for _, s := range c.Display.Show {
		if s == name {
			return true
		}
	}
	return false
}

// Table returns the widgets as a layout table, filtered by the display
// settings. The grid size is that of the document.
func (c *Config) Table() *layout.Table {
	size := c.GridSize()
	tbl := &layout.Table{Cols: size.X, Rows: size.Y}
	for _, w := range c.Widgets {
		tbl.Cells = append(tbl.Cells, w.Cell(size))
	}
	return tbl.Filter(c.Display.Show, c.Display.Hide)
}

// GridSize returns the number of columns and rows. Without explicit tracks
// the grid is just large enough for the widgets.
func (c *Config) GridSize() grid.GridSize {
	size := grid.GridSize{X: len(c.Columns), Y: len(c.Rows)}
	if size.X > 0 && size.Y > 0 {
		return size
	}
	var cols, rows int
	for _, w := range c.Widgets {
		s := w.span()
		cols = max(cols, w.Col+1, s.X.Start+1, s.X.End)
		rows = max(rows, w.Row+1, s.Y.Start+1, s.Y.End)
	}
	if size.X == 0 {
		size.X = cols
	}
	if size.Y == 0 {
		size.Y = rows
	}
	return size
}

// Engine returns an engine configured with the tracks and size of the
// document.
func (c *Config) Engine() *grid.GridEngine {
	e := grid.NewGridEngine()
	e.SetGridSize(c.GridSize())
	for i, tr := range c.Columns {
		e.SetColHints(i, tr.Hints())
	}
	for i, tr := range c.Rows {
		e.SetRowHints(i, tr.Hints())
	}
	e.DesiredSize = grid.Dims{Width: c.Size.Width, Height: c.Size.Height}
	return e
}

// Hints returns the names and positions of the displayed widgets in document
// order.
func (c *Config) Hints() ([]string, []grid.WidgetPos) {
	var (
		names []string
		hints []grid.WidgetPos
	)
	for _, w := range c.Widgets {
		if !c.ShouldShow(w.Name) {
			continue
		}
		cell := w.Cell(grid.GridSize{})
		names = append(names, w.Name)
		hints = append(hints, grid.WidgetPos{
			SizeBounds:  cell.SizeBounds(),
			Span:        w.span(),
			PlaceInCell: cell.Place,
			Margins:     cell.Margins,
		})
	}
	return names, hints
}
