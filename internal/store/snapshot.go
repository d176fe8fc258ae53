package store

import (
	"fmt"
	"slices"
	"time"

	"github.com/young1lin/derin-layout/internal/grid"
)

// Snapshot is one solved layout.
type Snapshot struct {
	ID            int64
	Name          string
	Timestamp     time.Time
	EngineVersion string
	Width         int // Desired size the layout was solved for
	Height        int
	Cols          []int // Resolved column widths
	Rows          []int // Resolved row heights
	Widgets       []WidgetResult
}

// WidgetResult is the outcome for one widget. Err is empty when the widget
// was placed.
type WidgetResult struct {
	Name string    `json:"name"`
	Rect grid.Rect `json:"rect"`
	Err  string    `json:"err,omitempty"`
}

// Capture records the state of e after a solve. names and results are
// parallel slices as passed to the engine.
func Capture(name, engineVersion string, e *grid.GridEngine, names []string, results []grid.SolveResult) Snapshot {
	s := Snapshot{
		Name:          name,
		Timestamp:     time.Now(),
		EngineVersion: engineVersion,
		Width:         e.DesiredSize.Width,
		Height:        e.DesiredSize.Height,
		Cols:          []int{},
		Rows:          []int{},
		Widgets:       make([]WidgetResult, 0, len(results)),
	}
	g := e.Grid()
	for i := 0; i < g.NumCols(); i++ {
		w, _ := g.ColumnWidth(i)
		s.Cols = append(s.Cols, w)
	}
	for i := 0; i < g.NumRows(); i++ {
		h, _ := g.RowHeight(i)
		s.Rows = append(s.Rows, h)
	}
	for i, res := range results {
		wr := WidgetResult{Rect: res.Rect}
		if i < len(names) {
			wr.Name = names[i]
		}
		if res.Err != nil {
			wr.Rect = grid.Rect{}
			wr.Err = res.Err.Error()
		}
		s.Widgets = append(s.Widgets, wr)
	}
	return s
}

// Diff lists the differences between s and the expected snapshot want. An
// empty result means the two layouts match.
func (s *Snapshot) Diff(want *Snapshot) []string {
	var diffs []string
	if s.Width != want.Width || s.Height != want.Height {
		diffs = append(diffs, fmt.Sprintf("size: got %dx%d, want %dx%d", s.Width, s.Height, want.Width, want.Height))
	}
	if !slices.Equal(s.Cols, want.Cols) {
		diffs = append(diffs, fmt.Sprintf("columns: got %v, want %v", s.Cols, want.Cols))
	}
	if !slices.Equal(s.Rows, want.Rows) {
		diffs = append(diffs, fmt.Sprintf("rows: got %v, want %v", s.Rows, want.Rows))
	}

	got := make(map[string]WidgetResult, len(s.Widgets))
	for _, w := range s.Widgets {
		got[w.Name] = w
	}
	seen := make(map[string]bool, len(want.Widgets))
	for _, w := range want.Widgets {
		seen[w.Name] = true
		g, ok := got[w.Name]
		switch {
		case !ok:
			diffs = append(diffs, fmt.Sprintf("%s: missing", w.Name))
		case g.Err != w.Err:
			diffs = append(diffs, fmt.Sprintf("%s: got error %q, want %q", w.Name, g.Err, w.Err))
		case g.Rect != w.Rect:
			diffs = append(diffs, fmt.Sprintf("%s: got %v, want %v", w.Name, g.Rect, w.Rect))
		}
	}
	for _, w := range s.Widgets {
		if !seen[w.Name] {
			diffs = append(diffs, fmt.Sprintf("%s: unexpected", w.Name))
		}
	}
	return diffs
}
