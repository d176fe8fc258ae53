package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/young1lin/derin-layout/internal/grid"
)

// Table is a plain text table with one header row.
type Table struct {
	Header []string
	Align  []Align // Per column, left when missing
	Rows   [][]string
}

// AddRow appends a row.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render returns the table as lines, columns separated by two spaces and
// trailing blanks trimmed.
func (t *Table) Render() []string {
	widths := t.columnWidths()
	if len(widths) == 0 {
		return []string{}
	}

	lines := make([]string, 0, len(t.Rows)+1)
	if len(t.Header) > 0 {
		lines = append(lines, t.renderRow(t.Header, widths))
	}
	for _, row := range t.Rows {
		lines = append(lines, t.renderRow(row, widths))
	}
	return lines
}

// String returns the rendered table, one line per row.
func (t *Table) String() string {
	lines := t.Render()
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func (t *Table) columnWidths() []int {
	n := len(t.Header)
	for _, row := range t.Rows {
		n = max(n, len(row))
	}
	widths := make([]int, n)
	for i, h := range t.Header {
		widths[i] = Measure(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			widths[i] = max(widths[i], Measure(cell))
		}
	}
	return widths
}

func (t *Table) renderRow(row []string, widths []int) string {
	parts := make([]string, len(widths))
	for i := range widths {
		var cell string
		if i < len(row) {
			cell = row[i]
		}
		align := AlignLeft
		if i < len(t.Align) {
			align = t.Align[i]
		}
		parts[i] = Pad(cell, widths[i], align)
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

// ResultTable lists the outcome for each widget: its rectangle, or the error
// that kept it from being placed.
func ResultTable(names []string, results []grid.SolveResult) *Table {
	t := &Table{
		Header: []string{"WIDGET", "X", "Y", "W", "H", "STATUS"},
		Align:  []Align{AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight, AlignLeft},
	}
	for i, res := range results {
		name := strconv.Itoa(i)
		if i < len(names) && names[i] != "" {
			name = names[i]
		}
		if res.Err != nil {
			t.AddRow(name, "-", "-", "-", "-", res.Err.Error())
			continue
		}
		r := res.Rect
		t.AddRow(name, itoa(r.X), itoa(r.Y), itoa(r.Width), itoa(r.Height), "ok")
	}
	return t
}

// TrackTable lists every column and row of g with its size and limits.
func TrackTable(g *grid.GridDims) *Table {
	t := &Table{
		Header: []string{"TRACK", "SIZE", "MIN", "MAX", "FR"},
		Align:  []Align{AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight},
	}
	add := func(label string, tr *grid.GridTrack) {
		t.AddRow(label, itoa(tr.Size()), itoa(tr.MinSize()), pxOrInf(tr.MaxSize()), fmt.Sprintf("%g", tr.FrSize()))
	}
	for i := 0; i < g.NumCols(); i++ {
		tr, _ := g.Col(i)
		add("col "+itoa(i), tr)
	}
	for i := 0; i < g.NumRows(); i++ {
		tr, _ := g.Row(i)
		add("row "+itoa(i), tr)
	}
	return t
}

func itoa(v int) string { return strconv.Itoa(v) }

func pxOrInf(v grid.Px) string {
	if v >= grid.Unbounded {
		return "inf"
	}
	return itoa(v)
}
