package grid

import (
	"fmt"
	"strings"
)

// GridDims holds the tracks of a grid: numCols columns followed by numRows
// rows in one backing slice.
type GridDims struct {
	numCols int
	numRows int
	dims    []GridTrack
}

// NewGridDims returns an empty grid.
func NewGridDims() *GridDims {
	return &GridDims{}
}

// NumCols returns the number of columns.
func (g *GridDims) NumCols() int { return g.numCols }

// NumRows returns the number of rows.
func (g *GridDims) NumRows() int { return g.numRows }

// GridSize returns the number of columns and rows.
func (g *GridDims) GridSize() GridSize {
	return GridSize{X: g.numCols, Y: g.numRows}
}

// SetGridSize changes the number of columns and rows. Existing columns and rows
// keep their state; new tracks start out as NewGridTrack.
func (g *GridDims) SetGridSize(size GridSize) {
	if size.X < 0 {
		size.X = 0
	}
	if size.Y < 0 {
		size.Y = 0
	}
	oldCols, oldRows := g.numCols, g.numRows
	if size.X == oldCols && size.Y == oldRows {
		return
	}
	oldLen := oldCols + oldRows
	newLen := size.X + size.Y

	// Grow before shifting so the rows are never copied past the valid region.
	if newLen > oldLen {
		g.dims = append(g.dims, make([]GridTrack, newLen-oldLen)...)
	}

	keepRows := min(oldRows, size.Y)
	if size.X != oldCols {
		copy(g.dims[size.X:size.X+keepRows], g.dims[oldCols:oldCols+keepRows])
	}
	for i := oldCols; i < size.X; i++ {
		g.dims[i] = NewGridTrack()
	}
	for i := size.X + keepRows; i < newLen; i++ {
		g.dims[i] = NewGridTrack()
	}

	g.dims = g.dims[:newLen]
	g.numCols, g.numRows = size.X, size.Y
}

// PushCol appends a column.
func (g *GridDims) PushCol(t GridTrack) {
	g.SetGridSize(GridSize{X: g.numCols + 1, Y: g.numRows})
	g.dims[g.numCols-1] = t
}

// PushRow appends a row.
func (g *GridDims) PushRow(t GridTrack) {
	g.dims = append(g.dims, t)
	g.numRows++
}

// RemoveCol removes column i and shifts later columns and all rows down. It
// returns false when i is out of range.
func (g *GridDims) RemoveCol(i int) bool {
	if i < 0 || i >= g.numCols {
		return false
	}
	g.dims = append(g.dims[:i], g.dims[i+1:]...)
	g.numCols--
	return true
}

// RemoveRow removes row i. It returns false when i is out of range.
func (g *GridDims) RemoveRow(i int) bool {
	if i < 0 || i >= g.numRows {
		return false
	}
	at := g.numCols + i
	g.dims = append(g.dims[:at], g.dims[at+1:]...)
	g.numRows--
	return true
}

// Clear removes every track.
func (g *GridDims) Clear() {
	g.dims = g.dims[:0]
	g.numCols, g.numRows = 0, 0
}

// Col returns column i, or false when i is out of range.
func (g *GridDims) Col(i int) (*GridTrack, bool) {
	if i < 0 || i >= g.numCols {
		return nil, false
	}
	return &g.dims[i], true
}

// Row returns row i, or false when i is out of range.
func (g *GridDims) Row(i int) (*GridTrack, bool) {
	if i < 0 || i >= g.numRows {
		return nil, false
	}
	return &g.dims[g.numCols+i], true
}

// Cols returns the columns in r. The slice aliases the grid.
func (g *GridDims) Cols(r TrRange) ([]GridTrack, bool) {
	start, end, ok := r.resolve(g.numCols)
	if !ok {
		return nil, false
	}
	return g.dims[start:end], true
}

// Rows returns the rows in r. The slice aliases the grid.
func (g *GridDims) Rows(r TrRange) ([]GridTrack, bool) {
	start, end, ok := r.resolve(g.numRows)
	if !ok {
		return nil, false
	}
	return g.dims[g.numCols+start : g.numCols+end], true
}

func (g *GridDims) columns() []GridTrack { return g.dims[:g.numCols] }
func (g *GridDims) rows() []GridTrack    { return g.dims[g.numCols:] }

// ColumnWidth returns the size of column i.
func (g *GridDims) ColumnWidth(i int) (Px, bool) {
	t, ok := g.Col(i)
	if !ok {
		return 0, false
	}
	return t.Size(), true
}

// RowHeight returns the size of row i.
func (g *GridDims) RowHeight(i int) (Px, bool) {
	t, ok := g.Row(i)
	if !ok {
		return 0, false
	}
	return t.Size(), true
}

// CellOffset returns the top-left corner of cell (col, row). The far edge of
// the grid (col == NumCols or row == NumRows) is a valid offset.
func (g *GridDims) CellOffset(col, row int) (Point, bool) {
	if col < 0 || col > g.numCols || row < 0 || row > g.numRows {
		return Point{}, false
	}
	var p Point
	for _, t := range g.dims[:col] {
		p.X += t.size
	}
	for _, t := range g.dims[g.numCols : g.numCols+row] {
		p.Y += t.size
	}
	return p, true
}

// CellRect returns the rectangle of cell (col, row).
func (g *GridDims) CellRect(col, row int) (Rect, bool) {
	if col < 0 || col >= g.numCols || row < 0 || row >= g.numRows {
		return Rect{}, false
	}
	return g.SpanRect(CellSpan(col, row))
}

// SpanOriginRect returns the size of span as a rectangle at the origin.
func (g *GridDims) SpanOriginRect(span WidgetSpan) (Rect, bool) {
	cols, ok := g.Cols(span.X)
	if !ok {
		return Rect{}, false
	}
	rows, ok := g.Rows(span.Y)
	if !ok {
		return Rect{}, false
	}
	var r Rect
	for i := range cols {
		r.Width += cols[i].size
	}
	for i := range rows {
		r.Height += rows[i].size
	}
	return r, true
}

// SpanRect returns the rectangle covered by span in grid coordinates.
func (g *GridDims) SpanRect(span WidgetSpan) (Rect, bool) {
	r, ok := g.SpanOriginRect(span)
	if !ok {
		return Rect{}, false
	}
	col, _, _ := span.X.resolve(g.numCols)
	row, _, _ := span.Y.resolve(g.numRows)
	off, _ := g.CellOffset(col, row)
	return r.Translate(off), true
}

// Width returns the sum of the column sizes.
func (g *GridDims) Width() Px { return sumSize(g.columns()) }

// Height returns the sum of the row sizes.
func (g *GridDims) Height() Px { return sumSize(g.rows()) }

// MinWidth returns the sum of the effective column minimums.
func (g *GridDims) MinWidth() Px { return sumMin(g.columns()) }

// MinHeight returns the sum of the effective row minimums.
func (g *GridDims) MinHeight() Px { return sumMin(g.rows()) }

// MaxWidth returns the sum of the effective column maximums, saturating at
// Unbounded.
func (g *GridDims) MaxWidth() Px { return sumMax(g.columns()) }

// MaxHeight returns the sum of the effective row maximums, saturating at
// Unbounded.
func (g *GridDims) MaxHeight() Px { return sumMax(g.rows()) }

func sumSize(tracks []GridTrack) Px {
	var n Px
	for i := range tracks {
		n += tracks[i].size
	}
	return n
}

func sumMin(tracks []GridTrack) Px {
	var n Px
	for i := range tracks {
		n += tracks[i].MinSize()
	}
	return n
}

func sumMax(tracks []GridTrack) Px {
	var n Px
	for i := range tracks {
		n = SatAdd(n, tracks[i].MaxSize())
	}
	return n
}

func (g *GridDims) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "GridDims %dx%d\n", g.numCols, g.numRows)
	for i := range g.columns() {
		fmt.Fprintf(&b, "  col %d: %s\n", i, g.dims[i].String())
	}
	for i := range g.rows() {
		fmt.Fprintf(&b, "  row %d: %s\n", i, g.dims[g.numCols+i].String())
	}
	return b.String()
}
