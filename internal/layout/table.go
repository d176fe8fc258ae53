package layout

import "github.com/young1lin/derin-layout/internal/grid"

// Position is the top-left cell of a table entry.
type Position struct {
	Row int
	Col int
}

// Cell is one named entry of a Table.
type Cell struct {
	Name     string
	Position Position
	ColSpan  int             // Number of columns covered, 0 counts as 1
	RowSpan  int             // Number of rows covered, 0 counts as 1
	Bounds   grid.SizeBounds // A zero Max width or height means no limit
	Place    grid.Align2
	Margins  grid.Margins
}

// Span returns the tracks the cell covers.
func (c Cell) Span() grid.WidgetSpan {
	cols, rows := max(c.ColSpan, 1), max(c.RowSpan, 1)
	return grid.WidgetSpan{
		X: grid.Span(c.Position.Col, c.Position.Col+cols),
		Y: grid.Span(c.Position.Row, c.Position.Row+rows),
	}
}

// SizeBounds returns Bounds with zero maximums replaced by grid.Unbounded.
func (c Cell) SizeBounds() grid.SizeBounds {
	b := c.Bounds
	if b.Max.Width == 0 {
		b.Max.Width = grid.Unbounded
	}
	if b.Max.Height == 0 {
		b.Max.Height = grid.Unbounded
	}
	return b
}

// Table is a layout of named cells. Children are matched to cells by name;
// an unnamed child takes the cell at its index.
type Table struct {
	Cells []Cell
	// Cols and Rows fix the grid size. When zero the grid is just large
	// enough for every cell.
	Cols int
	Rows int
}

// Lookup returns the cell called name.
func (t *Table) Lookup(name string) (Cell, bool) {
	for _, c := range t.Cells {
		if c.Name == name {
			return c, true
		}
	}
	return Cell{}, false
}

// Positions implements GridLayout.
func (t *Table) Positions(ident WidgetIdent, index, num int) (grid.WidgetPos, bool) {
	var (
		c  Cell
		ok bool
	)
	if ident.Name != "" {
		c, ok = t.Lookup(ident.Name)
	} else if index >= 0 && index < len(t.Cells) {
		c, ok = t.Cells[index], true
	}
	if !ok {
		return grid.WidgetPos{}, false
	}
	return grid.WidgetPos{
		SizeBounds:  c.SizeBounds(),
		Span:        c.Span(),
		PlaceInCell: c.Place,
		Margins:     c.Margins,
	}, true
}

// GridSize implements GridLayout.
func (t *Table) GridSize(int) grid.GridSize {
	size := grid.GridSize{X: t.Cols, Y: t.Rows}
	if size.X > 0 && size.Y > 0 {
		return size
	}
	var cols, rows int
	for _, c := range t.Cells {
		cols = max(cols, c.Position.Col+max(c.ColSpan, 1))
		rows = max(rows, c.Position.Row+max(c.RowSpan, 1))
	}
	if size.X == 0 {
		size.X = cols
	}
	if size.Y == 0 {
		size.Y = rows
	}
	return size
}

// Names returns the cell names in order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.Cells))
	for _, c := range t.Cells {
		names = append(names, c.Name)
	}
	return names
}

// Filter returns a table holding only the cells selected by show and hide.
// An empty show list selects every cell; hide takes priority over show. The
// grid size is kept so the remaining cells do not move.
func (t *Table) Filter(show, hide []string) *Table {
	// If both are empty, return the table as-is
	if len(show) == 0 && len(hide) == 0 {
		return t
	}

	showSet := make(map[string]bool, len(show))
	for _, s := range show {
		showSet[s] = true
	}
	hideSet := make(map[string]bool, len(hide))
	for _, h := range hide {
		hideSet[h] = true
	}

	size := t.GridSize(0)
	filtered := &Table{Cols: size.X, Rows: size.Y}
	for _, c := range t.Cells {
		keep := len(show) == 0 || showSet[c.Name]
		if hideSet[c.Name] {
			keep = false
		}
		if keep {
			filtered.Cells = append(filtered.Cells, c)
		}
	}
	return filtered
}
