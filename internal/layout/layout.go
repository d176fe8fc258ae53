// Package layout connects widget containers to the grid engine: layouts
// decide where each child goes, and Group runs the engine over its children.
package layout

import (
	"fmt"

	"github.com/young1lin/derin-layout/internal/grid"
)

// WidgetIdent identifies a child inside its container. A child has a name, an
// index, or both when it is one of a named collection.
type WidgetIdent struct {
	Name  string
	Index int // -1 when the ident is a bare name
}

// Named returns the ident of a named child.
func Named(name string) WidgetIdent {
	return WidgetIdent{Name: name, Index: -1}
}

// Numbered returns the ident of an anonymous child.
func Numbered(n int) WidgetIdent {
	return WidgetIdent{Index: n}
}

// Collection returns the ident of child n of the collection called name.
func Collection(name string, n int) WidgetIdent {
	return WidgetIdent{Name: name, Index: n}
}

func (w WidgetIdent) String() string {
	switch {
	case w.Name == "":
		return fmt.Sprint(w.Index)
	case w.Index < 0:
		return w.Name
	default:
		return fmt.Sprintf("%s[%d]", w.Name, w.Index)
	}
}

// GridLayout places the children of a container in a grid.
type GridLayout interface {
	// Positions returns where the child goes, or false to leave it out of
	// the layout.
	Positions(ident WidgetIdent, index, num int) (grid.WidgetPos, bool)
	// GridSize returns the number of columns and rows for num children.
	GridSize(num int) grid.GridSize
}

// Horizontal puts every child in its own column of a single row.
type Horizontal struct {
	Margins grid.Margins
	Place   grid.Align2
}

// Positions implements GridLayout.
func (h Horizontal) Positions(_ WidgetIdent, index, num int) (grid.WidgetPos, bool) {
	if index < 0 || index >= num {
		return grid.WidgetPos{}, false
	}
	pos := grid.DefaultWidgetPos()
	pos.Span = grid.CellSpan(index, 0)
	pos.Margins = h.Margins
	pos.PlaceInCell = h.Place
	return pos, true
}

// GridSize implements GridLayout.
func (h Horizontal) GridSize(num int) grid.GridSize {
	return grid.GridSize{X: num, Y: 1}
}

// Vertical puts every child in its own row of a single column.
type Vertical struct {
	Margins grid.Margins
	Place   grid.Align2
}

// Positions implements GridLayout.
func (v Vertical) Positions(_ WidgetIdent, index, num int) (grid.WidgetPos, bool) {
	if index < 0 || index >= num {
		return grid.WidgetPos{}, false
	}
	pos := grid.DefaultWidgetPos()
	pos.Span = grid.CellSpan(0, index)
	pos.Margins = v.Margins
	pos.PlaceInCell = v.Place
	return pos, true
}

// GridSize implements GridLayout.
func (v Vertical) GridSize(num int) grid.GridSize {
	return grid.GridSize{X: 1, Y: num}
}
