package layout

import (
	"fmt"

	"github.com/young1lin/derin-layout/internal/grid"
)

// Widget is anything a container can size and place.
type Widget interface {
	SizeBounds() grid.SizeBounds
	SetRect(r grid.Rect)
}

// Child is one entry of a container walk.
type Child struct {
	Ident  WidgetIdent
	Index  int
	Widget Widget
}

// Container lists the children of a widget.
type Container interface {
	NumChildren() int
	// Children calls f for each child in order until f returns grid.Break.
	Children(f func(Child) grid.LoopFlow)
}

// List is a Container of anonymous children.
type List []Widget

// NumChildren implements Container.
func (l List) NumChildren() int { return len(l) }

// Children implements Container.
func (l List) Children(f func(Child) grid.LoopFlow) {
	for i, w := range l {
		if f(Child{Ident: Numbered(i), Index: i, Widget: w}) == grid.Break {
			return
		}
	}
}

// NamedWidget is a widget with a name.
type NamedWidget struct {
	Name   string
	Widget Widget
}

// NamedList is a Container of named children.
type NamedList []NamedWidget

// NumChildren implements Container.
func (l NamedList) NumChildren() int { return len(l) }

// Children implements Container.
func (l NamedList) Children(f func(Child) grid.LoopFlow) {
	for i, nw := range l {
		if f(Child{Ident: Named(nw.Name), Index: i, Widget: nw.Widget}) == grid.Break {
			return
		}
	}
}

// Group lays out the children of a container in a grid. A Group is a Widget
// itself, so groups nest; each one owns its engine.
type Group struct {
	children Container
	layout   GridLayout
	engine   *grid.GridEngine

	rect    grid.Rect
	solved  bool
	hints   []grid.WidgetPos
	placed  []Child
	results []grid.SolveResult
}

// NewGroup returns a group laying out children with layout.
func NewGroup(children Container, layout GridLayout) *Group {
	return &Group{
		children: children,
		layout:   layout,
		engine:   grid.NewGridEngine(),
	}
}

// Engine returns the engine of the group, for setting track hints.
func (g *Group) Engine() *grid.GridEngine { return g.engine }

// Layout returns the layout of the group.
func (g *Group) Layout() GridLayout { return g.layout }

// SetLayout replaces the layout. It takes effect on the next UpdateChildLayout.
func (g *Group) SetLayout(l GridLayout) { g.layout = l }

// Rect returns the rectangle the group was last given.
func (g *Group) Rect() grid.Rect { return g.rect }

// SizeBounds implements Widget. The bounds come from the last layout pass;
// a group that was never laid out accepts any size.
func (g *Group) SizeBounds() grid.SizeBounds {
	if !g.solved {
		return grid.DefaultSizeBounds()
	}
	return g.engine.ActualSizeBounds()
}

// SetRect implements Widget. The children are not moved until
// UpdateChildLayout runs.
func (g *Group) SetRect(r grid.Rect) {
	g.rect = r
	g.engine.DesiredSize = r.Dims()
}

// SetBounds is SetRect under the name containers use.
func (g *Group) SetBounds(r grid.Rect) { g.SetRect(r) }

// Results returns the outcome of the last pass for every child that the
// layout placed, in container order.
func (g *Group) Results() []grid.SolveResult { return g.results }

// UpdateChildLayout solves the grid for the current children and gives every
// solved child its rectangle. Children that could not be solved keep their
// previous rectangle. Nested groups are laid out afterwards, reusing cache.
func (g *Group) UpdateChildLayout(cache *grid.UpdateCache) error {
	num := g.children.NumChildren()
	g.engine.SetGridSize(g.layout.GridSize(num))

	g.hints = g.hints[:0]
	g.placed = g.placed[:0]
	g.children.Children(func(c Child) grid.LoopFlow {
		pos, ok := g.layout.Positions(c.Ident, c.Index, num)
		if !ok {
			return grid.Continue
		}
		own := c.Widget.SizeBounds()
		pos.SizeBounds = grid.SizeBounds{
			Min: pos.SizeBounds.BoundRect(own.Min),
			Max: pos.SizeBounds.BoundRect(own.Max),
		}
		g.hints = append(g.hints, pos)
		g.placed = append(g.placed, c)
		return grid.Continue
	})

	if cap(g.results) < len(g.hints) {
		g.results = make([]grid.SolveResult, len(g.hints))
	}
	g.results = g.results[:len(g.hints)]

	if err := g.engine.UpdateEngine(g.hints, g.results, cache); err != nil {
		return fmt.Errorf("failed to lay out group: %w", err)
	}
	g.solved = true

	origin := grid.Point{X: g.rect.X, Y: g.rect.Y}
	for i, res := range g.results {
		if res.Err != nil {
			continue
		}
		g.placed[i].Widget.SetRect(res.Rect.Translate(origin))
	}

	for i, c := range g.placed {
		sub, ok := c.Widget.(*Group)
		if !ok || g.results[i].Err != nil {
			continue
		}
		if err := sub.UpdateChildLayout(cache); err != nil {
			return fmt.Errorf("child %s: %w", c.Ident, err)
		}
	}
	return nil
}
