package grid

import "fmt"

// GridEngine sizes the tracks of a grid from the constraints of the widgets
// placed in it and computes one rectangle per widget.
//
// The engine remembers what every widget asked of every track on the previous
// pass. A new pass only reports the differences to the tracks, and a track
// whose largest minimum went away is rebuilt from the current requests.
type GridEngine struct {
	dims GridDims

	// DesiredSize is the size the grid should fill. Weighted tracks share the
	// space left after every minimum is met.
	DesiredSize Dims

	cells     []cell
	replayAll bool
}

// NewGridEngine returns an engine with an empty grid.
func NewGridEngine() *GridEngine {
	return &GridEngine{}
}

// Grid returns the tracks of the engine. Track sizes change only through the
// engine; callers should treat the result as read-only.
func (e *GridEngine) Grid() *GridDims {
	return &e.dims
}

// GridSize returns the number of columns and rows.
func (e *GridEngine) GridSize() GridSize {
	return e.dims.GridSize()
}

// SetGridSize changes the number of columns and rows. Every track is rebuilt on
// the next pass.
func (e *GridEngine) SetGridSize(size GridSize) {
	if size == e.dims.GridSize() {
		return
	}
	e.dims.SetGridSize(size)
	e.replayAll = true
}

// SetColHints sets the constraints of column i. It returns false when i is out
// of range.
func (e *GridEngine) SetColHints(i int, h TrackHints) bool {
	t, ok := e.dims.Col(i)
	if !ok {
		return false
	}
	e.setHints(t, h)
	return true
}

// SetRowHints sets the constraints of row i. It returns false when i is out of
// range.
func (e *GridEngine) SetRowHints(i int, h TrackHints) bool {
	t, ok := e.dims.Row(i)
	if !ok {
		return false
	}
	e.setHints(t, h)
	return true
}

func (e *GridEngine) setHints(t *GridTrack, h TrackHints) {
	if t.Hints() == h {
		return
	}
	t.SetHints(h)
	// Master bounds clamp every cell request, so the counts kept against the
	// old bounds no longer hold.
	e.replayAll = true
}

// ColHints returns the constraints of column i.
func (e *GridEngine) ColHints(i int) (TrackHints, bool) {
	t, ok := e.dims.Col(i)
	if !ok {
		return TrackHints{}, false
	}
	return t.Hints(), true
}

// RowHints returns the constraints of row i.
func (e *GridEngine) RowHints(i int) (TrackHints, bool) {
	t, ok := e.dims.Row(i)
	if !ok {
		return TrackHints{}, false
	}
	return t.Hints(), true
}

// ActualSize returns the size of the grid after the last pass.
func (e *GridEngine) ActualSize() Dims {
	return Dims{Width: e.dims.Width(), Height: e.dims.Height()}
}

// ActualSizeBounds returns the smallest and largest size the grid can take
// with the constraints of the last pass. A container nesting this grid uses it
// as its own size bounds.
func (e *GridEngine) ActualSizeBounds() SizeBounds {
	return SizeBounds{
		Min: Dims{Width: e.dims.MinWidth(), Height: e.dims.MinHeight()},
		Max: Dims{Width: growLimit(e.dims.columns()), Height: growLimit(e.dims.rows())},
	}
}

// growLimit is the largest size weighted distribution can give tracks.
func growLimit(tracks []GridTrack) Px {
	var n Px
	for i := range tracks {
		t := &tracks[i]
		if t.frSize > 0 {
			n = SatAdd(n, t.MaxSize())
		} else {
			n = SatAdd(n, t.MinSize())
		}
	}
	return n
}

// UpdateEngine solves the grid for hints and writes one result per hint into
// rects. rects must be at least as long as hints. cache may be nil.
//
// Widgets whose span does not fit the grid or whose bounds cannot be met get
// an error wrapping ErrCellOutOfBounds or ErrWidgetUnsolvable in their slot;
// the other widgets are still solved.
func (e *GridEngine) UpdateEngine(hints []WidgetPos, rects []SolveResult, cache *UpdateCache) error {
	return e.UpdateEngineFunc(hints, rects, cache, nil)
}

// UpdateEngineFunc is UpdateEngine with a visitor called after each widget is
// written to rects. When visit returns Break the pass stops and ErrAbort is
// returned; the slots after the current widget are left untouched.
func (e *GridEngine) UpdateEngineFunc(hints []WidgetPos, rects []SolveResult, cache *UpdateCache, visit func(i int, res SolveResult) LoopFlow) error {
	if len(rects) < len(hints) {
		return fmt.Errorf("grid: %d result slots for %d widgets", len(rects), len(hints))
	}
	if cache == nil {
		cache = NewUpdateCache()
	}
	cache.prepare(len(hints), len(e.dims.dims))

	for i := range hints {
		e.contribute(cache, i, &hints[i])
	}

	e.applyMins(cache)

	e.distribute(cache, e.dims.columns(), e.DesiredSize.Width)
	e.distribute(cache, e.dims.rows(), e.DesiredSize.Height)

	// Every cell stretches to fill its tracks, so each one now sits at the
	// resolved size and counts toward numBiggest. The counts are rebuilt this
	// way on every pass since distribute resolves every track again.
	for _, c := range cache.cells {
		t := &e.dims.dims[c.slot]
		t.SetCellSize(t.size, 0)
	}
	e.cells = append(e.cells[:0], cache.cells...)

	for i := range hints {
		res := e.place(&hints[i], cache.status[i])
		if res.Err != nil {
			Logger().Debug("grid: widget not solved", "widget", i, "err", res.Err)
			res.Err = fmt.Errorf("widget %d: %w", i, res.Err)
		}
		rects[i] = res
		if visit != nil && visit(i, res) == Break {
			Logger().Debug("grid: solve aborted", "widget", i, "remaining", len(hints)-i-1)
			return ErrAbort
		}
	}
	return nil
}

// contribute turns the minimum size of widget i into per-track requests.
func (e *GridEngine) contribute(cache *UpdateCache, i int, h *WidgetPos) {
	cs, ce, okX := h.Span.X.resolve(e.dims.numCols)
	rs, re, okY := h.Span.Y.resolve(e.dims.numRows)
	if !okX || !okY || cs == ce || rs == re {
		cache.status[i] = ErrCellOutOfBounds
		return
	}

	needW := max(h.SizeBounds.Min.Width+h.Margins.Width(), 0)
	needH := max(h.SizeBounds.Min.Height+h.Margins.Height(), 0)
	fitW := e.spread(cache, i, cs, ce, needW)
	fitH := e.spread(cache, i, e.dims.numCols+rs, e.dims.numCols+re, needH)
	if !fitW || !fitH {
		cache.status[i] = ErrWidgetUnsolvable
	}
}

// spread splits need over the tracks [from, to). Shares are as even as
// possible with the remainder on the leading tracks; a track never takes more
// than its ceiling and what it cannot hold moves on to the tracks that still
// have room. It returns false when need does not fit.
func (e *GridEngine) spread(cache *UpdateCache, widget, from, to int, need Px) bool {
	base := len(cache.cells)
	for s := from; s < to; s++ {
		cache.cells = append(cache.cells, cell{widget: widget, slot: s})
	}
	cells := cache.cells[base:]

	left, open := need, len(cells)
	for left > 0 && open > 0 {
		share, extra := left/open, left%open
		k, stillOpen := 0, 0
		for j := range cells {
			room := e.dims.dims[cells[j].slot].Ceiling() - cells[j].min
			if room <= 0 {
				continue
			}
			want := share
			if k < extra {
				want++
			}
			k++
			got := min(want, room)
			cells[j].min += got
			left -= got
			if got < room {
				stillOpen++
			}
		}
		open = stillOpen
	}
	return left == 0
}

// applyMins reports the cell minimums of this pass to the tracks as changes
// against the previous pass.
func (e *GridEngine) applyMins(cache *UpdateCache) {
	if e.replayAll {
		for i := range e.dims.dims {
			e.dims.dims[i].resetCells()
		}
		e.cells = e.cells[:0]
		e.replayAll = false
	}

	// Both lists are ordered by widget, then slot.
	next, prev := cache.cells, e.cells
	i, j := 0, 0
	for i < len(next) || j < len(prev) {
		switch {
		case j == len(prev) || (i < len(next) && next[i].before(prev[j])):
			e.setCellMin(cache, next[i].slot, next[i].min, 0)
			i++
		case i == len(next) || prev[j].before(next[i]):
			e.setCellMin(cache, prev[j].slot, 0, prev[j].min)
			j++
		default:
			e.setCellMin(cache, next[i].slot, next[i].min, prev[j].min)
			i++
			j++
		}
	}

	replayed := 0
	for s, dirty := range cache.dirty {
		if dirty {
			e.dims.dims[s].resetMins()
			replayed++
		}
	}
	if replayed == 0 {
		return
	}
	Logger().Debug("grid: replaying cell minimums", "tracks", replayed)
	for _, c := range next {
		if cache.dirty[c.slot] {
			e.dims.dims[c.slot].SetCellMinSize(c.min, 0)
		}
	}
}

func (e *GridEngine) setCellMin(cache *UpdateCache, slot int, newMin, oldMin Px) {
	if cache.dirty[slot] {
		return
	}
	if e.dims.dims[slot].SetCellMinSize(newMin, oldMin) == MinSizeDownscale {
		cache.dirty[slot] = true
	}
}

// distribute resolves the tracks of one axis. Every track starts at its
// effective minimum; the space left up to desired goes to the weighted tracks
// in proportion to their weights. A track that would pass its maximum is
// pinned there and the rest is divided again.
func (e *GridEngine) distribute(cache *UpdateCache, tracks []GridTrack, desired Px) {
	free := desired
	var frTotal float64
	frac := cache.frac[:0]
	for i := range tracks {
		t := &tracks[i]
		free -= t.MinSize()
		if t.frSize > 0 && t.MaxSize() > t.MinSize() {
			frac = append(frac, i)
			frTotal += float64(t.frSize)
		} else {
			t.resolve(t.MinSize())
		}
	}
	free = max(free, 0)

	shares := cache.shares[:0]
	for len(frac) > 0 {
		shares = shares[:0]
		d := newFrDivider(len(frac), free, frTotal)
		for _, i := range frac {
			shares = append(shares, d.divvy(tracks[i].frSize))
		}

		kept := frac[:0]
		pinned := false
		for k, i := range frac {
			t := &tracks[i]
			if SatAdd(t.MinSize(), shares[k]) > t.MaxSize() {
				free -= t.MaxSize() - t.MinSize()
				frTotal -= float64(t.frSize)
				t.resolve(t.MaxSize())
				pinned = true
				continue
			}
			kept = append(kept, i)
		}
		if !pinned {
			for k, i := range frac {
				t := &tracks[i]
				t.resolve(t.MinSize() + shares[k])
			}
			break
		}
		frac = kept
		free = max(free, 0)
	}
	cache.frac, cache.shares = frac, shares
}

// place computes the rectangle of one widget from the resolved tracks.
func (e *GridEngine) place(h *WidgetPos, status error) SolveResult {
	if status != nil {
		return SolveResult{Err: status}
	}
	outer, ok := e.dims.SpanRect(h.Span)
	if !ok {
		return SolveResult{Err: ErrCellOutOfBounds}
	}
	r, ok := hintRect(h.Margins.Apply(outer), h.PlaceInCell, h.SizeBounds)
	if !ok {
		return SolveResult{Err: ErrWidgetUnsolvable}
	}
	return SolveResult{Rect: r}
}
