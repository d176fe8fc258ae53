package grid

// cell is what one widget asks of one track. slot indexes GridDims.dims, so
// columns come first and rows follow.
type cell struct {
	widget int
	slot   int
	min    Px
}

func (c cell) before(o cell) bool {
	return c.widget < o.widget || (c.widget == o.widget && c.slot < o.slot)
}

// UpdateCache holds the scratch buffers of a solve. A caller that lays out
// the same container every frame keeps one cache around so the engine does
// not allocate on every pass. The engine resets the cache when a pass starts;
// nothing in it survives from one pass to the next.
type UpdateCache struct {
	cells  []cell
	status []error
	dirty  []bool
	frac   []int
	shares []Px
}

// NewUpdateCache returns an empty cache.
func NewUpdateCache() *UpdateCache {
	return &UpdateCache{}
}

// Reset empties the cache and keeps its storage.
func (c *UpdateCache) Reset() {
	c.cells = c.cells[:0]
	clear(c.status)
	c.status = c.status[:0]
	c.dirty = c.dirty[:0]
	c.frac = c.frac[:0]
	c.shares = c.shares[:0]
}

// prepare sizes the per-widget and per-track buffers for one pass.
func (c *UpdateCache) prepare(numWidgets, numTracks int) {
	c.Reset()
	c.status = grow(c.status, numWidgets)
	c.dirty = grow(c.dirty, numTracks)
}

// grow returns s resliced to n zeroed elements, reallocating if needed.
func grow[T any](s []T, n int) []T {
	if cap(s) < n {
		return make([]T, n)
	}
	s = s[:n]
	clear(s)
	return s
}
