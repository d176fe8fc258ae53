package grid

import "fmt"

// SizeResult tells the caller of a GridTrack setter what happened to the
// track and whether further work is needed.
type SizeResult uint8

const (
	// NoEffect means the track size did not change.
	NoEffect SizeResult = iota
	// SizeUpscale means the track grew.
	SizeUpscale
	// SizeDownscale means no cell holds the track at its old size anymore.
	// The track fell back to its effective minimum and every remaining cell
	// must be replayed to find the new size.
	SizeDownscale
	// MinSizeUpscale means the cell-derived minimum grew.
	MinSizeUpscale
	// MinSizeDownscale means no cell holds the cell-derived minimum anymore.
	// The minimum was reset and every remaining cell minimum must be replayed.
	MinSizeDownscale
)

func (r SizeResult) String() string {
	switch r {
	case NoEffect:
		return "NoEffect"
	case SizeUpscale:
		return "SizeUpscale"
	case SizeDownscale:
		return "SizeDownscale"
	case MinSizeUpscale:
		return "MinSizeUpscale"
	case MinSizeDownscale:
		return "MinSizeDownscale"
	default:
		return fmt.Sprintf("SizeResult(%d)", uint8(r))
	}
}

// GridTrack is the sizing state of one row or column.
//
// Cells report their sizes through SetCellSize and SetCellMinSize, always
// passing the value they reported last time. The track counts how many cells
// sit exactly at its current size so that a shrinking cell only forces a
// rescan when it was the last one holding the track open.
type GridTrack struct {
	size       Px
	numBiggest int

	minSize       Px
	minNumBiggest int

	minSizeMaster Px
	maxSizeMaster Px
	frSize        float32
}

// NewGridTrack returns a track with no floor, no ceiling and weight 1.
func NewGridTrack() GridTrack {
	return GridTrack{maxSizeMaster: Unbounded, frSize: 1}
}

// Size returns the resolved size of the track.
func (t *GridTrack) Size() Px { return t.size }

// MinSize returns the effective minimum: the larger of the cell-derived
// minimum and the track floor.
func (t *GridTrack) MinSize() Px { return max(t.minSize, t.minSizeMaster) }

// MaxSize returns the effective maximum. It never drops below MinSize.
func (t *GridTrack) MaxSize() Px { return max(t.maxSizeMaster, t.MinSize()) }

// Ceiling is the largest size the track can take no matter what its cells
// ask for.
func (t *GridTrack) Ceiling() Px { return max(t.maxSizeMaster, t.minSizeMaster) }

// FrSize returns the weight of the track.
func (t *GridTrack) FrSize() float32 { return t.frSize }

// SetFrSize sets the weight of the track. Negative weights count as zero.
func (t *GridTrack) SetFrSize(fr float32) {
	if fr < 0 {
		fr = 0
	}
	t.frSize = fr
}

// Hints returns the track-level constraints.
func (t *GridTrack) Hints() TrackHints {
	return TrackHints{MinSize: t.minSizeMaster, MaxSize: t.maxSizeMaster, FrSize: t.frSize}
}

// SetHints applies the floor, ceiling and weight in h. It returns the result of
// the last setter that changed the size.
func (t *GridTrack) SetHints(h TrackHints) SizeResult {
	t.SetFrSize(h.FrSize)
	res := t.SetMinSizeMaster(h.MinSize)
	if r := t.SetMaxSizeMaster(h.MaxSize); r != NoEffect {
		res = r
	}
	return res
}

// SetCellSize records that one cell of the track now wants newSize where it
// previously wanted oldSize. Zero means the cell wants nothing.
func (t *GridTrack) SetCellSize(newSize, oldSize Px) SizeResult {
	maxSize := t.MaxSize()
	newSize = min(newSize, maxSize)
	oldSize = min(oldSize, maxSize)

	if oldSize > 0 && oldSize == t.size {
		if t.numBiggest == 0 {
			panic("grid: GridTrack numBiggest underflow")
		}
		t.numBiggest--
	}
	if newSize > 0 && newSize == t.size {
		t.numBiggest++
	}

	switch {
	case newSize > t.size:
		t.size = newSize
		t.numBiggest = 1
		return SizeUpscale
	case t.numBiggest == 0 && t.size > t.MinSize():
		t.size = t.MinSize()
		return SizeDownscale
	}
	return NoEffect
}

// SetCellMinSize records that one cell of the track now needs at least newMin
// where it previously needed oldMin.
func (t *GridTrack) SetCellMinSize(newMin, oldMin Px) SizeResult {
	ceiling := t.Ceiling()
	newMin = min(newMin, ceiling)
	oldMin = min(oldMin, ceiling)

	if oldMin > 0 && oldMin == t.minSize {
		if t.minNumBiggest == 0 {
			panic("grid: GridTrack minNumBiggest underflow")
		}
		t.minNumBiggest--
	}
	if newMin > 0 && newMin == t.minSize {
		t.minNumBiggest++
	}

	res := NoEffect
	switch {
	case newMin > t.minSize:
		t.minSize = newMin
		t.minNumBiggest = 1
		res = MinSizeUpscale
	case t.minNumBiggest == 0 && t.minSize > 0:
		t.minSize = 0
		res = MinSizeDownscale
	}

	// The minimum always wins over a previously resolved size.
	if t.size < t.MinSize() {
		t.size = t.MinSize()
		t.numBiggest = 0
		return SizeUpscale
	}
	return res
}

// SetMinSizeMaster sets the track floor.
func (t *GridTrack) SetMinSizeMaster(v Px) SizeResult {
	if v < 0 {
		v = 0
	}
	t.minSizeMaster = v
	t.minSize = min(t.minSize, t.Ceiling())
	switch {
	case t.size < t.MinSize():
		t.size = t.MinSize()
		t.numBiggest = 0
		return SizeUpscale
	case t.size > t.MaxSize():
		// A lower floor can uncover a ceiling it used to override.
		t.size = t.MaxSize()
		t.numBiggest = 0
		return SizeDownscale
	}
	return NoEffect
}

// SetMaxSizeMaster sets the track ceiling. A ceiling below the floor is
// ignored in favor of the floor.
func (t *GridTrack) SetMaxSizeMaster(v Px) SizeResult {
	if v < 0 {
		v = 0
	}
	t.maxSizeMaster = v
	t.minSize = min(t.minSize, t.Ceiling())
	if t.size > t.MaxSize() {
		t.size = t.MaxSize()
		t.numBiggest = 0
		return SizeDownscale
	}
	return NoEffect
}

// resolve moves the track to target, clamped into [MinSize, MaxSize], and
// drops the cell counts. The solver replays every cell afterwards.
func (t *GridTrack) resolve(target Px) {
	t.size = max(min(target, t.MaxSize()), t.MinSize())
	t.numBiggest = 0
}

// resetMins forgets every cell minimum so they can be replayed.
func (t *GridTrack) resetMins() {
	t.minSize = 0
	t.minNumBiggest = 0
}

// resetCells forgets every cell contribution, keeping the master hints.
func (t *GridTrack) resetCells() {
	t.resetMins()
	t.size = t.MinSize()
	t.numBiggest = 0
}

func (t *GridTrack) String() string {
	hi := "inf"
	if t.MaxSize() < Unbounded {
		hi = fmt.Sprint(t.MaxSize())
	}
	return fmt.Sprintf("%d [%d..%s] fr=%g", t.size, t.MinSize(), hi, t.frSize)
}
