package grid

import (
	"fmt"
	"math"
)

// Px is a length in pixels.
type Px = int

// Unbounded is the pixel value used for "no upper limit".
const Unbounded Px = math.MaxInt32

// Open marks an unset end of a TrRange. It lies far below any index so a
// negative index is never mistaken for an open end.
const Open = math.MinInt

// SatAdd adds two lengths, sticking at Unbounded instead of overflowing.
func SatAdd(a, b Px) Px {
	if a >= Unbounded || b >= Unbounded || a > Unbounded-b {
		return Unbounded
	}
	return a + b
}

// TrackHints are the user-supplied constraints for one row or column.
type TrackHints struct {
	// MinSize is the track floor. Cell minimums below it are ignored.
	MinSize Px
	// MaxSize is the track ceiling. When it is below MinSize, MinSize wins.
	MaxSize Px
	// FrSize is the share of free space the track receives, relative to the
	// other tracks on the same axis. Zero keeps the track at its minimum.
	FrSize float32
}

// DefaultTrackHints returns hints for an unconstrained track with weight 1.
func DefaultTrackHints() TrackHints {
	return TrackHints{MinSize: 0, MaxSize: Unbounded, FrSize: 1}
}

// TrRange is a half-open range of track indices. Either end may be Open,
// meaning the first or one past the last track of the grid.
type TrRange struct {
	Start, End int
}

// Cell returns the range covering the single track n.
func Cell(n int) TrRange { return TrRange{Start: n, End: n + 1} }

// Span returns the range [start, end).
func Span(start, end int) TrRange { return TrRange{Start: start, End: end} }

// From returns the range from start to the last track.
func From(start int) TrRange { return TrRange{Start: start, End: Open} }

// To returns the range from the first track up to end.
func To(end int) TrRange { return TrRange{Start: Open, End: end} }

// All returns the range covering every track.
func All() TrRange { return TrRange{Start: Open, End: Open} }

// Size returns the number of tracks in the range, using start and end for
// open ends.
func (r TrRange) Size(start, end int) int {
	if r.Start != Open {
		start = r.Start
	}
	if r.End != Open {
		end = r.End
	}
	return end - start
}

// resolve maps the range onto a grid of n tracks. ok is false when the range
// reaches outside [0, n] or is reversed.
func (r TrRange) resolve(n int) (start, end int, ok bool) {
	start, end = 0, n
	if r.Start != Open {
		start = r.Start
	}
	if r.End != Open {
		end = r.End
	}
	if start < 0 || end > n || start > end {
		return 0, 0, false
	}
	return start, end, true
}

func (r TrRange) String() string {
	s, e := "", ""
	if r.Start != Open {
		s = fmt.Sprint(r.Start)
	}
	if r.End != Open {
		e = fmt.Sprint(r.End)
	}
	return s + ".." + e
}

// WidgetSpan is the column range (X) and row range (Y) a widget occupies.
type WidgetSpan struct {
	X, Y TrRange
}

// CellSpan returns the span of the single cell at (col, row).
func CellSpan(col, row int) WidgetSpan {
	return WidgetSpan{X: Cell(col), Y: Cell(row)}
}

// GridSize is a number of columns (X) and rows (Y).
type GridSize struct {
	X, Y int
}

// Dims is a width and height.
type Dims struct {
	Width, Height Px
}

// Point is a position in grid coordinates.
type Point struct {
	X, Y Px
}

// Rect is an axis-aligned rectangle. X and Y are the top-left corner.
type Rect struct {
	X, Y          Px
	Width, Height Px
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() Px { return r.X + r.Width }

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() Px { return r.Y + r.Height }

// Dims returns the size of the rectangle.
func (r Rect) Dims() Dims { return Dims{Width: r.Width, Height: r.Height} }

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Translate returns the rectangle moved by p.
func (r Rect) Translate(p Point) Rect {
	return Rect{X: r.X + p.X, Y: r.Y + p.Y, Width: r.Width, Height: r.Height}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// SizeBounds is the range of sizes a widget accepts.
type SizeBounds struct {
	Min, Max Dims
}

// DefaultSizeBounds accepts any size.
func DefaultSizeBounds() SizeBounds {
	return SizeBounds{Max: Dims{Width: Unbounded, Height: Unbounded}}
}

// MinBounds returns bounds with the given minimum and no maximum.
func MinBounds(min Dims) SizeBounds {
	return SizeBounds{Min: min, Max: Dims{Width: Unbounded, Height: Unbounded}}
}

// BoundRect clamps size into the bounds. The minimum wins when the bounds are
// inverted.
func (b SizeBounds) BoundRect(size Dims) Dims {
	if size.Width < b.Min.Width {
		size.Width = b.Min.Width
	} else if size.Width > b.Max.Width {
		size.Width = b.Max.Width
	}
	if size.Height < b.Min.Height {
		size.Height = b.Min.Height
	} else if size.Height > b.Max.Height {
		size.Height = b.Max.Height
	}
	return size
}

// Union returns the bounds accepted by both b and other. ok is false when
// they have no size in common.
func (b SizeBounds) Union(other SizeBounds) (SizeBounds, bool) {
	if b.Max.Width < other.Min.Width || b.Max.Height < other.Min.Height ||
		b.Min.Width > other.Max.Width || b.Min.Height > other.Max.Height {
		return SizeBounds{}, false
	}
	return SizeBounds{
		Min: Dims{Width: max(b.Min.Width, other.Min.Width), Height: max(b.Min.Height, other.Min.Height)},
		Max: Dims{Width: min(b.Max.Width, other.Max.Width), Height: min(b.Max.Height, other.Max.Height)},
	}, true
}

// Align is the placement of a widget inside its cell along one axis.
type Align uint8

const (
	Stretch Align = iota // Fill the cell, up to the widget maximum
	Start                // Minimum size at the start of the cell
	End                  // Minimum size at the end of the cell
	Center               // Minimum size centered in the cell
)

func (a Align) String() string {
	switch a {
	case Stretch:
		return "stretch"
	case Start:
		return "start"
	case End:
		return "end"
	case Center:
		return "center"
	default:
		return fmt.Sprintf("Align(%d)", uint8(a))
	}
}

// Align2 is a placement per axis.
type Align2 struct {
	X, Y Align
}

// Margins is empty space kept around a widget inside its cell.
type Margins struct {
	Left, Top, Right, Bottom Px
}

// Width returns Left + Right.
func (m Margins) Width() Px { return m.Left + m.Right }

// Height returns Top + Bottom.
func (m Margins) Height() Px { return m.Top + m.Bottom }

// Apply shrinks r by the margins.
func (m Margins) Apply(r Rect) Rect {
	return Rect{
		X:      r.X + m.Left,
		Y:      r.Y + m.Top,
		Width:  r.Width - m.Width(),
		Height: r.Height - m.Height(),
	}
}

// WidgetPos is everything the engine needs to know about one widget.
type WidgetPos struct {
	SizeBounds  SizeBounds
	Span        WidgetSpan
	PlaceInCell Align2
	Margins     Margins
}

// DefaultWidgetPos returns a position with unconstrained bounds and an empty
// span. Layouts fill in the span.
func DefaultWidgetPos() WidgetPos {
	return WidgetPos{
		SizeBounds: DefaultSizeBounds(),
		Span:       WidgetSpan{X: Span(0, 0), Y: Span(0, 0)},
	}
}

// SolveResult is the outcome for one widget: a rectangle, or an error
// wrapping ErrCellOutOfBounds or ErrWidgetUnsolvable.
type SolveResult struct {
	Rect Rect
	Err  error
}

// LoopFlow tells an iteration whether to keep going.
type LoopFlow uint8

const (
	Continue LoopFlow = iota
	Break
)
