package grid

// hintRect places a widget with the given bounds inside outer according to
// place. ok is false when outer is smaller than the widget minimum.
func hintRect(outer Rect, place Align2, bounds SizeBounds) (Rect, bool) {
	if bounds.Min.Width > outer.Width || bounds.Min.Height > outer.Height {
		return Rect{}, false
	}
	x, w := hintAxis(outer.X, outer.Width, place.X, bounds.Min.Width, bounds.Max.Width)
	y, h := hintAxis(outer.Y, outer.Height, place.Y, bounds.Min.Height, bounds.Max.Height)
	return Rect{X: x, Y: y, Width: w, Height: h}, true
}

// hintAxis places a span of length [lo, hi] inside [start, start+size).
func hintAxis(start, size Px, place Align, lo, hi Px) (Px, Px) {
	hi = max(hi, lo)
	switch place {
	case Start:
		return start, lo
	case End:
		return start + size - lo, lo
	case Center:
		return start + (size-lo)/2, lo
	default:
		if size > hi {
			diff := size - hi
			return start + diff/2 + diff%2, hi
		}
		return start, size
	}
}
