package grid

import "math"

// frDivider splits a pixel length between weighted tracks. Fractional pixels
// are carried from one track to the next and the last track takes whatever
// is left, so the shares always add up to the full length.
type frDivider struct {
	numTracks int
	size      Px
	frTotal   float64
	remainder float64
}

func newFrDivider(numTracks int, size Px, frTotal float64) frDivider {
	return frDivider{numTracks: numTracks, size: size, frTotal: frTotal}
}

// divvy returns the share of the next track.
func (d *frDivider) divvy(fr float32) Px {
	if d.numTracks <= 0 {
		return 0
	}
	d.numTracks--
	if d.numTracks == 0 {
		share := d.size
		d.size = 0
		return share
	}
	if d.frTotal <= 0 {
		return 0
	}

	exact := float64(d.size) * float64(fr) / d.frTotal
	whole, frac := math.Modf(exact)
	d.remainder += frac
	carry, rest := math.Modf(d.remainder)
	d.remainder = rest

	share := min(Px(whole)+Px(carry), d.size)
	d.frTotal -= float64(fr)
	d.size -= share
	return share
}
