// Package render turns solved layouts into text: aligned tables of rects and
// tracks, and box drawings on a character canvas.
package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Align provides text alignment within a column
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Measure returns the display width of a string
// This correctly handles emoji and wide characters (e.g., CJK)
func Measure(s string) int {
	return runewidth.StringWidth(s)
}

// Pad pads s with spaces to width display columns. Strings at least width
// wide are returned as is.
func Pad(s string, width int, align Align) string {
	padding := width - Measure(s)
	if padding <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", padding) + s
	case AlignCenter:
		left := padding / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", padding-left)
	default:
		return s + strings.Repeat(" ", padding)
	}
}

// Truncate truncates a string to the given display width
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if Measure(s) <= width {
		return s
	}
	var b strings.Builder
	currentWidth := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if currentWidth+rw > width {
			break
		}
		b.WriteRune(r)
		currentWidth += rw
	}
	return b.String()
}

// Fit truncates s to width and pads it to exactly width columns, unless a
// wide rune straddles the edge.
func Fit(s string, width int, align Align) string {
	return Pad(Truncate(s, width), width, align)
}
