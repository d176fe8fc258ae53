package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/young1lin/derin-layout/internal/grid"
)

// wideTail fills the cell covered by the right half of a wide rune.
const wideTail rune = 0

// Canvas is a grid of character cells. One cell stands for one pixel of the
// layout it draws.
type Canvas struct {
	width  int
	height int
	cells  []rune
}

// NewCanvas returns a blank canvas.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	c := &Canvas{width: width, height: height, cells: make([]rune, width*height)}
	c.Clear()
	return c
}

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.width }

// Height returns the number of lines.
func (c *Canvas) Height() int { return c.height }

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = ' '
	}
}

// Set puts r at (x, y). Points off the canvas are ignored.
func (c *Canvas) Set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = r
}

// At returns the rune at (x, y), or a space off the canvas.
func (c *Canvas) At(x, y int) rune {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return ' '
	}
	return c.cells[y*c.width+x]
}

// Text writes s starting at (x, y), clipped to maxWidth columns and to the
// canvas edge.
func (c *Canvas) Text(x, y int, s string, maxWidth int) {
	s = Truncate(s, min(maxWidth, c.width-x))
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		c.Set(x, y, r)
		if w == 2 {
			c.Set(x+1, y, wideTail)
		}
		x += w
	}
}

// Box draws the outline of r with a label on its top edge. Rects smaller than
// 2x2 are filled instead, since they have no inside.
func (c *Canvas) Box(r grid.Rect, label string) {
	if r.IsEmpty() {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1
	if r.Width < 2 || r.Height < 2 {
		for y := r.Y; y <= bottom; y++ {
			for x := r.X; x <= right; x++ {
				c.Set(x, y, '█')
			}
		}
		return
	}

	for x := r.X + 1; x < right; x++ {
		c.Set(x, r.Y, '─')
		c.Set(x, bottom, '─')
	}
	for y := r.Y + 1; y < bottom; y++ {
		c.Set(r.X, y, '│')
		c.Set(right, y, '│')
	}
	c.Set(r.X, r.Y, '┌')
	c.Set(right, r.Y, '┐')
	c.Set(r.X, bottom, '└')
	c.Set(right, bottom, '┘')

	if label != "" && r.Width > 2 {
		c.Text(r.X+1, r.Y, label, r.Width-2)
	}
}

// Lines returns the canvas as strings, one per line, trailing blanks trimmed.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.height)
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		b.Reset()
		for _, r := range c.cells[y*c.width : (y+1)*c.width] {
			if r != wideTail {
				b.WriteRune(r)
			}
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return lines
}

// String returns the lines joined by newlines.
func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}

// Draw renders each solved result as a labelled box on a canvas of the given
// size. Unsolved results are skipped.
func Draw(width, height int, names []string, results []grid.SolveResult) *Canvas {
	c := NewCanvas(width, height)
	for i, res := range results {
		if res.Err != nil {
			continue
		}
		var name string
		if i < len(names) {
			name = names[i]
		}
		c.Box(res.Rect, name)
	}
	return c
}
