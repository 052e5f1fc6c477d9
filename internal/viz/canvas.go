package viz

import (
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// RGB is an opaque terminal color. Alpha is resolved before it reaches the
// canvas by blending toward the background.
type RGB struct {
	R, G, B uint8
}

// Canvas is a Braille-cell drawing surface. Each character cell holds a 2x4
// dot grid, so the canvas resolves (Width*2) x (Height*4) sub-pixels, with
// one foreground color per cell (last write wins).
type Canvas struct {
	Width, Height int
	cells         [][]rune
	colors        [][]RGB
	painted       [][]bool
}

func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{
		Width:   w,
		Height:  h,
		cells:   make([][]rune, h),
		colors:  make([][]RGB, h),
		painted: make([][]bool, h),
	}
	for i := range c.cells {
		c.cells[i] = make([]rune, w)
		c.colors[i] = make([]RGB, w)
		c.painted[i] = make([]bool, w)
		for j := range c.cells[i] {
			c.cells[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// SubSize reports the sub-pixel resolution of the canvas.
func (c *Canvas) SubSize() (w, h int) {
	return c.Width * 2, c.Height * 4
}

// Set lights the sub-pixel at (x, y) with the given color.
func (c *Canvas) Set(x, y int, col RGB) {
	if x < 0 || y < 0 {
		return
	}

	cc := x / 2
	row := y / 4
	if cc >= c.Width || row >= c.Height {
		return
	}

	subX := x % 2
	subY := y % 4

	c.cells[row][cc] |= rune(pixelMap[subY][subX])
	c.colors[row][cc] = col
	c.painted[row][cc] = true
}

// Clear resets every cell to the empty braille character.
func (c *Canvas) Clear() {
	for i := range c.cells {
		for j := range c.cells[i] {
			c.cells[i][j] = 0x2800
			c.painted[i][j] = false
		}
	}
}

// DrawLine draws a colored line using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col RGB) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Cell returns the rune, color and painted flag at a character position.
func (c *Canvas) Cell(row, col int) (rune, RGB, bool) {
	if row < 0 || row >= c.Height || col < 0 || col >= c.Width {
		return 0x2800, RGB{}, false
	}
	return c.cells[row][col], c.colors[row][col], c.painted[row][col]
}

// String renders the canvas with per-cell ANSI colors. Color sequences are
// emitted only on transitions to keep the output compact.
func (c *Canvas) String() string {
	var b strings.Builder
	st := newANSIState()
	for i := range c.cells {
		for j, r := range c.cells[i] {
			if c.painted[i][j] {
				st.set(&b, c.colors[i][j])
			}
			b.WriteRune(r)
		}
		st.reset(&b)
		b.WriteString("\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
