package field

import "math"

// Grid returns the ordered set of sample points covering a width×height
// viewport at the given spacing, plus one extra row and column so vectors
// reach the right and bottom edges. Points are laid out row-major and every
// coordinate is an exact multiple of spacing.
//
// A zero or negative dimension or spacing yields an empty grid; the renderer
// then draws nothing rather than failing.
func Grid(width, height, spacing float64) []Vec2 {
	if width <= 0 || height <= 0 || spacing <= 0 {
		return nil
	}
	cols := int(math.Ceil(width/spacing)) + 1
	rows := int(math.Ceil(height/spacing)) + 1
	pts := make([]Vec2, 0, cols*rows)
	for r := 0; r < rows; r++ {
		y := float64(r) * spacing
		for c := 0; c < cols; c++ {
			pts = append(pts, Vec2{X: float64(c) * spacing, Y: y})
		}
	}
	return pts
}

// GridDims reports the column and row counts Grid produces for the given
// viewport, without allocating the points.
func GridDims(width, height, spacing float64) (cols, rows int) {
	if width <= 0 || height <= 0 || spacing <= 0 {
		return 0, 0
	}
	return int(math.Ceil(width/spacing)) + 1, int(math.Ceil(height/spacing)) + 1
}
