package export

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/san-kum/fieldviz/internal/field"
	"github.com/san-kum/fieldviz/internal/palette"
)

// ImageSurface rasterizes strokes into an RGBA image. Lines are drawn with
// a square pen sized to the stroke width and composited source-over, which
// is plenty for snapshot output.
type ImageSurface struct {
	img        *image.RGBA
	background color.RGBA
}

// NewImageSurface allocates a width×height raster filled with the theme
// background.
func NewImageSurface(width, height int, background palette.Color) *ImageSurface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s := &ImageSurface{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		background: color.RGBA{R: background.R, G: background.G, B: background.B, A: 255},
	}
	s.Clear()
	return s
}

func (s *ImageSurface) Size() (float64, float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *ImageSurface) Clear() {
	b := s.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			s.img.SetRGBA(x, y, s.background)
		}
	}
}

func (s *ImageSurface) Line(from, to field.Vec2, c palette.Color, width float64) {
	radius := int(width/2 + 0.5)
	x0, y0 := int(from.X+0.5), int(from.Y+0.5)
	x1, y1 := int(to.X+0.5), int(to.Y+0.5)

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
	e := dx - dy

	for {
		s.stamp(x0, y0, radius, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x0 += sx
		}
		if e2 < dx {
			e += dx
			y0 += sy
		}
	}
}

// Image returns the rendered raster.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// EncodePNG writes the raster as PNG.
func (s *ImageSurface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

// stamp blends a square pen onto the raster.
func (s *ImageSurface) stamp(cx, cy, radius int, c palette.Color) {
	a := math.Max(0, math.Min(1, c.A))
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			if !(image.Point{X: x, Y: y}.In(s.img.Bounds())) {
				continue
			}
			dst := s.img.RGBAAt(x, y)
			s.img.SetRGBA(x, y, color.RGBA{
				R: mix(dst.R, c.R, a),
				G: mix(dst.G, c.G, a),
				B: mix(dst.B, c.B, a),
				A: 255,
			})
		}
	}
}

func mix(dst, src uint8, a float64) uint8 {
	return uint8(float64(dst) + (float64(src)-float64(dst))*a)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
