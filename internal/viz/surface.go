package viz

import (
	"github.com/san-kum/fieldviz/internal/field"
	"github.com/san-kum/fieldviz/internal/palette"
)

// CanvasSurface adapts a Braille Canvas to the engine's drawing surface.
// Coordinates are in sub-pixels. Terminal cells carry no alpha channel, so
// mapped colors are blended toward the theme background instead; line width
// is ignored because braille dots are already single sub-pixels.
type CanvasSurface struct {
	Canvas     *Canvas
	Background RGB
}

func (s *CanvasSurface) Size() (float64, float64) {
	w, h := s.Canvas.SubSize()
	return float64(w), float64(h)
}

func (s *CanvasSurface) Clear() {
	s.Canvas.Clear()
}

func (s *CanvasSurface) Line(from, to field.Vec2, c palette.Color, _ float64) {
	col := Blend(s.Background, RGB{R: c.R, G: c.G, B: c.B}, c.A)
	s.Canvas.DrawLine(
		int(from.X+0.5), int(from.Y+0.5),
		int(to.X+0.5), int(to.Y+0.5),
		col,
	)
}

// Blend composites fg over bg at the given alpha.
func Blend(bg, fg RGB, alpha float64) RGB {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	mix := func(b, f uint8) uint8 {
		return uint8(float64(b) + (float64(f)-float64(b))*alpha)
	}
	return RGB{R: mix(bg.R, fg.R), G: mix(bg.G, fg.G), B: mix(bg.B, fg.B)}
}

// BackgroundRGB converts a theme background to a canvas color.
func BackgroundRGB(c palette.Color) RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}
