package engine

import (
	"math"

	"github.com/san-kum/fieldviz/internal/field"
	"github.com/san-kum/fieldviz/internal/palette"
)

// Surface is the drawing target the host owns. Implementations need no
// state beyond the pixels: the renderer clears and redraws everything each
// frame, so a partially drawn frame is repaired by the next clear.
type Surface interface {
	// Size reports the drawable area in device pixels.
	Size() (w, h float64)
	// Clear wipes the surface to its background.
	Clear()
	// Line draws a stroke between two points. Backends without line-width
	// support may ignore width.
	Line(from, to field.Vec2, c palette.Color, width float64)
}

// Config collects every host-overridable rendering constant.
type Config struct {
	// Spacing is the pixel distance between adjacent sample points.
	Spacing float64
	// ArrowLength scales vector shafts: endpoint = point + dir·ArrowLength·mag.
	ArrowLength float64
	// Field holds the falloff constants.
	Field field.Params
	// MaxColorDist normalizes distance for the color gradient.
	MaxColorDist float64
	// Opacity multiplies every drawn alpha, 0..1.
	Opacity float64
	// MinDraw is the negligible-magnitude cutoff below which nothing draws.
	MinDraw float64
	// StrokeFloor is the base line width added to the magnitude, keeping
	// the faintest drawn vectors visible: width = StrokeFloor + magnitude.
	StrokeFloor float64
	// HeadThreshold is the magnitude above which arrowheads appear.
	HeadThreshold float64
	// FPS is the host frame rate, used only to tune pointer smoothing.
	FPS int
	// Smoothing enables spring-eased pointer tracking.
	Smoothing bool
}

// DefaultConfig returns the stock rendering tuning.
func DefaultConfig() Config {
	return Config{
		Spacing:       28,
		ArrowLength:   14,
		Field:         field.DefaultParams(),
		MaxColorDist:  420,
		Opacity:       1.0,
		MinDraw:       0.01,
		StrokeFloor:   0.5,
		HeadThreshold: 1.2,
		FPS:           60,
	}
}

const headAngle = math.Pi / 6 // arrowhead strokes sit ±30° off the shaft

// RenderFrame draws one complete frame: clear, evaluate every grid point
// against the pointer, draw shafts and arrowheads. No state survives between
// calls, which is what makes the field respond instantly. Returns the number
// of vectors drawn.
func RenderFrame(s Surface, grid []field.Vec2, pointer field.Vec2, theme palette.Theme, cfg Config) int {
	s.Clear()
	drawn := 0
	for _, pt := range grid {
		v := field.Eval(pt, pointer, cfg.Field)
		if v.Mag < cfg.MinDraw {
			continue
		}

		end := pt.Add(v.Dir.Scale(cfg.ArrowLength * v.Mag))
		c := theme.Map(v.Distance, cfg.MaxColorDist)
		c.A *= cfg.Opacity
		width := cfg.StrokeFloor + v.Mag

		s.Line(pt, end, c, width)
		if v.Mag > cfg.HeadThreshold {
			drawHead(s, end, v.Dir.Angle(), v.Mag, c, width)
		}
		drawn++
	}
	return drawn
}

// drawHead draws the two mirrored strokes forming an arrowhead at end,
// trailing back along the shaft and scaled by magnitude.
func drawHead(s Surface, end field.Vec2, angle, mag float64, c palette.Color, width float64) {
	length := 3 * mag
	for _, da := range [2]float64{headAngle, -headAngle} {
		a := angle + math.Pi + da
		tip := field.Vec2{
			X: end.X + length*math.Cos(a),
			Y: end.Y + length*math.Sin(a),
		}
		s.Line(end, tip, c, width)
	}
}
