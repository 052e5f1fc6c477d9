// Package palette maps field distances to colors. Each theme carries a fixed
// two-stop gradient (near-cursor and far color) plus an alpha ramp; mapping
// is continuous and monotonic in distance so the field shades smoothly with
// no banding.
package palette

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA sample produced by the mapper. Alpha is kept as a
// fraction so backends without alpha channels can blend toward their
// background instead.
type Color struct {
	R, G, B uint8
	A       float64
}

// Theme defines one gradient table and the chrome colors that go with it.
type Theme struct {
	Name string

	// Gradient endpoints: Near colors the cursor neighborhood, Far colors
	// everything at or beyond the normalization distance.
	Near colorful.Color
	Far  colorful.Color

	// Alpha ramps from AlphaMax at the cursor down to AlphaFloor, never
	// below it, so distant vectors stay faintly visible.
	AlphaMax   float64
	AlphaFloor float64

	// Background is the surface clear color.
	Background Color

	// TUI chrome.
	Accent lipgloss.Color
	Muted  lipgloss.Color
}

// Built-in themes. Dark and Light are the two canonical gradients; the rest
// are decorative extras the hosts may cycle through.
var (
	Dark = Theme{
		Name:       "dark",
		Near:       hex("#38bdf8"), // cyan-leaning blue
		Far:        hex("#6b5b95"), // muted purple
		AlphaMax:   0.90,
		AlphaFloor: 0.15,
		Background: Color{R: 10, G: 10, B: 18, A: 1},
		Accent:     lipgloss.Color("#38bdf8"),
		Muted:      lipgloss.Color("#44475a"),
	}

	Light = Theme{
		Name:       "light",
		Near:       hex("#2563eb"), // blue
		Far:        hex("#9ca3af"), // gray
		AlphaMax:   0.85,
		AlphaFloor: 0.08,
		Background: Color{R: 250, G: 250, B: 250, A: 1},
		Accent:     lipgloss.Color("#2563eb"),
		Muted:      lipgloss.Color("#9ca3af"),
	}

	Retro = Theme{
		Name:       "retro",
		Near:       hex("#88ff88"),
		Far:        hex("#005522"),
		AlphaMax:   0.90,
		AlphaFloor: 0.12,
		Background: Color{R: 0, G: 17, B: 0, A: 1},
		Accent:     lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
	}

	Ocean = Theme{
		Name:       "ocean",
		Near:       hex("#00e5ff"),
		Far:        hex("#0a4a6e"),
		AlphaMax:   0.90,
		AlphaFloor: 0.14,
		Background: Color{R: 2, G: 19, B: 31, A: 1},
		Accent:     lipgloss.Color("#00a8cc"),
		Muted:      lipgloss.Color("#4488aa"),
	}

	// Themes holds every selectable theme, canonical pair first.
	Themes = []Theme{Dark, Light, Retro, Ocean}
)

// Get returns a theme by name, falling back to Dark.
func Get(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Dark
}

// Names returns the selectable theme names in cycle order.
func Names() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Map resolves the color for a vector at the given distance from the
// pointer. Distance is normalized against maxDist; beyond it the color
// saturates at the Far stop and the alpha floor.
func (t Theme) Map(distance, maxDist float64) Color {
	f := 1.0
	if maxDist > 0 {
		f = clamp01(distance / maxDist)
	}
	c := t.Near.BlendRgb(t.Far, f)
	r, g, b := c.RGB255()
	return Color{
		R: r,
		G: g,
		B: b,
		A: t.AlphaMax - (t.AlphaMax-t.AlphaFloor)*f,
	}
}

// Luminance returns the perceptual brightness of c in [0,1], used by tests
// to check gradient monotonicity.
func (c Color) Luminance() float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("palette: bad hex literal " + s)
	}
	return c
}
