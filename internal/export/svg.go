// Package export renders field frames to files: SVG for vector output and
// PNG for raster snapshots. Both implement the engine's drawing surface, so
// a snapshot is just one RenderFrame call against an exporter.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/fieldviz/internal/field"
	"github.com/san-kum/fieldviz/internal/palette"
)

// SVGSurface accumulates line elements and serializes them as a standalone
// SVG document.
type SVGSurface struct {
	width, height float64
	background    palette.Color
	lines         []string
}

// NewSVGSurface returns an empty SVG surface with the given pixel dimensions
// and background fill.
func NewSVGSurface(width, height float64, background palette.Color) *SVGSurface {
	return &SVGSurface{width: width, height: height, background: background}
}

func (s *SVGSurface) Size() (float64, float64) { return s.width, s.height }

func (s *SVGSurface) Clear() { s.lines = s.lines[:0] }

func (s *SVGSurface) Line(from, to field.Vec2, c palette.Color, width float64) {
	s.lines = append(s.lines, fmt.Sprintf(
		`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="rgb(%d,%d,%d)" stroke-opacity="%.3f" stroke-width="%.2f" stroke-linecap="round"/>`,
		from.X, from.Y, to.X, to.Y, c.R, c.G, c.B, c.A, width))
}

// LineCount reports the number of strokes accumulated since the last clear.
func (s *SVGSurface) LineCount() int { return len(s.lines) }

// String serializes the document.
func (s *SVGSurface) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="rgb(%d,%d,%d)"/>
`, s.width, s.height, s.width, s.height, s.background.R, s.background.G, s.background.B))
	for _, l := range s.lines {
		sb.WriteString(l)
		sb.WriteString("\n")
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}
