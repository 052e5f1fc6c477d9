package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// GradientText renders text with a per-rune color sweep between two stops,
// used for the header so the chrome picks up the active theme's gradient.
func GradientText(text string, start, end colorful.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	if len(runes) == 1 {
		r, g, b := start.RGB255()
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(hexColor(r, g, b))).Render(text)
	}

	var result strings.Builder
	n := len(runes)
	for i, c := range runes {
		t := float64(i) / float64(n-1)
		r, g, b := start.BlendRgb(end, t).RGB255()
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(hexColor(r, g, b)))
		result.WriteString(style.Render(string(c)))
	}
	return result.String()
}

func hexColor(r, g, b uint8) string {
	const digits = "0123456789abcdef"
	return string([]byte{
		'#',
		digits[r>>4], digits[r&0xf],
		digits[g>>4], digits[g&0xf],
		digits[b>>4], digits[b&0xf],
	})
}
