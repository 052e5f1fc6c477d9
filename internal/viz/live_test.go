package viz

import (
	"testing"

	"github.com/san-kum/fieldviz/internal/palette"
)

func TestThemeChrome_UsesThemeColors(t *testing.T) {
	for _, th := range palette.Themes {
		ch := themeChrome(th)
		if got := ch.graph.GetForeground(); got != th.Accent {
			t.Errorf("%s: graph foreground = %v, want accent %v", th.Name, got, th.Accent)
		}
		if got := ch.label.GetForeground(); got != th.Muted {
			t.Errorf("%s: label foreground = %v, want muted %v", th.Name, got, th.Muted)
		}
		if got := ch.help.GetForeground(); got != th.Muted {
			t.Errorf("%s: help foreground = %v, want muted %v", th.Name, got, th.Muted)
		}
	}
}
