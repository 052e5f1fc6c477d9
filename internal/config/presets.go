package config

import "sort"

// presets are named tunings layered over the defaults.
var presets = map[string]func(*Config){
	"default": func(*Config) {},
	"dense": func(c *Config) {
		c.Spacing = 16
		c.ArrowLength = 9
	},
	"sparse": func(c *Config) {
		c.Spacing = 48
		c.ArrowLength = 22
	},
	"calm": func(c *Config) {
		c.MaxStrength = 1.0
		c.Smoothing = true
	},
	"storm": func(c *Config) {
		c.MaxStrength = 3.5
		c.K2 = 0.05
		c.MaxColorDist = 600
	},
}

// GetPreset returns a fresh config for the named preset, or nil if the name
// is unknown.
func GetPreset(name string) *Config {
	apply, ok := presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// ListPresets returns the available preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
