// Package config holds the yaml-facing configuration surface: every
// rendering constant a host may override, plus named presets.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/fieldviz/internal/engine"
	"github.com/san-kum/fieldviz/internal/field"
)

const (
	DefaultSpacing      = 28.0
	DefaultArrowLength  = 14.0
	DefaultK1           = 0.01
	DefaultK2           = 0.1
	DefaultMaxStrength  = 2.0
	DefaultMinDistance  = 5.0
	DefaultMaxColorDist = 420.0
	DefaultOpacity      = 1.0
	DefaultFPS          = 60
)

type Config struct {
	Theme        string  `yaml:"theme"`
	Spacing      float64 `yaml:"spacing"`
	ArrowLength  float64 `yaml:"arrow_length"`
	K1           float64 `yaml:"k1"`
	K2           float64 `yaml:"k2"`
	MaxStrength  float64 `yaml:"max_strength"`
	MinDistance  float64 `yaml:"min_distance"`
	MaxColorDist float64 `yaml:"max_color_distance"`
	Opacity      float64 `yaml:"opacity"`
	FPS          int     `yaml:"fps"`
	Smoothing    bool    `yaml:"smoothing"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:        "dark",
		Spacing:      DefaultSpacing,
		ArrowLength:  DefaultArrowLength,
		K1:           DefaultK1,
		K2:           DefaultK2,
		MaxStrength:  DefaultMaxStrength,
		MinDistance:  DefaultMinDistance,
		MaxColorDist: DefaultMaxColorDist,
		Opacity:      DefaultOpacity,
		FPS:          DefaultFPS,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Engine maps the file-facing config onto the renderer's constants.
func (c *Config) Engine() engine.Config {
	return engine.Config{
		Spacing:     c.Spacing,
		ArrowLength: c.ArrowLength,
		Field: field.Params{
			K1:          c.K1,
			K2:          c.K2,
			MaxStrength: c.MaxStrength,
			MinDistance: c.MinDistance,
		},
		MaxColorDist:  c.MaxColorDist,
		Opacity:       c.Opacity,
		MinDraw:       0.01,
		StrokeFloor:   0.5,
		HeadThreshold: 1.2,
		FPS:           c.FPS,
		Smoothing:     c.Smoothing,
	}
}
