package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Theme != "dark" {
		t.Errorf("expected theme dark, got %s", cfg.Theme)
	}
	if cfg.Spacing <= 0 {
		t.Error("spacing should be positive")
	}
	if cfg.FPS <= 0 {
		t.Error("fps should be positive")
	}
	if cfg.MaxStrength != 2.0 || cfg.K1 != 0.01 || cfg.K2 != 0.1 {
		t.Errorf("unexpected falloff defaults: %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fieldviz.yaml")

	cfg := DefaultConfig()
	cfg.Theme = "light"
	cfg.Spacing = 33
	cfg.Smoothing = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("theme: light\nspacing: 40\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "light" || cfg.Spacing != 40 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.K1 != DefaultK1 || cfg.FPS != DefaultFPS {
		t.Errorf("unset fields lost defaults: %+v", cfg)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("spacing: [not a number"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("dense")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Spacing != 16 {
		t.Errorf("dense spacing = %v", cfg.Spacing)
	}
	if cfg.K1 != DefaultK1 {
		t.Error("preset must layer over defaults")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	seen := map[string]bool{}
	for _, n := range names {
		seen[n] = true
	}
	for _, want := range []string{"default", "dense", "sparse", "calm", "storm"} {
		if !seen[want] {
			t.Errorf("missing preset %s", want)
		}
	}
}

func TestEngineMapping(t *testing.T) {
	cfg := DefaultConfig()
	cfg.K1 = 0.02
	cfg.MaxStrength = 3
	cfg.Smoothing = true

	e := cfg.Engine()
	if e.Field.K1 != 0.02 || e.Field.MaxStrength != 3 {
		t.Errorf("field params not mapped: %+v", e.Field)
	}
	if !e.Smoothing || e.FPS != cfg.FPS {
		t.Errorf("host options not mapped: %+v", e)
	}
}
