package config

import (
	"path/filepath"
	"testing"

	"github.com/mvail/lifelab/internal/life"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width <= 0 || cfg.Height <= 0 {
		t.Error("default dimensions should be positive")
	}
	if cfg.Seed != SeedChecker {
		t.Errorf("expected checker seed, got %s", cfg.Seed)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -3 }},
		{"zero generations", func(c *Config) { c.Generations = 0 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"bad seed", func(c *Config) { c.Seed = "sparkle" }},
		{"long alive glyph", func(c *Config) { c.AliveGlyph = "##" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifelab.yaml")

	cfg := DefaultConfig()
	cfg.Width = 24
	cfg.Seed = SeedRandom
	cfg.RandomSeed = 7

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Width != 24 || loaded.Seed != SeedRandom || loaded.RandomSeed != 7 {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestUniverseFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 10, 10
	cfg.Seed = SeedEmpty
	cfg.Pattern = "block"

	u, err := cfg.Universe()
	if err != nil {
		t.Fatalf("universe failed: %v", err)
	}
	if u.Width() != 10 || u.Height() != 10 {
		t.Errorf("unexpected dimensions %dx%d", u.Width(), u.Height())
	}
	if u.Population() != 4 {
		t.Errorf("expected a 4-cell block, population %d", u.Population())
	}
	if u.Get(5, 5) != life.Alive {
		t.Error("pattern should anchor at the grid center")
	}
}

func TestUniverseUnknownPattern(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pattern = "spaceship"
	if _, err := cfg.Universe(); err == nil {
		t.Error("expected error for unknown pattern")
	}
}

func TestGlyphs(t *testing.T) {
	cfg := DefaultConfig()
	alive, dead := cfg.Glyphs()
	if alive != life.AliveGlyph || dead != life.DeadGlyph {
		t.Error("expected default glyphs")
	}

	cfg.AliveGlyph, cfg.DeadGlyph = "#", "."
	alive, dead = cfg.Glyphs()
	if alive != '#' || dead != '.' {
		t.Errorf("expected custom glyphs, got %c %c", alive, dead)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("glider")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Pattern != "glider" {
		t.Errorf("expected glider pattern, got %s", cfg.Pattern)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should validate: %v", err)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}
}
