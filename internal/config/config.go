package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/mvail/lifelab/internal/life"
)

const (
	DefaultWidth       = 64
	DefaultHeight      = 32
	DefaultGenerations = 200
	DefaultFPS         = 10
)

// Seed strategies.
const (
	SeedChecker = "checker" // deterministic i%2 / i%7 pattern
	SeedRandom  = "random"
	SeedEmpty   = "empty"
)

type Config struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Generations int    `yaml:"generations"`
	FPS         int    `yaml:"fps"`
	Seed        string `yaml:"seed"`
	RandomSeed  int64  `yaml:"random_seed"`
	Pattern     string `yaml:"pattern"`
	AliveGlyph  string `yaml:"alive_glyph"`
	DeadGlyph   string `yaml:"dead_glyph"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Generations: DefaultGenerations,
		FPS:         DefaultFPS,
		Seed:        SeedChecker,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
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

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("width and height must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Generations <= 0 {
		return fmt.Errorf("generations must be positive, got %d", c.Generations)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	switch c.Seed {
	case SeedChecker, SeedRandom, SeedEmpty:
	default:
		return fmt.Errorf("unknown seed strategy %q", c.Seed)
	}
	if c.AliveGlyph != "" && utf8.RuneCountInString(c.AliveGlyph) != 1 {
		return fmt.Errorf("alive_glyph must be a single character, got %q", c.AliveGlyph)
	}
	if c.DeadGlyph != "" && utf8.RuneCountInString(c.DeadGlyph) != 1 {
		return fmt.Errorf("dead_glyph must be a single character, got %q", c.DeadGlyph)
	}
	return nil
}

// Universe builds a universe according to the seed strategy, then stamps the
// optional pattern at the grid center.
func (c *Config) Universe() (*life.Universe, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var u *life.Universe
	var err error
	switch c.Seed {
	case SeedRandom:
		u, err = life.NewRandom(c.Width, c.Height, c.RandomSeed)
	case SeedEmpty:
		u, err = life.NewEmpty(c.Width, c.Height)
	default:
		u, err = life.New(c.Width, c.Height)
	}
	if err != nil {
		return nil, err
	}

	if c.Pattern != "" {
		if err := life.Place(u, c.Pattern, c.Width/2, c.Height/2); err != nil {
			return nil, err
		}
	}
	return u, nil
}

// Glyphs returns the render glyphs, falling back to the defaults.
func (c *Config) Glyphs() (alive, dead rune) {
	alive, dead = life.AliveGlyph, life.DeadGlyph
	if c.AliveGlyph != "" {
		alive, _ = utf8.DecodeRuneInString(c.AliveGlyph)
	}
	if c.DeadGlyph != "" {
		dead, _ = utf8.DecodeRuneInString(c.DeadGlyph)
	}
	return alive, dead
}
