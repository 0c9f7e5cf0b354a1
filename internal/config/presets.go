package config

import "sort"

var Presets = map[string]*Config{
	"small": {
		Width: 32, Height: 16, Generations: 100, FPS: 10, Seed: SeedChecker,
	},
	"big": {
		Width: 128, Height: 48, Generations: 500, FPS: 20, Seed: SeedChecker,
	},
	"soup": {
		Width: 80, Height: 40, Generations: 1000, FPS: 15, Seed: SeedRandom, RandomSeed: 42,
	},
	"glider": {
		Width: 40, Height: 24, Generations: 200, FPS: 10, Seed: SeedEmpty, Pattern: "glider",
	},
	"blinker": {
		Width: 16, Height: 16, Generations: 50, FPS: 4, Seed: SeedEmpty, Pattern: "blinker",
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
