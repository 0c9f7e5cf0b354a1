package sim

import "github.com/mvail/lifelab/internal/life"

// Metric accumulates a scalar over the course of a run.
type Metric interface {
	Name() string
	Observe(u *life.Universe, gen int)
	Value() float64
	Reset()
}

// Observer is notified once per generation before the universe advances.
type Observer interface {
	OnGeneration(u *life.Universe, gen int)
}

type Config struct {
	Generations int
	Seed        int64
}

type Result struct {
	Generations int
	Populations []int
	Metrics     map[string]float64
}
