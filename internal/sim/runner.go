package sim

import (
	"context"
	"fmt"

	"github.com/mvail/lifelab/internal/life"
)

// Runner drives a Universe through a fixed number of generations, feeding
// each generation to the registered metrics and observers.
type Runner struct {
	universe  *life.Universe
	metrics   []Metric
	observers []Observer
}

func New(u *life.Universe) *Runner {
	return &Runner{
		universe:  u,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Universe returns the universe the runner steps.
func (r *Runner) Universe() *life.Universe { return r.universe }

// Run advances the universe cfg.Generations times, recording the population
// after every tick. Cancellation is checked between generations; a canceled
// run returns the partial result alongside the context error.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := r.validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Generations: cfg.Generations,
		Populations: make([]int, 0, cfg.Generations+1),
		Metrics:     make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	result.Populations = append(result.Populations, r.universe.Population())

	for gen := 0; gen < cfg.Generations; gen++ {
		select {
		case <-ctx.Done():
			result.Generations = gen
			return result, ctx.Err()
		default:
		}

		for _, m := range r.metrics {
			m.Observe(r.universe, gen)
		}
		for _, obs := range r.observers {
			obs.OnGeneration(r.universe, gen)
		}

		r.universe.Tick()
		result.Populations = append(result.Populations, r.universe.Population())
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// RunWithCallback steps until the callback returns false, the generation
// budget is spent, or the context is canceled. The callback sees the current
// generation before it is advanced.
func (r *Runner) RunWithCallback(ctx context.Context, cfg Config, callback func(u *life.Universe, gen int) bool) error {
	if err := r.validateConfig(cfg); err != nil {
		return err
	}

	for gen := 0; gen < cfg.Generations; gen++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !callback(r.universe, gen) {
			return nil
		}
		r.universe.Tick()
	}

	return nil
}

func (r *Runner) validateConfig(cfg Config) error {
	if cfg.Generations <= 0 {
		return fmt.Errorf("generations must be positive, got %d", cfg.Generations)
	}
	return nil
}
