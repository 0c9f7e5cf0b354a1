package metrics

import "github.com/mvail/lifelab/internal/life"

// Population reports the mean number of live cells per observed generation.
type Population struct {
	name    string
	samples int
	total   float64
}

func NewPopulation() *Population {
	return &Population{name: "population"}
}

func (p *Population) Name() string { return p.name }

func (p *Population) Observe(u *life.Universe, gen int) {
	p.total += float64(u.Population())
	p.samples++
}

func (p *Population) Value() float64 {
	if p.samples == 0 {
		return 0
	}
	return p.total / float64(p.samples)
}

func (p *Population) Reset() {
	p.samples = 0
	p.total = 0
}

// Peak reports the largest population seen during a run.
type Peak struct {
	name string
	max  float64
}

func NewPeak() *Peak {
	return &Peak{name: "peak_population"}
}

func (p *Peak) Name() string { return p.name }

func (p *Peak) Observe(u *life.Universe, gen int) {
	if pop := float64(u.Population()); pop > p.max {
		p.max = pop
	}
}

func (p *Peak) Value() float64 { return p.max }

func (p *Peak) Reset() { p.max = 0 }
