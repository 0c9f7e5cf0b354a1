package sim_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mvail/lifelab/internal/life"
	"github.com/mvail/lifelab/internal/sim"
)

type countingMetric struct {
	observations int
	total        float64
}

func (m *countingMetric) Name() string { return "count" }
func (m *countingMetric) Observe(u *life.Universe, gen int) {
	m.observations++
	m.total += float64(u.Population())
}
func (m *countingMetric) Value() float64 { return m.total }
func (m *countingMetric) Reset()         { m.observations, m.total = 0, 0 }

var _ = Describe("Runner", func() {
	var u *life.Universe

	BeforeEach(func() {
		var err error
		u, err = life.NewEmpty(8, 8)
		Expect(err).NotTo(HaveOccurred())
		Expect(life.Place(u, "blinker", 2, 3)).To(Succeed())
	})

	It("records the population of every generation", func() {
		runner := sim.New(u)
		result, err := runner.Run(context.Background(), sim.Config{Generations: 4})
		Expect(err).NotTo(HaveOccurred())

		// Initial state plus one entry per tick; a blinker keeps three cells.
		Expect(result.Populations).To(HaveLen(5))
		for _, p := range result.Populations {
			Expect(p).To(Equal(3))
		}
		Expect(result.Generations).To(Equal(4))
	})

	It("rejects a non-positive generation count", func() {
		runner := sim.New(u)
		_, err := runner.Run(context.Background(), sim.Config{Generations: 0})
		Expect(err).To(HaveOccurred())
	})

	It("returns the partial result when the context is canceled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		runner := sim.New(u)
		result, err := runner.Run(ctx, sim.Config{Generations: 100})
		Expect(err).To(MatchError(context.Canceled))
		Expect(result).NotTo(BeNil())
		Expect(result.Generations).To(Equal(0))
		Expect(result.Populations).To(HaveLen(1))
	})

	It("observes metrics once per generation and reports their values", func() {
		runner := sim.New(u)
		metric := &countingMetric{}
		runner.AddMetric(metric)

		result, err := runner.Run(context.Background(), sim.Config{Generations: 6})
		Expect(err).NotTo(HaveOccurred())
		Expect(metric.observations).To(Equal(6))
		Expect(result.Metrics).To(HaveKeyWithValue("count", 18.0))
	})

	It("stops early when the callback returns false", func() {
		runner := sim.New(u)
		seen := 0
		err := runner.RunWithCallback(context.Background(), sim.Config{Generations: 10},
			func(u *life.Universe, gen int) bool {
				seen++
				return gen < 2
			})
		Expect(err).NotTo(HaveOccurred())
		Expect(seen).To(Equal(3))
	})
})
