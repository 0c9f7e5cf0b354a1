package analysis

import (
	"context"
	"math"
	"math/cmplx"
	"testing"

	"github.com/mvail/lifelab/internal/life"
	"github.com/mvail/lifelab/internal/sim"
)

func TestFFTConstantSignal(t *testing.T) {
	data := []float64{2, 2, 2, 2, 2, 2, 2, 2}
	fft := FFT(data)

	if got := cmplx.Abs(fft[0]); math.Abs(got-16) > 1e-9 {
		t.Errorf("expected DC magnitude 16, got %f", got)
	}
	for k := 1; k < len(fft); k++ {
		if cmplx.Abs(fft[k]) > 1e-9 {
			t.Errorf("bin %d should be empty for constant signal", k)
		}
	}
}

func TestPad(t *testing.T) {
	padded := Pad([]float64{1, 2, 3, 4, 5})
	if len(padded) != 8 {
		t.Errorf("expected length 8, got %d", len(padded))
	}
	if padded[4] != 5 || padded[5] != 0 {
		t.Errorf("unexpected padding %v", padded)
	}
}

func TestDominantPeriodSine(t *testing.T) {
	data := make([]int, 32)
	for i := range data {
		data[i] = 10 + int(math.Round(5*math.Sin(2*math.Pi*float64(i)/8)))
	}

	if got := DominantPeriod(data); math.Abs(got-8) > 1e-9 {
		t.Errorf("expected period 8, got %f", got)
	}
}

func TestDominantPeriodStillLife(t *testing.T) {
	data := []int{4, 4, 4, 4, 4, 4, 4, 4}
	if got := DominantPeriod(data); got != 0 {
		t.Errorf("expected no period for constant population, got %f", got)
	}
}

func TestDominantPeriodTooShort(t *testing.T) {
	if got := DominantPeriod([]int{3, 3}); got != 0 {
		t.Errorf("expected 0 for short series, got %f", got)
	}
}

func TestDominantPeriodBeacon(t *testing.T) {
	u, err := life.NewEmpty(10, 10)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if err := life.Place(u, "beacon", 3, 3); err != nil {
		t.Fatalf("place failed: %v", err)
	}

	runner := sim.New(u)
	result, err := runner.Run(context.Background(), sim.Config{Generations: 15})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// A beacon alternates between 6 and 8 live cells.
	if got := DominantPeriod(result.Populations); got != 2 {
		t.Errorf("expected beacon period 2, got %f", got)
	}
}
