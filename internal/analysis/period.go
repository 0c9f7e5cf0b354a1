package analysis

// DominantPeriod estimates the period, in generations, of the strongest
// oscillation in a population history. It returns 0 when the series is too
// short or has no oscillating component (a still life, or a population that
// never repeats).
func DominantPeriod(populations []int) float64 {
	if len(populations) < 4 {
		return 0
	}

	data := make([]float64, len(populations))
	mean := 0.0
	for i, p := range populations {
		data[i] = float64(p)
		mean += float64(p)
	}
	mean /= float64(len(data))

	// Remove the DC component so a constant offset cannot win.
	for i := range data {
		data[i] -= mean
	}

	padded := Pad(data)
	ps := PowerSpectrum(padded)

	maxBin, maxPower := 0, 0.0
	for k := 1; k < len(ps); k++ {
		if ps[k] > maxPower {
			maxPower = ps[k]
			maxBin = k
		}
	}

	if maxBin == 0 || maxPower < 1e-9 {
		return 0
	}
	return float64(len(padded)) / float64(maxBin)
}
