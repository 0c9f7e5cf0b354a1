package metrics

import "github.com/mvail/lifelab/internal/life"

// Activity reports the mean number of cells that change state between
// consecutive observed generations. A run that settles into a still life
// trends toward zero; an exploding soup stays high.
type Activity struct {
	name    string
	prev    []life.Cell
	samples int
	total   float64
}

func NewActivity() *Activity {
	return &Activity{name: "activity"}
}

func (a *Activity) Name() string { return a.name }

func (a *Activity) Observe(u *life.Universe, gen int) {
	cells := u.Cells()
	if a.prev != nil && len(a.prev) == len(cells) {
		changed := 0
		for i, c := range cells {
			if c != a.prev[i] {
				changed++
			}
		}
		a.total += float64(changed)
		a.samples++
	}
	if a.prev == nil {
		a.prev = make([]life.Cell, len(cells))
	}
	copy(a.prev, cells)
}

func (a *Activity) Value() float64 {
	if a.samples == 0 {
		return 0
	}
	return a.total / float64(a.samples)
}

func (a *Activity) Reset() {
	a.prev = nil
	a.samples = 0
	a.total = 0
}
