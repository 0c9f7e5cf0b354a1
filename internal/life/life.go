package life

import (
	"math"
	"math/rand"
	"strings"
)

// Cell is a single grid slot. The numeric values matter: live neighbors are
// counted by summing cells directly.
type Cell = uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Default render glyphs.
const (
	AliveGlyph = '◼'
	DeadGlyph  = '◻'
)

// Universe is a fixed-size toroidal grid of cells with synchronous B3/S23
// stepping. Width and height never change after construction. Not safe for
// concurrent use; callers own a Universe exclusively.
type Universe struct {
	width  int
	height int
	cells  []Cell
	next   []Cell
}

// New returns a Universe seeded with the canonical deterministic pattern:
// a cell at index i starts alive when i%2 == 0 or i%7 == 0.
func New(width, height int) (*Universe, error) {
	u, err := NewEmpty(width, height)
	if err != nil {
		return nil, err
	}
	u.Reseed()
	return u, nil
}

// NewEmpty returns an all-dead Universe.
func NewEmpty(width, height int) (*Universe, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if width > math.MaxInt/height {
		return nil, ErrInvalidDimensions
	}
	cells := make([]Cell, width*height)
	return &Universe{
		width:  width,
		height: height,
		cells:  cells,
		next:   make([]Cell, len(cells)),
	}, nil
}

// NewRandom returns a Universe with a pseudo-random soup, roughly one cell in
// eight alive. Identical seeds produce identical universes.
func NewRandom(width, height int, seed int64) (*Universe, error) {
	u, err := NewEmpty(width, height)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	for i := range u.cells {
		if rng.Intn(8) == 0 {
			u.cells[i] = Alive
		}
	}
	return u, nil
}

// Width returns the grid width.
func (u *Universe) Width() int { return u.width }

// Height returns the grid height.
func (u *Universe) Height() int { return u.height }

// Cells exposes the current generation's values in row-major order.
func (u *Universe) Cells() []Cell { return u.cells }

// Get returns the cell at (x, y). Coordinates wrap toroidally.
func (u *Universe) Get(x, y int) Cell {
	return u.cells[u.index(x, y)]
}

// Set assigns the cell at (x, y). Coordinates wrap toroidally.
func (u *Universe) Set(x, y int, c Cell) {
	u.cells[u.index(x, y)] = c
}

// Population returns the number of live cells.
func (u *Universe) Population() int {
	n := 0
	for _, c := range u.cells {
		n += int(c)
	}
	return n
}

// Clear kills every cell.
func (u *Universe) Clear() {
	for i := range u.cells {
		u.cells[i] = Dead
	}
}

// Reseed restores the canonical deterministic starting pattern.
func (u *Universe) Reseed() {
	for i := range u.cells {
		if i%2 == 0 || i%7 == 0 {
			u.cells[i] = Alive
		} else {
			u.cells[i] = Dead
		}
	}
}

// Clone returns an independent copy of the universe.
func (u *Universe) Clone() *Universe {
	c := &Universe{
		width:  u.width,
		height: u.height,
		cells:  make([]Cell, len(u.cells)),
		next:   make([]Cell, len(u.cells)),
	}
	copy(c.cells, u.cells)
	return c
}

// Tick advances the universe one generation. Next states are computed from a
// snapshot of the current generation into the spare buffer, then the buffers
// are swapped, so a cell never sees a neighbor's already-updated state.
func (u *Universe) Tick() {
	w, h := u.width, u.height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := u.liveNeighbors(x, y)
			idx := y*w + x
			alive := u.cells[idx] == Alive
			u.next[idx] = Dead
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				u.next[idx] = Alive
			}
		}
	}
	u.cells, u.next = u.next, u.cells
}

// liveNeighbors counts live cells among the 8 toroidally-adjacent positions.
func (u *Universe) liveNeighbors(x, y int) int {
	w, h := u.width, u.height
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + w) % w
			ny := (y + dy + h) % h
			count += int(u.cells[ny*w+nx])
		}
	}
	return count
}

// Render returns a textual snapshot: height rows of width glyphs, each row
// terminated by a newline. Pure; identical state renders identically.
func (u *Universe) Render() string {
	return u.RenderGlyphs(AliveGlyph, DeadGlyph)
}

// RenderGlyphs renders with caller-chosen glyphs for live and dead cells.
func (u *Universe) RenderGlyphs(alive, dead rune) string {
	var b strings.Builder
	b.Grow(len(u.cells)*3 + u.height)
	for y := 0; y < u.height; y++ {
		row := u.cells[y*u.width : (y+1)*u.width]
		for _, c := range row {
			if c == Alive {
				b.WriteRune(alive)
			} else {
				b.WriteRune(dead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String implements fmt.Stringer.
func (u *Universe) String() string { return u.Render() }

func (u *Universe) index(x, y int) int {
	x = ((x % u.width) + u.width) % u.width
	y = ((y % u.height) + u.height) % u.height
	return y*u.width + x
}
