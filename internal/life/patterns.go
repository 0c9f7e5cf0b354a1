package life

import "sort"

// patterns maps a name to live-cell offsets {x, y} from the placement anchor.
var patterns = map[string][][2]int{
	"block":   {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	"blinker": {{0, 0}, {1, 0}, {2, 0}},
	"toad":    {{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}},
	"beacon":  {{0, 0}, {1, 0}, {0, 1}, {2, 3}, {3, 3}, {3, 2}},
	"glider":  {{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
}

// Place stamps a named pattern onto the universe with its anchor at (x, y).
// Offsets wrap toroidally like any other coordinate.
func Place(u *Universe, name string, x, y int) error {
	shape, ok := patterns[name]
	if !ok {
		return ErrUnknownPattern
	}
	for _, off := range shape {
		u.Set(x+off[0], y+off[1], Alive)
	}
	return nil
}

// PatternNames lists the registered patterns in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
