package life

import (
	"errors"
	"testing"
)

func TestPlaceUnknownPattern(t *testing.T) {
	u, err := NewEmpty(8, 8)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if err := Place(u, "spaceship", 0, 0); !errors.Is(err, ErrUnknownPattern) {
		t.Errorf("expected ErrUnknownPattern, got %v", err)
	}
}

func TestPatternNames(t *testing.T) {
	names := PatternNames()
	if len(names) == 0 {
		t.Fatal("expected registered patterns")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}
	found := false
	for _, n := range names {
		if n == "glider" {
			found = true
		}
	}
	if !found {
		t.Error("glider missing from pattern names")
	}
}

func TestGliderTranslation(t *testing.T) {
	u, err := NewEmpty(10, 10)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if err := Place(u, "glider", 1, 1); err != nil {
		t.Fatalf("place failed: %v", err)
	}

	// One glider period moves the shape one cell down-right.
	for i := 0; i < 4; i++ {
		u.Tick()
	}

	want, _ := NewEmpty(10, 10)
	if err := Place(want, "glider", 2, 2); err != nil {
		t.Fatalf("place failed: %v", err)
	}
	if u.Render() != want.Render() {
		t.Fatalf("glider did not translate by (1,1):\n%s", u.Render())
	}
}

func TestToadOscillation(t *testing.T) {
	u, err := NewEmpty(8, 8)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if err := Place(u, "toad", 2, 3); err != nil {
		t.Fatalf("place failed: %v", err)
	}

	start := u.Render()
	u.Tick()
	if u.Render() == start {
		t.Fatal("toad should change after one tick")
	}
	u.Tick()
	if u.Render() != start {
		t.Fatalf("toad should return after two ticks:\n%s", u.Render())
	}
}
