package game

import "testing"

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{Up: Down, Down: Up, Left: Right, Right: Left}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%s.Opposite() expected %s, got %s", d, want, got)
		}
		dc, dr := d.Delta()
		oc, or := want.Delta()
		if dc != -oc || dr != -or {
			t.Errorf("%s and %s deltas are not opposite", d, want)
		}
	}
}

func TestCellStep(t *testing.T) {
	c := Cell{5, 5}
	tests := []struct {
		d    Direction
		want Cell
	}{
		{Up, Cell{5, 4}},
		{Down, Cell{5, 6}},
		{Left, Cell{4, 5}},
		{Right, Cell{6, 5}},
		{Direction(0), Cell{5, 5}},
	}
	for _, tt := range tests {
		if got := c.Step(tt.d); got != tt.want {
			t.Errorf("Step(%s) expected %s, got %s", tt.d, tt.want, got)
		}
	}
}

func TestCellAdjacent(t *testing.T) {
	c := Cell{5, 5}
	tests := []struct {
		o    Cell
		want bool
	}{
		{Cell{5, 4}, true},
		{Cell{6, 5}, true},
		{Cell{5, 5}, false},
		{Cell{6, 6}, false},
		{Cell{7, 5}, false},
	}
	for _, tt := range tests {
		if got := c.Adjacent(tt.o); got != tt.want {
			t.Errorf("Adjacent(%s) expected %v, got %v", tt.o, tt.want, got)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		got, ok := ParseDirection(d.String())
		if !ok || got != d {
			t.Errorf("ParseDirection(%q) expected %s, got %s (ok=%v)", d.String(), d, got, ok)
		}
	}
	if got, ok := ParseDirection(" LEFT "); !ok || got != Left {
		t.Errorf("expected case-insensitive parse, got %s (ok=%v)", got, ok)
	}
	if _, ok := ParseDirection("sideways"); ok {
		t.Error("expected sideways to be rejected")
	}
}
