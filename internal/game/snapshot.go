package game

import "slices"

// Snapshot is a copy of everything a renderer needs for one frame.
type Snapshot struct {
	Width   int
	Height  int
	Body    []Cell // head first
	Food    Cell
	Score   int
	Alive   bool
	Dir     Direction
	Pending Direction
	Ticks   uint64
}

// Snapshot copies the current state. The result does not alias the State.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Width:   s.width,
		Height:  s.height,
		Body:    slices.Clone(s.body),
		Food:    s.food,
		Score:   s.score,
		Alive:   s.alive,
		Dir:     s.dir,
		Pending: s.pending,
		Ticks:   s.ticks,
	}
}

// Head returns the first body cell.
func (s Snapshot) Head() Cell {
	if len(s.Body) == 0 {
		return Cell{}
	}
	return s.Body[0]
}

// Equal compares two snapshots field by field.
func (s Snapshot) Equal(o Snapshot) bool {
	return s.Width == o.Width && s.Height == o.Height &&
		slices.Equal(s.Body, o.Body) &&
		s.Food == o.Food && s.Score == o.Score && s.Alive == o.Alive &&
		s.Dir == o.Dir && s.Pending == o.Pending && s.Ticks == o.Ticks
}
