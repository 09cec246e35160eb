// Package game holds the snake simulation: grid, snake, food and score.
// It has no knowledge of windows, terminals or timers.
package game

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"golang.org/x/exp/rand"
)

// MinSize is the smallest grid edge that still has an interior.
const MinSize = 3

var (
	ErrGridTooSmall = errors.New("grid too small")
	ErrBadLayout    = errors.New("bad layout")
)

// Layout is a starting position for a new State.
type Layout struct {
	Body      []Cell
	Direction Direction
	Food      Cell
}

// DefaultLayout is the fixed opening: a length 3 snake heading right and
// food at (10,10).
func DefaultLayout() Layout {
	return Layout{
		Body:      []Cell{{7, 5}, {6, 5}, {5, 5}},
		Direction: Right,
		Food:      Cell{10, 10},
	}
}

// State is a running game. It is not safe for concurrent use; the
// frontends serialize Tick and SetDirection on one goroutine.
type State struct {
	width, height int

	body    []Cell // head first
	dir     Direction
	pending Direction

	food  Cell
	score int
	alive bool
	ticks uint64

	rng *rand.Rand
}

// New builds a State on a width x height grid with the default layout.
// A nil rng is replaced by a time-seeded one.
func New(width, height int, rng *rand.Rand) (*State, error) {
	return NewFromLayout(width, height, DefaultLayout(), rng)
}

// NewFromLayout builds a State from an arbitrary starting position. Every
// body cell and the food must lie in the interior, and the body must be a
// chain of distinct cells, each one step from the next.
func NewFromLayout(width, height int, l Layout, rng *rand.Rand) (*State, error) {
	if width < MinSize || height < MinSize {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrGridTooSmall, width, height, MinSize, MinSize)
	}

	s := &State{width: width, height: height}

	if len(l.Body) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrBadLayout)
	}
	if !l.Direction.Valid() {
		return nil, fmt.Errorf("%w: direction %d", ErrBadLayout, l.Direction)
	}
	for i, c := range l.Body {
		if !s.IsInterior(c) {
			return nil, fmt.Errorf("%w: body cell %s outside interior of %dx%d", ErrBadLayout, c, width, height)
		}
		if slices.Contains(l.Body[:i], c) {
			return nil, fmt.Errorf("%w: body cell %s repeated", ErrBadLayout, c)
		}
		if i > 0 && !c.Adjacent(l.Body[i-1]) {
			return nil, fmt.Errorf("%w: body cells %s and %s not adjacent", ErrBadLayout, l.Body[i-1], c)
		}
	}
	if !s.IsInterior(l.Food) {
		return nil, fmt.Errorf("%w: food %s outside interior of %dx%d", ErrBadLayout, l.Food, width, height)
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	s.body = slices.Clone(l.Body)
	s.dir = l.Direction
	s.pending = l.Direction
	s.food = l.Food
	s.alive = true
	s.rng = rng
	return s, nil
}

// SetDirection queues d for the next tick. A request for the reverse of
// the current direction, an unknown value, or any request after the game
// has ended is ignored. Later calls before the next tick overwrite
// earlier ones.
func (s *State) SetDirection(d Direction) {
	if !s.alive || !d.Valid() || d == s.dir.Opposite() {
		return
	}
	s.pending = d
}

// Tick advances the game by one step and reports what happened. On a
// collision the body, food and score are left untouched and the state
// becomes terminal; ticking a terminal state does nothing.
func (s *State) Tick() Outcome {
	if !s.alive {
		return OutcomeOver
	}

	s.dir = s.pending
	head := s.body[0].Step(s.dir)

	if s.hitsWall(head) {
		s.alive = false
		return OutcomeHitWall
	}
	// Checked against the whole body, tail included, before it moves.
	if s.Occupies(head) {
		s.alive = false
		return OutcomeHitSelf
	}

	s.ticks++
	s.body = slices.Insert(s.body, 0, head)

	if head == s.food {
		s.score++
		s.relocateFood()
		return OutcomeAte
	}

	s.body = s.body[:len(s.body)-1]
	return OutcomeMoved
}

// relocateFood draws column and row uniformly from the interior. The
// snake's body is not avoided.
func (s *State) relocateFood() {
	s.food = Cell{
		Col: s.rng.Intn(s.width-2) + 1,
		Row: s.rng.Intn(s.height-2) + 1,
	}
}

func (s *State) hitsWall(c Cell) bool {
	return c.Col <= 0 || c.Row <= 0 || c.Col >= s.width-1 || c.Row >= s.height-1
}

// IsInterior reports whether c is inside the grid and off the border ring.
func (s *State) IsInterior(c Cell) bool {
	return !s.hitsWall(c)
}

// Occupies reports whether any body cell equals c.
func (s *State) Occupies(c Cell) bool {
	return slices.Contains(s.body, c)
}

func (s *State) Width() int { return s.width }
func (s *State) Height() int { return s.height }

// Body returns a copy of the snake, head first.
func (s *State) Body() []Cell { return slices.Clone(s.body) }

func (s *State) Head() Cell { return s.body[0] }
func (s *State) Len() int { return len(s.body) }
func (s *State) Food() Cell { return s.food }
func (s *State) Score() int { return s.score }
func (s *State) Alive() bool { return s.alive }
func (s *State) Direction() Direction { return s.dir }
func (s *State) Pending() Direction { return s.pending }

// Ticks counts the moves made. The fatal tick is not one of them.
func (s *State) Ticks() uint64 { return s.ticks }
