package game

import (
	"fmt"
	"strings"
)

// Cell is a grid position. Col grows to the right, Row grows downward.
type Cell struct {
	Col int
	Row int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Step returns the neighbouring cell one unit in direction d.
func (c Cell) Step(d Direction) Cell {
	dc, dr := d.Delta()
	return Cell{Col: c.Col + dc, Row: c.Row + dr}
}

// Adjacent reports whether o shares an edge with c.
func (c Cell) Adjacent(o Cell) bool {
	dc, dr := c.Col-o.Col, c.Row-o.Row
	return dc*dc+dr*dr == 1
}

// Direction is one of the four movement directions.
type Direction uint8

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the (column, row) offset of one step. Up decreases Row.
func (d Direction) Delta() (dc, dr int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. Unknown values map to themselves.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// ParseDirection accepts "up", "down", "left" or "right" in any case.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	case "right":
		return Right, true
	}
	return 0, false
}
