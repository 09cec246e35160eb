// Package input resolves pointer presses to snake directions.
package input

import "gridsnake/internal/game"

// PointerDirection resolves a press at (x, y) against the head cell. The
// head sits at the top-left corner of its cell, cellSize units per cell.
// The larger of the horizontal and vertical offsets picks the axis; ties
// go to the vertical axis.
func PointerDirection(head game.Cell, cellSize, x, y int) game.Direction {
	dx := head.Col*cellSize - x
	dy := head.Row*cellSize - y

	if abs(dx) > abs(dy) {
		if dx < 0 {
			return game.Right
		}
		return game.Left
	}
	if dy > 0 {
		return game.Up
	}
	return game.Down
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
