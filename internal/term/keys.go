package term

import (
	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/game"
	"gridsnake/internal/input"
)

var runeTable = map[rune]game.Direction{
	'h': game.Left, 'a': game.Left,
	'k': game.Up, 'w': game.Up,
	'l': game.Right, 'd': game.Right,
	'j': game.Down, 's': game.Down,
}

// KeyDirection maps arrow keys and the hjkl/wasd runes to a direction.
func KeyDirection(ev *tcell.EventKey) (game.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.Left, true
	case tcell.KeyUp:
		return game.Up, true
	case tcell.KeyRight:
		return game.Right, true
	case tcell.KeyDown:
		return game.Down, true
	case tcell.KeyRune:
		d, ok := runeTable[ev.Rune()]
		return d, ok
	}
	return 0, false
}

// MouseDirection resolves a click at terminal position (x, y) against the
// head cell.
func MouseDirection(head game.Cell, x, y int) game.Direction {
	return input.PointerDirection(head, 1, x/cellW, y)
}
