// Package term runs the game in a terminal through tcell.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/game"
)

// cellW is the number of terminal columns per grid cell. Terminal glyphs
// are about twice as tall as wide.
const cellW = 2

const (
	wallGlyph = '█'
	bodyGlyph = '█'
	headGlyph = '█'
	foodGlyph = '●'
)

var (
	wallStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	bodyStyle = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	headStyle = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	foodStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	textStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	overStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Draw clears screen and paints the whole frame for s. The score line sits
// below the grid.
func Draw(screen tcell.Screen, s game.Snapshot, paused bool) {
	screen.Clear()

	for col := 0; col < s.Width; col++ {
		putCell(screen, game.Cell{Col: col, Row: 0}, wallGlyph, wallStyle)
		putCell(screen, game.Cell{Col: col, Row: s.Height - 1}, wallGlyph, wallStyle)
	}
	for row := 1; row < s.Height-1; row++ {
		putCell(screen, game.Cell{Col: 0, Row: row}, wallGlyph, wallStyle)
		putCell(screen, game.Cell{Col: s.Width - 1, Row: row}, wallGlyph, wallStyle)
	}

	putCell(screen, s.Food, foodGlyph, foodStyle)
	for i := len(s.Body) - 1; i >= 0; i-- {
		if i == 0 {
			putCell(screen, s.Body[i], headGlyph, headStyle)
		} else {
			putCell(screen, s.Body[i], bodyGlyph, bodyStyle)
		}
	}

	status := fmt.Sprintf("Score: %d", s.Score)
	switch {
	case !s.Alive:
		status += "   enter/r: restart   q: quit"
	case paused:
		status += "   paused, p: resume"
	default:
		status += "   arrows/hjkl/wasd/click: steer   p: pause   q: quit"
	}
	putString(screen, 0, s.Height, status, textStyle)

	if !s.Alive {
		msg := "GAME OVER"
		putString(screen, (s.Width*cellW-len(msg))/2, s.Height/2, msg, overStyle)
	}

	screen.Show()
}

// putCell fills both terminal columns of c. The food glyph is drawn once,
// followed by a blank.
func putCell(screen tcell.Screen, c game.Cell, r rune, style tcell.Style) {
	x := c.Col * cellW
	second := r
	if r == foodGlyph {
		second = ' '
	}
	screen.SetContent(x, c.Row, r, nil, style)
	screen.SetContent(x+1, c.Row, second, nil, style)
}

func putString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
