// Package render draws a game snapshot onto an ebiten image.
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gridsnake/internal/game"
)

var (
	bgColor     = color.RGBA{24, 24, 28, 255}
	borderColor = color.RGBA{128, 128, 128, 255}
	headColor   = color.RGBA{70, 110, 255, 255}
	bodyColor   = color.RGBA{40, 70, 220, 255}
	foodColor   = color.RGBA{50, 205, 50, 255}
	shadeColor  = color.RGBA{0, 0, 0, 160}
)

const gameOverText = "GAME OVER"

type Renderer struct {
	geo    Geometry
	paused bool
}

func New(cellSize, cols, rows int) *Renderer {
	return &Renderer{geo: Geometry{CellSize: cellSize, Cols: cols, Rows: rows}}
}

func (r *Renderer) SetPaused(p bool) { r.paused = p }

// Draw clears screen and redraws the whole frame.
func (r *Renderer) Draw(screen *ebiten.Image, s game.Snapshot) {
	screen.Fill(bgColor)

	for i, c := range s.Body {
		clr := bodyColor
		if i == 0 {
			clr = headColor
		}
		fillRect(screen, r.geo.Cell(c), clr)
	}

	cx, cy, rad := r.geo.Circle(s.Food)
	vector.DrawFilledCircle(screen, cx, cy, rad, foodColor, true)

	for _, b := range r.geo.Border() {
		fillRect(screen, b, borderColor)
	}

	// Score sits just inside the top-left corner of the wall.
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", s.Score), r.geo.CellSize, r.geo.CellSize)

	switch {
	case !s.Alive:
		r.banner(screen, gameOverText, fmt.Sprintf("Score %d - Enter/R to restart", s.Score))
	case r.paused:
		r.banner(screen, "PAUSED", "P to resume")
	}
}

func (r *Renderer) banner(screen *ebiten.Image, title, hint string) {
	w, h := r.geo.ScreenSize()
	fillRect(screen, Rect{0, 0, float32(w), float32(h)}, shadeColor)

	x, y := r.geo.Centered(title)
	ebitenutil.DebugPrintAt(screen, title, x, y-glyphH/2)
	x, y = r.geo.Centered(hint)
	ebitenutil.DebugPrintAt(screen, hint, x, y+glyphH)
}

func fillRect(dst *ebiten.Image, rc Rect, clr color.Color) {
	vector.DrawFilledRect(dst, rc.X, rc.Y, rc.W, rc.H, clr, false)
}
