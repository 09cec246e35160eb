package render

import "gridsnake/internal/game"

// Debug font metrics of ebitenutil.DebugPrint.
const (
	glyphW = 6
	glyphH = 16
)

// Rect is a pixel rectangle in logical screen space.
type Rect struct {
	X, Y, W, H float32
}

// Geometry converts grid cells into pixel space.
type Geometry struct {
	CellSize int
	Cols     int
	Rows     int
}

func (g Geometry) ScreenSize() (w, h int) {
	return g.Cols * g.CellSize, g.Rows * g.CellSize
}

func (g Geometry) Cell(c game.Cell) Rect {
	s := float32(g.CellSize)
	return Rect{X: float32(c.Col) * s, Y: float32(c.Row) * s, W: s, H: s}
}

// Circle returns the centre and radius of the disc inscribed in c.
func (g Geometry) Circle(c game.Cell) (cx, cy, r float32) {
	s := float32(g.CellSize)
	r = s / 2
	return float32(c.Col)*s + r, float32(c.Row)*s + r, r
}

// Border returns the four one-cell-thick wall strips: top, bottom, left,
// right.
func (g Geometry) Border() [4]Rect {
	w, h := g.ScreenSize()
	s := float32(g.CellSize)
	fw, fh := float32(w), float32(h)
	return [4]Rect{
		{0, 0, fw, s},
		{0, fh - s, fw, s},
		{0, 0, s, fh},
		{fw - s, 0, s, fh},
	}
}

// Centered returns the top-left pixel at which msg is centred on screen.
func (g Geometry) Centered(msg string) (x, y int) {
	w, h := g.ScreenSize()
	return (w - len(msg)*glyphW) / 2, (h - glyphH) / 2
}
