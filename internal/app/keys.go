package app

import (
	"github.com/hajimehoshi/ebiten/v2"

	"gridsnake/internal/game"
)

type binding struct {
	key ebiten.Key
	dir game.Direction
}

// Arrow keys first, then WASD.
var keyTable = []binding{
	{ebiten.KeyArrowLeft, game.Left},
	{ebiten.KeyArrowUp, game.Up},
	{ebiten.KeyArrowRight, game.Right},
	{ebiten.KeyArrowDown, game.Down},
	{ebiten.KeyA, game.Left},
	{ebiten.KeyW, game.Up},
	{ebiten.KeyD, game.Right},
	{ebiten.KeyS, game.Down},
}

// KeyDirection looks k up in the fixed key table.
func KeyDirection(k ebiten.Key) (game.Direction, bool) {
	for _, b := range keyTable {
		if b.key == k {
			return b.dir, true
		}
	}
	return 0, false
}

// Pressed returns the direction of every mapped key for which isPressed is
// true, in table order.
func Pressed(isPressed func(ebiten.Key) bool) []game.Direction {
	var dirs []game.Direction
	for _, b := range keyTable {
		if isPressed(b.key) {
			dirs = append(dirs, b.dir)
		}
	}
	return dirs
}
