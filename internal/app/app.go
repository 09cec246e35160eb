// Package app runs a game.State inside an ebiten window.
package app

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/exp/rand"

	"gridsnake/internal/config"
	"gridsnake/internal/game"
	"gridsnake/internal/input"
	"gridsnake/internal/render"
)

// Game implements ebiten.Game.
type Game struct {
	cfg      config.Config
	rng      *rand.Rand
	state    *game.State
	clock    *game.Clock
	renderer *render.Renderer

	isFullscreen bool // Track maximized/full-screen state
	round        int
}

func New(cfg config.Config) (*Game, error) {
	seed := uint64(cfg.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g := &Game{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		renderer: render.New(cfg.CellSize, cfg.Width, cfg.Height),
	}
	if err := g.reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// reset starts a fresh round with a new state and clock.
func (g *Game) reset() error {
	s, err := game.New(g.cfg.Width, g.cfg.Height, g.rng)
	if err != nil {
		return err
	}
	g.state = s
	g.clock = game.NewClock(g.cfg.Period)
	g.renderer.SetPaused(false)
	g.round++
	return nil
}

func (g *Game) State() *game.State { return g.state }

func (g *Game) Update() error {
	// Toggle full-screen/maximized with F key
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.isFullscreen = !g.isFullscreen
		if g.isFullscreen {
			ebiten.MaximizeWindow()
		} else {
			ebiten.RestoreWindow()
		}
	}

	// Exit full-screen/maximized with Esc key
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && g.isFullscreen {
		g.isFullscreen = false
		ebiten.RestoreWindow()
	}

	if !g.state.Alive() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
			return g.restart()
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.togglePause()
	}

	for _, d := range Pressed(inpututil.IsKeyJustPressed) {
		g.state.SetDirection(d)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.click(ebiten.CursorPosition())
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		g.click(ebiten.TouchPosition(id))
	}

	g.advance(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

// click steers toward a pointer press at logical pixel (x, y).
func (g *Game) click(x, y int) {
	g.state.SetDirection(input.PointerDirection(g.state.Head(), g.cfg.CellSize, x, y))
}

func (g *Game) togglePause() {
	p := !g.clock.Paused()
	g.clock.SetPaused(p)
	g.renderer.SetPaused(p)
}

// advance feeds dt to the clock and runs every tick that falls due. The
// clock is stopped on the tick that ends the game.
func (g *Game) advance(dt time.Duration) {
	for n := g.clock.Advance(dt); n > 0; n-- {
		out := g.state.Tick()
		if out.Fatal() {
			g.clock.Stop()
			log.Printf("round %d over: %s, score %d, length %d", g.round, out, g.state.Score(), g.state.Len())
			return
		}
	}
}

func (g *Game) restart() error {
	if err := g.reset(); err != nil {
		return err
	}
	log.Printf("round %d started", g.round)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.state.Snapshot())
}

// Layout keeps the logical screen at the grid's pixel size; ebiten scales
// it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	g.isFullscreen = ebiten.IsWindowMaximized()
	return g.cfg.ScreenSize()
}
