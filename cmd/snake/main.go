package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"gridsnake/internal/app"
	"gridsnake/internal/config"
)

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	flags := config.RegisterFlags(fs)
	fs.Parse(os.Args[1:])

	cfg, err := flags.Resolve()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("config from %s: %dx%d cells, %dpx, period %v", flags.Source(), cfg.Width, cfg.Height, cfg.CellSize, cfg.Period)

	g, err := app.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	w, h := cfg.ScreenSize()
	ebiten.SetWindowSize(w*cfg.Scale, h*cfg.Scale)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowResizable(true)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
