package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/config"
	"gridsnake/internal/term"
)

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	flags := config.RegisterFlags(fs)
	logPath := fs.String("log", "", "log file (default: no logging)")
	fs.Parse(os.Args[1:])

	// stderr belongs to the terminal UI while it runs.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := flags.Resolve()
	if err != nil {
		fatal(err)
	}
	log.Printf("config from %s", flags.Source())

	screen, err := tcell.NewScreen()
	if err != nil {
		fatal(err)
	}
	if err := screen.Init(); err != nil {
		fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = term.Run(ctx, screen, cfg)
	stop()
	screen.Fini()
	if err != nil {
		fatal(err)
	}
}

// fatal reports on stderr even when logging is redirected.
func fatal(err error) {
	log.SetOutput(os.Stderr)
	log.Fatal(err)
}
