package term

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"

	"gridsnake/internal/config"
	"gridsnake/internal/game"
)

// session is one terminal game: the current state plus its ticker. All
// methods run on the Run goroutine.
type session struct {
	screen tcell.Screen
	cfg    config.Config
	rng    *rand.Rand

	state  *game.State
	ticker *time.Ticker
	paused bool
	round  int
}

func newSession(screen tcell.Screen, cfg config.Config) (*session, error) {
	seed := uint64(cfg.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	s := &session{screen: screen, cfg: cfg, rng: rand.New(rand.NewSource(seed))}
	if err := s.reset(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *session) reset() error {
	st, err := game.New(s.cfg.Width, s.cfg.Height, s.rng)
	if err != nil {
		return err
	}
	s.stopTicker()
	s.state = st
	s.ticker = time.NewTicker(s.cfg.Period)
	s.paused = false
	s.round++
	return nil
}

func (s *session) stopTicker() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
}

// tickC is nil once the round is over, which blocks that select case.
func (s *session) tickC() <-chan time.Time {
	if s.ticker == nil {
		return nil
	}
	return s.ticker.C
}

func (s *session) tick() {
	if s.paused {
		return
	}
	out := s.state.Tick()
	if out.Fatal() {
		s.stopTicker()
		log.Printf("round %d over: %s, score %d, length %d", s.round, out, s.state.Score(), s.state.Len())
	}
}

// handle applies one terminal event. It reports false when the user asked
// to quit.
func (s *session) handle(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.screen.Sync()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || isRune(ev, 'q'):
			return false, nil
		case !s.state.Alive():
			if ev.Key() == tcell.KeyEnter || isRune(ev, 'r') {
				if err := s.reset(); err != nil {
					return false, err
				}
				log.Printf("round %d started", s.round)
			}
		case isRune(ev, 'p'):
			s.paused = !s.paused
		default:
			if d, ok := KeyDirection(ev); ok {
				s.state.SetDirection(d)
			}
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 && s.state.Alive() {
			x, y := ev.Position()
			s.state.SetDirection(MouseDirection(s.state.Head(), x, y))
		}
	}
	return true, nil
}

func isRune(ev *tcell.EventKey, r rune) bool {
	return ev.Key() == tcell.KeyRune && ev.Rune() == r
}

func (s *session) draw() {
	Draw(s.screen, s.state.Snapshot(), s.paused)
}

// Run plays on an initialised screen until the user quits or ctx is
// cancelled. The caller owns the screen and must Fini it.
func Run(ctx context.Context, screen tcell.Screen, cfg config.Config) error {
	s, err := newSession(screen, cfg)
	if err != nil {
		return err
	}
	defer s.stopTicker()

	screen.EnableMouse()
	screen.HideCursor()

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	log.Printf("playing %dx%d, period %v", cfg.Width, cfg.Height, cfg.Period)
	s.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			ok, err := s.handle(ev)
			if err != nil || !ok {
				return err
			}
		case <-s.tickC():
			s.tick()
		}
		s.draw()
	}
}
