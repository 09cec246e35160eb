package game

import "time"

// Clock turns frame time into fixed-period ticks. Frontends call Advance
// once per frame with the frame's duration and run Tick as many times as
// it returns.
type Clock struct {
	period  time.Duration
	acc     time.Duration
	paused  bool
	stopped bool
}

func NewClock(period time.Duration) *Clock {
	if period <= 0 {
		panic("game: clock period must be positive")
	}
	return &Clock{period: period}
}

func (c *Clock) Period() time.Duration { return c.period }

// Advance adds dt and returns the number of whole periods now due.
func (c *Clock) Advance(dt time.Duration) int {
	if c.stopped || c.paused || dt <= 0 {
		return 0
	}
	c.acc += dt
	n := int(c.acc / c.period)
	c.acc -= time.Duration(n) * c.period
	return n
}

// Stop halts the clock for good. Only the first call has any effect.
func (c *Clock) Stop() {
	if c.stopped {
		return
	}
	c.stopped = true
	c.acc = 0
}

func (c *Clock) Stopped() bool { return c.stopped }

// SetPaused suspends or resumes ticking. Time spent paused is dropped.
func (c *Clock) SetPaused(p bool) {
	c.paused = p
	c.acc = 0
}

func (c *Clock) Paused() bool { return c.paused }
