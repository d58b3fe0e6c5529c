package gameplay

import (
	"fmt"
	"time"
)

// Countdown is the time limit of one maze. It does no scheduling of its
// own: the front end calls Tick with the time that passed.
type Countdown struct {
	limit    time.Duration
	elapsed  time.Duration
	running  bool
	onExpire func()
}

// NewCountdown creates a stopped countdown that calls onExpire when
// Tick runs it down to zero
func NewCountdown(limit time.Duration, onExpire func()) *Countdown {
	return &Countdown{limit: limit, onExpire: onExpire}
}

// Reset rewinds the countdown to its full limit and starts it
func (c *Countdown) Reset() {
	c.elapsed = 0
	c.running = true
}

// Stop freezes the countdown at its current value
func (c *Countdown) Stop() {
	c.running = false
}

// Running returns true while the countdown is ticking
func (c *Countdown) Running() bool {
	return c.running
}

// Tick advances the countdown by d. It returns true on the tick that
// expires it; onExpire has been called by then.
func (c *Countdown) Tick(d time.Duration) bool {
	if !c.running || d <= 0 {
		return false
	}
	c.elapsed += d
	if c.elapsed < c.limit {
		return false
	}
	c.elapsed = c.limit
	c.running = false
	if c.onExpire != nil {
		c.onExpire()
	}
	return true
}

// Elapsed returns the time spent so far
func (c *Countdown) Elapsed() time.Duration {
	return c.elapsed
}

// Remaining returns the time left, never negative
func (c *Countdown) Remaining() time.Duration {
	if c.elapsed >= c.limit {
		return 0
	}
	return c.limit - c.elapsed
}

// FormatClock formats d as mm:ss, rounding partial seconds up so the clock
// reads 00:00 only once time is really up
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
