package session

import "time"

// Clock tracks elapsed time for an in-progress session. Elapsed is always
// recomputed from the start instant, never accumulated per tick, so missed
// display ticks cannot drift the value. The 1 Hz refresh is the UI's job;
// the clock owns no goroutine.
type Clock struct {
	now       func() time.Time
	startedAt time.Time
	running   bool
	frozen    time.Duration
}

// NewClock creates a stopped clock reading real time
func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// NewClockAt creates a stopped clock reading time from now; used in tests
func NewClockAt(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Start begins timing from the current instant. Calling Start on a running
// clock is a no-op so the start instant is never reset.
func (c *Clock) Start() {
	if c.running {
		return
	}
	c.startedAt = c.now()
	c.running = true
	c.frozen = 0
}

// Stop freezes the clock at the current elapsed value
func (c *Clock) Stop() {
	if !c.running {
		return
	}
	c.frozen = c.now().Sub(c.startedAt)
	c.running = false
}

// Running reports whether the clock is timing
func (c *Clock) Running() bool {
	return c.running
}

// StartedAt returns the instant timing began (zero if never started)
func (c *Clock) StartedAt() time.Time {
	return c.startedAt
}

// Elapsed returns time since Start while running, or the frozen value after
// Stop
func (c *Clock) Elapsed() time.Duration {
	if c.running {
		return c.now().Sub(c.startedAt)
	}
	return c.frozen
}

// ElapsedSeconds returns whole elapsed seconds
func (c *Clock) ElapsedSeconds() int {
	return int(c.Elapsed().Seconds())
}
