package domain

// TickResult reports what a scheduled tick did to a countdown.
type TickResult int

const (
	// TickStale means the tick belonged to a cancelled schedule and was ignored.
	TickStale TickResult = iota

	// TickContinue means one second was consumed and another tick is due.
	TickContinue

	// TickFinished means the countdown reached zero. No further tick is due.
	TickFinished
)

// Countdown is a whole-second countdown owned by exactly one screen.
//
// The displayed value is always Remaining. Start renders immediately and
// arms one tick; every tick consumes one second. A countdown never holds
// more than one pending tick: each Start, Pause, Reset and Cancel moves the
// generation forward, and ticks carrying an older generation are stale.
type Countdown struct {
	ID        string
	Initial   int
	Remaining int

	running    bool
	finished   bool
	generation uint64
}

// NewCountdown creates a stopped countdown holding the given number of seconds.
func NewCountdown(seconds int) Countdown {
	if seconds < 0 {
		seconds = 0
	}
	return Countdown{
		ID:        generateID(),
		Initial:   seconds,
		Remaining: seconds,
	}
}

// Running returns true while a tick is pending.
func (c *Countdown) Running() bool {
	return c.running
}

// Finished returns true once the countdown reached zero.
func (c *Countdown) Finished() bool {
	return c.finished
}

// Generation identifies the currently armed tick.
func (c *Countdown) Generation() uint64 {
	return c.generation
}

// Start arms the countdown. It returns true when the caller must schedule a
// tick for Generation(). Starting a running or finished countdown is a no-op.
// Starting at zero finishes immediately without arming a tick.
func (c *Countdown) Start() bool {
	if c.running || c.finished {
		return false
	}
	c.generation++
	if c.Remaining <= 0 {
		c.Remaining = 0
		c.finished = true
		return false
	}
	c.running = true
	return true
}

// Pause stops a running countdown and drops its pending tick.
// It returns false if the countdown was not running.
func (c *Countdown) Pause() bool {
	if !c.running {
		return false
	}
	c.running = false
	c.generation++
	return true
}

// Reset stops the countdown, drops any pending tick and reloads it.
func (c *Countdown) Reset(seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	c.running = false
	c.finished = false
	c.generation++
	c.Initial = seconds
	c.Remaining = seconds
}

// Cancel drops any pending tick. Screens call it before they are released.
func (c *Countdown) Cancel() {
	c.running = false
	c.generation++
}

// Tick consumes one second if gen identifies the pending tick.
func (c *Countdown) Tick(gen uint64) TickResult {
	if !c.running || gen != c.generation {
		return TickStale
	}
	if c.Remaining > 0 {
		c.Remaining--
	}
	if c.Remaining == 0 {
		c.running = false
		c.finished = true
		return TickFinished
	}
	return TickContinue
}

// Progress returns the elapsed fraction in [0, 1].
func (c *Countdown) Progress() float64 {
	if c.Initial <= 0 {
		return 1.0
	}
	return 1.0 - float64(c.Remaining)/float64(c.Initial)
}
