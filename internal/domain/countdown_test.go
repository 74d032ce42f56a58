package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runToEnd starts c and feeds it ticks until it finishes, returning the
// number of ticks consumed.
func runToEnd(t *testing.T, c *Countdown) int {
	t.Helper()
	require.True(t, c.Start())
	ticks := 0
	for {
		ticks++
		res := c.Tick(c.Generation())
		require.GreaterOrEqual(t, c.Remaining, 0)
		if res == TickFinished {
			return ticks
		}
		require.Equal(t, TickContinue, res)
		require.Less(t, ticks, 100000, "countdown never finished")
	}
}

func TestNewCountdown(t *testing.T) {
	c := NewCountdown(1500)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, 1500, c.Initial)
	assert.Equal(t, 1500, c.Remaining)
	assert.False(t, c.Running())
	assert.False(t, c.Finished())

	neg := NewCountdown(-5)
	assert.Equal(t, 0, neg.Remaining)
}

func TestCountdown_FinishesAfterExactlyStartValueTicks(t *testing.T) {
	for _, v := range []int{1, 2, 3, 60, 1500} {
		c := NewCountdown(v)
		c.Reset(v)
		assert.Equal(t, v, runToEnd(t, &c), "start value %d", v)
		assert.Equal(t, 0, c.Remaining)
		assert.True(t, c.Finished())
		assert.False(t, c.Running())
	}
}

func TestCountdown_TickDisplaysDecreasingValues(t *testing.T) {
	c := NewCountdown(3)
	require.True(t, c.Start())
	assert.Equal(t, 3, c.Remaining)

	assert.Equal(t, TickContinue, c.Tick(c.Generation()))
	assert.Equal(t, 2, c.Remaining)
	assert.Equal(t, TickContinue, c.Tick(c.Generation()))
	assert.Equal(t, 1, c.Remaining)
	assert.Equal(t, TickFinished, c.Tick(c.Generation()))
	assert.Equal(t, 0, c.Remaining)

	// A finished countdown ignores further ticks.
	assert.Equal(t, TickStale, c.Tick(c.Generation()))
	assert.Equal(t, 0, c.Remaining)
}

func TestCountdown_StartIsNoopWhileRunning(t *testing.T) {
	c := NewCountdown(10)
	require.True(t, c.Start())
	gen := c.Generation()

	assert.False(t, c.Start())
	assert.Equal(t, gen, c.Generation(), "second start must not arm another tick")
}

func TestCountdown_StartAtZeroFinishesImmediately(t *testing.T) {
	c := NewCountdown(0)
	assert.False(t, c.Start())
	assert.True(t, c.Finished())
	assert.False(t, c.Running())
	assert.Equal(t, 0, c.Remaining)
}

func TestCountdown_PauseThenStartResumesExactly(t *testing.T) {
	c := NewCountdown(10)
	require.True(t, c.Start())
	c.Tick(c.Generation())
	c.Tick(c.Generation())
	require.Equal(t, 8, c.Remaining)

	staleGen := c.Generation()
	assert.True(t, c.Pause())
	assert.Equal(t, 8, c.Remaining)
	assert.False(t, c.Pause(), "pausing twice is a no-op")

	// The tick that was pending at pause time is dropped.
	assert.Equal(t, TickStale, c.Tick(staleGen))
	assert.Equal(t, 8, c.Remaining)

	require.True(t, c.Start())
	assert.Equal(t, 8, c.Remaining, "resume must not consume a second")
	assert.Equal(t, TickStale, c.Tick(staleGen))
	assert.Equal(t, TickContinue, c.Tick(c.Generation()))
	assert.Equal(t, 7, c.Remaining)
}

func TestCountdown_ResetIsIdempotentAndCancels(t *testing.T) {
	c := NewCountdown(1500)
	require.True(t, c.Start())
	pending := c.Generation()
	c.Tick(pending)
	pending = c.Generation()

	c.Reset(1500)
	once := c
	c.Reset(1500)

	assert.Equal(t, 1500, c.Remaining)
	assert.False(t, c.Running())
	assert.False(t, c.Finished())
	assert.Equal(t, once.Remaining, c.Remaining)
	assert.Equal(t, once.Running(), c.Running())
	assert.Equal(t, TickStale, c.Tick(pending))
	assert.Equal(t, 1500, c.Remaining)
}

func TestCountdown_ResetAfterFinishAllowsRestart(t *testing.T) {
	c := NewCountdown(1)
	runToEnd(t, &c)
	assert.False(t, c.Start(), "finished countdown cannot restart without reset")

	c.Reset(1)
	assert.True(t, c.Start())
}

func TestCountdown_CancelDropsPendingTick(t *testing.T) {
	c := NewCountdown(5)
	require.True(t, c.Start())
	gen := c.Generation()

	c.Cancel()
	assert.Equal(t, TickStale, c.Tick(gen))
	assert.Equal(t, 5, c.Remaining)
	assert.False(t, c.Running())
}

func TestCountdown_Progress(t *testing.T) {
	c := NewCountdown(4)
	assert.InDelta(t, 0.0, c.Progress(), 1e-9)
	c.Start()
	c.Tick(c.Generation())
	assert.InDelta(t, 0.25, c.Progress(), 1e-9)

	zero := NewCountdown(0)
	assert.InDelta(t, 1.0, zero.Progress(), 1e-9)
}
