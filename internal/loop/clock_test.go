package loop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/balloon-climber/internal/core"
)

const tick = 15 * time.Millisecond

func TestClockFirstAdvanceAnchors(t *testing.T) {
	c := NewClock(tick, 20)
	t0 := time.Unix(1000, 0)

	assert.Zero(t, c.Advance(t0.Add(time.Hour)), "first call only anchors")
	assert.Zero(t, c.Stats().Frames)
}

func TestClockTickCount(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    int
	}{
		{"zero", 0, 0},
		{"below one tick", 14 * time.Millisecond, 0},
		{"exactly one tick", 15 * time.Millisecond, 1},
		{"floor", 100 * time.Millisecond, 6},
		{"at the cap", 300 * time.Millisecond, 20},
		{"beyond the cap", 10 * time.Second, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewClock(tick, 20)
			t0 := time.Unix(1000, 0)
			c.Advance(t0)
			assert.Equal(t, tc.want, c.Advance(t0.Add(tc.elapsed)))
		})
	}
}

func TestClockResidualCarriesForward(t *testing.T) {
	c := NewClock(tick, 20)
	t0 := time.Unix(1000, 0)
	c.Advance(t0)

	now := t0.Add(100 * time.Millisecond)
	require.Equal(t, 6, c.Advance(now))
	assert.Equal(t, 10*time.Millisecond, c.Residual(now))

	now = now.Add(5 * time.Millisecond)
	assert.Equal(t, 1, c.Advance(now), "10ms left over plus 5ms makes a tick")
	assert.Zero(t, c.Residual(now))
}

func TestClockCapDropsWholeTicksKeepsFraction(t *testing.T) {
	c := NewClock(tick, 20)
	t0 := time.Unix(1000, 0)
	c.Advance(t0)

	now := t0.Add(time.Second)
	require.Equal(t, 20, c.Advance(now))

	st := c.Stats()
	assert.Equal(t, uint64(46), st.Dropped, "66 due, 20 ran")
	assert.Equal(t, 10*time.Millisecond, c.Residual(now))

	assert.Equal(t, 1, c.Advance(now.Add(5*time.Millisecond)), "no catch-up spiral after a stall")
}

func TestClockIgnoresTimeGoingBackwards(t *testing.T) {
	c := NewClock(tick, 20)
	t0 := time.Unix(1000, 0)
	c.Advance(t0)

	assert.Zero(t, c.Advance(t0.Add(-time.Second)))
	assert.Equal(t, 2, c.Advance(t0.Add(30*time.Millisecond)), "time base did not move")
}

func TestClockStatsAndReset(t *testing.T) {
	c := NewClock(tick, 0)
	t0 := time.Unix(1000, 0)
	c.Advance(t0)
	c.Advance(t0.Add(30 * time.Millisecond))
	c.Advance(t0.Add(90 * time.Millisecond))

	st := c.Stats()
	assert.Equal(t, uint64(2), st.Frames)
	assert.Equal(t, uint64(6), st.Ticks)
	assert.Equal(t, 4, st.LastTicks)
	assert.Equal(t, 3.0, st.TicksPerFrame())

	c.Reset()
	assert.Zero(t, c.Advance(t0.Add(time.Hour)))
	assert.Equal(t, Stats{}, c.Stats())
}

type countingGame struct {
	steps  int
	inputs []core.InputFrame
}

func (g *countingGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.inputs = append(g.inputs, in)
	return core.StepResult{State: core.GameState{Score: g.steps}}
}

func TestRunnerRunsDueTicks(t *testing.T) {
	ctrl := core.NewInputController(2)
	game := &countingGame{}
	r := NewRunner(NewClock(tick, 20), ctrl, game)

	var seen []int
	r.AfterTick = func(res core.StepResult) { seen = append(seen, res.State.Score) }

	t0 := time.Unix(1000, 0)
	assert.Zero(t, r.Frame(t0))

	ctrl.Press(core.ActionJump)
	assert.Equal(t, 3, r.Frame(t0.Add(45*time.Millisecond)))
	assert.Equal(t, []int{1, 2, 3}, seen)
	assert.Equal(t, 3, r.Last().State.Score)

	require.Len(t, game.inputs, 3)
	assert.True(t, game.inputs[0].Has(core.ActionJump))
	assert.False(t, game.inputs[1].Has(core.ActionJump), "input is read and cleared once per tick")
}

func TestRunnerStallWithoutElapsedTime(t *testing.T) {
	game := &countingGame{}
	r := NewRunner(NewClock(tick, 20), core.NewInputController(2), game)

	t0 := time.Unix(1000, 0)
	r.Frame(t0)
	for range 25 {
		assert.Zero(t, r.Frame(t0))
	}
	assert.Zero(t, game.steps, "no time, no ticks")
}
