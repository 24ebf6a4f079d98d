package loop

import (
	"time"

	"github.com/vovakirdan/balloon-climber/internal/core"
)

// InputSource hands out one input frame per tick, clearing what it read.
type InputSource interface {
	Snapshot() core.InputFrame
}

// Stepper advances a simulation by one tick.
type Stepper interface {
	Step(in core.InputFrame) core.StepResult
}

// Runner couples a Clock, an input source and a stepper. The host calls
// Frame once per display frame and renders afterwards.
type Runner struct {
	Clock *Clock
	Input InputSource
	Game  Stepper

	// AfterTick, when set, sees the result of every tick.
	AfterTick func(core.StepResult)

	last core.StepResult
}

// NewRunner creates a runner.
func NewRunner(clock *Clock, input InputSource, game Stepper) *Runner {
	return &Runner{Clock: clock, Input: input, Game: game}
}

// Frame runs every tick due at now, reading the input once per tick, and
// returns how many ran.
func (r *Runner) Frame(now time.Time) int {
	n := r.Clock.Advance(now)
	for range n {
		r.last = r.Game.Step(r.Input.Snapshot())
		if r.AfterTick != nil {
			r.AfterTick(r.last)
		}
	}
	return n
}

// Last returns the result of the most recent tick.
func (r *Runner) Last() core.StepResult {
	return r.last
}
