package world

import (
	"github.com/vovakirdan/balloon-climber/internal/entity"
)

// stepFall runs one iteration of the end-of-run animation: the altitude
// slides back to the baseline while every entity drifts up and out of the
// top of the screen. It reports whether a new run has started.
func (w *World) stepFall() bool {
	w.fall.iter++
	n := w.cfg.Fall.Iterations

	w.reg.ShiftAll(-float64(w.fall.iter))
	w.reg.RemoveIf(func(e entity.Entity) bool {
		_, y := e.Pos()
		return y < 0
	})

	frac := min(float64(w.fall.iter)/float64(n), 1)
	w.altitude = w.fall.from + (w.baseline-w.fall.from)*frac

	if w.fall.iter >= n && w.reg.Len() == 0 {
		w.resetRun()
		return true
	}
	return false
}

// FallProgress returns the fall animation progress in [0, 1], or 0 when
// no fall is running.
func (w *World) FallProgress() float64 {
	if w.state != StateFalling {
		return 0
	}
	return min(float64(w.fall.iter)/float64(w.cfg.Fall.Iterations), 1)
}

// resetRun starts a fresh run: an empty registry, the player back at the
// start, new seed balloons and both spawn counters at the baseline.
func (w *World) resetRun() {
	w.reg.Clear()
	w.player.Reset()
	w.altitude = w.baseline
	w.score = 0
	w.runTicks = 0
	w.state = StateActive
	w.fall = fallState{}
	w.seedBalloons()
	w.spawner.Reset(w.rng, w.altitude, w.difficulty.Interval(1, 0, 0))
}

// seedBalloons places one balloon within jumping reach of the start and
// stacks the rest above it at random columns.
func (w *World) seedBalloons() {
	bc := w.cfg.Balloon
	width, height := w.cfg.World.Width, w.cfg.World.Height
	r := bc.Radius
	easy := w.score < bc.EasyScoreThreshold

	w.reg.Add(entity.NewRandomBalloon(w.rng, width/2, height-5*r, bc, easy))
	for i := 1; i < bc.SeedCount; i++ {
		x := r + w.rng.Float64()*(width-2*r)
		y := height - 5*r - float64(i)*bc.SeedSpacing
		w.reg.Add(entity.NewRandomBalloon(w.rng, x, y, bc, easy))
	}
}
