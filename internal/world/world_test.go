package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/balloon-climber/internal/config"
	"github.com/vovakirdan/balloon-climber/internal/core"
	"github.com/vovakirdan/balloon-climber/internal/entity"
)

func newTestWorld(t *testing.T, seed int64, opts ...Option) *World {
	t.Helper()
	cfg := config.DefaultBalloonsConfig()
	require.NoError(t, cfg.Validate())
	return New(cfg, seed, opts...)
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func TestNewWorldSeedsBalloons(t *testing.T) {
	w := newTestWorld(t, 1)
	cfg := w.Config()

	assert.Equal(t, StateActive, w.State())
	assert.Equal(t, cfg.World.Midline, w.Altitude())
	assert.Equal(t, cfg.Balloon.SeedCount, w.Registry().Len())

	first := w.Registry().Balloon(1)
	require.NotNil(t, first)
	assert.Equal(t, cfg.World.Width/2, first.X)
	assert.Equal(t, cfg.World.Height-5*cfg.Balloon.Radius, first.Y)
	assert.GreaterOrEqual(t, first.Life, cfg.Balloon.EasyLifeMin, "seed balloons use the easy range")
}

func TestUpdateAltitudeShiftsEverything(t *testing.T) {
	w := newTestWorld(t, 1)
	w.Registry().Add(entity.NewEnemy(100, 50, 20, 20, 0, 0))

	before := map[entity.Handle]float64{}
	for h, e := range w.Registry().All() {
		_, y := e.Pos()
		before[h] = y
	}
	alt := w.Altitude()

	w.player.Y = 350
	n := w.UpdateAltitude()

	assert.Equal(t, 50.0, n)
	assert.Equal(t, 400.0, w.player.Y)
	assert.Equal(t, alt+50, w.Altitude())
	for h, e := range w.Registry().All() {
		_, y := e.Pos()
		assert.Equal(t, before[h]+50, y, "entity %d", h)
	}
}

func TestUpdateAltitudeBelowMidlineIsNoop(t *testing.T) {
	w := newTestWorld(t, 1)
	w.player.Y = 450
	alt := w.Altitude()

	assert.Zero(t, w.UpdateAltitude())
	assert.Equal(t, 450.0, w.player.Y)
	assert.Equal(t, alt, w.Altitude())
}

func TestIdleWorldIsStable(t *testing.T) {
	w := newTestWorld(t, 3)
	before := w.Snapshot()

	for range 25 {
		res := w.Tick(idle())
		require.Zero(t, res.Spawned)
		require.False(t, res.Lost)
	}

	after := w.Snapshot()
	assert.Equal(t, before.Entities, after.Entities)
	assert.Equal(t, before.Player, after.Player)
	assert.Zero(t, after.Score)
	assert.Equal(t, before.Altitude, after.Altitude)
}

func TestPopIsReportedOnceAndRemoved(t *testing.T) {
	pops := 0
	w := newTestWorld(t, 1, WithPopHook(func(entity.Handle) { pops++ }))

	b := entity.NewBalloon(100, 100, 100, 5, 1)
	h := w.Registry().Add(b)
	b.Touch()

	res := w.Tick(idle())
	assert.Equal(t, []entity.Handle{h}, res.Pops)
	assert.Nil(t, w.Registry().Balloon(h), "popped balloons are gone by the end of the tick")

	w.Tick(idle())
	assert.Equal(t, 1, pops)
}

func TestWorldReleasesPoppedRide(t *testing.T) {
	w := newTestWorld(t, 1)
	w.Registry().Clear()

	b := entity.NewBalloon(500, 300, 100, 5, 3)
	h := w.Registry().Add(b)
	w.player.X, w.player.Y = 450, 480

	res := w.Tick(idle())
	require.Equal(t, h, res.Player.Grabbed)

	for range 3 {
		res = w.Tick(idle())
		if len(res.Pops) > 0 {
			break
		}
	}
	require.Equal(t, []entity.Handle{h}, res.Pops)
	assert.True(t, res.Player.Released)
	assert.False(t, w.Player().Grabbing(), "no dangling handle after cleanup")
}

func TestAutopilotClimbs(t *testing.T) {
	w := newTestWorld(t, 11)
	pilot := Autopilot{JumpAt: 0.6}

	grabbed := false
	for range 300 {
		w.Tick(pilot.Input(w))
		if w.Player().Grabbing() {
			grabbed = true
			break
		}
	}
	require.True(t, grabbed, "autopilot should reach the first balloon")
	assert.True(t, w.Registry().Balloon(w.Player().Held()).IsRising())

	for range 600 {
		w.Tick(pilot.Input(w))
	}
	assert.Greater(t, w.HighestScore(), 0)
}

func TestLossStartsFallAndReset(t *testing.T) {
	w := newTestWorld(t, 5)
	cfg := w.Config()
	require.True(t, w.Player().OnFloor())

	w.altitude = w.Baseline() + 500

	res := w.Tick(idle())
	require.True(t, res.Lost)
	assert.Equal(t, StateFalling, w.State())
	assert.Equal(t, 5, w.LastScore())
	assert.Zero(t, w.Score())
	assert.Equal(t, 1, w.Runs())

	for i := 1; i < cfg.Fall.Iterations; i++ {
		res = w.Tick(idle())
		require.False(t, res.Reset, "iteration %d", i)
		if i == cfg.Fall.Iterations/2 {
			assert.InDelta(t, w.Baseline()+250, w.Altitude(), 1e-9, "altitude slides back linearly")
		}
	}

	res = w.Tick(idle())
	require.True(t, res.Reset)
	assert.Equal(t, StateActive, w.State())
	assert.Equal(t, w.Baseline(), w.Altitude())
	assert.Equal(t, cfg.Balloon.SeedCount, w.Registry().Len())
	assert.True(t, w.Player().OnFloor())
	assert.Equal(t, 5, w.LastScore())
}

func TestFallWaitsForEmptyRegistry(t *testing.T) {
	cfg := config.DefaultBalloonsConfig()
	cfg.World.Height = 100000
	cfg.Player.StartY = cfg.World.Height - cfg.Player.Height
	w := New(cfg, 5)

	w.altitude = w.Baseline() + 500
	require.True(t, w.Tick(idle()).Lost)

	ticks := 0
	for w.State() == StateFalling {
		w.Tick(idle())
		ticks++
		require.Less(t, ticks, 10000)
	}
	assert.Greater(t, ticks, cfg.Fall.Iterations, "balloons far below keep the animation running")
}

func TestSmallGainIsNotALoss(t *testing.T) {
	w := newTestWorld(t, 5)
	w.altitude = w.Baseline() + 1

	res := w.Tick(idle())
	assert.False(t, res.Lost)
	assert.Equal(t, StateActive, w.State())
	assert.Equal(t, w.Baseline(), w.Altitude())
}

func TestScoreFollowsAltitude(t *testing.T) {
	w := newTestWorld(t, 5)
	w.player.Y = 500
	w.player.VY = -1
	w.altitude = w.Baseline() + 349

	w.Tick(idle())
	assert.Equal(t, 3, w.Score())
	assert.Equal(t, 3, w.HighestScore())
}

func TestBalloonIntervalStaysInRangeAtMaxDifficulty(t *testing.T) {
	w := newTestWorld(t, 3)
	cfg := w.Config().Balloon
	w.score = w.Config().Difficulty.Progression.MaxAt

	p := w.spawnParams()
	require.Greater(t, p.IntervalScale, 1.0, "difficulty should be stretching intervals")

	for range 200 {
		w.spawner.drawInterval(w.rng, p.IntervalScale)
		assert.GreaterOrEqual(t, w.spawner.NextInterval(), cfg.IntervalMin)
		assert.LessOrEqual(t, w.spawner.NextInterval(), cfg.IntervalMax)
	}
}

func TestDeterminism(t *testing.T) {
	w1 := newTestWorld(t, 42)
	w2 := newTestWorld(t, 42)
	pilot := Autopilot{JumpAt: 0.5}

	for i := range 2000 {
		w1.Tick(pilot.Input(w1))
		w2.Tick(pilot.Input(w2))
		if i%100 == 0 {
			s1, s2 := w1.Snapshot(), w2.Snapshot()
			require.Equal(t, s1.Hash(), s2.Hash(), "tick %d", i)
		}
	}
	s1, s2 := w1.Snapshot(), w2.Snapshot()
	assert.Equal(t, s1, s2)
}

func TestSnapshotViews(t *testing.T) {
	w := newTestWorld(t, 1)
	w.Registry().Add(entity.NewEnemy(10, 20, 30, 40, 1, 1))

	snap := w.Snapshot()
	assert.Equal(t, w.Config().Balloon.SeedCount, snap.Count(entity.KindBalloon))
	assert.Equal(t, 1, snap.Count(entity.KindEnemy))
	assert.Equal(t, entity.KindPlayer, snap.Player.Kind)
	assert.Equal(t, entity.AnimStanding, snap.Player.Anim)

	last := snap.Entities[len(snap.Entities)-1]
	assert.Equal(t, entity.KindEnemy, last.Kind)
	assert.Equal(t, core.NewBox(10, 20, 30, 40), last.Bounds)
	assert.Equal(t, 30.0, last.W)

	first := snap.Entities[0]
	assert.Equal(t, entity.BalloonIdle, first.State)
	assert.Equal(t, w.Config().Balloon.Radius, first.Radius)
}

func TestRestartKeepsSessionScores(t *testing.T) {
	w := newTestWorld(t, 5)
	w.highest = 12
	w.lastScore = 4
	w.player.Y = 100

	w.Restart()
	assert.Equal(t, 12, w.HighestScore())
	assert.Equal(t, 4, w.LastScore())
	assert.True(t, w.Player().OnFloor())
	assert.Equal(t, StateActive, w.State())
}
