package entity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/balloon-climber/internal/config"
	"github.com/vovakirdan/balloon-climber/internal/core"
)

func TestBalloonLifespan(t *testing.T) {
	cfg := config.DefaultBalloonsConfig().Balloon
	rng := rand.New(rand.NewSource(7))

	b := NewRandomBalloon(rng, 500, 700, cfg, false)
	require.GreaterOrEqual(t, b.Life, cfg.LifeMin)
	require.LessOrEqual(t, b.Life, cfg.LifeMax)

	start := b.Altitude
	b.Touch()
	for range b.Life - 1 {
		b.Step(Hooks{})
		require.False(t, b.Popped(), "popped too early")
	}
	b.Step(Hooks{})

	assert.True(t, b.Popped())
	assert.Equal(t, 5*float64(b.Life), b.Altitude-start)
	assert.Equal(t, BalloonPopped, b.State())
	assert.Equal(t, 1.0, b.Progress())
}

func TestBalloonEasyLifespan(t *testing.T) {
	cfg := config.DefaultBalloonsConfig().Balloon
	rng := rand.New(rand.NewSource(1))
	for range 200 {
		b := NewRandomBalloon(rng, 0, 0, cfg, true)
		require.GreaterOrEqual(t, b.Life, cfg.EasyLifeMin)
		require.LessOrEqual(t, b.Life, cfg.LifeMax)
	}
}

func TestBalloonIdleUntilTouched(t *testing.T) {
	b := NewBalloon(100, 200, 50, 5, 10)
	for range 20 {
		b.Step(Hooks{})
	}
	assert.Equal(t, 200.0, b.Y)
	assert.Equal(t, BalloonIdle, b.State())
	assert.False(t, b.IsRising())

	b.Touch()
	assert.True(t, b.IsRising())
	assert.Equal(t, BalloonRising, b.State())
}

func TestBalloonMonotonicAndFrozenAfterPop(t *testing.T) {
	b := NewBalloon(0, 0, 50, 3, 8)
	b.Touch()

	prev := b.Altitude
	for !b.Popped() {
		b.Step(Hooks{})
		assert.GreaterOrEqual(t, b.Altitude, prev)
		prev = b.Altitude
	}

	y, alt := b.Y, b.Altitude
	for range 5 {
		b.Step(Hooks{})
	}
	assert.Equal(t, y, b.Y)
	assert.Equal(t, alt, b.Altitude)

	b.Touch()
	assert.False(t, b.IsRising(), "touching a popped balloon does nothing")
}

func TestBalloonPopIdempotent(t *testing.T) {
	b := NewBalloon(0, 0, 50, 3, 8)
	calls := 0
	onPop := func(Handle) { calls++ }

	assert.True(t, b.Pop(onPop))
	assert.False(t, b.Pop(onPop))
	assert.Equal(t, 1, calls)
}

func TestBalloonPopHookFiresFromStep(t *testing.T) {
	r := NewRegistry()
	h := r.Add(NewBalloon(0, 0, 50, 1, 2))
	r.Balloon(h).Touch()

	var popped []Handle
	hooks := Hooks{OnPop: func(h Handle) { popped = append(popped, h) }}
	for range 5 {
		r.StepAll(hooks)
	}
	assert.Equal(t, []Handle{h}, popped)
}

func TestBalloonBoundsIsTheString(t *testing.T) {
	b := NewBalloon(500, 300, 100, 5, 10)
	assert.Equal(t, core.Box{LowX: 475, LowY: 500, HighX: 525, HighY: 600}, b.Bounds())

	ax, ay := b.Attachment()
	assert.Equal(t, 500.0, ax)
	assert.Equal(t, 550.0, ay)

	var missing *Balloon
	assert.True(t, missing.Bounds().Empty())
	assert.False(t, core.Overlaps(missing, b))
}

func TestEnemyMovesLinearly(t *testing.T) {
	e := NewEnemy(10, 20, 5, 5, 2, -1)
	for range 3 {
		e.Step(Hooks{})
	}
	assert.Equal(t, 16.0, e.X)
	assert.Equal(t, 17.0, e.Y)
}

func TestRandomEnemyDriftsInward(t *testing.T) {
	cfg := config.DefaultBalloonsConfig().Enemy
	rng := rand.New(rand.NewSource(3))
	for range 200 {
		e := NewRandomEnemy(rng, cfg, 1000)
		require.GreaterOrEqual(t, e.W, cfg.MinSize)
		require.LessOrEqual(t, e.W, cfg.MaxSize)
		require.Equal(t, -3*e.H, e.Y)
		require.GreaterOrEqual(t, e.VY, 0.0)
		if e.X < 500 {
			require.GreaterOrEqual(t, e.VX, 0.0)
		} else {
			require.LessOrEqual(t, e.VX, 0.0)
		}
	}
}
