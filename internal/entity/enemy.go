package entity

import (
	"math/rand"

	"github.com/vovakirdan/balloon-climber/internal/config"
	"github.com/vovakirdan/balloon-climber/internal/core"
)

// Enemy is a drifting rectangle that knocks the player down on contact.
// X, Y is its top-left corner.
type Enemy struct {
	handle Handle

	X, Y   float64
	W, H   float64
	VX, VY float64
}

// NewEnemy creates an enemy with an explicit size and velocity.
func NewEnemy(x, y, w, h, vx, vy float64) *Enemy {
	return &Enemy{X: x, Y: y, W: w, H: h, VX: vx, VY: vy}
}

// NewRandomEnemy spawns an enemy above the visible area, drifting toward
// the opposite half of the screen from where it appeared.
func NewRandomEnemy(rng *rand.Rand, cfg config.EnemyConfig, worldWidth float64) *Enemy {
	w := uniform(rng, cfg.MinSize, cfg.MaxSize)
	h := uniform(rng, cfg.MinSize, cfg.MaxSize)
	x := rng.Float64() * worldWidth

	vx := rng.Float64() * cfg.MaxVX
	if x >= worldWidth/2 {
		vx = -vx
	}
	vy := rng.Float64() * cfg.MaxVY

	return NewEnemy(x, -3*h, w, h, vx, vy)
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func (e *Enemy) Handle() Handle { return e.handle }

func (e *Enemy) setHandle(h Handle) { e.handle = h }

func (e *Enemy) Kind() Kind { return KindEnemy }

func (e *Enemy) Pos() (float64, float64) { return e.X, e.Y }

func (e *Enemy) Shift(dy float64) { e.Y += dy }

// Bounds returns the enemy's box, or an empty box for a nil enemy.
func (e *Enemy) Bounds() core.Box {
	if e == nil {
		return core.Box{}
	}
	return core.NewBox(e.X, e.Y, e.W, e.H)
}

// Step moves the enemy along its velocity.
func (e *Enemy) Step(Hooks) {
	e.X += e.VX
	e.Y += e.VY
}
