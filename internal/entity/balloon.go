package entity

import (
	"math/rand"

	"github.com/vovakirdan/balloon-climber/internal/config"
	"github.com/vovakirdan/balloon-climber/internal/core"
)

// BalloonState is the lifecycle of a balloon.
type BalloonState uint8

const (
	BalloonIdle BalloonState = iota
	BalloonRising
	BalloonPopped
)

func (s BalloonState) String() string {
	switch s {
	case BalloonIdle:
		return "idle"
	case BalloonRising:
		return "rising"
	case BalloonPopped:
		return "popped"
	default:
		return "unknown"
	}
}

// Balloon hangs still until the player touches it, then rises at a constant
// speed until it has climbed Life ticks worth of altitude and pops.
//
// X, Y is the center of the balloon body. The collision box is the string
// below it: a quarter radius either side of X, from Y+2R down to Y+3R.
type Balloon struct {
	handle Handle

	X, Y        float64
	Radius      float64
	RisingSpeed float64

	Life        int // ticks of rising before the pop
	Altitude    float64
	MinAltitude float64
	MaxAltitude float64

	touched bool
	popped  bool
}

// NewBalloon creates a balloon with an explicit lifespan in ticks.
func NewBalloon(x, y, radius, risingSpeed float64, life int) *Balloon {
	return &Balloon{
		X:           x,
		Y:           y,
		Radius:      radius,
		RisingSpeed: risingSpeed,
		Life:        life,
		Altitude:    y,
		MinAltitude: y,
		MaxAltitude: y + float64(life)*risingSpeed,
	}
}

// NewRandomBalloon draws the lifespan uniformly from the configured range.
// Easy balloons use the longer easy range.
func NewRandomBalloon(rng *rand.Rand, x, y float64, cfg config.BalloonConfig, easy bool) *Balloon {
	lo := cfg.LifeMin
	if easy {
		lo = cfg.EasyLifeMin
	}
	life := lo + rng.Intn(cfg.LifeMax-lo+1)
	return NewBalloon(x, y, cfg.Radius, cfg.RisingSpeed, life)
}

func (b *Balloon) Handle() Handle { return b.handle }

func (b *Balloon) setHandle(h Handle) { b.handle = h }

func (b *Balloon) Kind() Kind { return KindBalloon }

func (b *Balloon) Pos() (float64, float64) { return b.X, b.Y }

// Shift moves the balloon with the world scroll. Altitude is unaffected.
func (b *Balloon) Shift(dy float64) {
	b.Y += dy
}

// Bounds returns the string's box, or an empty box for a nil balloon.
func (b *Balloon) Bounds() core.Box {
	if b == nil {
		return core.Box{}
	}
	return core.Box{
		LowX:  b.X - b.Radius/4,
		LowY:  b.Y + 2*b.Radius,
		HighX: b.X + b.Radius/4,
		HighY: b.Y + 3*b.Radius,
	}
}

// Attachment is the point on the string the player's hands aim for.
func (b *Balloon) Attachment() (float64, float64) {
	return b.X, b.Y + 2.5*b.Radius
}

// Touch starts the balloon rising. Touching a popped balloon does nothing.
func (b *Balloon) Touch() {
	if !b.popped {
		b.touched = true
	}
}

// IsRising reports whether the balloon has been touched and not yet popped.
func (b *Balloon) IsRising() bool {
	return b.touched && !b.popped
}

// Popped reports whether the balloon has reached its terminal state.
func (b *Balloon) Popped() bool {
	return b.popped
}

// State returns the lifecycle state.
func (b *Balloon) State() BalloonState {
	switch {
	case b.popped:
		return BalloonPopped
	case b.touched:
		return BalloonRising
	default:
		return BalloonIdle
	}
}

// Progress is the fraction of the rise completed, in [0, 1].
func (b *Balloon) Progress() float64 {
	span := b.MaxAltitude - b.MinAltitude
	if span <= 0 {
		return 1
	}
	return core.ClampF((b.Altitude-b.MinAltitude)/span, 0, 1)
}

// Pop moves the balloon to its terminal state. onPop runs only on the
// transition; popping again is a no-op. It reports whether this call popped it.
func (b *Balloon) Pop(onPop func(Handle)) bool {
	if b.popped {
		return false
	}
	b.popped = true
	if onPop != nil {
		onPop(b.handle)
	}
	return true
}

// Step rises a touched balloon and pops it once its altitude budget is spent.
func (b *Balloon) Step(h Hooks) {
	if !b.touched || b.popped {
		return
	}
	b.Y -= b.RisingSpeed
	b.Altitude += b.RisingSpeed
	if b.Altitude >= b.MaxAltitude {
		b.Pop(h.OnPop)
	}
}
