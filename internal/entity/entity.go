// Package entity implements the simulated objects of the climber: the
// player, balloons and enemies, plus the registry that owns every
// non-player entity.
//
// The set of entity kinds is closed. Code that handles entities switches on
// the concrete type and panics on anything unexpected, so adding a kind is
// a compile-and-test-visible change everywhere it matters.
package entity

import (
	"fmt"

	"github.com/vovakirdan/balloon-climber/internal/core"
)

// Handle identifies an entity inside a Registry. Handles start at 1, grow
// monotonically and are never reused. The zero Handle means "none".
type Handle uint64

// NoHandle is the zero handle.
const NoHandle Handle = 0

// Kind is the discriminant of the entity union.
type Kind uint8

const (
	KindPlayer Kind = iota + 1
	KindBalloon
	KindEnemy
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBalloon:
		return "balloon"
	case KindEnemy:
		return "enemy"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Hooks are the side effects an entity may trigger while stepping.
type Hooks struct {
	// OnPop fires once per balloon, on the tick it pops.
	OnPop func(Handle)
}

// Entity is a registry-owned object. Only *Balloon and *Enemy implement it.
type Entity interface {
	core.Bounded
	Handle() Handle
	Kind() Kind
	Pos() (x, y float64)
	// Shift moves the entity vertically without any other state change.
	Shift(dy float64)
	// Step advances the entity by one tick.
	Step(h Hooks)

	setHandle(Handle)
}

// OffScreen reports whether an entity has left the world: below the floor
// or outside the horizontal bounds.
func OffScreen(e Entity, width, height float64) bool {
	x, y := e.Pos()
	return y > height || x < 0 || x > width
}
