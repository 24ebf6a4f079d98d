package world

import (
	"math"

	"github.com/vovakirdan/balloon-climber/internal/core"
	"github.com/vovakirdan/balloon-climber/internal/entity"
)

// View is the read-only state of one entity as a renderer sees it.
// Radius, State and Progress are set for balloons; W and H for the player
// and enemies; Anim for the player.
type View struct {
	Handle entity.Handle
	Kind   entity.Kind
	X, Y   float64
	Bounds core.Box

	Radius   float64
	State    entity.BalloonState
	Progress float64

	W, H float64
	Anim entity.Anim
}

// Snapshot is a copy of the world state after a batch of ticks.
type Snapshot struct {
	Tick      uint64
	State     State
	Altitude  float64
	Score     int
	Highest   int
	LastScore int
	Fall      float64

	Player          View
	PlayerVX        float64
	PlayerVY        float64
	Grabbing        bool
	Hitpoints       int
	SpawnInterval   float64
	EnemySpacing    float64
	DifficultyLevel float64

	Entities []View
}

// Snapshot copies the current state. Entities keep registry order.
func (w *World) Snapshot() Snapshot {
	p := w.player
	snap := Snapshot{
		Tick:      w.ticks,
		State:     w.state,
		Altitude:  w.altitude,
		Score:     w.score,
		Highest:   w.highest,
		LastScore: w.lastScore,
		Fall:      w.FallProgress(),

		Player: View{
			Kind:   entity.KindPlayer,
			X:      p.X,
			Y:      p.Y,
			Bounds: p.Bounds(),
			W:      p.W,
			H:      p.H,
			Anim:   p.Anim(),
		},
		PlayerVX:        p.VX,
		PlayerVY:        p.VY,
		Grabbing:        p.Grabbing(),
		Hitpoints:       p.Hitpoints(),
		SpawnInterval:   w.spawner.NextInterval(),
		EnemySpacing:    w.spawner.EnemySpacing(),
		DifficultyLevel: w.DifficultyLevel(),

		Entities: make([]View, 0, w.reg.Len()),
	}

	for h, e := range w.reg.All() {
		snap.Entities = append(snap.Entities, viewOf(h, e))
	}
	return snap
}

func viewOf(h entity.Handle, e entity.Entity) View {
	v := View{Handle: h, Kind: e.Kind(), Bounds: e.Bounds()}
	v.X, v.Y = e.Pos()

	switch e := e.(type) {
	case *entity.Balloon:
		v.Radius = e.Radius
		v.State = e.State()
		v.Progress = e.Progress()
	case *entity.Enemy:
		v.W, v.H = e.W, e.H
	default:
		panic("world: unexpected entity type in snapshot")
	}
	return v
}

// Count returns how many entities of kind k the snapshot holds.
func (s *Snapshot) Count(k entity.Kind) int {
	n := 0
	for _, v := range s.Entities {
		if v.Kind == k {
			n++
		}
	}
	return n
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := s.Tick
	h = h*31 + uint64(s.State)
	h = h*31 + math.Float64bits(s.Altitude)
	h = h*31 + uint64(s.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(s.LastScore) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(s.PlayerVX)
	h = h*31 + math.Float64bits(s.PlayerVY)
	h = hashView(h, s.Player)

	for _, v := range s.Entities {
		h = hashView(h, v)
	}
	return h
}

func hashView(h uint64, v View) uint64 {
	h = h*31 + uint64(v.Handle)
	h = h*31 + uint64(v.Kind)
	h = h*31 + math.Float64bits(v.X)
	h = h*31 + math.Float64bits(v.Y)
	h = h*31 + uint64(v.State)
	h = h*31 + uint64(v.Anim)
	return h
}
