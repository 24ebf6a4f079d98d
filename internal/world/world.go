// Package world runs the climber simulation. A World owns every piece of
// mutable state: the player, the entity registry, the altitude accumulator,
// the spawner and the random source. Nothing here is global, so any number
// of worlds can run side by side, one per SSH session for instance.
package world

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/balloon-climber/internal/config"
	"github.com/vovakirdan/balloon-climber/internal/core"
	"github.com/vovakirdan/balloon-climber/internal/entity"
)

// State is the top-level game state.
type State uint8

const (
	StateActive State = iota
	StateFalling
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateFalling:
		return "falling"
	default:
		return "unknown"
	}
}

// TickResult reports what happened during one tick.
type TickResult struct {
	Pops     []entity.Handle // balloons that popped, in pop order
	Spawned  int             // entities added by the spawner
	Scrolled float64         // altitude gained by the scroll
	Lost     bool            // the run ended and the fall animation started
	Reset    bool            // the fall animation finished and a new run began
	Player   entity.StepEvents
}

// Option configures a World.
type Option func(*World)

// WithPopHook registers a callback fired once for every balloon pop.
func WithPopHook(fn func(entity.Handle)) Option {
	return func(w *World) { w.onPop = fn }
}

type fallState struct {
	iter int
	from float64
}

// World is a single climbing session.
type World struct {
	cfg config.BalloonsConfig
	rng *rand.Rand

	reg        *entity.Registry
	player     *entity.Player
	spawner    *Spawner
	difficulty *config.DifficultyManager

	baseline float64
	altitude float64

	score     int
	highest   int
	lastScore int
	runs      int

	state State
	fall  fallState

	ticks    uint64
	runTicks int

	onPop func(entity.Handle)
}

// New creates a world and seeds the first run. cfg is expected to have
// passed Validate.
func New(cfg config.BalloonsConfig, seed int64, opts ...Option) *World {
	w := &World{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(seed)),
		reg:        entity.NewRegistry(),
		player:     entity.NewPlayer(cfg.Player, cfg.World.Width, cfg.World.Height),
		spawner:    NewSpawner(cfg.Balloon, cfg.Enemy, cfg.World.Width),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		baseline:   cfg.World.Midline,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.resetRun()
	return w
}

// Tick advances the simulation by one fixed step.
func (w *World) Tick(in core.InputFrame) TickResult {
	var res TickResult
	w.ticks++

	if w.state == StateFalling {
		res.Reset = w.stepFall()
		return res
	}
	w.runTicks++

	res.Player = w.player.Step(in, w.reg)

	w.reg.StepAll(entity.Hooks{OnPop: func(h entity.Handle) {
		res.Pops = append(res.Pops, h)
		if w.onPop != nil {
			w.onPop(h)
		}
	}})

	w.cleanup()
	if w.player.Grabbing() && w.reg.Balloon(w.player.Held()) == nil {
		w.player.Release()
		res.Player.Released = true
	}

	res.Scrolled = w.UpdateAltitude()

	for _, e := range w.spawner.Step(w.rng, w.spawnParams()) {
		w.reg.Add(e)
		res.Spawned++
	}

	res.Lost = w.updateScore()
	return res
}

// cleanup removes popped balloons and anything that left the world.
func (w *World) cleanup() {
	width, height := w.cfg.World.Width, w.cfg.World.Height
	w.reg.RemoveIf(func(e entity.Entity) bool {
		switch e := e.(type) {
		case *entity.Balloon:
			return e.Popped() || entity.OffScreen(e, width, height)
		case *entity.Enemy:
			return entity.OffScreen(e, width, height)
		default:
			panic("world: unexpected entity type in cleanup")
		}
	})
}

func (w *World) spawnParams() SpawnParams {
	p := SpawnParams{
		Altitude:         w.altitude,
		Score:            w.score,
		IntervalScale:    w.difficulty.Interval(1, w.score, w.runTicks),
		EnemyProbability: w.difficulty.Probability(w.cfg.Enemy.SpawnProbability, w.score, w.runTicks),
	}
	if w.player.Grabbing() {
		p.Held = w.reg.Balloon(w.player.Held())
	}
	return p
}

// updateScore recomputes the score and detects the end of a run. It reports
// whether the fall animation started.
func (w *World) updateScore() bool {
	if w.player.OnFloor() {
		if w.altitude > w.baseline+w.cfg.Fall.MinAltitudeGain {
			w.lastScore = w.scoreAt(w.altitude)
			w.score = 0
			w.runs++
			w.state = StateFalling
			w.fall = fallState{from: w.altitude}
			return true
		}
		if w.altitude != w.baseline {
			w.altitude = w.baseline
			w.spawner.Reset(w.rng, w.altitude, w.difficulty.Interval(1, 0, w.runTicks))
		}
		w.score = 0
		return false
	}

	w.score = w.scoreAt(w.altitude)
	w.highest = max(w.highest, w.score)
	return false
}

func (w *World) scoreAt(altitude float64) int {
	return int(math.Floor((altitude - w.baseline) / w.cfg.World.ScoreUnit))
}

// Player returns the player. Callers must treat it as read-only.
func (w *World) Player() *entity.Player { return w.player }

// Registry returns the entity registry. Callers must treat it as read-only.
func (w *World) Registry() *entity.Registry { return w.reg }

// Config returns the configuration the world runs with.
func (w *World) Config() config.BalloonsConfig { return w.cfg }

func (w *World) State() State { return w.state }

// Altitude returns the altitude accumulator.
func (w *World) Altitude() float64 { return w.altitude }

// Baseline is the altitude every run starts from.
func (w *World) Baseline() float64 { return w.baseline }

func (w *World) Score() int { return w.score }

// HighestScore is the best score reached in this session.
func (w *World) HighestScore() int { return w.highest }

// LastScore is the score of the most recently finished run.
func (w *World) LastScore() int { return w.lastScore }

// Runs counts finished runs.
func (w *World) Runs() int { return w.runs }

// Ticks counts every tick since the world was created.
func (w *World) Ticks() uint64 { return w.ticks }

// RunTicks counts the active ticks of the current run.
func (w *World) RunTicks() int { return w.runTicks }

// DifficultyLevel returns the current difficulty in [0, 1].
func (w *World) DifficultyLevel() float64 {
	return w.difficulty.Level(w.score, w.runTicks)
}

// SetDifficultyLevel overrides the initial difficulty level.
func (w *World) SetDifficultyLevel(level float64) {
	w.difficulty.SetInitialLevel(level)
}

// Restart abandons the current run without recording it.
func (w *World) Restart() {
	w.resetRun()
}
