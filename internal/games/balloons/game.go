// Package balloons implements the balloon climber for the arcade platform.
// The player jumps between balloons that rise once grabbed and pop after a
// while; altitude gained is the score. The simulation lives in the world
// package, this package adapts it to registry.Game and draws it.
package balloons

import (
	"time"

	"github.com/vovakirdan/balloon-climber/internal/config"
	"github.com/vovakirdan/balloon-climber/internal/core"
	"github.com/vovakirdan/balloon-climber/internal/entity"
	"github.com/vovakirdan/balloon-climber/internal/registry"
	"github.com/vovakirdan/balloon-climber/internal/world"
)

// Registered game IDs.
const (
	ClassicID = "balloons"
	StormID   = "balloons_enemies"
)

// popFlashTicks is how long the POP! marker stays on screen.
const popFlashTicks = 20

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to the config file's own difficulty section.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts a world.World to the arcade platform.
type Game struct {
	id      string
	title   string
	enemies bool

	cfg       config.BalloonsConfig
	cfgLoaded bool
	cfgErr    error
	world     *world.World

	paused   bool
	debug    bool
	gameOver bool // true only on the tick a run ends

	popFlash int
	pops     int
	lastRun  time.Duration
	lastAlt  float64

	viewW, viewH int
}

// New creates the classic climber without enemies.
func New() *Game {
	return &Game{id: ClassicID, title: "Balloon Climber"}
}

// NewStorm creates the variant with drifting enemies.
func NewStorm() *Game {
	return &Game{id: StormID, title: "Balloon Climber: Storm", enemies: true}
}

// NewWithConfig creates a game that skips config file lookup.
func NewWithConfig(id string, cfg config.BalloonsConfig) *Game {
	g := New()
	if id == StormID {
		g = NewStorm()
	}
	g.cfg = cfg
	g.cfgLoaded = true
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

func (g *Game) loadConfig() config.BalloonsConfig {
	cfg := g.cfg
	if !g.cfgLoaded {
		var err error
		cfg, err = config.LoadBalloons(configPath)
		g.cfgErr = err
		if err != nil {
			cfg = config.DefaultBalloonsConfig()
		}
		config.ApplyBalloonsPreset(&cfg, difficultyPreset)
	}
	if g.enemies {
		cfg.Enemy.Enabled = true
	}
	return cfg
}

// ConfigErr reports why the last Reset fell back to the default config,
// nil when the configured file loaded.
func (g *Game) ConfigErr() error {
	return g.cfgErr
}

// Reset starts a new session. The session high score is kept by the
// platform, not here.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.cfg = g.loadConfig()
	g.world = world.New(g.cfg, rc.Seed, world.WithPopHook(func(entity.Handle) {
		g.pops++
	}))
	g.paused = false
	g.debug = rc.Debug
	g.gameOver = false
	g.popFlash = 0
	g.lastRun = 0
	g.lastAlt = 0
	g.viewW, g.viewH = rc.ScreenW, rc.ScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.gameOver = false

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionDebug) {
		g.debug = !g.debug
	}
	if in.Has(core.ActionRestart) {
		g.world.Restart()
		g.paused = false
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.TapValid {
		in.TapX, in.TapY = g.viewport().toWorld(in.TapX, in.TapY)
	}

	res := g.world.Tick(in)
	if len(res.Pops) > 0 {
		g.popFlash = popFlashTicks
	} else if g.popFlash > 0 {
		g.popFlash--
	}
	if res.Lost {
		g.gameOver = true
		g.lastRun = time.Duration(g.world.RunTicks()) * g.TickDuration()
		g.lastAlt = g.world.Altitude() - g.world.Baseline()
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state. GameOver is set only for the tick
// on which a run ended, so the platform records each run exactly once.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     g.world.Score(),
		HighScore: g.world.HighestScore(),
		LastScore: g.world.LastScore(),
		GameOver:  g.gameOver,
		Paused:    g.paused,
	}
}

// TickDuration is the fixed simulation step from the loaded config.
func (g *Game) TickDuration() time.Duration {
	return time.Duration(g.cfg.Loop.TickMillis) * time.Millisecond
}

// MaxTicksPerFrame is the catch-up cap from the loaded config.
func (g *Game) MaxTicksPerFrame() int {
	return g.cfg.Loop.MaxTicksPerFrame
}

// World exposes the simulation for read-only use.
func (g *Game) World() *world.World {
	return g.world
}

// Debug reports whether the debug overlay is on.
func (g *Game) Debug() bool {
	return g.debug
}

// Pops counts balloon pops in this session.
func (g *Game) Pops() int {
	return g.pops
}

// LastRunDuration is the play time of the most recently finished run.
func (g *Game) LastRunDuration() time.Duration {
	return g.lastRun
}

// LastRunAltitude is how far above the start the last finished run got.
func (g *Game) LastRunAltitude() float64 {
	return g.lastAlt
}

// Register the game variants with the registry
func init() {
	registry.Register(ClassicID, func() registry.Game {
		return New()
	})
	registry.Register(StormID, func() registry.Game {
		return NewStorm()
	})
}
