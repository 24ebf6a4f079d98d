package balloons

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/balloon-climber/internal/config"
	"github.com/vovakirdan/balloon-climber/internal/core"
	"github.com/vovakirdan/balloon-climber/internal/registry"
	"github.com/vovakirdan/balloon-climber/internal/world"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{ClassicID, StormID} {
		if !registry.Exists(id) {
			t.Errorf("game %q should be registered", id)
		}
	}

	g, err := registry.Create(StormID)
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", StormID, err)
	}
	if g.Title() != "Balloon Climber: Storm" {
		t.Errorf("unexpected title %q", g.Title())
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := config.DefaultBalloonsConfig()
	pilot := world.Autopilot{JumpAt: 0.5}

	run := func() uint64 {
		g := NewWithConfig(ClassicID, cfg)
		g.Reset(testRuntime(12345))
		for range 1500 {
			g.Step(pilot.Input(g.World()))
		}
		snap := g.World().Snapshot()
		return snap.Hash()
	}

	if h1, h2 := run(), run(); h1 != h2 {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", h1, h2)
	}
}

func TestStormEnablesEnemies(t *testing.T) {
	g := NewWithConfig(StormID, config.DefaultBalloonsConfig())
	g.Reset(testRuntime(1))
	if !g.World().Config().Enemy.Enabled {
		t.Error("storm variant should spawn enemies")
	}

	classic := NewWithConfig(ClassicID, config.DefaultBalloonsConfig())
	classic.Reset(testRuntime(1))
	if classic.World().Config().Enemy.Enabled {
		t.Error("classic variant should not spawn enemies")
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	g := NewWithConfig(ClassicID, config.DefaultBalloonsConfig())
	g.Reset(testRuntime(1))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	res := g.Step(pause)
	if !res.State.Paused {
		t.Fatal("game should be paused")
	}
	ticks := g.World().Ticks()
	for range 10 {
		g.Step(core.NewInputFrame())
	}
	if g.World().Ticks() != ticks {
		t.Errorf("world advanced while paused: %d -> %d", ticks, g.World().Ticks())
	}

	res = g.Step(pause)
	if res.State.Paused {
		t.Error("second pause should resume")
	}
	if g.World().Ticks() != ticks+1 {
		t.Errorf("world should tick after resuming")
	}
}

func TestRestartStartsNewRun(t *testing.T) {
	g := NewWithConfig(ClassicID, config.DefaultBalloonsConfig())
	g.Reset(testRuntime(1))
	for range 30 {
		g.Step(core.NewInputFrame())
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if got := g.World().RunTicks(); got != 1 {
		t.Errorf("RunTicks after restart = %d, want 1", got)
	}
}

func TestGameOverReportedOncePerRun(t *testing.T) {
	cfg := config.DefaultBalloonsConfig()
	cfg.Balloon.SeedCount = 1
	cfg.Player.StartX = 0
	cfg.Player.StartY = 100 // starts above the midline and drops

	g := NewWithConfig(ClassicID, cfg)
	g.Reset(testRuntime(1))

	overs := 0
	var last core.GameState
	for range 120 {
		res := g.Step(core.NewInputFrame())
		if res.State.GameOver {
			overs++
			last = res.State
		}
	}

	if overs != 1 {
		t.Fatalf("GameOver reported %d times, want 1", overs)
	}
	if last.LastScore != 2 {
		t.Errorf("LastScore = %d, want 2", last.LastScore)
	}
	if g.LastRunDuration() <= 0 {
		t.Error("last run duration should be recorded")
	}
	if g.LastRunAltitude() <= 0 {
		t.Error("last run altitude should be recorded")
	}
}

func TestViewportMapping(t *testing.T) {
	v := newViewport(config.DefaultBalloonsConfig().World, 80, 24)

	x, y := v.toWorld(40, 1)
	if x != 506.25 {
		t.Errorf("tap x = %v, want 506.25", x)
	}
	if y <= 0 || y >= v.sy {
		t.Errorf("tap on the first play row should map into the first world band, got %v", y)
	}
	if v.col(x) != 40 {
		t.Errorf("col(%v) = %d, want 40", x, v.col(x))
	}
}

func TestRender(t *testing.T) {
	g := NewWithConfig(ClassicID, config.DefaultBalloonsConfig())
	g.Reset(testRuntime(1))

	dst := core.NewScreen(80, 24)
	g.Render(dst)

	if got := dst.Get(0, 23); got != GroundChar {
		t.Errorf("ground missing, got %q", got)
	}
	if row := dst.Row(0); !strings.HasPrefix(row, " ALT") {
		t.Errorf("HUD missing, got %q", row)
	}

	foundPlayer, foundBalloon := false, false
	for y := range dst.Height() {
		for x := range dst.Width() {
			switch dst.Get(x, y) {
			case 'o':
				foundPlayer = true
			case BalloonChar:
				foundBalloon = true
			}
		}
	}
	if !foundPlayer {
		t.Error("player sprite not drawn")
	}
	if !foundBalloon {
		t.Error("no balloon drawn")
	}
}

func TestRenderPausedMessage(t *testing.T) {
	g := NewWithConfig(ClassicID, config.DefaultBalloonsConfig())
	g.Reset(testRuntime(1))
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	dst := core.NewScreen(80, 24)
	g.Render(dst)

	found := false
	for y := range dst.Height() {
		if strings.Contains(dst.Row(y), "PAUSED") {
			found = true
		}
	}
	if !found {
		t.Error("pause message not drawn")
	}
}

func TestInvalidConfigFileIsReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("balloon:\n  radius: -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(testRuntime(1))

	if !errors.Is(g.ConfigErr(), config.ErrInvalidConfig) {
		t.Fatalf("ConfigErr() = %v, want ErrInvalidConfig", g.ConfigErr())
	}
	if r := g.World().Config().Balloon.Radius; r != 100 {
		t.Errorf("fallback radius = %v, want the default 100", r)
	}
}
