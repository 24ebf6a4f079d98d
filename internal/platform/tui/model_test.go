package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/balloon-climber/internal/config"
	"github.com/vovakirdan/balloon-climber/internal/core"
	"github.com/vovakirdan/balloon-climber/internal/games/balloons"
	"github.com/vovakirdan/balloon-climber/internal/storage"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

func newTestModel(t *testing.T, opts Options) (Model, *balloons.Game) {
	t.Helper()
	game := balloons.NewWithConfig(balloons.ClassicID, config.DefaultBalloonsConfig())
	return NewModel(game, testConfig(), opts), game
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok, "Update must return a Model")
	return model, cmd
}

func TestModelRunsTicksFromFrames(t *testing.T) {
	m, game := newTestModel(t, Options{})
	t0 := time.Unix(1000, 0)

	m, cmd := update(t, m, TickMsg(t0))
	assert.NotNil(t, cmd, "next frame must be scheduled")
	assert.Zero(t, game.World().Ticks(), "first frame only anchors the clock")

	m, _ = update(t, m, TickMsg(t0.Add(45*time.Millisecond)))
	assert.Equal(t, uint64(3), game.World().Ticks())
	assert.Equal(t, 3, m.runner.Clock.Stats().LastTicks)
}

func TestModelPauseThenBack(t *testing.T) {
	m, game := newTestModel(t, Options{})
	t0 := time.Unix(1000, 0)
	m, _ = update(t, m, TickMsg(t0))

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg(t0.Add(15*time.Millisecond)))
	require.True(t, m.GameState().Paused)

	ticks := game.World().Ticks()
	m, _ = update(t, m, TickMsg(t0.Add(150*time.Millisecond)))
	assert.Equal(t, ticks, game.World().Ticks(), "paused world must not move")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.BackToMenu())
	assert.NotNil(t, cmd, "a standalone game quits its program on back")
}

func TestModelEscPausesWhileRunning(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	t0 := time.Unix(1000, 0)
	m, _ = update(t, m, TickMsg(t0))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = update(t, m, TickMsg(t0.Add(15*time.Millisecond)))

	assert.True(t, m.GameState().Paused)
	assert.False(t, m.BackToMenu())
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, cmd := update(t, m, runeKey('q'))
	assert.True(t, m.IsQuitting())
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestModelMouseTapSteers(t *testing.T) {
	m, game := newTestModel(t, Options{})
	t0 := time.Unix(1000, 0)
	m, _ = update(t, m, TickMsg(t0))

	startX := game.World().Player().X
	// Far right on the lowest play row: steer right without jumping.
	m, _ = update(t, m, tea.MouseMsg{X: 79, Y: 22, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, TickMsg(t0.Add(15*time.Millisecond)))

	assert.InDelta(t, startX+10, game.World().Player().X, 1e-9)
	assert.Equal(t, game.World().Baseline(), game.World().Altitude())
	assert.False(t, game.World().Player().Falling(), "a low tap must not jump")
}

func TestModelResizeKeepsRun(t *testing.T) {
	m, game := newTestModel(t, Options{})
	t0 := time.Unix(1000, 0)
	m, _ = update(t, m, TickMsg(t0))
	m, _ = update(t, m, TickMsg(t0.Add(30*time.Millisecond)))

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, uint64(2), game.World().Ticks(), "resizing must not restart the world")

	view := m.View()
	assert.Len(t, strings.Split(view, "\n"), 40)
}

func TestModelDebugOverlayShowsStepStats(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	t0 := time.Unix(1000, 0)
	m, _ = update(t, m, TickMsg(t0))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF3})
	m, _ = update(t, m, TickMsg(t0.Add(30*time.Millisecond)))

	assert.Contains(t, m.View(), "steps/frame 2")
}

func TestRecorderSavesFinishedRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	game := balloons.NewWithConfig(balloons.StormID, config.DefaultBalloonsConfig())
	game.Reset(testConfig())
	rec := &recorder{store: store, logger: log.New(io.Discard), game: game, player: "ada"}

	rec.record(core.StepResult{State: core.GameState{Score: 4}})
	rec.record(core.StepResult{State: core.GameState{GameOver: true, LastScore: 0}})
	rec.record(core.StepResult{State: core.GameState{GameOver: true, LastScore: 5}})

	assert.Equal(t, 1, rec.saved, "only finished runs with a score are kept")
	scores, err := store.TopScores(balloons.StormID, 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 5, scores[0].Score)
	assert.Equal(t, "ada", scores[0].Player)
}

func TestRecorderWithoutStore(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m.recorder.record(core.StepResult{State: core.GameState{GameOver: true, LastScore: 5}})
	assert.Zero(t, m.RunsSaved())
}
