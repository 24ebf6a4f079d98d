package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/balloon-climber/internal/core"
	"github.com/vovakirdan/balloon-climber/internal/loop"
	"github.com/vovakirdan/balloon-climber/internal/registry"
	"github.com/vovakirdan/balloon-climber/internal/storage"
)

// swipeRows is how far (in cells) an upward mouse drag must travel to jump.
const swipeRows = 3

// Games may expose their own step length and catch-up cap.
type timedGame interface {
	TickDuration() time.Duration
	MaxTicksPerFrame() int
}

// Games may report details of the run that just ended.
type runReporter interface {
	LastRunDuration() time.Duration
	LastRunAltitude() float64
}

type debugGame interface {
	Debug() bool
}

// Games that load their own config report a file they could not use.
type configReporter interface {
	ConfigErr() error
}

// Options are the collaborators of a game model. All of them are optional.
type Options struct {
	Store  *storage.Store
	Logger *log.Logger
	Player string // recorded with each run
}

// Model is the Bubble Tea model that hosts one game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     *KeyMapper
	input    *core.InputController
	runner   *loop.Runner
	recorder *recorder
	logger   *log.Logger

	gameState core.GameState
	started   time.Time
	now       time.Time

	embedded   bool // hosted by a session; Back returns instead of quitting
	quitting   bool
	backToMenu bool
}

// NewModel resets the game and wires it to a fixed-step runner.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	if cr, ok := game.(configReporter); ok && cr.ConfigErr() != nil {
		logger.Warn("using default config", "game", game.ID(), "error", cr.ConfigErr())
	}

	step, maxTicks := time.Second/time.Duration(max(cfg.TickRate, 1)), 1
	if tg, ok := game.(timedGame); ok {
		step, maxTicks = tg.TickDuration(), tg.MaxTicksPerFrame()
	}

	input := core.NewInputController(swipeRows)
	rec := &recorder{store: opts.Store, logger: logger, game: game, player: opts.Player}
	runner := loop.NewRunner(loop.NewClock(step, maxTicks), input, game)
	runner.AfterTick = rec.record

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:   cfg,
		keys:     NewKeyMapper(),
		input:    input,
		runner:   runner,
		recorder: rec,
		logger:   logger,
	}
}

// Init starts the display refresh.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack && m.gameState.Paused:
		m.backToMenu = true
		if !m.embedded {
			return m, tea.Quit
		}
		return m, nil
	case action == core.ActionBack:
		m.input.Press(core.ActionPause)
	default:
		m.input.Press(action)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) {
	x, y := float64(msg.X), float64(msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.input.PointerDown(x, y)
		}
	case tea.MouseActionMotion:
		m.input.PointerMove(x, y)
	case tea.MouseActionRelease:
		m.input.PointerUp(x, y)
	}
}

// handleFrame runs every tick that is due and schedules the next frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.started.IsZero() {
		m.started = now
	}
	m.now = now

	if m.runner.Frame(now) > 0 {
		m.gameState = m.runner.Last().State
	}
	return m, frameCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if dg, ok := m.game.(debugGame); ok && dg.Debug() {
		m.drawStepStats()
	}
	return RenderScreen(m.screen)
}

// drawStepStats adds host loop figures to the game's debug overlay.
func (m Model) drawStepStats() {
	st := m.runner.Clock.Stats()
	rate := 0.0
	if secs := m.now.Sub(m.started).Seconds(); secs > 0 {
		rate = float64(st.Ticks) / secs
	}
	line := fmt.Sprintf("steps/frame %d (avg %.2f)  steps/s %.0f  dropped %d",
		st.LastTicks, st.TicksPerFrame(), rate, st.Dropped)
	m.screen.DrawTextColored(1, 1, line, core.ColorCyan)
}

// GameState returns the state after the latest tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// RunsSaved counts runs written to the score store.
func (m Model) RunsSaved() int {
	return m.recorder.saved
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// recorder stores each finished run. It sees every tick through the
// runner, so a run that ends mid-frame is not missed.
type recorder struct {
	store  *storage.Store
	logger *log.Logger
	game   registry.Game
	player string
	saved  int
}

func (r *recorder) record(res core.StepResult) {
	if !res.State.GameOver || res.State.LastScore <= 0 {
		return
	}

	run := storage.Run{
		GameID: r.game.ID(),
		Player: r.player,
		Score:  res.State.LastScore,
	}
	if rr, ok := r.game.(runReporter); ok {
		run.Duration = rr.LastRunDuration()
		run.Altitude = rr.LastRunAltitude()
	}

	if r.store == nil {
		r.logger.Debug("run finished", "game", run.GameID, "score", run.Score)
		return
	}
	id, err := r.store.SaveRun(run)
	if err != nil {
		r.logger.Warn("could not save run", "game", run.GameID, "score", run.Score, "error", err)
		return
	}
	r.saved++
	r.logger.Debug("run saved", "id", id, "game", run.GameID, "score", run.Score,
		"altitude", run.Altitude, "duration", run.Duration)
}

// Run starts the Bubble Tea program for one game.
// It returns true if the player asked to go back to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
