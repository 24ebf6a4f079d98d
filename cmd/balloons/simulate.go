package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/balloon-climber/internal/core"
	"github.com/vovakirdan/balloon-climber/internal/entity"
	"github.com/vovakirdan/balloon-climber/internal/games/balloons"
	"github.com/vovakirdan/balloon-climber/internal/loop"
	"github.com/vovakirdan/balloon-climber/internal/registry"
	"github.com/vovakirdan/balloon-climber/internal/world"
)

var (
	flagSimTicks  int
	flagSimJumpAt float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [variant]",
	Short: "Run a headless autopilot climb",
	Long: `Run the simulation without a terminal. An autopilot walks under the
lowest balloon, grabs it and jumps off once the balloon has used up
--jump-at of its life. Frames are fed at --fps on a synthetic clock, so
the run is reproducible with --seed.

Examples:
  balloons simulate
  balloons simulate balloons_enemies --ticks 50000 --seed 7
  balloons simulate --jump-at 0.8 --difficulty hard`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 20000, "Simulation ticks to run")
	simulateCmd.Flags().Float64Var(&flagSimJumpAt, "jump-at", 0.6, "Balloon life fraction at which the autopilot lets go")
}

// pilotInput feeds autopilot decisions to the runner as its input source.
type pilotInput struct {
	pilot world.Autopilot
	game  *balloons.Game
}

func (p pilotInput) Snapshot() core.InputFrame {
	return p.pilot.Input(p.game.World())
}

type simSummary struct {
	runs     int
	bestRun  int
	totalAlt float64
}

func runSimulate(cmd *cobra.Command, args []string) error {
	gameID := balloons.ClassicID
	if len(args) > 0 {
		gameID = args[0]
	}
	if flagSimTicks <= 0 {
		return errors.New("simulate: --ticks must be positive")
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	g, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	game, ok := g.(*balloons.Game)
	if !ok {
		return fmt.Errorf("simulate: %s is not a climber variant", gameID)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: seed})

	logger := newLogger(os.Stderr)
	var sum simSummary
	runner := loop.NewRunner(
		loop.NewClock(game.TickDuration(), game.MaxTicksPerFrame()),
		pilotInput{pilot: world.Autopilot{JumpAt: flagSimJumpAt}, game: game},
		game,
	)
	runner.AfterTick = func(res core.StepResult) {
		if !res.State.GameOver {
			return
		}
		sum.runs++
		sum.bestRun = max(sum.bestRun, res.State.LastScore)
		sum.totalAlt += game.LastRunAltitude()
		logger.Debug("run finished", "run", sum.runs, "score", res.State.LastScore,
			"altitude", game.LastRunAltitude(), "duration", game.LastRunDuration())
	}

	fps := max(flagFPS, 1)
	frame := time.Second / time.Duration(fps)
	now := time.Unix(0, 0)
	start := time.Now()
	for ticks := 0; ticks < flagSimTicks; {
		ticks += runner.Frame(now)
		now = now.Add(frame)
	}
	elapsed := time.Since(start)

	w := game.World()
	snap := w.Snapshot()
	st := runner.Clock.Stats()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Simulated %s, seed %d\n\n", game.Title(), seed)
	fmt.Fprintf(out, "  ticks        %d (%s of game time, %d frames, %.2f ticks/frame)\n",
		st.Ticks, time.Duration(st.Ticks)*game.TickDuration(), st.Frames, st.TicksPerFrame())
	fmt.Fprintf(out, "  runs ended   %d\n", sum.runs)
	fmt.Fprintf(out, "  best run     %d\n", sum.bestRun)
	fmt.Fprintf(out, "  best score   %d\n", w.HighestScore())
	fmt.Fprintf(out, "  current      score %d at altitude %.0f\n", snap.Score, snap.Altitude-w.Baseline())
	if sum.runs > 0 {
		fmt.Fprintf(out, "  avg altitude %.0f per run\n", sum.totalAlt/float64(sum.runs))
	}
	fmt.Fprintf(out, "  pops         %d\n", game.Pops())
	fmt.Fprintf(out, "  entities     %d balloons, %d enemies\n",
		snap.Count(entity.KindBalloon), snap.Count(entity.KindEnemy))
	fmt.Fprintf(out, "  state hash   %016x\n", snap.Hash())
	fmt.Fprintf(out, "  wall time    %s\n", elapsed.Round(time.Millisecond))
	return nil
}
