package main

import (
	"fmt"
	"os/user"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/balloon-climber/internal/config"
	"github.com/vovakirdan/balloon-climber/internal/games/balloons"
	"github.com/vovakirdan/balloon-climber/internal/platform/tui"
	"github.com/vovakirdan/balloon-climber/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play the climber",
	Long: `Start climbing. Without an argument the classic variant starts.

Controls:
  Left/Right, A/D  - Step sideways
  Up/W/Space       - Jump (also lets go of a balloon)
  Down/S           - Drop faster
  Mouse            - Hold to steer toward the pointer, click above to jump,
                     drag up to jump
  P                - Pause
  Esc              - Pause, again to leave
  R                - Start a new run
  F3               - Debug overlay
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  balloons play
  balloons play balloons_enemies --difficulty hard
  balloons play --config ./my-balloons.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd, serveCmd, simulateCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
}

// applyGameFlags hands the config flags to the game package before any
// game is created. A --config file that cannot be read or fails validation
// is returned as an error.
func applyGameFlags() error {
	if flagConfig != "" {
		if _, err := config.LoadBalloons(flagConfig); err != nil {
			return err
		}
	}
	balloons.SetConfigPath(flagConfig)
	balloons.SetDifficultyPreset(flagDifficulty)
	return nil
}

// localPlayer names the player in stored runs.
func localPlayer() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := balloons.ClassicID
	if len(args) > 0 {
		gameID = args[0]
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'balloons list' to see variants)", err)
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	store := openStore(logger)
	defer closeStore(logger, store)

	logger.Info("starting game", "game", gameID)
	_, err = tui.Run(game, runtimeConfig(), tui.Options{
		Store:  store,
		Logger: logger,
		Player: localPlayer(),
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
