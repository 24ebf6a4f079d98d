package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/balloon-climber/internal/games/balloons"
	"github.com/vovakirdan/balloon-climber/internal/registry"
	"github.com/vovakirdan/balloon-climber/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the best runs of a variant (classic by default).

Examples:
  balloons scores
  balloons scores balloons_enemies --limit 20
  balloons scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all stored runs of the variant")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := balloons.ClassicID
	if len(args) > 0 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'balloons list' to see variants)", err)
	}

	logger := newLogger(os.Stderr)
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer closeStore(logger, store)

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Info("scores cleared", "game", gameID)
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())

	if len(scores) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'balloons play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-12s  %-6s  %-8s  %-8s  %s\n", "Rank", "Player", "Score", "Altitude", "Time", "Date")
	fmt.Fprintf(out, "  %-4s  %-12s  %-6s  %-8s  %-8s  %s\n", "----", "------", "-----", "--------", "----", "----")
	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(out, "  %-4d  %-12s  %-6d  %-8.0f  %-8s  %s\n",
			i+1, player, e.Score, e.Altitude, e.Duration.Round(100*time.Millisecond), e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d  Runs: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}
