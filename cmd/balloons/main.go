// balloons is a terminal balloon climber: grab a balloon, ride it up and
// jump to the next one before it pops.
//
// Usage:
//
//	balloons list              - List game variants
//	balloons play [variant]    - Play a variant (default: balloons)
//	balloons menu              - Pick a variant interactively
//	balloons serve             - Start SSH server for remote play
//	balloons scores [variant]  - Show high scores
//	balloons simulate          - Run a headless autopilot climb
//
// Global flags:
//
//	--fps <rate>        - Display refresh rate (default: 60)
//	--seed <value>      - RNG seed for reproducible runs
//	--db <path>         - Scores database (default: ~/.arcade/scores.db)
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Log destination while the game owns the terminal
//	--debug             - Start with the debug overlay on
package main

import (
	"os"

	"github.com/spf13/cobra"

	// Register the game variants
	_ "github.com/vovakirdan/balloon-climber/internal/games/balloons"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
	flagDebug    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		newLogger(os.Stderr).Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "balloons",
	Short: "Balloon Climber - climb on balloons in your terminal",
	Long: `Balloon Climber is a terminal platformer. Balloons start rising when
you grab them and pop after a while, so keep jumping to the next one.
Your score is the altitude you reach.

Available commands:
  list      - Show the game variants
  play      - Play a variant directly
  menu      - Interactive variant picker
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Headless autopilot run

Examples:
  balloons play
  balloons play balloons_enemies --difficulty hard
  balloons menu
  balloons serve --ssh :2222
  balloons simulate --ticks 20000 --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Display refresh rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file used while a game owns the terminal (default ~/.arcade/balloons.log)")
	pf.BoolVar(&flagDebug, "debug", false, "Start with the debug overlay on")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}
