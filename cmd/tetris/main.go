// tetris is a terminal Tetris: SRS rotation with wall kicks, ghost
// piece, combo scoring and a shared high-score table.
//
// Usage:
//
//	tetris                   - Play in the current terminal
//	tetris serve             - Start SSH server for remote play
//	tetris scores            - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tetris/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `Play Tetris directly in your terminal.

Controls:
  A/D or arrows - Move left/right
  S/Down        - Soft drop
  W/Up/X        - Rotate
  Space         - Hard drop (also starts and restarts)
  P/Esc         - Pause
  R             - Restart
  Q/Ctrl+C      - Quit

Examples:
  tetris
  tetris --level 5
  tetris --difficulty hard
  tetris serve --ssh :2222
  tetris scores`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
