// hopline is a terminal side-scrolling jump game.
//
// Usage:
//
//	hopline play [mode]      - Play (default mode: runner)
//	hopline list             - List available modes
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 20)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--debug         - Enable debug logging
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/vovakirdan/hopline/internal/games/runner"
)

var (
	// Global flags
	flagFPS   int
	flagSeed  int64
	flagDebug bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hopline",
	Short: "Hopline - dodge and jump in your terminal",
	Long: `Hopline is a terminal side-scroller: move along the lane, jump
(or double jump) over incoming obstacles and survive the speed-ups.
Clear all three levels to win.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly

Examples:
  hopline list
  hopline play
  hopline play runner_endless
  hopline play --difficulty hard --no-sound`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagDebug {
			setupDebugLog()
		}
	},
}

// setupDebugLog turns on debug logging to a timestamped file. The game owns
// the terminal while playing, so debug output cannot go to stderr.
func setupDebugLog() {
	log.SetLevel(log.DebugLevel)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".hopline")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}

	path := filepath.Join(dir, fmt.Sprintf("debug_%s.log", time.Now().Format("20060102_150405")))
	f, err := os.Create(path)
	if err != nil {
		return
	}
	log.SetOutput(f)
	log.Debug("debug logging enabled", "file", path)
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 20, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
}
