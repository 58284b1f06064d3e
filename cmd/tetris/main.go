// tetris is a falling-blocks game for the terminal or a desktop window.
//
// Usage:
//
//	tetris <backend> <rows> <columns>  - Play on a backend (tui or gfx)
//	tetris backends                    - List available backends
//	tetris config                      - Print the default settings file
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible games
//	--config <path>      - Load settings from a YAML file
//	--log-file <path>    - Write the log to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/tetris/internal/platform/gfx"
	_ "github.com/vovakirdan/tetris/internal/platform/tui"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris <backend> <rows> <columns>",
	Short: "Tetris - falling blocks in your terminal or a window",
	Long: `Tetris drops pieces onto a playfield of the given size. Full rows are
cleared and scored; the game speeds up as the score grows.

Backends:
  tui  - play inside the terminal
  gfx  - play in a desktop window

Controls:
  Left/Right  - Move
  Space       - Rotate
  Up/Down     - Speed up / slow down
  Enter       - Pause / resume
  R           - Restart (paused or after game over)
  Esc/Q       - Quit

Examples:
  tetris tui 20 10
  tetris gfx 25 12 --seed 42
  tetris tui 20 10 --config ./my-tetris.yaml --log-file tetris.log`,
	Args:          cobra.MatchAll(cobra.ExactArgs(3), validateArgs),
	RunE:          runGame,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a settings YAML file")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write the log to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(configCmd)
}
