// pixsnake is a snake game on a wrapping pixel board, played in the terminal.
//
// Usage:
//
//	pixsnake play [level]     - Play a level (default: classic)
//	pixsnake levels           - List built-in and file levels
//	pixsnake render [level]   - Print a level's starting board as ASCII
//	pixsnake frontends        - List available frontends
//
// Global flags:
//
//	--fps <rate>        - Frame rate (default: 60)
//	--seed <value>      - RNG seed for reproducible pickups
//	--config <path>     - Settings file (default: ~/.pixsnake/config.yaml)
//	--log-file <path>   - Write logs to a file (default: discarded)
//	--debug             - Log every engine tick
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/pixsnake/internal/platform/term"
	_ "github.com/vovakirdan/pixsnake/internal/platform/tui"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pixsnake",
	Short: "Snake on a wrapping pixel board",
	Long: `pixsnake is a terminal snake game. The board wraps at every edge,
walls are drawn from points, lines and rectangles, and levels are
plain YAML files.

Available commands:
  play       - Play a level
  levels     - Show built-in and file levels
  render     - Print a level's starting board
  frontends  - Show available display frontends

Examples:
  pixsnake play
  pixsnake play box --difficulty hard
  pixsnake play ./levels/maze.yaml --frontend tcell
  pixsnake levels --level-dir ./levels
  pixsnake render classic --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(frontendsCmd)
}

// newLogger builds the process logger. The frontends own the terminal, so
// logs go to --log-file or nowhere.
func newLogger() (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pixsnake",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
