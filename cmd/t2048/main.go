// t2048 is an animated 2048 tile-merge game for the terminal.
//
// Usage:
//
//	t2048                    - Play in the terminal
//	t2048 play               - Same as above
//	t2048 serve              - Start SSH server for remote play
//	t2048 replay [FILE|-]    - Play a command script headlessly
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--config <path>   - Load game settings from a YAML file
//	--log <path>      - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile game with animated moves.

Tiles glide across the board a few units per frame and merge when two
equal values meet. The game ends when the board is full and no move
can change it.

Available commands:
  play     - Play in the terminal (default)
  serve    - Start SSH server for remote play
  replay   - Run a command script without a terminal UI

Examples:
  t2048
  t2048 --seed 42
  t2048 serve --ssh :2222
  echo "left up left" | t2048 replay --frames`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replayCmd)
}

// newLogger returns a debug logger writing to path, or a discarding logger
// when path is empty. The returned closer must be called on exit.
func newLogger(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}

// resolveSeed returns seed, or a time-based seed when it is zero.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// newGame loads the game config and builds a game logging to logger.
func newGame(logger *log.Logger) (*t2048.Game, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	g := t2048.New(cfg)
	g.SetLogger(logger)
	return g, nil
}

// fail prints err the way every subcommand reports errors and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
