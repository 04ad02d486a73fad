package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start an interactive game.

Controls:
  Arrows/WASD/HJKL  - Slide tiles
  P/Esc             - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Save a text screenshot
  ?                 - Show all keys
  Q/Ctrl+C          - Quit

Examples:
  t2048 play
  t2048 play --seed 7
  t2048 play --config ./fast.yaml --log /tmp/t2048.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closer, err := newLogger(flagLogPath)
	if err != nil {
		fail("%v", err)
	}

	game, err := newGame(logger)
	if err != nil {
		closer.Close()
		fail("%v", err)
	}

	// Terminal size; Bubble Tea sends the real size on start as well.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     resolveSeed(flagSeed),
	}

	runErr := tui.Run(game, cfg, logger)
	closer.Close()
	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
