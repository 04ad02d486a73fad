package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var flagFrames bool

var replayCmd = &cobra.Command{
	Use:   "replay [FILE|-]",
	Short: "Play a command script without a terminal UI",
	Long: `Read commands from FILE (or stdin when FILE is "-" or omitted) and play
them to completion, then print the final board and status.

Commands are separated by whitespace or newlines; "#" starts a comment.
  up/w/k  down/s/j  left/a/h  right/d/l   - Slide tiles
  restart/r/new                           - Start over with the next seed
  quit/q/exit                             - Stop reading

Unknown commands are logged and skipped.

Examples:
  t2048 replay moves.txt --seed 42
  echo "left up left" | t2048 replay --frames`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagFrames, "frames", false, "Print every animation frame")
}

func runReplay(cmd *cobra.Command, args []string) {
	in := io.Reader(os.Stdin)
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			fail("%v", err)
		}
		defer f.Close()
		in = f
	}

	logger, closer, err := newLogger(flagLogPath)
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()

	game, err := newGame(logger)
	if err != nil {
		fail("%v", err)
	}

	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = resolveSeed(flagSeed)
	game.Reset(rc)

	if err := replay(cmd.Context(), game, in, os.Stdout, flagFrames); err != nil {
		fail("%v", err)
	}
}

// replay plays the script in r and writes the final board and status to w.
// With frames set, every animation frame is written as well.
func replay(ctx context.Context, game *t2048.Game, r io.Reader, w io.Writer, frames bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if frames {
		game.SetRenderer(&t2048.TextRenderer{W: w})
	}

	if err := game.Play(ctx, t2048.NewScriptSource(r)); err != nil {
		return err
	}

	state := game.State()
	fmt.Fprint(w, game.Board().String())
	fmt.Fprintf(w, "status: %s  moves: %d  max: %d\n", game.Status(), state.Moves, state.MaxTile)
	return nil
}
