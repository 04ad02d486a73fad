// Package t2048 implements the animated 2048 tile-merge engine.
package t2048

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// maxQueuedMoves bounds the directions buffered while a move animates.
const maxQueuedMoves = 8

// Status is the game loop state.
type Status int

const (
	StatusPlaying Status = iota
	StatusLost
)

func (s Status) String() string {
	if s == StatusLost {
		return "lost"
	}
	return "playing"
}

// Game runs one 2048 session.
type Game struct {
	cfg      config.GameConfig
	runtime  core.RuntimeConfig
	resolver *Resolver
	spawner  *SpawnPolicy
	rng      *rand.Rand
	renderer Renderer
	logger   *log.Logger

	board  *Board
	status Status
	tick   uint64
	moves  int

	// Frame-clocked moves
	move  *Move
	queue []Direction

	// Screen state
	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New creates a game with cfg, already reset with core.DefaultConfig.
func New(cfg config.GameConfig) *Game {
	g := &Game{
		cfg:      cfg,
		resolver: NewResolver(cfg),
		logger:   log.New(io.Discard),
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// SetRenderer sets the renderer notified of every animation frame.
func (g *Game) SetRenderer(r Renderer) {
	g.renderer = r
}

// SetLogger sets the logger. A nil logger discards output.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// Reset starts a new game: a fresh board seeded with the initial tiles.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.spawner = NewSpawnPolicy(g.cfg, g.rng)
	g.board = NewBoard(g.cfg)
	g.status = StatusPlaying
	g.tick = 0
	g.moves = 0
	g.move = nil
	g.queue = nil
	g.paused = false
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.checkScreenSize()

	for range g.cfg.Spawn.InitialTiles {
		if _, err := g.spawner.Seed(g.board); err != nil {
			break
		}
	}
	g.updateStatus()
}

// Restart resets the game with the next seed, keeping the screen size.
func (g *Game) Restart() {
	rc := g.runtime
	rc.Seed++
	g.Reset(rc)
}

// Board returns the live board. Callers must not mutate it.
func (g *Game) Board() *Board {
	return g.board
}

// Status returns the game loop state.
func (g *Game) Status() Status {
	return g.status
}

// IsTerminal reports whether the game is lost.
func (g *Game) IsTerminal() bool {
	return g.status == StatusLost
}

// HandleDirection plays one move to completion. Animated moves still in
// flight are settled first. Input while lost is ignored.
func (g *Game) HandleDirection(dir Direction) (MoveResult, error) {
	if !dir.Valid() {
		g.logger.Warn("ignoring input", "direction", int(dir))
		return MoveResult{Direction: dir}, fmt.Errorf("t2048: direction %d: %w", int(dir), ErrInvalidDirection)
	}
	if err := g.drain(); err != nil {
		return MoveResult{Direction: dir}, err
	}
	if g.status == StatusLost {
		return MoveResult{Direction: dir}, nil
	}

	res, err := g.resolver.Resolve(g.board, dir, g.renderFrame)
	if err != nil {
		return res, err
	}
	return res, g.finishMove(res)
}

// drain settles the in-flight move and every queued direction.
func (g *Game) drain() error {
	for g.move != nil || len(g.queue) > 0 {
		if g.status == StatusLost {
			g.move = nil
			g.queue = nil
			return nil
		}
		if g.move == nil {
			g.startNext()
			continue
		}
		changed, err := g.move.Step()
		if err != nil {
			g.move = nil
			return err
		}
		if changed {
			g.renderFrame(g.board)
			continue
		}
		res := g.move.Result()
		g.move = nil
		if err := g.finishMove(res); err != nil {
			return err
		}
	}
	return nil
}

// finishMove spawns a tile after a move that changed the board, renders the
// settled frame and re-evaluates the terminal state.
func (g *Game) finishMove(res MoveResult) error {
	g.logger.Debug("move settled", "direction", res.Direction, "ticks", res.Ticks, "merges", res.Merges)

	if res.Changed {
		g.moves++
		tile, err := g.spawner.Spawn(g.board)
		switch {
		case errors.Is(err, ErrBoardFull):
			g.lose()
			return nil
		case err != nil:
			return err
		}
		g.logger.Debug("spawned tile", "value", tile.Value, "cell", tile.Cell())
	}

	g.renderFrame(g.board)
	g.updateStatus()
	return nil
}

// updateStatus marks the game lost when the board is full and no direction
// can change it.
func (g *Game) updateStatus() {
	if g.status == StatusPlaying && g.board.Full() && !HasLegalMove(g.board) {
		g.lose()
	}
}

func (g *Game) lose() {
	g.status = StatusLost
	g.move = nil
	g.queue = nil
	g.logger.Info("game lost", "moves", g.moves, "max_tile", g.board.MaxTile())
}

func (g *Game) renderFrame(b *Board) {
	if g.renderer != nil {
		g.renderer.RenderFrame(b)
	}
}

// Resize adapts the layout to a new screen size without touching the board.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW, minH := minScreenSize(g.cfg.Rows, g.cfg.Cols)
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one frame. Direction actions are queued while a
// move animates; the in-flight move advances by exactly one tick per call.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Handle window size check
	if g.tooSmall {
		return g.stepResult()
	}

	// Handle pause
	if in.Has(core.ActionPause) && g.status == StatusPlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return g.stepResult()
	}

	// Input while lost is ignored; the platform offers restart.
	if g.status == StatusLost {
		return g.stepResult()
	}

	for _, a := range in.Sequence() {
		if dir, ok := actionDirection(a); ok {
			g.enqueue(dir)
		}
	}

	if g.move == nil {
		g.startNext()
	}
	if g.move != nil {
		changed, err := g.move.Step()
		switch {
		case err != nil:
			g.logger.Error("move aborted", "direction", g.move.Direction(), "err", err)
			g.move = nil
		case changed:
			g.renderFrame(g.board)
		default:
			res := g.move.Result()
			g.move = nil
			if err := g.finishMove(res); err != nil {
				g.logger.Error("finish move", "err", err)
			}
		}
	}

	return g.stepResult()
}

func (g *Game) stepResult() core.StepResult {
	return core.StepResult{State: g.State(), Animating: g.move != nil}
}

func (g *Game) enqueue(dir Direction) {
	if len(g.queue) >= maxQueuedMoves {
		g.logger.Debug("dropping queued input", "direction", dir)
		return
	}
	g.queue = append(g.queue, dir)
}

// startNext begins the next queued move, if any.
func (g *Game) startNext() {
	if len(g.queue) == 0 {
		return
	}
	dir := g.queue[0]
	g.queue = g.queue[1:]

	m, err := g.resolver.Begin(g.board, dir)
	if err != nil {
		g.logger.Warn("ignoring input", "direction", dir, "err", err)
		return
	}
	g.move = m
}

func actionDirection(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return 0, false
}

// Play drives the game from src until the source is exhausted, a quit
// command arrives or ctx is cancelled. Invalid commands are logged and
// skipped.
func (g *Game) Play(ctx context.Context, src InputSource) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		cmd, err := src.Next()
		switch {
		case errors.Is(err, io.EOF):
			return g.drain()
		case errors.Is(err, ErrInvalidDirection):
			g.logger.Warn("ignoring input", "err", err)
			continue
		case err != nil:
			return err
		}

		switch cmd.Kind {
		case CommandQuit:
			return g.drain()
		case CommandRestart:
			g.Restart()
			g.logger.Info("game restarted", "seed", g.runtime.Seed)
		case CommandMove:
			if _, err := g.HandleDirection(cmd.Dir); err != nil {
				return err
			}
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Moves:    g.moves,
		MaxTile:  g.board.MaxTile(),
		GameOver: g.status == StatusLost,
		Paused:   g.paused || g.tooSmall,
	}
}
