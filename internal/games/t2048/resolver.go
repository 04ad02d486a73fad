package t2048

import (
	"fmt"
	"math"
	"sort"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// MoveResult summarizes a settled move.
type MoveResult struct {
	Direction Direction
	Ticks     int  // Animation ticks that changed the board
	Merges    int  // Tiles absorbed by a merge
	Changed   bool // Whether any tile moved or merged
}

// Resolver slides and merges tiles one animation tick at a time.
type Resolver struct {
	cellSize float64
	velocity float64
}

// NewResolver creates a resolver using the animation parameters of cfg.
func NewResolver(cfg config.GameConfig) *Resolver {
	return &Resolver{
		cellSize: cfg.Animation.CellSize,
		velocity: cfg.Animation.MoveVelocity,
	}
}

// Move is a move in progress. Each Step advances it by one tick.
type Move struct {
	board    *Board
	dir      Direction
	params   MoveParameters
	cellSize float64
	velocity float64

	locked map[*Tile]bool
	ticks  int
	merges int
	limit  int
	done   bool
}

// Begin starts a move on b. The board is mutated by Step.
func (r *Resolver) Begin(b *Board, dir Direction) (*Move, error) {
	params, err := ParametersFor(dir)
	if err != nil {
		return nil, err
	}

	extent := float64(b.Cols()) * r.cellSize
	if params.Axis == AxisY {
		extent = float64(b.Rows()) * r.cellSize
	}
	// Each tile can travel at most the board extent and be absorbed once.
	n := b.Len()
	limit := n*int(math.Ceil(extent/r.velocity)) + n

	return &Move{
		board:    b,
		dir:      dir,
		params:   params,
		cellSize: r.cellSize,
		velocity: r.velocity,
		locked:   make(map[*Tile]bool),
		limit:    limit,
	}, nil
}

// Resolve runs a move until it settles, calling onFrame after every tick
// that changed the board. A move that changes nothing returns zero ticks.
func (r *Resolver) Resolve(b *Board, dir Direction, onFrame func(*Board)) (MoveResult, error) {
	m, err := r.Begin(b, dir)
	if err != nil {
		return MoveResult{Direction: dir}, err
	}
	for {
		changed, err := m.Step()
		if err != nil {
			return m.Result(), err
		}
		if !changed {
			return m.Result(), nil
		}
		if onFrame != nil {
			onFrame(b)
		}
	}
}

// Step advances the move by one tick and reports whether anything changed.
// Once it returns false the move is settled and further calls are no-ops.
func (m *Move) Step() (bool, error) {
	if m.done {
		return false, nil
	}

	p := m.params
	tiles := m.board.Tiles()
	sort.SliceStable(tiles, func(i, j int) bool {
		return p.Lead(tiles[i]) > p.Lead(tiles[j])
	})

	dx, dy := p.Velocity(m.velocity)
	rows, cols := m.board.Rows(), m.board.Cols()

	// Nearest surviving tile toward the destination edge, per lane.
	ahead := make(map[int]*Tile)
	survivors := make([]*Tile, 0, len(tiles))
	var moved []*Tile
	changed := false

	for _, t := range tiles {
		lane := p.Lane(t)
		next := ahead[lane]

		switch {
		case p.AtBoundary(t, rows, cols):
		case next == nil:
			t.Advance(dx, dy)
			moved = append(moved, t)
			changed = true
		case m.mergeable(t, next):
			if p.Lead(next)-p.Lead(t) > m.velocity {
				t.Advance(dx, dy)
				moved = append(moved, t)
				changed = true
				break
			}
			next.Value *= 2
			m.locked[next] = true
			m.merges++
			changed = true
			continue
		case p.Lead(next)-p.Lead(t)-m.velocity >= m.cellSize:
			t.Advance(dx, dy)
			moved = append(moved, t)
			changed = true
		}

		survivors = append(survivors, t)
		ahead[lane] = t
	}

	if !changed {
		m.done = true
		return false, nil
	}
	if m.ticks >= m.limit {
		m.done = true
		return false, fmt.Errorf("t2048: %v after %d ticks: %w", m.dir, m.ticks, ErrNoConvergence)
	}

	for _, t := range moved {
		t.SnapToCell(p.Rounding, m.cellSize)
	}
	if err := m.board.rebuild(survivors); err != nil {
		m.done = true
		return false, err
	}
	m.ticks++
	return true, nil
}

// mergeable reports whether t may merge into next during this move.
func (m *Move) mergeable(t, next *Tile) bool {
	return t.Value == next.Value && !m.locked[t] && !m.locked[next]
}

// Done reports whether the move has settled.
func (m *Move) Done() bool {
	return m.done
}

// Direction returns the direction of the move.
func (m *Move) Direction() Direction {
	return m.dir
}

// Result returns the move summary so far.
func (m *Move) Result() MoveResult {
	return MoveResult{
		Direction: m.dir,
		Ticks:     m.ticks,
		Merges:    m.merges,
		Changed:   m.ticks > 0,
	}
}
