package t2048

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// IntNSource is the randomness a SpawnPolicy needs. *rand.Rand satisfies it.
type IntNSource interface {
	Intn(n int) int
}

// SpawnPolicy places new tiles on empty cells.
type SpawnPolicy struct {
	rng          IntNSource
	initialValue int
	values       []int
}

// NewSpawnPolicy creates a spawn policy drawing from rng.
func NewSpawnPolicy(cfg config.GameConfig, rng IntNSource) *SpawnPolicy {
	return &SpawnPolicy{
		rng:          rng,
		initialValue: cfg.Spawn.InitialValue,
		values:       append([]int(nil), cfg.Spawn.Values...),
	}
}

// Seed places a tile with the initial value, used when a game starts.
func (p *SpawnPolicy) Seed(b *Board) (*Tile, error) {
	cell, err := p.pickCell(b)
	if err != nil {
		return nil, err
	}
	return b.Place(p.initialValue, cell.Row, cell.Col)
}

// Spawn places a tile whose value is drawn uniformly from the spawn values.
// The cell is drawn first, then the value.
func (p *SpawnPolicy) Spawn(b *Board) (*Tile, error) {
	cell, err := p.pickCell(b)
	if err != nil {
		return nil, err
	}
	value := p.values[p.rng.Intn(len(p.values))]
	return b.Place(value, cell.Row, cell.Col)
}

// pickCell draws a random row and column until it hits an empty cell. After
// too many misses it picks directly among the empty cells.
func (p *SpawnPolicy) pickCell(b *Board) (Cell, error) {
	if b.Full() {
		return Cell{}, fmt.Errorf("t2048: spawn: %w", ErrBoardFull)
	}

	attempts := 8 * b.Rows() * b.Cols()
	for range attempts {
		row := p.rng.Intn(b.Rows())
		col := p.rng.Intn(b.Cols())
		if b.At(row, col) == nil {
			return Cell{Row: row, Col: col}, nil
		}
	}

	empty := b.EmptyCells()
	return empty[p.rng.Intn(len(empty))], nil
}
