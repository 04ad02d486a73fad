package t2048

import (
	"fmt"
	"math"
)

// RoundingMode selects how a continuous position maps back to a cell.
type RoundingMode int

const (
	// RoundCeil is used for left/up moves: a tile keeps the cell it is
	// leaving until it fully reaches the next one.
	RoundCeil RoundingMode = iota
	// RoundFloor is used for right/down moves.
	RoundFloor
)

func (m RoundingMode) apply(v float64) int {
	if m == RoundFloor {
		return int(math.Floor(v))
	}
	return int(math.Ceil(v))
}

// Cell is a discrete board coordinate.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Tile is a numbered tile. Row/Col is the cell the tile occupies or is
// converging toward; X/Y is its continuous position in board units.
type Tile struct {
	Value int
	Row   int
	Col   int
	X     float64
	Y     float64
}

// NewTile creates a tile resting on the given cell.
func NewTile(value, row, col int, cellSize float64) *Tile {
	return &Tile{
		Value: value,
		Row:   row,
		Col:   col,
		X:     float64(col) * cellSize,
		Y:     float64(row) * cellSize,
	}
}

// Advance moves the tile by one tick's velocity vector.
func (t *Tile) Advance(dx, dy float64) {
	t.X += dx
	t.Y += dy
}

// SnapToCell recomputes Row/Col from the continuous position.
func (t *Tile) SnapToCell(mode RoundingMode, cellSize float64) {
	t.Row = mode.apply(t.Y / cellSize)
	t.Col = mode.apply(t.X / cellSize)
}

// Aligned reports whether the tile rests exactly on its cell.
func (t *Tile) Aligned(cellSize float64) bool {
	return t.X == float64(t.Col)*cellSize && t.Y == float64(t.Row)*cellSize
}

// Cell returns the tile's discrete coordinate.
func (t *Tile) Cell() Cell {
	return Cell{Row: t.Row, Col: t.Col}
}
