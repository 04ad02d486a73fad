package t2048

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// Board holds the tiles of one game. Cells are stored densely and indexed by
// row*cols+col, so a cell can never hold two tiles.
type Board struct {
	rows     int
	cols     int
	cellSize float64
	cells    []*Tile
}

// NewBoard creates an empty board sized by cfg.
func NewBoard(cfg config.GameConfig) *Board {
	return &Board{
		rows:     cfg.Rows,
		cols:     cfg.Cols,
		cellSize: cfg.Animation.CellSize,
		cells:    make([]*Tile, cfg.Rows*cfg.Cols),
	}
}

// BoardFromValues builds a settled board from a value grid, where 0 marks an
// empty cell. The grid dimensions override cfg.Rows and cfg.Cols.
func BoardFromValues(cfg config.GameConfig, values [][]int) (*Board, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("t2048: empty value grid: %w", ErrOutOfBounds)
	}
	cfg.Rows = len(values)
	cfg.Cols = len(values[0])
	b := NewBoard(cfg)
	for row, line := range values {
		if len(line) != cfg.Cols {
			return nil, fmt.Errorf("t2048: row %d has %d cells, want %d: %w", row, len(line), cfg.Cols, ErrOutOfBounds)
		}
		for col, v := range line {
			if v == 0 {
				continue
			}
			if _, err := b.Place(v, row, col); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// Rows returns the board height in cells.
func (b *Board) Rows() int { return b.rows }

// Cols returns the board width in cells.
func (b *Board) Cols() int { return b.cols }

// CellSize returns the width of one cell in board units.
func (b *Board) CellSize() float64 { return b.cellSize }

func (b *Board) key(row, col int) int { return row*b.cols + col }

// InBounds reports whether the cell lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// At returns the tile at the cell, or nil.
func (b *Board) At(row, col int) *Tile {
	if !b.InBounds(row, col) {
		return nil
	}
	return b.cells[b.key(row, col)]
}

// Place puts a new settled tile on an empty cell.
func (b *Board) Place(value, row, col int) (*Tile, error) {
	if !config.IsTileValue(value) {
		return nil, fmt.Errorf("t2048: place %d: %w", value, ErrInvalidValue)
	}
	if !b.InBounds(row, col) {
		return nil, fmt.Errorf("t2048: place at %v: %w", Cell{row, col}, ErrOutOfBounds)
	}
	k := b.key(row, col)
	if b.cells[k] != nil {
		return nil, fmt.Errorf("t2048: place at %v: %w", Cell{row, col}, ErrCellOccupied)
	}
	t := NewTile(value, row, col, b.cellSize)
	b.cells[k] = t
	return t, nil
}

// Tiles returns the tiles in row-major order.
func (b *Board) Tiles() []*Tile {
	tiles := make([]*Tile, 0, len(b.cells))
	for _, t := range b.cells {
		if t != nil {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// Len returns the number of tiles.
func (b *Board) Len() int {
	n := 0
	for _, t := range b.cells {
		if t != nil {
			n++
		}
	}
	return n
}

// Full reports whether every cell holds a tile.
func (b *Board) Full() bool {
	return b.Len() == len(b.cells)
}

// EmptyCells returns the empty cells in row-major order.
func (b *Board) EmptyCells() []Cell {
	var cells []Cell
	for row := range b.rows {
		for col := range b.cols {
			if b.cells[b.key(row, col)] == nil {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}
	return cells
}

// Values returns the value grid, 0 for empty cells.
func (b *Board) Values() [][]int {
	grid := make([][]int, b.rows)
	for row := range b.rows {
		grid[row] = make([]int, b.cols)
		for col := range b.cols {
			if t := b.cells[b.key(row, col)]; t != nil {
				grid[row][col] = t.Value
			}
		}
	}
	return grid
}

// Sum returns the total of all tile values.
func (b *Board) Sum() int {
	sum := 0
	for _, t := range b.cells {
		if t != nil {
			sum += t.Value
		}
	}
	return sum
}

// MaxTile returns the highest tile value, or 0 on an empty board.
func (b *Board) MaxTile() int {
	maxVal := 0
	for _, t := range b.cells {
		if t != nil && t.Value > maxVal {
			maxVal = t.Value
		}
	}
	return maxVal
}

// Clone returns a deep copy; tiles are not shared.
func (b *Board) Clone() *Board {
	c := &Board{
		rows:     b.rows,
		cols:     b.cols,
		cellSize: b.cellSize,
		cells:    make([]*Tile, len(b.cells)),
	}
	for i, t := range b.cells {
		if t != nil {
			tc := *t
			c.cells[i] = &tc
		}
	}
	return c
}

// Equal reports whether both boards hold the same tiles at the same
// continuous positions.
func (b *Board) Equal(o *Board) bool {
	if b.rows != o.rows || b.cols != o.cols || b.cellSize != o.cellSize {
		return false
	}
	for i := range b.cells {
		x, y := b.cells[i], o.cells[i]
		switch {
		case x == nil && y == nil:
			continue
		case x == nil || y == nil:
			return false
		case *x != *y:
			return false
		}
	}
	return true
}

// Validate checks the board invariants: every tile is stored under its own
// cell, lies on the board and carries a power-of-two value.
func (b *Board) Validate() error {
	for i, t := range b.cells {
		if t == nil {
			continue
		}
		if !b.InBounds(t.Row, t.Col) {
			return fmt.Errorf("t2048: tile at %v: %w", t.Cell(), ErrOutOfBounds)
		}
		if b.key(t.Row, t.Col) != i {
			return fmt.Errorf("t2048: tile at %v stored under key %d", t.Cell(), i)
		}
		if !config.IsTileValue(t.Value) {
			return fmt.Errorf("t2048: tile at %v has value %d: %w", t.Cell(), t.Value, ErrInvalidValue)
		}
	}
	return nil
}

// String renders the value grid, one row per line, "." for empty cells.
func (b *Board) String() string {
	width := 1
	if m := b.MaxTile(); m > 0 {
		width = len(strconv.Itoa(m))
	}

	var sb strings.Builder
	for row := range b.rows {
		for col := range b.cols {
			if col > 0 {
				sb.WriteByte(' ')
			}
			s := "."
			if t := b.cells[b.key(row, col)]; t != nil {
				s = strconv.Itoa(t.Value)
			}
			sb.WriteString(strings.Repeat(" ", width-len(s)))
			sb.WriteString(s)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// rebuild re-keys the board from tiles after a tick. The board is left
// untouched if two tiles claim the same cell.
func (b *Board) rebuild(tiles []*Tile) error {
	cells := make([]*Tile, len(b.cells))
	for _, t := range tiles {
		if !b.InBounds(t.Row, t.Col) {
			return fmt.Errorf("t2048: rebuild at %v: %w", t.Cell(), ErrOutOfBounds)
		}
		k := b.key(t.Row, t.Col)
		if cells[k] != nil {
			return fmt.Errorf("t2048: rebuild at %v: %w", t.Cell(), ErrCellOccupied)
		}
		cells[k] = t
	}
	b.cells = cells
	return nil
}
