package t2048

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every valid direction.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts direction words, WASD letters and vim hjkl keys.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "w", "k":
		return DirUp, nil
	case "down", "s", "j":
		return DirDown, nil
	case "left", "a", "h":
		return DirLeft, nil
	case "right", "d", "l":
		return DirRight, nil
	}
	return 0, fmt.Errorf("t2048: %q: %w", s, ErrInvalidDirection)
}

// Axis is the coordinate a move travels along.
type Axis int

const (
	AxisX Axis = iota // columns
	AxisY             // rows
)

// MoveParameters describes one direction for the resolver.
type MoveParameters struct {
	Axis           Axis
	Sign           int  // -1 toward index 0, +1 toward the far edge
	NeighborOffset Cell // One step toward the destination edge
	Rounding       RoundingMode
}

var moveParameters = map[Direction]MoveParameters{
	DirUp:    {Axis: AxisY, Sign: -1, NeighborOffset: Cell{Row: -1}, Rounding: RoundCeil},
	DirDown:  {Axis: AxisY, Sign: +1, NeighborOffset: Cell{Row: 1}, Rounding: RoundFloor},
	DirLeft:  {Axis: AxisX, Sign: -1, NeighborOffset: Cell{Col: -1}, Rounding: RoundCeil},
	DirRight: {Axis: AxisX, Sign: +1, NeighborOffset: Cell{Col: 1}, Rounding: RoundFloor},
}

// ParametersFor returns the move parameters of d.
func ParametersFor(d Direction) (MoveParameters, error) {
	p, ok := moveParameters[d]
	if !ok {
		return MoveParameters{}, fmt.Errorf("t2048: %v: %w", d, ErrInvalidDirection)
	}
	return p, nil
}

// AtBoundary reports whether the tile sits on the destination edge.
func (p MoveParameters) AtBoundary(t *Tile, rows, cols int) bool {
	index, size := t.Col, cols
	if p.Axis == AxisY {
		index, size = t.Row, rows
	}
	if p.Sign < 0 {
		return index == 0
	}
	return index == size-1
}

// Lane returns the row for horizontal moves and the column for vertical ones.
func (p MoveParameters) Lane(t *Tile) int {
	if p.Axis == AxisX {
		return t.Row
	}
	return t.Col
}

// Lead returns the signed position along the motion axis. Larger values are
// closer to the destination edge.
func (p MoveParameters) Lead(t *Tile) float64 {
	if p.Axis == AxisX {
		return float64(p.Sign) * t.X
	}
	return float64(p.Sign) * t.Y
}

// Velocity returns the per-tick displacement for speed v.
func (p MoveParameters) Velocity(v float64) (dx, dy float64) {
	if p.Axis == AxisX {
		return float64(p.Sign) * v, 0
	}
	return 0, float64(p.Sign) * v
}
