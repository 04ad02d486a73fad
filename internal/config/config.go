// Package config provides YAML-based configuration loading and validation
// for the 2048 engine.
package config

import (
	"errors"
	"fmt"
	"math"
)

// BoardSize is the fixed board dimension used by the CLI.
const BoardSize = 4

// GameConfig contains every tunable parameter of the engine. It is built once
// and handed by value to the Board, Resolver and SpawnPolicy.
type GameConfig struct {
	// Rows and Cols are fixed by Default and not read from YAML.
	Rows int `yaml:"-"`
	Cols int `yaml:"-"`

	Animation AnimationConfig `yaml:"animation"`
	Spawn     SpawnConfig     `yaml:"spawn"`
}

// AnimationConfig defines the continuous geometry of a slide.
type AnimationConfig struct {
	CellSize     float64 `yaml:"cell_size"`     // Board units per cell
	MoveVelocity float64 `yaml:"move_velocity"` // Board units per tick
}

// SpawnConfig defines how new tiles enter the board.
type SpawnConfig struct {
	InitialTiles int   `yaml:"initial_tiles"` // Tiles seeded by a new game
	InitialValue int   `yaml:"initial_value"` // Value of seeded tiles
	Values       []int `yaml:"values"`        // Uniform choice after a move
}

// TicksPerCell returns how many ticks a tile needs to cross one cell.
func (c GameConfig) TicksPerCell() int {
	return int(c.Animation.CellSize / c.Animation.MoveVelocity)
}

// Validate reports the first invalid parameter.
func (c GameConfig) Validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("config: board must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	}

	a := c.Animation
	if a.CellSize <= 0 {
		return fmt.Errorf("config: cell_size must be positive, got %v", a.CellSize)
	}
	if a.MoveVelocity <= 0 {
		return fmt.Errorf("config: move_velocity must be positive, got %v", a.MoveVelocity)
	}
	if a.MoveVelocity > a.CellSize {
		return fmt.Errorf("config: move_velocity %v exceeds cell_size %v", a.MoveVelocity, a.CellSize)
	}
	// Tiles must land exactly on cell boundaries.
	if math.Mod(a.CellSize, a.MoveVelocity) != 0 {
		return fmt.Errorf("config: move_velocity %v must divide cell_size %v", a.MoveVelocity, a.CellSize)
	}

	s := c.Spawn
	if s.InitialTiles < 0 || s.InitialTiles > c.Rows*c.Cols {
		return fmt.Errorf("config: initial_tiles must be within [0, %d], got %d", c.Rows*c.Cols, s.InitialTiles)
	}
	if !IsTileValue(s.InitialValue) {
		return fmt.Errorf("config: initial_value %d is not a power of two >= 2", s.InitialValue)
	}
	if len(s.Values) == 0 {
		return errors.New("config: spawn values must not be empty")
	}
	for _, v := range s.Values {
		if !IsTileValue(v) {
			return fmt.Errorf("config: spawn value %d is not a power of two >= 2", v)
		}
	}

	return nil
}

// IsTileValue reports whether v is a power of two no smaller than 2.
func IsTileValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}
