package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration: a 4x4 board, five ticks per
// cell and the classic {2, 4} spawn set.
func Default() GameConfig {
	return GameConfig{
		Rows: BoardSize,
		Cols: BoardSize,
		Animation: AnimationConfig{
			CellSize:     100,
			MoveVelocity: 20,
		},
		Spawn: SpawnConfig{
			InitialTiles: 2,
			InitialValue: 2,
			Values:       []int{2, 4},
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
