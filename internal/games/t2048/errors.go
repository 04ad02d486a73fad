package t2048

import "errors"

// Sentinel errors. Callers match them with errors.Is; the engine wraps them
// with the failing operation.
var (
	ErrBoardFull        = errors.New("board is full")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrCellOccupied     = errors.New("cell already occupied")
	ErrOutOfBounds      = errors.New("cell out of bounds")
	ErrInvalidValue     = errors.New("tile value must be a power of two >= 2")
	ErrNoConvergence    = errors.New("move did not settle")
)
