package t2048

// CanMove reports whether a move in dir would change the board: some tile
// has an empty cell or an equal tile right next to it toward the edge.
func CanMove(b *Board, dir Direction) bool {
	p, err := ParametersFor(dir)
	if err != nil {
		return false
	}
	for _, t := range b.Tiles() {
		row, col := t.Row+p.NeighborOffset.Row, t.Col+p.NeighborOffset.Col
		if !b.InBounds(row, col) {
			continue
		}
		next := b.At(row, col)
		if next == nil || next.Value == t.Value {
			return true
		}
	}
	return false
}

// HasLegalMove reports whether any direction can change the board.
func HasLegalMove(b *Board) bool {
	for _, dir := range Directions {
		if CanMove(b, dir) {
			return true
		}
	}
	return false
}
