package t2048

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Seed    int64
	Moves   int
	Board   [][]int
	MaxTile int
	Status  string
	Queued  int  // Directions waiting behind the in-flight move
	Moving  bool // A move is animating
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tick,
		Seed:    g.runtime.Seed,
		Moves:   g.moves,
		Board:   g.board.Values(),
		MaxTile: g.board.MaxTile(),
		Status:  g.status.String(),
		Queued:  len(g.queue),
		Moving:  g.move != nil,
	}
}
