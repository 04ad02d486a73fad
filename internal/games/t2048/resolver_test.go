package t2048

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// slideLine is the reference settle result for one lane moving toward index 0.
func slideLine(line []int) (result []int, merges int) {
	result = make([]int, len(line))
	write := 0
	mergedAt := -1
	for _, v := range line {
		if v == 0 {
			continue
		}
		if write > 0 && result[write-1] == v && mergedAt != write-1 {
			result[write-1] *= 2
			mergedAt = write - 1
			merges++
			continue
		}
		result[write] = v
		write++
	}
	return result, merges
}

// referenceSettle applies slideLine to every lane of a value grid.
func referenceSettle(values [][]int, dir Direction) ([][]int, int) {
	rows, cols := len(values), len(values[0])
	out := make([][]int, rows)
	for r := range out {
		out[r] = make([]int, cols)
	}

	lanes, length := rows, cols
	if dir == DirUp || dir == DirDown {
		lanes, length = cols, rows
	}
	cell := func(lane, i int) (int, int) {
		switch dir {
		case DirLeft:
			return lane, i
		case DirRight:
			return lane, length - 1 - i
		case DirUp:
			return i, lane
		default:
			return length - 1 - i, lane
		}
	}

	total := 0
	for lane := range lanes {
		line := make([]int, length)
		for i := range length {
			r, c := cell(lane, i)
			line[i] = values[r][c]
		}
		settled, merges := slideLine(line)
		total += merges
		for i, v := range settled {
			r, c := cell(lane, i)
			out[r][c] = v
		}
	}
	return out, total
}

// laneBoard lays line out along the direction of travel, index 0 at the
// destination edge, in a 4x4 grid.
func laneBoard(dir Direction, line []int) [][]int {
	grid := make([][]int, 4)
	for r := range grid {
		grid[r] = make([]int, 4)
	}
	for i, v := range line {
		switch dir {
		case DirLeft:
			grid[1][i] = v
		case DirRight:
			grid[1][3-i] = v
		case DirUp:
			grid[i][2] = v
		case DirDown:
			grid[3-i][2] = v
		}
	}
	return grid
}

func TestResolveLanes(t *testing.T) {
	tests := []struct {
		name   string
		input  []int
		want   []int
		merges int
	}{
		{"simple merge", []int{2, 2, 0, 0}, []int{4, 0, 0, 0}, 1},
		{"merge with trailing tile", []int{2, 2, 2, 0}, []int{4, 2, 0, 0}, 1},
		{"double merge", []int{2, 2, 2, 2}, []int{4, 4, 0, 0}, 2},
		{"independent merges", []int{2, 2, 4, 4}, []int{4, 8, 0, 0}, 2},
		{"no cascade into result", []int{4, 4, 8, 0}, []int{8, 8, 0, 0}, 1},
		{"no cascade from behind", []int{4, 2, 2, 0}, []int{4, 4, 0, 0}, 1},
		{"no merge possible", []int{2, 4, 8, 16}, []int{2, 4, 8, 16}, 0},
		{"slide with gap", []int{0, 0, 2, 2}, []int{4, 0, 0, 0}, 1},
		{"slide with multiple gaps", []int{2, 0, 0, 2}, []int{4, 0, 0, 0}, 1},
		{"gap before merge pair", []int{2, 0, 2, 2}, []int{4, 2, 0, 0}, 1},
		{"single tile", []int{0, 4, 0, 0}, []int{4, 0, 0, 0}, 0},
		{"blocked slide", []int{2, 0, 4, 0}, []int{2, 4, 0, 0}, 0},
	}

	r := NewResolver(config.Default())
	for _, dir := range Directions {
		for _, tt := range tests {
			t.Run(dir.String()+"/"+tt.name, func(t *testing.T) {
				b := mustBoard(t, laneBoard(dir, tt.input))

				res, err := r.Resolve(b, dir, nil)
				if err != nil {
					t.Fatalf("Resolve() failed: %v", err)
				}
				if want := laneBoard(dir, tt.want); !reflect.DeepEqual(b.Values(), want) {
					t.Errorf("Resolve(%v) =\n%vwant\n%v", tt.input, b, mustBoard(t, want))
				}
				if res.Merges != tt.merges {
					t.Errorf("Merges = %d, want %d", res.Merges, tt.merges)
				}
				for _, tile := range b.Tiles() {
					if !tile.Aligned(b.CellSize()) {
						t.Errorf("tile %d at %v not aligned: (%v,%v)", tile.Value, tile.Cell(), tile.X, tile.Y)
					}
				}
			})
		}
	}
}

func TestResolveTwoTwoFourFour(t *testing.T) {
	b := mustBoard(t, [][]int{
		{2, 2, 4, 4},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res, err := NewResolver(config.Default()).Resolve(b, DirLeft, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := b.Values()[0]; !reflect.DeepEqual(got, []int{4, 8, 0, 0}) {
		t.Errorf("row = %v, want [4 8 0 0]", got)
	}
	if res.Merges != 2 || b.Len() != 2 || b.Sum() != 12 {
		t.Errorf("merges/len/sum = %d/%d/%d, want 2/2/12", res.Merges, b.Len(), b.Sum())
	}
}

func TestResolveTickCount(t *testing.T) {
	// Default config: 5 ticks per cell, plus one tick for the merge itself.
	b := mustBoard(t, [][]int{{2, 2, 0, 0}})

	frames := 0
	res, err := NewResolver(config.Default()).Resolve(b, DirLeft, func(*Board) { frames++ })
	if err != nil {
		t.Fatal(err)
	}
	if res.Ticks != 5 || frames != 5 {
		t.Errorf("Ticks = %d, frames = %d, want 5 and 5", res.Ticks, frames)
	}
	if !res.Changed || res.Direction != DirLeft {
		t.Errorf("result = %+v", res)
	}
}

func TestResolveMidSlideFrames(t *testing.T) {
	b := mustBoard(t, [][]int{{0, 0, 0, 2}})

	var xs []float64
	var cols []int
	_, err := NewResolver(config.Default()).Resolve(b, DirLeft, func(fb *Board) {
		tile := fb.Tiles()[0]
		xs = append(xs, tile.X)
		cols = append(cols, tile.Col)
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(xs) != 15 {
		t.Fatalf("frames = %d, want 15", len(xs))
	}
	if xs[0] != 280 || cols[0] != 3 {
		t.Errorf("first frame = x %v col %d, want x 280 col 3", xs[0], cols[0])
	}
	if xs[4] != 200 || cols[4] != 2 {
		t.Errorf("fifth frame = x %v col %d, want x 200 col 2", xs[4], cols[4])
	}
	if xs[14] != 0 || cols[14] != 0 {
		t.Errorf("last frame = x %v col %d, want x 0 col 0", xs[14], cols[14])
	}
}

func TestResolveNoOp(t *testing.T) {
	boards := [][][]int{
		{
			{2, 4, 0, 0},
			{8, 0, 0, 0},
			{0, 0, 0, 0},
			{16, 2, 4, 8},
		},
		{
			{2, 4, 2, 4},
			{4, 2, 4, 2},
			{2, 4, 2, 4},
			{4, 2, 4, 2},
		},
		{
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		},
	}

	r := NewResolver(config.Default())
	for i, values := range boards {
		b := mustBoard(t, values)
		before := b.Clone()

		frames := 0
		res, err := r.Resolve(b, DirLeft, func(*Board) { frames++ })
		if err != nil {
			t.Fatalf("board %d: Resolve() failed: %v", i, err)
		}
		if res.Ticks != 0 || res.Changed || frames != 0 {
			t.Errorf("board %d: result = %+v with %d frames, want zero ticks", i, res, frames)
		}
		if !b.Equal(before) {
			t.Errorf("board %d: no-op move changed the board:\n%v", i, b)
		}
	}
}

func TestResolveInvalidDirection(t *testing.T) {
	b := mustBoard(t, [][]int{{2, 2}})
	if _, err := NewResolver(config.Default()).Resolve(b, Direction(9), nil); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("Resolve() = %v, want ErrInvalidDirection", err)
	}
}

func TestMoveStep(t *testing.T) {
	b := mustBoard(t, [][]int{{0, 2}})
	m, err := NewResolver(config.Default()).Begin(b, DirLeft)
	if err != nil {
		t.Fatal(err)
	}

	steps := 0
	for {
		changed, err := m.Step()
		if err != nil {
			t.Fatal(err)
		}
		if !changed {
			break
		}
		steps++
	}

	if !m.Done() || steps != 5 {
		t.Errorf("Done() = %v after %d steps, want true after 5", m.Done(), steps)
	}
	if changed, _ := m.Step(); changed {
		t.Error("Step() after settle should be a no-op")
	}
	if res := m.Result(); res.Ticks != 5 || !res.Changed {
		t.Errorf("Result() = %+v", res)
	}
}

func TestMoveStepReportsNoConvergence(t *testing.T) {
	b := mustBoard(t, [][]int{{0, 0, 0, 2}})
	m, err := NewResolver(config.Default()).Begin(b, DirLeft)
	if err != nil {
		t.Fatal(err)
	}
	m.limit = 3

	var stepErr error
	for range 10 {
		if _, stepErr = m.Step(); stepErr != nil {
			break
		}
	}
	if !errors.Is(stepErr, ErrNoConvergence) {
		t.Errorf("Step() = %v, want ErrNoConvergence", stepErr)
	}
}

// randomValues fills a grid with small powers of two at the given density.
func randomValues(rng *rand.Rand, rows, cols int, density float64) [][]int {
	grid := make([][]int, rows)
	for r := range grid {
		grid[r] = make([]int, cols)
		for c := range grid[r] {
			if rng.Float64() < density {
				grid[r][c] = 2 << rng.Intn(3)
			}
		}
	}
	return grid
}

func TestResolveProperties(t *testing.T) {
	configs := []config.GameConfig{config.Default()}
	coarse := config.Default()
	coarse.Animation.MoveVelocity = 50
	configs = append(configs, coarse)
	fine := config.Default()
	fine.Animation.CellSize = 1
	fine.Animation.MoveVelocity = 0.25
	configs = append(configs, fine)

	shapes := [][2]int{{4, 4}, {3, 5}, {1, 6}, {5, 2}}
	rng := rand.New(rand.NewSource(7))

	for ci, cfg := range configs {
		r := NewResolver(cfg)
		for i := range 150 {
			shape := shapes[i%len(shapes)]
			values := randomValues(rng, shape[0], shape[1], 0.2+rng.Float64()*0.8)

			for _, dir := range Directions {
				b, err := BoardFromValues(cfg, values)
				if err != nil {
					t.Fatal(err)
				}
				before := b.Clone()
				lenBefore, sumBefore := b.Len(), b.Sum()
				canMove := CanMove(b, dir)

				prevLen := lenBefore
				res, err := r.Resolve(b, dir, func(fb *Board) {
					if err := fb.Validate(); err != nil {
						t.Errorf("config %d board %d %v: invalid frame: %v", ci, i, dir, err)
					}
					if fb.Sum() != sumBefore {
						t.Errorf("config %d board %d %v: frame sum %d, want %d", ci, i, dir, fb.Sum(), sumBefore)
					}
					if fb.Len() > prevLen {
						t.Errorf("config %d board %d %v: tile count grew", ci, i, dir)
					}
					prevLen = fb.Len()
				})
				if err != nil {
					t.Fatalf("config %d board %d %v: Resolve() failed: %v\n%v", ci, i, dir, err, before)
				}

				want, wantMerges := referenceSettle(values, dir)
				if !reflect.DeepEqual(b.Values(), want) {
					t.Errorf("config %d %v:\n%vsettled to\n%v", ci, dir, before, b)
				}
				if res.Merges != wantMerges {
					t.Errorf("config %d %v: merges = %d, want %d", ci, dir, res.Merges, wantMerges)
				}
				if b.Len() != lenBefore-res.Merges {
					t.Errorf("config %d %v: len %d, want %d", ci, dir, b.Len(), lenBefore-res.Merges)
				}
				if b.Sum() != sumBefore {
					t.Errorf("config %d %v: sum %d, want %d", ci, dir, b.Sum(), sumBefore)
				}
				if res.Changed != canMove {
					t.Errorf("config %d %v: Changed = %v, CanMove = %v\n%v", ci, dir, res.Changed, canMove, before)
				}
				if !res.Changed && !b.Equal(before) {
					t.Errorf("config %d %v: no-op move changed the board", ci, dir)
				}

				extent := float64(b.Cols()) * cfg.Animation.CellSize
				if dir == DirUp || dir == DirDown {
					extent = float64(b.Rows()) * cfg.Animation.CellSize
				}
				bound := lenBefore*int(math.Ceil(extent/cfg.Animation.MoveVelocity)) + lenBefore
				if res.Ticks > bound {
					t.Errorf("config %d %v: %d ticks exceeds bound %d", ci, dir, res.Ticks, bound)
				}
				for _, tile := range b.Tiles() {
					if !tile.Aligned(b.CellSize()) {
						t.Errorf("config %d %v: tile at %v not aligned", ci, dir, tile.Cell())
					}
				}
			}
		}
	}
}

func TestAtMostOneMergePerTile(t *testing.T) {
	// Every lane can only halve its tile count in one move.
	b := mustBoard(t, [][]int{
		{2, 2, 2, 2},
		{4, 4, 4, 4},
		{8, 8, 16, 0},
		{2, 2, 4, 8},
	})

	if _, err := NewResolver(config.Default()).Resolve(b, DirLeft, nil); err != nil {
		t.Fatal(err)
	}
	want := [][]int{
		{4, 4, 0, 0},
		{8, 8, 0, 0},
		{16, 16, 0, 0},
		{4, 4, 8, 0},
	}
	if !reflect.DeepEqual(b.Values(), want) {
		t.Errorf("settled to\n%v", b)
	}
}

func TestCanMoveAndHasLegalMove(t *testing.T) {
	stuck := mustBoard(t, [][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})
	if HasLegalMove(stuck) {
		t.Error("HasLegalMove() = true on a stuck board")
	}

	fullWithMerge := mustBoard(t, [][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 8, 8},
	})
	if !HasLegalMove(fullWithMerge) {
		t.Error("HasLegalMove() = false with an equal pair")
	}
	if !CanMove(fullWithMerge, DirLeft) || CanMove(fullWithMerge, DirUp) {
		t.Error("only horizontal moves should be legal")
	}

	packed := mustBoard(t, [][]int{{2, 4, 0, 0}})
	if CanMove(packed, DirLeft) || !CanMove(packed, DirRight) {
		t.Error("packed-left row should only move right")
	}
	if CanMove(packed, Direction(5)) {
		t.Error("invalid direction should never move")
	}
}
