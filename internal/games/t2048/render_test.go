package t2048

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// findRune returns the first column on row y holding r, or -1.
func findRune(s *core.Screen, y int, r rune) int {
	for x := range s.Width() {
		if s.Get(x, y) == r {
			return x
		}
	}
	return -1
}

func TestRenderHUDAndTiles(t *testing.T) {
	g := newTestGame(t, [][]int{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 128},
		{0, 0, 0, 0},
	})
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"2048", "Moves: 0", "Max: 128", "┌", "┘"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen should contain %q:\n%s", want, out)
		}
	}

	// Row 0 of the board is drawn just below the top border.
	y := hudHeight + 2
	x := findRune(screen, y, '2')
	if x < 0 {
		t.Fatalf("tile 2 not found on row %d:\n%s", y, out)
	}
	if c := screen.GetCell(x, y).Color; c != core.ColorBeige {
		t.Errorf("tile 2 color = %v, want ColorBeige", c)
	}
	if c := screen.GetCell(findRune(screen, y+4, '1'), y+4).Color; c != core.ColorButter {
		t.Errorf("tile 128 color = %v, want ColorButter", c)
	}
}

func TestRenderShowsMidSlidePosition(t *testing.T) {
	g := newTestGame(t, [][]int{
		{0, 0, 0, 8},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	screen := core.NewScreen(80, 24)
	y := hudHeight + 2

	g.Render(screen)
	start := findRune(screen, y, '8')

	for range 3 {
		g.Step(frameWith(core.ActionLeft))
	}
	g.Render(screen)
	mid := findRune(screen, y, '8')

	settle(t, g)
	g.Render(screen)
	end := findRune(screen, y, '8')

	if !(start > mid && mid > end) {
		t.Errorf("tile columns start=%d mid=%d end=%d, want strictly decreasing", start, mid, end)
	}
	if end-start != -3*cellWidth {
		t.Errorf("tile moved %d columns, want %d", end-start, -3*cellWidth)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New(config.Default())
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, Seed: 1})

	screen := core.NewScreen(20, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected too-small notice:\n%s", screen.String())
	}
	if !g.State().Paused {
		t.Error("too-small window should report paused")
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, [][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Errorf("lost game should show GAME OVER:\n%s", screen.String())
	}

	g = New(config.Default())
	g.Step(frameWith(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Errorf("paused game should show PAUSED:\n%s", screen.String())
	}
}

func TestTileColor(t *testing.T) {
	tests := []struct {
		value int
		want  core.Color
	}{
		{0, core.ColorDefault},
		{2, core.ColorBeige},
		{4, core.ColorSand},
		{64, core.ColorRed},
		{512, core.ColorGold},
		{1 << 16, core.ColorGold},
	}
	for _, tt := range tests {
		if got := TileColor(tt.value); got != tt.want {
			t.Errorf("TileColor(%d) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestControls(t *testing.T) {
	if !strings.Contains(New(config.Default()).Controls(), "Move") {
		t.Error("Controls() should describe movement")
	}
}
