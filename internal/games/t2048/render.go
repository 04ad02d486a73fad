package t2048

import (
	"fmt"
	"io"
	"math"
	"math/bits"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including borders)
	cellHeight = 2 // Height of each cell (including borders)
	hudHeight  = 3
)

// Renderer receives every animation frame. It must not mutate the board.
type Renderer interface {
	RenderFrame(b *Board)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(b *Board)

// RenderFrame calls f(b).
func (f RendererFunc) RenderFrame(b *Board) {
	f(b)
}

// TextRenderer writes each frame as a text grid followed by a blank line.
type TextRenderer struct {
	W      io.Writer
	Frames int // Frames written so far
}

// RenderFrame writes b to the underlying writer.
func (r *TextRenderer) RenderFrame(b *Board) {
	r.Frames++
	fmt.Fprintf(r.W, "%s\n", b)
}

// TileColor returns the display color for a tile value.
func TileColor(value int) core.Color {
	if value < 2 {
		return core.ColorDefault
	}
	idx := bits.Len(uint(value)) - 2
	if idx >= len(core.TileColors) {
		idx = len(core.TileColors) - 1
	}
	return core.TileColors[idx]
}

// minScreenSize returns the smallest screen that fits the HUD and board.
func minScreenSize(rows, cols int) (w, h int) {
	return cols*cellWidth + 1, hudHeight + 1 + rows*cellHeight + 1 + 1
}

// Render draws the game state to the screen. Tiles are drawn at their
// continuous positions, so mid-slide frames show motion.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check screen size
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	rows, cols := g.board.Rows(), g.board.Cols()
	boardW := cols*cellWidth + 1
	boardH := rows*cellHeight + 1

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderGrid(dst, boardX, boardY)
	g.renderTiles(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, move counter and highest tile.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorWhite)

	dst.DrawText(boardX, 1, fmt.Sprintf("Moves: %d", g.moves))

	maxStr := fmt.Sprintf("Max: %d", g.board.MaxTile())
	dst.DrawText(core.Max(boardX, boardX+boardW-len(maxStr)), 1, maxStr)
}

// renderGrid draws the cell borders.
func (g *Game) renderGrid(dst *core.Screen, boardX, boardY int) {
	rows, cols := g.board.Rows(), g.board.Cols()

	for y := range rows + 1 {
		for x := range cols + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == cols:
				corner = '┐'
			case y == rows && x == 0:
				corner = '└'
			case y == rows && x == cols:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == rows:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == cols:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorGray)

			if x < cols {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < rows {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}
}

// renderTiles draws every tile at its continuous position.
func (g *Game) renderTiles(dst *core.Screen, boardX, boardY int) {
	size := g.board.CellSize()
	for _, t := range g.board.Tiles() {
		px := boardX + 1 + int(math.Round(t.X/size*cellWidth))
		py := boardY + 1 + int(math.Round(t.Y/size*cellHeight))

		valStr := strconv.Itoa(t.Value)
		padLeft := max((cellWidth-1-len(valStr))/2, 0)
		dst.DrawTextColored(px+padLeft, py, valStr, TileColor(t.Value))
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, core.ColorWhite, "PAUSED", "Press P to resume")
		return
	}

	if g.status == StatusLost {
		maxStr := fmt.Sprintf("Max tile: %d", g.board.MaxTile())
		g.drawOverlay(dst, centerX, centerY, core.ColorBrightRed, "GAME OVER", maxStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, c core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, c)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/hjkl: Move | P: Pause | R: Restart | Q: Quit"
}
