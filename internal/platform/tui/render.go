package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// colorCodes maps core.Color to ANSI 256-color codes.
var colorCodes = map[core.Color]string{
	core.ColorGray:      "245",
	core.ColorWhite:     "15",
	core.ColorBrightRed: "9",
	core.ColorBeige:     "230",
	core.ColorSand:      "223",
	core.ColorApricot:   "215",
	core.ColorOrange:    "208",
	core.ColorCoral:     "209",
	core.ColorRed:       "196",
	core.ColorButter:    "228",
	core.ColorYellow:    "226",
	core.ColorGold:      "220",
}

// Palette holds the lipgloss styles for one output. SSH sessions need their
// own renderer so colors match the client terminal.
type Palette struct {
	plain  lipgloss.Style
	styles map[core.Color]lipgloss.Style
}

// NewPalette builds styles with r, or the default renderer when r is nil.
func NewPalette(r *lipgloss.Renderer) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := Palette{
		plain:  r.NewStyle(),
		styles: make(map[core.Color]lipgloss.Style, len(colorCodes)),
	}
	for c, code := range colorCodes {
		style := r.NewStyle().Foreground(lipgloss.Color(code))
		if c >= core.ColorBeige {
			style = style.Bold(true)
		}
		p.styles[c] = style
	}
	return p
}

// Style returns the style for c, falling back to plain text.
func (p Palette) Style(c core.Color) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	return p.plain
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func (p Palette) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(p.Style(color).Render(run.String()))
		}
	}
	return sb.String()
}
