package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors. The tile shades run from pale to saturated, following
// the classic 2048 palette.
const (
	ColorDefault Color = iota
	ColorGray          // grid lines
	ColorWhite         // HUD text
	ColorBrightRed     // game over text
	ColorBeige         // 2
	ColorSand          // 4
	ColorApricot       // 8
	ColorOrange        // 16
	ColorCoral         // 32
	ColorRed           // 64
	ColorButter        // 128
	ColorYellow        // 256
	ColorGold          // 512 and up
)

// TileColors lists tile shades by log2(value)-1.
var TileColors = []Color{
	ColorBeige,
	ColorSand,
	ColorApricot,
	ColorOrange,
	ColorCoral,
	ColorRed,
	ColorButter,
	ColorYellow,
	ColorGold,
}
