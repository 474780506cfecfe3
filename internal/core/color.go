package core

// Color represents a foreground color for a screen cell.
// The platform maps each value onto an ANSI 256-color code.
type Color uint8

// Terminal palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBronze
	ColorSilver
	ColorGold
	ColorPlatinum
)

// Colors of the flappy scene.
const (
	ColorBird  = ColorBrightYellow
	ColorPipe  = ColorGreen
	ColorLand  = ColorOrange
	ColorScore = ColorBrightWhite
	ColorPanel = ColorYellow
	ColorDebug = ColorBrightMagenta
)
