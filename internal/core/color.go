package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform renderer,
// so game logic stays free of terminal escape details.
type Color uint8

// Predefined colors. The bright variants cover the seven tetromino
// colors; Gray is used for the ghost piece and board chrome.
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
)
