package core

// Color represents a foreground color for a screen cell.
type Color uint8

// The palette: the seven piece colors plus gray for the ghost piece.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorOrange
	ColorGray
)
