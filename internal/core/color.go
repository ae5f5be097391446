package core

// Color is a foreground color for a screen cell.
// It holds a color name ("orange"), a hex value ("#ff3366") or an ANSI
// code ("208"); the platform layer decides how to display it.
type Color string

// Colors used for board furniture. Player pieces use their own colors.
const (
	ColorDefault Color = ""
	ColorFrame   Color = "blue"
	ColorCursor  Color = "yellow"
	ColorDim     Color = "gray"
	ColorAlert   Color = "bright-white"
)
