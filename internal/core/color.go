package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the renderer.
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
	ColorOrange
	ColorGray
	ColorBrown
	ColorPurple
	ColorLime
)

// Colors returns every palette entry, in declaration order.
func Colors() []Color {
	out := make([]Color, 0, int(ColorLime)+1)
	for c := ColorDefault; c <= ColorLime; c++ {
		out = append(out, c)
	}
	return out
}
