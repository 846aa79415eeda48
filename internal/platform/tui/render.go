package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-skirmish/internal/core"
)

// ansiCodes holds the 256-color code for each palette entry.
// An empty code leaves the terminal's own foreground.
var ansiCodes = [...]string{
	core.ColorDefault:      "",
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorMagenta:      "5",
	core.ColorCyan:         "6",
	core.ColorWhite:        "7",
	core.ColorBrightRed:    "9",
	core.ColorBrightGreen:  "10",
	core.ColorBrightYellow: "11",
	core.ColorOrange:       "208",
	core.ColorGray:         "245",
	core.ColorBrown:        "94", // ground
	core.ColorPurple:       "93",
	core.ColorLime:         "118",
}

// palette is ansiCodes resolved once, indexed by core.Color.
var palette = buildPalette()

func buildPalette() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(ansiCodes))
	for i, code := range ansiCodes {
		styles[i] = lipgloss.NewStyle()
		if code != "" {
			styles[i] = styles[i].Foreground(lipgloss.Color(code))
		}
	}
	return styles
}

// styleFor returns the style of a palette entry, or the plain style for
// values outside the palette.
func styleFor(c core.Color) lipgloss.Style {
	if int(c) >= len(palette) {
		return palette[core.ColorDefault]
	}
	return palette[c]
}

// RenderScreen turns a game screen into one styled string, a line per row.
// Each run of same-colored cells is wrapped in a single escape sequence;
// default-colored runs are written as is.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	run := make([]rune, 0, s.Width())
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		run = run[:0]
		color := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				writeRun(&sb, color, run)
				run, color = run[:0], cell.Color
			}
			run = append(run, cell.Rune)
		}
		writeRun(&sb, color, run)
	}
	return sb.String()
}

func writeRun(sb *strings.Builder, c core.Color, run []rune) {
	switch {
	case len(run) == 0:
	case c == core.ColorDefault:
		sb.WriteString(string(run))
	default:
		sb.WriteString(styleFor(c).Render(string(run)))
	}
}
