package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Backgrounds of the scene. Every cell sits on the sky unless its tone
// brings its own background.
const (
	skyColor  = lipgloss.Color("117")
	dirtColor = lipgloss.Color("180")
)

// tone describes how cells of one core.Color are drawn.
type tone struct {
	fg     lipgloss.Color
	bg     lipgloss.Color
	bold   bool
	italic bool
}

func (t tone) style() lipgloss.Style {
	bg := skyColor
	if t.bg != "" {
		bg = t.bg
	}
	st := lipgloss.NewStyle().Background(bg).Bold(t.bold).Italic(t.italic)
	if t.fg != "" {
		st = st.Foreground(t.fg)
	}
	return st
}

// palette is the flappy look: dark green pipes with light caps, a yellow
// bird, orange dirt under the grass and bold scoreboard text.
var palette = map[core.Color]tone{
	core.ColorDefault:       {},
	core.ColorRed:           {fg: "1"},
	core.ColorGreen:         {fg: "28"},
	core.ColorYellow:        {fg: "94", bold: true},
	core.ColorBlue:          {fg: "4"},
	core.ColorMagenta:       {fg: "5"},
	core.ColorCyan:          {fg: "24", italic: true},
	core.ColorWhite:         {fg: "7"},
	core.ColorBrightRed:     {fg: "160", bold: true},
	core.ColorBrightGreen:   {fg: "118"},
	core.ColorBrightYellow:  {fg: "226"},
	core.ColorBrightBlue:    {fg: "12"},
	core.ColorBrightMagenta: {fg: "201", italic: true},
	core.ColorBrightCyan:    {fg: "14"},
	core.ColorBrightWhite:   {fg: "231", bold: true},
	core.ColorOrange:        {fg: "172", bg: dirtColor},
	core.ColorGray:          {fg: "239"},
	core.ColorBronze:        {fg: "130", bold: true},
	core.ColorSilver:        {fg: "250", bold: true},
	core.ColorGold:          {fg: "220", bold: true},
	core.ColorPlatinum:      {fg: "195", bold: true},
}

// colorStyles holds the rendered style of every palette entry.
var colorStyles = buildStyles(palette)

func buildStyles(p map[core.Color]tone) map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(p))
	for c, t := range p {
		styles[c] = t.style()
	}
	return styles
}

// styleFor returns the style of c, or the plain sky for unknown colors.
func styleFor(c core.Color) lipgloss.Style {
	if st, ok := colorStyles[c]; ok {
		return st
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		renderRow(&sb, s, y)
	}
	return sb.String()
}

// renderRow writes row y, one styled span per run of equally colored cells.
func renderRow(sb *strings.Builder, s *core.Screen, y int) {
	var span strings.Builder
	color := s.GetCell(0, y).Color

	flush := func() {
		if span.Len() > 0 {
			sb.WriteString(styleFor(color).Render(span.String()))
			span.Reset()
		}
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != color {
			flush()
			color = cell.Color
		}
		span.WriteRune(cell.Rune)
	}
	flush()
}
