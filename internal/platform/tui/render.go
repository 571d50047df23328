package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term2048/internal/core"
)

// styleFor converts a core.Pen into a lipgloss style.
func styleFor(pen core.Pen) lipgloss.Style {
	style := lipgloss.NewStyle()
	if pen.Fg != core.NoColor {
		style = style.Foreground(lipgloss.Color(pen.Fg))
	}
	if pen.Bg != core.NoColor {
		style = style.Background(lipgloss.Color(pen.Bg))
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same pen are rendered as one run to keep the
// number of escape sequences down.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[core.Pen]lipgloss.Style)
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, span := range s.Spans(y) {
			if span.Pen.IsPlain() {
				sb.WriteString(span.Text)
				continue
			}
			style, ok := styles[span.Pen]
			if !ok {
				style = styleFor(span.Pen)
				styles[span.Pen] = style
			}
			sb.WriteString(style.Render(span.Text))
		}
	}
	return sb.String()
}
