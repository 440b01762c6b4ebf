package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/picodino/internal/core"
	"github.com/vovakirdan/picodino/internal/display"
)

// Blit converts the framebuffer's visible pixels into block glyphs on dst.
func Blit(dst *core.Screen, fb *display.Framebuffer, mode display.CellMode) {
	for cy := range dst.Height() {
		for cx := range dst.Width() {
			dst.Set(cx, cy, fb.Glyph(cx, cy, mode))
		}
	}
}

// inkStyles maps core.Color to lipgloss styles.
var inkStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorAmber:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
}

// InkStyle returns the style for lit pixels. Below half contrast the
// panel is dimmed, shown as faint text.
func InkStyle(ink core.Color, contrast uint8) lipgloss.Style {
	style, ok := inkStyles[ink]
	if !ok {
		style = inkStyles[core.ColorDefault]
	}
	if contrast < 128 {
		style = style.Faint(true)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Every row shares one style, so each row is a single styled run.
func RenderScreen(s *core.Screen, style lipgloss.Style) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*3 + s.Height()*16)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(style.Render(s.Row(y)))
	}
	return sb.String()
}
