package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/davidlopes/tinge/internal/color"
	"github.com/davidlopes/tinge/internal/theme"
)

var (
	roleNameStyle = lipgloss.NewStyle().Width(24)
	headerStyle   = lipgloss.NewStyle().Bold(true)
)

// RenderTheme renders the theme as a column of labeled color swatches for
// terminal display.
func RenderTheme(t theme.Theme) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s theme · radius %s", t.Mode, t.Radius)))
	b.WriteString("\n\n")

	for _, role := range theme.AllRoles() {
		value, ok := t.Roles[role]
		if !ok {
			continue
		}
		b.WriteString(roleNameStyle.Render(string(role)))
		b.WriteString(renderChip(value))
		b.WriteString("  ")
		b.WriteString(value)
		b.WriteString("\n")
	}
	return b.String()
}

// renderChip draws a colored block for the value. hsl() strings are
// converted to hex first since lipgloss only understands hex.
func renderChip(value string) string {
	hex := value
	if strings.HasPrefix(value, "hsl(") {
		h, s, l, err := color.ParseHSL(value)
		if err == nil {
			r, g, bb := color.HSLToRGB(h, s, l)
			hex = color.FormatHex(r, g, bb)
		}
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("      ")
}
