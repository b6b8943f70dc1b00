package ui

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"})

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})
)

// glyphStyle paints braille cells in the button's tint.
func glyphStyle(tint color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(tint)))
}

func hexColor(c color.Color) string {
	if c == nil {
		return "#FFFFFF"
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "#FFFFFF"
	}
	return cf.Hex()
}
