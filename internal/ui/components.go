package ui

import (
	"fmt"
	"strings"

	"github.com/olivier-w/morphbutton/internal/button"
	"github.com/olivier-w/morphbutton/internal/morph"
	"github.com/olivier-w/morphbutton/internal/render"
)

// renderGlyph draws the frame as tinted braille rows, each prefixed by indent.
func renderGlyph(f button.Frame, indent string) string {
	mask := render.FrameMask(f.Width, f.Height, f.Outlines)
	style := glyphStyle(f.Tint)

	var b strings.Builder
	for _, row := range render.Braille(mask, render.DefaultThreshold) {
		b.WriteString(indent)
		b.WriteString(style.Render(row))
		b.WriteString("\n")
	}
	return b.String()
}

func renderStatus(state button.State, curve morph.Curve, toggles int) string {
	icon := "▶"
	if state == button.Paused {
		icon = "❚❚"
	}
	return fmt.Sprintf("%s  %s   easing %s   toggles %d", icon, state, curve, toggles)
}

func windowTitle(state button.State) string {
	if state == button.Playing {
		return "▶ morphbutton"
	}
	return "⏸ morphbutton"
}
