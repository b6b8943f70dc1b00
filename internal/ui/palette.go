package ui

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// tintPalette is cycled through with the tint key, after the configured tint.
var tintPalette = []string{"#FFFFFF", "#FF0033", "#3EA6FF", "#2BA640", "#FFD600"}

// Tints is the ring of fill colors the button can be re-tinted with.
type Tints struct {
	colors []color.Color
	pos    int
}

// NewTints returns a ring starting at first, followed by the built-in palette.
func NewTints(first color.Color) Tints {
	colors := []color.Color{first}
	for _, h := range tintPalette {
		c, err := colorful.Hex(h)
		if err != nil {
			continue
		}
		r, g, b := c.RGB255()
		colors = append(colors, color.NRGBA{R: r, G: g, B: b, A: 0xff})
	}
	return Tints{colors: colors}
}

// Next advances to the next tint.
func (t Tints) Next() Tints {
	if len(t.colors) == 0 {
		return t
	}
	t.pos = (t.pos + 1) % len(t.colors)
	return t
}

// Current returns the selected tint.
func (t Tints) Current() color.Color {
	if len(t.colors) == 0 {
		return color.White
	}
	return t.colors[t.pos]
}
