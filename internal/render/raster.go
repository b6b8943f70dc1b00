// Package render turns button frames into pixels: an alpha mask for the
// terminal and tinted images for export.
package render

import (
	"image"
	"math"

	"golang.org/x/image/vector"

	"github.com/olivier-w/morphbutton/internal/glyph"
)

// Mask rasterizes the outlines into a w×h coverage mask using the nonzero
// winding rule. Outline coordinates are in pixels.
func Mask(w, h int, outlines ...glyph.Outline) *image.Alpha {
	w, h = max(w, 0), max(h, 0)
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return mask
	}

	z := vector.NewRasterizer(w, h)
	for _, o := range outlines {
		if len(o) < 3 {
			continue
		}
		z.MoveTo(f32(o[0].X), f32(o[0].Y))
		for _, p := range o[1:] {
			z.LineTo(f32(p.X), f32(p.Y))
		}
		z.ClosePath()
	}
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// FrameMask rasterizes a frame at its own size, rounded to whole pixels.
func FrameMask(width, height float64, outlines []glyph.Outline) *image.Alpha {
	return Mask(int(math.Round(width)), int(math.Round(height)), outlines...)
}

func f32(v float64) float32 {
	return float32(v)
}
