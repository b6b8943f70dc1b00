package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Tinted paints tint through mask over a background of bg.
func Tinted(mask *image.Alpha, tint, bg color.Color) *image.NRGBA {
	b := mask.Bounds()
	img := imaging.New(b.Dx(), b.Dy(), bg)
	draw.DrawMask(img, img.Bounds(), image.NewUniform(tint), image.Point{}, mask, b.Min, draw.Over)
	return img
}

// Strip lays frames out left to right, separated by gap pixels of bg.
// The strip is as tall as the tallest frame.
func Strip(frames []image.Image, gap int, bg color.Color) *image.NRGBA {
	gap = max(gap, 0)
	var w, h int
	for i, f := range frames {
		if i > 0 {
			w += gap
		}
		w += f.Bounds().Dx()
		h = max(h, f.Bounds().Dy())
	}

	strip := imaging.New(w, h, bg)
	x := 0
	for _, f := range frames {
		strip = imaging.Paste(strip, f, image.Pt(x, 0))
		x += f.Bounds().Dx() + gap
	}
	return strip
}

// Save writes img to path; the format follows the file extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
