package render

import (
	"image"
	"strings"
)

// DefaultThreshold is the coverage at which a braille dot is lit.
const DefaultThreshold = 0x80

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// Braille encodes mask as rows of Unicode braille characters. Each cell
// covers 2×4 mask pixels; a dot is lit when its pixel's coverage reaches
// threshold. Partial cells at the right and bottom edges are padded.
func Braille(mask *image.Alpha, threshold uint8) []string {
	b := mask.Bounds()
	cols := (b.Dx() + 1) / 2
	rows := (b.Dy() + 3) / 4
	if threshold == 0 {
		threshold = 1
	}

	out := make([]string, rows)
	var line strings.Builder
	for row := range rows {
		line.Reset()
		for col := range cols {
			var pattern uint
			for dx := range 2 {
				x := b.Min.X + col*2 + dx
				if x >= b.Max.X {
					continue
				}
				for dy := range 4 {
					y := b.Min.Y + row*4 + dy
					if y >= b.Max.Y {
						continue
					}
					if mask.AlphaAt(x, y).A >= threshold {
						pattern |= 1 << brailleBits[dx][dy]
					}
				}
			}
			line.WriteRune(rune(0x2800 + pattern))
		}
		out[row] = line.String()
	}
	return out
}
