package render

import (
	"image"
	"testing"

	"github.com/olivier-w/morphbutton/internal/glyph"
)

func TestMaskFillsRectangle(t *testing.T) {
	o := glyph.OutlineFor(glyph.Right, glyph.Playing, glyph.Box{Width: 8, Height: 8})
	m := Mask(16, 8, o)

	if got := m.AlphaAt(3, 3).A; got < 0xf0 {
		t.Fatalf("expected pixel inside bar to be covered, got %#x", got)
	}
	if got := m.AlphaAt(12, 3).A; got != 0 {
		t.Fatalf("expected pixel outside bar to be empty, got %#x", got)
	}
}

func TestMaskHandlesDegenerateOutlines(t *testing.T) {
	m := Mask(4, 4, glyph.OutlineFor(glyph.Left, glyph.Playing, glyph.Box{}))
	for y := range 4 {
		for x := range 4 {
			if m.AlphaAt(x, y).A != 0 {
				t.Fatalf("expected empty mask, pixel (%d,%d) is lit", x, y)
			}
		}
	}
}

func TestMaskZeroSize(t *testing.T) {
	m := Mask(0, 10, glyph.OutlineFor(glyph.Left, glyph.Playing, glyph.Box{Width: 5, Height: 5}))
	if !m.Bounds().Empty() {
		t.Fatalf("expected empty bounds, got %v", m.Bounds())
	}
}

func TestMaskWedgePointsRight(t *testing.T) {
	o := glyph.OutlineFor(glyph.Right, glyph.PausedRight, glyph.Box{Width: 40, Height: 40})
	m := Mask(40, 40, o)

	if got := m.AlphaAt(2, 20).A; got < 0xf0 {
		t.Fatalf("expected wide end of wedge to be covered, got %#x", got)
	}
	if got := m.AlphaAt(2, 2).A; got != 0 {
		t.Fatalf("expected corner above wedge to be empty, got %#x", got)
	}
}

func TestFrameMaskRoundsSize(t *testing.T) {
	m := FrameMask(9.6, 4.2, nil)
	if m.Bounds() != image.Rect(0, 0, 10, 4) {
		t.Fatalf("expected 10x4 mask, got %v", m.Bounds())
	}
}
