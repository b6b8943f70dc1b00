package render

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestTintedPaintsCoveredPixels(t *testing.T) {
	m := image.NewAlpha(image.Rect(0, 0, 2, 1))
	m.SetAlpha(0, 0, color.Alpha{A: 0xff})

	img := Tinted(m, color.NRGBA{R: 255, A: 255}, color.NRGBA{B: 255, A: 255})
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{R: 255, A: 255}) {
		t.Fatalf("expected tint at covered pixel, got %v", got)
	}
	if got := img.NRGBAAt(1, 0); got != (color.NRGBA{B: 255, A: 255}) {
		t.Fatalf("expected background at empty pixel, got %v", got)
	}
}

func TestStripLaysFramesOutHorizontally(t *testing.T) {
	a := image.NewNRGBA(image.Rect(0, 0, 10, 6))
	b := image.NewNRGBA(image.Rect(0, 0, 10, 8))

	s := Strip([]image.Image{a, b, a}, 2, color.Black)
	if got, want := s.Bounds(), image.Rect(0, 0, 34, 8); got != want {
		t.Fatalf("expected bounds %v, got %v", want, got)
	}
}

func TestSaveWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strip.png")
	img := Strip([]image.Image{image.NewNRGBA(image.Rect(0, 0, 4, 4))}, 0, color.White)
	if err := Save(img, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected file to exist: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("expected non-empty file")
	}
}

func TestSaveRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strip.xyz")
	if err := Save(image.NewNRGBA(image.Rect(0, 0, 1, 1)), path); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
