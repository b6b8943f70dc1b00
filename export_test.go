package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/olivier-w/morphbutton/internal/config"
)

func testConfig() config.Config {
	return config.Config{FPS: 60, Easing: "ease-in-out", Tint: "#FF5F1F", Rows: 8, LogLevel: "info"}
}

func TestExportFramesCoverWholeMorph(t *testing.T) {
	frames, err := exportFrames(testConfig(), 60, 40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 150ms at 60fps: frames at 0, 1/60s, ... up to the committing frame.
	if len(frames) < 9 || len(frames) > 11 {
		t.Fatalf("expected about 10 frames, got %d", len(frames))
	}
	for i, f := range frames {
		if f.Bounds().Dx() != 60 || f.Bounds().Dy() != 40 {
			t.Fatalf("frame %d: unexpected bounds %v", i, f.Bounds())
		}
	}

	// The paused wedge leaves the top-right corner of the left half empty;
	// the playing bars fill the top-left corner of the right half.
	first, last := frames[0], frames[len(frames)-1]
	if _, _, _, a := first.At(43, 1).RGBA(); a != 0 {
		t.Fatalf("expected first frame to be empty at right half top, alpha %d", a)
	}
	if _, _, _, a := last.At(43, 1).RGBA(); a == 0 {
		t.Fatal("expected last frame to fill right half top")
	}
}

func TestRunExportWritesStrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toggle.png")
	var out bytes.Buffer
	if err := runExport(testConfig(), []string{path, "48", "32"}, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected strip to be written: %v", err)
	}
	if !strings.Contains(out.String(), path) {
		t.Fatalf("expected output to mention %s, got %q", path, out.String())
	}
}

func TestRunExportRejectsBadArguments(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"a.png", "10"},
		{"a.png", "ten", "10"},
		{"a.png", "10", "-1"},
	} {
		err := runExport(testConfig(), args, &bytes.Buffer{})
		if !errors.Is(err, errExportUsage) {
			t.Fatalf("%v: expected usage error, got %v", args, err)
		}
	}
}
