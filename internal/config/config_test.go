package config

import (
	"image/color"
	"log/slog"
	"strings"
	"testing"

	"github.com/olivier-w/morphbutton/internal/morph"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.FPS != 60 || cfg.Rows != 8 || cfg.LogFile != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if c, _ := cfg.Curve(); c != morph.CurveEaseInOut {
		t.Fatalf("expected ease-in-out, got %v", c)
	}
	tint, err := cfg.TintColor()
	if err != nil {
		t.Fatalf("unexpected tint error: %v", err)
	}
	if tint != (color.NRGBA{R: 0xff, G: 0x5f, B: 0x1f, A: 0xff}) {
		t.Fatalf("unexpected default tint %v", tint)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MORPHBUTTON_FPS", "30")
	t.Setenv("MORPHBUTTON_EASING", "spring")
	t.Setenv("MORPHBUTTON_TINT", "#00ff00")
	t.Setenv("MORPHBUTTON_ROWS", "4")
	t.Setenv("MORPHBUTTON_LOG_FILE", "/tmp/morphbutton.log")
	t.Setenv("MORPHBUTTON_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.FPS != 30 || cfg.Rows != 4 || cfg.LogFile != "/tmp/morphbutton.log" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if c, _ := cfg.Curve(); c != morph.CurveSpring {
		t.Fatalf("expected spring, got %v", c)
	}
	if l, _ := cfg.Level(); l != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", l)
	}
}

func TestLoadRejectsMalformedNumber(t *testing.T) {
	t.Setenv("MORPHBUTTON_FPS", "fast")
	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Config{FPS: 0, Rows: 1, Easing: "bounce", Tint: "orange", LogLevel: "loud"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"MORPHBUTTON_FPS", "MORPHBUTTON_ROWS", "MORPHBUTTON_EASING", "MORPHBUTTON_TINT", "MORPHBUTTON_LOG_LEVEL"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %s in error, got %v", want, err)
		}
	}
}
