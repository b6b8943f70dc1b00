package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
	"time"

	"github.com/olivier-w/morphbutton/internal/button"
	"github.com/olivier-w/morphbutton/internal/config"
	"github.com/olivier-w/morphbutton/internal/render"
)

const (
	exportSize = 120
	exportGap  = 8
	maxFrames  = 1000
)

var errExportUsage = errors.New("usage: morphbutton export <file.png> [width height]")

// runExport renders one toggle of the button as a film strip of frames.
func runExport(cfg config.Config, args []string, out io.Writer) error {
	if len(args) != 1 && len(args) != 3 {
		return errExportUsage
	}
	path := args[0]
	w, h := exportSize, exportSize
	if len(args) == 3 {
		var err error
		if w, err = strconv.Atoi(args[1]); err != nil || w <= 0 {
			return fmt.Errorf("invalid width %q: %w", args[1], errExportUsage)
		}
		if h, err = strconv.Atoi(args[2]); err != nil || h <= 0 {
			return fmt.Errorf("invalid height %q: %w", args[2], errExportUsage)
		}
	}

	frames, err := exportFrames(cfg, w, h)
	if err != nil {
		return err
	}
	if err := render.Save(render.Strip(frames, exportGap, color.Transparent), path); err != nil {
		return err
	}

	button.Logger().Info("export written", "path", path, "frames", len(frames))
	fmt.Fprintf(out, "Wrote %d frames to %s\n", len(frames), path)
	return nil
}

// exportFrames samples one toggle morph at the configured frame rate. The
// first frame shows the starting outline, the last the committed target.
func exportFrames(cfg config.Config, w, h int) ([]image.Image, error) {
	curve, err := cfg.Curve()
	if err != nil {
		return nil, err
	}
	tint, err := cfg.TintColor()
	if err != nil {
		return nil, err
	}
	if cfg.FPS <= 0 {
		return nil, fmt.Errorf("invalid frame rate %d", cfg.FPS)
	}

	b := button.New(float64(w), float64(h), button.WithEasing(curve.Easing()), button.WithTint(tint))
	step := time.Second / time.Duration(cfg.FPS)
	at := time.Unix(0, 0)
	b.Toggle(at)

	var frames []image.Image
	for range maxFrames {
		animating := b.Tick(at)
		f := b.Frame()
		frames = append(frames, render.Tinted(render.FrameMask(f.Width, f.Height, f.Outlines), f.Tint, color.Transparent))
		if !animating {
			break
		}
		at = at.Add(step)
	}
	return frames, nil
}
