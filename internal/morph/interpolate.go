package morph

import (
	"errors"
	"fmt"

	"github.com/olivier-w/morphbutton/internal/glyph"
)

// ErrShapeMismatch is returned when two outlines cannot be morphed into each
// other point for point.
var ErrShapeMismatch = errors.New("shape mismatch")

// Interpolate returns the per-vertex linear interpolation between from and
// to at t. t is clamped to [0, 1]; the endpoints return exact copies of from
// and to.
func Interpolate(from, to glyph.Outline, t float64) (glyph.Outline, error) {
	if len(from) != len(to) {
		return nil, fmt.Errorf("%w: %d vertices vs %d", ErrShapeMismatch, len(from), len(to))
	}
	switch {
	case t <= 0:
		return from.Clone(), nil
	case t >= 1:
		return to.Clone(), nil
	}

	out := make(glyph.Outline, len(from))
	for i := range from {
		out[i] = glyph.Point{
			X: (1-t)*from[i].X + t*to[i].X,
			Y: (1-t)*from[i].Y + t*to[i].Y,
		}
	}
	return out, nil
}
