package morph

import "github.com/tanema/gween/ease"

// Easing maps linear time progress in [0, 1] to shape progress. Every
// easing returns exactly 0 at 0 and exactly 1 at 1.
type Easing func(t float64) float64

var (
	// Linear is the identity easing.
	Linear = fromTween(ease.Linear)

	// EaseInOut starts and ends slowly.
	EaseInOut = fromTween(ease.InOutCubic)
)

// fromTween adapts a gween tween function to a unit-interval easing.
func fromTween(fn ease.TweenFunc) Easing {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return clamp01(float64(fn(float32(t), 0, 1, 1)))
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
