package morph

import (
	"fmt"
	"strings"
)

// Curve names one of the built-in easings.
type Curve int

const (
	CurveEaseInOut Curve = iota
	CurveLinear
	CurveSpring
)

// Next cycles to the next curve.
func (c Curve) Next() Curve {
	switch c {
	case CurveEaseInOut:
		return CurveLinear
	case CurveLinear:
		return CurveSpring
	default:
		return CurveEaseInOut
	}
}

// String returns the name of the curve.
func (c Curve) String() string {
	switch c {
	case CurveLinear:
		return "linear"
	case CurveSpring:
		return "spring"
	default:
		return "ease-in-out"
	}
}

// Easing returns the easing function for the curve.
func (c Curve) Easing() Easing {
	switch c {
	case CurveLinear:
		return Linear
	case CurveSpring:
		return Spring()
	default:
		return EaseInOut
	}
}

// ParseCurve returns the curve with the given name.
func ParseCurve(name string) (Curve, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ease-in-out", "easeinout":
		return CurveEaseInOut, nil
	case "linear":
		return CurveLinear, nil
	case "spring":
		return CurveSpring, nil
	}
	return CurveEaseInOut, fmt.Errorf("unknown easing %q (supported: ease-in-out, linear, spring)", name)
}
