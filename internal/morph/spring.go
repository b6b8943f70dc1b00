package morph

import "github.com/charmbracelet/harmonica"

const (
	springSteps     = 64
	springFrequency = 8.0
	springDamping   = 1.0
)

// Spring returns an easing that follows a critically damped spring released
// from 0 toward 1. The trajectory is sampled once and normalized so the
// curve ends exactly at 1.
func Spring() Easing {
	return newSpringCurve(springSteps, springFrequency, springDamping)
}

func newSpringCurve(steps int, frequency, damping float64) Easing {
	if steps < 1 {
		steps = 1
	}
	spring := harmonica.NewSpring(harmonica.FPS(steps), frequency, damping)

	table := make([]float64, steps+1)
	var pos, vel float64
	for i := 1; i <= steps; i++ {
		pos, vel = spring.Update(pos, vel, 1)
		table[i] = pos
	}
	end := table[steps]
	if end <= 0 {
		return Linear
	}
	for i := range table {
		table[i] /= end
	}

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		f := t * float64(steps)
		i := int(f)
		frac := f - float64(i)
		return table[i]*(1-frac) + table[i+1]*frac
	}
}
