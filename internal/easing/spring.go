package easing

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Spring tuning used by ForName("spring").
const (
	DefaultFrequency = 6.0
	DefaultDamping   = 0.8
)

const (
	springFPS      = 120
	springMaxSteps = 10 * springFPS
	springRest     = 1e-4
)

// Spring builds an easing curve from a damped spring response. The spring is
// simulated once here, at fixed steps toward target 1, and the returned Func
// interpolates the recorded samples, so evaluation stays pure.
//
// Damping below 1 overshoots 1.0 before settling; spring curves are the one
// family here allowed outside [0,1]. Pass damping >= 1 for a curve that keeps
// the monotonic contract.
func Spring(frequency, damping float64) Func {
	spring := harmonica.NewSpring(harmonica.FPS(springFPS), frequency, damping)

	samples := []float64{0}
	pos, vel := 0.0, 0.0
	for i := 0; i < springMaxSteps; i++ {
		pos, vel = spring.Update(pos, vel, 1)
		samples = append(samples, pos)
		if math.Abs(1-pos) < springRest && math.Abs(vel) < springRest {
			break
		}
	}
	// Pin the endpoint so Func(1) == 1 exactly
	samples[len(samples)-1] = 1

	last := float64(len(samples) - 1)
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		x := t * last
		i := int(x)
		frac := x - float64(i)
		return samples[i] + (samples[i+1]-samples[i])*frac
	}
}
