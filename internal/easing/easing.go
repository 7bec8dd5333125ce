// Package easing provides the progress curves every tween in this repository
// is shaped by.
package easing

import (
	"fmt"
	"math"
)

// Func maps normalized progress to eased progress. For t in [0,1] the result
// is in [0,1], monotonic non-decreasing, with Func(0)=0 and Func(1)=1.
// Outside [0,1] each curve continues along its own polynomial, so tweens
// extrapolate deterministically instead of failing.
type Func func(t float64) float64

// Linear returns t unchanged (constant speed).
func Linear(t float64) float64 {
	return t
}

// InQuad starts slow and accelerates.
func InQuad(t float64) float64 {
	return t * t
}

// OutQuad starts fast and decelerates.
func OutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// InOutQuad accelerates through the first half and decelerates through the
// second. This is the curve the transition phases use for motion that should
// settle visibly.
func InOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// OutCubic starts fast and brakes hard toward the end.
func OutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// InOutCubic is a steeper in-out than InOutQuad.
func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// ForName resolves a curve by its command-line name.
func ForName(name string) (Func, error) {
	switch name {
	case "linear", "":
		return Linear, nil
	case "in-quad":
		return InQuad, nil
	case "out-quad":
		return OutQuad, nil
	case "in-out-quad":
		return InOutQuad, nil
	case "out-cubic":
		return OutCubic, nil
	case "in-out-cubic":
		return InOutCubic, nil
	case "spring":
		return Spring(DefaultFrequency, DefaultDamping), nil
	default:
		return nil, fmt.Errorf("unknown easing curve: %s", name)
	}
}

// Names lists the curve names ForName accepts.
func Names() []string {
	return []string{"linear", "in-quad", "out-quad", "in-out-quad", "out-cubic", "in-out-cubic", "spring"}
}
