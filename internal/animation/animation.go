// Package animation holds the primitives every transition is built from:
// numeric style snapshots, eased tweens and the chain combinator that folds
// phase segments into one timeline.
package animation

import (
	"github.com/0xflotus/code-surfer/internal/easing"
)

// Property names one numeric channel of a style.
type Property string

// Properties produced by the transition and camera layers.
const (
	PropX       Property = "x"       // horizontal offset
	PropOpacity Property = "opacity" // 0..1
	PropHeight  Property = "height"  // line height units
	PropScroll  Property = "scroll"  // viewport scroll offset
	PropScale   Property = "scale"   // viewport zoom factor
)

// Style is the interpolated visual state at one instant: a mapping from
// property to numeric value. Styles are created fresh per evaluation and
// never shared between calls.
type Style map[Property]float64

// Clone returns an independent copy; mutating it never affects s.
func (s Style) Clone() Style {
	out := make(Style, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Merge copies every property of other into s. Last write wins: existing
// values are overwritten, non-overlapping properties accumulate.
func (s Style) Merge(other Style) {
	for k, v := range other {
		s[k] = v
	}
}

// Animation maps transition progress in [0,1] to a style snapshot. It must
// be pure: no retained state, any call order, and repeated calls with the
// same t return equal results, so a renderer can scrub to any moment.
type Animation func(t float64) Style

// Scalar maps transition progress to a single value, for tracks like scroll
// offset and zoom that have no property structure.
type Scalar func(t float64) float64

// Constant returns a Scalar that ignores progress.
func Constant(v float64) Scalar {
	return func(float64) float64 { return v }
}

// Lerp performs linear interpolation between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Tween interpolates between from and to, shaped by ease. The curve is
// always named by the caller; use Lerp for plain linear motion. Outside
// [0,1] the result follows the curve's extrapolation rather than failing.
func Tween(from, to, t float64, ease easing.Func) float64 {
	return from + (to-from)*ease(t)
}
