// Package viz renders sampled animation tracks as terminal plots, for
// eyeballing a curve before committing to a full trace export.
package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/0xflotus/code-surfer/internal/animation"
)

// SampleScalar evaluates a scalar track at n evenly spaced progress values
// across [0,1], endpoints included.
func SampleScalar(track animation.Scalar, n int) []float64 {
	if n < 2 {
		n = 2
	}

	values := make([]float64, n)
	for i := range values {
		t := float64(i) / float64(n-1)
		values[i] = track(t)
	}
	return values
}

// SampleProperty evaluates one property of a style animation at n evenly
// spaced progress values. Frames where the property is absent sample as 0.
func SampleProperty(anim animation.Animation, prop animation.Property, n int) []float64 {
	return SampleScalar(func(t float64) float64 {
		return anim(t)[prop]
	}, n)
}

// PlotTrack renders sampled values as an ASCII chart with a caption.
func PlotTrack(values []float64, caption string, width, height int) string {
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
