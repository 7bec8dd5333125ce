// Package camera computes the viewport motion of a transition: the zoom
// scale that fits a step's focused lines inside the container and the scroll
// offset that centers them. Both are produced as scalar animations so the
// caller samples them exactly like the line animations.
package camera

import (
	"math"

	"github.com/0xflotus/code-surfer/internal/animation"
	"github.com/0xflotus/code-surfer/internal/easing"
	"github.com/0xflotus/code-surfer/internal/step"
	"github.com/0xflotus/code-surfer/internal/transition"
)

// widthMargin keeps 10% of the container width free when width is the
// limiting dimension.
const widthMargin = 0.9

// Zoom returns the scale factor at which the step's focused lines fit the
// container, capped at 1 so content is never magnified past natural size.
// The second return is false when the step is absent (a deck boundary).
//
// Zoom panics when the step is present but was never measured, or when dims
// is nil. Measurement must complete before any zoom query; getting here
// without it is an integration ordering bug, not a runtime condition.
func Zoom(ref step.Ref, dims *step.Dimensions) (float64, bool) {
	s, ok := ref.Get()
	if !ok {
		return 0, false
	}
	if s.Measured == nil || dims == nil {
		panic("camera: zoom requested before content was measured")
	}

	contentHeight := float64(s.FocusCount) * dims.LineHeight
	padding := math.Max(s.Measured.PaddingTop, s.Measured.PaddingBottom)
	availableHeight := dims.ContainerHeight - 2*padding

	yZoom := availableHeight / contentHeight
	xZoom := widthMargin * dims.ContainerWidth / dims.ContentWidth

	return math.Min(yZoom, math.Min(1, xZoom)), true
}

// ScaleToFocus animates the zoom level between the two sides of a pair. An
// absent side holds the other side's zoom, so deck boundaries keep the scale
// steady instead of animating from nowhere. Without measured dimensions the
// scale stays at 1.
func ScaleToFocus(pair step.Pair, dims *step.Dimensions) animation.Scalar {
	if dims == nil {
		return animation.Constant(1)
	}

	prevZoom, prevOK := Zoom(pair.Prev, dims)
	nextZoom, nextOK := Zoom(pair.Next, dims)
	if !prevOK && !nextOK {
		return animation.Constant(1)
	}
	if !prevOK {
		prevZoom = nextZoom
	}
	if !nextOK {
		nextZoom = prevZoom
	}

	return func(t float64) float64 {
		return animation.Tween(prevZoom, nextZoom, t, easing.InOutQuad)
	}
}

// ScrollToFocus animates the scroll offset between the focus centers of a
// pair. The offset holds during EXIT and ENTER and moves only during the
// SCROLL phase, in step with the line shrink/grow animations. An absent side
// targets offset 0; without measured dimensions the offset stays at 0.
func ScrollToFocus(pair step.Pair, dims *step.Dimensions) animation.Scalar {
	if dims == nil {
		return animation.Constant(0)
	}

	from := scrollTarget(pair.Prev, dims)
	to := scrollTarget(pair.Next, dims)

	return func(t float64) float64 {
		switch {
		case t <= transition.ExitEnd:
			return from
		case t >= transition.ScrollEnd:
			return to
		}
		localT := (t - transition.ExitEnd) / (transition.ScrollEnd - transition.ExitEnd)
		return animation.Tween(from, to, localT, easing.InOutQuad)
	}
}

func scrollTarget(ref step.Ref, dims *step.Dimensions) float64 {
	s, ok := ref.Get()
	if !ok {
		return 0
	}
	return s.FocusCenter * dims.LineHeight
}
