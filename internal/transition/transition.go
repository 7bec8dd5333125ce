// Package transition builds the animations played while a presentation moves
// from one step to the next. A transition runs through three ordered phases:
// lines that leave exit first, then the view scrolls and lines resize, then
// new lines enter.
package transition

import (
	"github.com/0xflotus/code-surfer/internal/animation"
	"github.com/0xflotus/code-surfer/internal/easing"
)

// Phase boundaries, as fractions of one transition.
const (
	ExitEnd   = 0.3 // leaving lines are gone
	ScrollEnd = 0.7 // scrolling and line resizing have settled
)

// SlideDistance is how far a line travels horizontally while entering or
// leaving, in the same length units as line height.
const SlideDistance = 250.0

// ExitLine animates a line being removed: it fades from fromOpacity to
// toOpacity while sliding left during EXIT, collapses from lineHeight to 0
// during SCROLL, and is gone for the rest of the transition.
func ExitLine(fromOpacity, toOpacity, lineHeight float64) animation.Animation {
	return animation.MustChain([]animation.Segment{
		animation.Animate(ExitEnd, func(t float64) animation.Style {
			return animation.Style{
				animation.PropOpacity: animation.Lerp(fromOpacity, toOpacity, t),
				animation.PropX:       animation.Lerp(0, -SlideDistance, t),
			}
		}),
		animation.Animate(ScrollEnd, func(t float64) animation.Style {
			return animation.Style{
				animation.PropHeight: animation.Tween(lineHeight, 0, t, easing.InOutQuad),
			}
		}),
		animation.Hold(1),
	}, animation.Style{
		animation.PropX:       0,
		animation.PropOpacity: fromOpacity,
		animation.PropHeight:  lineHeight,
	})
}

// EnterLine animates a line being added, mirror to ExitLine: it waits out
// EXIT collapsed and displaced right, grows to lineHeight during SCROLL,
// then slides in and fades to toOpacity during ENTER.
func EnterLine(fromOpacity, toOpacity, lineHeight float64) animation.Animation {
	return animation.MustChain([]animation.Segment{
		animation.Hold(ExitEnd),
		animation.Animate(ScrollEnd, func(t float64) animation.Style {
			return animation.Style{
				animation.PropHeight: animation.Tween(0, lineHeight, t, easing.InOutQuad),
			}
		}),
		animation.Animate(1, func(t float64) animation.Style {
			return animation.Style{
				animation.PropOpacity: animation.Lerp(fromOpacity, toOpacity, t),
				animation.PropX:       animation.Lerp(SlideDistance, 0, t),
			}
		}),
	}, animation.Style{
		animation.PropX:       SlideDistance,
		animation.PropOpacity: fromOpacity,
		animation.PropHeight:  0,
	})
}

// Focus tweens opacity across the whole transition with no phase structure,
// for emphasis changes within content that itself does not move.
func Focus(fromOpacity, toOpacity float64) animation.Animation {
	return func(t float64) animation.Style {
		return animation.Style{
			animation.PropOpacity: animation.Lerp(fromOpacity, toOpacity, t),
		}
	}
}

// Unfocus is Focus under the name call sites read naturally when dimming.
func Unfocus(fromOpacity, toOpacity float64) animation.Animation {
	return Focus(fromOpacity, toOpacity)
}

// ChangeFocus moves opacity between two emphasis levels without fighting the
// scroll phase: a line gaining focus brightens only after the view has
// settled, a line losing focus dims before the view starts moving.
func ChangeFocus(fromOpacity, toOpacity float64) animation.Animation {
	fade := func(t float64) animation.Style {
		return animation.Style{
			animation.PropOpacity: animation.Lerp(fromOpacity, toOpacity, t),
		}
	}
	start := animation.Style{animation.PropOpacity: fromOpacity}

	if fromOpacity < toOpacity {
		return animation.MustChain([]animation.Segment{
			animation.Hold(ScrollEnd),
			animation.Animate(1, fade),
		}, start)
	}
	return animation.MustChain([]animation.Segment{
		animation.Animate(ExitEnd, fade),
		animation.Hold(1),
	}, start)
}

// FadeOutIn crosses a whole block out and back in over one transition. The
// breakpoint sits at 0.5, independent of the phase model.
func FadeOutIn() animation.Animation {
	return animation.MustChain([]animation.Segment{
		animation.Animate(0.5, func(t float64) animation.Style {
			return animation.Style{animation.PropOpacity: animation.Lerp(1, 0, t)}
		}),
		animation.Animate(1, func(t float64) animation.Style {
			return animation.Style{animation.PropOpacity: animation.Lerp(0, 1, t)}
		}),
	}, nil)
}

// HalfFadeOut fades a block out during the first half and keeps it hidden.
func HalfFadeOut() animation.Animation {
	return animation.MustChain([]animation.Segment{
		animation.Animate(0.5, func(t float64) animation.Style {
			return animation.Style{animation.PropOpacity: animation.Lerp(1, 0, t)}
		}),
		animation.Hold(1),
	}, nil)
}

// HalfFadeIn keeps a block hidden through the first half, then fades it in.
func HalfFadeIn() animation.Animation {
	return animation.MustChain([]animation.Segment{
		animation.Hold(0.5),
		animation.Animate(1, func(t float64) animation.Style {
			return animation.Style{animation.PropOpacity: animation.Lerp(0, 1, t)}
		}),
	}, animation.Style{animation.PropOpacity: 0})
}
