package animation

import "errors"

// Validation failures reported by Chain.
var (
	ErrNoSegments     = errors.New("animation: chain needs at least one segment")
	ErrThresholdOrder = errors.New("animation: segment thresholds must be strictly increasing")
	ErrUnterminated   = errors.New("animation: last segment must end at 1")
)

// Segment is one phase of a chained animation, spanning from the previous
// segment's threshold to its own. Build segments with Animate or Hold; the
// no-op phase is a distinct variant, not a nil function.
type Segment struct {
	until   float64
	anim    Animation
	animate bool
}

// Animate makes a segment that plays anim across its span. The sub-animation
// receives local progress: 0 where the span starts, 1 at until.
func Animate(until float64, anim Animation) Segment {
	return Segment{until: until, anim: anim, animate: true}
}

// Hold makes a no-op segment: the running style is carried unchanged until
// the threshold.
func Hold(until float64) Segment {
	return Segment{until: until}
}

// Chain folds segments into one animation. Thresholds must be strictly
// increasing within (0,1] and the last must be exactly 1. Equal consecutive
// thresholds would divide by zero at evaluation time, so they are rejected
// here at construction. start is the style before any segment has run (nil
// means empty); it is cloned per call and never aliased.
//
// Evaluation walks the segments in order: the segment containing t runs at
// local progress (t-prev)/(until-prev), every earlier segment is fully
// resolved at 1, later segments are never evaluated. Results merge into a
// fresh style with last-write-wins semantics.
func Chain(segments []Segment, start Style) (Animation, error) {
	if len(segments) == 0 {
		return nil, ErrNoSegments
	}

	prev := 0.0
	for _, seg := range segments {
		if seg.until <= prev {
			return nil, ErrThresholdOrder
		}
		prev = seg.until
	}
	if prev != 1 {
		return nil, ErrUnterminated
	}

	segs := make([]Segment, len(segments))
	copy(segs, segments)
	seed := start.Clone()

	return func(t float64) Style {
		style := seed.Clone()
		prev := 0.0
		for _, seg := range segs {
			localT := 1.0
			if t <= seg.until {
				localT = (t - prev) / (seg.until - prev)
			}
			if seg.animate {
				style.Merge(seg.anim(localT))
			}
			if t < seg.until {
				return style
			}
			prev = seg.until
		}
		return style
	}, nil
}

// MustChain is Chain for segment lists known valid at compile time; it
// panics on a validation error, the way template.Must wraps parsing.
func MustChain(segments []Segment, start Style) Animation {
	anim, err := Chain(segments, start)
	if err != nil {
		panic(err)
	}
	return anim
}
