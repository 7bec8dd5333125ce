package animation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xflotus/code-surfer/internal/animation"
)

func opacityTo(from, to float64) animation.Animation {
	return func(t float64) animation.Style {
		return animation.Style{animation.PropOpacity: animation.Lerp(from, to, t)}
	}
}

// TestChain_StartStyle verifies that evaluation at 0 returns the declared
// start style exactly when the first segment is a hold.
func TestChain_StartStyle(t *testing.T) {
	start := animation.Style{animation.PropOpacity: 0.4, animation.PropHeight: 16}
	anim, err := animation.Chain([]animation.Segment{
		animation.Hold(0.5),
		animation.Animate(1, opacityTo(0.4, 1)),
	}, start)
	require.NoError(t, err)

	assert.Equal(t, start, anim(0), "chain at t=0 must equal the start style")
}

// TestChain_DefensiveCopy ensures the returned style never aliases the
// caller's template.
func TestChain_DefensiveCopy(t *testing.T) {
	start := animation.Style{animation.PropHeight: 16}
	anim, err := animation.Chain([]animation.Segment{animation.Hold(1)}, start)
	require.NoError(t, err)

	got := anim(0.2)
	got[animation.PropHeight] = 999

	assert.Equal(t, 16.0, start[animation.PropHeight], "mutating a result must not touch the template")
	assert.Equal(t, 16.0, anim(0.2)[animation.PropHeight], "later evaluations must be unaffected")
}

// TestChain_LocalProgress checks the progress mapping inside a middle
// segment: global 0.5 inside [0.3, 0.7] is local 0.5.
func TestChain_LocalProgress(t *testing.T) {
	anim, err := animation.Chain([]animation.Segment{
		animation.Hold(0.3),
		animation.Animate(0.7, opacityTo(0, 1)),
		animation.Hold(1),
	}, nil)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, anim(0.5)[animation.PropOpacity], 1e-9, "midpoint of segment must map to local 0.5")
	assert.InDelta(t, 0.25, anim(0.4)[animation.PropOpacity], 1e-9)
	assert.InDelta(t, 1.0, anim(0.7)[animation.PropOpacity], 1e-9, "segment end must map to local 1")
	assert.InDelta(t, 1.0, anim(0.9)[animation.PropOpacity], 1e-9, "resolved segment must stay at local 1")
}

// TestChain_ShortCircuit proves later segments are never evaluated for a t
// inside an earlier segment.
func TestChain_ShortCircuit(t *testing.T) {
	tripwire := func(float64) animation.Style {
		panic("segment after the active one was evaluated")
	}

	anim, err := animation.Chain([]animation.Segment{
		animation.Animate(0.5, opacityTo(1, 0)),
		animation.Animate(1, tripwire),
	}, nil)
	require.NoError(t, err)

	assert.NotPanics(t, func() { anim(0.25) }, "evaluation must stop at the active segment")
}

// TestChain_MergeSemantics verifies later segments overwrite earlier values
// while distinct properties accumulate.
func TestChain_MergeSemantics(t *testing.T) {
	anim, err := animation.Chain([]animation.Segment{
		animation.Animate(0.5, func(t float64) animation.Style {
			return animation.Style{
				animation.PropOpacity: 0.2,
				animation.PropX:       animation.Lerp(0, -50, t),
			}
		}),
		animation.Animate(1, opacityTo(0.8, 1)),
	}, nil)
	require.NoError(t, err)

	full := anim(1)
	assert.Equal(t, 1.0, full[animation.PropOpacity], "last write must win for shared properties")
	assert.Equal(t, -50.0, full[animation.PropX], "properties from resolved segments must persist")
}

// TestChain_Purity checks repeated and out-of-order evaluation, which a
// scrubbing renderer relies on.
func TestChain_Purity(t *testing.T) {
	anim, err := animation.Chain([]animation.Segment{
		animation.Animate(0.5, opacityTo(1, 0)),
		animation.Animate(1, opacityTo(0, 1)),
	}, nil)
	require.NoError(t, err)

	probes := []float64{0.9, 0.1, 0.5, 0.1, 0.9}
	for _, tt := range probes {
		first := anim(tt)
		second := anim(tt)
		assert.Equal(t, first, second, "same t must return equal styles regardless of call history")
	}
}

// TestChain_Extrapolation checks evaluation outside [0,1]: above 1 the fold
// resolves fully, below 0 the first segment extrapolates.
func TestChain_Extrapolation(t *testing.T) {
	anim, err := animation.Chain([]animation.Segment{
		animation.Animate(1, opacityTo(0, 1)),
	}, nil)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, anim(1.5)[animation.PropOpacity], 1e-9, "past the end the chain holds its final state")
	assert.InDelta(t, -0.5, anim(-0.5)[animation.PropOpacity], 1e-9, "before the start the active segment extrapolates")
}

// TestChain_Validation covers every construction error.
func TestChain_Validation(t *testing.T) {
	noop := opacityTo(0, 1)

	_, err := animation.Chain(nil, nil)
	assert.ErrorIs(t, err, animation.ErrNoSegments, "empty segment list must be rejected")

	_, err = animation.Chain([]animation.Segment{
		animation.Animate(0.5, noop),
		animation.Animate(0.5, noop),
		animation.Hold(1),
	}, nil)
	assert.ErrorIs(t, err, animation.ErrThresholdOrder, "equal consecutive thresholds must be rejected")

	_, err = animation.Chain([]animation.Segment{
		animation.Animate(0.7, noop),
		animation.Animate(0.3, noop),
	}, nil)
	assert.ErrorIs(t, err, animation.ErrThresholdOrder, "decreasing thresholds must be rejected")

	_, err = animation.Chain([]animation.Segment{
		animation.Animate(0.5, noop),
	}, nil)
	assert.ErrorIs(t, err, animation.ErrUnterminated, "a chain not ending at 1 must be rejected")
}

// TestMustChain verifies the panicking wrapper on both paths.
func TestMustChain(t *testing.T) {
	assert.NotPanics(t, func() {
		animation.MustChain([]animation.Segment{animation.Hold(1)}, nil)
	})
	assert.Panics(t, func() {
		animation.MustChain([]animation.Segment{animation.Hold(0.5)}, nil)
	}, "MustChain must panic on invalid segment lists")
}
