// Package step defines the value records the presentation layer hands to the
// animation code: which lines a step focuses and the measured geometry the
// viewport math needs. Everything here is immutable plain data.
package step

// Step is one highlighted unit in the presentation sequence.
type Step struct {
	// FocusCenter is the vertical center of the focused region, in line
	// heights from the top of the content.
	FocusCenter float64
	// FocusCount is the number of focused lines.
	FocusCount int
	// Measured holds the per-step layout measurements, nil until the
	// measuring collaborator has run. A step without measurements is valid
	// but cannot participate in zoom calculation.
	Measured *StepDimensions
}

// StepDimensions are the per-step measurements taken after layout.
type StepDimensions struct {
	PaddingTop    float64
	PaddingBottom float64
	// ContentWidth is the widest line of this step's content; the deck-wide
	// content width is derived from these.
	ContentWidth float64
}

// Dimensions describe the shared container/content geometry, all in the same
// length units.
type Dimensions struct {
	ContainerHeight float64
	ContainerWidth  float64
	ContentWidth    float64
	LineHeight      float64
}

// Ref is an optional reference to a Step. The zero value means "no such
// step" and marks a deck boundary; absence is carried by the type itself,
// never by a nil pointer.
type Ref struct {
	step    Step
	present bool
}

// RefTo returns a present reference to s.
func RefTo(s Step) Ref {
	return Ref{step: s, present: true}
}

// NoStep returns the absent reference. It equals Ref{} and exists for call
// sites that read better naming the boundary explicitly.
func NoStep() Ref {
	return Ref{}
}

// Present reports whether the reference carries a step.
func (r Ref) Present() bool {
	return r.present
}

// Get returns the referenced step and whether one is present.
func (r Ref) Get() (Step, bool) {
	return r.step, r.present
}

// Pair is the ordered (previous, next) pair one transition animates between.
// Either side may be absent at the deck boundaries.
type Pair struct {
	Prev Ref
	Next Ref
}
