// Package deck loads and validates presentation decks: the ordered step
// sequence plus the geometry each step was measured at. Decks are persisted
// as YAML so a measuring run and a tracing run can happen separately.
package deck

import (
	"fmt"

	"github.com/0xflotus/code-surfer/internal/step"
)

// Deck is a complete presentation as persisted on disk.
type Deck struct {
	Version    string     `yaml:"version"`
	Title      string     `yaml:"title"`
	Container  Container  `yaml:"container"`
	LineHeight float64    `yaml:"line_height"`
	Steps      []StepSpec `yaml:"steps"`
}

// Container is the viewport the deck plays in.
type Container struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// StepSpec is one step as persisted in a deck file.
type StepSpec struct {
	Name        string       `yaml:"name,omitempty"`
	FocusCenter float64      `yaml:"focus_center"` // Center of the focused region, in line heights
	FocusCount  int          `yaml:"focus_count"`  // Number of focused lines
	Measured    *Measurement `yaml:"measured,omitempty"`
}

// Measurement is a step's layout measurement, absent until a measuring run
// has filled it in.
type Measurement struct {
	PaddingTop    float64 `yaml:"padding_top"`
	PaddingBottom float64 `yaml:"padding_bottom"`
	ContentWidth  float64 `yaml:"content_width"`
}

// Validate checks the deck for values the animation math cannot work with.
func (d *Deck) Validate() error {
	if len(d.Steps) == 0 {
		return fmt.Errorf("deck has no steps")
	}
	if d.LineHeight <= 0 {
		return fmt.Errorf("line_height must be positive, got %v", d.LineHeight)
	}
	if d.Container.Width < 0 || d.Container.Height < 0 {
		return fmt.Errorf("container must not be negative, got %vx%v", d.Container.Width, d.Container.Height)
	}

	measured := false
	for i, s := range d.Steps {
		if s.FocusCount < 1 {
			return fmt.Errorf("step %d: focus_count must be at least 1, got %d", i, s.FocusCount)
		}
		if s.FocusCenter < 0 {
			return fmt.Errorf("step %d: focus_center must not be negative, got %v", i, s.FocusCenter)
		}
		if m := s.Measured; m != nil {
			measured = true
			if m.PaddingTop < 0 || m.PaddingBottom < 0 {
				return fmt.Errorf("step %d: paddings must not be negative", i)
			}
			if m.ContentWidth <= 0 {
				return fmt.Errorf("step %d: content_width must be positive, got %v", i, m.ContentWidth)
			}
		}
	}

	// The container only feeds the viewport math once steps carry
	// measurements; until then the block may be omitted.
	if measured && (d.Container.Width <= 0 || d.Container.Height <= 0) {
		return fmt.Errorf("container must be positive for a measured deck, got %vx%v", d.Container.Width, d.Container.Height)
	}

	return nil
}

// Dimensions assembles the shared geometry record the viewport math needs.
// It returns nil unless every step is measured; the deck-wide content width
// is the widest measured step.
func (d *Deck) Dimensions() *step.Dimensions {
	widest := 0.0
	for _, s := range d.Steps {
		if s.Measured == nil {
			return nil
		}
		if s.Measured.ContentWidth > widest {
			widest = s.Measured.ContentWidth
		}
	}

	return &step.Dimensions{
		ContainerHeight: d.Container.Height,
		ContainerWidth:  d.Container.Width,
		ContentWidth:    widest,
		LineHeight:      d.LineHeight,
	}
}

// Sequence converts the persisted steps into the value records the animation
// code consumes.
func (d *Deck) Sequence() []step.Step {
	steps := make([]step.Step, len(d.Steps))
	for i, s := range d.Steps {
		steps[i] = step.Step{
			FocusCenter: s.FocusCenter,
			FocusCount:  s.FocusCount,
		}
		if s.Measured != nil {
			steps[i].Measured = &step.StepDimensions{
				PaddingTop:    s.Measured.PaddingTop,
				PaddingBottom: s.Measured.PaddingBottom,
				ContentWidth:  s.Measured.ContentWidth,
			}
		}
	}
	return steps
}

// Pairs returns every transition the deck plays in order: the entry from
// nothing into the first step, each consecutive pair, and the exit from the
// last step into nothing.
func (d *Deck) Pairs() []step.Pair {
	steps := d.Sequence()
	pairs := make([]step.Pair, 0, len(steps)+1)

	prev := step.NoStep()
	for _, s := range steps {
		next := step.RefTo(s)
		pairs = append(pairs, step.Pair{Prev: prev, Next: next})
		prev = next
	}
	pairs = append(pairs, step.Pair{Prev: prev, Next: step.NoStep()})

	return pairs
}
