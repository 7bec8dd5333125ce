package deck

// Demo returns a small fully measured deck. It backs the -init flag so the
// tool produces a trace out of the box, and the tests use it as a fixture.
func Demo() *Deck {
	return &Deck{
		Version:    "1.0",
		Title:      "walkthrough",
		Container:  Container{Width: 800, Height: 600},
		LineHeight: 20,
		Steps: []StepSpec{
			{
				Name:        "intro",
				FocusCenter: 2.5,
				FocusCount:  5,
				Measured:    &Measurement{PaddingTop: 40, PaddingBottom: 40, ContentWidth: 520},
			},
			{
				Name:        "builder",
				FocusCenter: 9,
				FocusCount:  4,
				Measured:    &Measurement{PaddingTop: 40, PaddingBottom: 40, ContentWidth: 560},
			},
			{
				Name:        "loop",
				FocusCenter: 14.5,
				FocusCount:  6,
				Measured:    &Measurement{PaddingTop: 40, PaddingBottom: 40, ContentWidth: 480},
			},
			{
				Name:        "closing",
				FocusCenter: 3,
				FocusCount:  2,
				Measured:    &Measurement{PaddingTop: 40, PaddingBottom: 40, ContentWidth: 520},
			},
		},
	}
}
