package step

import "testing"

func TestRefZeroValueIsAbsent(t *testing.T) {
	var ref Ref

	if ref.Present() {
		t.Error("Zero value Ref should be absent")
	}
	if _, ok := ref.Get(); ok {
		t.Error("Get on an absent Ref should report no step")
	}
	if ref != NoStep() {
		t.Error("NoStep should equal the zero value")
	}
}

func TestRefToCarriesStep(t *testing.T) {
	s := Step{FocusCenter: 4.5, FocusCount: 3}
	ref := RefTo(s)

	if !ref.Present() {
		t.Fatal("RefTo should produce a present reference")
	}

	got, ok := ref.Get()
	if !ok {
		t.Fatal("Get should report a step")
	}
	if got.FocusCenter != 4.5 || got.FocusCount != 3 {
		t.Errorf("Get returned the wrong step: %+v", got)
	}
}

func TestPairBoundaries(t *testing.T) {
	s := Step{FocusCenter: 1, FocusCount: 1}

	entry := Pair{Prev: NoStep(), Next: RefTo(s)}
	if entry.Prev.Present() || !entry.Next.Present() {
		t.Error("Entry pair should have only a next step")
	}

	exit := Pair{Prev: RefTo(s), Next: NoStep()}
	if !exit.Prev.Present() || exit.Next.Present() {
		t.Error("Exit pair should have only a previous step")
	}
}
