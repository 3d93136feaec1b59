package estimate

import "testing"

func TestDetectVagueQuantity(t *testing.T) {
	got := DetectVagueQuantity("a handful of almonds")
	if got == nil {
		t.Fatal("expected a clarification suggestion")
	}
	if got.MatchedFood != "almonds" {
		t.Errorf("matched food = %q, want almonds", got.MatchedFood)
	}
	if got.Question == "" {
		t.Error("question must not be empty")
	}
	if len(got.Options) == 0 {
		t.Fatal("options must not be empty")
	}
	hasBaseline := false
	for _, opt := range got.Options {
		if opt.Multiplier == 1 {
			hasBaseline = true
		}
		if opt.Multiplier <= 0 {
			t.Errorf("non-positive multiplier %v", opt.Multiplier)
		}
	}
	if !hasBaseline {
		t.Error("options should include a 1x baseline")
	}
}

func TestDetectVagueQuantitySomePattern(t *testing.T) {
	got := DetectVagueQuantity("some rice and 2 eggs")
	if got == nil || got.MatchedFood != "rice" {
		t.Fatalf("DetectVagueQuantity(some rice...) = %+v, want rice", got)
	}
}

func TestDetectVagueQuantityNone(t *testing.T) {
	for _, in := range []string{"2 tbsp peanut butter", "", "   "} {
		if got := DetectVagueQuantity(in); got != nil {
			t.Errorf("DetectVagueQuantity(%q) = %+v, want nil", in, got)
		}
	}
}
