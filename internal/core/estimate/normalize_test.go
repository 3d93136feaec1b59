package estimate

import "testing"

func TestNormalizeQuantities(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"two tbsp peanut butter", "2 tbsp peanut butter"},
		{"a couple of eggs", "2 eggs"},
		{"a few almonds", "3 almonds"},
		{"half a dozen eggs", "6 eggs"},
		{"a dozen donuts", "12 donuts"},
		{"1/2 cup rice", "0.5 cup rice"},
		{"3/4 cup oatmeal", "0.75 cup oatmeal"},
		{"two and a half cups milk", "2.5 cups milk"},
		{"1 and a quarter cups flour", "1.25 cups flour"},
		{"quarter of a cup sugar", "0.25 cup sugar"},
		{"half an avocado", "0.5 avocado"},
		{"a third of a cup granola", "0.33 cup granola"},
		{"twelve grapes", "12 grapes"},
		{"no numbers here", "no numbers here"},
	}

	for _, tt := range tests {
		if got := normalizeQuantities(tt.in); got != tt.want {
			t.Errorf("normalizeQuantities(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeQuantitiesIsPure(t *testing.T) {
	in := "two and a half tbsp peanut butter"
	first := normalizeQuantities(in)
	second := normalizeQuantities(in)
	if first != second {
		t.Fatalf("normalization not deterministic: %q vs %q", first, second)
	}
}

func TestNormalizeDoesNotReplaceInsideWords(t *testing.T) {
	// "one" inside "scones" and "ten" inside "tenderloin" must survive.
	tests := []struct {
		in   string
		want string
	}{
		{"scones", "scones"},
		{"tenderloin", "tenderloin"},
	}
	for _, tt := range tests {
		if got := normalizeQuantities(tt.in); got != tt.want {
			t.Errorf("normalizeQuantities(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
