package estimate

import "testing"

func TestParseSegmentQuantityAndUnit(t *testing.T) {
	tests := []struct {
		in       string
		quantity float64
		unit     string
		food     string
		explicit bool
	}{
		{"2 tbsp peanut butter", 2, "tbsp", "peanut butter", true},
		{"0.5 cup rice", 0.5, "cup", "rice", true},
		{".5 cup rice", 0.5, "cup", "rice", true},
		{"3 eggs", 3, "", "eggs", true},
		{"1 slice of pizza", 1, "slice", "pizza", true},
		{"2 tablespoons honey", 2, "tbsp", "honey", true},
		{"peanut butter", 1, "", "peanut butter", false},
		{"12 oz steak", 12, "oz", "steak", true},
	}

	for _, tt := range tests {
		ps := parseSegment(tt.in)
		if ps.quantity != tt.quantity || ps.unit != tt.unit || ps.food != tt.food || ps.explicitQuantity != tt.explicit {
			t.Errorf("parseSegment(%q) = {qty:%v unit:%q food:%q explicit:%v}, want {qty:%v unit:%q food:%q explicit:%v}",
				tt.in, ps.quantity, ps.unit, ps.food, ps.explicitQuantity,
				tt.quantity, tt.unit, tt.food, tt.explicit)
		}
	}
}

func TestParseSegmentInformalWords(t *testing.T) {
	ps := parseSegment("handful of almonds")
	if ps.informalWord != "handful" {
		t.Fatalf("informalWord = %q, want %q", ps.informalWord, "handful")
	}
	if ps.quantity != 0.25 {
		t.Errorf("quantity = %v, want 0.25", ps.quantity)
	}
	if ps.food != "almonds" {
		t.Errorf("food = %q, want %q", ps.food, "almonds")
	}
	if ps.explicitQuantity {
		t.Errorf("informal quantity must not count as explicit")
	}

	// Leading article is skipped before detection.
	ps = parseSegment("a splash of milk")
	if ps.informalWord != "splash" || ps.quantity != 2 || ps.food != "milk" {
		t.Errorf("parseSegment(\"a splash of milk\") = {informal:%q qty:%v food:%q}", ps.informalWord, ps.quantity, ps.food)
	}

	// An explicit count multiplies the assumed portion.
	ps = parseSegment("2 handfuls of almonds")
	if ps.informalWord != "handful" || ps.quantity != 0.5 {
		t.Errorf("parseSegment(\"2 handfuls of almonds\") = {informal:%q qty:%v}, want {handful 0.5}", ps.informalWord, ps.quantity)
	}
}

func TestParseSegmentStripsAnnotations(t *testing.T) {
	ps := parseSegment("4 oz ground beef (85/15)")
	if ps.food != "ground beef" {
		t.Errorf("food = %q, want %q", ps.food, "ground beef")
	}

	ps = parseSegment("3 large eggs (brown)")
	if ps.food != "eggs" || ps.quantity != 3 {
		t.Errorf("parseSegment(\"3 large eggs (brown)\") = {food:%q qty:%v}, want {eggs 3}", ps.food, ps.quantity)
	}
}

func TestParseSegmentAdjectiveStripping(t *testing.T) {
	tests := []struct {
		in   string
		food string
	}{
		{"grilled chicken breast", "chicken breast"},
		{"big fresh salad", "salad"},
		{"fried rice", "rice"},
		// Never strip the phrase empty.
		{"grilled", "grilled"},
		{"fresh fresh", "fresh"},
	}
	for _, tt := range tests {
		if ps := parseSegment(tt.in); ps.food != tt.food {
			t.Errorf("parseSegment(%q).food = %q, want %q", tt.in, ps.food, tt.food)
		}
	}
}

func TestParseSegmentFallback(t *testing.T) {
	// No numeric or unit pattern at all: whole segment becomes the food phrase.
	ps := parseSegment("mystery casserole surprise")
	if ps.food != "mystery casserole surprise" || ps.quantity != 1 || ps.explicitQuantity {
		t.Fatalf("fallback parse wrong: %+v", ps)
	}
}
