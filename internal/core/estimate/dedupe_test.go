package estimate

import "testing"

func item(food string, calories int) Item {
	return Item{Food: food, Calories: calories}
}

func TestDedupeKeepsLongerName(t *testing.T) {
	got := dedupeItems([]Item{
		item("chicken breast", 165),
		item("grilled chicken breast", 165),
	})
	if len(got) != 1 {
		t.Fatalf("got %d items, want 1", len(got))
	}
	if got[0].Food != "grilled chicken breast" {
		t.Errorf("survivor = %q, want the longer name", got[0].Food)
	}
	// One representative only; calories are not summed across duplicates.
	if got[0].Calories != 165 {
		t.Errorf("calories = %d, want 165", got[0].Calories)
	}
}

func TestDedupeIdenticalNames(t *testing.T) {
	got := dedupeItems([]Item{item("egg", 78), item("egg", 156)})
	if len(got) != 1 {
		t.Fatalf("got %d items, want 1", len(got))
	}
}

func TestDedupeWordOverlap(t *testing.T) {
	// Known false-merge risk, preserved deliberately: two genuinely distinct
	// foods sharing half their significant words collapse into one.
	got := dedupeItems([]Item{
		item("almond milk", 39),
		item("almond butter", 98),
	})
	if len(got) != 1 {
		t.Fatalf("overlap rule changed: got %d items, want 1 (0.5 threshold)", len(got))
	}
}

func TestDedupeBrandGenericPair(t *testing.T) {
	got := dedupeItems([]Item{
		item("quest bar", 190),
		item("protein shake", 160),
	})
	if len(got) != 1 {
		t.Fatalf("brand/generic pair not merged: got %d items", len(got))
	}
}

func TestDedupeKeepsDistinctFoods(t *testing.T) {
	got := dedupeItems([]Item{
		item("banana", 105),
		item("apple", 95),
		item("coffee", 2),
	})
	if len(got) != 3 {
		t.Fatalf("distinct foods merged: got %d items, want 3", len(got))
	}
	// Output order follows mention order.
	want := []string{"banana", "apple", "coffee"}
	for i, w := range want {
		if got[i].Food != w {
			t.Errorf("item %d = %q, want %q", i, got[i].Food, w)
		}
	}
}
