package estimate

import (
	"sort"
	"strings"
)

// brandTokens known brand names that pair with generic product words.
var brandTokens = map[string]bool{
	"quest":           true,
	"quest bar":       true,
	"premier protein": true,
	"fairlife":        true,
	"chobani":         true,
	"clif":            true,
	"muscle milk":     true,
}

// productWords generic product categories a brand mention duplicates.
var productWords = []string{"protein", "yogurt", "milk", "bar", "powder", "shake"}

// significant-word overlap at or above this fraction marks two names as the
// same food. Known risk: two genuinely distinct foods sharing half their words
// merge; the simplicity is deliberate.
const overlapThreshold = 0.5

// dedupeItems merges overlapping mentions of the same food, keeping one
// representative per duplicate group. Calories are never summed across
// duplicates: the longer, more specific name is assumed to already cover the
// full quantity. Output preserves original mention order.
func dedupeItems(items []Item) []Item {
	if len(items) <= 1 {
		return items
	}

	type positioned struct {
		item Item
		pos  int
	}

	ordered := make([]positioned, len(items))
	for i, it := range items {
		ordered[i] = positioned{item: it, pos: i}
	}
	// Longest food name first so specific mentions anchor their group.
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].item.Food) > len(ordered[j].item.Food)
	})

	accepted := make([]positioned, 0, len(ordered))
	for _, cand := range ordered {
		duplicate := false
		for i, acc := range accepted {
			switch {
			case strings.Contains(cand.item.Food, acc.item.Food):
				duplicate = true
			case strings.Contains(acc.item.Food, cand.item.Food):
				// Keep the longer, more specific accepted name. It reads
				// earlier in the original mention order when it should.
				if cand.pos < acc.pos {
					accepted[i].pos = cand.pos
				}
				duplicate = true
			case wordOverlap(cand.item.Food, acc.item.Food) >= overlapThreshold:
				duplicate = true
			case brandGenericPair(cand.item.Food, acc.item.Food):
				duplicate = true
			}
			if duplicate {
				break
			}
		}
		if !duplicate {
			accepted = append(accepted, cand)
		}
	}

	sort.Slice(accepted, func(i, j int) bool { return accepted[i].pos < accepted[j].pos })
	out := make([]Item, len(accepted))
	for i, p := range accepted {
		out[i] = p.item
	}
	return out
}

// wordOverlap fraction of shared significant words (longer than 2 chars)
// relative to the smaller word count of the two names.
func wordOverlap(a, b string) float64 {
	aWords := significantWords(a)
	bWords := significantWords(b)
	if len(aWords) == 0 || len(bWords) == 0 {
		return 0
	}

	bSet := make(map[string]bool, len(bWords))
	for _, w := range bWords {
		bSet[w] = true
	}
	shared := 0
	for _, w := range aWords {
		if bSet[w] {
			shared++
		}
	}

	smaller := len(aWords)
	if len(bWords) < smaller {
		smaller = len(bWords)
	}
	return float64(shared) / float64(smaller)
}

func significantWords(name string) []string {
	var words []string
	for _, w := range strings.Fields(name) {
		if len(w) > 2 {
			words = append(words, w)
		}
	}
	return words
}

// brandGenericPair reports whether one name is a known brand and the other a
// generic product mention of the same kind of thing.
func brandGenericPair(a, b string) bool {
	return (isBrand(a) && hasProductWord(b)) || (isBrand(b) && hasProductWord(a))
}

func isBrand(name string) bool {
	if brandTokens[name] {
		return true
	}
	for brand := range brandTokens {
		if strings.Contains(name, brand) {
			return true
		}
	}
	return false
}

func hasProductWord(name string) bool {
	for _, w := range productWords {
		if strings.Contains(name, w) {
			return true
		}
	}
	return false
}
