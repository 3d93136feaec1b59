package estimate

import (
	"fmt"
	"regexp"
	"strings"
)

var vaguePhraseRe = regexp.MustCompile(
	`\b(?:a\s+)?(handful|splash|dash|drizzle|dollop|sprinkle|bit|few|little|some)\s+(?:of\s+)?([a-z][a-z ]*)`)

// DetectVagueQuantity scans mealText for vague portion phrases like "handful of
// almonds" or "some rice" and proposes a clarification prompt with quantity
// multiplier options. It is a suggestion surface for a calling UI and never
// changes the estimate itself. Returns nil when nothing vague is found.
func DetectVagueQuantity(mealText string) *VagueQuantity {
	text := strings.ToLower(strings.TrimSpace(mealText))
	if text == "" {
		return nil
	}

	m := vaguePhraseRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	word := m[1]
	food := firstFoodWords(m[2])
	if food == "" {
		return nil
	}

	return &VagueQuantity{
		MatchedFood: food,
		Question:    fmt.Sprintf("How big was the %s of %s?", word, food),
		Options: []QuantityOption{
			{Label: "smaller than usual", Multiplier: 0.5},
			{Label: "about typical", Multiplier: 1},
			{Label: "generous", Multiplier: 1.5},
			{Label: "double", Multiplier: 2},
		},
	}
}

// firstFoodWords keeps the food phrase up to the next delimiter word.
func firstFoodWords(phrase string) string {
	words := strings.Fields(phrase)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if w == "and" || w == "with" || w == "plus" {
			break
		}
		kept = append(kept, w)
		if len(kept) == 3 {
			break
		}
	}
	return strings.Join(kept, " ")
}
