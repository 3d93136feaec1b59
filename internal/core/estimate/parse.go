package estimate

import (
	"regexp"
	"strconv"
	"strings"
)

// informalQuantity maps a vague portion word to its assumed quantity, implied
// unit and the note shown to the user.
type informalQuantity struct {
	amount float64
	unit   string
	note   string
}

var informalQuantities = map[string]informalQuantity{
	"handful":  {amount: 0.25, unit: "cup", note: "Estimated as ~1/4 cup"},
	"splash":   {amount: 2, unit: "tsp", note: "Estimated as ~2 tsp"},
	"drizzle":  {amount: 1, unit: "tsp", note: "Estimated as ~1 tsp"},
	"dash":     {amount: 0.25, unit: "tsp", note: "Estimated as ~1/4 tsp"},
	"dollop":   {amount: 2, unit: "tbsp", note: "Estimated as ~2 tbsp"},
	"sprinkle": {amount: 0.5, unit: "tsp", note: "Estimated as ~1/2 tsp"},
	"pinch":    {amount: 0.1, unit: "tsp", note: "Negligible calories"},
	"pat":      {amount: 1, unit: "tsp", note: "Estimated as ~1 tsp"},
	"glug":     {amount: 2, unit: "tbsp", note: "Estimated as ~2 tbsp"},
}

var (
	leadingQuantityRe = regexp.MustCompile(`^(\d*\.?\d+)\s*(.*)$`)
	parentheticalRe   = regexp.MustCompile(`\s*\([^)]*\)`)
)

// descriptiveAdjectives are stripped from the front of a food phrase. At most a
// bounded run is removed and at least one word always survives.
var descriptiveAdjectives = map[string]bool{
	"big": true, "large": true, "small": true, "medium": true, "little": true,
	"grilled": true, "fried": true, "baked": true, "roasted": true, "toasted": true,
	"steamed": true, "boiled": true, "scrambled": true, "cooked": true, "raw": true,
	"fresh": true, "frozen": true, "organic": true, "plain": true, "whole": true,
	"sliced": true, "diced": true, "chopped": true, "shredded": true, "crispy": true,
	"skinless": true, "boneless": true, "lean": true, "homemade": true, "leftover": true,
}

const maxAdjectiveStrip = 3

// parseSegment extracts an optional quantity, optional unit and a food phrase
// from one segment. It never fails: a segment with no recognizable quantity
// pattern becomes a food phrase with quantity 1.
func parseSegment(segment string) parsedSegment {
	seg := strings.TrimSpace(segment)
	ps := parsedSegment{raw: seg, quantity: 1}

	words := strings.Fields(seg)
	words = skipArticles(words)

	// Informal portion words are detected on the segment before the numeric
	// pattern is tried, so "handful of almonds" keeps its vague-portion signal.
	if len(words) > 0 {
		if iq, ok := informalQuantities[singular(words[0])]; ok {
			ps.informalWord = singular(words[0])
			ps.quantity = iq.amount
			ps.food = cleanFoodPhrase(strings.Join(skipArticles(skipOf(words[1:])), " "))
			return ps
		}
	}

	rest := strings.Join(words, " ")
	if m := leadingQuantityRe.FindStringSubmatch(rest); m != nil {
		if q, err := strconv.ParseFloat(m[1], 64); err == nil {
			ps.quantity = q
			ps.explicitQuantity = true
			rest = m[2]
		}
	}

	words = strings.Fields(rest)
	if len(words) > 0 {
		if u, ok := canonicalUnit(words[0]); ok {
			ps.unit = u
			words = words[1:]
		} else if iq, ok := informalQuantities[singular(words[0])]; ok {
			// "2 handfuls of almonds": the count multiplies the assumed portion.
			ps.informalWord = singular(words[0])
			if ps.explicitQuantity {
				ps.quantity *= iq.amount
			} else {
				ps.quantity = iq.amount
			}
			words = words[1:]
		}
	}
	words = skipArticles(skipOf(words))

	ps.food = cleanFoodPhrase(strings.Join(words, " "))
	return ps
}

// cleanFoodPhrase strips parenthetical annotations and a bounded run of leading
// descriptive adjectives, never stripping the phrase empty.
func cleanFoodPhrase(phrase string) string {
	phrase = parentheticalRe.ReplaceAllString(phrase, "")
	words := strings.Fields(phrase)
	for i := 0; i < maxAdjectiveStrip && len(words) > 1; i++ {
		if !descriptiveAdjectives[words[0]] {
			break
		}
		words = words[1:]
	}
	return strings.TrimSpace(strings.Join(words, " "))
}

func skipArticles(words []string) []string {
	for len(words) > 0 && (words[0] == "a" || words[0] == "an" || words[0] == "the") {
		words = words[1:]
	}
	return words
}

func skipOf(words []string) []string {
	if len(words) > 0 && words[0] == "of" {
		return words[1:]
	}
	return words
}

// singular trims a plural "s" so "handfuls" matches "handful".
func singular(word string) string {
	if len(word) > 3 && strings.HasSuffix(word, "s") {
		return strings.TrimSuffix(word, "s")
	}
	return word
}
