// Package estimate turns a freeform meal description into a calorie estimate
// without calling any external service. The pipeline is pure and single pass:
// lexical normalization, segment splitting, segment parsing, reference-table
// matching, unit reconciliation, item building, deduplication, aggregation.
// Every call allocates its own working state, so concurrent use needs no
// locking.
package estimate

import "strings"

// Estimate parses mealText and returns the calorie estimate. It never fails:
// malformed input degrades to fewer (or zero) items, and empty or
// whitespace-only input yields the zero-valued result shape.
func Estimate(mealText string) *Result {
	text := strings.ToLower(strings.TrimSpace(mealText))
	if text == "" {
		return emptyResult()
	}

	normalized := normalizeQuantities(text)
	enumerated := hasIngredientList(normalized)

	var (
		items    []Item
		tips     []string
		tipsSeen = make(map[string]bool)
	)

	for _, segment := range splitSegments(normalized) {
		ps := parseSegment(segment)
		if ps.food == "" {
			continue
		}

		match, ok := matchFood(ps.food)
		if !ok {
			// Unrecognized food: dropped, never guessed.
			continue
		}
		if match.entry.Composite && enumerated {
			// Placeholder dishes only apply when no ingredients were listed.
			continue
		}

		quantity, unit := reconcileUnit(ps.quantity, ps.unit, ps.informalWord, match.entry.Unit)
		item, tip := buildItem(ps, match, quantity, unit)
		if tip != "" && !tipsSeen[tip] {
			tipsSeen[tip] = true
			tips = append(tips, tip)
		}
		items = append(items, item)
	}

	items = dedupeItems(items)

	result := &Result{
		TotalCalories:    0,
		Items:            items,
		Tips:             tips,
		Confidence:       overallConfidence(len(items)),
		MatchedFoodCount: len(items),
	}
	if result.Items == nil {
		result.Items = []Item{}
	}
	if result.Tips == nil {
		result.Tips = []string{}
	}
	for _, it := range result.Items {
		result.TotalCalories += it.Calories
	}
	return result
}

// overallConfidence derives the aggregate signal from the surviving item count.
func overallConfidence(matched int) ConfidenceLevel {
	switch {
	case matched >= 3:
		return ConfidenceHigh
	case matched >= 1:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

func emptyResult() *Result {
	return &Result{
		Items:      []Item{},
		Tips:       []string{},
		Confidence: ConfidenceLow,
	}
}
