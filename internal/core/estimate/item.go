package estimate

import (
	"fmt"
	"math"
)

// calorie-dense threshold: entries at or above this many calories per tbsp/oz
// earn an educational tip.
const denseCaloriesPerUnit = 100

// buildItem computes the calorie estimate for one matched segment and assigns
// its confidence level and note. It also returns an educational tip for
// calorie-dense foods, or "" when none applies.
func buildItem(ps parsedSegment, match foodMatch, quantity float64, unit string) (Item, string) {
	calories := int(math.Round(match.entry.CaloriesPerUnit * quantity))

	item := Item{
		Food:        match.name,
		Calories:    calories,
		Quantity:    quantity,
		Unit:        pluralizeUnit(unit, quantity),
		Calculation: fmt.Sprintf("%s %s × %s cal/%s", formatNumber(quantity), unit, formatNumber(match.entry.CaloriesPerUnit), match.entry.Unit),
		Source:      match.entry.Source,
		SourceURL:   match.entry.SourceURL,
		BaseServing: match.entry.Serving,
		Confidence:  ConfidenceHigh,
	}

	switch {
	case ps.informalWord != "":
		item.Confidence = ConfidenceMedium
		item.Note = informalQuantities[ps.informalWord].note
	case !ps.explicitQuantity:
		item.Confidence = ConfidenceMedium
		item.Note = fmt.Sprintf("Assumed 1 %s", unit)
	}

	tip := ""
	if match.entry.CaloriesPerUnit >= denseCaloriesPerUnit && (unit == "tbsp" || unit == "oz") {
		tip = fmt.Sprintf("%s is calorie-dense at %s cal per %s, so measured portions beat eyeballed ones",
			match.name, formatNumber(match.entry.CaloriesPerUnit), unit)
	}

	return item, tip
}

// pluralizeUnit appends an "s" to the display unit when the quantity is not one
// and the unit does not already end in one.
func pluralizeUnit(unit string, quantity float64) string {
	if quantity != 1 && len(unit) > 0 && unit[len(unit)-1] != 's' {
		return unit + "s"
	}
	return unit
}
