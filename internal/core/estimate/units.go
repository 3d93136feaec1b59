package estimate

import "strings"

// unitSynonyms maps every accepted spelling of a unit to its canonical short form.
var unitSynonyms = map[string]string{
	"tbsp": "tbsp", "tbsps": "tbsp", "tbs": "tbsp", "tablespoon": "tbsp", "tablespoons": "tbsp", "T": "tbsp",
	"tsp": "tsp", "tsps": "tsp", "teaspoon": "tsp", "teaspoons": "tsp", "t": "tsp",
	"cup": "cup", "cups": "cup", "c": "cup",
	"oz": "oz", "ounce": "oz", "ounces": "oz",
	"lb": "lb", "lbs": "lb", "pound": "lb", "pounds": "lb",
	"g": "g", "gram": "g", "grams": "g",
	"slice": "slice", "slices": "slice",
	"piece": "piece", "pieces": "piece",
	"serving": "serving", "servings": "serving",
	"scoop": "scoop", "scoops": "scoop",
	"can": "can", "cans": "can",
	"bottle": "bottle", "bottles": "bottle",
	"glass": "glass", "glasses": "glass",
	"bowl": "bowl", "bowls": "bowl",
}

// conversionFactors fixed factors between compatible unit pairs. Pairs not
// listed pass through unconverted as a deliberate best-effort policy.
var conversionFactors = map[string]map[string]float64{
	"lb":   {"oz": 16},
	"oz":   {"lb": 1.0 / 16, "cup": 1.0 / 8},
	"tbsp": {"tsp": 3, "cup": 1.0 / 16},
	"tsp":  {"tbsp": 1.0 / 3},
	"cup":  {"tbsp": 16, "oz": 8},
}

// canonicalUnit resolves a raw token ("tablespoons", "T") to its canonical form.
func canonicalUnit(token string) (string, bool) {
	if u, ok := unitSynonyms[token]; ok {
		return u, true
	}
	if u, ok := unitSynonyms[strings.ToLower(token)]; ok {
		return u, true
	}
	return "", false
}

// convertQuantity converts between compatible units via the fixed factor table.
// Returns the input unchanged when no factor is known.
func convertQuantity(quantity float64, from, to string) (float64, string) {
	if from == to {
		return quantity, to
	}
	if factors, ok := conversionFactors[from]; ok {
		if f, ok := factors[to]; ok {
			return quantity * f, to
		}
	}
	return quantity, from
}

// reconcileUnit converts a parsed quantity/unit pair into the unit the matched
// reference entry is defined in. An informal word's implied unit substitutes for
// a missing explicit unit; a missing unit otherwise assumes the entry's own.
func reconcileUnit(quantity float64, unit, informalWord, targetUnit string) (float64, string) {
	if unit == "" && informalWord != "" {
		if iq, ok := informalQuantities[informalWord]; ok {
			unit = iq.unit
		}
	}
	if unit == "" {
		return quantity, targetUnit
	}
	return convertQuantity(quantity, unit, targetUnit)
}
