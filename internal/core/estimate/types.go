package estimate

// ConfidenceLevel coarse low/medium/high signal for an item or a whole estimate
type ConfidenceLevel string

const (
	ConfidenceLow    ConfidenceLevel = "low"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceHigh   ConfidenceLevel = "high"
)

// ReferenceEntry one food in the static calorie reference table
type ReferenceEntry struct {
	CaloriesPerUnit float64
	Unit            string
	Serving         string
	Source          string
	SourceURL       string
	// Composite marks multi-ingredient placeholder entries ("sandwich") that are
	// skipped when the input already enumerates ingredients.
	Composite bool
}

// Item one matched, deduplicated food mention with its calorie estimate
type Item struct {
	Food        string          `json:"food"`
	Calories    int             `json:"calories"`
	Quantity    float64         `json:"quantity"`
	Unit        string          `json:"unit"`
	Calculation string          `json:"calculation"`
	Source      string          `json:"source"`
	SourceURL   string          `json:"source_url,omitempty"`
	BaseServing string          `json:"base_serving"`
	Confidence  ConfidenceLevel `json:"confidence"`
	Note        string          `json:"note,omitempty"`
}

// Result the terminal artifact of one estimate call
type Result struct {
	TotalCalories    int             `json:"total_calories"`
	Items            []Item          `json:"items"`
	Tips             []string        `json:"tips"`
	Confidence       ConfidenceLevel `json:"confidence"`
	MatchedFoodCount int             `json:"matched_food_count"`
}

// QuantityOption one clarification choice with its quantity multiplier
type QuantityOption struct {
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
}

// VagueQuantity a clarification prompt for a vague portion phrase
type VagueQuantity struct {
	MatchedFood string           `json:"matched_food"`
	Question    string           `json:"question"`
	Options     []QuantityOption `json:"options"`
}

// parsedSegment the intermediate product of parsing one food mention
type parsedSegment struct {
	raw              string
	quantity         float64
	unit             string
	food             string
	explicitQuantity bool
	informalWord     string
}

// foodMatch transient join between a parsed segment and the reference table
type foodMatch struct {
	name  string
	entry ReferenceEntry
}
