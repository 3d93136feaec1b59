package estimate

import (
	"sort"
	"strings"
)

const (
	usdaSource = "USDA FoodData Central"
	usdaURL    = "https://fdc.nal.usda.gov/"
)

// referenceTable the static calorie reference, keyed by canonical food name.
// Loaded once at init and read-only for the lifetime of the process.
var referenceTable = map[string]ReferenceEntry{
	// spreads, oils, condiments
	"peanut butter": {CaloriesPerUnit: 95, Unit: "tbsp", Serving: "1 tbsp (16g)", Source: usdaSource, SourceURL: usdaURL},
	"almond butter": {CaloriesPerUnit: 98, Unit: "tbsp", Serving: "1 tbsp (16g)", Source: usdaSource, SourceURL: usdaURL},
	"butter":        {CaloriesPerUnit: 102, Unit: "tbsp", Serving: "1 tbsp (14g)", Source: usdaSource, SourceURL: usdaURL},
	"olive oil":     {CaloriesPerUnit: 119, Unit: "tbsp", Serving: "1 tbsp (14g)", Source: usdaSource, SourceURL: usdaURL},
	"mayo":          {CaloriesPerUnit: 94, Unit: "tbsp", Serving: "1 tbsp (14g)", Source: usdaSource, SourceURL: usdaURL},
	"mayonnaise":    {CaloriesPerUnit: 94, Unit: "tbsp", Serving: "1 tbsp (14g)", Source: usdaSource, SourceURL: usdaURL},
	"ketchup":       {CaloriesPerUnit: 17, Unit: "tbsp", Serving: "1 tbsp (17g)", Source: usdaSource, SourceURL: usdaURL},
	"hummus":        {CaloriesPerUnit: 27, Unit: "tbsp", Serving: "1 tbsp (15g)", Source: usdaSource, SourceURL: usdaURL},
	"ranch dressing": {CaloriesPerUnit: 73, Unit: "tbsp", Serving: "1 tbsp (15g)", Source: usdaSource, SourceURL: usdaURL},
	"honey":         {CaloriesPerUnit: 64, Unit: "tbsp", Serving: "1 tbsp (21g)", Source: usdaSource, SourceURL: usdaURL},
	"sugar":         {CaloriesPerUnit: 49, Unit: "tbsp", Serving: "1 tbsp (12.5g)", Source: usdaSource, SourceURL: usdaURL},

	// nuts and snacks
	"almonds":       {CaloriesPerUnit: 529, Unit: "cup", Serving: "1 cup whole (143g)", Source: usdaSource, SourceURL: usdaURL},
	"peanuts":       {CaloriesPerUnit: 828, Unit: "cup", Serving: "1 cup (146g)", Source: usdaSource, SourceURL: usdaURL},
	"walnuts":       {CaloriesPerUnit: 765, Unit: "cup", Serving: "1 cup chopped (117g)", Source: usdaSource, SourceURL: usdaURL},
	"trail mix":     {CaloriesPerUnit: 693, Unit: "cup", Serving: "1 cup (150g)", Source: usdaSource, SourceURL: usdaURL},
	"potato chips":  {CaloriesPerUnit: 152, Unit: "oz", Serving: "1 oz (~15 chips)", Source: usdaSource, SourceURL: usdaURL},
	"chips":         {CaloriesPerUnit: 152, Unit: "oz", Serving: "1 oz (~15 chips)", Source: usdaSource, SourceURL: usdaURL},
	"dark chocolate": {CaloriesPerUnit: 170, Unit: "oz", Serving: "1 oz (28g)", Source: usdaSource, SourceURL: usdaURL},
	"chocolate":     {CaloriesPerUnit: 155, Unit: "oz", Serving: "1 oz (28g)", Source: usdaSource, SourceURL: usdaURL},
	"popcorn":       {CaloriesPerUnit: 31, Unit: "cup", Serving: "1 cup air-popped (8g)", Source: usdaSource, SourceURL: usdaURL},

	// proteins
	"chicken breast": {CaloriesPerUnit: 165, Unit: "serving", Serving: "1 cooked breast (100g)", Source: usdaSource, SourceURL: usdaURL},
	"chicken thigh":  {CaloriesPerUnit: 209, Unit: "serving", Serving: "1 cooked thigh (100g)", Source: usdaSource, SourceURL: usdaURL},
	"ground beef":    {CaloriesPerUnit: 250, Unit: "serving", Serving: "100g cooked (80/20)", Source: usdaSource, SourceURL: usdaURL},
	"steak":          {CaloriesPerUnit: 271, Unit: "serving", Serving: "100g cooked sirloin", Source: usdaSource, SourceURL: usdaURL},
	"salmon":         {CaloriesPerUnit: 208, Unit: "serving", Serving: "100g cooked fillet", Source: usdaSource, SourceURL: usdaURL},
	"tuna":           {CaloriesPerUnit: 120, Unit: "can", Serving: "1 can drained (107g)", Source: usdaSource, SourceURL: usdaURL},
	"egg":            {CaloriesPerUnit: 78, Unit: "piece", Serving: "1 large egg (50g)", Source: usdaSource, SourceURL: usdaURL},
	"bacon":          {CaloriesPerUnit: 43, Unit: "slice", Serving: "1 cooked slice (8g)", Source: usdaSource, SourceURL: usdaURL},
	"tofu":           {CaloriesPerUnit: 94, Unit: "serving", Serving: "100g firm", Source: usdaSource, SourceURL: usdaURL},

	// dairy
	"cheese":       {CaloriesPerUnit: 113, Unit: "oz", Serving: "1 oz cheddar (28g)", Source: usdaSource, SourceURL: usdaURL},
	"cheddar cheese": {CaloriesPerUnit: 113, Unit: "oz", Serving: "1 oz (28g)", Source: usdaSource, SourceURL: usdaURL},
	"milk":         {CaloriesPerUnit: 103, Unit: "cup", Serving: "1 cup 2% (244g)", Source: usdaSource, SourceURL: usdaURL},
	"whole milk":   {CaloriesPerUnit: 149, Unit: "cup", Serving: "1 cup (244g)", Source: usdaSource, SourceURL: usdaURL},
	"almond milk":  {CaloriesPerUnit: 39, Unit: "cup", Serving: "1 cup unsweetened (240g)", Source: usdaSource, SourceURL: usdaURL},
	"greek yogurt": {CaloriesPerUnit: 150, Unit: "cup", Serving: "1 cup plain nonfat (245g)", Source: usdaSource, SourceURL: usdaURL},
	"yogurt":       {CaloriesPerUnit: 150, Unit: "cup", Serving: "1 cup plain (245g)", Source: usdaSource, SourceURL: usdaURL},
	"ice cream":    {CaloriesPerUnit: 273, Unit: "cup", Serving: "1 cup vanilla (132g)", Source: usdaSource, SourceURL: usdaURL},

	// grains and starches
	"white rice": {CaloriesPerUnit: 205, Unit: "cup", Serving: "1 cup cooked (158g)", Source: usdaSource, SourceURL: usdaURL},
	"brown rice": {CaloriesPerUnit: 216, Unit: "cup", Serving: "1 cup cooked (195g)", Source: usdaSource, SourceURL: usdaURL},
	"rice":       {CaloriesPerUnit: 205, Unit: "cup", Serving: "1 cup cooked (158g)", Source: usdaSource, SourceURL: usdaURL},
	"pasta":      {CaloriesPerUnit: 220, Unit: "cup", Serving: "1 cup cooked (140g)", Source: usdaSource, SourceURL: usdaURL},
	"oatmeal":    {CaloriesPerUnit: 158, Unit: "cup", Serving: "1 cup cooked (234g)", Source: usdaSource, SourceURL: usdaURL},
	"granola":    {CaloriesPerUnit: 597, Unit: "cup", Serving: "1 cup (122g)", Source: usdaSource, SourceURL: usdaURL},
	"cereal":     {CaloriesPerUnit: 150, Unit: "cup", Serving: "1 cup (40g)", Source: usdaSource, SourceURL: usdaURL},
	"bread":      {CaloriesPerUnit: 80, Unit: "slice", Serving: "1 slice (30g)", Source: usdaSource, SourceURL: usdaURL},
	"bagel":      {CaloriesPerUnit: 277, Unit: "piece", Serving: "1 medium bagel (105g)", Source: usdaSource, SourceURL: usdaURL},
	"tortilla":   {CaloriesPerUnit: 90, Unit: "piece", Serving: "1 medium flour tortilla (30g)", Source: usdaSource, SourceURL: usdaURL},

	// fruit and vegetables
	"banana":   {CaloriesPerUnit: 105, Unit: "piece", Serving: "1 medium (118g)", Source: usdaSource, SourceURL: usdaURL},
	"apple":    {CaloriesPerUnit: 95, Unit: "piece", Serving: "1 medium (182g)", Source: usdaSource, SourceURL: usdaURL},
	"orange":   {CaloriesPerUnit: 62, Unit: "piece", Serving: "1 medium (131g)", Source: usdaSource, SourceURL: usdaURL},
	"avocado":  {CaloriesPerUnit: 234, Unit: "piece", Serving: "1 whole (150g)", Source: usdaSource, SourceURL: usdaURL},
	"blueberries": {CaloriesPerUnit: 84, Unit: "cup", Serving: "1 cup (148g)", Source: usdaSource, SourceURL: usdaURL},
	"grapes":   {CaloriesPerUnit: 104, Unit: "cup", Serving: "1 cup (151g)", Source: usdaSource, SourceURL: usdaURL},
	"broccoli": {CaloriesPerUnit: 55, Unit: "cup", Serving: "1 cup cooked (156g)", Source: usdaSource, SourceURL: usdaURL},
	"potato":   {CaloriesPerUnit: 161, Unit: "piece", Serving: "1 medium baked (173g)", Source: usdaSource, SourceURL: usdaURL},

	// drinks
	"orange juice": {CaloriesPerUnit: 110, Unit: "cup", Serving: "1 cup (248g)", Source: usdaSource, SourceURL: usdaURL},
	"soda":         {CaloriesPerUnit: 150, Unit: "can", Serving: "12 fl oz can", Source: usdaSource, SourceURL: usdaURL},
	"beer":         {CaloriesPerUnit: 153, Unit: "can", Serving: "12 fl oz regular", Source: usdaSource, SourceURL: usdaURL},
	"wine":         {CaloriesPerUnit: 125, Unit: "glass", Serving: "5 fl oz glass", Source: usdaSource, SourceURL: usdaURL},
	"coffee":       {CaloriesPerUnit: 2, Unit: "cup", Serving: "1 cup black (237g)", Source: usdaSource, SourceURL: usdaURL},
	"latte":        {CaloriesPerUnit: 190, Unit: "cup", Serving: "16 fl oz with 2% milk", Source: usdaSource, SourceURL: usdaURL},

	// supplements and branded products
	"protein powder": {CaloriesPerUnit: 120, Unit: "scoop", Serving: "1 scoop (31g)", Source: usdaSource, SourceURL: usdaURL},
	"protein shake":  {CaloriesPerUnit: 160, Unit: "bottle", Serving: "1 bottle (325ml)", Source: usdaSource, SourceURL: usdaURL},
	"protein bar":    {CaloriesPerUnit: 200, Unit: "piece", Serving: "1 bar (60g)", Source: usdaSource, SourceURL: usdaURL},
	"quest bar":      {CaloriesPerUnit: 190, Unit: "piece", Serving: "1 bar (60g)", Source: "Quest Nutrition label", SourceURL: ""},
	"premier protein": {CaloriesPerUnit: 160, Unit: "bottle", Serving: "1 shake (325ml)", Source: "Premier Protein label", SourceURL: ""},

	// composite placeholder dishes
	"sandwich": {CaloriesPerUnit: 400, Unit: "serving", Serving: "1 typical sandwich", Source: usdaSource, SourceURL: usdaURL, Composite: true},
	"burrito":  {CaloriesPerUnit: 450, Unit: "serving", Serving: "1 typical burrito", Source: usdaSource, SourceURL: usdaURL, Composite: true},
	"salad":    {CaloriesPerUnit: 150, Unit: "serving", Serving: "1 side salad with dressing", Source: usdaSource, SourceURL: usdaURL, Composite: true},
	"pizza":    {CaloriesPerUnit: 285, Unit: "slice", Serving: "1 slice (107g)", Source: usdaSource, SourceURL: usdaURL},
	"french fries": {CaloriesPerUnit: 365, Unit: "serving", Serving: "1 medium serving (117g)", Source: usdaSource, SourceURL: usdaURL},
	"fries":    {CaloriesPerUnit: 365, Unit: "serving", Serving: "1 medium serving (117g)", Source: usdaSource, SourceURL: usdaURL},
}

// referenceNamesByLength all reference keys sorted longest first. The explicit
// sort at init is what makes substring matching favor specific entries over
// generic ones.
var referenceNamesByLength []string

func init() {
	referenceNamesByLength = make([]string, 0, len(referenceTable))
	for name := range referenceTable {
		referenceNamesByLength = append(referenceNamesByLength, name)
	}
	sort.Slice(referenceNamesByLength, func(i, j int) bool {
		if len(referenceNamesByLength[i]) != len(referenceNamesByLength[j]) {
			return len(referenceNamesByLength[i]) > len(referenceNamesByLength[j])
		}
		return referenceNamesByLength[i] < referenceNamesByLength[j]
	})
}

// matchFood looks a food phrase up in the reference table: exact key first, then
// the longest key that is a substring of the phrase. A miss drops the segment.
func matchFood(phrase string) (foodMatch, bool) {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	if phrase == "" {
		return foodMatch{}, false
	}

	if entry, ok := referenceTable[phrase]; ok {
		return foodMatch{name: phrase, entry: entry}, true
	}

	for _, name := range referenceNamesByLength {
		if strings.Contains(phrase, name) {
			return foodMatch{name: name, entry: referenceTable[name]}, true
		}
	}
	return foodMatch{}, false
}
