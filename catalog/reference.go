// Package catalog holds the static Nigerian food catalog and the pure
// computations over it: building display-ready entries from the WAFCT
// per-100g reference table, scaling servings, and name/tag search.
// Everything here is immutable after init and safe to use from any
// goroutine.
package catalog

// Confidence tags how trustworthy an entry's macros are. It is an
// informational signal for the caller, never an error.
type Confidence string

const (
	ConfidenceExact Confidence = "exact" // mapped item is nutritionally identical to the reference
	ConfidenceProxy Confidence = "proxy" // approximated from the nearest reference ingredient
	ConfidenceNone  Confidence = "none"  // no reference match; macros unavailable
)

// NutrientRecord is a per-100g macro entry from the West African Food
// Composition Table. Loaded once, never mutated.
type NutrientRecord struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// refMapping links a catalog food id to its WAFCT code plus how close
// the match is.
type refMapping struct {
	Code       string
	Confidence Confidence
}

// per100ByCode is the WAFCT reference table used by the catalog.
var per100ByCode = map[string]NutrientRecord{
	"02_041": {Calories: 165, Protein: 1, Carbs: 38.7, Fat: 0.4},
	"02_097": {Calories: 97, Protein: 1.8, Carbs: 19.6, Fat: 0.3},
	"01_111": {Calories: 130, Protein: 2.3, Carbs: 26.8, Fat: 1.1},
	"01_164": {Calories: 143, Protein: 3.3, Carbs: 18.6, Fat: 6},
	"01_158": {Calories: 157, Protein: 3.9, Carbs: 22, Fat: 5.6},
	"01_135": {Calories: 115, Protein: 2.3, Carbs: 25.5, Fat: 0.2},
	"01_162": {Calories: 173, Protein: 3.8, Carbs: 24.8, Fat: 6.2},
	"01_152": {Calories: 138, Protein: 3.1, Carbs: 29.1, Fat: 0.6},
	"03_007": {Calories: 122, Protein: 8.5, Carbs: 18.3, Fat: 0.5},
	"03_144": {Calories: 177, Protein: 7.2, Carbs: 16.7, Fat: 8.2},
	"03_154": {Calories: 253, Protein: 12.6, Carbs: 27.7, Fat: 8.9},
	"14_008": {Calories: 166, Protein: 6.6, Carbs: 5.3, Fat: 12.5},
	"14_028": {Calories: 203, Protein: 6.3, Carbs: 3.1, Fat: 17.7},
	"14_019": {Calories: 74, Protein: 3.4, Carbs: 2.6, Fat: 5.2},
	"14_004": {Calories: 168, Protein: 6.7, Carbs: 3.5, Fat: 13.6},
	"14_025": {Calories: 264, Protein: 6.4, Carbs: 4.6, Fat: 23.7},
	"14_024": {Calories: 96, Protein: 2.7, Carbs: 2.8, Fat: 8},
	"14_005": {Calories: 127, Protein: 5.7, Carbs: 3.8, Fat: 9.5},
	"14_003": {Calories: 195, Protein: 7.2, Carbs: 4.2, Fat: 16.2},
	"14_012": {Calories: 81, Protein: 5.4, Carbs: 2.1, Fat: 5.4},
	"07_118": {Calories: 152, Protein: 30.7, Carbs: 0, Fat: 3.2},
	"07_085": {Calories: 185, Protein: 31.7, Carbs: 0, Fat: 6.4},
	"09_108": {Calories: 121, Protein: 19.9, Carbs: 0, Fat: 4.6},
	"07_115": {Calories: 202, Protein: 33.6, Carbs: 0, Fat: 7.5},
	"07_117": {Calories: 136, Protein: 27.6, Carbs: 0, Fat: 2.9},
	"08_002": {Calories: 150, Protein: 13.5, Carbs: 0.2, Fat: 10.6},
	"02_078": {Calories: 136, Protein: 1.9, Carbs: 28.7, Fat: 0.2},
	"02_082": {Calories: 262, Protein: 3.6, Carbs: 39.6, Fat: 8},
	"02_084": {Calories: 375, Protein: 2.1, Carbs: 51.7, Fat: 16.9},
	"02_058": {Calories: 137, Protein: 1.3, Carbs: 31.3, Fat: 0.2},
	"01_046": {Calories: 249, Protein: 7.5, Carbs: 50.5, Fat: 1.3},
	"01_154": {Calories: 48, Protein: 0.9, Carbs: 9.9, Fat: 0.4},
	"01_188": {Calories: 479, Protein: 6.2, Carbs: 64.9, Fat: 21.2},
	"02_065": {Calories: 151, Protein: 1.8, Carbs: 30.3, Fat: 1.1},
	"12_013": {Calories: 34, Protein: 0.3, Carbs: 7.9, Fat: 0.1},
	"01_167": {Calories: 62, Protein: 1.2, Carbs: 12.6, Fat: 0.6},
}

// foodCodes maps catalog food ids to their WAFCT reference codes.
// Dishes without a direct WAFCT entry point at their closest single
// ingredient and are tagged proxy.
var foodCodes = map[string]refMapping{
	"ng-eba":         {Code: "02_041", Confidence: ConfidenceProxy},
	"ng-fufu":        {Code: "02_041", Confidence: ConfidenceProxy},
	"ng-pounded-yam": {Code: "02_097", Confidence: ConfidenceProxy},
	"ng-semo":        {Code: "01_111", Confidence: ConfidenceProxy},
	"ng-amala":       {Code: "02_097", Confidence: ConfidenceProxy},

	"ng-jollof-rice":  {Code: "01_164", Confidence: ConfidenceProxy},
	"ng-fried-rice":   {Code: "01_158", Confidence: ConfidenceProxy},
	"ng-white-rice":   {Code: "01_135", Confidence: ConfidenceExact},
	"ng-coconut-rice": {Code: "01_162", Confidence: ConfidenceProxy},
	"ng-ofada-rice":   {Code: "01_152", Confidence: ConfidenceProxy},

	"ng-beans":      {Code: "03_007", Confidence: ConfidenceExact},
	"ng-ewa-agoyin": {Code: "03_144", Confidence: ConfidenceProxy},
	"ng-moi-moi":    {Code: "03_007", Confidence: ConfidenceProxy},
	"ng-akara":      {Code: "03_154", Confidence: ConfidenceProxy},

	"ng-egusi":         {Code: "14_008", Confidence: ConfidenceProxy},
	"ng-ogbono":        {Code: "14_028", Confidence: ConfidenceProxy},
	"ng-okra":          {Code: "14_019", Confidence: ConfidenceProxy},
	"ng-edikang-ikong": {Code: "14_004", Confidence: ConfidenceProxy},
	"ng-afang":         {Code: "14_025", Confidence: ConfidenceProxy},
	"ng-banga":         {Code: "14_024", Confidence: ConfidenceProxy},
	"ng-iro":           {Code: "14_005", Confidence: ConfidenceProxy},
	"ng-tomato-stew":   {Code: "14_003", Confidence: ConfidenceProxy},
	"ng-pepper-soup":   {Code: "14_012", Confidence: ConfidenceProxy},

	"ng-chicken": {Code: "07_118", Confidence: ConfidenceProxy},
	"ng-beef":    {Code: "07_085", Confidence: ConfidenceExact},
	"ng-fish":    {Code: "09_108", Confidence: ConfidenceProxy},
	"ng-goat":    {Code: "07_115", Confidence: ConfidenceExact},
	"ng-turkey":  {Code: "07_117", Confidence: ConfidenceProxy},
	"ng-egg":     {Code: "08_002", Confidence: ConfidenceExact},

	"ng-boiled-yam":      {Code: "02_078", Confidence: ConfidenceExact},
	"ng-fried-yam":       {Code: "02_082", Confidence: ConfidenceExact},
	"ng-plantain-fried":  {Code: "02_084", Confidence: ConfidenceExact},
	"ng-plantain-boiled": {Code: "02_058", Confidence: ConfidenceExact},

	"ng-bread":     {Code: "01_046", Confidence: ConfidenceExact},
	"ng-ogi":       {Code: "01_154", Confidence: ConfidenceProxy},
	"ng-chin-chin": {Code: "01_188", Confidence: ConfidenceProxy},
	"ng-puff-puff": {Code: "01_188", Confidence: ConfidenceProxy},
	"ng-boli":      {Code: "02_065", Confidence: ConfidenceProxy},

	"ng-zobo": {Code: "12_013", Confidence: ConfidenceProxy},
	"ng-kunu": {Code: "01_167", Confidence: ConfidenceProxy},
}

// ReferenceByCode exposes a WAFCT record for diagnostics and tests.
func ReferenceByCode(code string) (NutrientRecord, bool) {
	rec, ok := per100ByCode[code]
	return rec, ok
}
