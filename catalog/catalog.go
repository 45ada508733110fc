package catalog

import (
	"math"
	"strings"
)

// Serving is one selectable portion size for a food.
type Serving struct {
	Label string  `json:"label"`
	Grams float64 `json:"grams"`
}

// Macros is a scaled nutrition total for a logged portion.
type Macros struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Entry is a display-ready catalog food. Base-serving macros are nil
// when the food has no reference match; the Confidence tag tells the
// caller how to present them.
type Entry struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	Tags         []string   `json:"tags"`
	ServingLabel string     `json:"serving_label"`
	ServingGrams float64    `json:"serving_grams"`
	Calories     *int       `json:"calories"`
	Protein      *float64   `json:"protein"`
	Carbs        *float64   `json:"carbs"`
	Fat          *float64   `json:"fat"`
	Servings     []Serving  `json:"servings"`
	Source       string     `json:"source"` // "wafct" | "local"
	SourceCode   string     `json:"source_code,omitempty"`
	Confidence   Confidence `json:"data_confidence"`
}

// BuildEntry derives a catalog entry from the reference table. Base
// serving macros are reference-per-100g scaled to servingGrams, with
// calories rounded to an integer and the other macros to one decimal.
// An unmapped id yields nil macros and Confidence "none". Gram values
// are not validated; a non-positive base serving is a caller error.
func BuildEntry(id, name, category, servingLabel string, servingGrams float64, tags []string) Entry {
	e := Entry{
		ID:           id,
		Name:         name,
		Category:     category,
		Tags:         tags,
		ServingLabel: servingLabel,
		ServingGrams: servingGrams,
		Servings: []Serving{
			{Label: servingLabel, Grams: servingGrams},
			{Label: "Half serving", Grams: math.Round(servingGrams / 2)},
			{Label: "Double serving", Grams: servingGrams * 2},
		},
		Source:     "local",
		Confidence: ConfidenceNone,
	}

	mapping, ok := foodCodes[id]
	if !ok {
		return e
	}
	per100, ok := per100ByCode[mapping.Code]
	if !ok {
		return e
	}

	cal := int(math.Round(per100.Calories * servingGrams / 100))
	protein := round1(per100.Protein * servingGrams / 100)
	carbs := round1(per100.Carbs * servingGrams / 100)
	fat := round1(per100.Fat * servingGrams / 100)

	e.Calories = &cal
	e.Protein = &protein
	e.Carbs = &carbs
	e.Fat = &fat
	e.Source = "wafct"
	e.SourceCode = mapping.Code
	e.Confidence = mapping.Confidence
	return e
}

// Scale computes the total macros for a meal entry: a selected serving
// size times a quantity multiplier. The serving ratio falls back to 1
// when either gram value is missing or zero, and nil base macros count
// as zero; the caller signals "no nutrition data" through the entry's
// Confidence tag rather than through an error here.
func Scale(e Entry, servingGrams, quantity float64) Macros {
	mult := 1.0
	if servingGrams > 0 && e.ServingGrams > 0 {
		mult = servingGrams / e.ServingGrams
	}

	cal := deref(e.Calories)
	return Macros{
		Calories: int(math.Round(cal * mult * quantity)),
		Protein:  round2(derefF(e.Protein) * mult * quantity),
		Carbs:    round2(derefF(e.Carbs) * mult * quantity),
		Fat:      round2(derefF(e.Fat) * mult * quantity),
	}
}

// Search matches foods whose name or any tag contains the query,
// case-insensitive. Empty queries return nothing.
func Search(query string) []Entry {
	trimmed := strings.ToLower(strings.TrimSpace(query))
	if trimmed == "" {
		return nil
	}
	var out []Entry
	for _, f := range foods {
		if strings.Contains(strings.ToLower(f.Name), trimmed) {
			out = append(out, f)
			continue
		}
		for _, tag := range f.Tags {
			if strings.Contains(strings.ToLower(tag), trimmed) {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

// All returns the full catalog in display order. The slice is shared;
// callers must not mutate it.
func All() []Entry {
	return foods
}

// ByID looks up a single catalog food.
func ByID(id string) (Entry, bool) {
	for _, f := range foods {
		if f.ID == id {
			return f, true
		}
	}
	return Entry{}, false
}

func deref(v *int) float64 {
	if v == nil {
		return 0
	}
	return float64(*v)
}

func derefF(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
