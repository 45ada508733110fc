package utils

import (
	"math"
	"strings"
)

// ActivityMultipliers maps activity level keys to their TDEE multiplier.
// This is the single source of truth for valid activity levels; profile
// updates resolve the multiplier from here when only a key is supplied.
var ActivityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

const (
	defaultWeightKg   = 70
	defaultHeightCm   = 170
	defaultAgeYears   = 25
	defaultMultiplier = 1.55
	calorieFloor      = 1200
)

// TargetInput is the profile snapshot the calculator needs. Missing or
// non-positive values fall back to defaults so an incomplete onboarding
// profile still produces a plan instead of crashing.
type TargetInput struct {
	WeightKg           float64
	HeightCm           float64
	Age                int
	Gender             string
	Goal               string // "lose" | "gain" | "maintain"
	ActivityMultiplier float64
}

// Targets is a daily calorie and macro plan, all values rounded.
type Targets struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// ComputeTargets derives the daily plan from a profile: Mifflin-St Jeor
// BMR scaled by the activity multiplier, adjusted ±300 kcal for the
// lose/gain goals, floored at 1200 kcal. Protein and fat come from body
// weight (1.6 g/kg and 0.8 g/kg); carbs absorb the remaining calories,
// floored at zero.
func ComputeTargets(in TargetInput) Targets {
	weight := in.WeightKg
	if weight <= 0 {
		weight = defaultWeightKg
	}
	height := in.HeightCm
	if height <= 0 {
		height = defaultHeightCm
	}
	age := float64(in.Age)
	if age <= 0 {
		age = defaultAgeYears
	}

	bmr := 10*weight + 6.25*height - 5*age
	if strings.Contains(strings.ToLower(in.Gender), "female") {
		bmr -= 161
	} else {
		bmr += 5
	}

	mult := in.ActivityMultiplier
	if mult <= 0 {
		mult = defaultMultiplier
	}
	tdee := bmr * mult

	adjust := 0.0
	switch in.Goal {
	case "lose":
		adjust = -300
	case "gain":
		adjust = 300
	}

	calories := int(math.Round(tdee + adjust))
	if calories < calorieFloor {
		calories = calorieFloor
	}

	protein := int(math.Round(1.6 * weight))
	fat := int(math.Round(0.8 * weight))
	carbCalories := float64(calories - protein*4 - fat*9)
	carbs := int(math.Round(carbCalories / 4))
	if carbs < 0 {
		carbs = 0
	}

	return Targets{Calories: calories, Protein: protein, Carbs: carbs, Fat: fat}
}
