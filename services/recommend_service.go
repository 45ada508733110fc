package services

import (
	"fmt"
	"math"
	"sort"

	"github.com/daves-impact/MetaCal/catalog"
)

// RecommendWeights are the scoring knobs of the food recommender. The
// defaults reproduce the values the product shipped with; they are
// heuristic tuning parameters, not derived from nutrition science.
type RecommendWeights struct {
	MealCalMin float64 // lower clamp of the ideal next-meal size
	MealCalMax float64 // upper clamp of the ideal next-meal size
	BaseFit    float64 // base score before the distance-to-ideal penalty

	FitBonus            float64 // added when a food fits the remaining budget
	OverPenaltyPerKcal  float64 // penalty rate when a food exceeds the budget
	OverPenaltyCap      float64 // ceiling on the overage penalty
	SpentPenaltyPerKcal float64 // per-kcal penalty once the target is reached

	LoseProteinDensity float64 // reward for protein/calorie density on "lose"
	LoseFatPenalty     float64 // per-gram fat penalty on "lose"
	LoseLightCalories  float64 // calorie ceiling for the "Lower-calorie option" reason

	GainProteinDensity float64
	GainCarbBonus      float64 // per-gram carb reward on "gain"
	GainCalorieBonus   float64 // per-kcal reward on "gain"
	GainCalorieCap     float64 // calorie cap for the per-kcal reward

	MaintainProteinDensity float64
	MaintainProteinBonus   float64 // per-gram protein reward on "maintain"
	MaintainProteinCap     float64 // grams of protein the reward saturates at

	MaxResults int
}

// DefaultRecommendWeights returns the shipped tuning.
func DefaultRecommendWeights() RecommendWeights {
	return RecommendWeights{
		MealCalMin:          120,
		MealCalMax:          600,
		BaseFit:             120,
		FitBonus:            35,
		OverPenaltyPerKcal:  0.4,
		OverPenaltyCap:      80,
		SpentPenaltyPerKcal: 0.55,

		LoseProteinDensity: 900,
		LoseFatPenalty:     1.8,
		LoseLightCalories:  280,

		GainProteinDensity: 600,
		GainCarbBonus:      0.8,
		GainCalorieBonus:   0.08,
		GainCalorieCap:     700,

		MaintainProteinDensity: 700,
		MaintainProteinBonus:   1.2,
		MaintainProteinCap:     35,

		MaxResults: 4,
	}
}

// Recommendation is a scored catalog food with a display reason.
type Recommendation struct {
	catalog.Entry
	Reason string  `json:"reason"`
	Score  float64 `json:"score"`
}

// Recommend scores every catalog food against the remaining calorie
// budget and the user's goal, then greedily picks the top items with
// distinct categories. remainingCalories is nil when the user has no
// computed target yet, in which case only the goal weighting applies.
// Foods without calorie data are never recommended. Pure and
// deterministic for the same inputs.
func Recommend(foods []catalog.Entry, remainingCalories *int, goal string, w RecommendWeights) []Recommendation {
	scored := make([]Recommendation, 0, len(foods))
	for _, food := range foods {
		if food.Calories == nil || *food.Calories <= 0 {
			continue
		}
		calories := float64(*food.Calories)
		protein := derefFloat(food.Protein)
		carbs := derefFloat(food.Carbs)
		fat := derefFloat(food.Fat)
		proteinDensity := protein / calories

		score := 0.0
		reason := "Balanced option"

		if remainingCalories != nil {
			remaining := float64(*remainingCalories)
			if remaining > 0 {
				targetMeal := math.Min(w.MealCalMax, math.Max(w.MealCalMin, remaining))
				score += w.BaseFit - math.Abs(calories-targetMeal)
				if calories <= remaining {
					score += w.FitBonus
					reason = fmt.Sprintf("Fits %d kcal left", *remainingCalories)
				} else {
					score -= math.Min(w.OverPenaltyCap, (calories-remaining)*w.OverPenaltyPerKcal)
				}
			} else {
				score -= calories * w.SpentPenaltyPerKcal
				reason = "Lighter pick after target reached"
			}
		}

		switch goal {
		case "lose":
			score += proteinDensity * w.LoseProteinDensity
			score -= fat * w.LoseFatPenalty
			if calories <= w.LoseLightCalories {
				reason = "Lower-calorie option"
			}
		case "gain":
			score += proteinDensity * w.GainProteinDensity
			score += carbs * w.GainCarbBonus
			score += math.Min(w.GainCalorieCap, calories) * w.GainCalorieBonus
			reason = "Energy-dense option for gain"
		default:
			score += proteinDensity * w.MaintainProteinDensity
			score += math.Min(protein, w.MaintainProteinCap) * w.MaintainProteinBonus
		}

		scored = append(scored, Recommendation{Entry: food, Reason: reason, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	picked := make([]Recommendation, 0, w.MaxResults)
	usedCategories := make(map[string]bool)
	for _, rec := range scored {
		if len(picked) >= w.MaxResults {
			break
		}
		if rec.Category != "" && usedCategories[rec.Category] {
			continue
		}
		if rec.Category != "" {
			usedCategories[rec.Category] = true
		}
		picked = append(picked, rec)
	}
	return picked
}

func derefFloat(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
