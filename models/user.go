package models

import (
	"gorm.io/gorm"
)

// User holds the account plus the onboarding profile. Derived fields
// (targets, BMI, streak cache) are recomputed by the user service on
// every profile change; zero means "not computed yet".
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Name     string `json:"name"`

	Gender             string  `gorm:"size:16" json:"gender"` // "male" | "female"
	Age                int     `json:"age"`
	HeightCm           float64 `json:"height_cm"`
	CurrentWeightKg    float64 `json:"current_weight_kg"`
	TargetWeightKg     float64 `json:"target_weight_kg"`
	Goal               string  `gorm:"size:16" json:"goal"` // "lose" | "gain" | "maintain"
	ActivityKey        string  `gorm:"size:16" json:"activity_key"`
	ActivityMultiplier float64 `json:"activity_multiplier"`

	TargetCalories int     `json:"target_calories"`
	TargetProtein  int     `json:"target_protein"`
	TargetCarbs    int     `json:"target_carbs"`
	TargetFat      int     `json:"target_fat"`
	BMI            float64 `json:"bmi"`

	StreakCount       int    `json:"streak_count"`
	StreakLastDateKey string `gorm:"size:10" json:"streak_last_date_key"`
}
