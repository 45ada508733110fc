package services

import (
	"errors"
	"time"

	"github.com/daves-impact/MetaCal/config"
	"github.com/daves-impact/MetaCal/models"
	"github.com/daves-impact/MetaCal/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileInput carries the onboarding/settings fields. Zero values
// leave the stored field untouched except Goal/ActivityKey, which are
// replaced when present.
type ProfileInput struct {
	Name               string  `json:"name"`
	Gender             string  `json:"gender"`
	Age                int     `json:"age"`
	HeightCm           float64 `json:"height_cm"`
	CurrentWeightKg    float64 `json:"current_weight_kg"`
	TargetWeightKg     float64 `json:"target_weight_kg"`
	Goal               string  `json:"goal"`
	ActivityKey        string  `json:"activity_key"`
	ActivityMultiplier float64 `json:"activity_multiplier"`
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}
	return profileResponse(&user), nil
}

// UpdateUserProfile applies the input, recomputes targets and BMI, and
// records today's weight sample when the current weight changed
// (same-day samples overwrite). The caller gets the refreshed profile.
func UpdateUserProfile(userID uint, in ProfileInput, hub *RealtimeHub) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Gender != "" {
		user.Gender = in.Gender
	}
	if in.Age > 0 {
		user.Age = in.Age
	}
	if in.HeightCm > 0 {
		user.HeightCm = in.HeightCm
	}
	weightChanged := in.CurrentWeightKg > 0 && in.CurrentWeightKg != user.CurrentWeightKg
	if in.CurrentWeightKg > 0 {
		user.CurrentWeightKg = in.CurrentWeightKg
	}
	if in.TargetWeightKg > 0 {
		user.TargetWeightKg = in.TargetWeightKg
	}
	if in.Goal != "" {
		user.Goal = in.Goal
	}
	if in.ActivityKey != "" {
		user.ActivityKey = in.ActivityKey
	}
	switch {
	case in.ActivityMultiplier > 0:
		user.ActivityMultiplier = in.ActivityMultiplier
	case in.ActivityKey != "":
		if mult, ok := utils.ActivityMultipliers[in.ActivityKey]; ok {
			user.ActivityMultiplier = mult
		}
	}

	targets := utils.ComputeTargets(utils.TargetInput{
		WeightKg:           user.CurrentWeightKg,
		HeightCm:           user.HeightCm,
		Age:                user.Age,
		Gender:             user.Gender,
		Goal:               user.Goal,
		ActivityMultiplier: user.ActivityMultiplier,
	})
	user.TargetCalories = targets.Calories
	user.TargetProtein = targets.Protein
	user.TargetCarbs = targets.Carbs
	user.TargetFat = targets.Fat

	if bmi, err := utils.CalculateBMI(user.HeightCm, user.CurrentWeightKg); err == nil {
		user.BMI = bmi
	}

	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}

	if weightChanged {
		sample, err := RecordWeight(userID, user.CurrentWeightKg, DateKey(time.Now()))
		if err != nil {
			return nil, err
		}
		if hub != nil {
			hub.Broadcast(userID, "weight.updated", sample)
		}
	}

	return profileResponse(&user), nil
}

// RecordWeight upserts the weight sample for one calendar day.
func RecordWeight(userID uint, weightKg float64, dateKey string) (*models.WeightSample, error) {
	if weightKg <= 0 {
		return nil, errors.New("weight must be positive")
	}
	sample := &models.WeightSample{
		UserID:   userID,
		DateKey:  dateKey,
		WeightKg: weightKg,
	}
	err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"weight_kg", "updated_at"}),
	}).Create(sample).Error
	if err != nil {
		return nil, err
	}
	return sample, nil
}

func ListWeightHistory(userID uint) ([]models.WeightSample, error) {
	var samples []models.WeightSample
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date_key ASC").
		Find(&samples).Error
	return samples, err
}

// profileResponse shapes the user row for the API: derived fields come
// back as null until they have been computed.
func profileResponse(user *models.User) map[string]interface{} {
	out := map[string]interface{}{
		"id":                   user.ID,
		"email":                user.Email,
		"name":                 user.Name,
		"gender":               user.Gender,
		"age":                  user.Age,
		"height_cm":            user.HeightCm,
		"current_weight_kg":    user.CurrentWeightKg,
		"target_weight_kg":     user.TargetWeightKg,
		"goal":                 user.Goal,
		"activity_key":         user.ActivityKey,
		"activity_multiplier":  user.ActivityMultiplier,
		"streak_count":         user.StreakCount,
		"streak_last_date_key": user.StreakLastDateKey,
		"targets":              nil,
		"bmi":                  nil,
		"bmi_category":         nil,
	}
	if user.TargetCalories > 0 {
		out["targets"] = utils.Targets{
			Calories: user.TargetCalories,
			Protein:  user.TargetProtein,
			Carbs:    user.TargetCarbs,
			Fat:      user.TargetFat,
		}
	}
	if user.BMI > 0 {
		out["bmi"] = user.BMI
		out["bmi_category"] = utils.BMICategory(user.BMI)
	}
	return out
}
