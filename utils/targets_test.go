package utils_test

import (
	"testing"

	"github.com/daves-impact/MetaCal/utils"

	"github.com/stretchr/testify/assert"
)

func TestComputeTargetsMaintain(t *testing.T) {
	got := utils.ComputeTargets(utils.TargetInput{
		WeightKg:           70,
		HeightCm:           170,
		Age:                25,
		Gender:             "male",
		Goal:               "maintain",
		ActivityMultiplier: 1.55,
	})

	// BMR 1642.5, TDEE 2545.875
	assert.Equal(t, utils.Targets{Calories: 2546, Protein: 112, Carbs: 399, Fat: 56}, got)
}

func TestComputeTargetsGoalAdjustment(t *testing.T) {
	base := utils.TargetInput{
		WeightKg: 70, HeightCm: 170, Age: 25,
		Gender: "male", ActivityMultiplier: 1.55,
	}

	maintain := base
	maintain.Goal = "maintain"
	lose := base
	lose.Goal = "lose"
	gain := base
	gain.Goal = "gain"

	m := utils.ComputeTargets(maintain)
	assert.Equal(t, m.Calories-300, utils.ComputeTargets(lose).Calories)
	assert.Equal(t, m.Calories+300, utils.ComputeTargets(gain).Calories)
}

func TestComputeTargetsFemaleOffset(t *testing.T) {
	got := utils.ComputeTargets(utils.TargetInput{
		WeightKg:           60,
		HeightCm:           165,
		Age:                30,
		Gender:             "Female",
		Goal:               "maintain",
		ActivityMultiplier: 1.55,
	})

	assert.Equal(t, utils.Targets{Calories: 2046, Protein: 96, Carbs: 308, Fat: 48}, got)
}

func TestComputeTargetsCalorieFloor(t *testing.T) {
	got := utils.ComputeTargets(utils.TargetInput{
		WeightKg:           30,
		HeightCm:           120,
		Age:                80,
		Gender:             "female",
		Goal:               "lose",
		ActivityMultiplier: 1.2,
	})

	assert.Equal(t, 1200, got.Calories)
	assert.Equal(t, 198, got.Carbs)
}

func TestComputeTargetsDefaultsForEmptyProfile(t *testing.T) {
	got := utils.ComputeTargets(utils.TargetInput{})

	// Falls back to 70kg / 170cm / 25y / 1.55 and the male offset.
	assert.Equal(t, utils.Targets{Calories: 2546, Protein: 112, Carbs: 399, Fat: 56}, got)
	assert.GreaterOrEqual(t, got.Calories, 1200)
}

func TestComputeTargetsCarbsNeverNegative(t *testing.T) {
	got := utils.ComputeTargets(utils.TargetInput{
		WeightKg:           200,
		HeightCm:           100,
		Age:                100,
		Gender:             "male",
		Goal:               "lose",
		ActivityMultiplier: 1.2,
	})

	assert.Equal(t, 0, got.Carbs)
	assert.GreaterOrEqual(t, got.Calories, 1200)
}

func TestActivityMultipliers(t *testing.T) {
	assert.Equal(t, 1.2, utils.ActivityMultipliers["sedentary"])
	assert.Equal(t, 1.9, utils.ActivityMultipliers["very_active"])
	assert.Len(t, utils.ActivityMultipliers, 5)
}
