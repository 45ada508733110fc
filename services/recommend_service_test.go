package services_test

import (
	"strings"
	"testing"

	"github.com/daves-impact/MetaCal/catalog"
	"github.com/daves-impact/MetaCal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendPicksDistinctCategories(t *testing.T) {
	remaining := 500
	got := services.Recommend(catalog.All(), &remaining, "maintain", services.DefaultRecommendWeights())

	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), 4)

	seen := make(map[string]bool)
	for _, rec := range got {
		assert.False(t, seen[rec.Category], "category %q repeated", rec.Category)
		seen[rec.Category] = true
	}
}

func TestRecommendFitReason(t *testing.T) {
	remaining := 500
	got := services.Recommend(catalog.All(), &remaining, "maintain", services.DefaultRecommendWeights())

	require.NotEmpty(t, got)
	for _, rec := range got {
		require.NotNil(t, rec.Calories)
		if *rec.Calories <= remaining {
			assert.Equal(t, "Fits 500 kcal left", rec.Reason)
		}
	}
}

func TestRecommendAfterTargetReached(t *testing.T) {
	remaining := 0
	got := services.Recommend(catalog.All(), &remaining, "maintain", services.DefaultRecommendWeights())

	require.NotEmpty(t, got)
	for _, rec := range got {
		assert.Equal(t, "Lighter pick after target reached", rec.Reason)
	}
}

func TestRecommendLoseGoalFlagsLightFoods(t *testing.T) {
	remaining := 400
	got := services.Recommend(catalog.All(), &remaining, "lose", services.DefaultRecommendWeights())

	require.NotEmpty(t, got)
	for _, rec := range got {
		require.NotNil(t, rec.Calories)
		if float64(*rec.Calories) <= 280 {
			assert.Equal(t, "Lower-calorie option", rec.Reason)
		}
	}
}

func TestRecommendGainGoalReason(t *testing.T) {
	remaining := 800
	got := services.Recommend(catalog.All(), &remaining, "gain", services.DefaultRecommendWeights())

	require.NotEmpty(t, got)
	for _, rec := range got {
		assert.Equal(t, "Energy-dense option for gain", rec.Reason)
	}
}

func TestRecommendWithoutTarget(t *testing.T) {
	got := services.Recommend(catalog.All(), nil, "maintain", services.DefaultRecommendWeights())

	require.NotEmpty(t, got)
	for _, rec := range got {
		assert.False(t, strings.Contains(rec.Reason, "kcal left"))
	}
}

func TestRecommendSkipsFoodsWithoutCalories(t *testing.T) {
	unmapped := catalog.BuildEntry("ng-suya", "Suya", "Protein", "1 stick (80g)", 80, nil)
	remaining := 500

	got := services.Recommend([]catalog.Entry{unmapped}, &remaining, "maintain", services.DefaultRecommendWeights())
	assert.Empty(t, got)
}

func TestRecommendDeterministic(t *testing.T) {
	remaining := 350
	first := services.Recommend(catalog.All(), &remaining, "lose", services.DefaultRecommendWeights())
	second := services.Recommend(catalog.All(), &remaining, "lose", services.DefaultRecommendWeights())

	assert.Equal(t, first, second)
}

func TestRecommendHonorsMaxResults(t *testing.T) {
	w := services.DefaultRecommendWeights()
	w.MaxResults = 2

	remaining := 500
	got := services.Recommend(catalog.All(), &remaining, "maintain", w)
	assert.Len(t, got, 2)
}
