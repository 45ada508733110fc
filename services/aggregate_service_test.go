package services_test

import (
	"testing"
	"time"

	"github.com/daves-impact/MetaCal/models"
	"github.com/daves-impact/MetaCal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func meal(dateKey string, calories int, protein, carbs, fat float64) models.Meal {
	return models.Meal{
		DateKey:  dateKey,
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
	}
}

func TestTotalsForDayIsOrderIndependent(t *testing.T) {
	meals := []models.Meal{
		meal("2026-08-30", 330, 2.0, 77.4, 0.8),
		meal("2026-08-30", 286, 6.6, 37.2, 12.0),
		meal("2026-08-30", 182, 36.8, 0, 3.8),
		meal("2026-08-29", 900, 40, 90, 30),
	}
	reversed := make([]models.Meal, len(meals))
	for i, m := range meals {
		reversed[len(meals)-1-i] = m
	}

	got := services.TotalsForDay(meals, "2026-08-30")
	assert.Equal(t, 798, got.Calories)
	assert.InDelta(t, 45.4, got.Protein, 1e-9)
	assert.InDelta(t, 114.6, got.Carbs, 1e-9)
	assert.InDelta(t, 16.6, got.Fat, 1e-9)

	back := services.TotalsForDay(reversed, "2026-08-30")
	assert.Equal(t, got.Calories, back.Calories)
	assert.InDelta(t, got.Protein, back.Protein, 1e-9)
	assert.InDelta(t, got.Carbs, back.Carbs, 1e-9)
	assert.InDelta(t, got.Fat, back.Fat, 1e-9)
}

func TestTotalsForDayEmptyDay(t *testing.T) {
	meals := []models.Meal{meal("2026-08-29", 500, 20, 60, 15)}
	assert.Equal(t, services.Totals{}, services.TotalsForDay(meals, "2026-08-30"))
	assert.Equal(t, services.Totals{}, services.TotalsForDay(nil, "2026-08-30"))
}

func TestTotalsForMonthMatchesPrefix(t *testing.T) {
	meals := []models.Meal{
		meal("2026-08-01", 400, 10, 50, 12),
		meal("2026-08-31", 600, 30, 70, 20),
		meal("2026-07-31", 999, 99, 99, 99),
		meal("2025-08-15", 999, 99, 99, 99),
	}

	got := services.TotalsForMonth(meals, "2026-08")
	assert.Equal(t, services.Totals{Calories: 1000, Protein: 40, Carbs: 120, Fat: 32}, got)
}

func TestMacroBreakdown(t *testing.T) {
	got := services.MacroBreakdown(30, 40, 30)
	assert.Equal(t, services.MacroShares{Protein: 30, Carbs: 40, Fat: 30}, got)

	got = services.MacroBreakdown(45.4, 114.6, 16.6)
	sum := got.Protein + got.Carbs + got.Fat
	assert.InDelta(t, 100, sum, 1, "rounded shares should sum to ~100")
}

func TestMacroBreakdownZeroSum(t *testing.T) {
	assert.Equal(t, services.MacroShares{}, services.MacroBreakdown(0, 0, 0))
}

func TestFillWeightSeriesCarriesForward(t *testing.T) {
	samples := []models.WeightSample{
		{UserID: 1, DateKey: "2026-08-27", WeightKg: 72.5},
		{UserID: 1, DateKey: "2026-08-29", WeightKg: 71.8},
	}
	boundaries := []string{
		"2026-08-25", "2026-08-26", "2026-08-27",
		"2026-08-28", "2026-08-29", "2026-08-30", "2026-08-31",
	}

	got := services.FillWeightSeries(samples, boundaries)
	require.Len(t, got, 7)

	assert.Nil(t, got[0])
	assert.Nil(t, got[1])
	for i, want := range map[int]float64{2: 72.5, 3: 72.5, 4: 71.8, 5: 71.8, 6: 71.8} {
		require.NotNil(t, got[i], "boundary %d", i)
		assert.Equal(t, want, *got[i], "boundary %d", i)
	}
}

func TestFillWeightSeriesNoSamples(t *testing.T) {
	got := services.FillWeightSeries(nil, []string{"2026-08-30", "2026-08-31"})
	require.Len(t, got, 2)
	assert.Nil(t, got[0])
	assert.Nil(t, got[1])
}

func TestStreakCountsBackFromToday(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC)
	meals := []models.Meal{
		meal("2026-08-31", 300, 10, 30, 8),
		meal("2026-08-30", 400, 12, 40, 10),
		meal("2026-08-29", 500, 14, 50, 12),
		meal("2026-08-27", 600, 16, 60, 14), // gap on the 28th
	}

	assert.Equal(t, 3, services.Streak(meals, now))
}

func TestStreakToleratesUnloggedToday(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	meals := []models.Meal{
		meal("2026-08-30", 400, 12, 40, 10),
		meal("2026-08-29", 500, 14, 50, 12),
	}

	assert.Equal(t, 2, services.Streak(meals, now))
}

func TestStreakBrokenRun(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	meals := []models.Meal{meal("2026-08-25", 400, 12, 40, 10)}

	assert.Equal(t, 0, services.Streak(meals, now))
	assert.Equal(t, 0, services.Streak(nil, now))
}

func TestWeekDateKeys(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	got := services.WeekDateKeys(now, 0)
	require.Len(t, got, 7)
	assert.Equal(t, "2026-08-25", got[0])
	assert.Equal(t, "2026-08-31", got[6])

	prev := services.WeekDateKeys(now, 7)
	assert.Equal(t, "2026-08-24", prev[6])
}

func TestMonthKeys(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	got := services.MonthKeys(now, 0)
	require.Len(t, got, 12)
	assert.Equal(t, "2025-09", got[0])
	assert.Equal(t, "2026-08", got[11])

	prev := services.MonthKeys(now, 12)
	assert.Equal(t, "2025-08", prev[11])
}

func TestDateKeyFormats(t *testing.T) {
	ts := time.Date(2026, 8, 5, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-05", services.DateKey(ts))
	assert.Equal(t, "2026-08", services.MonthKey(ts))
}
