package services

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/daves-impact/MetaCal/models"
	"github.com/daves-impact/MetaCal/utils"

	"gorm.io/gorm"
)

// Totals is the macro sum for one period (a day or a month).
type Totals struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// MacroShares is the protein/carbs/fat split as integer percents of
// their combined mass. All zero when nothing was logged.
type MacroShares struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// ---------- pure core ----------
//
// These take plain meal snapshots and are safe from any goroutine; the
// caller is responsible for passing a list that already reflects every
// write it wants counted.

// DateKey formats a time as the YYYY-MM-DD calendar-day key meals and
// weight samples are bucketed by.
func DateKey(t time.Time) string { return t.Format("2006-01-02") }

// MonthKey formats a time as the YYYY-MM month bucket key.
func MonthKey(t time.Time) string { return t.Format("2006-01") }

// TotalsForDay sums the meals logged under exactly dateKey. Order of
// the input does not matter and an empty day yields zero totals.
func TotalsForDay(meals []models.Meal, dateKey string) Totals {
	var t Totals
	for _, m := range meals {
		if m.DateKey != dateKey {
			continue
		}
		t.Calories += m.Calories
		t.Protein += m.Protein
		t.Carbs += m.Carbs
		t.Fat += m.Fat
	}
	return t
}

// TotalsForMonth sums the meals whose dateKey falls inside monthKey
// (YYYY-MM prefix match).
func TotalsForMonth(meals []models.Meal, monthKey string) Totals {
	var t Totals
	prefix := monthKey + "-"
	for _, m := range meals {
		if len(m.DateKey) < len(prefix) || m.DateKey[:len(prefix)] != prefix {
			continue
		}
		t.Calories += m.Calories
		t.Protein += m.Protein
		t.Carbs += m.Carbs
		t.Fat += m.Fat
	}
	return t
}

// MacroBreakdown converts aggregated grams into integer percent shares.
// A zero sum yields all-zero shares rather than dividing by zero.
func MacroBreakdown(protein, carbs, fat float64) MacroShares {
	sum := protein + carbs + fat
	if sum <= 0 {
		return MacroShares{}
	}
	return MacroShares{
		Protein: int(math.Round(protein / sum * 100)),
		Carbs:   int(math.Round(carbs / sum * 100)),
		Fat:     int(math.Round(fat / sum * 100)),
	}
}

// FillWeightSeries resamples a weight history onto period boundaries
// using last-observation-carried-forward: each boundary takes the
// latest sample dated on or before it. Boundaries that precede every
// sample stay nil until the first real observation appears.
// Samples must be ordered by dateKey ascending; boundaries are dateKeys
// and YYYY-MM-DD strings compare in date order.
func FillWeightSeries(samples []models.WeightSample, boundaries []string) []*float64 {
	out := make([]*float64, len(boundaries))
	var last *float64
	idx := 0
	for i, boundary := range boundaries {
		for idx < len(samples) && samples[idx].DateKey <= boundary {
			w := samples[idx].WeightKg
			last = &w
			idx++
		}
		out[i] = last
	}
	return out
}

// Streak counts consecutive calendar days with at least one logged
// meal, walking backward from today — or from yesterday when today has
// no meals yet, so an unlogged morning does not break the run.
func Streak(meals []models.Meal, now time.Time) int {
	logged := make(map[string]bool, len(meals))
	for _, m := range meals {
		if m.DateKey != "" {
			logged[m.DateKey] = true
		}
	}

	day := now
	if !logged[DateKey(day)] {
		day = day.AddDate(0, 0, -1)
	}
	count := 0
	for logged[DateKey(day)] {
		count++
		day = day.AddDate(0, 0, -1)
	}
	return count
}

// WeekDateKeys returns the seven day keys ending offsetDays before
// today (0 = the current week window).
func WeekDateKeys(now time.Time, offsetDays int) []string {
	end := now.AddDate(0, 0, -offsetDays)
	keys := make([]string, 7)
	for i := 0; i < 7; i++ {
		keys[i] = DateKey(end.AddDate(0, 0, i-6))
	}
	return keys
}

// MonthKeys returns the twelve month keys ending offsetMonths before
// the current month.
func MonthKeys(now time.Time, offsetMonths int) []string {
	end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -offsetMonths, 0)
	keys := make([]string, 12)
	for i := 0; i < 12; i++ {
		keys[i] = MonthKey(end.AddDate(0, i-11, 0))
	}
	return keys
}

// monthEndKey is the dateKey of the last day of a YYYY-MM month, used
// as the weight-resampling boundary for monthly buckets.
func monthEndKey(monthKey string) string {
	t, err := time.Parse("2006-01", monthKey)
	if err != nil {
		return monthKey + "-31"
	}
	return DateKey(t.AddDate(0, 1, -1))
}

// ---------- service ----------

type AggregateService struct{ db *gorm.DB }

func NewAggregateService(db *gorm.DB) *AggregateService {
	return &AggregateService{db: db}
}

// InsightPoint is one bucket of the insights chart: a day in weekly
// mode, a month in monthly mode.
type InsightPoint struct {
	Key       string      `json:"key"`
	Label     string      `json:"label"`
	Calories  int         `json:"calories"`
	Nutrition MacroShares `json:"nutrition"`
	WeightKg  *float64    `json:"weight_kg"`
}

type InsightsReport struct {
	Mode          string         `json:"mode"` // "weekly" | "monthly"
	From          string         `json:"from"`
	To            string         `json:"to"`
	CalorieTarget int            `json:"calorie_target"`
	BMI           float64        `json:"bmi,omitempty"`
	BMICategory   string         `json:"bmi_category,omitempty"`
	Points        []InsightPoint `json:"points"`
}

// DailySummary is the Home-screen view of one day: consumed totals
// against the user's targets.
type DailySummary struct {
	DateKey           string         `json:"date_key"`
	Totals            Totals         `json:"totals"`
	Nutrition         MacroShares    `json:"nutrition"`
	Targets           *utils.Targets `json:"targets"`
	RemainingCalories *int           `json:"remaining_calories"`
	Streak            int            `json:"streak"`
}

func (s *AggregateService) DailySummary(userID uint, dateKey string) (*DailySummary, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, err
	}

	var meals []models.Meal
	if err := s.db.
		Where("user_id = ? AND date_key = ?", userID, dateKey).
		Find(&meals).Error; err != nil {
		return nil, err
	}

	totals := TotalsForDay(meals, dateKey)
	out := &DailySummary{
		DateKey:   dateKey,
		Totals:    totals,
		Nutrition: MacroBreakdown(totals.Protein, totals.Carbs, totals.Fat),
	}

	if user.TargetCalories > 0 {
		out.Targets = &utils.Targets{
			Calories: user.TargetCalories,
			Protein:  user.TargetProtein,
			Carbs:    user.TargetCarbs,
			Fat:      user.TargetFat,
		}
		remaining := user.TargetCalories - totals.Calories
		out.RemainingCalories = &remaining
	}

	streak, err := s.CurrentStreak(userID)
	if err != nil {
		return nil, err
	}
	out.Streak = streak
	return out, nil
}

func (s *AggregateService) WeeklyInsights(userID uint, offsetDays int) (*InsightsReport, error) {
	keys := WeekDateKeys(time.Now(), offsetDays)
	meals, err := s.mealsBetween(userID, keys[0], keys[len(keys)-1])
	if err != nil {
		return nil, err
	}
	samples, err := s.weightHistory(userID)
	if err != nil {
		return nil, err
	}

	weights := FillWeightSeries(samples, keys)
	points := make([]InsightPoint, len(keys))
	for i, key := range keys {
		t := TotalsForDay(meals, key)
		day, _ := strconv.Atoi(key[len(key)-2:])
		points[i] = InsightPoint{
			Key:       key,
			Label:     fmt.Sprintf("%d", day),
			Calories:  t.Calories,
			Nutrition: MacroBreakdown(t.Protein, t.Carbs, t.Fat),
			WeightKg:  weights[i],
		}
	}
	return s.finishReport(userID, "weekly", keys[0], keys[len(keys)-1], points)
}

func (s *AggregateService) MonthlyInsights(userID uint, offsetMonths int) (*InsightsReport, error) {
	keys := MonthKeys(time.Now(), offsetMonths)
	from := keys[0] + "-01"
	to := monthEndKey(keys[len(keys)-1])

	meals, err := s.mealsBetween(userID, from, to)
	if err != nil {
		return nil, err
	}
	samples, err := s.weightHistory(userID)
	if err != nil {
		return nil, err
	}

	boundaries := make([]string, len(keys))
	for i, key := range keys {
		boundaries[i] = monthEndKey(key)
	}
	weights := FillWeightSeries(samples, boundaries)

	points := make([]InsightPoint, len(keys))
	for i, key := range keys {
		t := TotalsForMonth(meals, key)
		month, _ := time.Parse("2006-01", key)
		points[i] = InsightPoint{
			Key:       key,
			Label:     month.Format("Jan"),
			Calories:  t.Calories,
			Nutrition: MacroBreakdown(t.Protein, t.Carbs, t.Fat),
			WeightKg:  weights[i],
		}
	}
	return s.finishReport(userID, "monthly", from, to, points)
}

func (s *AggregateService) CurrentStreak(userID uint) (int, error) {
	var meals []models.Meal
	if err := s.db.
		Select("date_key").
		Where("user_id = ?", userID).
		Find(&meals).Error; err != nil {
		return 0, err
	}
	return Streak(meals, time.Now()), nil
}

func (s *AggregateService) finishReport(userID uint, mode, from, to string, points []InsightPoint) (*InsightsReport, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, err
	}
	report := &InsightsReport{
		Mode:          mode,
		From:          from,
		To:            to,
		CalorieTarget: user.TargetCalories,
		Points:        points,
	}
	if user.BMI > 0 {
		report.BMI = user.BMI
		report.BMICategory = utils.BMICategory(user.BMI)
	}
	return report, nil
}

func (s *AggregateService) mealsBetween(userID uint, fromKey, toKey string) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Where("user_id = ? AND date_key BETWEEN ? AND ?", userID, fromKey, toKey).
		Find(&meals).Error
	return meals, err
}

func (s *AggregateService) weightHistory(userID uint) ([]models.WeightSample, error) {
	var samples []models.WeightSample
	err := s.db.
		Where("user_id = ?", userID).
		Order("date_key ASC").
		Find(&samples).Error
	return samples, err
}
