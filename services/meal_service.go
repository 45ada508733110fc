package services

import (
	"errors"
	"time"

	"github.com/daves-impact/MetaCal/catalog"
	"github.com/daves-impact/MetaCal/config"
	"github.com/daves-impact/MetaCal/models"
)

type MealService struct {
	hub *RealtimeHub
}

func NewMealService(hub *RealtimeHub) *MealService {
	return &MealService{hub: hub}
}

// MealInput is a fully-resolved meal entry: macros already scaled to
// the chosen serving and quantity. Scanned entries carry the vision
// service's scan_confidence alongside the catalog data_confidence.
type MealInput struct {
	Name           string  `json:"name"`
	DateKey        string  `json:"date_key"`
	TimeLabel      string  `json:"time_label"`
	ServingLabel   string  `json:"serving_label"`
	ServingGrams   float64 `json:"serving_grams"`
	Calories       int     `json:"calories"`
	Protein        float64 `json:"protein"`
	Carbs          float64 `json:"carbs"`
	Fat            float64 `json:"fat"`
	DataConfidence string  `json:"data_confidence"`
	ScanConfidence string  `json:"scan_confidence"`
	Source         string  `json:"source"`
}

// LogCatalogFood builds and stores a meal entry from a catalog food, a
// selected serving size and a quantity. dateKey and timeLabel come from
// the client (device-local day, per the app's attribution rule); blank
// values fall back to server-local now.
func (s *MealService) LogCatalogFood(userID uint, foodID string, servingLabel string, servingGrams, quantity float64, dateKey, timeLabel string) (*models.Meal, error) {
	food, ok := catalog.ByID(foodID)
	if !ok {
		return nil, errors.New("unknown food id")
	}
	if quantity <= 0 {
		quantity = 1
	}
	if servingGrams <= 0 {
		servingGrams = food.ServingGrams
	}
	if servingLabel == "" {
		servingLabel = food.ServingLabel
	}

	macros := catalog.Scale(food, servingGrams, quantity)
	return s.LogMeal(userID, MealInput{
		Name:           food.Name,
		DateKey:        dateKey,
		TimeLabel:      timeLabel,
		ServingLabel:   servingLabel,
		ServingGrams:   servingGrams,
		Calories:       macros.Calories,
		Protein:        macros.Protein,
		Carbs:          macros.Carbs,
		Fat:            macros.Fat,
		DataConfidence: string(food.Confidence),
		Source:         food.Source,
	})
}

// LogMeal stores a meal entry. Malformed numbers degrade to zero
// contributions instead of failing the write; confidence defaults to
// "none" so a macro-less entry is clearly tagged for the UI.
func (s *MealService) LogMeal(userID uint, in MealInput) (*models.Meal, error) {
	if in.Name == "" {
		return nil, errors.New("meal name is required")
	}

	now := time.Now()
	if in.DateKey == "" {
		in.DateKey = DateKey(now)
	}
	if _, err := time.Parse("2006-01-02", in.DateKey); err != nil {
		return nil, errors.New("date_key must be YYYY-MM-DD")
	}
	if in.TimeLabel == "" {
		in.TimeLabel = now.Format("03:04 PM")
	}
	if in.DataConfidence == "" {
		in.DataConfidence = string(catalog.ConfidenceNone)
	}

	meal := &models.Meal{
		UserID:         userID,
		Name:           in.Name,
		DateKey:        in.DateKey,
		TimeLabel:      in.TimeLabel,
		ServingLabel:   in.ServingLabel,
		ServingGrams:   clampNonNegative(in.ServingGrams),
		Calories:       clampNonNegativeInt(in.Calories),
		Protein:        clampNonNegative(in.Protein),
		Carbs:          clampNonNegative(in.Carbs),
		Fat:            clampNonNegative(in.Fat),
		DataConfidence: in.DataConfidence,
		ScanConfidence: in.ScanConfidence,
		Source:         in.Source,
	}
	if err := config.DB.Create(meal).Error; err != nil {
		return nil, err
	}

	s.refreshStreak(userID)
	if s.hub != nil {
		s.hub.Broadcast(userID, "meal.created", meal)
	}
	return meal, nil
}

func (s *MealService) ListMeals(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date_key DESC, created_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) ListMealsByDate(userID uint, dateKey string) ([]models.Meal, error) {
	var meals []models.Meal
	err := config.DB.
		Where("user_id = ? AND date_key = ?", userID, dateKey).
		Order("created_at ASC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) ListMealsByMonth(userID uint, monthKey string) ([]models.Meal, error) {
	var meals []models.Meal
	err := config.DB.
		Where("user_id = ? AND date_key LIKE ?", userID, monthKey+"-%").
		Order("date_key ASC, created_at ASC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) ListRecentMeals(userID uint, limit int) ([]models.Meal, error) {
	if limit <= 0 {
		limit = 3
	}
	var meals []models.Meal
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&meals).Error
	return meals, err
}

// DeleteMeal removes one of the user's entries. Entries are immutable
// after creation; deletion is the only mutation.
func (s *MealService) DeleteMeal(userID, mealID uint) error {
	res := config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.Meal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("meal not found")
	}

	s.refreshStreak(userID)
	if s.hub != nil {
		s.hub.Broadcast(userID, "meal.deleted", map[string]uint{"id": mealID})
	}
	return nil
}

// refreshStreak recomputes the cached streak on the user row from the
// meal log. The cache is advisory; reads recompute from the log anyway.
func (s *MealService) refreshStreak(userID uint) {
	var meals []models.Meal
	if err := config.DB.
		Select("date_key").
		Where("user_id = ?", userID).
		Find(&meals).Error; err != nil {
		return
	}
	now := time.Now()
	config.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"streak_count":         Streak(meals, now),
			"streak_last_date_key": DateKey(now),
		})
}

func clampNonNegative(v float64) float64 {
	if v < 0 || v != v { // NaN guard
		return 0
	}
	return v
}

func clampNonNegativeInt(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
