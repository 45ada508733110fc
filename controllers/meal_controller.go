package controllers

import (
	"strconv"

	"github.com/daves-impact/MetaCal/services"

	"github.com/gin-gonic/gin"
)

// LogMeal logs a catalog food at a chosen serving and quantity.
func LogMeal(svc *services.MealService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID")
		var body struct {
			FoodID       string  `json:"food_id" binding:"required"`
			ServingLabel string  `json:"serving_label"`
			ServingGrams float64 `json:"serving_grams"`
			Quantity     float64 `json:"quantity"`
			DateKey      string  `json:"date_key"`
			TimeLabel    string  `json:"time_label"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		meal, err := svc.LogCatalogFood(userID, body.FoodID, body.ServingLabel, body.ServingGrams, body.Quantity, body.DateKey, body.TimeLabel)
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, meal)
	}
}

// LogCustomMeal logs an entry whose macros were resolved outside the
// catalog, e.g. a scanned food accepted by the user.
func LogCustomMeal(svc *services.MealService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID")
		var body services.MealInput
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		meal, err := svc.LogMeal(userID, body)
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, meal)
	}
}

// ListMeals returns the user's log, filtered by ?date= or ?month= when
// given, newest first otherwise.
func ListMeals(svc *services.MealService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID")

		if date := c.Query("date"); date != "" {
			meals, err := svc.ListMealsByDate(userID, date)
			if err != nil {
				c.JSON(500, gin.H{"error": err.Error()})
				return
			}
			c.JSON(200, meals)
			return
		}
		if month := c.Query("month"); month != "" {
			meals, err := svc.ListMealsByMonth(userID, month)
			if err != nil {
				c.JSON(500, gin.H{"error": err.Error()})
				return
			}
			c.JSON(200, meals)
			return
		}

		meals, err := svc.ListMeals(userID)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, meals)
	}
}

func ListRecentMeals(svc *services.MealService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID")
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "3"))
		meals, err := svc.ListRecentMeals(userID, limit)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, meals)
	}
}

func DeleteMeal(svc *services.MealService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID")
		mealID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid meal id"})
			return
		}

		if err := svc.DeleteMeal(userID, uint(mealID)); err != nil {
			c.JSON(404, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"message": "deleted"})
	}
}
