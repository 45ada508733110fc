package controllers

import (
	"time"

	"github.com/daves-impact/MetaCal/catalog"
	"github.com/daves-impact/MetaCal/services"

	"github.com/gin-gonic/gin"
)

// GetRecommendations scores the catalog against today's remaining
// calorie budget and the user's goal.
func GetRecommendations(svc *services.AggregateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID")

		summary, err := svc.DailySummary(userID, services.DateKey(time.Now()))
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		profile, err := services.GetUserProfile(userID)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		goal, _ := profile["goal"].(string)

		recs := services.Recommend(catalog.All(), summary.RemainingCalories, goal, services.DefaultRecommendWeights())
		c.JSON(200, gin.H{
			"remaining_calories": summary.RemainingCalories,
			"goal":               goal,
			"recommendations":    recs,
		})
	}
}
