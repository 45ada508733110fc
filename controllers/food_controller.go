package controllers

import (
	"github.com/daves-impact/MetaCal/catalog"

	"github.com/gin-gonic/gin"
)

func ListFoods(c *gin.Context) {
	c.JSON(200, catalog.All())
}

func SearchFoods(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(400, gin.H{"error": "query parameter 'q' is required"})
		return
	}
	c.JSON(200, catalog.Search(query))
}

func GetFood(c *gin.Context) {
	food, ok := catalog.ByID(c.Param("id"))
	if !ok {
		c.JSON(404, gin.H{"error": "food not found"})
		return
	}
	c.JSON(200, food)
}

// ScaleFood previews the total macros for a serving/quantity choice,
// the numbers the food-details screen shows before logging.
func ScaleFood(c *gin.Context) {
	food, ok := catalog.ByID(c.Param("id"))
	if !ok {
		c.JSON(404, gin.H{"error": "food not found"})
		return
	}

	var body struct {
		ServingGrams float64 `json:"serving_grams"`
		Quantity     float64 `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if body.Quantity <= 0 {
		body.Quantity = 1
	}
	if body.ServingGrams <= 0 {
		body.ServingGrams = food.ServingGrams
	}

	c.JSON(200, gin.H{
		"food_id":         food.ID,
		"serving_grams":   body.ServingGrams,
		"quantity":        body.Quantity,
		"totals":          catalog.Scale(food, body.ServingGrams, body.Quantity),
		"data_confidence": food.Confidence,
	})
}
