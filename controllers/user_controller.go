package controllers

import (
	"github.com/daves-impact/MetaCal/services"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")
	profile, err := services.GetUserProfile(userID)
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, profile)
}

func UpdateProfile(hub *services.RealtimeHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID")
		var body services.ProfileInput
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		profile, err := services.UpdateUserProfile(userID, body, hub)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, profile)
	}
}

func GetWeightHistory(c *gin.Context) {
	userID := c.GetUint("userID")
	samples, err := services.ListWeightHistory(userID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, samples)
}
