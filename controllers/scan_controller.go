package controllers

import (
	"github.com/daves-impact/MetaCal/services"

	"github.com/gin-gonic/gin"
)

// AnalyzeMealPhoto forwards a meal photo to the vision service and
// returns the normalized detections with catalog matches. The client
// picks which detections to log (via the custom-meal endpoint).
func AnalyzeMealPhoto(svc *services.ScanService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			ImageBase64 string `json:"image_base64" binding:"required"`
			MimeType    string `json:"mime_type"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		foods, err := svc.AnalyzeImage(body.ImageBase64, body.MimeType)
		if err != nil {
			c.JSON(502, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, gin.H{"foods": services.MatchCatalog(foods)})
	}
}
