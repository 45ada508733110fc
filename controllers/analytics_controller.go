package controllers

import (
	"strconv"
	"time"

	"github.com/daves-impact/MetaCal/services"

	"github.com/gin-gonic/gin"
)

// DailySummary returns one day's consumed totals against the user's
// targets (?date= defaults to today, device-local days being whatever
// the client stamped at log time).
func DailySummary(svc *services.AggregateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID")
		dateKey := c.DefaultQuery("date", services.DateKey(time.Now()))
		if _, err := time.Parse("2006-01-02", dateKey); err != nil {
			c.JSON(400, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}

		summary, err := svc.DailySummary(userID, dateKey)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, summary)
	}
}

// WeeklyInsights returns the 7-day chart window; ?offset= shifts it
// back in 7-day steps (the client passes offsets in days).
func WeeklyInsights(svc *services.AggregateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID")
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if offset < 0 {
			offset = 0
		}

		report, err := svc.WeeklyInsights(userID, offset)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, report)
	}
}

// MonthlyInsights returns the 12-month chart window; ?offset= shifts
// it back in months.
func MonthlyInsights(svc *services.AggregateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID")
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if offset < 0 {
			offset = 0
		}

		report, err := svc.MonthlyInsights(userID, offset)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, report)
	}
}

func CurrentStreak(svc *services.AggregateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID")
		streak, err := svc.CurrentStreak(userID)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"streak": streak})
	}
}
