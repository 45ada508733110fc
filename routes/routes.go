package routes

import (
	"github.com/daves-impact/MetaCal/config"
	"github.com/daves-impact/MetaCal/controllers"
	"github.com/daves-impact/MetaCal/middlewares"
	"github.com/daves-impact/MetaCal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.RealtimeHub) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	mealSvc := services.NewMealService(hub)
	aggSvc := services.NewAggregateService(config.DB)
	scanSvc := services.NewScanService()
	rtCtrl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Catalog is static and public
	foods := r.Group("/foods")
	{
		foods.GET("", controllers.ListFoods)
		foods.GET("/search", controllers.SearchFoods)
		foods.GET("/:id", controllers.GetFood)
		foods.POST("/:id/scale", controllers.ScaleFood)
	}

	// Everything below belongs to the signed-in user
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", controllers.GetProfile)
		api.PUT("/user/profile", controllers.UpdateProfile(hub))
		api.GET("/user/weight-history", controllers.GetWeightHistory)

		api.POST("/meals", controllers.LogMeal(mealSvc))
		api.POST("/meals/custom", controllers.LogCustomMeal(mealSvc))
		api.GET("/meals", controllers.ListMeals(mealSvc))
		api.GET("/meals/recent", controllers.ListRecentMeals(mealSvc))
		api.DELETE("/meals/:id", controllers.DeleteMeal(mealSvc))

		api.GET("/summary/daily", controllers.DailySummary(aggSvc))
		api.GET("/insights/weekly", controllers.WeeklyInsights(aggSvc))
		api.GET("/insights/monthly", controllers.MonthlyInsights(aggSvc))
		api.GET("/streak", controllers.CurrentStreak(aggSvc))

		api.GET("/recommendations", controllers.GetRecommendations(aggSvc))
		api.POST("/scan", controllers.AnalyzeMealPhoto(scanSvc))

		api.GET("/ws", rtCtrl.EventsWS)
	}

	return r
}
