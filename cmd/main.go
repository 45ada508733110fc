package main

import (
	"log"
	"os"

	"github.com/daves-impact/MetaCal/config"
	"github.com/daves-impact/MetaCal/routes"
	"github.com/daves-impact/MetaCal/services"
)

func main() {
	config.InitDB()

	hub := services.NewRealtimeHub()
	r := routes.SetupRouter(hub)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
