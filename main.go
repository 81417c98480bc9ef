package main

import (
	"context"
	"log"
	"time"

	"course-hub/config"
	"course-hub/controllers"
	"course-hub/database"
	"course-hub/database/mongostore"
	"course-hub/gcs"
	"course-hub/middleware"
	"course-hub/routes"
	"course-hub/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file:", err)
	}

	config.LoadConfig()

	db.InitDB()
	defer db.DisconnectDB()

	if config.AppConfig.GCSBucket != "" {
		gcs.InitGCS(config.AppConfig.GCSBucket)
		defer gcs.Close()
	} else {
		log.Println("Warning: GCS_BUCKET not set, image uploads disabled")
	}

	reviewService := services.NewReviewService(mongostore.New())
	controllers.InitReviewService(reviewService)

	gate := middlewares.NewAdminGate(
		config.AppConfig.AdminUsername,
		config.AppConfig.AdminPassword,
		config.AppConfig.JWTSecret,
	)
	controllers.InitAdminGate(gate)

	// Incremental rating updates round after every review; recompute
	// the aggregates from the full review set once a night.
	scheduler := cron.New()
	_, err = scheduler.AddFunc("0 3 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := reviewService.ReconcileAggregates(ctx); err != nil {
			log.Println("Aggregate reconcile failed:", err)
		}
	})
	if err != nil {
		log.Fatal("Failed to schedule aggregate reconcile:", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	r := gin.Default()
	routes.SetupRoutes(r, gate)

	log.Println("Starting server on :" + config.AppConfig.Port)
	if err := r.Run(":" + config.AppConfig.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
