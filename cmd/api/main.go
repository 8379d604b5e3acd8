package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/devtrackhq/jobgrid/internal/auth"
	"github.com/devtrackhq/jobgrid/internal/config"
	"github.com/devtrackhq/jobgrid/internal/database"
	"github.com/devtrackhq/jobgrid/internal/handlers"
	"github.com/devtrackhq/jobgrid/internal/services"
)

func main() {
	// 1. Configuration (loads .env when present)
	cfg := config.Load()

	// 2. Database connection + migrations
	db := database.Connect(cfg.DatabaseDSN)

	// 3. Services
	syncService := services.NewSyncService(db)

	// 4. Handlers
	jobHandler := handlers.NewJobHandler(syncService)
	portalHandler := handlers.NewPortalHandler(syncService)
	shareHandler := handlers.NewShareHandler(syncService)

	// 5. Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 6. Routes
	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		// Share view is read-only and unauthenticated.
		api.GET("/share", shareHandler.Share)

		protected := api.Group("", handlers.RequireIdentity(cfg.AllowedEmail, auth.VerifyToken))
		{
			protected.GET("/jobs", jobHandler.ListJobs)
			protected.POST("/jobs/sync", jobHandler.SyncJobs)
			protected.DELETE("/jobs/:id", jobHandler.DeleteJob)

			protected.GET("/portals", portalHandler.ListPortals)
			protected.POST("/portals/sync", portalHandler.SyncPortals)
		}
	}

	log.Printf("Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
