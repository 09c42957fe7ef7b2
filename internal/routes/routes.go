package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	handler "dashboard-seed-backend/internal/handlers"
	"dashboard-seed-backend/internal/repository"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, seedSvc handler.Seeder, log *zap.Logger) {
	dashboardRepo := repository.NewDashboardRepository(db)
	seedRunRepo := repository.NewSeedRunRepository(db)

	seedHandler := handler.NewSeedHandler(seedSvc, seedRunRepo, log)
	dashboardHandler := handler.NewDashboardHandler(dashboardRepo)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Seeding routes
	api.GET("/seed", seedHandler.Seed)
	api.GET("/seed/runs", seedHandler.ListRuns)

	// Dashboard read routes
	dashboard := api.Group("/dashboard")
	dashboard.GET("/summary", dashboardHandler.Summary)

	api.GET("/invoices/latest", dashboardHandler.LatestInvoices)
	api.GET("/revenue", dashboardHandler.Revenue)
}
