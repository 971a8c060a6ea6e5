package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/emre/advisehub/internal/app/controllers"
	"github.com/emre/advisehub/internal/app/models/dto"
	"github.com/emre/advisehub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	catalogController *controllers.CatalogController,
	advisingController *controllers.AdvisingController,
	planningController *controllers.PlanningController,
	advisorMiddleware *middleware.AdvisorMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Advisor identity is attached when a token is present; no endpoint
	// requires one.
	v1.Use(advisorMiddleware.Identify())

	// Catalog and progress snapshots
	catalogs := v1.Group("/catalogs")
	{
		catalogs.POST("", catalogController.UploadCatalog)
		catalogs.GET("", catalogController.ListCatalogs)
		catalogs.GET("/:id", catalogController.GetCatalog)
		catalogs.POST("/:id/progress", catalogController.UploadProgress)

		// Derived catalog views
		catalogs.GET("/:id/graph", planningController.GetGraph)
		catalogs.GET("/:id/mutual-pairs", planningController.GetMutualPairs)

		// Per-student engine views over a catalog/progress pair
		catalogs.GET("/:id/progress/:progressId/forecast", planningController.GetForecast)
		catalogs.GET("/:id/progress/:progressId/students/:studentId/eligibility", planningController.CheckEligibility)
		catalogs.GET("/:id/progress/:progressId/students/:studentId/projection", planningController.GetProjection)
	}

	progress := v1.Group("/progress")
	{
		progress.GET("/:id", catalogController.GetProgress)
	}

	// Advising periods and per-student selections
	periods := v1.Group("/periods")
	{
		periods.POST("", advisingController.CreatePeriod)
		periods.GET("", advisingController.ListPeriods)
		periods.PUT("/:periodId/selections/:studentId", advisingController.SaveSelection)
		periods.GET("/:periodId/selections/:studentId", advisingController.GetSelection)
	}

	// Requisite bypasses
	students := v1.Group("/students")
	{
		students.GET("/:studentId/bypasses", advisingController.ListBypasses)
		students.POST("/:studentId/bypasses", advisingController.GrantBypass)
		students.DELETE("/:studentId/bypasses/:courseCode", advisingController.RevokeBypass)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go already
}
