package routes

import (
	"os"

	"github.com/vacai/vacai-backend/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine) {
	// Create uploads directory if not exists
	os.MkdirAll("uploads", os.ModePerm)

	// Initialize handlers
	handlers.InitHandlers()

	v1 := router.Group("/api/v1")
	{
		// Trip endpoints
		v1.POST("/trips", handlers.CreateTrip)
		v1.GET("/trips", handlers.ListTrips)
		v1.GET("/trips/upcoming", handlers.UpcomingTrips)
		v1.GET("/trips/:id", handlers.GetTrip)
		v1.PATCH("/trips/:id", handlers.UpdateTrip)
		v1.DELETE("/trips/:id", handlers.DeleteTrip)

		// Activity selection stage
		v1.PUT("/trips/:id/activities", handlers.SetActivities)

		// Itinerary endpoints
		v1.POST("/trips/:id/schedule/generate", handlers.GenerateSchedule)
		v1.POST("/trips/:id/schedule/move", handlers.MoveActivity)
		v1.POST("/trips/:id/schedule/remove", handlers.RemoveScheduleActivity)

		// Packing endpoints
		v1.POST("/trips/:id/packing/generate", handlers.GeneratePackingList)
		v1.POST("/trips/:id/packing/toggle", handlers.TogglePackingItem)
		v1.POST("/trips/:id/packing/apply", handlers.ApplyPackingDetection)
		v1.POST("/trips/:id/packing/analyze", handlers.AnalyzePackingImage)
		v1.GET("/trips/:id/packing/progress", handlers.GetPackingProgress)

		// Budget endpoints
		v1.GET("/trips/:id/budget", handlers.GetBudget)
		v1.POST("/trips/:id/budget/items", handlers.AddBudgetItem)
		v1.DELETE("/trips/:id/budget/items/:itemId", handlers.RemoveBudgetItem)

		// Excel export endpoint
		v1.GET("/trips/:id/export", handlers.ExportTrip)

		// Session pointer, consumed by the surrounding app only
		v1.GET("/session", handlers.GetSession)
		v1.PUT("/session", handlers.SetSession)
		v1.DELETE("/session", handlers.ClearSession)
	}
}
