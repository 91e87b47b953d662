// handlers/trip_handlers.go
package handlers

import (
	"github.com/google/uuid"

	"github.com/vacai/vacai-backend/models"
	"github.com/vacai/vacai-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateTrip handles the creation of a new trip
func CreateTrip(c *gin.Context) {
	var request models.CreateTripRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	startDate, err := utils.ParseDate(request.StartDate)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	endDate, err := utils.ParseDate(request.EndDate)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	trip := models.NewTrip(request.Destination, startDate, endDate, request.ImageURL, request.Description)
	if request.ID != "" {
		trip.ID = request.ID
	} else {
		trip.ID = uuid.NewString()
	}

	created, err := handlerServices.TripService.CreateTrip(trip)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, created)
}

// ListTrips returns all trips
func ListTrips(c *gin.Context) {
	utils.HandleSuccess(c, handlerServices.TripService.ListTrips())
}

// UpcomingTrips returns trips that have not started yet
func UpcomingTrips(c *gin.Context) {
	utils.HandleSuccess(c, handlerServices.TripService.UpcomingTrips())
}

// GetTrip returns a single trip by ID
func GetTrip(c *gin.Context) {
	trip, err := handlerServices.TripService.GetTrip(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, trip)
}

// UpdateTrip merges a partial update into a trip
func UpdateTrip(c *gin.Context) {
	var request models.UpdateTripRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	trip, err := handlerServices.TripService.UpdateTrip(c.Param("id"), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, trip)
}

// DeleteTrip removes a trip. Deleting an already-deleted trip succeeds.
func DeleteTrip(c *gin.Context) {
	tripID := c.Param("id")

	if err := handlerServices.TripService.DeleteTrip(tripID); err != nil {
		utils.HandleError(c, err)
		return
	}

	// Manual budget lines die with the trip
	handlerServices.BudgetService.DropTrip(tripID)

	utils.HandleSuccess(c, gin.H{"deleted": true})
}

// SetActivities replaces a trip's activity list with the selection stage's
// output.
func SetActivities(c *gin.Context) {
	var request models.SetActivitiesRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	for i, activity := range request.Activities {
		if err := utils.ValidateRequired(activity.ID, "activity id"); err != nil {
			utils.HandleError(c, err)
			return
		}
		if err := utils.ValidateActivityCategory(activity.Category); err != nil {
			utils.HandleError(c, err)
			return
		}
		if activity.Price != nil {
			if err := utils.ValidateNonNegative(*activity.Price, "activity price"); err != nil {
				utils.HandleError(c, err)
				return
			}
		}
		for _, other := range request.Activities[:i] {
			if other.ID == activity.ID {
				utils.HandleError(c, utils.NewValidationError("duplicate activity id "+activity.ID))
				return
			}
		}
	}

	trip, err := handlerServices.TripService.UpdateTrip(c.Param("id"), &models.UpdateTripRequest{
		Activities: &request.Activities,
	})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, trip)
}

// GetPackingProgress returns the packed percentage for a trip
func GetPackingProgress(c *gin.Context) {
	progress := handlerServices.TripService.PackingProgress(c.Param("id"))
	utils.HandleSuccess(c, gin.H{"progress": progress})
}
