// handlers/schedule_handlers.go
package handlers

import (
	"github.com/vacai/vacai-backend/models"
	"github.com/vacai/vacai-backend/utils"

	"github.com/gin-gonic/gin"
)

// GenerateSchedule distributes a trip's selected activities across its
// days. If the trip already has a schedule it is returned untouched, so a
// manual rearrangement is never silently regenerated away.
func GenerateSchedule(c *gin.Context) {
	trip, err := handlerServices.TripService.GetTrip(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if len(trip.Schedule) > 0 {
		utils.HandleSuccess(c, trip.Schedule)
		return
	}

	schedule, err := handlerServices.ScheduleService.Distribute(trip.StartDate, trip.EndDate, trip.Activities)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if _, err := handlerServices.TripService.UpdateTrip(trip.ID, &models.UpdateTripRequest{
		Schedule: &schedule,
	}); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, schedule)
}

// MoveActivity moves an activity between two days of the schedule
func MoveActivity(c *gin.Context) {
	var request models.MoveActivityRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	trip, err := handlerServices.TripService.GetTrip(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	schedule, err := handlerServices.ScheduleService.MoveActivity(
		trip.Schedule, request.ActivityID, request.FromDay, request.ToDay)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if _, err := handlerServices.TripService.UpdateTrip(trip.ID, &models.UpdateTripRequest{
		Schedule: &schedule,
	}); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, schedule)
}

// RemoveScheduleActivity takes an activity off one day. The activity stays
// available in the trip for later re-assignment.
func RemoveScheduleActivity(c *gin.Context) {
	var request models.RemoveActivityRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	trip, err := handlerServices.TripService.GetTrip(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	schedule, err := handlerServices.ScheduleService.RemoveActivity(trip.Schedule, request.Day, request.ActivityID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if _, err := handlerServices.TripService.UpdateTrip(trip.ID, &models.UpdateTripRequest{
		Schedule: &schedule,
	}); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, schedule)
}
