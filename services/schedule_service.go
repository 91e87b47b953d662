// services/schedule_service.go
package services

import (
	"fmt"
	"math"
	"time"

	"github.com/vacai/vacai-backend/models"
	"github.com/vacai/vacai-backend/utils"
)

// ScheduleService handles itinerary generation and mutation. All methods
// are pure: they never modify the schedule they are given, and failures
// leave the caller's schedule exactly as it was.
type ScheduleService struct{}

// NewScheduleService creates a new schedule service
func NewScheduleService() *ScheduleService {
	return &ScheduleService{}
}

// Distribute partitions the selected activities across the inclusive day
// range [startDate, endDate]. Activities are assigned in their original
// order as contiguous slices of ceil(len/days) per day, so earlier days
// fill up first and trailing days may stay empty.
func (s *ScheduleService) Distribute(startDate, endDate time.Time, activities []models.Activity) ([]models.DaySchedule, error) {
	if endDate.Before(startDate) {
		return nil, utils.NewValidationError("end date cannot be before start date")
	}

	days := int(math.Ceil(endDate.Sub(startDate).Hours()/24)) + 1

	selected := []models.Activity{}
	for _, activity := range activities {
		if activity.Selected {
			selected = append(selected, activity)
		}
	}

	perDay := 0
	if len(selected) > 0 {
		perDay = int(math.Ceil(float64(len(selected)) / float64(days)))
	}

	schedule := make([]models.DaySchedule, 0, days)
	for i := 0; i < days; i++ {
		from := i * perDay
		to := (i + 1) * perDay
		if from > len(selected) {
			from = len(selected)
		}
		if to > len(selected) {
			to = len(selected)
		}

		dayActivities := make([]models.Activity, to-from)
		copy(dayActivities, selected[from:to])

		schedule = append(schedule, models.DaySchedule{
			Day:        i + 1,
			Date:       startDate.AddDate(0, 0, i),
			Activities: dayActivities,
		})
	}

	return schedule, nil
}

// MoveActivity moves one activity from one day to another, appending it to
// the end of the destination day. Moving within the same day is a no-op.
// The move is remove-then-insert, so an activity can never end up on two
// days at once.
func (s *ScheduleService) MoveActivity(schedule []models.DaySchedule, activityID string, fromDay, toDay int) ([]models.DaySchedule, error) {
	if fromDay == toDay {
		return schedule, nil
	}
	if err := validateDay(fromDay, len(schedule)); err != nil {
		return nil, err
	}
	if err := validateDay(toDay, len(schedule)); err != nil {
		return nil, err
	}

	var moved *models.Activity
	for _, day := range schedule {
		if day.Day != fromDay {
			continue
		}
		for _, activity := range day.Activities {
			if activity.ID == activityID {
				a := activity
				moved = &a
				break
			}
		}
	}
	if moved == nil {
		return nil, utils.NewNotFoundError(fmt.Sprintf("activity %s on day %d", activityID, fromDay))
	}

	next := make([]models.DaySchedule, len(schedule))
	for i, day := range schedule {
		next[i] = day
		switch day.Day {
		case fromDay:
			next[i].Activities = removeByID(day.Activities, activityID)
		case toDay:
			activities := make([]models.Activity, len(day.Activities), len(day.Activities)+1)
			copy(activities, day.Activities)
			next[i].Activities = append(activities, *moved)
		}
	}

	return next, nil
}

// RemoveActivity takes an activity off a day's plan. The activity stays in
// the trip's activity list and can be re-assigned later. Removing an
// activity that is not on the day is a no-op; a day outside the schedule
// is still an error.
func (s *ScheduleService) RemoveActivity(schedule []models.DaySchedule, day int, activityID string) ([]models.DaySchedule, error) {
	if err := validateDay(day, len(schedule)); err != nil {
		return nil, err
	}

	next := make([]models.DaySchedule, len(schedule))
	for i, d := range schedule {
		next[i] = d
		if d.Day == day {
			next[i].Activities = removeByID(d.Activities, activityID)
		}
	}

	return next, nil
}

// validateDay checks a 1-based day number against the schedule length.
func validateDay(day, days int) error {
	if day < 1 || day > days {
		return utils.NewValidationError(fmt.Sprintf("day %d is outside the schedule (1-%d)", day, days))
	}
	return nil
}

// removeByID returns a new activity slice without the given ID.
func removeByID(activities []models.Activity, activityID string) []models.Activity {
	filtered := make([]models.Activity, 0, len(activities))
	for _, activity := range activities {
		if activity.ID != activityID {
			filtered = append(filtered, activity)
		}
	}
	return filtered
}
