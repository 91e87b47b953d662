package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vacai/vacai-backend/models"
)

func makeSelectedActivities(names ...string) []models.Activity {
	activities := make([]models.Activity, len(names))
	for i, name := range names {
		activities[i] = models.Activity{
			ID:       "act-" + name,
			Name:     name,
			Category: "attraction",
			Selected: true,
		}
	}
	return activities
}

func activityNames(activities []models.Activity) []string {
	names := make([]string, len(activities))
	for i, activity := range activities {
		names[i] = activity.Name
	}
	return names
}

func TestScheduleService_Distribute_FiveActivitiesOverThreeDays(t *testing.T) {
	service := NewScheduleService()

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	activities := makeSelectedActivities("A", "B", "C", "D", "E")

	schedule, err := service.Distribute(start, end, activities)

	assert.NoError(t, err)
	assert.Len(t, schedule, 3)

	// perDay = ceil(5/3) = 2: front-loaded contiguous slices
	assert.Equal(t, []string{"A", "B"}, activityNames(schedule[0].Activities))
	assert.Equal(t, []string{"C", "D"}, activityNames(schedule[1].Activities))
	assert.Equal(t, []string{"E"}, activityNames(schedule[2].Activities))

	// Day numbers are contiguous from 1 and dates derive from the start date
	for i, day := range schedule {
		assert.Equal(t, i+1, day.Day)
		assert.Equal(t, start.AddDate(0, 0, i), day.Date)
	}
}

func TestScheduleService_Distribute_PartitionPreservesOrder(t *testing.T) {
	service := NewScheduleService()

	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)
	activities := makeSelectedActivities("A", "B", "C", "D", "E", "F", "G", "H", "I", "J")

	schedule, err := service.Distribute(start, end, activities)

	assert.NoError(t, err)
	assert.Len(t, schedule, 7)

	// Concatenating all days in order gives back the original sequence
	var flattened []string
	for _, day := range schedule {
		flattened = append(flattened, activityNames(day.Activities)...)
	}
	assert.Equal(t, activityNames(activities), flattened)
}

func TestScheduleService_Distribute_SingleDayGetsEverything(t *testing.T) {
	service := NewScheduleService()

	day := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	activities := makeSelectedActivities("A", "B", "C")

	schedule, err := service.Distribute(day, day, activities)

	assert.NoError(t, err)
	assert.Len(t, schedule, 1)
	assert.Equal(t, []string{"A", "B", "C"}, activityNames(schedule[0].Activities))
}

func TestScheduleService_Distribute_NoSelectedActivities(t *testing.T) {
	service := NewScheduleService()

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)

	unselected := makeSelectedActivities("A", "B")
	for i := range unselected {
		unselected[i].Selected = false
	}

	schedule, err := service.Distribute(start, end, unselected)

	assert.NoError(t, err)
	assert.Len(t, schedule, 4)
	for _, day := range schedule {
		assert.Empty(t, day.Activities)
	}
}

func TestScheduleService_Distribute_SkipsUnselected(t *testing.T) {
	service := NewScheduleService()

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	activities := makeSelectedActivities("A", "B", "C")
	activities[1].Selected = false

	schedule, err := service.Distribute(start, end, activities)

	assert.NoError(t, err)
	assert.Equal(t, []string{"A"}, activityNames(schedule[0].Activities))
	assert.Equal(t, []string{"C"}, activityNames(schedule[1].Activities))
}

func TestScheduleService_Distribute_EndBeforeStart(t *testing.T) {
	service := NewScheduleService()

	start := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	schedule, err := service.Distribute(start, end, makeSelectedActivities("A"))

	assert.Error(t, err)
	assert.Nil(t, schedule)
}

// buildScenarioSchedule returns the day 1: [A,B], day 2: [C,D], day 3: [E]
// schedule used by the move tests.
func buildScenarioSchedule(t *testing.T) []models.DaySchedule {
	t.Helper()
	service := NewScheduleService()
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	schedule, err := service.Distribute(start, end, makeSelectedActivities("A", "B", "C", "D", "E"))
	assert.NoError(t, err)
	return schedule
}

func TestScheduleService_MoveActivity_AppendsToDestination(t *testing.T) {
	service := NewScheduleService()
	schedule := buildScenarioSchedule(t)

	moved, err := service.MoveActivity(schedule, "act-C", 2, 3)

	assert.NoError(t, err)
	assert.Equal(t, []string{"D"}, activityNames(moved[1].Activities))
	assert.Equal(t, []string{"E", "C"}, activityNames(moved[2].Activities))

	// Day identities are untouched
	assert.Equal(t, schedule[1].Day, moved[1].Day)
	assert.Equal(t, schedule[1].Date, moved[1].Date)

	// The input schedule was not mutated
	assert.Equal(t, []string{"C", "D"}, activityNames(schedule[1].Activities))
}

func TestScheduleService_MoveActivity_RoundTripRestoresMembership(t *testing.T) {
	service := NewScheduleService()
	schedule := buildScenarioSchedule(t)

	moved, err := service.MoveActivity(schedule, "act-C", 2, 3)
	assert.NoError(t, err)

	restored, err := service.MoveActivity(moved, "act-C", 3, 2)
	assert.NoError(t, err)

	// Membership is restored per day; intra-day order follows the append rule
	assert.ElementsMatch(t,
		activityNames(schedule[1].Activities),
		activityNames(restored[1].Activities))
	assert.Equal(t, []string{"D", "C"}, activityNames(restored[1].Activities))
	assert.Equal(t, []string{"E"}, activityNames(restored[2].Activities))
}

func TestScheduleService_MoveActivity_NeverDuplicates(t *testing.T) {
	service := NewScheduleService()
	schedule := buildScenarioSchedule(t)

	moved, err := service.MoveActivity(schedule, "act-A", 1, 3)
	assert.NoError(t, err)

	total := 0
	seen := make(map[string]int)
	for _, day := range moved {
		total += len(day.Activities)
		for _, activity := range day.Activities {
			seen[activity.ID]++
		}
	}
	assert.Equal(t, 5, total)
	for id, count := range seen {
		assert.Equal(t, 1, count, "activity %s must appear on exactly one day", id)
	}
}

func TestScheduleService_MoveActivity_SameDayIsNoOp(t *testing.T) {
	service := NewScheduleService()
	schedule := buildScenarioSchedule(t)

	moved, err := service.MoveActivity(schedule, "act-C", 2, 2)

	assert.NoError(t, err)
	assert.Equal(t, schedule, moved)
}

func TestScheduleService_MoveActivity_DayOutOfRange(t *testing.T) {
	service := NewScheduleService()
	schedule := buildScenarioSchedule(t)

	_, err := service.MoveActivity(schedule, "act-C", 2, 4)
	assert.Error(t, err)

	_, err = service.MoveActivity(schedule, "act-C", 0, 2)
	assert.Error(t, err)

	// Failed moves leave the schedule unchanged
	assert.Equal(t, []string{"C", "D"}, activityNames(schedule[1].Activities))
	assert.Equal(t, []string{"E"}, activityNames(schedule[2].Activities))
}

func TestScheduleService_MoveActivity_ActivityNotOnDay(t *testing.T) {
	service := NewScheduleService()
	schedule := buildScenarioSchedule(t)

	// E lives on day 3, not day 1
	_, err := service.MoveActivity(schedule, "act-E", 1, 2)

	assert.Error(t, err)
}

func TestScheduleService_RemoveActivity(t *testing.T) {
	service := NewScheduleService()
	schedule := buildScenarioSchedule(t)

	next, err := service.RemoveActivity(schedule, 2, "act-C")

	assert.NoError(t, err)
	assert.Equal(t, []string{"D"}, activityNames(next[1].Activities))
	// Other days are untouched
	assert.Equal(t, []string{"A", "B"}, activityNames(next[0].Activities))
	assert.Equal(t, []string{"E"}, activityNames(next[2].Activities))
}

func TestScheduleService_RemoveActivity_AbsentIDIsNoOp(t *testing.T) {
	service := NewScheduleService()
	schedule := buildScenarioSchedule(t)

	next, err := service.RemoveActivity(schedule, 2, "act-Z")

	assert.NoError(t, err)
	assert.Equal(t, activityNames(schedule[1].Activities), activityNames(next[1].Activities))
}

func TestScheduleService_RemoveActivity_DayOutOfRange(t *testing.T) {
	service := NewScheduleService()
	schedule := buildScenarioSchedule(t)

	_, err := service.RemoveActivity(schedule, 5, "act-C")

	assert.Error(t, err)
}
