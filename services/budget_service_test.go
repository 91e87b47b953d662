package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vacai/vacai-backend/models"
)

func price(v float64) *float64 {
	return &v
}

// newBudgetFixture builds a trip with three activities: a selected priced
// one, a selected free one, and a deselected priced one. Only the first
// should produce a budget line.
func newBudgetFixture(t *testing.T) (*TripService, *BudgetService) {
	t.Helper()

	trip := newTestTrip("t1", futureDate(10), futureDate(13))
	trip.Activities = []models.Activity{
		{ID: "a1", Name: "Sushi Class", Category: "food", Price: price(85), Selected: true},
		{ID: "a2", Name: "City Walk", Category: "attraction", Selected: true},
		{ID: "a3", Name: "Kabuki Show", Category: "entertainment", Price: price(120), Selected: false},
	}

	tripService := NewTripService(&fakeStore{trips: []*models.Trip{trip}})
	return tripService, NewBudgetService(tripService)
}

func TestBudgetService_DerivesLinesFromSelectedPricedActivities(t *testing.T) {
	_, budget := newBudgetFixture(t)

	summary, err := budget.Summary("t1")

	assert.NoError(t, err)
	assert.Len(t, summary.Items, 1)
	assert.Equal(t, "activity-a1", summary.Items[0].ID)
	assert.Equal(t, "Activities", summary.Items[0].Category)
	assert.Equal(t, 85.0, summary.Items[0].Amount)
	assert.Equal(t, 85.0, summary.GrandTotal)
	assert.Equal(t, 85.0, summary.CategoryTotals["Activities"])
}

func TestBudgetService_DeselectingActivityRemovesItsLine(t *testing.T) {
	tripService, budget := newBudgetFixture(t)

	// Deselect the priced activity
	trip, err := tripService.GetTrip("t1")
	assert.NoError(t, err)
	activities := make([]models.Activity, len(trip.Activities))
	copy(activities, trip.Activities)
	activities[0].Selected = false
	_, err = tripService.UpdateTrip("t1", &models.UpdateTripRequest{Activities: &activities})
	assert.NoError(t, err)

	summary, err := budget.Summary("t1")

	assert.NoError(t, err)
	// The derived line vanished on the next read with no leftover entry
	assert.Empty(t, summary.Items)
	assert.Equal(t, 0.0, summary.GrandTotal)
	assert.Equal(t, 0.0, summary.CategoryTotals["Activities"])
}

func TestBudgetService_SelectingActivityAddsItsLine(t *testing.T) {
	tripService, budget := newBudgetFixture(t)

	trip, err := tripService.GetTrip("t1")
	assert.NoError(t, err)
	activities := make([]models.Activity, len(trip.Activities))
	copy(activities, trip.Activities)
	activities[2].Selected = true
	_, err = tripService.UpdateTrip("t1", &models.UpdateTripRequest{Activities: &activities})
	assert.NoError(t, err)

	total, err := budget.CategoryTotal("t1", "Activities")

	assert.NoError(t, err)
	assert.Equal(t, 205.0, total)
}

func TestBudgetService_ManualItems(t *testing.T) {
	_, budget := newBudgetFixture(t)

	item, err := budget.AddItem("t1", "Accommodation", "Shinjuku Hotel", 430.50)
	assert.NoError(t, err)
	assert.Equal(t, 430.50, item.Amount)

	_, err = budget.AddItem("t1", "Transport", "Airport Train", 12.30)
	assert.NoError(t, err)

	summary, err := budget.Summary("t1")
	assert.NoError(t, err)
	assert.Len(t, summary.Items, 3)
	assert.Equal(t, 430.50, summary.CategoryTotals["Accommodation"])
	assert.Equal(t, 12.30, summary.CategoryTotals["Transport"])
	assert.Equal(t, 527.80, summary.GrandTotal)

	// Manual items are deletable
	assert.NoError(t, budget.RemoveItem("t1", item.ID))

	summary, err = budget.Summary("t1")
	assert.NoError(t, err)
	assert.Len(t, summary.Items, 2)
	assert.Equal(t, 97.30, summary.GrandTotal)
}

func TestBudgetService_AddItem_Validation(t *testing.T) {
	_, budget := newBudgetFixture(t)

	_, err := budget.AddItem("t1", "", "Hotel", 100)
	assert.Error(t, err)

	_, err = budget.AddItem("t1", "Accommodation", "", 100)
	assert.Error(t, err)

	_, err = budget.AddItem("t1", "Accommodation", "Hotel", -5)
	assert.Error(t, err)

	_, err = budget.AddItem("missing", "Accommodation", "Hotel", 100)
	assert.Error(t, err)
}

func TestBudgetService_ActivityLinesAreNotDeletable(t *testing.T) {
	_, budget := newBudgetFixture(t)

	err := budget.RemoveItem("t1", "activity-a1")

	assert.Error(t, err)

	// The line is still derived on the next read
	summary, err := budget.Summary("t1")
	assert.NoError(t, err)
	assert.Len(t, summary.Items, 1)
}

func TestBudgetService_RemoveItem_UnknownID(t *testing.T) {
	_, budget := newBudgetFixture(t)

	assert.Error(t, budget.RemoveItem("t1", "manual-nope"))
}

func TestBudgetService_DropTrip(t *testing.T) {
	_, budget := newBudgetFixture(t)

	_, err := budget.AddItem("t1", "Accommodation", "Hotel", 100)
	assert.NoError(t, err)

	budget.DropTrip("t1")

	summary, err := budget.Summary("t1")
	assert.NoError(t, err)
	// Only the derived activity line remains
	assert.Len(t, summary.Items, 1)
	assert.Equal(t, "activity-a1", summary.Items[0].ID)
}
