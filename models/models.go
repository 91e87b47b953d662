// models/models.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Trip is the aggregate root: one planned journey and everything attached to it.
// JSON field names match the persisted store layout.
type Trip struct {
	ID          string        `json:"id"`
	Destination string        `json:"destination"`
	StartDate   time.Time     `json:"startDate"`
	EndDate     time.Time     `json:"endDate"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	Description string        `json:"description,omitempty"`
	Activities  []Activity    `json:"activities,omitempty"`
	Schedule    []DaySchedule `json:"schedule,omitempty"`
	PackingList []PackingItem `json:"packingList,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// Activity is a selectable attraction/food/entertainment/shopping item.
// Price is nil when the cost is unknown or free-form.
type Activity struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Selected    bool     `json:"selected"`
}

// DaySchedule is one calendar day of the itinerary. Day is 1-based and
// contiguous; Date is derived from the trip start date and never set directly.
type DaySchedule struct {
	Day        int        `json:"day"`
	Date       time.Time  `json:"date"`
	Activities []Activity `json:"activities"`
}

// PackingItem is a checklist entry tracked as packed/unpacked.
type PackingItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Packed      bool   `json:"packed"`
	Recommended bool   `json:"recommended,omitempty"`
}

// BudgetItem is a priced line entry. Items derived from selected activities
// carry an "activity-" prefixed ID and are recomputed on every read; manual
// items are user-entered and user-deletable.
type BudgetItem struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
}

// BudgetSummary is the aggregate view returned to the budget page.
type BudgetSummary struct {
	Items          []BudgetItem       `json:"items"`
	CategoryTotals map[string]float64 `json:"categoryTotals"`
	GrandTotal     float64            `json:"grandTotal"`
}

// PackingAnalysis is the result of a suitcase photo analysis: which packing
// list items were detected in the image and which were not.
type PackingAnalysis struct {
	Packed  []string `json:"packed"`
	Missing []string `json:"missing"`
}

// ClaudeResponse mirrors the Anthropic messages API response envelope.
type ClaudeResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// CreateTripRequest request model. Dates are "YYYY-MM-DD" or RFC 3339
// strings. ID is optional; one is generated when the client does not
// supply its own.
type CreateTripRequest struct {
	ID          string `json:"id"`
	Destination string `json:"destination" binding:"required"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
}

// UpdateTripRequest request model. Only non-nil fields are merged into the
// trip; a provided collection replaces the stored one wholesale.
type UpdateTripRequest struct {
	Destination *string        `json:"destination"`
	StartDate   *string        `json:"startDate"`
	EndDate     *string        `json:"endDate"`
	ImageURL    *string        `json:"imageUrl"`
	Description *string        `json:"description"`
	Activities  *[]Activity    `json:"activities"`
	Schedule    *[]DaySchedule `json:"schedule"`
	PackingList *[]PackingItem `json:"packingList"`
}

// SetActivitiesRequest request model, supplied by the activity selection stage.
type SetActivitiesRequest struct {
	Activities []Activity `json:"activities" binding:"required"`
}

// MoveActivityRequest request model
type MoveActivityRequest struct {
	ActivityID string `json:"activityId" binding:"required"`
	FromDay    int    `json:"fromDay" binding:"required"`
	ToDay      int    `json:"toDay" binding:"required"`
}

// RemoveActivityRequest request model
type RemoveActivityRequest struct {
	Day        int    `json:"day" binding:"required"`
	ActivityID string `json:"activityId" binding:"required"`
}

// TogglePackingItemRequest request model
type TogglePackingItemRequest struct {
	ItemID string `json:"itemId" binding:"required"`
}

// ApplyDetectionRequest carries detected item names from an external
// image-analysis pass. Only the packed names are consumed.
type ApplyDetectionRequest struct {
	Packed []string `json:"packed" binding:"required"`
}

// AddBudgetItemRequest request model, also used by the booking/deal stage.
type AddBudgetItemRequest struct {
	Category string  `json:"category" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Amount   float64 `json:"amount" binding:"min=0"`
}

// SetSessionRequest request model
type SetSessionRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// NewTrip creates a new Trip with a fresh ID and empty collections.
func NewTrip(destination string, startDate, endDate time.Time, imageURL, description string) *Trip {
	return &Trip{
		ID:          uuid.NewString(),
		Destination: destination,
		StartDate:   startDate,
		EndDate:     endDate,
		ImageURL:    imageURL,
		Description: description,
		Activities:  []Activity{},
		Schedule:    []DaySchedule{},
		PackingList: []PackingItem{},
		CreatedAt:   time.Now().UTC(),
	}
}
