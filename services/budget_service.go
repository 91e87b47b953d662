// services/budget_service.go
package services

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/vacai/vacai-backend/models"
	"github.com/vacai/vacai-backend/utils"
)

// BudgetService aggregates budget lines for a trip. Lines come from two
// places: activity lines are recomputed from the trip's selected, priced
// activities on every read, so deselecting an activity drops its line with
// no separate bookkeeping; manual lines are entered by the user (or merged
// in from the deal search stage) and live for the process lifetime.
type BudgetService struct {
	tripService *TripService
	mu          sync.Mutex
	manual      map[string][]models.BudgetItem
}

// NewBudgetService creates a new budget service
func NewBudgetService(tripService *TripService) *BudgetService {
	return &BudgetService{
		tripService: tripService,
		manual:      make(map[string][]models.BudgetItem),
	}
}

// ActivityItems derives one budget line per selected activity with a known
// price. Line IDs are deterministic so a recomputation replaces rather
// than duplicates.
func (s *BudgetService) ActivityItems(trip *models.Trip) []models.BudgetItem {
	items := []models.BudgetItem{}
	for _, activity := range trip.Activities {
		if !activity.Selected || activity.Price == nil {
			continue
		}
		items = append(items, models.BudgetItem{
			ID:       utils.ActivityBudgetPrefix + activity.ID,
			Category: utils.BudgetCategoryActivities,
			Name:     activity.Name,
			Amount:   *activity.Price,
		})
	}
	return items
}

// Summary returns all budget lines for a trip with per-category and grand
// totals.
func (s *BudgetService) Summary(tripID string) (*models.BudgetSummary, error) {
	trip, err := s.tripService.GetTrip(tripID)
	if err != nil {
		return nil, err
	}

	items := s.ActivityItems(trip)

	s.mu.Lock()
	items = append(items, s.manual[tripID]...)
	s.mu.Unlock()

	categoryTotals := make(map[string]float64)
	grandTotal := 0.0
	for _, item := range items {
		categoryTotals[item.Category] = utils.Round(categoryTotals[item.Category] + item.Amount)
		grandTotal += item.Amount
	}

	return &models.BudgetSummary{
		Items:          items,
		CategoryTotals: categoryTotals,
		GrandTotal:     utils.Round(grandTotal),
	}, nil
}

// CategoryTotal returns the total for one category.
func (s *BudgetService) CategoryTotal(tripID, category string) (float64, error) {
	summary, err := s.Summary(tripID)
	if err != nil {
		return 0, err
	}
	return summary.CategoryTotals[category], nil
}

// AddItem records a manual budget line for a trip.
func (s *BudgetService) AddItem(tripID, category, name string, amount float64) (*models.BudgetItem, error) {
	if _, err := s.tripService.GetTrip(tripID); err != nil {
		return nil, err
	}
	if err := utils.ValidateRequired(category, "category"); err != nil {
		return nil, err
	}
	if err := utils.ValidateRequired(name, "name"); err != nil {
		return nil, err
	}
	if err := utils.ValidateNonNegative(amount, "amount"); err != nil {
		return nil, err
	}

	item := models.BudgetItem{
		ID:       "manual-" + uuid.NewString(),
		Category: category,
		Name:     name,
		Amount:   utils.Round(amount),
	}

	s.mu.Lock()
	s.manual[tripID] = append(s.manual[tripID], item)
	s.mu.Unlock()

	return &item, nil
}

// RemoveItem deletes a manual budget line. Activity-derived lines cannot
// be deleted here: they disappear when the activity is deselected.
func (s *BudgetService) RemoveItem(tripID, itemID string) error {
	if strings.HasPrefix(itemID, utils.ActivityBudgetPrefix) {
		return utils.NewValidationError("activity budget lines cannot be deleted; deselect the activity instead")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.manual[tripID]
	for i, item := range items {
		if item.ID == itemID {
			s.manual[tripID] = append(items[:i:i], items[i+1:]...)
			return nil
		}
	}
	return utils.NewNotFoundError("budget item")
}

// DropTrip discards the manual lines of a deleted trip.
func (s *BudgetService) DropTrip(tripID string) {
	s.mu.Lock()
	delete(s.manual, tripID)
	s.mu.Unlock()
}
