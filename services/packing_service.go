// services/packing_service.go
package services

import (
	"github.com/google/uuid"

	"github.com/vacai/vacai-backend/models"
	"github.com/vacai/vacai-backend/utils"
)

// PackingService handles packing checklist generation and reconciliation.
type PackingService struct{}

// NewPackingService creates a new packing service
func NewPackingService() *PackingService {
	return &PackingService{}
}

// baselineItem is one row of the static recommendation table.
type baselineItem struct {
	name        string
	category    string
	recommended bool
}

// The baseline set is destination-independent. Camera and headphones are
// the only entries not flagged as recommended.
var baselineItems = []baselineItem{
	{"Passport", "Documents", true},
	{"Travel Insurance", "Documents", true},
	{"Flight Tickets", "Documents", true},
	{"T-Shirts (5)", "Clothing", true},
	{"Pants/Jeans (3)", "Clothing", true},
	{"Underwear (7)", "Clothing", true},
	{"Socks (7 pairs)", "Clothing", true},
	{"Comfortable Shoes", "Clothing", true},
	{"Jacket/Sweater", "Clothing", true},
	{"Toothbrush", "Toiletries", true},
	{"Toothpaste", "Toiletries", true},
	{"Shampoo", "Toiletries", true},
	{"Deodorant", "Toiletries", true},
	{"Sunscreen", "Toiletries", true},
	{"Phone Charger", "Electronics", true},
	{"Power Bank", "Electronics", true},
	{"Camera", "Electronics", false},
	{"Headphones", "Electronics", false},
	{"Travel Adapter", "Electronics", true},
	{"First Aid Kit", "Health", true},
	{"Medications", "Health", true},
	{"Hand Sanitizer", "Health", true},
}

// GenerateBaseline returns a fresh baseline packing list. Callers must
// check for an existing non-empty list first; regeneration would discard
// the user's packed state.
func (s *PackingService) GenerateBaseline(destination string) []models.PackingItem {
	items := make([]models.PackingItem, 0, len(baselineItems))
	for _, item := range baselineItems {
		items = append(items, models.PackingItem{
			ID:          uuid.NewString(),
			Name:        item.name,
			Category:    item.category,
			Packed:      false,
			Recommended: item.recommended,
		})
	}
	return items
}

// ToggleItem flips the packed flag of one item and returns the new list.
func (s *PackingService) ToggleItem(list []models.PackingItem, itemID string) ([]models.PackingItem, error) {
	found := false
	next := make([]models.PackingItem, len(list))
	for i, item := range list {
		next[i] = item
		if item.ID == itemID {
			next[i].Packed = !item.Packed
			found = true
		}
	}
	if !found {
		return nil, utils.NewNotFoundError("packing item")
	}
	return next, nil
}

// ApplyDetection overwrites every packed flag from a set of detected item
// names. Matching is a case-insensitive exact name comparison. Items the
// detection pass did not see become unpacked, including ones the user had
// checked by hand.
func (s *PackingService) ApplyDetection(list []models.PackingItem, detected []string) []models.PackingItem {
	detectedSet := make(map[string]bool, len(detected))
	for _, name := range utils.NormalizeNames(detected) {
		detectedSet[name] = true
	}

	next := make([]models.PackingItem, len(list))
	for i, item := range list {
		next[i] = item
		next[i].Packed = detectedSet[utils.NormalizeName(item.Name)]
	}
	return next
}

// ItemNames returns the list's item names, in order. Used to tell the
// vision collaborator what to look for.
func (s *PackingService) ItemNames(list []models.PackingItem) []string {
	names := make([]string, len(list))
	for i, item := range list {
		names[i] = item.Name
	}
	return names
}
