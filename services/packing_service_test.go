package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackingService_GenerateBaseline(t *testing.T) {
	service := NewPackingService()

	list := service.GenerateBaseline("Tokyo")

	assert.Len(t, list, 22)

	seen := make(map[string]bool)
	categories := make(map[string]int)
	for _, item := range list {
		assert.False(t, item.Packed, "baseline items start unpacked")
		assert.False(t, seen[item.ID], "item IDs must be unique")
		seen[item.ID] = true
		categories[item.Category]++
	}

	assert.Equal(t, 3, categories["Documents"])
	assert.Equal(t, 6, categories["Clothing"])
	assert.Equal(t, 5, categories["Toiletries"])
	assert.Equal(t, 5, categories["Electronics"])
	assert.Equal(t, 3, categories["Health"])

	// Camera and headphones are the only optional entries
	for _, item := range list {
		if item.Name == "Camera" || item.Name == "Headphones" {
			assert.False(t, item.Recommended, "%s is optional", item.Name)
		} else {
			assert.True(t, item.Recommended, "%s is recommended", item.Name)
		}
	}
}

func TestPackingService_GenerateBaseline_DestinationIndependent(t *testing.T) {
	service := NewPackingService()

	tokyo := service.GenerateBaseline("Tokyo")
	oslo := service.GenerateBaseline("Oslo")

	tokyoNames := make([]string, len(tokyo))
	osloNames := make([]string, len(oslo))
	for i := range tokyo {
		tokyoNames[i] = tokyo[i].Name
		osloNames[i] = oslo[i].Name
	}
	assert.Equal(t, tokyoNames, osloNames)
}

func TestPackingService_ToggleItem(t *testing.T) {
	service := NewPackingService()
	list := service.GenerateBaseline("Tokyo")

	next, err := service.ToggleItem(list, list[0].ID)

	assert.NoError(t, err)
	assert.True(t, next[0].Packed)
	assert.False(t, list[0].Packed, "input list is not mutated")

	// Toggling again flips it back
	again, err := service.ToggleItem(next, list[0].ID)
	assert.NoError(t, err)
	assert.False(t, again[0].Packed)
}

func TestPackingService_ToggleItem_UnknownID(t *testing.T) {
	service := NewPackingService()
	list := service.GenerateBaseline("Tokyo")

	_, err := service.ToggleItem(list, "no-such-item")

	assert.Error(t, err)
}

func TestPackingService_ApplyDetection_OverwritesAllFlags(t *testing.T) {
	service := NewPackingService()
	list := service.GenerateBaseline("Tokyo")

	// The user checked two items by hand
	list, err := service.ToggleItem(list, list[3].ID)
	assert.NoError(t, err)
	list, err = service.ToggleItem(list, list[4].ID)
	assert.NoError(t, err)

	detected := []string{
		"Passport",
		"Toothbrush",
		"toothpaste", // matching is case-insensitive
		"SHAMPOO",
		"Phone Charger",
		"Camera",
		"First Aid Kit",
	}

	next := service.ApplyDetection(list, detected)

	packed := 0
	for _, item := range next {
		if item.Packed {
			packed++
		}
	}
	assert.Equal(t, 7, packed)

	// The detection pass is a full overwrite: the hand-checked T-shirts and
	// jeans were not detected, so they are unpacked again
	assert.False(t, next[3].Packed)
	assert.False(t, next[4].Packed)
}

func TestPackingService_ApplyDetection_EmptyDetection(t *testing.T) {
	service := NewPackingService()
	list := service.GenerateBaseline("Tokyo")
	list, err := service.ToggleItem(list, list[0].ID)
	assert.NoError(t, err)

	next := service.ApplyDetection(list, nil)

	for _, item := range next {
		assert.False(t, item.Packed)
	}
}

func TestPackingService_ItemNames(t *testing.T) {
	service := NewPackingService()
	list := service.GenerateBaseline("Tokyo")

	names := service.ItemNames(list)

	assert.Len(t, names, 22)
	assert.Equal(t, "Passport", names[0])
	assert.Equal(t, "Hand Sanitizer", names[21])
}
