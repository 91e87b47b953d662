// handlers/packing_handlers.go
package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/vacai/vacai-backend/models"
	"github.com/vacai/vacai-backend/services"
	"github.com/vacai/vacai-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GeneratePackingList creates the baseline checklist for a trip. If the
// trip already has a non-empty list it is returned untouched; regeneration
// would wipe the user's packed state.
func GeneratePackingList(c *gin.Context) {
	trip, err := handlerServices.TripService.GetTrip(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if len(trip.PackingList) > 0 {
		utils.HandleSuccess(c, trip.PackingList)
		return
	}

	list := handlerServices.PackingService.GenerateBaseline(trip.Destination)

	if _, err := handlerServices.TripService.UpdateTrip(trip.ID, &models.UpdateTripRequest{
		PackingList: &list,
	}); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, list)
}

// TogglePackingItem flips one item's packed flag
func TogglePackingItem(c *gin.Context) {
	var request models.TogglePackingItemRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	trip, err := handlerServices.TripService.GetTrip(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	list, err := handlerServices.PackingService.ToggleItem(trip.PackingList, request.ItemID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if _, err := handlerServices.TripService.UpdateTrip(trip.ID, &models.UpdateTripRequest{
		PackingList: &list,
	}); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{
		"packingList": list,
		"progress":    handlerServices.TripService.PackingProgress(trip.ID),
	})
}

// ApplyPackingDetection reconciles the checklist against detected item
// names from an external analysis pass. Every packed flag is overwritten:
// items the pass did not see become unpacked, including manually checked
// ones.
func ApplyPackingDetection(c *gin.Context) {
	var request models.ApplyDetectionRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	trip, err := handlerServices.TripService.GetTrip(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	list := handlerServices.PackingService.ApplyDetection(trip.PackingList, request.Packed)

	if _, err := handlerServices.TripService.UpdateTrip(trip.ID, &models.UpdateTripRequest{
		PackingList: &list,
	}); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{
		"packingList": list,
		"progress":    handlerServices.TripService.PackingProgress(trip.ID),
	})
}

// AnalyzePackingImage accepts a suitcase photo, asks the vision service
// which checklist items it shows, and reconciles the checklist with the
// result.
func AnalyzePackingImage(c *gin.Context) {
	trip, err := handlerServices.TripService.GetTrip(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if err := utils.ValidateNotEmpty(trip.PackingList, "packing list"); err != nil {
		utils.HandleError(c, err)
		return
	}

	// 1. Receive the image file
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		log.Printf("Error receiving file: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("No file uploaded or invalid form: %v", err)})
		return
	}
	defer file.Close()

	// Check file type
	ext := filepath.Ext(header.Filename)
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only JPG, JPEG, and PNG files are supported"})
		return
	}

	// Save with a unique filename
	filename := uuid.New().String() + ext
	filePath := filepath.Join("uploads", filename)

	out, err := os.Create(filePath)
	if err != nil {
		log.Printf("Error creating file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}
	defer out.Close()
	defer os.Remove(filePath)

	if _, err := io.Copy(out, file); err != nil {
		log.Printf("Error copying file data: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	fileBytes, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("Error reading saved file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read saved file"})
		return
	}

	// 2. Analyze the image
	names := handlerServices.PackingService.ItemNames(trip.PackingList)
	analysis, err := services.AnalyzePackingWithClaude(fileBytes, ext[1:], names)
	if err != nil {
		log.Printf("Error analyzing packing image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze image", "details": err.Error()})
		return
	}

	// 3. Re-fetch the trip: if it was deleted while the analysis was in
	// flight the result is discarded, never applied to a resurrected trip.
	trip, err = handlerServices.TripService.GetTrip(trip.ID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	list := handlerServices.PackingService.ApplyDetection(trip.PackingList, analysis.Packed)

	if _, err := handlerServices.TripService.UpdateTrip(trip.ID, &models.UpdateTripRequest{
		PackingList: &list,
	}); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{
		"analysis":    analysis,
		"packingList": list,
		"progress":    handlerServices.TripService.PackingProgress(trip.ID),
	})
}
