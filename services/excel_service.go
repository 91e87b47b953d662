package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/vacai/vacai-backend/models"
	"github.com/vacai/vacai-backend/utils"
	"github.com/xuri/excelize/v2"
)

// ExcelService handles Excel export functionality
type ExcelService struct {
	tripService   *TripService
	budgetService *BudgetService
}

// NewExcelService creates a new Excel service
func NewExcelService(tripService *TripService, budgetService *BudgetService) *ExcelService {
	return &ExcelService{
		tripService:   tripService,
		budgetService: budgetService,
	}
}

// ExportTripToExcel generates an Excel workbook for a trip: one sheet each
// for the itinerary, the budget, and the packing list.
func (s *ExcelService) ExportTripToExcel(tripID string) (*excelize.File, string, error) {
	trip, err := s.tripService.GetTrip(tripID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get trip: %v", err)
	}

	budget, err := s.budgetService.Summary(tripID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get budget: %v", err)
	}

	// Create Excel file
	f := excelize.NewFile()

	if err := s.createItinerarySheet(f, trip); err != nil {
		return nil, "", fmt.Errorf("failed to create itinerary sheet: %v", err)
	}

	if err := s.createBudgetSheet(f, budget); err != nil {
		return nil, "", fmt.Errorf("failed to create budget sheet: %v", err)
	}

	if err := s.createPackingSheet(f, trip); err != nil {
		return nil, "", fmt.Errorf("failed to create packing sheet: %v", err)
	}

	// Delete the default sheet if it exists
	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("%s_Trip_%s.xlsx",
		utils.CleanFileName(trip.Destination),
		time.Now().Format("2006-01-02"))

	return f, filename, nil
}

// createItinerarySheet creates Sheet 1: the day-by-day schedule
func (s *ExcelService) createItinerarySheet(f *excelize.File, trip *models.Trip) error {
	sheetName := "Itinerary"
	f.NewSheet(sheetName)
	sheetIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIndex)

	f.SetCellValue(sheetName, "A1", trip.Destination)
	f.SetCellValue(sheetName, "B1", fmt.Sprintf("%s to %s",
		trip.StartDate.Format("2006-01-02"),
		trip.EndDate.Format("2006-01-02")))

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	f.SetCellStyle(sheetName, "A1", "A1", titleStyle)

	// Set headers
	headers := []string{"Day", "Date", "Activity", "Category", "Price"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s3", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A3", "E3", headerStyle)

	row := 4
	for _, day := range trip.Schedule {
		if len(day.Activities) == 0 {
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), day.Day)
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), day.Date.Format("2006-01-02"))
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), "(free day)")
			row++
			continue
		}
		for _, activity := range day.Activities {
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), day.Day)
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), day.Date.Format("2006-01-02"))
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), activity.Name)
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), activity.Category)
			if activity.Price != nil {
				f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), *activity.Price)
			}
			row++
		}
	}

	f.SetColWidth(sheetName, "A", "B", 12)
	f.SetColWidth(sheetName, "C", "C", 30)
	f.SetColWidth(sheetName, "D", "E", 14)

	return nil
}

// createBudgetSheet creates Sheet 2: budget lines and totals
func (s *ExcelService) createBudgetSheet(f *excelize.File, budget *models.BudgetSummary) error {
	sheetName := "Budget"
	f.NewSheet(sheetName)

	// Set headers
	headers := []string{"Category", "Name", "Amount"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", "C1", headerStyle)

	for i, item := range budget.Items {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), item.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), item.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), item.Amount)
	}

	// Totals section
	totalsStartRow := len(budget.Items) + 4
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", totalsStartRow), "Category Totals:")

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", totalsStartRow), fmt.Sprintf("A%d", totalsStartRow), boldStyle)

	// Sort categories for consistent output
	var categories []string
	for category := range budget.CategoryTotals {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	row := totalsStartRow + 1
	for _, category := range categories {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), category)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), budget.CategoryTotals[category])
		row++
	}

	row++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Grand Total")
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), budget.GrandTotal)
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("C%d", row), boldStyle)

	f.SetColWidth(sheetName, "A", "B", 20)
	f.SetColWidth(sheetName, "C", "C", 12)

	return nil
}

// createPackingSheet creates Sheet 3: the packing checklist
func (s *ExcelService) createPackingSheet(f *excelize.File, trip *models.Trip) error {
	sheetName := "Packing List"
	f.NewSheet(sheetName)

	// Set headers
	headers := []string{"Item", "Category", "Packed", "Recommended"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", "D1", headerStyle)

	packed := 0
	for i, item := range trip.PackingList {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), item.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), item.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), yesNo(item.Packed))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), yesNo(item.Recommended))
		if item.Packed {
			packed++
		}
	}

	if len(trip.PackingList) > 0 {
		row := len(trip.PackingList) + 3
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row),
			fmt.Sprintf("Packed %d of %d items", packed, len(trip.PackingList)))
	}

	f.SetColWidth(sheetName, "A", "B", 20)
	f.SetColWidth(sheetName, "C", "D", 12)

	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
