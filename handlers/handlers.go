package handlers

import (
	"github.com/vacai/vacai-backend/repository"
	"github.com/vacai/vacai-backend/services"
)

// HandlerServices contains all service dependencies
type HandlerServices struct {
	TripService     *services.TripService
	ScheduleService *services.ScheduleService
	PackingService  *services.PackingService
	BudgetService   *services.BudgetService
	ExcelService    *services.ExcelService
	Sessions        *repository.SessionRepository
}

// NewHandlerServices creates a new handler services instance
func NewHandlerServices() *HandlerServices {
	tripService := services.NewTripService(repository.NewTripRepository())
	budgetService := services.NewBudgetService(tripService)
	return &HandlerServices{
		TripService:     tripService,
		ScheduleService: services.NewScheduleService(),
		PackingService:  services.NewPackingService(),
		BudgetService:   budgetService,
		ExcelService:    services.NewExcelService(tripService, budgetService),
		Sessions:        repository.NewSessionRepository(),
	}
}

var handlerServices *HandlerServices

// InitHandlers initializes the handler services
func InitHandlers() {
	handlerServices = NewHandlerServices()
}
