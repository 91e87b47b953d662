// handlers/budget_handlers.go
package handlers

import (
	"github.com/vacai/vacai-backend/models"
	"github.com/vacai/vacai-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetBudget returns all budget lines for a trip with category and grand
// totals. Activity lines are recomputed on every call, so the response
// always reflects the current activity selection.
func GetBudget(c *gin.Context) {
	summary, err := handlerServices.BudgetService.Summary(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, summary)
}

// AddBudgetItem records a manual budget line. The booking/deal stage uses
// the same endpoint to merge selected deals into the budget.
func AddBudgetItem(c *gin.Context) {
	var request models.AddBudgetItemRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	item, err := handlerServices.BudgetService.AddItem(c.Param("id"), request.Category, request.Name, request.Amount)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, item)
}

// RemoveBudgetItem deletes a manual budget line
func RemoveBudgetItem(c *gin.Context) {
	if err := handlerServices.BudgetService.RemoveItem(c.Param("id"), c.Param("itemId")); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"deleted": true})
}
