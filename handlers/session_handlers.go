// handlers/session_handlers.go
package handlers

import (
	"github.com/vacai/vacai-backend/models"
	"github.com/vacai/vacai-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetSession returns the active user pointer, or an empty string when
// nobody is signed in.
func GetSession(c *gin.Context) {
	userID, err := handlerServices.Sessions.GetCurrentUser()
	if err != nil {
		utils.HandleError(c, utils.NewInternalError(utils.ErrFailedToRetrieve))
		return
	}

	utils.HandleSuccess(c, gin.H{"userId": userID})
}

// SetSession stores the active user pointer
func SetSession(c *gin.Context) {
	var request models.SetSessionRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := handlerServices.Sessions.SetCurrentUser(request.UserID); err != nil {
		utils.HandleError(c, utils.NewStorageError(utils.ErrFailedToStore))
		return
	}

	utils.HandleSuccess(c, gin.H{"userId": request.UserID})
}

// ClearSession removes the active user pointer
func ClearSession(c *gin.Context) {
	if err := handlerServices.Sessions.ClearCurrentUser(); err != nil {
		utils.HandleError(c, utils.NewStorageError(utils.ErrFailedToStore))
		return
	}

	utils.HandleSuccess(c, gin.H{"cleared": true})
}
