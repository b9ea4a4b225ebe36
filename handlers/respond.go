package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/piggypal/piggypal-api/models"
	"github.com/piggypal/piggypal-api/utils"
)

// writeError maps service errors to HTTP responses. Validation failures
// carry the failing field so the client can highlight it.
func writeError(c *gin.Context, err error) {
	var validation *models.ValidationError
	var notFound *models.NotFoundError
	var duplicate *models.DuplicateNameError

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message, "field": validation.Field})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &duplicate):
		c.JSON(http.StatusConflict, gin.H{"error": duplicate.Error()})
	default:
		utils.SafeError("Request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
