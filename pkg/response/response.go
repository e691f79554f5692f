package response

import (
	"errors"
	"net/http"

	"marketplace-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// The web client consumes unenveloped JSON bodies: success payloads are
// returned as-is, failures as {"error": message} plus any error metadata
// (e.g. needs_onboarding).

// OK sends a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		body := gin.H{"error": appErr.Message}
		for k, v := range appErr.Meta {
			body[k] = v
		}
		c.JSON(appErr.HTTPStatus, body)
		return
	}

	// Unknown error -> 500
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
