// internal/interfaces/http/handlers/respond.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/pkg/apperror"
)

// respondError maps a service error onto the failure envelope. Clients get
// the stable reason; the underlying cause rides along for operators only.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		status = http.StatusBadRequest
	case apperror.KindNotFound:
		status = http.StatusNotFound
	case apperror.KindConflict:
		status = http.StatusConflict
	case apperror.KindUpstreamFailure:
		status = http.StatusBadGateway
	}

	payload := gin.H{"error": apperror.ReasonOf(err)}

	var appErr *apperror.Error
	if errors.As(err, &appErr) && appErr.Err != nil {
		payload["details"] = appErr.Err.Error()
	}

	c.JSON(status, payload)
}

// respondOK wraps a success payload in the standard envelope
func respondOK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{
		"message": message,
		"data":    data,
	})
}
