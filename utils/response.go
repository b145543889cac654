package utils

import (
	"auction-market/internal/marketerrors"

	"github.com/gin-gonic/gin"
)

// JSONResponse sends a structured JSON response
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError sends a structured error response. Reverted transactions also
// carry their revert reason.
func JSONError(c *gin.Context, status int, err error, message string) {
	body := gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	}
	if reason, ok := marketerrors.Reason(err); ok {
		body["reason"] = reason
	}
	c.JSON(status, body)
}
