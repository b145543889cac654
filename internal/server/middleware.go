package server

import (
	"time"

	"auction-market/services/market/helpers"
	"auction-market/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	fields := map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	}
	if principal := c.GetHeader(helpers.PrincipalHeader); principal != "" {
		fields["principal"] = principal
	}
	utils.Info("HTTP Request", fields)
}
