package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"rw-be-svc/pkg/logger"
	"rw-be-svc/pkg/utils"
)

// ErrorHandler recovers panics into a 500 envelope
func ErrorHandler(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.WithFields(map[string]interface{}{
			"panic":  fmt.Sprint(recovered),
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("Recovered from panic")
		utils.InternalServerErrorResponse(c, "Internal server error", fmt.Errorf("%v", recovered))
	})
}

// NoRouteHandler answers unknown paths
func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.NotFoundResponse(c, fmt.Sprintf("Route %s %s not found", c.Request.Method, c.Request.URL.Path))
	}
}

// NoMethodHandler answers known paths with an unsupported method
func NoMethodHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.ErrorResponse(c, http.StatusMethodNotAllowed, "Method not allowed", nil)
	}
}
