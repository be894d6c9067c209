package middleware

import (
	"github.com/gin-gonic/gin"

	"rw-be-svc/internal/policy"
	"rw-be-svc/internal/service"
	"rw-be-svc/pkg/logger"
	"rw-be-svc/pkg/utils"
)

// RequirePermission allows the request only when the caller's role holds permission.
// It must run after Auth.
func RequirePermission(permission policy.Permission, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			utils.UnauthorizedResponse(c, service.ErrUnauthenticated.Error())
			return
		}

		if !policy.Can(user.Role, permission) {
			log.WithFields(map[string]interface{}{
				"user_id":    user.ID,
				"role":       user.Role,
				"permission": permission,
			}).Warn("Permission denied")
			utils.ForbiddenResponse(c, service.ErrForbidden.Error())
			return
		}

		c.Next()
	}
}
