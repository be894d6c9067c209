package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"rw-be-svc/internal/models"
	"rw-be-svc/internal/service"
	"rw-be-svc/pkg/logger"
	"rw-be-svc/pkg/utils"
)

// CurrentUserKey is the gin context key holding the authenticated *models.User
const CurrentUserKey = "current_user"

var (
	errMissingAuthHeader = errors.New("missing Authorization header")
	errMalformedHeader   = errors.New("malformed Authorization header")
)

// Auth rejects requests without a valid bearer token
func Auth(authService service.AuthService, log *logger.Logger) gin.HandlerFunc {
	return authenticate(authService, log, false)
}

// OptionalAuth resolves a bearer token when one is sent and continues anonymously otherwise.
// A token that is present but invalid is still rejected.
func OptionalAuth(authService service.AuthService, log *logger.Logger) gin.HandlerFunc {
	return authenticate(authService, log, true)
}

func authenticate(authService service.AuthService, log *logger.Logger, optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractToken(c)
		if err != nil {
			if optional && errors.Is(err, errMissingAuthHeader) {
				c.Next()
				return
			}
			log.WithError(err).WithField("path", c.Request.URL.Path).Debug("Auth middleware: no usable token")
			utils.UnauthorizedResponse(c, service.ErrUnauthenticated.Error())
			return
		}

		user, err := authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, service.ErrUnauthenticated) {
				log.WithError(err).Error("Auth middleware: failed to resolve user")
			}
			utils.UnauthorizedResponse(c, service.ErrUnauthenticated.Error())
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user attached by Auth or OptionalAuth
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, ok := c.Get(CurrentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok && user != nil
}

// CurrentUserID returns the caller's id, or nil for anonymous requests
func CurrentUserID(c *gin.Context) *uint {
	user, ok := CurrentUser(c)
	if !ok {
		return nil
	}
	id := user.ID
	return &id
}

func extractToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", errMissingAuthHeader
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errMalformedHeader
	}
	return parts[1], nil
}
