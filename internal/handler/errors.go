package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rw-be-svc/internal/middleware"
	"rw-be-svc/internal/models"
	"rw-be-svc/internal/service"
	"rw-be-svc/internal/storage"
	"rw-be-svc/pkg/logger"
	"rw-be-svc/pkg/utils"
)

// errorStatuses maps service sentinels to HTTP status codes.
// Errors not listed here are reported as 500.
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrUsernameTaken, http.StatusConflict},
	{service.ErrEmailTaken, http.StatusConflict},

	{service.ErrMissingFields, http.StatusBadRequest},
	{service.ErrInvalidRole, http.StatusBadRequest},
	{service.ErrRTNumberRequired, http.StatusBadRequest},
	{service.ErrRTNumberTaken, http.StatusBadRequest},
	{service.ErrRWExists, http.StatusBadRequest},
	{service.ErrNothingToUpdate, http.StatusBadRequest},
	{service.ErrWrongOldPassword, http.StatusBadRequest},
	{service.ErrPasswordMismatch, http.StatusBadRequest},
	{service.ErrPasswordTooShort, http.StatusBadRequest},
	{service.ErrFileRequired, http.StatusBadRequest},
	{service.ErrSheetNotFound, http.StatusBadRequest},
	{service.ErrInvalidWorkbook, http.StatusBadRequest},
	{service.ErrMissingColumns, http.StatusBadRequest},
	{service.ErrComplaintIncomplete, http.StatusBadRequest},
	{service.ErrStatusRequired, http.StatusBadRequest},
	{service.ErrInvalidVoteType, http.StatusBadRequest},
	{service.ErrEmptyComment, http.StatusBadRequest},
	{service.ErrInvalidTransactionType, http.StatusBadRequest},
	{service.ErrInvalidAmount, http.StatusBadRequest},
	{service.ErrCategoryRequired, http.StatusBadRequest},
	{service.ErrInvalidDate, http.StatusBadRequest},
	{service.ErrInvalidMonth, http.StatusBadRequest},
	{storage.ErrPhotoTooLarge, http.StatusBadRequest},
	{storage.ErrNotAnImage, http.StatusBadRequest},

	{service.ErrUnauthenticated, http.StatusUnauthorized},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrFilterRequiresLogin, http.StatusUnauthorized},

	{service.ErrForbidden, http.StatusForbidden},
	{service.ErrCommentForbidden, http.StatusForbidden},

	{service.ErrUserNotFound, http.StatusNotFound},
	{service.ErrComplaintNotFound, http.StatusNotFound},
	{service.ErrCommentNotFound, http.StatusNotFound},
	{service.ErrEmailNotRegistered, http.StatusNotFound},

	{service.ErrOAuthDisabled, http.StatusServiceUnavailable},
}

// statusFor returns the HTTP status for a service error, or 500 when unknown
func statusFor(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// handleServiceError writes the error envelope for err.
// Known sentinels carry their own message; anything else becomes a 500 with fallback.
func handleServiceError(c *gin.Context, log *logger.Logger, err error, fallback string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.WithError(err).WithField("path", c.Request.URL.Path).Error(fallback)
		utils.InternalServerErrorResponse(c, fallback, err)
		return
	}
	utils.ErrorResponse(c, status, err.Error(), nil)
}

// requireUser returns the authenticated caller or writes a 401
func requireUser(c *gin.Context) (*models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, service.ErrUnauthenticated.Error())
		return nil, false
	}
	return user, true
}
