package handler

import (
	"github.com/gin-gonic/gin"

	"rw-be-svc/internal/models"
	"rw-be-svc/internal/service"
	"rw-be-svc/pkg/logger"
	"rw-be-svc/pkg/utils"
)

// ProfileHandler handles self-service account requests
type ProfileHandler struct {
	profileService service.ProfileService
	logger         *logger.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService service.ProfileService, logger *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// EditProfileRequest represents a partial profile update. Omitted fields are left untouched.
type EditProfileRequest struct {
	Username *string `json:"username" example:"budi"`
	Name     *string `json:"name" example:"Budi Santoso"`
	Email    *string `json:"email" example:"budi@example.com"`
	Role     *string `json:"role" example:"warga"`
	RTNumber *string `json:"rt_number" example:"01"`
}

// UpdatePasswordRequest represents a password change
type UpdatePasswordRequest struct {
	OldPassword     string `json:"old_password" example:"lama1234"`
	NewPassword     string `json:"new_password" example:"baru5678"`
	ConfirmPassword string `json:"confirm_password" example:"baru5678"`
}

// GetProfile handles GET /api/v1/profile/getProfile
// @Summary Get own profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=response.UserResponse} "Profile retrieved successfully"
// @Failure 401 {object} utils.APIResponse "Please authenticate."
// @Router /api/v1/profile/getProfile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), user.ID)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to get profile")
		return
	}

	utils.SuccessResponse(c, "Profile retrieved successfully", profile)
}

// EditProfile handles PATCH /api/v1/profile/editProfile/:id
// @Summary Edit a profile
// @Description Users edit their own profile; admin and rw may edit anyone and change roles.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body EditProfileRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=response.UserResponse} "Profil berhasil diperbarui"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 403 {object} utils.APIResponse "Forbidden"
// @Failure 404 {object} utils.APIResponse "User not found"
// @Failure 409 {object} utils.APIResponse "Username or email taken"
// @Router /api/v1/profile/editProfile/{id} [patch]
func (h *ProfileHandler) EditProfile(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	targetID, err := utils.GetIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", err)
		return
	}

	var req EditProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	input := service.ProfileInput{
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		RTNumber: req.RTNumber,
	}
	if req.Role != nil {
		role := models.Role(*req.Role)
		input.Role = &role
	}

	updated, err := h.profileService.EditProfile(c.Request.Context(), user.ID, user.Role, targetID, input)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to update profile")
		return
	}

	utils.SuccessResponse(c, "Profil berhasil diperbarui", updated)
}

// UpdatePassword handles PATCH /api/v1/profile/updatePassword/:id
// @Summary Change password
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body UpdatePasswordRequest true "Passwords"
// @Success 200 {object} utils.APIResponse "Password berhasil diperbarui"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 403 {object} utils.APIResponse "Forbidden"
// @Router /api/v1/profile/updatePassword/{id} [patch]
func (h *ProfileHandler) UpdatePassword(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	targetID, err := utils.GetIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", err)
		return
	}

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	err = h.profileService.UpdatePassword(c.Request.Context(), user.ID, user.Role, targetID, service.PasswordInput{
		OldPassword:     req.OldPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to update password")
		return
	}

	utils.SuccessResponse(c, "Password berhasil diperbarui", nil)
}
