package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rw-be-svc/internal/models"
	"rw-be-svc/internal/models/response"
	"rw-be-svc/internal/service"
	"rw-be-svc/pkg/logger"
	"rw-be-svc/pkg/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// UserHandler handles user administration requests
type UserHandler struct {
	userService service.UserService
	logger      *logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserService, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// CreateUserRequest represents an account created by an admin
type CreateUserRequest struct {
	Username string `json:"username" example:"farhan"`
	Password string `json:"password" example:"12345678"`
	Name     string `json:"name" example:"Farhan"`
	Email    string `json:"email" example:"farhan@example.com"`
	Role     string `json:"role" example:"rt"`
	RTNumber string `json:"rt_number" example:"01"`
}

// UpdateUserRequest represents a partial account update. Omitted fields are left untouched.
type UpdateUserRequest struct {
	Username *string `json:"username" example:"farhan"`
	Name     *string `json:"name" example:"Farhan"`
	Email    *string `json:"email" example:"farhan@example.com"`
	Role     *string `json:"role" example:"rt"`
	RTNumber *string `json:"rt_number" example:"01"`
	Password *string `json:"password" example:"barubaru"`
}

// GetUsers handles GET /api/v1/user
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=[]response.UserResponse} "Users retrieved successfully"
// @Failure 403 {object} utils.APIResponse "Forbidden"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/user [get]
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to get users")
		return
	}

	if users == nil {
		users = []*response.UserResponse{}
	}
	utils.SuccessResponse(c, "Users retrieved successfully", users)
}

// CreateUser handles POST /api/v1/user
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateUserRequest true "User data"
// @Success 201 {object} utils.APIResponse{data=response.UserResponse} "User berhasil dibuat"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 409 {object} utils.APIResponse "Username or email taken"
// @Router /api/v1/user [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), service.NewUserInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Email:    req.Email,
		Role:     models.Role(req.Role),
		RTNumber: req.RTNumber,
	})
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to create user")
		return
	}

	utils.CreatedResponse(c, "User berhasil dibuat", user)
}

// UpdateUser handles PUT /api/v1/user/:id
// @Summary Update a user
// @Description Partial update; a new password is hashed before it is stored
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=response.UserResponse} "User berhasil diperbarui"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "User not found"
// @Failure 409 {object} utils.APIResponse "Username or email taken"
// @Router /api/v1/user/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := utils.GetIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	input := service.UpdateUserInput{
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		RTNumber: req.RTNumber,
		Password: req.Password,
	}
	if req.Role != nil {
		role := models.Role(*req.Role)
		input.Role = &role
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, input)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to update user")
		return
	}

	utils.SuccessResponse(c, "User berhasil diperbarui", user)
}

// DeleteUser handles DELETE /api/v1/user/:id
// @Summary Delete a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} utils.APIResponse "User berhasil dihapus"
// @Failure 404 {object} utils.APIResponse "User not found"
// @Router /api/v1/user/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := utils.GetIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", err)
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		handleServiceError(c, h.logger, err, "Failed to delete user")
		return
	}

	utils.SuccessResponse(c, "User berhasil dihapus", nil)
}

// ExportUsers handles GET /api/v1/user/export-users
// @Summary Export users
// @Description Download every account as an xlsx workbook (sheet Users)
// @Tags users
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file "users.xlsx"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/user/export-users [get]
func (h *UserHandler) ExportUsers(c *gin.Context) {
	buffer, err := h.userService.ExportUsers(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to export users")
		return
	}

	filename := fmt.Sprintf("users_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buffer.Bytes())
}

// ImportUsers handles POST /api/v1/user/import-users
// @Summary Import users
// @Description Create accounts from the Users sheet. Existing usernames are skipped; imported accounts get the default password.
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "xlsx workbook"
// @Success 200 {object} utils.APIResponse{data=response.ImportUsersResponse} "Import selesai"
// @Failure 400 {object} utils.APIResponse "Invalid workbook"
// @Router /api/v1/user/import-users [post]
func (h *UserHandler) ImportUsers(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		handleServiceError(c, h.logger, service.ErrFileRequired, "")
		return
	}

	opened, err := file.Open()
	if err != nil {
		h.logger.WithError(err).Error("Failed to open uploaded workbook")
		utils.InternalServerErrorResponse(c, "Failed to read file", err)
		return
	}
	defer opened.Close()

	result, err := h.userService.ImportUsers(c.Request.Context(), opened)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to import users")
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"filename": file.Filename,
		"imported": result.Imported,
		"skipped":  result.Skipped,
	}).Info("User import finished")

	utils.SuccessResponse(c, "Import selesai", result)
}
