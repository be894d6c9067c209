package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rw-be-svc/internal/models"
	"rw-be-svc/internal/models/response"
	"rw-be-svc/internal/service"
	"rw-be-svc/pkg/logger"
	"rw-be-svc/pkg/utils"
)

const oauthStateCookie = "oauth_state"

// AuthHandler handles registration, login and Google sign-in
type AuthHandler struct {
	authService  service.AuthService
	oauthService service.OAuthService
	logger       *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService, oauthService service.OAuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		oauthService: oauthService,
		logger:       logger,
	}
}

// RegisterRequest represents the registration payload
type RegisterRequest struct {
	Username string `json:"username" example:"budi"`
	Password string `json:"password" example:"rahasia123"`
	Name     string `json:"name" example:"Budi Santoso"`
	Email    string `json:"email" example:"budi@example.com"`
	Role     string `json:"role" example:"warga"`
	RTNumber string `json:"rt_number" example:"01"`
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Username string `json:"username" example:"budi"`
	Password string `json:"password" example:"rahasia123"`
}

// Register handles POST /api/v1/auth/register
// @Summary Register a new account
// @Description Create an account and return a signed token. Role defaults to warga.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} utils.APIResponse{data=response.AuthResponse} "Registrasi berhasil"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 409 {object} utils.APIResponse "Username or email taken"
// @Failure 429 {object} utils.APIResponse "Too many requests"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Warn("Invalid registration body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), service.NewUserInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Email:    req.Email,
		Role:     models.Role(req.Role),
		RTNumber: req.RTNumber,
	})
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to register user")
		return
	}

	utils.CreatedResponse(c, "Registrasi berhasil", resp)
}

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Description Verify username and password and return a signed token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse{data=response.AuthResponse} "Login berhasil"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 401 {object} utils.APIResponse "Username atau password salah"
// @Failure 429 {object} utils.APIResponse "Too many requests"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to log in")
		return
	}

	utils.SuccessResponse(c, "Login berhasil", resp)
}

// Verify handles GET /api/v1/auth/verify
// @Summary Verify token
// @Description Return the user the bearer token belongs to
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=response.AuthResponse} "Token valid"
// @Failure 401 {object} utils.APIResponse "Please authenticate."
// @Router /api/v1/auth/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	utils.SuccessResponse(c, "Token valid", response.AuthResponse{User: response.NewUserResponse(user)})
}

// GoogleLogin handles GET /api/v1/auth/google
// @Summary Start Google sign-in
// @Description Redirect to the Google consent page
// @Tags auth
// @Success 302 "Redirect to Google"
// @Failure 503 {object} utils.APIResponse "Google login is not configured"
// @Router /api/v1/auth/google [get]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	if !h.oauthService.Enabled() {
		handleServiceError(c, h.logger, service.ErrOAuthDisabled, "")
		return
	}

	state := uuid.New().String()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 600, "/", "", gin.Mode() == gin.ReleaseMode, true)
	c.Redirect(http.StatusFound, h.oauthService.AuthCodeURL(state))
}

// GoogleCallback handles GET /api/v1/auth/google/callback
// @Summary Google sign-in callback
// @Description Exchange the code and redirect to the front end with a token or an error code
// @Tags auth
// @Param code query string true "Authorization code"
// @Param state query string true "State"
// @Success 302 "Redirect to the front end"
// @Failure 503 {object} utils.APIResponse "Google login is not configured"
// @Router /api/v1/auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	if !h.oauthService.Enabled() {
		handleServiceError(c, h.logger, service.ErrOAuthDisabled, "")
		return
	}

	state, err := c.Cookie(oauthStateCookie)
	c.SetCookie(oauthStateCookie, "", -1, "/", "", gin.Mode() == gin.ReleaseMode, true)
	if err != nil || state == "" || state != c.Query("state") {
		h.logger.WithField("client_ip", c.ClientIP()).Warn("Google callback with invalid state")
		c.Redirect(http.StatusFound, h.oauthService.FrontendRedirect("", service.ErrOAuthExchange))
		return
	}

	code := c.Query("code")
	if code == "" || c.Query("error") != "" {
		c.Redirect(http.StatusFound, h.oauthService.FrontendRedirect("", service.ErrOAuthExchange))
		return
	}

	token, err := h.oauthService.HandleCallback(c.Request.Context(), code)
	c.Redirect(http.StatusFound, h.oauthService.FrontendRedirect(token, err))
}
