package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rw-be-svc/internal/middleware"
	"rw-be-svc/internal/policy"
	"rw-be-svc/internal/service"
	"rw-be-svc/pkg/logger"
)

// Dependencies carries everything the route table needs
type Dependencies struct {
	AuthService        service.AuthService
	OAuthService       service.OAuthService
	UserService        service.UserService
	ProfileService     service.ProfileService
	ComplaintService   service.ComplaintService
	VoteService        service.VoteService
	CommentService     service.CommentService
	TransactionService service.TransactionService
	Logger             *logger.Logger

	// RateLimiter is nil when no Redis is configured; limits are then skipped.
	RateLimiter     redis.Cmdable
	RateLimitMax    int
	RateLimitWindow time.Duration

	// EnforceAdminRoutes gates /user behind the user:manage permission
	EnforceAdminRoutes bool

	// UploadDir is served under /uploads; empty when photos live in object storage
	UploadDir string
}

// SetupRoutes sets up all API routes
func SetupRoutes(router *gin.Engine, deps Dependencies) error {
	if err := middleware.RegisterValidators(); err != nil {
		return err
	}

	log := deps.Logger

	// Initialize handlers
	authHandler := NewAuthHandler(deps.AuthService, deps.OAuthService, log)
	userHandler := NewUserHandler(deps.UserService, log)
	profileHandler := NewProfileHandler(deps.ProfileService, log)
	complaintHandler := NewComplaintHandler(deps.ComplaintService, deps.VoteService, deps.CommentService, log)
	transactionHandler := NewTransactionHandler(deps.TransactionService, log)

	requireAuth := middleware.Auth(deps.AuthService, log)
	optionalAuth := middleware.OptionalAuth(deps.AuthService, log)
	authLimit := middleware.RateLimit(deps.RateLimiter, "auth", deps.RateLimitMax, deps.RateLimitWindow, log)
	voteLimit := middleware.RateLimit(deps.RateLimiter, "vote", deps.RateLimitMax, deps.RateLimitWindow, log)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if deps.UploadDir != "" {
		router.Static("/uploads", deps.UploadDir)
	}

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		auth := v1.Group("/auth")
		{
			auth.POST("/register", authLimit, authHandler.Register)
			auth.POST("/login", authLimit, authHandler.Login)
			auth.GET("/verify", requireAuth, authHandler.Verify)
			auth.GET("/google", authHandler.GoogleLogin)
			auth.GET("/google/callback", authHandler.GoogleCallback)
		}

		complaints := v1.Group("/complaints")
		{
			complaints.POST("", requireAuth, complaintHandler.CreateComplaint)
			complaints.GET("", optionalAuth, complaintHandler.ListComplaints)
			complaints.GET("/:id", optionalAuth, complaintHandler.GetComplaint)
			complaints.PATCH("/:id/status", requireAuth,
				middleware.RequirePermission(policy.ComplaintUpdateStatus, log),
				complaintHandler.UpdateStatus)
			complaints.POST("/:id/vote", requireAuth, voteLimit, complaintHandler.Vote)
			complaints.POST("/:id/comments", requireAuth, complaintHandler.AddComment)
			complaints.GET("/:id/comments", complaintHandler.ListComments)
			complaints.DELETE("/comments/:commentId", requireAuth, complaintHandler.DeleteComment)
		}

		transactions := v1.Group("/transactions", requireAuth)
		{
			transactions.POST("", middleware.RequirePermission(policy.TransactionCreate, log), transactionHandler.CreateTransaction)
			transactions.GET("", middleware.RequirePermission(policy.TransactionRead, log), transactionHandler.ListTransactions)
			transactions.GET("/summary", middleware.RequirePermission(policy.TransactionRead, log), transactionHandler.GetSummary)
		}

		profile := v1.Group("/profile", requireAuth)
		{
			profile.GET("/getProfile", profileHandler.GetProfile)
			profile.PATCH("/editProfile/:id", profileHandler.EditProfile)
			profile.PATCH("/updatePassword/:id", profileHandler.UpdatePassword)
		}

		users := v1.Group("/user")
		if deps.EnforceAdminRoutes {
			users.Use(requireAuth, middleware.RequirePermission(policy.UserManage, log))
		}
		{
			users.GET("", userHandler.GetUsers)
			users.GET("/export-users", userHandler.ExportUsers)
			users.POST("/import-users", userHandler.ImportUsers)
			users.POST("", userHandler.CreateUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}
	}

	return nil
}

// HealthCheck handles GET /api/v1/health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/v1/health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "RW Backend Service",
	})
}
