package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"rw-be-svc/docs"
	"rw-be-svc/internal/auth"
	"rw-be-svc/internal/config"
	"rw-be-svc/internal/database"
	"rw-be-svc/internal/handler"
	"rw-be-svc/internal/middleware"
	"rw-be-svc/internal/repository"
	"rw-be-svc/internal/scheduler"
	"rw-be-svc/internal/service"
	"rw-be-svc/internal/storage"
	"rw-be-svc/pkg/logger"
)

// @title RW Backend Service API
// @version 1.0
// @description RESTful API for RW/RT community management: complaints, finance ledger and users

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.BasePath = ""
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting RW Backend Service...")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to database")
	}
	appLogger.Info("Database connected successfully")

	// Run auto migration
	if err := db.AutoMigrate(); err != nil {
		appLogger.WithError(err).Fatal("Failed to run database migrations")
	}
	appLogger.Info("Database migrations completed successfully")

	// Photo storage
	photos, uploadDir := newPhotoStorage(cfg, appLogger)

	// Rate limiter backend; nil disables rate limiting
	var limiter redis.Cmdable
	var redisClient *redis.Client
	if cfg.RateLimit.RedisURL != "" {
		redisClient, err = newRedisClient(cfg.RateLimit.RedisURL, appLogger)
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to configure Redis")
		}
		limiter = redisClient
		appLogger.WithField("max_requests", cfg.RateLimit.MaxRequests).
			WithField("window", cfg.RateLimit.Window.String()).
			Info("Rate limiting enabled")
	} else {
		appLogger.Warn("REDIS_URL not set, rate limiting disabled")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.DB)
	complaintRepo := repository.NewComplaintRepository(db.DB)
	voteRepo := repository.NewVoteRepository(db.DB)
	commentRepo := repository.NewCommentRepository(db.DB)
	transactionRepo := repository.NewTransactionRepository(db.DB)
	logSchedulerRepo := repository.NewLogSchedulerRepository(db.DB)

	// Initialize services
	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	authService := service.NewAuthService(userRepo, tokens, appLogger)
	oauthService := service.NewOAuthService(cfg.OAuth, authService, appLogger)
	userService := service.NewUserService(userRepo, appLogger)
	profileService := service.NewProfileService(userRepo, appLogger)
	complaintService := service.NewComplaintService(complaintRepo, photos, cfg.Upload.MaxImageWidth, appLogger)
	voteService := service.NewVoteService(complaintRepo, voteRepo, appLogger)
	commentService := service.NewCommentService(complaintRepo, commentRepo, appLogger)
	transactionService := service.NewTransactionService(transactionRepo, appLogger)

	if !oauthService.Enabled() {
		appLogger.Warn("Google sign-in not configured")
	}
	if !cfg.Auth.EnforceAdminRoutes {
		appLogger.Warn("AUTH_ENFORCE_ADMIN_ROUTES=false, user administration routes are unauthenticated")
	}

	// Initialize Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.CORS(cfg.CORS.AllowedOriginList()))
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.ErrorHandler(appLogger))
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())
	router.HandleMethodNotAllowed = true

	// Setup routes
	if err := handler.SetupRoutes(router, handler.Dependencies{
		AuthService:        authService,
		OAuthService:       oauthService,
		UserService:        userService,
		ProfileService:     profileService,
		ComplaintService:   complaintService,
		VoteService:        voteService,
		CommentService:     commentService,
		TransactionService: transactionService,
		Logger:             appLogger,
		RateLimiter:        limiter,
		RateLimitMax:       cfg.RateLimit.MaxRequests,
		RateLimitWindow:    cfg.RateLimit.Window,
		EnforceAdminRoutes: cfg.Auth.EnforceAdminRoutes,
		UploadDir:          uploadDir,
	}); err != nil {
		appLogger.WithError(err).Fatal("Failed to set up routes")
	}

	// Start schedulers
	cleanupScheduler := scheduler.NewUploadCleanupScheduler(
		complaintRepo,
		logSchedulerRepo,
		photos,
		appLogger,
		cfg.Scheduler.UploadCleanupCronExpression,
		cfg.Scheduler.UploadCleanupGrace,
	)
	if err := cleanupScheduler.Start(); err != nil {
		appLogger.WithError(err).Fatal("Failed to start upload cleanup scheduler")
	}

	// Create HTTP server
	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithError(err).Error("Server forced to shutdown")
	}

	cleanupScheduler.Stop()

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			appLogger.WithError(err).Error("Failed to close Redis connection")
		}
	}

	// Close database connection
	if err := db.Close(); err != nil {
		appLogger.WithError(err).Error("Failed to close database connection")
	}

	appLogger.Info("Server exited successfully")
}

// newPhotoStorage picks MinIO when an endpoint is configured and local disk otherwise.
// The returned directory is served under /uploads and is empty for MinIO.
func newPhotoStorage(cfg *config.Config, appLogger *logger.Logger) (storage.PhotoStorage, string) {
	if cfg.Upload.UseMinio() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		minioStorage, err := storage.NewMinioStorage(ctx, cfg.Upload)
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to initialize MinIO storage")
		}
		appLogger.WithField("bucket", cfg.Upload.MinioBucket).Info("Storing complaint photos in MinIO")
		return minioStorage, ""
	}

	localStorage, err := storage.NewLocalStorage(cfg.Upload.Dir)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize upload directory")
	}
	appLogger.WithField("dir", cfg.Upload.Dir).Info("Storing complaint photos on local disk")
	return localStorage, cfg.Upload.Dir
}

// newRedisClient parses the URL and pings the server.
// An unreachable server is not fatal; the limiter fails open until it comes back.
func newRedisClient(redisURL string, appLogger *logger.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		appLogger.WithError(err).Warn("Redis unreachable, requests will not be rate limited until it recovers")
	}
	return client, nil
}
