package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for our application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Logger    LoggerConfig
	JWT       JWTConfig
	CORS      CORSConfig
	OAuth     OAuthConfig
	Upload    UploadConfig
	RateLimit RateLimitConfig
	Scheduler SchedulerConfig
	Auth      AuthConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port    string
	GinMode string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level  string
	Format string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins string
}

// OAuthConfig holds Google sign-in configuration
type OAuthConfig struct {
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	FrontendURL        string
}

// Enabled reports whether Google sign-in credentials are configured
func (o OAuthConfig) Enabled() bool {
	return o.GoogleClientID != "" && o.GoogleClientSecret != ""
}

// UploadConfig holds complaint photo storage configuration
type UploadConfig struct {
	Dir            string
	MaxImageWidth  int
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
	MinioPublicURL string
}

// UseMinio reports whether photos go to object storage instead of local disk
func (u UploadConfig) UseMinio() bool {
	return u.MinioEndpoint != ""
}

// RateLimitConfig holds rate limiting configuration.
// Rate limiting is disabled when RedisURL is empty.
type RateLimitConfig struct {
	RedisURL    string
	MaxRequests int
	Window      time.Duration
}

// SchedulerConfig holds scheduler configuration
type SchedulerConfig struct {
	UploadCleanupCronExpression string
	UploadCleanupGrace          time.Duration
}

// AuthConfig holds authorization toggles
type AuthConfig struct {
	EnforceAdminRoutes bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "rw_management"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", ""),
			ExpiryHours: getEnvAsInt("JWT_EXPIRY_HOURS", 24),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		OAuth: OAuthConfig{
			GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8080/api/v1/auth/google/callback"),
			FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:5173"),
		},
		Upload: UploadConfig{
			Dir:            getEnv("UPLOAD_DIR", "uploads"),
			MaxImageWidth:  getEnvAsInt("UPLOAD_MAX_IMAGE_WIDTH", 1920),
			MinioEndpoint:  getEnv("MINIO_ENDPOINT", ""),
			MinioAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			MinioSecretKey: getEnv("MINIO_SECRET_KEY", ""),
			MinioBucket:    getEnv("MINIO_BUCKET", "complaints"),
			MinioUseSSL:    getEnvAsBool("MINIO_USE_SSL", false),
			MinioPublicURL: getEnv("MINIO_PUBLIC_URL", ""),
		},
		RateLimit: RateLimitConfig{
			RedisURL:    getEnv("REDIS_URL", ""),
			MaxRequests: getEnvAsInt("RATE_LIMIT_MAX", 30),
			Window:      getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
		Scheduler: SchedulerConfig{
			UploadCleanupCronExpression: getEnv("UPLOAD_CLEANUP_CRON", "0 0 3 * * *"),
			UploadCleanupGrace:          getEnvAsDuration("UPLOAD_CLEANUP_GRACE", time.Hour),
		},
		Auth: AuthConfig{
			EnforceAdminRoutes: getEnvAsBool("AUTH_ENFORCE_ADMIN_ROUTES", true),
		},
	}

	if config.JWT.Secret == "" {
		if config.Server.GinMode == "release" {
			return nil, errors.New("JWT_SECRET must be set in release mode")
		}
		config.JWT.Secret = "dev-secret-key"
	}

	return config, nil
}

// GetDSN returns PostgreSQL connection string
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// AllowedOriginList splits the comma separated origins
func (c CORSConfig) AllowedOriginList() []string {
	var origins []string
	for _, origin := range strings.Split(c.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvAsInt gets an environment variable as integer with a fallback value
func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvAsBool gets an environment variable as bool with a fallback value
func getEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvAsDuration gets an environment variable as time.Duration with a fallback value
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
