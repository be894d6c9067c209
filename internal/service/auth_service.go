package service

import (
	"context"
	"errors"
	"strings"

	"rw-be-svc/internal/auth"
	"rw-be-svc/internal/models"
	"rw-be-svc/internal/models/response"
	"rw-be-svc/internal/repository"
	"rw-be-svc/pkg/logger"
)

// AuthService interface defines registration, login and token resolution
type AuthService interface {
	Register(ctx context.Context, input NewUserInput) (*response.AuthResponse, error)
	Login(ctx context.Context, username, password string) (*response.AuthResponse, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
	IssueTokenForEmail(ctx context.Context, email string) (string, error)
}

// authService implements AuthService interface
type authService struct {
	userRepo repository.UserRepository
	tokens   auth.TokenManager
	logger   *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, tokens auth.TokenManager, logger *logger.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register creates a new account and signs a token for it
func (s *authService) Register(ctx context.Context, input NewUserInput) (*response.AuthResponse, error) {
	user, err := createUser(ctx, s.userRepo, input)
	if err != nil {
		s.logger.WithError(err).WithField("username", input.Username).Warn("Registration rejected")
		return nil, err
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", user.ID).Error("Failed to generate token")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
	}).Info("User registered successfully")

	return &response.AuthResponse{User: response.NewUserResponse(user), Token: token}, nil
}

// Login verifies the credentials and signs a token
func (s *authService) Login(ctx context.Context, username, password string) (*response.AuthResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingFields
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.WithError(err).WithField("username", username).Error("Failed to load user for login")
		return nil, err
	}

	if !auth.CheckPassword(user.Password, password) {
		s.logger.WithField("username", username).Warn("Login failed: wrong password")
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", user.ID).Error("Failed to generate token")
		return nil, err
	}

	s.logger.WithField("user_id", user.ID).Info("User logged in")

	return &response.AuthResponse{User: response.NewUserResponse(user), Token: token}, nil
}

// Authenticate resolves a bearer token to its user.
// Every failure, including a deleted user, is reported as ErrUnauthenticated.
func (s *authService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	user, err := s.userRepo.GetByID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

// IssueTokenForEmail signs a token for the account registered with email
func (s *authService) IssueTokenForEmail(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrEmailNotRegistered
		}
		return "", err
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", user.ID).Error("Failed to generate token")
		return "", ErrTokenGeneration
	}
	return token, nil
}
