package service

import (
	"bytes"
	"context"
	"errors"
	"io"

	"rw-be-svc/internal/auth"
	"rw-be-svc/internal/models"
	"rw-be-svc/internal/models/response"
	"rw-be-svc/internal/repository"
	"rw-be-svc/pkg/logger"
)

// UpdateUserInput holds the fields an admin may change. Nil fields are left untouched.
type UpdateUserInput struct {
	Username *string
	Name     *string
	Email    *string
	Role     *models.Role
	RTNumber *string
	Password *string
}

// UserService interface defines user administration methods
type UserService interface {
	ListUsers(ctx context.Context) ([]*response.UserResponse, error)
	CreateUser(ctx context.Context, input NewUserInput) (*response.UserResponse, error)
	UpdateUser(ctx context.Context, id uint, input UpdateUserInput) (*response.UserResponse, error)
	DeleteUser(ctx context.Context, id uint) error
	ExportUsers(ctx context.Context) (*bytes.Buffer, error)
	ImportUsers(ctx context.Context, r io.Reader) (*response.ImportUsersResponse, error)
}

// userService implements UserService interface
type userService struct {
	userRepo repository.UserRepository
	logger   *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// ListUsers returns every account
func (s *userService) ListUsers(ctx context.Context) ([]*response.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get users from repository")
		return nil, err
	}

	responses := make([]*response.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, response.NewUserResponse(user))
	}

	s.logger.WithField("count", len(responses)).Info("Users retrieved successfully")
	return responses, nil
}

// CreateUser creates an account with the same rules as registration
func (s *userService) CreateUser(ctx context.Context, input NewUserInput) (*response.UserResponse, error) {
	user, err := createUser(ctx, s.userRepo, input)
	if err != nil {
		s.logger.WithError(err).WithField("username", input.Username).Warn("User creation rejected")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
	}).Info("User created successfully")

	return response.NewUserResponse(user), nil
}

// UpdateUser applies a partial update; a new password is hashed before it is stored
func (s *userService) UpdateUser(ctx context.Context, id uint, input UpdateUserInput) (*response.UserResponse, error) {
	current, err := getUser(ctx, s.userRepo, id)
	if err != nil {
		return nil, err
	}

	patch := models.UserPatch{
		Username: input.Username,
		Name:     input.Name,
		Email:    input.Email,
		Role:     input.Role,
		RTNumber: input.RTNumber,
	}
	if input.Password != nil && *input.Password != "" {
		hashed, err := auth.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hashed
	}

	updated, err := applyUserPatch(ctx, s.userRepo, current, patch)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", id).Warn("User update rejected")
		return nil, err
	}

	s.logger.WithField("user_id", id).Info("User updated successfully")
	return response.NewUserResponse(updated), nil
}

// DeleteUser removes an account
func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return mapUserRepoError(err)
	}
	s.logger.WithField("user_id", id).Info("User deleted successfully")
	return nil
}

// ExportUsers renders every account into an xlsx workbook
func (s *userService) ExportUsers(ctx context.Context) (*bytes.Buffer, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get users for export")
		return nil, err
	}

	buffer, err := buildUsersWorkbook(users)
	if err != nil {
		s.logger.WithError(err).Error("Failed to build users workbook")
		return nil, err
	}

	s.logger.WithField("count", len(users)).Info("Users exported successfully")
	return buffer, nil
}

// ImportUsers creates accounts from the Users sheet.
// Existing usernames are skipped; every imported account gets DefaultImportPassword.
func (s *userService) ImportUsers(ctx context.Context, r io.Reader) (*response.ImportUsersResponse, error) {
	rows, err := parseUsersWorkbook(r)
	if err != nil {
		return nil, err
	}

	result := &response.ImportUsersResponse{Errors: []response.ImportRowError{}}

	for _, row := range rows {
		if row.Username == "" || row.Name == "" || row.Email == "" || row.Role == "" {
			result.Skipped++
			result.Errors = append(result.Errors, response.ImportRowError{Row: row.Line, Message: ErrMissingFields.Error()})
			continue
		}

		exists, err := s.userRepo.ExistsByUsername(ctx, row.Username, 0)
		if err != nil {
			return nil, err
		}
		if exists {
			result.Skipped++
			continue
		}

		_, err = createUser(ctx, s.userRepo, NewUserInput{
			Username: row.Username,
			Password: DefaultImportPassword,
			Name:     row.Name,
			Email:    row.Email,
			Role:     models.Role(row.Role),
			RTNumber: row.RTNumber,
		})
		if err != nil {
			if !isValidationError(err) {
				return nil, err
			}
			result.Skipped++
			result.Errors = append(result.Errors, response.ImportRowError{Row: row.Line, Message: err.Error()})
			continue
		}
		result.Imported++
	}

	s.logger.WithFields(map[string]interface{}{
		"imported": result.Imported,
		"skipped":  result.Skipped,
	}).Info("Users imported")

	return result, nil
}

// isValidationError reports whether err is a per-row rejection rather than a storage failure
func isValidationError(err error) bool {
	for _, target := range []error{
		ErrMissingFields, ErrInvalidRole, ErrUsernameTaken, ErrEmailTaken,
		ErrRTNumberRequired, ErrRTNumberTaken, ErrRWExists, ErrPasswordTooShort,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
