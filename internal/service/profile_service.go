package service

import (
	"context"

	"rw-be-svc/internal/auth"
	"rw-be-svc/internal/models"
	"rw-be-svc/internal/models/response"
	"rw-be-svc/internal/policy"
	"rw-be-svc/internal/repository"
	"rw-be-svc/pkg/logger"
)

// ProfileInput holds the editable profile fields. Nil fields are left untouched.
type ProfileInput struct {
	Username *string
	Name     *string
	Email    *string
	Role     *models.Role
	RTNumber *string
}

// PasswordInput holds a password change request
type PasswordInput struct {
	OldPassword     string
	NewPassword     string
	ConfirmPassword string
}

// ProfileService interface defines self-service account operations
type ProfileService interface {
	GetProfile(ctx context.Context, userID uint) (*response.UserResponse, error)
	EditProfile(ctx context.Context, callerID uint, callerRole models.Role, targetID uint, input ProfileInput) (*response.UserResponse, error)
	UpdatePassword(ctx context.Context, callerID uint, callerRole models.Role, targetID uint, input PasswordInput) error
}

// profileService implements ProfileService interface
type profileService struct {
	userRepo repository.UserRepository
	logger   *logger.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(userRepo repository.UserRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetProfile returns the caller's own account
func (s *profileService) GetProfile(ctx context.Context, userID uint) (*response.UserResponse, error) {
	user, err := getUser(ctx, s.userRepo, userID)
	if err != nil {
		return nil, err
	}
	return response.NewUserResponse(user), nil
}

// EditProfile applies a partial update to the target account.
// Users edit themselves; admins may edit anyone and change roles.
func (s *profileService) EditProfile(ctx context.Context, callerID uint, callerRole models.Role, targetID uint, input ProfileInput) (*response.UserResponse, error) {
	if targetID != callerID && !policy.Can(callerRole, policy.ProfileEditAny) {
		return nil, ErrForbidden
	}
	if input.Role != nil && !policy.Can(callerRole, policy.ProfileChangeRole) {
		return nil, ErrForbidden
	}

	current, err := getUser(ctx, s.userRepo, targetID)
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

	updated, err := applyUserPatch(ctx, s.userRepo, current, patch)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", targetID).Warn("Profile update rejected")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id":   targetID,
		"caller_id": callerID,
		"fields":    len(patch.Columns()),
	}).Info("Profile updated successfully")

	return response.NewUserResponse(updated), nil
}

// UpdatePassword replaces the password after verifying the old one
func (s *profileService) UpdatePassword(ctx context.Context, callerID uint, callerRole models.Role, targetID uint, input PasswordInput) error {
	if targetID != callerID && !policy.Can(callerRole, policy.ProfileEditAny) {
		return ErrForbidden
	}
	if input.OldPassword == "" || input.NewPassword == "" || input.ConfirmPassword == "" {
		return ErrMissingFields
	}
	if input.NewPassword != input.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if len(input.NewPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	user, err := getUser(ctx, s.userRepo, targetID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(user.Password, input.OldPassword) {
		return ErrWrongOldPassword
	}

	hashed, err := auth.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	if err := s.userRepo.Update(ctx, targetID, models.UserPatch{PasswordHash: &hashed}); err != nil {
		return mapUserRepoError(err)
	}

	s.logger.WithField("user_id", targetID).Info("Password updated successfully")
	return nil
}
