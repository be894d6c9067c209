package service

import (
	"context"
	"errors"
	"strings"

	"rw-be-svc/internal/auth"
	"rw-be-svc/internal/models"
	"rw-be-svc/internal/repository"
)

// minPasswordLength applies when users change their own password
const minPasswordLength = 6

// NewUserInput holds the fields of a user being registered or created by an admin
type NewUserInput struct {
	Username string
	Password string
	Name     string
	Email    string
	Role     models.Role
	RTNumber string
}

func (in *NewUserInput) normalize() {
	in.Username = strings.TrimSpace(in.Username)
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.RTNumber = strings.TrimSpace(in.RTNumber)
	if in.Role == "" {
		in.Role = models.RoleWarga
	}
}

// createUser validates the input and inserts the user.
// The pre-checks give precise messages; the unique indexes close the race between check and insert.
func createUser(ctx context.Context, repo repository.UserRepository, in NewUserInput) (*models.User, error) {
	in.normalize()

	if in.Username == "" || in.Password == "" || in.Name == "" {
		return nil, ErrMissingFields
	}
	if !in.Role.Valid() {
		return nil, ErrInvalidRole
	}

	taken, err := repo.ExistsByUsername(ctx, in.Username, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	if in.Email != "" {
		taken, err := repo.ExistsByEmail(ctx, in.Email, 0)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}
	}

	if err := checkRoleConstraints(ctx, repo, 0, "", in.Role, in.RTNumber); err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: in.Username,
		Password: hashed,
		Name:     in.Name,
		Role:     in.Role,
	}
	if in.Email != "" {
		user.Email = &in.Email
	}
	if in.RTNumber != "" {
		user.RTNumber = &in.RTNumber
	}

	if err := repo.Create(ctx, user); err != nil {
		return nil, mapUserRepoError(err)
	}
	return user, nil
}

// checkRoleConstraints enforces one rt account per RT number and a single rw account.
// currentRole is empty for new users.
func checkRoleConstraints(ctx context.Context, repo repository.UserRepository, userID uint, currentRole models.Role, role models.Role, rtNumber string) error {
	switch role {
	case models.RoleRT:
		if rtNumber == "" {
			return ErrRTNumberRequired
		}
		taken, err := repo.ExistsRTNumber(ctx, rtNumber, userID)
		if err != nil {
			return err
		}
		if taken {
			return ErrRTNumberTaken
		}
	case models.RoleRW:
		if currentRole == models.RoleRW {
			return nil
		}
		exists, err := repo.ExistsRW(ctx, userID)
		if err != nil {
			return err
		}
		if exists {
			return ErrRWExists
		}
	}
	return nil
}

// applyUserPatch validates a partial update against the current row and writes it
func applyUserPatch(ctx context.Context, repo repository.UserRepository, current *models.User, patch models.UserPatch) (*models.User, error) {
	if patch.IsEmpty() {
		return nil, ErrNothingToUpdate
	}

	if patch.Username != nil {
		username := strings.TrimSpace(*patch.Username)
		if username == "" {
			return nil, ErrMissingFields
		}
		if username != current.Username {
			taken, err := repo.ExistsByUsername(ctx, username, current.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, ErrUsernameTaken
			}
		}
	}

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, ErrMissingFields
	}

	if patch.Email != nil && strings.TrimSpace(*patch.Email) != "" {
		taken, err := repo.ExistsByEmail(ctx, strings.TrimSpace(*patch.Email), current.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}
	}

	if patch.Role != nil || patch.RTNumber != nil {
		role := current.Role
		if patch.Role != nil {
			role = *patch.Role
			if !role.Valid() {
				return nil, ErrInvalidRole
			}
		}
		rtNumber := ""
		if current.RTNumber != nil {
			rtNumber = *current.RTNumber
		}
		if patch.RTNumber != nil {
			rtNumber = strings.TrimSpace(*patch.RTNumber)
		}
		if err := checkRoleConstraints(ctx, repo, current.ID, current.Role, role, rtNumber); err != nil {
			return nil, err
		}
	}

	if err := repo.Update(ctx, current.ID, patch); err != nil {
		return nil, mapUserRepoError(err)
	}

	return repo.GetByID(ctx, current.ID)
}

// getUser loads a user and maps a missing row to ErrUserNotFound
func getUser(ctx context.Context, repo repository.UserRepository, id uint) (*models.User, error) {
	user, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapUserRepoError(err)
	}
	return user, nil
}

func mapUserRepoError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrUserNotFound
	case errors.Is(err, repository.ErrDuplicateUsername):
		return ErrUsernameTaken
	case errors.Is(err, repository.ErrDuplicateEmail):
		return ErrEmailTaken
	case errors.Is(err, repository.ErrDuplicateRTNumber):
		return ErrRTNumberTaken
	case errors.Is(err, repository.ErrRWAlreadyExists):
		return ErrRWExists
	}
	return err
}
