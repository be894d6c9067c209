package repository

import (
	"context"

	"rw-be-svc/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	ExistsByUsername(ctx context.Context, username string, excludeID uint) (bool, error)
	ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error)
	ExistsRTNumber(ctx context.Context, rtNumber string, excludeID uint) (bool, error)
	ExistsRW(ctx context.Context, excludeID uint) (bool, error)
	Update(ctx context.Context, id uint, patch models.UserPatch) error
	Delete(ctx context.Context, id uint) error
}

// userRepository implements UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create inserts a user. Unique index violations are reported as repository sentinels.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return translateError(r.db.WithContext(ctx).Create(user).Error)
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// GetByUsername retrieves a user by username
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by email, case-insensitively
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&user).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// List retrieves all users ordered by ID
func (r *userRepository) List(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ExistsByUsername checks whether another user holds the username
func (r *userRepository) ExistsByUsername(ctx context.Context, username string, excludeID uint) (bool, error) {
	return r.exists(ctx, "username = ?", username, excludeID)
}

// ExistsByEmail checks whether another user holds the email
func (r *userRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	return r.exists(ctx, "LOWER(email) = LOWER(?)", email, excludeID)
}

// ExistsRTNumber checks whether another rt account is registered for the RT number
func (r *userRepository) ExistsRTNumber(ctx context.Context, rtNumber string, excludeID uint) (bool, error) {
	return r.exists(ctx, "role = 'rt' AND rt_number = ?", rtNumber, excludeID)
}

// ExistsRW checks whether another rw account exists
func (r *userRepository) ExistsRW(ctx context.Context, excludeID uint) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE role = 'rw' AND id <> ?)`

	var exists bool
	err := r.db.WithContext(ctx).Raw(query, excludeID).Scan(&exists).Error
	return exists, err
}

func (r *userRepository) exists(ctx context.Context, condition string, value interface{}, excludeID uint) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE ` + condition + ` AND id <> ?)`

	var exists bool
	err := r.db.WithContext(ctx).Raw(query, value, excludeID).Scan(&exists).Error
	return exists, err
}

// Update applies a partial update in a single statement
func (r *userRepository) Update(ctx context.Context, id uint, patch models.UserPatch) error {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(patch.Columns())
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a user
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
