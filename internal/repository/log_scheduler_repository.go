package repository

import (
	"context"

	"rw-be-svc/internal/models"

	"gorm.io/gorm"
)

// LogSchedulerRepository defines the interface for scheduler audit log operations
type LogSchedulerRepository interface {
	CreateLogScheduler(ctx context.Context, log *models.LogScheduler) error
}

// logSchedulerRepository implements LogSchedulerRepository
type logSchedulerRepository struct {
	db *gorm.DB
}

// NewLogSchedulerRepository creates a new instance of LogSchedulerRepository
func NewLogSchedulerRepository(db *gorm.DB) LogSchedulerRepository {
	return &logSchedulerRepository{
		db: db,
	}
}

// CreateLogScheduler creates a new log scheduler record
func (r *logSchedulerRepository) CreateLogScheduler(ctx context.Context, log *models.LogScheduler) error {
	return r.db.WithContext(ctx).Create(log).Error
}
