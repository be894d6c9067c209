package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"rw-be-svc/internal/models"
	"rw-be-svc/internal/repository"
	"rw-be-svc/internal/storage"
	"rw-be-svc/pkg/logger"
)

const uploadCleanupCode = "UPLOAD_CLEANUP"

// Scheduler log statuses
const (
	StatusStart   = "START"
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)

// UploadCleanupScheduler removes stored photos no complaint refers to
type UploadCleanupScheduler struct {
	complaintRepo    repository.ComplaintRepository
	logSchedulerRepo repository.LogSchedulerRepository
	photos           storage.PhotoStorage
	logger           *logger.Logger
	cron             *cron.Cron
	cronExpression   string
	grace            time.Duration
	now              func() time.Time
}

// NewUploadCleanupScheduler creates a new upload cleanup scheduler.
// Photos younger than grace are kept so an upload whose complaint insert is still running survives.
func NewUploadCleanupScheduler(
	complaintRepo repository.ComplaintRepository,
	logSchedulerRepo repository.LogSchedulerRepository,
	photos storage.PhotoStorage,
	logger *logger.Logger,
	cronExpression string,
	grace time.Duration,
) *UploadCleanupScheduler {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &UploadCleanupScheduler{
		complaintRepo:    complaintRepo,
		logSchedulerRepo: logSchedulerRepo,
		photos:           photos,
		logger:           logger,
		cron:             c,
		cronExpression:   cronExpression,
		grace:            grace,
		now:              time.Now,
	}
}

// Start schedules the cleanup job. An empty cron expression leaves the scheduler idle.
func (s *UploadCleanupScheduler) Start() error {
	if s.cronExpression == "" {
		s.logger.Info("Upload cleanup scheduler disabled")
		return nil
	}

	// Cron format: "seconds minutes hours day-of-month month day-of-week"
	s.logger.WithField("cron_expression", s.cronExpression).Info("Scheduling upload cleanup job")
	if _, err := s.cron.AddFunc(s.cronExpression, s.cleanupUploads); err != nil {
		return fmt.Errorf("failed to schedule upload cleanup job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Upload cleanup scheduler started successfully")

	return nil
}

// Stop waits for a running job to finish and stops the scheduler
func (s *UploadCleanupScheduler) Stop() {
	s.logger.Info("Stopping upload cleanup scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Upload cleanup scheduler stopped successfully")
}

func (s *UploadCleanupScheduler) cleanupUploads() {
	if _, err := s.RunOnce(context.Background()); err != nil {
		s.logger.WithError(err).Error("Upload cleanup failed")
	}
}

// RunOnce deletes orphaned photos older than the grace period and returns how many were removed
func (s *UploadCleanupScheduler) RunOnce(ctx context.Context) (int, error) {
	docID := uuid.New().String()
	s.logScheduler(ctx, docID, "Starting upload cleanup", StatusStart)

	deleted, err := s.deleteOrphans(ctx)
	if err != nil {
		s.logScheduler(ctx, docID, fmt.Sprintf("Failed to clean up uploads: %v", err), StatusFailed)
		return deleted, err
	}

	s.logScheduler(ctx, docID, fmt.Sprintf("Removed %d orphaned photo(s)", deleted), StatusSuccess)
	s.logger.WithField("deleted", deleted).Info("Upload cleanup completed")
	return deleted, nil
}

func (s *UploadCleanupScheduler) deleteOrphans(ctx context.Context) (int, error) {
	referenced, err := s.complaintRepo.ListPhotoURLs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list complaint photos: %w", err)
	}
	inUse := make(map[string]struct{}, len(referenced))
	for _, url := range referenced {
		inUse[url] = struct{}{}
	}

	objects, err := s.photos.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list stored photos: %w", err)
	}

	cutoff := s.now().Add(-s.grace)
	deleted := 0
	for _, object := range objects {
		if _, ok := inUse[object.URL]; ok {
			continue
		}
		if object.ModTime.After(cutoff) {
			continue
		}
		if err := s.photos.Delete(ctx, object.URL); err != nil {
			s.logger.WithError(err).WithField("photo_url", object.URL).Warn("Failed to delete orphaned photo")
			continue
		}
		deleted++
	}

	return deleted, nil
}

// logScheduler records a run step in log_schedulers; failures are only logged
func (s *UploadCleanupScheduler) logScheduler(ctx context.Context, documentID, message, status string) {
	entry := &models.LogScheduler{
		DocumentID:    documentID,
		SchedulerCode: uploadCleanupCode,
		Message:       message,
		Status:        status,
		CreatedAt:     s.now(),
	}

	if err := s.logSchedulerRepo.CreateLogScheduler(ctx, entry); err != nil {
		s.logger.WithError(err).WithField("status", status).Error("Failed to create scheduler log entry")
		return
	}
	s.logger.WithField("status", status).WithField("document_id", documentID).Debug("Scheduler log entry created")
}
