package service

import (
	"context"
	"errors"
	"strings"

	"rw-be-svc/internal/models"
	"rw-be-svc/internal/models/response"
	"rw-be-svc/internal/repository"
	"rw-be-svc/internal/storage"
	"rw-be-svc/pkg/logger"
)

// FilterMine restricts a complaint listing to the caller's own complaints
const FilterMine = "me"

// CreateComplaintInput holds a new complaint. Photo is nil when none was uploaded.
type CreateComplaintInput struct {
	Title       string
	Description string
	Location    string
	RTNumber    string
	CreatedBy   uint
	Photo       []byte
}

// ListComplaintsInput holds listing filters. CallerID is nil for anonymous requests.
type ListComplaintsInput struct {
	Filter   string
	RTNumber string
	Status   string
	CallerID *uint
}

// ComplaintService interface defines complaint board methods
type ComplaintService interface {
	CreateComplaint(ctx context.Context, input CreateComplaintInput) (*models.Complaint, error)
	ListComplaints(ctx context.Context, input ListComplaintsInput) ([]*response.ComplaintListItem, error)
	GetComplaintDetail(ctx context.Context, id uint, callerID *uint) (*response.ComplaintDetailResponse, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

// complaintService implements ComplaintService interface
type complaintService struct {
	complaintRepo repository.ComplaintRepository
	photos        storage.PhotoStorage
	maxImageWidth int
	logger        *logger.Logger
}

// NewComplaintService creates a new complaint service
func NewComplaintService(complaintRepo repository.ComplaintRepository, photos storage.PhotoStorage, maxImageWidth int, logger *logger.Logger) ComplaintService {
	return &complaintService{
		complaintRepo: complaintRepo,
		photos:        photos,
		maxImageWidth: maxImageWidth,
		logger:        logger,
	}
}

// CreateComplaint stores the optional photo and inserts the complaint.
// The photo is removed again when the insert fails.
func (s *complaintService) CreateComplaint(ctx context.Context, input CreateComplaintInput) (*models.Complaint, error) {
	complaint := &models.Complaint{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Location:    strings.TrimSpace(input.Location),
		RTNumber:    strings.TrimSpace(input.RTNumber),
		Status:      models.DefaultComplaintStatus,
		CreatedBy:   input.CreatedBy,
	}
	if complaint.Title == "" || complaint.Description == "" {
		return nil, ErrComplaintIncomplete
	}

	if input.Photo != nil {
		photo, err := storage.PreparePhoto(input.Photo, s.maxImageWidth)
		if err != nil {
			return nil, err
		}
		url, err := s.photos.Save(ctx, photo)
		if err != nil {
			s.logger.WithError(err).Error("Failed to store complaint photo")
			return nil, err
		}
		complaint.PhotoURL = &url
	}

	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		s.logger.WithError(err).WithField("created_by", input.CreatedBy).Error("Failed to create complaint")
		if complaint.PhotoURL != nil {
			if delErr := s.photos.Delete(context.WithoutCancel(ctx), *complaint.PhotoURL); delErr != nil {
				s.logger.WithError(delErr).WithField("photo_url", *complaint.PhotoURL).Warn("Failed to remove orphaned photo")
			}
		}
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"complaint_id": complaint.ID,
		"created_by":   complaint.CreatedBy,
		"has_photo":    complaint.PhotoURL != nil,
	}).Info("Complaint created successfully")

	return complaint, nil
}

// ListComplaints returns complaints newest first
func (s *complaintService) ListComplaints(ctx context.Context, input ListComplaintsInput) ([]*response.ComplaintListItem, error) {
	filter := models.ComplaintFilter{
		RTNumber: strings.TrimSpace(input.RTNumber),
		Status:   strings.TrimSpace(input.Status),
	}
	if input.Filter == FilterMine {
		if input.CallerID == nil {
			return nil, ErrFilterRequiresLogin
		}
		filter.CreatedBy = input.CallerID
	}

	items, err := s.complaintRepo.List(ctx, filter)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list complaints")
		return nil, err
	}
	return items, nil
}

// GetComplaintDetail returns a complaint with comments and the caller's own vote
func (s *complaintService) GetComplaintDetail(ctx context.Context, id uint, callerID *uint) (*response.ComplaintDetailResponse, error) {
	detail, err := s.complaintRepo.GetDetail(ctx, id, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrComplaintNotFound
		}
		s.logger.WithError(err).WithField("complaint_id", id).Error("Failed to get complaint detail")
		return nil, err
	}
	return detail, nil
}

// UpdateStatus sets a free-form status on the complaint
func (s *complaintService) UpdateStatus(ctx context.Context, id uint, status string) error {
	status = strings.TrimSpace(status)
	if status == "" {
		return ErrStatusRequired
	}

	if err := s.complaintRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrComplaintNotFound
		}
		s.logger.WithError(err).WithField("complaint_id", id).Error("Failed to update complaint status")
		return err
	}

	s.logger.WithField("complaint_id", id).WithField("status", status).Info("Complaint status updated")
	return nil
}
