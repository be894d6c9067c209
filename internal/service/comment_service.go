package service

import (
	"context"
	"errors"
	"strings"

	"rw-be-svc/internal/models"
	"rw-be-svc/internal/models/response"
	"rw-be-svc/internal/policy"
	"rw-be-svc/internal/repository"
	"rw-be-svc/pkg/logger"
)

// CommentService interface defines complaint comment methods
type CommentService interface {
	AddComment(ctx context.Context, complaintID, userID uint, content string) (*response.CommentResponse, error)
	ListComments(ctx context.Context, complaintID uint) ([]response.CommentResponse, error)
	DeleteComment(ctx context.Context, commentID, callerID uint, callerRole models.Role) error
}

// commentService implements CommentService interface
type commentService struct {
	complaintRepo repository.ComplaintRepository
	commentRepo   repository.CommentRepository
	logger        *logger.Logger
}

// NewCommentService creates a new comment service
func NewCommentService(complaintRepo repository.ComplaintRepository, commentRepo repository.CommentRepository, logger *logger.Logger) CommentService {
	return &commentService{
		complaintRepo: complaintRepo,
		commentRepo:   commentRepo,
		logger:        logger,
	}
}

// AddComment appends a comment to a complaint
func (s *commentService) AddComment(ctx context.Context, complaintID, userID uint, content string) (*response.CommentResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyComment
	}

	if err := s.ensureComplaint(ctx, complaintID); err != nil {
		return nil, err
	}

	created, err := s.commentRepo.Create(ctx, &models.ComplaintComment{
		ComplaintID: complaintID,
		UserID:      userID,
		Content:     content,
	})
	if err != nil {
		s.logger.WithError(err).WithField("complaint_id", complaintID).Error("Failed to add comment")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"complaint_id": complaintID,
		"comment_id":   created.ID,
		"user_id":      userID,
	}).Info("Comment added")

	return created, nil
}

// ListComments returns the thread oldest first
func (s *commentService) ListComments(ctx context.Context, complaintID uint) ([]response.CommentResponse, error) {
	if err := s.ensureComplaint(ctx, complaintID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByComplaint(ctx, complaintID)
	if err != nil {
		s.logger.WithError(err).WithField("complaint_id", complaintID).Error("Failed to list comments")
		return nil, err
	}
	return comments, nil
}

// DeleteComment removes a comment when the caller wrote it or is an admin
func (s *commentService) DeleteComment(ctx context.Context, commentID, callerID uint, callerRole models.Role) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	if comment.UserID != callerID && !policy.Can(callerRole, policy.CommentDeleteAny) {
		s.logger.WithFields(map[string]interface{}{
			"comment_id": commentID,
			"caller_id":  callerID,
		}).Warn("Comment deletion forbidden")
		return ErrCommentForbidden
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	s.logger.WithField("comment_id", commentID).WithField("caller_id", callerID).Info("Comment deleted")
	return nil
}

func (s *commentService) ensureComplaint(ctx context.Context, complaintID uint) error {
	exists, err := s.complaintRepo.Exists(ctx, complaintID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrComplaintNotFound
	}
	return nil
}
