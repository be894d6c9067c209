package service

import (
	"context"

	"rw-be-svc/internal/models"
	"rw-be-svc/internal/models/response"
	"rw-be-svc/internal/repository"
	"rw-be-svc/pkg/logger"
)

// VoteService interface defines complaint voting
type VoteService interface {
	CastVote(ctx context.Context, complaintID, userID uint, voteType string) (*response.VoteResponse, error)
}

// voteService implements VoteService interface
type voteService struct {
	complaintRepo repository.ComplaintRepository
	voteRepo      repository.VoteRepository
	logger        *logger.Logger
}

// NewVoteService creates a new vote service
func NewVoteService(complaintRepo repository.ComplaintRepository, voteRepo repository.VoteRepository, logger *logger.Logger) VoteService {
	return &voteService{
		complaintRepo: complaintRepo,
		voteRepo:      voteRepo,
		logger:        logger,
	}
}

// CastVote toggles the caller's vote: same kind withdraws it, the other kind replaces it
func (s *voteService) CastVote(ctx context.Context, complaintID, userID uint, voteType string) (*response.VoteResponse, error) {
	cast := models.VoteType(voteType)
	if !cast.Valid() {
		return nil, ErrInvalidVoteType
	}

	exists, err := s.complaintRepo.Exists(ctx, complaintID)
	if err != nil {
		s.logger.WithError(err).WithField("complaint_id", complaintID).Error("Failed to check complaint")
		return nil, err
	}
	if !exists {
		return nil, ErrComplaintNotFound
	}

	outcome, err := s.voteRepo.CastVote(ctx, complaintID, userID, cast)
	if err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"complaint_id": complaintID,
			"user_id":      userID,
		}).Error("Failed to cast vote")
		return nil, err
	}

	message := "Vote recorded successfully"
	if outcome.UserVote == nil {
		message = "Vote removed"
	}

	return &response.VoteResponse{
		Message:   message,
		UserVote:  outcome.UserVote,
		Upvotes:   outcome.Counts.Upvotes,
		Downvotes: outcome.Counts.Downvotes,
	}, nil
}
