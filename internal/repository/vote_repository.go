package repository

import (
	"context"
	"time"

	"rw-be-svc/internal/models"

	"gorm.io/gorm"
)

// VoteRepository defines the interface for complaint vote data operations
type VoteRepository interface {
	CastVote(ctx context.Context, complaintID, userID uint, voteType models.VoteType) (*models.VoteOutcome, error)
	GetUserVote(ctx context.Context, complaintID, userID uint) (*models.VoteType, error)
	CountVotes(ctx context.Context, complaintID uint) (*models.VoteCounts, error)
}

// voteRepository implements VoteRepository
type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository creates a new instance of VoteRepository
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{
		db: db,
	}
}

// The upsert touches no row when the user already holds the same kind.
// ON CONFLICT DO UPDATE still locks the conflicting row, so the follow-up
// delete in the same transaction cannot race another toggle.
const upsertVoteQuery = `
	INSERT INTO complaint_votes (complaint_id, user_id, vote_type, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT (complaint_id, user_id)
	DO UPDATE SET vote_type = EXCLUDED.vote_type, updated_at = EXCLUDED.updated_at
	WHERE complaint_votes.vote_type <> EXCLUDED.vote_type
`

const deleteVoteQuery = `
	DELETE FROM complaint_votes
	WHERE complaint_id = ? AND user_id = ? AND vote_type = ?
`

const countVotesQuery = `
	SELECT
		COUNT(*) FILTER (WHERE vote_type = 'upvote') AS upvotes,
		COUNT(*) FILTER (WHERE vote_type = 'downvote') AS downvotes
	FROM complaint_votes
	WHERE complaint_id = ?
`

// CastVote toggles the user's vote atomically and returns the new tally
func (r *voteRepository) CastVote(ctx context.Context, complaintID, userID uint, voteType models.VoteType) (*models.VoteOutcome, error) {
	var outcome models.VoteOutcome

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		result := tx.Exec(upsertVoteQuery, complaintID, userID, string(voteType), now, now)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected > 0 {
			v := voteType
			outcome.UserVote = &v
		} else {
			if err := tx.Exec(deleteVoteQuery, complaintID, userID, string(voteType)).Error; err != nil {
				return err
			}
			outcome.UserVote = nil
		}

		counts, err := countVotes(tx, complaintID)
		if err != nil {
			return err
		}
		outcome.Counts = *counts
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &outcome, nil
}

// GetUserVote returns the user's current vote, nil when none
func (r *voteRepository) GetUserVote(ctx context.Context, complaintID, userID uint) (*models.VoteType, error) {
	return findUserVote(r.db.WithContext(ctx), complaintID, userID)
}

// CountVotes returns the tally of a complaint
func (r *voteRepository) CountVotes(ctx context.Context, complaintID uint) (*models.VoteCounts, error) {
	return countVotes(r.db.WithContext(ctx), complaintID)
}

func countVotes(db *gorm.DB, complaintID uint) (*models.VoteCounts, error) {
	var counts models.VoteCounts
	if err := db.Raw(countVotesQuery, complaintID).Scan(&counts).Error; err != nil {
		return nil, err
	}
	return &counts, nil
}

func findUserVote(db *gorm.DB, complaintID, userID uint) (*models.VoteType, error) {
	var votes []string
	err := db.Raw(`SELECT vote_type FROM complaint_votes WHERE complaint_id = ? AND user_id = ? LIMIT 1`, complaintID, userID).
		Scan(&votes).Error
	if err != nil {
		return nil, err
	}
	if len(votes) == 0 {
		return nil, nil
	}
	v := models.VoteType(votes[0])
	return &v, nil
}
