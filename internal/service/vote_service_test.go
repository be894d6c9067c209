package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rw-be-svc/internal/models"
	"rw-be-svc/internal/repository/mocks"
	"rw-be-svc/internal/service"
	"rw-be-svc/pkg/logger"
)

type voteKey struct {
	complaintID uint
	userID      uint
}

// memoryVoteRepository applies the toggle rule under a mutex
type memoryVoteRepository struct {
	mu    sync.Mutex
	votes map[voteKey]models.VoteType
}

func newMemoryVoteRepository() *memoryVoteRepository {
	return &memoryVoteRepository{votes: make(map[voteKey]models.VoteType)}
}

func (r *memoryVoteRepository) CastVote(ctx context.Context, complaintID, userID uint, voteType models.VoteType) (*models.VoteOutcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := voteKey{complaintID, userID}
	var current *models.VoteType
	if v, ok := r.votes[key]; ok {
		current = &v
	}

	next := models.NextVote(current, voteType)
	if next == nil {
		delete(r.votes, key)
	} else {
		r.votes[key] = *next
	}

	return &models.VoteOutcome{UserVote: next, Counts: r.count(complaintID)}, nil
}

func (r *memoryVoteRepository) GetUserVote(ctx context.Context, complaintID, userID uint) (*models.VoteType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.votes[voteKey{complaintID, userID}]; ok {
		return &v, nil
	}
	return nil, nil
}

func (r *memoryVoteRepository) CountVotes(ctx context.Context, complaintID uint) (*models.VoteCounts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := r.count(complaintID)
	return &counts, nil
}

func (r *memoryVoteRepository) count(complaintID uint) models.VoteCounts {
	var counts models.VoteCounts
	for key, v := range r.votes {
		if key.complaintID != complaintID {
			continue
		}
		if v == models.VoteUp {
			counts.Upvotes++
		} else {
			counts.Downvotes++
		}
	}
	return counts
}

func TestVoteService_ToggleScenario(t *testing.T) {
	ctx := context.Background()
	complaints := new(mocks.ComplaintRepository)
	complaints.On("Exists", ctx, uint(1)).Return(true, nil)
	svc := service.NewVoteService(complaints, newMemoryVoteRepository(), logger.NewNopLogger())

	steps := []struct {
		user      uint
		cast      string
		wantVote  *models.VoteType
		wantUp    int64
		wantDown  int64
		wantTitle string
	}{
		{user: 10, cast: "upvote", wantVote: voteRef(models.VoteUp), wantUp: 1, wantDown: 0, wantTitle: "Vote recorded successfully"},
		{user: 10, cast: "upvote", wantVote: nil, wantUp: 0, wantDown: 0, wantTitle: "Vote removed"},
		{user: 10, cast: "downvote", wantVote: voteRef(models.VoteDown), wantUp: 0, wantDown: 1, wantTitle: "Vote recorded successfully"},
		{user: 11, cast: "upvote", wantVote: voteRef(models.VoteUp), wantUp: 1, wantDown: 1, wantTitle: "Vote recorded successfully"},
		{user: 10, cast: "upvote", wantVote: voteRef(models.VoteUp), wantUp: 2, wantDown: 0, wantTitle: "Vote recorded successfully"},
	}

	for i, step := range steps {
		resp, err := svc.CastVote(ctx, 1, step.user, step.cast)
		require.NoError(t, err, "step %d", i)
		assert.Equal(t, step.wantVote, resp.UserVote, "step %d", i)
		assert.Equal(t, step.wantUp, resp.Upvotes, "step %d", i)
		assert.Equal(t, step.wantDown, resp.Downvotes, "step %d", i)
		assert.Equal(t, step.wantTitle, resp.Message, "step %d", i)
	}
}

func TestVoteService_ConcurrentCastsKeepOneVotePerUser(t *testing.T) {
	ctx := context.Background()
	complaints := new(mocks.ComplaintRepository)
	complaints.On("Exists", ctx, uint(1)).Return(true, nil)
	votes := newMemoryVoteRepository()
	svc := service.NewVoteService(complaints, votes, logger.NewNopLogger())

	var wg sync.WaitGroup
	for user := uint(1); user <= 20; user++ {
		wg.Add(1)
		go func(user uint) {
			defer wg.Done()
			_, err := svc.CastVote(ctx, 1, user, "upvote")
			assert.NoError(t, err)
		}(user)
	}
	wg.Wait()

	counts, err := votes.CountVotes(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(20), counts.Upvotes)
	assert.Equal(t, int64(0), counts.Downvotes)
}

func TestVoteService_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid vote type", func(t *testing.T) {
		svc := service.NewVoteService(new(mocks.ComplaintRepository), new(mocks.VoteRepository), logger.NewNopLogger())

		_, err := svc.CastVote(ctx, 1, 1, "sideways")
		assert.ErrorIs(t, err, service.ErrInvalidVoteType)
	})

	t.Run("missing complaint", func(t *testing.T) {
		complaints := new(mocks.ComplaintRepository)
		complaints.On("Exists", ctx, uint(99)).Return(false, nil).Once()
		votes := new(mocks.VoteRepository)
		svc := service.NewVoteService(complaints, votes, logger.NewNopLogger())

		_, err := svc.CastVote(ctx, 99, 1, "upvote")
		assert.ErrorIs(t, err, service.ErrComplaintNotFound)
		votes.AssertNotCalled(t, "CastVote")
	})
}

func voteRef(v models.VoteType) *models.VoteType {
	return &v
}
