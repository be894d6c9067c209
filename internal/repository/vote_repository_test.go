package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rw-be-svc/internal/models"
)

var (
	upsertVotePattern = regexp.QuoteMeta("INSERT INTO complaint_votes")
	deleteVotePattern = regexp.QuoteMeta("DELETE FROM complaint_votes")
	countVotesPattern = regexp.QuoteMeta("COUNT(*) FILTER (WHERE vote_type = 'upvote')")
)

func TestVoteRepository_CastVote(t *testing.T) {
	tests := []struct {
		name          string
		cast          models.VoteType
		upsertRows    int64
		wantDelete    bool
		counts        [2]int64
		wantUserVote  *models.VoteType
		wantUpvotes   int64
		wantDownvotes int64
	}{
		{
			name:          "first vote is recorded",
			cast:          models.VoteUp,
			upsertRows:    1,
			counts:        [2]int64{1, 0},
			wantUserVote:  voteTypePtr(models.VoteUp),
			wantUpvotes:   1,
			wantDownvotes: 0,
		},
		{
			name:          "same kind again withdraws the vote",
			cast:          models.VoteUp,
			upsertRows:    0,
			wantDelete:    true,
			counts:        [2]int64{0, 0},
			wantUserVote:  nil,
			wantUpvotes:   0,
			wantDownvotes: 0,
		},
		{
			name:          "other kind replaces the vote",
			cast:          models.VoteDown,
			upsertRows:    1,
			counts:        [2]int64{2, 1},
			wantUserVote:  voteTypePtr(models.VoteDown),
			wantUpvotes:   2,
			wantDownvotes: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := NewVoteRepository(db)

			mock.ExpectBegin()
			mock.ExpectExec(upsertVotePattern).
				WithArgs(uint(5), uint(9), string(tt.cast), sqlmock.AnyArg(), sqlmock.AnyArg()).
				WillReturnResult(sqlmock.NewResult(0, tt.upsertRows))
			if tt.wantDelete {
				mock.ExpectExec(deleteVotePattern).
					WithArgs(uint(5), uint(9), string(tt.cast)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			}
			mock.ExpectQuery(countVotesPattern).
				WithArgs(uint(5)).
				WillReturnRows(sqlmock.NewRows([]string{"upvotes", "downvotes"}).AddRow(tt.counts[0], tt.counts[1]))
			mock.ExpectCommit()

			outcome, err := repo.CastVote(context.Background(), 5, 9, tt.cast)
			require.NoError(t, err)
			assert.Equal(t, tt.wantUserVote, outcome.UserVote)
			assert.Equal(t, tt.wantUpvotes, outcome.Counts.Upvotes)
			assert.Equal(t, tt.wantDownvotes, outcome.Counts.Downvotes)
		})
	}
}

func TestVoteRepository_CastVoteRollsBackOnError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewVoteRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(upsertVotePattern).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	outcome, err := repo.CastVote(context.Background(), 5, 9, models.VoteUp)
	assert.Error(t, err)
	assert.Nil(t, outcome)
}

func TestVoteRepository_GetUserVote(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewVoteRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT vote_type FROM complaint_votes")).
		WithArgs(uint(5), uint(9)).
		WillReturnRows(sqlmock.NewRows([]string{"vote_type"}).AddRow("downvote"))

	vote, err := repo.GetUserVote(context.Background(), 5, 9)
	require.NoError(t, err)
	require.NotNil(t, vote)
	assert.Equal(t, models.VoteDown, *vote)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT vote_type FROM complaint_votes")).
		WithArgs(uint(5), uint(10)).
		WillReturnRows(sqlmock.NewRows([]string{"vote_type"}))

	vote, err = repo.GetUserVote(context.Background(), 5, 10)
	require.NoError(t, err)
	assert.Nil(t, vote)
}

func voteTypePtr(v models.VoteType) *models.VoteType {
	return &v
}
