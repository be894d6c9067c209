package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rw-be-svc/internal/models"
	"rw-be-svc/internal/models/response"
	"rw-be-svc/internal/repository"
	"rw-be-svc/internal/repository/mocks"
	"rw-be-svc/internal/service"
	"rw-be-svc/pkg/logger"
)

func TestCommentService_AddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("trims and stores", func(t *testing.T) {
		complaints := new(mocks.ComplaintRepository)
		comments := new(mocks.CommentRepository)
		complaints.On("Exists", ctx, uint(1)).Return(true, nil).Once()
		comments.On("Create", ctx, mock.MatchedBy(func(c *models.ComplaintComment) bool {
			return c.Content == "Sudah diperbaiki" && c.UserID == 5 && c.ComplaintID == 1
		})).Return(&response.CommentResponse{ID: 2, ComplaintID: 1, UserID: 5, Content: "Sudah diperbaiki", CommenterName: "Siti"}, nil).Once()
		svc := service.NewCommentService(complaints, comments, logger.NewNopLogger())

		created, err := svc.AddComment(ctx, 1, 5, "  Sudah diperbaiki ")

		require.NoError(t, err)
		assert.Equal(t, "Siti", created.CommenterName)
		comments.AssertExpectations(t)
	})

	t.Run("blank content", func(t *testing.T) {
		svc := service.NewCommentService(new(mocks.ComplaintRepository), new(mocks.CommentRepository), logger.NewNopLogger())

		_, err := svc.AddComment(ctx, 1, 5, "   ")
		assert.ErrorIs(t, err, service.ErrEmptyComment)
	})

	t.Run("missing complaint", func(t *testing.T) {
		complaints := new(mocks.ComplaintRepository)
		complaints.On("Exists", ctx, uint(8)).Return(false, nil).Once()
		svc := service.NewCommentService(complaints, new(mocks.CommentRepository), logger.NewNopLogger())

		_, err := svc.AddComment(ctx, 8, 5, "halo")
		assert.ErrorIs(t, err, service.ErrComplaintNotFound)
	})
}

func TestCommentService_ListComments_MissingComplaint(t *testing.T) {
	ctx := context.Background()
	complaints := new(mocks.ComplaintRepository)
	complaints.On("Exists", ctx, uint(3)).Return(false, nil).Once()
	svc := service.NewCommentService(complaints, new(mocks.CommentRepository), logger.NewNopLogger())

	_, err := svc.ListComments(ctx, 3)
	assert.ErrorIs(t, err, service.ErrComplaintNotFound)
}

func TestCommentService_DeleteComment(t *testing.T) {
	ctx := context.Background()
	comment := &models.ComplaintComment{ID: 4, ComplaintID: 1, UserID: 5, Content: "x"}

	tests := []struct {
		name       string
		callerID   uint
		callerRole models.Role
		wantErr    error
		deletes    bool
	}{
		{name: "author", callerID: 5, callerRole: models.RoleWarga, deletes: true},
		{name: "admin", callerID: 1, callerRole: models.RoleAdmin, deletes: true},
		{name: "rw", callerID: 2, callerRole: models.RoleRW, deletes: true},
		{name: "other warga", callerID: 6, callerRole: models.RoleWarga, wantErr: service.ErrCommentForbidden},
		{name: "rt is not admin", callerID: 7, callerRole: models.RoleRT, wantErr: service.ErrCommentForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comments := new(mocks.CommentRepository)
			comments.On("GetByID", ctx, uint(4)).Return(comment, nil).Once()
			if tt.deletes {
				comments.On("Delete", ctx, uint(4)).Return(nil).Once()
			}
			svc := service.NewCommentService(new(mocks.ComplaintRepository), comments, logger.NewNopLogger())

			err := svc.DeleteComment(ctx, 4, tt.callerID, tt.callerRole)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			comments.AssertExpectations(t)
		})
	}

	t.Run("missing comment", func(t *testing.T) {
		comments := new(mocks.CommentRepository)
		comments.On("GetByID", ctx, uint(40)).Return(nil, repository.ErrNotFound).Once()
		svc := service.NewCommentService(new(mocks.ComplaintRepository), comments, logger.NewNopLogger())

		err := svc.DeleteComment(ctx, 40, 5, models.RoleWarga)
		assert.ErrorIs(t, err, service.ErrCommentNotFound)
	})
}
