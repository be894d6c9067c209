package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"rw-be-svc/internal/auth"
	"rw-be-svc/internal/models"
	"rw-be-svc/internal/repository"
	"rw-be-svc/internal/repository/mocks"
	"rw-be-svc/internal/service"
	"rw-be-svc/pkg/logger"
)

func strPtr(s string) *string {
	return &s
}

func TestUserService_ExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	source := new(mocks.UserRepository)
	source.On("List", ctx).Return([]*models.User{
		{ID: 1, Username: "buah", Name: "Buah", Email: strPtr("buah@example.com"), Role: models.RoleAdmin},
		{ID: 2, Username: "farhan", Name: "Farhan", Email: strPtr("farhan@example.com"), Role: models.RoleRT, RTNumber: strPtr("1")},
		{ID: 3, Username: "mmm", Name: "M", Email: strPtr("mmm@example.com"), Role: models.RoleWarga},
	}, nil).Once()
	exporter := service.NewUserService(source, logger.NewNopLogger())

	buffer, err := exporter.ExportUsers(ctx)
	require.NoError(t, err)

	target := new(mocks.UserRepository)
	// buah already exists in the target directory
	target.On("ExistsByUsername", ctx, "buah", uint(0)).Return(true, nil).Once()
	target.On("ExistsByUsername", ctx, "farhan", uint(0)).Return(false, nil).Twice()
	target.On("ExistsByUsername", ctx, "mmm", uint(0)).Return(false, nil).Twice()
	target.On("ExistsByEmail", ctx, mock.Anything, uint(0)).Return(false, nil)
	target.On("ExistsRTNumber", ctx, "1", uint(0)).Return(false, nil).Once()

	var created []*models.User
	target.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		created = append(created, args.Get(1).(*models.User))
	}).Return(nil)

	importer := service.NewUserService(target, logger.NewNopLogger())
	result, err := importer.ImportUsers(ctx, bytes.NewReader(buffer.Bytes()))

	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	assert.Empty(t, result.Errors)

	require.Len(t, created, 2)
	assert.Equal(t, "farhan", created[0].Username)
	assert.Equal(t, models.RoleRT, created[0].Role)
	require.NotNil(t, created[0].RTNumber)
	assert.Equal(t, "1", *created[0].RTNumber)
	assert.True(t, auth.CheckPassword(created[1].Password, service.DefaultImportPassword))
	target.AssertExpectations(t)
}

func TestUserService_ImportUsers_RowErrors(t *testing.T) {
	ctx := context.Background()

	f := excelize.NewFile()
	_, err := f.NewSheet("Users")
	require.NoError(t, err)
	rows := [][]interface{}{
		{"Username", "Name", "Email", "Role", "RT"},
		{"warga1", "Warga Satu", "", "warga", ""},
		{"rt9", "RT Sembilan", "rt9@example.com", "rt", ""},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, f.SetSheetRow("Users", cell, &row))
	}
	buffer, err := f.WriteToBuffer()
	require.NoError(t, err)

	repo := new(mocks.UserRepository)
	repo.On("ExistsByUsername", ctx, "rt9", uint(0)).Return(false, nil)
	repo.On("ExistsByEmail", ctx, "rt9@example.com", uint(0)).Return(false, nil).Once()
	svc := service.NewUserService(repo, logger.NewNopLogger())

	result, err := svc.ImportUsers(ctx, buffer)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Imported)
	assert.Equal(t, 2, result.Skipped)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, 2, result.Errors[0].Row)
	assert.Equal(t, service.ErrMissingFields.Error(), result.Errors[0].Message)
	assert.Equal(t, 3, result.Errors[1].Row)
	assert.Equal(t, service.ErrRTNumberRequired.Error(), result.Errors[1].Message)
}

func TestUserService_ImportUsers_BadWorkbook(t *testing.T) {
	ctx := context.Background()
	svc := service.NewUserService(new(mocks.UserRepository), logger.NewNopLogger())

	_, err := svc.ImportUsers(ctx, bytes.NewReader([]byte("plain text")))
	assert.ErrorIs(t, err, service.ErrInvalidWorkbook)

	f := excelize.NewFile()
	buffer, err := f.WriteToBuffer()
	require.NoError(t, err)

	_, err = svc.ImportUsers(ctx, buffer)
	assert.ErrorIs(t, err, service.ErrSheetNotFound)
}

func TestUserService_UpdateUser(t *testing.T) {
	ctx := context.Background()
	current := &models.User{ID: 3, Username: "mmm", Name: "M", Role: models.RoleWarga}

	t.Run("promote to rt with number", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		role := models.RoleRT
		repo.On("GetByID", ctx, uint(3)).Return(current, nil).Once()
		repo.On("ExistsRTNumber", ctx, "2", uint(3)).Return(false, nil).Once()
		repo.On("Update", ctx, uint(3), mock.MatchedBy(func(p models.UserPatch) bool {
			return p.Role != nil && *p.Role == models.RoleRT && p.PasswordHash != nil
		})).Return(nil).Once()
		repo.On("GetByID", ctx, uint(3)).Return(&models.User{ID: 3, Username: "mmm", Role: models.RoleRT, RTNumber: strPtr("2")}, nil).Once()
		svc := service.NewUserService(repo, logger.NewNopLogger())

		updated, err := svc.UpdateUser(ctx, 3, service.UpdateUserInput{Role: &role, RTNumber: strPtr("2"), Password: strPtr("barubaru")})

		require.NoError(t, err)
		assert.Equal(t, models.RoleRT, updated.Role)
		repo.AssertExpectations(t)
	})

	t.Run("nothing to update", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		repo.On("GetByID", ctx, uint(3)).Return(current, nil).Once()
		svc := service.NewUserService(repo, logger.NewNopLogger())

		_, err := svc.UpdateUser(ctx, 3, service.UpdateUserInput{})
		assert.ErrorIs(t, err, service.ErrNothingToUpdate)
	})

	t.Run("missing user", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		repo.On("GetByID", ctx, uint(30)).Return(nil, repository.ErrNotFound).Once()
		svc := service.NewUserService(repo, logger.NewNopLogger())

		_, err := svc.UpdateUser(ctx, 30, service.UpdateUserInput{Name: strPtr("x")})
		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.UserRepository)
	repo.On("Delete", ctx, uint(9)).Return(repository.ErrNotFound).Once()
	svc := service.NewUserService(repo, logger.NewNopLogger())

	assert.ErrorIs(t, svc.DeleteUser(ctx, 9), service.ErrUserNotFound)
}
