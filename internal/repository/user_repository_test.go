package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rw-be-svc/internal/models"
)

func TestUserRepository_CreateTranslatesUniqueViolations(t *testing.T) {
	tests := []struct {
		constraint string
		want       error
	}{
		{models.UsersUsernameIndex, ErrDuplicateUsername},
		{models.UsersEmailIndex, ErrDuplicateEmail},
		{models.UsersRTNumberIndex, ErrDuplicateRTNumber},
		{models.UsersSingleRWIndex, ErrRWAlreadyExists},
		{"some_other_index", ErrDuplicateEntry},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := NewUserRepository(db)

			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
				WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: tt.constraint})
			mock.ExpectRollback()

			err := repo.Create(context.Background(), &models.User{Username: "budi", Name: "Budi", Role: models.RoleWarga})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUserRepository_ExistsByUsername(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM users WHERE username = $1 AND id <> $2)")).
		WithArgs("budi", uint(0)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByUsername(context.Background(), "budi", 0)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserRepository_GetByIDNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := repo.GetByID(context.Background(), 77)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, user)
}

func TestUserRepository_UpdateMissingUser(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	name := "Baru"
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Update(context.Background(), 77, models.UserPatch{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}
