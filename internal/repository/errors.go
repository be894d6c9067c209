package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"rw-be-svc/internal/models"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation
const uniqueViolation = "23505"

var (
	// ErrNotFound is returned when the requested row does not exist
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEntry is returned for unique violations on an unknown index
	ErrDuplicateEntry = errors.New("duplicate entry")

	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateRTNumber = errors.New("rt number already registered")
	ErrRWAlreadyExists   = errors.New("rw account already exists")
)

// translateError maps driver and gorm errors to repository sentinels
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		switch pgErr.ConstraintName {
		case models.UsersUsernameIndex:
			return ErrDuplicateUsername
		case models.UsersEmailIndex:
			return ErrDuplicateEmail
		case models.UsersRTNumberIndex:
			return ErrDuplicateRTNumber
		case models.UsersSingleRWIndex:
			return ErrRWAlreadyExists
		}
		return ErrDuplicateEntry
	}

	return err
}
