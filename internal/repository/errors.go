package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors returned by repositories. Callers match them with errors.Is.
var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicateEmail     = errors.New("student with this email already exists")
	ErrDuplicateStudentID = errors.New("student with this student id already exists")
	ErrDuplicateAdminID   = errors.New("admin with this admin id already exists")
	ErrDuplicateCode      = errors.New("course with this code already exists")
	ErrInvalidReference   = errors.New("referenced record does not exist")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// notFound maps pgx.ErrNoRows onto ErrNotFound and passes other errors through.
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// uniqueConstraint returns the violated constraint name for a unique
// violation, or "" for any other error.
func uniqueConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return pgErr.ConstraintName
	}
	return ""
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}
