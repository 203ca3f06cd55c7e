package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/csexamtest/examtest-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const studentColumns = `id, student_id, email, password_hash, first_name, last_name, created_at`

// StudentRepository handles student data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

// GetByID retrieves a student by row ID.
func (r *StudentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	return r.getOne(ctx, `SELECT `+studentColumns+` FROM students WHERE id = $1`, id)
}

// GetByEmail retrieves a student by their unique email (case-insensitive).
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*model.Student, error) {
	return r.getOne(ctx, `SELECT `+studentColumns+` FROM students WHERE lower(email) = lower($1)`, email)
}

// GetByStudentID retrieves a student by their unique student number.
func (r *StudentRepository) GetByStudentID(ctx context.Context, studentID string) (*model.Student, error) {
	return r.getOne(ctx, `SELECT `+studentColumns+` FROM students WHERE student_id = $1`, studentID)
}

func (r *StudentRepository) getOne(ctx context.Context, query string, arg interface{}) (*model.Student, error) {
	s := &model.Student{}
	err := r.pool.QueryRow(ctx, query, arg).
		Scan(&s.ID, &s.StudentID, &s.Email, &s.PasswordHash, &s.FirstName, &s.LastName, &s.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

// Create inserts a new student. The uniqueness checks done by the service
// race with concurrent registrations, so unique violations are mapped here too.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO students (student_id, email, password_hash, first_name, last_name)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		s.StudentID, s.Email, s.PasswordHash, s.FirstName, s.LastName,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		switch c := uniqueConstraint(err); {
		case strings.Contains(c, "email"):
			return ErrDuplicateEmail
		case c != "":
			return ErrDuplicateStudentID
		}
		return fmt.Errorf("insert student: %w", err)
	}
	return nil
}
