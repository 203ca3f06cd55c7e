package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/csexamtest/examtest-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const attemptColumns = `id, student_id, course_id, started_at, completed_at, score, correct_answers, total_questions, time_spent, is_completed`

// TestAttemptRepository handles test attempt data access.
type TestAttemptRepository struct {
	pool *pgxpool.Pool
}

// NewTestAttemptRepository creates a new TestAttemptRepository.
func NewTestAttemptRepository(pool *pgxpool.Pool) *TestAttemptRepository {
	return &TestAttemptRepository{pool: pool}
}

func scanAttempt(row pgx.Row, a *model.TestAttempt, extra ...interface{}) error {
	dest := []interface{}{&a.ID, &a.StudentID, &a.CourseID, &a.StartedAt, &a.CompletedAt,
		&a.Score, &a.CorrectAnswers, &a.TotalQuestions, &a.TimeSpent, &a.IsCompleted}
	return row.Scan(append(dest, extra...)...)
}

// Create inserts a new in-progress attempt.
func (r *TestAttemptRepository) Create(ctx context.Context, a *model.TestAttempt) error {
	err := scanAttempt(r.pool.QueryRow(ctx,
		`INSERT INTO test_attempts (student_id, course_id) VALUES ($1, $2)
		 RETURNING `+attemptColumns,
		a.StudentID, a.CourseID,
	), a)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrInvalidReference
		}
		return fmt.Errorf("insert test attempt: %w", err)
	}
	return nil
}

// GetByID retrieves an attempt by ID.
func (r *TestAttemptRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.TestAttempt, error) {
	a := &model.TestAttempt{}
	if err := scanAttempt(r.pool.QueryRow(ctx, `SELECT `+attemptColumns+` FROM test_attempts WHERE id = $1`, id), a); err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

// Complete marks an open attempt as completed. When the attempt was already
// completed it is returned untouched with updated=false.
func (r *TestAttemptRepository) Complete(ctx context.Context, id uuid.UUID, c *model.TestCompletion) (attempt *model.TestAttempt, updated bool, err error) {
	a := &model.TestAttempt{}
	err = scanAttempt(r.pool.QueryRow(ctx,
		`UPDATE test_attempts SET
			completed_at    = $2,
			score           = $3,
			correct_answers = $4,
			total_questions = $5,
			time_spent      = $6,
			is_completed    = TRUE
		 WHERE id = $1 AND is_completed = FALSE
		 RETURNING `+attemptColumns,
		id, c.CompletedAt, c.Score, c.CorrectAnswers, c.TotalQuestions, c.TimeSpent,
	), a)
	if err == nil {
		return a, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("complete test attempt: %w", err)
	}

	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// ListByStudent retrieves a student's attempts, newest first, with course names.
func (r *TestAttemptRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.TestHistoryEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT t.id, t.student_id, t.course_id, t.started_at, t.completed_at, t.score,
		        t.correct_answers, t.total_questions, t.time_spent, t.is_completed,
		        c.name, c.code
		 FROM test_attempts t
		 JOIN courses c ON c.id = t.course_id
		 WHERE t.student_id = $1
		 ORDER BY t.started_at DESC`, studentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := []model.TestHistoryEntry{}
	for rows.Next() {
		var e model.TestHistoryEntry
		if err := scanAttempt(rows, &e.TestAttempt, &e.CourseName, &e.CourseCode); err != nil {
			return nil, err
		}
		history = append(history, e)
	}
	return history, rows.Err()
}
