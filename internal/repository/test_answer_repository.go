package repository

import (
	"context"
	"fmt"

	"github.com/csexamtest/examtest-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TestAnswerRepository handles test answer data access. Answers are append-only.
type TestAnswerRepository struct {
	pool *pgxpool.Pool
}

// NewTestAnswerRepository creates a new TestAnswerRepository.
func NewTestAnswerRepository(pool *pgxpool.Pool) *TestAnswerRepository {
	return &TestAnswerRepository{pool: pool}
}

// Create inserts one answer.
func (r *TestAnswerRepository) Create(ctx context.Context, a *model.TestAnswer) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO test_answers (test_attempt_id, question_id, selected_answer, is_correct)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, answered_at`,
		a.TestAttemptID, a.QuestionID, a.SelectedAnswer, a.IsCorrect,
	).Scan(&a.ID, &a.AnsweredAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrInvalidReference
		}
		return fmt.Errorf("insert test answer: %w", err)
	}
	return nil
}

// ListByAttempt retrieves the answers of one attempt in submission order.
func (r *TestAnswerRepository) ListByAttempt(ctx context.Context, attemptID uuid.UUID) ([]model.TestAnswer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, test_attempt_id, question_id, selected_answer, is_correct, answered_at
		 FROM test_answers WHERE test_attempt_id = $1
		 ORDER BY answered_at ASC, id ASC`, attemptID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	answers := []model.TestAnswer{}
	for rows.Next() {
		var a model.TestAnswer
		if err := rows.Scan(&a.ID, &a.TestAttemptID, &a.QuestionID, &a.SelectedAnswer, &a.IsCorrect, &a.AnsweredAt); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

// CountCorrect counts distinct questions answered correctly, using the
// latest answer per question.
func (r *TestAnswerRepository) CountCorrect(ctx context.Context, attemptID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM (
			SELECT DISTINCT ON (question_id) is_correct
			FROM test_answers
			WHERE test_attempt_id = $1
			ORDER BY question_id, answered_at DESC, id DESC
		 ) latest WHERE is_correct`, attemptID,
	).Scan(&n)
	return n, err
}
