package repository

import (
	"context"
	"fmt"

	"github.com/csexamtest/examtest-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const questionColumns = `id, course_id, question_text, option_a, option_b, option_c, option_d, correct_answer, created_at, updated_at`

// QuestionRepository handles question data access.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

func scanQuestion(row pgx.Row, q *model.Question) error {
	return row.Scan(&q.ID, &q.CourseID, &q.QuestionText, &q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD,
		&q.CorrectAnswer, &q.CreatedAt, &q.UpdatedAt)
}

// List retrieves all questions, optionally restricted to one course.
func (r *QuestionRepository) List(ctx context.Context, courseID *uuid.UUID) ([]model.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions`
	var args []interface{}
	if courseID != nil {
		query += ` WHERE course_id = $1`
		args = append(args, *courseID)
	}
	query += ` ORDER BY created_at ASC, id ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []model.Question{}
	for rows.Next() {
		var q model.Question
		if err := scanQuestion(rows, &q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// GetByID retrieves a question by ID.
func (r *QuestionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	q := &model.Question{}
	if err := scanQuestion(r.pool.QueryRow(ctx, `SELECT `+questionColumns+` FROM questions WHERE id = $1`, id), q); err != nil {
		return nil, notFound(err)
	}
	return q, nil
}

// Create inserts a new question.
func (r *QuestionRepository) Create(ctx context.Context, q *model.Question) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO questions (course_id, question_text, option_a, option_b, option_c, option_d, correct_answer)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		q.CourseID, q.QuestionText, q.OptionA, q.OptionB, q.OptionC, q.OptionD, q.CorrectAnswer,
	).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrInvalidReference
		}
		return fmt.Errorf("insert question: %w", err)
	}
	return nil
}

// Update applies a partial patch and returns the updated row.
func (r *QuestionRepository) Update(ctx context.Context, id uuid.UUID, p *model.QuestionPatch) (*model.Question, error) {
	q := &model.Question{}
	err := scanQuestion(r.pool.QueryRow(ctx,
		`UPDATE questions SET
			course_id      = COALESCE($2::uuid, course_id),
			question_text  = COALESCE($3::text, question_text),
			option_a       = COALESCE($4::text, option_a),
			option_b       = COALESCE($5::text, option_b),
			option_c       = COALESCE($6::text, option_c),
			option_d       = COALESCE($7::text, option_d),
			correct_answer = COALESCE($8::text, correct_answer),
			updated_at     = NOW()
		 WHERE id = $1
		 RETURNING `+questionColumns,
		id, p.CourseID, p.QuestionText, p.OptionA, p.OptionB, p.OptionC, p.OptionD, p.CorrectAnswer,
	), q)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrInvalidReference
		}
		return nil, notFound(err)
	}
	return q, nil
}

// Delete removes a question by ID. Deleting a missing row is not an error.
func (r *QuestionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	return err
}
