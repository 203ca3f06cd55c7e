package repository

import (
	"context"
	"fmt"

	"github.com/csexamtest/examtest-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const courseColumns = `id, name, code, description, category, created_at`

// CourseRepository handles course data access.
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

func scanCourse(row pgx.Row, c *model.Course) error {
	return row.Scan(&c.ID, &c.Name, &c.Code, &c.Description, &c.Category, &c.CreatedAt)
}

// List retrieves all courses ordered by name.
func (r *CourseRepository) List(ctx context.Context) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+courseColumns+` FROM courses ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := []model.Course{}
	for rows.Next() {
		var c model.Course
		if err := scanCourse(rows, &c); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// GetByID retrieves a course by ID.
func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	c := &model.Course{}
	if err := scanCourse(r.pool.QueryRow(ctx, `SELECT `+courseColumns+` FROM courses WHERE id = $1`, id), c); err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

// Create inserts a new course.
func (r *CourseRepository) Create(ctx context.Context, c *model.Course) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO courses (name, code, description, category) VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		c.Name, c.Code, c.Description, c.Category,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if uniqueConstraint(err) != "" {
			return ErrDuplicateCode
		}
		return fmt.Errorf("insert course: %w", err)
	}
	return nil
}
