package repository

import (
	"context"

	"github.com/csexamtest/examtest-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DashboardRepository handles admin reporting queries.
type DashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// GetStats retrieves the headline counters for the dashboard.
func (r *DashboardRepository) GetStats(ctx context.Context) (*model.AdminStats, error) {
	s := &model.AdminStats{}
	err := r.pool.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM students),
			(SELECT COUNT(*) FROM courses),
			(SELECT COUNT(*) FROM questions),
			(SELECT COUNT(*) FROM test_attempts),
			(SELECT COUNT(*) FROM test_attempts WHERE is_completed),
			(SELECT COALESCE(ROUND(AVG(score)::numeric, 2), 0)::float8 FROM test_attempts WHERE is_completed)`,
	).Scan(&s.TotalStudents, &s.TotalCourses, &s.TotalQuestions, &s.TotalTests, &s.CompletedTests, &s.AverageScore)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetRecentActivity retrieves the latest attempt events, newest first.
func (r *DashboardRepository) GetRecentActivity(ctx context.Context, limit int) ([]model.ActivityEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT t.id, s.first_name || ' ' || s.last_name, c.name,
		        t.score, t.is_completed, t.started_at, t.completed_at
		 FROM test_attempts t
		 JOIN students s ON s.id = t.student_id
		 JOIN courses c ON c.id = t.course_id
		 ORDER BY COALESCE(t.completed_at, t.started_at) DESC
		 LIMIT $1`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []model.ActivityEntry{}
	for rows.Next() {
		var e model.ActivityEntry
		if err := rows.Scan(&e.ID, &e.StudentName, &e.CourseName, &e.Score, &e.IsCompleted, &e.StartedAt, &e.CompletedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetStudentResults retrieves every completed attempt with student and course details.
func (r *DashboardRepository) GetStudentResults(ctx context.Context) ([]model.StudentResult, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT t.id, s.student_id, s.first_name || ' ' || s.last_name, s.email,
		        c.name, c.code,
		        COALESCE(t.score, 0), COALESCE(t.correct_answers, 0),
		        COALESCE(t.total_questions, 0), COALESCE(t.time_spent, 0), t.completed_at
		 FROM test_attempts t
		 JOIN students s ON s.id = t.student_id
		 JOIN courses c ON c.id = t.course_id
		 WHERE t.is_completed
		 ORDER BY t.completed_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []model.StudentResult{}
	for rows.Next() {
		var res model.StudentResult
		if err := rows.Scan(&res.TestAttemptID, &res.StudentID, &res.StudentName, &res.Email,
			&res.CourseName, &res.CourseCode, &res.Score, &res.CorrectAnswers,
			&res.TotalQuestions, &res.TimeSpent, &res.CompletedAt); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, rows.Err()
}
