package service

import (
	"context"

	"github.com/csexamtest/examtest-backend/internal/model"
	"github.com/google/uuid"
)

// The interfaces below are satisfied by the pgx repositories in
// internal/repository and by in-memory fakes in tests.

type AdminStore interface {
	GetByAdminID(ctx context.Context, adminID string) (*model.Admin, error)
	Create(ctx context.Context, a *model.Admin) error
}

type StudentStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Student, error)
	GetByEmail(ctx context.Context, email string) (*model.Student, error)
	GetByStudentID(ctx context.Context, studentID string) (*model.Student, error)
	Create(ctx context.Context, s *model.Student) error
}

type CourseStore interface {
	List(ctx context.Context) ([]model.Course, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Course, error)
	Create(ctx context.Context, c *model.Course) error
}

type QuestionStore interface {
	List(ctx context.Context, courseID *uuid.UUID) ([]model.Question, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Question, error)
	Create(ctx context.Context, q *model.Question) error
	Update(ctx context.Context, id uuid.UUID, p *model.QuestionPatch) (*model.Question, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type AttemptStore interface {
	Create(ctx context.Context, a *model.TestAttempt) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.TestAttempt, error)
	Complete(ctx context.Context, id uuid.UUID, c *model.TestCompletion) (*model.TestAttempt, bool, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.TestHistoryEntry, error)
}

type AnswerStore interface {
	Create(ctx context.Context, a *model.TestAnswer) error
	ListByAttempt(ctx context.Context, attemptID uuid.UUID) ([]model.TestAnswer, error)
	CountCorrect(ctx context.Context, attemptID uuid.UUID) (int, error)
}

type DashboardStore interface {
	GetStats(ctx context.Context) (*model.AdminStats, error)
	GetRecentActivity(ctx context.Context, limit int) ([]model.ActivityEntry, error)
	GetStudentResults(ctx context.Context) ([]model.StudentResult, error)
}
