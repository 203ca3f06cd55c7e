package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/csexamtest/examtest-backend/internal/model"
	"github.com/csexamtest/examtest-backend/internal/repository"
	"github.com/google/uuid"
)

type fakeAdmins struct {
	byAdminID map[string]*model.Admin
}

func newFakeAdmins() *fakeAdmins {
	return &fakeAdmins{byAdminID: map[string]*model.Admin{}}
}

func (f *fakeAdmins) GetByAdminID(_ context.Context, adminID string) (*model.Admin, error) {
	a, ok := f.byAdminID[adminID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return a, nil
}

func (f *fakeAdmins) Create(_ context.Context, a *model.Admin) error {
	if _, ok := f.byAdminID[a.AdminID]; ok {
		return repository.ErrDuplicateAdminID
	}
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	f.byAdminID[a.AdminID] = a
	return nil
}

type fakeStudents struct {
	mu   sync.Mutex
	rows []*model.Student
}

func (f *fakeStudents) find(match func(*model.Student) bool) (*model.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.rows {
		if match(s) {
			return s, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeStudents) GetByID(_ context.Context, id uuid.UUID) (*model.Student, error) {
	return f.find(func(s *model.Student) bool { return s.ID == id })
}

func (f *fakeStudents) GetByEmail(_ context.Context, email string) (*model.Student, error) {
	return f.find(func(s *model.Student) bool { return strings.EqualFold(s.Email, email) })
}

func (f *fakeStudents) GetByStudentID(_ context.Context, studentID string) (*model.Student, error) {
	return f.find(func(s *model.Student) bool { return s.StudentID == studentID })
}

func (f *fakeStudents) Create(_ context.Context, s *model.Student) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	f.rows = append(f.rows, s)
	return nil
}

type fakeCourses struct {
	rows []model.Course
}

func (f *fakeCourses) List(context.Context) ([]model.Course, error) {
	return f.rows, nil
}

func (f *fakeCourses) GetByID(_ context.Context, id uuid.UUID) (*model.Course, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			return &f.rows[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCourses) Create(_ context.Context, c *model.Course) error {
	for _, existing := range f.rows {
		if existing.Code == c.Code {
			return repository.ErrDuplicateCode
		}
	}
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	f.rows = append(f.rows, *c)
	return nil
}

type fakeQuestions struct {
	rows    map[uuid.UUID]*model.Question
	courses *fakeCourses
}

func newFakeQuestions(courses *fakeCourses) *fakeQuestions {
	return &fakeQuestions{rows: map[uuid.UUID]*model.Question{}, courses: courses}
}

func (f *fakeQuestions) List(_ context.Context, courseID *uuid.UUID) ([]model.Question, error) {
	out := []model.Question{}
	for _, q := range f.rows {
		if courseID == nil || q.CourseID == *courseID {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (f *fakeQuestions) GetByID(_ context.Context, id uuid.UUID) (*model.Question, error) {
	q, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *q
	return &cp, nil
}

func (f *fakeQuestions) Create(ctx context.Context, q *model.Question) error {
	if _, err := f.courses.GetByID(ctx, q.CourseID); err != nil {
		return repository.ErrInvalidReference
	}
	q.ID = uuid.New()
	q.CreatedAt = time.Now()
	q.UpdatedAt = q.CreatedAt
	cp := *q
	f.rows[q.ID] = &cp
	return nil
}

func (f *fakeQuestions) Update(ctx context.Context, id uuid.UUID, p *model.QuestionPatch) (*model.Question, error) {
	q, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if p.CourseID != nil {
		if _, err := f.courses.GetByID(ctx, *p.CourseID); err != nil {
			return nil, repository.ErrInvalidReference
		}
	}
	p.Apply(q)
	q.UpdatedAt = time.Now()
	cp := *q
	return &cp, nil
}

func (f *fakeQuestions) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.rows, id)
	return nil
}

type fakeAttempts struct {
	rows    map[uuid.UUID]*model.TestAttempt
	courses *fakeCourses
}

func newFakeAttempts(courses *fakeCourses) *fakeAttempts {
	return &fakeAttempts{rows: map[uuid.UUID]*model.TestAttempt{}, courses: courses}
}

func (f *fakeAttempts) Create(ctx context.Context, a *model.TestAttempt) error {
	if _, err := f.courses.GetByID(ctx, a.CourseID); err != nil {
		return repository.ErrInvalidReference
	}
	a.ID = uuid.New()
	a.StartedAt = time.Now()
	cp := *a
	f.rows[a.ID] = &cp
	return nil
}

func (f *fakeAttempts) GetByID(_ context.Context, id uuid.UUID) (*model.TestAttempt, error) {
	a, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAttempts) Complete(ctx context.Context, id uuid.UUID, c *model.TestCompletion) (*model.TestAttempt, bool, error) {
	a, ok := f.rows[id]
	if !ok {
		return nil, false, repository.ErrNotFound
	}
	if a.IsCompleted {
		cp := *a
		return &cp, false, nil
	}
	completedAt := c.CompletedAt
	score, correct, total, spent := c.Score, c.CorrectAnswers, c.TotalQuestions, c.TimeSpent
	a.CompletedAt = &completedAt
	a.Score = &score
	a.CorrectAnswers = &correct
	a.TotalQuestions = &total
	a.TimeSpent = &spent
	a.IsCompleted = true
	cp := *a
	return &cp, true, nil
}

func (f *fakeAttempts) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.TestHistoryEntry, error) {
	out := []model.TestHistoryEntry{}
	for _, a := range f.rows {
		if a.StudentID != studentID {
			continue
		}
		entry := model.TestHistoryEntry{TestAttempt: *a}
		if c, err := f.courses.GetByID(ctx, a.CourseID); err == nil {
			entry.CourseName, entry.CourseCode = c.Name, c.Code
		}
		out = append(out, entry)
	}
	return out, nil
}

type fakeAnswers struct {
	rows     []model.TestAnswer
	attempts *fakeAttempts
}

func (f *fakeAnswers) Create(_ context.Context, a *model.TestAnswer) error {
	if _, ok := f.attempts.rows[a.TestAttemptID]; !ok {
		return repository.ErrInvalidReference
	}
	a.ID = uuid.New()
	a.AnsweredAt = time.Now()
	f.rows = append(f.rows, *a)
	return nil
}

func (f *fakeAnswers) ListByAttempt(_ context.Context, attemptID uuid.UUID) ([]model.TestAnswer, error) {
	out := []model.TestAnswer{}
	for _, a := range f.rows {
		if a.TestAttemptID == attemptID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAnswers) CountCorrect(_ context.Context, attemptID uuid.UUID) (int, error) {
	latest := map[uuid.UUID]bool{}
	for _, a := range f.rows {
		if a.TestAttemptID == attemptID {
			latest[a.QuestionID] = a.IsCorrect
		}
	}
	n := 0
	for _, ok := range latest {
		if ok {
			n++
		}
	}
	return n, nil
}

type fakeDashboard struct {
	stats   model.AdminStats
	recent  []model.ActivityEntry
	results []model.StudentResult
	limit   int
}

func (f *fakeDashboard) GetStats(context.Context) (*model.AdminStats, error) {
	s := f.stats
	return &s, nil
}

func (f *fakeDashboard) GetRecentActivity(_ context.Context, limit int) ([]model.ActivityEntry, error) {
	f.limit = limit
	return f.recent, nil
}

func (f *fakeDashboard) GetStudentResults(context.Context) ([]model.StudentResult, error) {
	return f.results, nil
}

type recordingPublisher struct {
	events []model.ActivityEvent
}

func (p *recordingPublisher) Publish(_ context.Context, e model.ActivityEvent) {
	p.events = append(p.events, e)
}
