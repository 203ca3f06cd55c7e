package router

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/csexamtest/examtest-backend/internal/model"
	"github.com/csexamtest/examtest-backend/internal/repository"
	"github.com/google/uuid"
)

// memDB backs every store interface the services need with plain maps.
type memDB struct {
	mu        sync.Mutex
	admins    map[string]*model.Admin
	students  map[uuid.UUID]*model.Student
	courses   map[uuid.UUID]*model.Course
	questions map[uuid.UUID]*model.Question
	attempts  map[uuid.UUID]*model.TestAttempt
	answers   []model.TestAnswer
}

func newMemDB() *memDB {
	return &memDB{
		admins:    map[string]*model.Admin{},
		students:  map[uuid.UUID]*model.Student{},
		courses:   map[uuid.UUID]*model.Course{},
		questions: map[uuid.UUID]*model.Question{},
		attempts:  map[uuid.UUID]*model.TestAttempt{},
	}
}

type adminStore struct{ *memDB }

func (s adminStore) GetByAdminID(_ context.Context, adminID string) (*model.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.admins[adminID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (s adminStore) Create(_ context.Context, a *model.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.admins[a.AdminID]; ok {
		return repository.ErrDuplicateAdminID
	}
	a.ID, a.CreatedAt = uuid.New(), time.Now()
	cp := *a
	s.admins[a.AdminID] = &cp
	return nil
}

type studentStore struct{ *memDB }

func (s studentStore) find(match func(*model.Student) bool) (*model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range s.students {
		if match(st) {
			cp := *st
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s studentStore) GetByID(_ context.Context, id uuid.UUID) (*model.Student, error) {
	return s.find(func(st *model.Student) bool { return st.ID == id })
}

func (s studentStore) GetByEmail(_ context.Context, email string) (*model.Student, error) {
	return s.find(func(st *model.Student) bool { return strings.EqualFold(st.Email, email) })
}

func (s studentStore) GetByStudentID(_ context.Context, studentID string) (*model.Student, error) {
	return s.find(func(st *model.Student) bool { return st.StudentID == studentID })
}

func (s studentStore) Create(_ context.Context, st *model.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st.ID, st.CreatedAt = uuid.New(), time.Now()
	cp := *st
	s.students[st.ID] = &cp
	return nil
}

type courseStore struct{ *memDB }

func (s courseStore) List(context.Context) ([]model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Course{}
	for _, c := range s.courses {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s courseStore) GetByID(_ context.Context, id uuid.UUID) (*model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.courses[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s courseStore) Create(_ context.Context, c *model.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.courses {
		if existing.Code == c.Code {
			return repository.ErrDuplicateCode
		}
	}
	c.ID, c.CreatedAt = uuid.New(), time.Now()
	cp := *c
	s.courses[c.ID] = &cp
	return nil
}

type questionStore struct{ *memDB }

func (s questionStore) List(_ context.Context, courseID *uuid.UUID) ([]model.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Question{}
	for _, q := range s.questions {
		if courseID == nil || q.CourseID == *courseID {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (s questionStore) GetByID(_ context.Context, id uuid.UUID) (*model.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.questions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *q
	return &cp, nil
}

func (s questionStore) Create(_ context.Context, q *model.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.courses[q.CourseID]; !ok {
		return repository.ErrInvalidReference
	}
	q.ID, q.CreatedAt = uuid.New(), time.Now()
	q.UpdatedAt = q.CreatedAt
	cp := *q
	s.questions[q.ID] = &cp
	return nil
}

func (s questionStore) Update(_ context.Context, id uuid.UUID, p *model.QuestionPatch) (*model.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.questions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p.Apply(q)
	cp := *q
	return &cp, nil
}

func (s questionStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.questions, id)
	return nil
}

type attemptStore struct{ *memDB }

func (s attemptStore) Create(_ context.Context, a *model.TestAttempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.courses[a.CourseID]; !ok {
		return repository.ErrInvalidReference
	}
	a.ID, a.StartedAt = uuid.New(), time.Now()
	cp := *a
	s.attempts[a.ID] = &cp
	return nil
}

func (s attemptStore) GetByID(_ context.Context, id uuid.UUID) (*model.TestAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.attempts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (s attemptStore) Complete(_ context.Context, id uuid.UUID, c *model.TestCompletion) (*model.TestAttempt, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.attempts[id]
	if !ok {
		return nil, false, repository.ErrNotFound
	}
	if a.IsCompleted {
		cp := *a
		return &cp, false, nil
	}
	at := c.CompletedAt
	score, correct, total, spent := c.Score, c.CorrectAnswers, c.TotalQuestions, c.TimeSpent
	a.CompletedAt, a.Score, a.CorrectAnswers, a.TotalQuestions, a.TimeSpent = &at, &score, &correct, &total, &spent
	a.IsCompleted = true
	cp := *a
	return &cp, true, nil
}

func (s attemptStore) ListByStudent(_ context.Context, studentID uuid.UUID) ([]model.TestHistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.TestHistoryEntry{}
	for _, a := range s.attempts {
		if a.StudentID != studentID {
			continue
		}
		e := model.TestHistoryEntry{TestAttempt: *a}
		if c, ok := s.courses[a.CourseID]; ok {
			e.CourseName, e.CourseCode = c.Name, c.Code
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.After(out[j].StartedAt) })
	return out, nil
}

type answerStore struct{ *memDB }

func (s answerStore) Create(_ context.Context, a *model.TestAnswer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.attempts[a.TestAttemptID]; !ok {
		return repository.ErrInvalidReference
	}
	a.ID, a.AnsweredAt = uuid.New(), time.Now()
	s.answers = append(s.answers, *a)
	return nil
}

func (s answerStore) ListByAttempt(_ context.Context, attemptID uuid.UUID) ([]model.TestAnswer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.TestAnswer{}
	for _, a := range s.answers {
		if a.TestAttemptID == attemptID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s answerStore) CountCorrect(_ context.Context, attemptID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	latest := map[uuid.UUID]bool{}
	for _, a := range s.answers {
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

type dashboardStore struct{ *memDB }

func (s dashboardStore) GetStats(context.Context) (*model.AdminStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := &model.AdminStats{
		TotalStudents:  len(s.students),
		TotalCourses:   len(s.courses),
		TotalQuestions: len(s.questions),
		TotalTests:     len(s.attempts),
	}
	var sum int
	for _, a := range s.attempts {
		if a.IsCompleted {
			stats.CompletedTests++
			sum += *a.Score
		}
	}
	if stats.CompletedTests > 0 {
		stats.AverageScore = float64(sum) / float64(stats.CompletedTests)
	}
	return stats, nil
}

func (s dashboardStore) GetRecentActivity(context.Context, int) ([]model.ActivityEntry, error) {
	return []model.ActivityEntry{}, nil
}

func (s dashboardStore) GetStudentResults(context.Context) ([]model.StudentResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.StudentResult{}
	for _, a := range s.attempts {
		if !a.IsCompleted {
			continue
		}
		st, c := s.students[a.StudentID], s.courses[a.CourseID]
		out = append(out, model.StudentResult{
			TestAttemptID:  a.ID,
			StudentID:      st.StudentID,
			StudentName:    st.FirstName + " " + st.LastName,
			Email:          st.Email,
			CourseName:     c.Name,
			CourseCode:     c.Code,
			Score:          *a.Score,
			CorrectAnswers: *a.CorrectAnswers,
			TotalQuestions: *a.TotalQuestions,
			TimeSpent:      *a.TimeSpent,
			CompletedAt:    *a.CompletedAt,
		})
	}
	return out, nil
}
