package service

import (
	"context"
	"errors"
	"time"

	"github.com/csexamtest/examtest-backend/internal/model"
	"github.com/csexamtest/examtest-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TestService drives an attempt through start, answer and complete.
type TestService struct {
	attempts  AttemptStore
	answers   AnswerStore
	questions QuestionStore
	activity  ActivityPublisher
	// strict enforces attempt ownership and rejects answers to completed attempts.
	strict bool
	log    zerolog.Logger
	now    func() time.Time
}

// NewTestService creates a new TestService.
func NewTestService(attempts AttemptStore, answers AnswerStore, questions QuestionStore, activity ActivityPublisher, strict bool, log zerolog.Logger) *TestService {
	return &TestService{
		attempts:  attempts,
		answers:   answers,
		questions: questions,
		activity:  activity,
		strict:    strict,
		log:       log.With().Str("component", "test_service").Logger(),
		now:       time.Now,
	}
}

// Start opens a new attempt for the student on the course.
func (s *TestService) Start(ctx context.Context, studentID, courseID uuid.UUID) (*model.TestAttempt, error) {
	attempt := &model.TestAttempt{StudentID: studentID, CourseID: courseID}
	if err := s.attempts.Create(ctx, attempt); err != nil {
		if errors.Is(err, repository.ErrInvalidReference) {
			return nil, ErrInvalidCourse
		}
		return nil, err
	}

	s.activity.Publish(ctx, model.ActivityEvent{
		Type:          model.ActivityTestStarted,
		TestAttemptID: attempt.ID,
		StudentID:     attempt.StudentID,
		CourseID:      attempt.CourseID,
		At:            attempt.StartedAt,
	})
	return attempt, nil
}

// SubmitAnswer records one answer and grades it against the question.
func (s *TestService) SubmitAnswer(ctx context.Context, studentID, attemptID, questionID uuid.UUID, selected string) (*model.TestAnswer, error) {
	var attempt *model.TestAttempt
	if s.strict {
		a, err := s.ownedAttempt(ctx, studentID, attemptID)
		if err != nil {
			return nil, err
		}
		if a.IsCompleted {
			return nil, ErrTestAlreadyCompleted
		}
		attempt = a
	}

	question, err := s.questions.GetByID(ctx, questionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidQuestion
		}
		return nil, err
	}
	if attempt != nil && question.CourseID != attempt.CourseID {
		return nil, ErrInvalidQuestion
	}

	answer := &model.TestAnswer{
		TestAttemptID:  attemptID,
		QuestionID:     questionID,
		SelectedAnswer: selected,
		IsCorrect:      selected == question.CorrectAnswer,
	}
	if err := s.answers.Create(ctx, answer); err != nil {
		if errors.Is(err, repository.ErrInvalidReference) {
			return nil, ErrTestNotFound
		}
		return nil, err
	}
	return answer, nil
}

// Complete closes an attempt with the client's aggregates. Completing an
// already completed attempt returns it unchanged.
func (s *TestService) Complete(ctx context.Context, studentID, attemptID uuid.UUID, req *model.CompleteTestRequest) (*model.TestAttempt, error) {
	if s.strict {
		a, err := s.ownedAttempt(ctx, studentID, attemptID)
		if err != nil {
			return nil, err
		}
		if a.IsCompleted {
			return a, nil
		}
	}

	if tally, err := s.answers.CountCorrect(ctx, attemptID); err != nil {
		s.log.Warn().Err(err).Str("test_attempt_id", attemptID.String()).Msg("Failed to tally answers")
	} else if tally != req.CorrectAnswers {
		s.log.Warn().
			Str("test_attempt_id", attemptID.String()).
			Int("reported", req.CorrectAnswers).
			Int("recorded", tally).
			Msg("Reported correct answers differ from recorded answers")
	}

	completion := &model.TestCompletion{
		Score:          *req.Score,
		CorrectAnswers: req.CorrectAnswers,
		TotalQuestions: req.TotalQuestions,
		TimeSpent:      req.TimeSpent,
		CompletedAt:    s.now(),
	}
	attempt, updated, err := s.attempts.Complete(ctx, attemptID, completion)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTestNotFound
		}
		return nil, err
	}

	if updated {
		s.activity.Publish(ctx, model.ActivityEvent{
			Type:          model.ActivityTestCompleted,
			TestAttemptID: attempt.ID,
			StudentID:     attempt.StudentID,
			CourseID:      attempt.CourseID,
			Score:         attempt.Score,
			At:            completion.CompletedAt,
		})
	}
	return attempt, nil
}

// History lists the student's attempts, newest first.
func (s *TestService) History(ctx context.Context, studentID uuid.UUID) ([]model.TestHistoryEntry, error) {
	return s.attempts.ListByStudent(ctx, studentID)
}

// Result returns an attempt of the student together with its answers.
func (s *TestService) Result(ctx context.Context, studentID, attemptID uuid.UUID) (*model.TestResult, error) {
	attempt, err := s.ownedAttempt(ctx, studentID, attemptID)
	if err != nil {
		return nil, err
	}
	answers, err := s.answers.ListByAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	return &model.TestResult{TestAttempt: attempt, Answers: answers}, nil
}

// ownedAttempt loads an attempt and hides it from anyone but its owner.
func (s *TestService) ownedAttempt(ctx context.Context, studentID, attemptID uuid.UUID) (*model.TestAttempt, error) {
	attempt, err := s.attempts.GetByID(ctx, attemptID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTestNotFound
		}
		return nil, err
	}
	if attempt.StudentID != studentID {
		return nil, ErrTestNotFound
	}
	return attempt, nil
}
