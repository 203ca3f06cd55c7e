package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/csexamtest/examtest-backend/internal/model"
	"github.com/csexamtest/examtest-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// QuestionService handles question business logic.
type QuestionService struct {
	questions QuestionStore
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(questions QuestionStore) *QuestionService {
	return &QuestionService{questions: questions}
}

// List returns questions with their correct answers, optionally for one course.
func (s *QuestionService) List(ctx context.Context, courseID *uuid.UUID) ([]model.Question, error) {
	return s.questions.List(ctx, courseID)
}

// ListForStudent returns a course's questions without correct answers.
func (s *QuestionService) ListForStudent(ctx context.Context, courseID uuid.UUID) ([]model.StudentQuestion, error) {
	questions, err := s.questions.List(ctx, &courseID)
	if err != nil {
		return nil, err
	}

	out := make([]model.StudentQuestion, 0, len(questions))
	if err := copier.Copy(&out, &questions); err != nil {
		return nil, fmt.Errorf("project questions: %w", err)
	}
	return out, nil
}

// Create adds a question to an existing course.
func (s *QuestionService) Create(ctx context.Context, req *model.CreateQuestionRequest) (*model.Question, error) {
	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		return nil, ErrInvalidCourse
	}

	q := &model.Question{
		CourseID:      courseID,
		QuestionText:  req.QuestionText,
		OptionA:       req.OptionA,
		OptionB:       req.OptionB,
		OptionC:       req.OptionC,
		OptionD:       req.OptionD,
		CorrectAnswer: req.CorrectAnswer,
	}
	if err := s.questions.Create(ctx, q); err != nil {
		if errors.Is(err, repository.ErrInvalidReference) {
			return nil, ErrInvalidCourse
		}
		return nil, err
	}
	return q, nil
}

// Update applies a partial patch to a question.
func (s *QuestionService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateQuestionRequest) (*model.Question, error) {
	if req.IsEmpty() {
		return nil, ErrEmptyPatch
	}

	patch := &model.QuestionPatch{
		QuestionText:  req.QuestionText,
		OptionA:       req.OptionA,
		OptionB:       req.OptionB,
		OptionC:       req.OptionC,
		OptionD:       req.OptionD,
		CorrectAnswer: req.CorrectAnswer,
	}
	if req.CourseID != nil {
		courseID, err := uuid.Parse(*req.CourseID)
		if err != nil {
			return nil, ErrInvalidCourse
		}
		patch.CourseID = &courseID
	}

	q, err := s.questions.Update(ctx, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrQuestionNotFound
		case errors.Is(err, repository.ErrInvalidReference):
			return nil, ErrInvalidCourse
		}
		return nil, err
	}
	return q, nil
}

// Delete removes a question. Deleting a missing question is not an error.
func (s *QuestionService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.questions.Delete(ctx, id)
}
