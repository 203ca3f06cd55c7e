package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/csexamtest/examtest-backend/internal/model"
	"github.com/csexamtest/examtest-backend/internal/repository"
	"github.com/google/uuid"
)

// StudentService handles student registration and lookup.
type StudentService struct {
	students StudentStore
	auth     *AuthService
}

// NewStudentService creates a new StudentService.
func NewStudentService(students StudentStore, auth *AuthService) *StudentService {
	return &StudentService{students: students, auth: auth}
}

// Register creates a student account. The email is checked before the
// student id, so a request clashing on both reports the email.
func (s *StudentService) Register(ctx context.Context, req *model.RegisterStudentRequest) (*model.Student, error) {
	if _, err := s.students.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if _, err := s.students.GetByStudentID(ctx, req.StudentID); err == nil {
		return nil, ErrStudentIDTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	student := &model.Student{
		StudentID:    req.StudentID,
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}
	if err := s.students.Create(ctx, student); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, ErrEmailTaken
		case errors.Is(err, repository.ErrDuplicateStudentID):
			return nil, ErrStudentIDTaken
		}
		return nil, err
	}
	return student, nil
}

// Get looks up the student a session refers to.
func (s *StudentService) Get(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return student, nil
}
