package service

import (
	"context"
	"errors"

	"github.com/csexamtest/examtest-backend/internal/model"
	"github.com/csexamtest/examtest-backend/internal/repository"
)

// CourseService handles course business logic.
type CourseService struct {
	courses CourseStore
}

// NewCourseService creates a new CourseService.
func NewCourseService(courses CourseStore) *CourseService {
	return &CourseService{courses: courses}
}

// List returns every course ordered by name.
func (s *CourseService) List(ctx context.Context) ([]model.Course, error) {
	return s.courses.List(ctx)
}

// Create adds a course. Codes are unique.
func (s *CourseService) Create(ctx context.Context, req *model.CreateCourseRequest) (*model.Course, error) {
	course := &model.Course{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		Category:    req.Category,
	}
	if err := s.courses.Create(ctx, course); err != nil {
		if errors.Is(err, repository.ErrDuplicateCode) {
			return nil, ErrCourseCodeTaken
		}
		return nil, err
	}
	return course, nil
}
