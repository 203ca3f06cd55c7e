package service

import "errors"

// Domain errors returned by services. Handlers map them onto HTTP responses.
var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailTaken           = errors.New("student with this email already exists")
	ErrStudentIDTaken       = errors.New("student id already exists")
	ErrAdminIDTaken         = errors.New("admin id already exists")
	ErrCourseCodeTaken      = errors.New("course with this code already exists")
	ErrAdminNotFound        = errors.New("admin not found")
	ErrStudentNotFound      = errors.New("student not found")
	ErrQuestionNotFound     = errors.New("question not found")
	ErrTestNotFound         = errors.New("test not found")
	ErrTestAlreadyCompleted = errors.New("test already completed")
	ErrInvalidCourse        = errors.New("course does not exist")
	ErrInvalidQuestion      = errors.New("question does not exist")
	ErrEmptyPatch           = errors.New("no fields to update")
	ErrFeedUnavailable      = errors.New("live activity feed is not configured")
)
