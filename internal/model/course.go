package model

import (
	"time"

	"github.com/google/uuid"
)

// Course groups the questions a test is drawn from.
type Course struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateCourseRequest is the payload for creating a course.
type CreateCourseRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=100"`
	Code        string  `json:"code" binding:"required,min=2,max=20"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Category    *string `json:"category" binding:"omitempty,max=100"`
}
