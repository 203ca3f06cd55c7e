package model

import (
	"time"

	"github.com/google/uuid"
)

// Student represents a self-registered test taker.
type Student struct {
	ID           uuid.UUID `json:"id"`
	StudentID    string    `json:"studentId"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PublicStudent is the sanitized student record returned to clients.
type PublicStudent struct {
	ID        uuid.UUID `json:"id"`
	StudentID string    `json:"studentId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
}

// Public strips credentials from the student record.
func (s *Student) Public() PublicStudent {
	return PublicStudent{
		ID:        s.ID,
		StudentID: s.StudentID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Email:     s.Email,
	}
}

// RegisterStudentRequest is the payload for student self-registration.
type RegisterStudentRequest struct {
	StudentID string `json:"studentId" binding:"required,min=1,max=50"`
	Email     string `json:"email" binding:"required,email,max=255"`
	Password  string `json:"password" binding:"required,min=6,max=128"`
	FirstName string `json:"firstName" binding:"required,min=1,max=100"`
	LastName  string `json:"lastName" binding:"required,min=1,max=100"`
}

// StudentLoginRequest is the payload for student authentication.
type StudentLoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=128"`
}
