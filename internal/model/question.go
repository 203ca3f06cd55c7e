package model

import (
	"time"

	"github.com/google/uuid"
)

// Options a multiple-choice question can be answered with.
const (
	OptionA = "A"
	OptionB = "B"
	OptionC = "C"
	OptionD = "D"
)

// Question represents a four-option multiple-choice question. CorrectAnswer
// must never reach a student-facing response; use StudentQuestion there.
type Question struct {
	ID            uuid.UUID `json:"id"`
	CourseID      uuid.UUID `json:"courseId"`
	QuestionText  string    `json:"questionText"`
	OptionA       string    `json:"optionA"`
	OptionB       string    `json:"optionB"`
	OptionC       string    `json:"optionC"`
	OptionD       string    `json:"optionD"`
	CorrectAnswer string    `json:"correctAnswer"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// StudentQuestion is the projection of a question served to test takers.
type StudentQuestion struct {
	ID           uuid.UUID `json:"id"`
	QuestionText string    `json:"questionText"`
	OptionA      string    `json:"optionA"`
	OptionB      string    `json:"optionB"`
	OptionC      string    `json:"optionC"`
	OptionD      string    `json:"optionD"`
}

// CreateQuestionRequest is the payload for adding a question to a course.
type CreateQuestionRequest struct {
	CourseID      string `json:"courseId" binding:"required,uuid"`
	QuestionText  string `json:"questionText" binding:"required,min=1,max=2000"`
	OptionA       string `json:"optionA" binding:"required,min=1,max=500"`
	OptionB       string `json:"optionB" binding:"required,min=1,max=500"`
	OptionC       string `json:"optionC" binding:"required,min=1,max=500"`
	OptionD       string `json:"optionD" binding:"required,min=1,max=500"`
	CorrectAnswer string `json:"correctAnswer" binding:"required,option"`
}

// UpdateQuestionRequest is a partial patch; nil fields are left untouched.
type UpdateQuestionRequest struct {
	CourseID      *string `json:"courseId" binding:"omitempty,uuid"`
	QuestionText  *string `json:"questionText" binding:"omitempty,min=1,max=2000"`
	OptionA       *string `json:"optionA" binding:"omitempty,min=1,max=500"`
	OptionB       *string `json:"optionB" binding:"omitempty,min=1,max=500"`
	OptionC       *string `json:"optionC" binding:"omitempty,min=1,max=500"`
	OptionD       *string `json:"optionD" binding:"omitempty,min=1,max=500"`
	CorrectAnswer *string `json:"correctAnswer" binding:"omitempty,option"`
}

// IsEmpty reports whether the patch changes nothing.
func (r *UpdateQuestionRequest) IsEmpty() bool {
	return r.CourseID == nil && r.QuestionText == nil &&
		r.OptionA == nil && r.OptionB == nil && r.OptionC == nil && r.OptionD == nil &&
		r.CorrectAnswer == nil
}

// QuestionPatch is the typed form of UpdateQuestionRequest handed to the repository.
type QuestionPatch struct {
	CourseID      *uuid.UUID
	QuestionText  *string
	OptionA       *string
	OptionB       *string
	OptionC       *string
	OptionD       *string
	CorrectAnswer *string
}

// Apply copies the non-nil patch fields onto q.
func (p *QuestionPatch) Apply(q *Question) {
	if p.CourseID != nil {
		q.CourseID = *p.CourseID
	}
	if p.QuestionText != nil {
		q.QuestionText = *p.QuestionText
	}
	if p.OptionA != nil {
		q.OptionA = *p.OptionA
	}
	if p.OptionB != nil {
		q.OptionB = *p.OptionB
	}
	if p.OptionC != nil {
		q.OptionC = *p.OptionC
	}
	if p.OptionD != nil {
		q.OptionD = *p.OptionD
	}
	if p.CorrectAnswer != nil {
		q.CorrectAnswer = *p.CorrectAnswer
	}
}
