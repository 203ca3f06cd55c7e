package model

import (
	"time"

	"github.com/google/uuid"
)

// TestAnswer is the option a student selected for one question of an attempt.
type TestAnswer struct {
	ID             uuid.UUID `json:"id"`
	TestAttemptID  uuid.UUID `json:"testAttemptId"`
	QuestionID     uuid.UUID `json:"questionId"`
	SelectedAnswer string    `json:"selectedAnswer"`
	IsCorrect      bool      `json:"isCorrect"`
	AnsweredAt     time.Time `json:"answeredAt"`
}

// SubmitAnswerRequest records one answer.
type SubmitAnswerRequest struct {
	TestAttemptID  string `json:"testAttemptId" binding:"required,uuid"`
	QuestionID     string `json:"questionId" binding:"required,uuid"`
	SelectedAnswer string `json:"selectedAnswer" binding:"required,option"`
}
