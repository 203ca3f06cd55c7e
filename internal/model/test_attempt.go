package model

import (
	"time"

	"github.com/google/uuid"
)

// TestAttempt is one sitting of a student against a course's question set.
type TestAttempt struct {
	ID             uuid.UUID  `json:"id"`
	StudentID      uuid.UUID  `json:"studentId"`
	CourseID       uuid.UUID  `json:"courseId"`
	StartedAt      time.Time  `json:"startedAt"`
	CompletedAt    *time.Time `json:"completedAt"`
	Score          *int       `json:"score"`
	CorrectAnswers *int       `json:"correctAnswers"`
	TotalQuestions *int       `json:"totalQuestions"`
	TimeSpent      *int       `json:"timeSpent"`
	IsCompleted    bool       `json:"isCompleted"`
}

// TestHistoryEntry is a TestAttempt annotated with its course name.
type TestHistoryEntry struct {
	TestAttempt
	CourseName string `json:"courseName"`
	CourseCode string `json:"courseCode"`
}

// StartTestRequest begins an attempt. Any student id in the body is ignored;
// the session identity is authoritative.
type StartTestRequest struct {
	CourseID string `json:"courseId" binding:"required,uuid"`
}

// CompleteTestRequest closes an attempt with client-computed aggregates.
type CompleteTestRequest struct {
	TestAttemptID  string `json:"testAttemptId" binding:"required,uuid"`
	Score          *int   `json:"score" binding:"required,min=0,max=100"`
	CorrectAnswers int    `json:"correctAnswers" binding:"min=0,ltefield=TotalQuestions"`
	TotalQuestions int    `json:"totalQuestions" binding:"min=0"`
	TimeSpent      int    `json:"timeSpent" binding:"min=0"`
}

// TestCompletion is the typed completion payload handed to the repository.
type TestCompletion struct {
	Score          int
	CorrectAnswers int
	TotalQuestions int
	TimeSpent      int
	CompletedAt    time.Time
}

// TestResult bundles an attempt with its recorded answers.
type TestResult struct {
	TestAttempt *TestAttempt `json:"testAttempt"`
	Answers     []TestAnswer `json:"answers"`
}
