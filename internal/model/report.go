package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminStats holds the headline numbers for the admin dashboard.
type AdminStats struct {
	TotalStudents  int     `json:"totalStudents"`
	TotalCourses   int     `json:"totalCourses"`
	TotalQuestions int     `json:"totalQuestions"`
	TotalTests     int     `json:"totalTests"`
	CompletedTests int     `json:"completedTests"`
	AverageScore   float64 `json:"averageScore"`
}

// ActivityEntry is one row of the recent activity feed.
type ActivityEntry struct {
	ID          uuid.UUID  `json:"id"`
	StudentName string     `json:"studentName"`
	CourseName  string     `json:"courseName"`
	Score       *int       `json:"score"`
	IsCompleted bool       `json:"isCompleted"`
	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt"`
}

// StudentResult is a completed attempt joined with student and course details.
type StudentResult struct {
	TestAttemptID  uuid.UUID `json:"testAttemptId"`
	StudentID      string    `json:"studentId"`
	StudentName    string    `json:"studentName"`
	Email          string    `json:"email"`
	CourseName     string    `json:"courseName"`
	CourseCode     string    `json:"courseCode"`
	Score          int       `json:"score"`
	CorrectAnswers int       `json:"correctAnswers"`
	TotalQuestions int       `json:"totalQuestions"`
	TimeSpent      int       `json:"timeSpent"`
	CompletedAt    time.Time `json:"completedAt"`
}
