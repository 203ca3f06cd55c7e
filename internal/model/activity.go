package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityEventType names the events pushed over the live activity feed.
type ActivityEventType string

const (
	ActivityTestStarted   ActivityEventType = "test_started"
	ActivityTestCompleted ActivityEventType = "test_completed"
)

// ActivityEvent is published whenever an attempt starts or completes.
type ActivityEvent struct {
	Type          ActivityEventType `json:"event"`
	TestAttemptID uuid.UUID         `json:"testAttemptId"`
	StudentID     uuid.UUID         `json:"studentId"`
	CourseID      uuid.UUID         `json:"courseId"`
	Score         *int              `json:"score,omitempty"`
	At            time.Time         `json:"at"`
}
