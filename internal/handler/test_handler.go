package handler

import (
	"net/http"

	"github.com/csexamtest/examtest-backend/internal/model"
	"github.com/csexamtest/examtest-backend/internal/response"
	"github.com/csexamtest/examtest-backend/internal/service"
	"github.com/csexamtest/examtest-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TestHandler handles the student test-taking endpoints.
type TestHandler struct {
	testService *service.TestService
	log         zerolog.Logger
}

// NewTestHandler creates a new TestHandler.
func NewTestHandler(testService *service.TestService, log zerolog.Logger) *TestHandler {
	return &TestHandler{
		testService: testService,
		log:         log.With().Str("component", "test_handler").Logger(),
	}
}

// StartTest godoc
// POST /api/student/test/start
// The attempt always belongs to the session's student.
func (h *TestHandler) StartTest(c *gin.Context) {
	studentID, ok := currentStudentID(c)
	if !ok {
		return
	}

	var req model.StartTestRequest
	if !validator.Bind(c, &req) {
		return
	}

	attempt, err := h.testService.Start(c.Request.Context(), studentID, uuid.MustParse(req.CourseID))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, attempt)
}

// SubmitAnswer godoc
// POST /api/student/test/answer
func (h *TestHandler) SubmitAnswer(c *gin.Context) {
	studentID, ok := currentStudentID(c)
	if !ok {
		return
	}

	var req model.SubmitAnswerRequest
	if !validator.Bind(c, &req) {
		return
	}

	answer, err := h.testService.SubmitAnswer(c.Request.Context(), studentID,
		uuid.MustParse(req.TestAttemptID), uuid.MustParse(req.QuestionID), req.SelectedAnswer)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, answer)
}

// CompleteTest godoc
// POST /api/student/test/complete
func (h *TestHandler) CompleteTest(c *gin.Context) {
	studentID, ok := currentStudentID(c)
	if !ok {
		return
	}

	var req model.CompleteTestRequest
	if !validator.Bind(c, &req) {
		return
	}

	attempt, err := h.testService.Complete(c.Request.Context(), studentID, uuid.MustParse(req.TestAttemptID), &req)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, attempt)
}

// History godoc
// GET /api/student/test/history
func (h *TestHandler) History(c *gin.Context) {
	studentID, ok := currentStudentID(c)
	if !ok {
		return
	}

	history, err := h.testService.History(c.Request.Context(), studentID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, history)
}

// Result godoc
// GET /api/student/test/results/:testAttemptId
func (h *TestHandler) Result(c *gin.Context) {
	studentID, ok := currentStudentID(c)
	if !ok {
		return
	}

	attemptID, ok := parseUUIDParam(c, "testAttemptId")
	if !ok {
		return
	}

	result, err := h.testService.Result(c.Request.Context(), studentID, attemptID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}
