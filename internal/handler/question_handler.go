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

// QuestionHandler handles question bank endpoints for both portals.
type QuestionHandler struct {
	questionService *service.QuestionService
	log             zerolog.Logger
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(questionService *service.QuestionService, log zerolog.Logger) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		log:             log.With().Str("component", "question_handler").Logger(),
	}
}

// ListQuestions godoc
// GET /api/admin/questions?courseId=
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	var courseID *uuid.UUID
	if raw := c.Query("courseId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}
		courseID = &id
	}

	questions, err := h.questionService.List(c.Request.Context(), courseID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, questions)
}

// CreateQuestion godoc
// POST /api/admin/questions
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req model.CreateQuestionRequest
	if !validator.Bind(c, &req) {
		return
	}

	q, err := h.questionService.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, q)
}

// UpdateQuestion godoc
// PUT /api/admin/questions/:id
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req model.UpdateQuestionRequest
	if !validator.Bind(c, &req) {
		return
	}

	q, err := h.questionService.Update(c.Request.Context(), id, &req)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, q)
}

// DeleteQuestion godoc
// DELETE /api/admin/questions/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.questionService.Delete(c.Request.Context(), id); err != nil {
		fail(c, h.log, err)
		return
	}
	response.OK(c, http.StatusOK)
}

// ListStudentQuestions godoc
// GET /api/questions/:courseId
// Serves a course's questions with the correct answers removed.
func (h *QuestionHandler) ListStudentQuestions(c *gin.Context) {
	courseID, ok := parseUUIDParam(c, "courseId")
	if !ok {
		return
	}

	questions, err := h.questionService.ListForStudent(c.Request.Context(), courseID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, questions)
}
