package handler

import (
	"net/http"

	"github.com/csexamtest/examtest-backend/internal/model"
	"github.com/csexamtest/examtest-backend/internal/response"
	"github.com/csexamtest/examtest-backend/internal/service"
	"github.com/csexamtest/examtest-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CourseHandler handles course endpoints.
type CourseHandler struct {
	courseService *service.CourseService
	log           zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courseService *service.CourseService, log zerolog.Logger) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
		log:           log.With().Str("component", "course_handler").Logger(),
	}
}

// ListCourses godoc
// GET /api/courses
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.courseService.List(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, courses)
}

// CreateCourse godoc
// POST /api/admin/courses
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req model.CreateCourseRequest
	if !validator.Bind(c, &req) {
		return
	}

	course, err := h.courseService.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, course)
}
