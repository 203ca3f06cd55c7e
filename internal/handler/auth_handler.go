package handler

import (
	"net/http"

	"github.com/csexamtest/examtest-backend/internal/middleware"
	"github.com/csexamtest/examtest-backend/internal/model"
	"github.com/csexamtest/examtest-backend/internal/response"
	"github.com/csexamtest/examtest-backend/internal/service"
	"github.com/csexamtest/examtest-backend/internal/session"
	"github.com/csexamtest/examtest-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthHandler handles login, logout, profile and registration endpoints.
type AuthHandler struct {
	authService    *service.AuthService
	studentService *service.StudentService
	sessions       *session.Manager
	log            zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	authService *service.AuthService,
	studentService *service.StudentService,
	sessions *session.Manager,
	log zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		studentService: studentService,
		sessions:       sessions,
		log:            log.With().Str("component", "auth_handler").Logger(),
	}
}

type adminLoginResult struct {
	Success bool              `json:"success"`
	Admin   model.PublicAdmin `json:"admin"`
}

type studentAuthResult struct {
	Success bool                `json:"success"`
	Student model.PublicStudent `json:"student"`
}

// AdminLogin godoc
// POST /api/admin/login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req model.AdminLoginRequest
	if !validator.Bind(c, &req) {
		return
	}

	admin, err := h.authService.AuthenticateAdmin(c.Request.Context(), req.AdminID, req.Password)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	if err := h.sessions.Start(c, session.AdminData(admin.AdminID)); err != nil {
		fail(c, h.log, err)
		return
	}

	h.log.Info().Str("admin_id", admin.AdminID).Msg("Admin logged in")
	response.Success(c, http.StatusOK, adminLoginResult{Success: true, Admin: admin.Public()})
}

// Logout godoc
// POST /api/admin/logout, POST /api/student/logout
// Destroys the session whichever portal it belongs to.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Destroy(c); err != nil {
		h.log.Error().Err(err).Str("request_id", response.RequestID(c)).Msg("Logout failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrLogoutFailed)
		return
	}
	response.OK(c, http.StatusOK)
}

// AdminMe godoc
// GET /api/admin/me
func (h *AuthHandler) AdminMe(c *gin.Context) {
	admin, err := h.authService.GetAdmin(c.Request.Context(), middleware.GetIdentity(c).ID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, admin.Public())
}

// StudentRegister godoc
// POST /api/student/register
// Creates the account and logs the student in.
func (h *AuthHandler) StudentRegister(c *gin.Context) {
	var req model.RegisterStudentRequest
	if !validator.Bind(c, &req) {
		return
	}

	student, err := h.studentService.Register(c.Request.Context(), &req)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	if err := h.sessions.Start(c, session.StudentData(student.ID.String())); err != nil {
		fail(c, h.log, err)
		return
	}

	h.log.Info().Str("student_id", student.StudentID).Msg("Student registered")
	response.Success(c, http.StatusOK, studentAuthResult{Success: true, Student: student.Public()})
}

// StudentLogin godoc
// POST /api/student/login
func (h *AuthHandler) StudentLogin(c *gin.Context) {
	var req model.StudentLoginRequest
	if !validator.Bind(c, &req) {
		return
	}

	student, err := h.authService.AuthenticateStudent(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	if err := h.sessions.Start(c, session.StudentData(student.ID.String())); err != nil {
		fail(c, h.log, err)
		return
	}

	response.Success(c, http.StatusOK, studentAuthResult{Success: true, Student: student.Public()})
}

// StudentMe godoc
// GET /api/student/me
func (h *AuthHandler) StudentMe(c *gin.Context) {
	studentID, ok := currentStudentID(c)
	if !ok {
		return
	}

	student, err := h.studentService.Get(c.Request.Context(), studentID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, student.Public())
}
