package handler

import (
	"errors"
	"net/http"

	"github.com/csexamtest/examtest-backend/internal/middleware"
	"github.com/csexamtest/examtest-backend/internal/response"
	"github.com/csexamtest/examtest-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// serviceErrors maps domain errors onto their HTTP status and error code.
var serviceErrors = []struct {
	err    error
	status int
	code   response.ErrCode
}{
	{service.ErrInvalidCredentials, http.StatusUnauthorized, response.ErrInvalidCredentials},
	{service.ErrEmailTaken, http.StatusBadRequest, response.ErrEmailTaken},
	{service.ErrStudentIDTaken, http.StatusBadRequest, response.ErrStudentIDTaken},
	{service.ErrCourseCodeTaken, http.StatusBadRequest, response.ErrCourseCodeTaken},
	{service.ErrEmptyPatch, http.StatusBadRequest, response.ErrEmptyPatch},
	{service.ErrInvalidCourse, http.StatusBadRequest, response.ErrInvalidCourse},
	{service.ErrInvalidQuestion, http.StatusBadRequest, response.ErrInvalidQuestion},
	{service.ErrAdminNotFound, http.StatusNotFound, response.ErrAdminNotFound},
	{service.ErrStudentNotFound, http.StatusNotFound, response.ErrStudentNotFound},
	{service.ErrQuestionNotFound, http.StatusNotFound, response.ErrQuestionNotFound},
	{service.ErrTestNotFound, http.StatusNotFound, response.ErrTestNotFound},
	{service.ErrTestAlreadyCompleted, http.StatusConflict, response.ErrTestAlreadyCompleted},
	{service.ErrFeedUnavailable, http.StatusServiceUnavailable, response.ErrFeedUnavailable},
}

// fail writes the response for a service error. Unknown errors are logged
// and reported as a bare 500.
func fail(c *gin.Context, log zerolog.Logger, err error) {
	for _, m := range serviceErrors {
		if errors.Is(err, m.err) {
			response.Fail(c, m.status, m.code)
			return
		}
	}

	log.Error().Err(err).
		Str("request_id", response.RequestID(c)).
		Str("path", c.FullPath()).
		Msg("Request failed")
	response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
}

// parseUUIDParam parses a path parameter, answering 400 INVALID_ID when it
// is not a UUID.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return uuid.Nil, false
	}
	return id, true
}

// currentStudentID returns the row id of the session's student. Routes using
// it sit behind RequireStudent.
func currentStudentID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(middleware.GetIdentity(c).ID)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrStudentAuthRequired)
		return uuid.Nil, false
	}
	return id, true
}
