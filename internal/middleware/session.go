package middleware

import (
	"net/http"

	"github.com/csexamtest/examtest-backend/internal/response"
	"github.com/csexamtest/examtest-backend/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	// ContextKeyIdentity is the Gin context key for the resolved session identity.
	ContextKeyIdentity = "identity"
)

// LoadSession resolves the session cookie once per request. Store failures
// are logged and the request continues as anonymous.
func LoadSession(sessions *session.Manager, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := sessions.Load(c)
		if err != nil {
			log.Error().Err(err).
				Str("request_id", response.RequestID(c)).
				Msg("Failed to load session")
		}
		c.Set(ContextKeyIdentity, data.Identity())
		c.Next()
	}
}

// RequireAdmin admits only requests carrying an admin session.
func RequireAdmin() gin.HandlerFunc {
	return requireKind(session.AdminSession, response.ErrAdminAuthRequired)
}

// RequireStudent admits only requests carrying a student session.
func RequireStudent() gin.HandlerFunc {
	return requireKind(session.StudentSession, response.ErrStudentAuthRequired)
}

func requireKind(kind session.Kind, code response.ErrCode) gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetIdentity(c).Kind != kind {
			response.AbortFail(c, http.StatusUnauthorized, code)
			return
		}
		c.Next()
	}
}

// GetIdentity retrieves the session identity from the Gin context.
func GetIdentity(c *gin.Context) session.Identity {
	val, exists := c.Get(ContextKeyIdentity)
	if !exists {
		return session.AnonymousIdentity
	}
	identity, ok := val.(session.Identity)
	if !ok {
		return session.AnonymousIdentity
	}
	return identity
}
