package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options configures cookie issuance.
type Options struct {
	Secret string
	TTL    time.Duration
	// Production turns on Secure and SameSite=None for cross-site front ends.
	Production bool
	// Log receives store failures that do not fail the request. The zero
	// value discards them.
	Log zerolog.Logger
}

// Manager issues, resolves and destroys sessions for gin requests.
type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
	secure bool
	same   http.SameSite
	log    zerolog.Logger
}

// NewManager creates a Manager backed by store.
func NewManager(store Store, opts Options) *Manager {
	same := http.SameSiteLaxMode
	if opts.Production {
		same = http.SameSiteNoneMode
	}
	return &Manager{
		store:  store,
		secret: []byte(opts.Secret),
		ttl:    opts.TTL,
		secure: opts.Production,
		same:   same,
		log:    opts.Log,
	}
}

// TTL returns the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Start persists data under a fresh session id and sets the cookie. Any
// session the request already carried is discarded.
func (m *Manager) Start(c *gin.Context, data Data) error {
	if sid, ok := m.sessionID(c); ok {
		if err := m.store.Delete(c.Request.Context(), sid); err != nil {
			m.log.Warn().Err(err).Msg("Failed to delete previous session")
		}
	}

	sid := uuid.NewString()
	if err := m.store.Set(c.Request.Context(), sid, data, m.ttl); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	token, err := m.sign(sid)
	if err != nil {
		return err
	}
	m.setCookie(c, token, int(m.ttl.Seconds()))
	return nil
}

// Load resolves the request cookie to its payload. A missing, forged or
// expired cookie yields an empty Data and no error.
func (m *Manager) Load(c *gin.Context) (Data, error) {
	sid, ok := m.sessionID(c)
	if !ok {
		return Data{}, nil
	}

	data, err := m.store.Get(c.Request.Context(), sid)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Data{}, nil
		}
		return Data{}, fmt.Errorf("load session: %w", err)
	}
	return *data, nil
}

// Destroy deletes the request's session and clears the cookie.
func (m *Manager) Destroy(c *gin.Context) error {
	if sid, ok := m.sessionID(c); ok {
		if err := m.store.Delete(c.Request.Context(), sid); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
	}
	m.setCookie(c, "", -1)
	return nil
}

func (m *Manager) sessionID(c *gin.Context) (string, bool) {
	raw, err := c.Cookie(CookieName)
	if err != nil || raw == "" {
		return "", false
	}
	sid, err := m.verify(raw)
	if err != nil {
		return "", false
	}
	return sid, true
}

func (m *Manager) sign(sid string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        sid,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session cookie: %w", err)
	}
	return token, nil
}

func (m *Manager) verify(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}
	if _, err := uuid.Parse(claims.ID); err != nil {
		return "", fmt.Errorf("malformed session id: %w", err)
	}
	return claims.ID, nil
}

func (m *Manager) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(m.same)
	c.SetCookie(CookieName, value, maxAge, "/", "", m.secure, true)
}
