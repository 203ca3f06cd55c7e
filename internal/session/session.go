// Package session keeps the browser session payload server-side, keyed by an
// opaque id carried in a signed cookie.
package session

import (
	"context"
	"errors"
	"time"
)

// CookieName is the name of the session cookie the front end expects.
const CookieName = "cs-examtest-session"

// ErrNotFound is returned by stores for missing or expired sessions.
var ErrNotFound = errors.New("session not found")

// UserType tags which portal a session belongs to.
type UserType string

const (
	UserTypeAdmin   UserType = "admin"
	UserTypeStudent UserType = "student"
)

// Data is the payload persisted for a session.
type Data struct {
	AdminID   string   `json:"adminId,omitempty"`
	StudentID string   `json:"studentId,omitempty"`
	UserType  UserType `json:"userType,omitempty"`
}

// AdminData builds the payload for a logged-in admin.
func AdminData(adminID string) Data {
	return Data{AdminID: adminID, UserType: UserTypeAdmin}
}

// StudentData builds the payload for a logged-in student.
func StudentData(studentID string) Data {
	return Data{StudentID: studentID, UserType: UserTypeStudent}
}

// Kind discriminates Identity.
type Kind int

const (
	Anonymous Kind = iota
	AdminSession
	StudentSession
)

func (k Kind) String() string {
	switch k {
	case AdminSession:
		return "admin"
	case StudentSession:
		return "student"
	default:
		return "anonymous"
	}
}

// Identity is who the current request acts as.
type Identity struct {
	Kind Kind
	// ID is the admin login id or the student row id, depending on Kind.
	ID string
}

// AnonymousIdentity is the identity of a request without a usable session.
var AnonymousIdentity = Identity{Kind: Anonymous}

// Identity derives the request identity. An id is honoured only when
// UserType matches it.
func (d Data) Identity() Identity {
	switch {
	case d.UserType == UserTypeAdmin && d.AdminID != "":
		return Identity{Kind: AdminSession, ID: d.AdminID}
	case d.UserType == UserTypeStudent && d.StudentID != "":
		return Identity{Kind: StudentSession, ID: d.StudentID}
	default:
		return AnonymousIdentity
	}
}

// Store persists session payloads.
type Store interface {
	Get(ctx context.Context, sid string) (*Data, error)
	Set(ctx context.Context, sid string, data Data, ttl time.Duration) error
	Delete(ctx context.Context, sid string) error
}

// Pruner is implemented by stores whose expired records need explicit cleanup.
type Pruner interface {
	PruneExpired(ctx context.Context) (int64, error)
}
