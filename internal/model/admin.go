package model

import (
	"time"

	"github.com/google/uuid"
)

// Admin represents a privileged user who manages courses and questions.
type Admin struct {
	ID           uuid.UUID `json:"id"`
	AdminID      string    `json:"adminId"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PublicAdmin is the sanitized admin record returned to clients.
type PublicAdmin struct {
	ID        uuid.UUID `json:"id"`
	AdminID   string    `json:"adminId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
}

// Public strips credentials from the admin record.
func (a *Admin) Public() PublicAdmin {
	return PublicAdmin{
		ID:        a.ID,
		AdminID:   a.AdminID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
	}
}

// AdminLoginRequest is the payload for admin authentication.
type AdminLoginRequest struct {
	AdminID  string `json:"adminId" binding:"required,max=64"`
	Password string `json:"password" binding:"required,max=128"`
}
