package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/csexamtest/examtest-backend/internal/model"
	"github.com/csexamtest/examtest-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles password checks for both portals.
type AuthService struct {
	admins     AdminStore
	students   StudentStore
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(admins AdminStore, students StudentStore, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{admins: admins, students: students, bcryptCost: bcryptCost}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// AuthenticateAdmin returns the admin when adminID and password match.
// Unknown ids and wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) AuthenticateAdmin(ctx context.Context, adminID, password string) (*model.Admin, error) {
	admin, err := s.admins.GetByAdminID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := s.CheckPassword(admin.PasswordHash, password); err != nil {
		return nil, err
	}
	return admin, nil
}

// AuthenticateStudent returns the student when email and password match.
func (s *AuthService) AuthenticateStudent(ctx context.Context, email, password string) (*model.Student, error) {
	student, err := s.students.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := s.CheckPassword(student.PasswordHash, password); err != nil {
		return nil, err
	}
	return student, nil
}

// GetAdmin looks up the admin a session refers to.
func (s *AuthService) GetAdmin(ctx context.Context, adminID string) (*model.Admin, error) {
	admin, err := s.admins.GetByAdminID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return admin, nil
}

// CreateAdmin provisions an admin account. Used by the create-admin tool.
func (s *AuthService) CreateAdmin(ctx context.Context, adminID, firstName, lastName, password string) (*model.Admin, error) {
	hash, err := s.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := &model.Admin{
		AdminID:      adminID,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicateAdminID) {
			return nil, ErrAdminIDTaken
		}
		return nil, err
	}
	return admin, nil
}
