package repository

import (
	"context"
	"fmt"

	"github.com/csexamtest/examtest-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const adminColumns = `id, admin_id, password_hash, first_name, last_name, created_at`

// AdminRepository handles admin data access.
type AdminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository creates a new AdminRepository.
func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

// GetByID retrieves an admin by row ID.
func (r *AdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	a := &model.Admin{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE id = $1`, id,
	).Scan(&a.ID, &a.AdminID, &a.PasswordHash, &a.FirstName, &a.LastName, &a.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

// GetByAdminID retrieves an admin by their unique login id.
func (r *AdminRepository) GetByAdminID(ctx context.Context, adminID string) (*model.Admin, error) {
	a := &model.Admin{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE admin_id = $1`, adminID,
	).Scan(&a.ID, &a.AdminID, &a.PasswordHash, &a.FirstName, &a.LastName, &a.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

// Create inserts a new admin.
func (r *AdminRepository) Create(ctx context.Context, a *model.Admin) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO admins (admin_id, password_hash, first_name, last_name)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		a.AdminID, a.PasswordHash, a.FirstName, a.LastName,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		if uniqueConstraint(err) != "" {
			return ErrDuplicateAdminID
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}
