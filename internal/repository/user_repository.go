package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/classroom-availability-api/internal/models"
)

// UserRepository provides read access to login accounts.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByUsernameAndRole returns every account with the given username and
// role. Password verification happens in the caller so hashed and legacy
// values can both be checked.
func (r *UserRepository) FindByUsernameAndRole(ctx context.Context, username, role string) ([]models.User, error) {
	query := r.db.Rebind(`SELECT username, password, role FROM Users WHERE username = ? AND role = ?`)
	users := make([]models.User, 0, 1)
	if err := r.db.SelectContext(ctx, &users, query, username, role); err != nil {
		return nil, fmt.Errorf("find user by username and role: %w", err)
	}
	return users, nil
}
