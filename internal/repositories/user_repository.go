package repositories

import (
	"context"

	"takeaway/internal/models"
)

// UserRepository defines the interface for admin user data access.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
