package ports

import (
	"context"

	"github.com/99minutos/blog-system/internal/core/domain"
)

// UserRepository defines the interface for credential persistence.
type UserRepository interface {
	// FindByUsername returns domain.ErrUserNotFound when no user matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create returns domain.ErrDuplicateUsername when the username is taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
