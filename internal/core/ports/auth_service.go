package ports

import (
	"context"

	"github.com/99minutos/blog-system/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.Identity, error)
	EnsureDemoUsers(ctx context.Context) error
}
