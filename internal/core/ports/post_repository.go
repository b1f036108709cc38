package ports

import (
	"context"

	"github.com/99minutos/blog-system/internal/core/domain"
)

// PostRepository defines persistence operations for posts. Every method is a
// single-document operation; there is no locking and the last writer wins.
type PostRepository interface {
	Create(ctx context.Context, p *domain.Post) (*domain.Post, error)
	// FindByID returns domain.ErrPostNotFound for unknown or malformed ids.
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context, order domain.PostOrder) ([]*domain.Post, error)
	// Update replaces title and content, leaving CreatedAt untouched.
	Update(ctx context.Context, id, title, content string) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
}
