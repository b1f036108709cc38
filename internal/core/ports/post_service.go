package ports

import (
	"context"

	"github.com/99minutos/blog-system/internal/core/domain"
)

// PostService defines use-case operations for posts. Callers are expected to
// have applied the matching access guard before invoking mutations.
type PostService interface {
	ListPosts(ctx context.Context, order domain.PostOrder) ([]*domain.Post, error)
	GetPost(ctx context.Context, id string) (*domain.Post, error)
	CreatePost(ctx context.Context, title, content string) (*domain.Post, error)
	UpdatePost(ctx context.Context, id, title, content string) (*domain.Post, error)
	DeletePost(ctx context.Context, id string) error
}
