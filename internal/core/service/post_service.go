package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/blog-system/internal/core/domain"
	"github.com/99minutos/blog-system/internal/core/ports"
)

type PostService struct {
	repo   ports.PostRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewPostService(repo ports.PostRepository, logger zerolog.Logger) *PostService {
	return &PostService{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

// ListPosts returns every post in the requested order.
func (s *PostService) ListPosts(ctx context.Context, order domain.PostOrder) ([]*domain.Post, error) {
	return s.repo.List(ctx, order)
}

func (s *PostService) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	return s.repo.FindByID(ctx, id)
}

// CreatePost stores a new post stamped with the current time. Empty titles
// and bodies are accepted as-is.
func (s *PostService) CreatePost(ctx context.Context, title, content string) (*domain.Post, error) {
	post := &domain.Post{
		Title:     title,
		Content:   content,
		CreatedAt: s.now(),
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create post")
		return nil, err
	}

	s.logger.Info().Str("post_id", created.ID).Msg("post created")
	return created, nil
}

func (s *PostService) UpdatePost(ctx context.Context, id, title, content string) (*domain.Post, error) {
	updated, err := s.repo.Update(ctx, id, title, content)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("post_id", id).Msg("post updated")
	return updated, nil
}

func (s *PostService) DeletePost(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("post_id", id).Msg("post deleted")
	return nil
}
