package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/tnqdo/tnqdo-backend/internal/app/models"
	"github.com/tnqdo/tnqdo-backend/internal/app/repositories"
	"github.com/tnqdo/tnqdo-backend/internal/events"
	"github.com/tnqdo/tnqdo-backend/internal/pkg/apperrors"
	"github.com/tnqdo/tnqdo-backend/internal/pkg/auth"
)

// BlogService defines the interface for blog operations
type BlogService interface {
	GetAllPosts(ctx context.Context) ([]models.BlogPost, error)
	GetPublishedPosts(ctx context.Context) ([]models.BlogPost, error)
	GetPostByID(ctx context.Context, id string) (*models.BlogPost, error)
	// ReadPostBySlug resolves a post for the public detail page and
	// counts the view.
	ReadPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	CreatePost(ctx context.Context, patch models.BlogPatch) (*models.BlogPost, error)
	UpdatePost(ctx context.Context, id string, patch models.BlogPatch) (*models.BlogPost, error)
	DeletePost(ctx context.Context, id string) error
	SearchPosts(ctx context.Context, query, category string) ([]models.BlogPost, error)
	GetPostsByCategory(ctx context.Context, category string) ([]models.BlogPost, error)
	GetFeaturedPosts(ctx context.Context, limit int) ([]models.BlogPost, error)
	GetRecentPosts(ctx context.Context, limit int) ([]models.BlogPost, error)
	GetCategories(ctx context.Context) ([]string, error)
}

// blogServiceImpl implements BlogService
type blogServiceImpl struct {
	repo     repositories.BlogRepository
	notifier *events.Notifier
	checker  auth.Checker
	logger   zerolog.Logger
}

// NewBlogService creates a new BlogService
func NewBlogService(
	repo repositories.BlogRepository,
	notifier *events.Notifier,
	checker auth.Checker,
	logger zerolog.Logger,
) BlogService {
	return &blogServiceImpl{
		repo:     repo,
		notifier: notifier,
		checker:  checker,
		logger:   logger.With().Str("service", "blog").Logger(),
	}
}

func (s *blogServiceImpl) GetAllPosts(ctx context.Context) ([]models.BlogPost, error) {
	if !s.checker.IsAuthenticated(ctx) {
		return nil, apperrors.ErrNotAuthenticated
	}
	return s.repo.GetAll(ctx)
}

func (s *blogServiceImpl) GetPublishedPosts(ctx context.Context) ([]models.BlogPost, error) {
	return s.repo.GetPublished(ctx)
}

func (s *blogServiceImpl) GetPostByID(ctx context.Context, id string) (*models.BlogPost, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *blogServiceImpl) ReadPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := s.repo.IncrementViews(ctx, post.ID); err != nil {
		// A failed view count never blocks the page.
		s.logger.Warn().Err(err).Str("id", post.ID).Msg("Failed to count view")
	} else {
		post.Views++
	}
	return post, nil
}

func (s *blogServiceImpl) CreatePost(ctx context.Context, patch models.BlogPatch) (*models.BlogPost, error) {
	if !s.checker.IsAuthenticated(ctx) {
		return nil, apperrors.ErrNotAuthenticated
	}
	post, err := s.repo.Create(ctx, patch)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("id", post.ID).Str("slug", post.Slug).Msg("Blog post created")
	s.notifier.Publish(events.TopicBlogCreated, post)
	s.notifier.Publish(events.TopicBlogUpdated, nil)
	return post, nil
}

func (s *blogServiceImpl) UpdatePost(ctx context.Context, id string, patch models.BlogPatch) (*models.BlogPost, error) {
	if !s.checker.IsAuthenticated(ctx) {
		return nil, apperrors.ErrNotAuthenticated
	}
	post, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("id", id).Msg("Blog post updated")
	s.notifier.Publish(events.TopicBlogUpdated, post)
	return post, nil
}

func (s *blogServiceImpl) DeletePost(ctx context.Context, id string) error {
	if !s.checker.IsAuthenticated(ctx) {
		return apperrors.ErrNotAuthenticated
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("id", id).Msg("Blog post deleted")
	s.notifier.Publish(events.TopicBlogDeleted, id)
	s.notifier.Publish(events.TopicBlogUpdated, nil)
	return nil
}

func (s *blogServiceImpl) SearchPosts(ctx context.Context, query, category string) ([]models.BlogPost, error) {
	return s.repo.Search(ctx, query, category)
}

func (s *blogServiceImpl) GetPostsByCategory(ctx context.Context, category string) ([]models.BlogPost, error) {
	return s.repo.ByCategory(ctx, category)
}

func (s *blogServiceImpl) GetFeaturedPosts(ctx context.Context, limit int) ([]models.BlogPost, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	return s.repo.Featured(ctx, limit)
}

func (s *blogServiceImpl) GetRecentPosts(ctx context.Context, limit int) ([]models.BlogPost, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	return s.repo.Recent(ctx, limit)
}

func (s *blogServiceImpl) GetCategories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}
