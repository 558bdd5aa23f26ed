package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/tnqdo/tnqdo-backend/internal/app/models"
	"github.com/tnqdo/tnqdo-backend/internal/app/models/dto"
	"github.com/tnqdo/tnqdo-backend/internal/app/repositories"
	"github.com/tnqdo/tnqdo-backend/internal/pkg/apperrors"
	"github.com/tnqdo/tnqdo-backend/internal/pkg/auth"
)

// StatsService summarizes the catalog for the admin dashboard.
type StatsService interface {
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
}

type statsServiceImpl struct {
	repos   *repositories.Repositories
	checker auth.Checker
	logger  zerolog.Logger
}

// NewStatsService creates a new StatsService
func NewStatsService(repos *repositories.Repositories, checker auth.Checker, logger zerolog.Logger) StatsService {
	return &statsServiceImpl{
		repos:   repos,
		checker: checker,
		logger:  logger.With().Str("service", "stats").Logger(),
	}
}

func (s *statsServiceImpl) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	if !s.checker.IsAuthenticated(ctx) {
		return nil, apperrors.ErrNotAuthenticated
	}

	courses, err := s.repos.Courses.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.repos.Blog.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	teachers, err := s.repos.Teachers.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	messages, err := s.repos.Contact.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.StatsResponse{
		Courses:  len(courses),
		Posts:    len(posts),
		Teachers: len(teachers),
	}
	for _, course := range courses {
		if course.IsActive {
			stats.ActiveCourses++
		}
	}
	for _, post := range posts {
		if post.IsPublished {
			stats.PublishedPosts++
		}
		stats.TotalViews += post.Views
	}
	for _, msg := range messages {
		if msg.Status == models.ContactPending {
			stats.PendingMessages++
		}
	}
	return stats, nil
}
