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

// DefaultFeaturedLimit is used when a featured listing request carries
// no explicit limit.
const DefaultFeaturedLimit = 3

// CourseService defines the interface for course operations
type CourseService interface {
	GetAllCourses(ctx context.Context) ([]models.CourseDetail, error)
	GetCourseByID(ctx context.Context, id string) (*models.CourseDetail, error)
	CreateCourse(ctx context.Context, patch models.CoursePatch) (*models.CourseDetail, error)
	UpdateCourse(ctx context.Context, id string, patch models.CoursePatch) (*models.CourseDetail, error)
	DeleteCourse(ctx context.Context, id string) error
	SearchCourses(ctx context.Context, query string, level models.CourseLevel) ([]models.CourseDetail, error)
	GetFeaturedCourses(ctx context.Context, limit int) ([]models.Course, error)
	ExportCourses(ctx context.Context) (string, error)
	ImportCourses(ctx context.Context, snapshot string) error
}

// courseServiceImpl implements CourseService
type courseServiceImpl struct {
	repo     repositories.CourseRepository
	notifier *events.Notifier
	checker  auth.Checker
	logger   zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(
	repo repositories.CourseRepository,
	notifier *events.Notifier,
	checker auth.Checker,
	logger zerolog.Logger,
) CourseService {
	return &courseServiceImpl{
		repo:     repo,
		notifier: notifier,
		checker:  checker,
		logger:   logger.With().Str("service", "courses").Logger(),
	}
}

func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]models.CourseDetail, error) {
	return s.repo.GetAll(ctx)
}

func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id string) (*models.CourseDetail, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *courseServiceImpl) CreateCourse(ctx context.Context, patch models.CoursePatch) (*models.CourseDetail, error) {
	if !s.checker.IsAuthenticated(ctx) {
		return nil, apperrors.ErrNotAuthenticated
	}
	course, err := s.repo.Create(ctx, patch)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("id", course.ID).Msg("Course created")
	s.notifier.Publish(events.TopicCourseCreated, course)
	s.notifier.Publish(events.TopicCoursesUpdated, nil)
	return course, nil
}

func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id string, patch models.CoursePatch) (*models.CourseDetail, error) {
	if !s.checker.IsAuthenticated(ctx) {
		return nil, apperrors.ErrNotAuthenticated
	}
	course, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("id", id).Msg("Course updated")
	s.notifier.Publish(events.TopicCourseUpdated, course)
	s.notifier.Publish(events.TopicCoursesUpdated, nil)
	return course, nil
}

func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id string) error {
	if !s.checker.IsAuthenticated(ctx) {
		return apperrors.ErrNotAuthenticated
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("id", id).Msg("Course deleted")
	s.notifier.Publish(events.TopicCourseDeleted, id)
	s.notifier.Publish(events.TopicCoursesUpdated, nil)
	return nil
}

func (s *courseServiceImpl) SearchCourses(ctx context.Context, query string, level models.CourseLevel) ([]models.CourseDetail, error) {
	return s.repo.Search(ctx, query, level)
}

func (s *courseServiceImpl) GetFeaturedCourses(ctx context.Context, limit int) ([]models.Course, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	return s.repo.Featured(ctx, limit)
}

func (s *courseServiceImpl) ExportCourses(ctx context.Context) (string, error) {
	if !s.checker.IsAuthenticated(ctx) {
		return "", apperrors.ErrNotAuthenticated
	}
	return s.repo.ExportSnapshot(ctx)
}

func (s *courseServiceImpl) ImportCourses(ctx context.Context, snapshot string) error {
	if !s.checker.IsAuthenticated(ctx) {
		return apperrors.ErrNotAuthenticated
	}
	if err := s.repo.ImportSnapshot(ctx, snapshot); err != nil {
		return err
	}
	s.logger.Info().Msg("Course snapshot imported")
	s.notifier.Publish(events.TopicCoursesUpdated, nil)
	return nil
}
