package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/tnqdo/tnqdo-backend/internal/app/models"
	"github.com/tnqdo/tnqdo-backend/internal/app/repositories"
)

// TeacherService defines the interface for teacher profile reads.
type TeacherService interface {
	GetAllTeachers(ctx context.Context) ([]models.Teacher, error)
	GetTeacherByID(ctx context.Context, id string) (*models.TeacherDetail, error)
	GetFeaturedTeachers(ctx context.Context, limit int) ([]models.Teacher, error)
}

type teacherServiceImpl struct {
	repo   repositories.TeacherRepository
	logger zerolog.Logger
}

// NewTeacherService creates a new TeacherService
func NewTeacherService(repo repositories.TeacherRepository, logger zerolog.Logger) TeacherService {
	return &teacherServiceImpl{
		repo:   repo,
		logger: logger.With().Str("service", "teachers").Logger(),
	}
}

func (s *teacherServiceImpl) GetAllTeachers(ctx context.Context) ([]models.Teacher, error) {
	return s.repo.GetAll(ctx)
}

func (s *teacherServiceImpl) GetTeacherByID(ctx context.Context, id string) (*models.TeacherDetail, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *teacherServiceImpl) GetFeaturedTeachers(ctx context.Context, limit int) ([]models.Teacher, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	return s.repo.Featured(ctx, limit)
}
