package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/tnqdo/tnqdo-backend/internal/app/models"
	"github.com/tnqdo/tnqdo-backend/internal/app/repositories"
)

// FAQService defines the interface for FAQ reads.
type FAQService interface {
	GetFAQs(ctx context.Context, category string) ([]models.FAQ, error)
}

type faqServiceImpl struct {
	repo   repositories.FAQRepository
	logger zerolog.Logger
}

// NewFAQService creates a new FAQService
func NewFAQService(repo repositories.FAQRepository, logger zerolog.Logger) FAQService {
	return &faqServiceImpl{
		repo:   repo,
		logger: logger.With().Str("service", "faqs").Logger(),
	}
}

func (s *faqServiceImpl) GetFAQs(ctx context.Context, category string) ([]models.FAQ, error) {
	if category == "" {
		return s.repo.GetAll(ctx)
	}
	return s.repo.ByCategory(ctx, category)
}
