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

// ContactService defines the interface for contact form operations.
// Submitting is public; reading and triage require an admin session.
type ContactService interface {
	SubmitMessage(ctx context.Context, req dto.ContactRequest) (*models.ContactMessage, error)
	GetAllMessages(ctx context.Context) ([]models.ContactMessage, error)
	UpdateMessageStatus(ctx context.Context, id string, status models.ContactStatus) (*models.ContactMessage, error)
}

type contactServiceImpl struct {
	repo    repositories.ContactRepository
	checker auth.Checker
	logger  zerolog.Logger
}

// NewContactService creates a new ContactService
func NewContactService(repo repositories.ContactRepository, checker auth.Checker, logger zerolog.Logger) ContactService {
	return &contactServiceImpl{
		repo:    repo,
		checker: checker,
		logger:  logger.With().Str("service", "contact").Logger(),
	}
}

func (s *contactServiceImpl) SubmitMessage(ctx context.Context, req dto.ContactRequest) (*models.ContactMessage, error) {
	msg, err := s.repo.Create(ctx, models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("id", msg.ID).Msg("Contact message received")
	return msg, nil
}

func (s *contactServiceImpl) GetAllMessages(ctx context.Context) ([]models.ContactMessage, error) {
	if !s.checker.IsAuthenticated(ctx) {
		return nil, apperrors.ErrNotAuthenticated
	}
	return s.repo.GetAll(ctx)
}

func (s *contactServiceImpl) UpdateMessageStatus(ctx context.Context, id string, status models.ContactStatus) (*models.ContactMessage, error) {
	if !s.checker.IsAuthenticated(ctx) {
		return nil, apperrors.ErrNotAuthenticated
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
