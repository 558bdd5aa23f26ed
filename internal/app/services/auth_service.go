package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tnqdo/tnqdo-backend/internal/app/models/dto"
	"github.com/tnqdo/tnqdo-backend/internal/pkg/apperrors"
	"github.com/tnqdo/tnqdo-backend/internal/pkg/auth"
)

// AuthService defines the interface for admin authentication
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error)
}

// authServiceImpl implements AuthService. There is a single admin
// account configured at startup; its password is bcrypt-hashed once on
// construction so the plaintext never sticks around.
type authServiceImpl struct {
	adminEmail   string
	passwordHash string
	jwtService   *auth.JWTService
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(adminEmail, adminPassword string, jwtService *auth.JWTService, logger zerolog.Logger) (AuthService, error) {
	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return nil, err
	}
	return &authServiceImpl{
		adminEmail:   strings.ToLower(adminEmail),
		passwordHash: hash,
		jwtService:   jwtService,
		logger:       logger.With().Str("service", "auth").Logger(),
	}, nil
}

func (s *authServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	if strings.ToLower(req.Email) != s.adminEmail || !auth.CheckPassword(s.passwordHash, req.Password) {
		s.logger.Warn().Str("email", req.Email).Msg("Rejected login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(s.adminEmail)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("email", s.adminEmail).Msg("Admin logged in")
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(expiresIn),
	}, nil
}
