package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/tnqdo/tnqdo-backend/internal/bootstrap"
	"github.com/tnqdo/tnqdo-backend/internal/config"
	"github.com/tnqdo/tnqdo-backend/internal/events"
)

// Server represents the HTTP server and its dependencies
type Server struct {
	config *config.Config
	router *gin.Engine
	dbPool *pgxpool.Pool
	fanout *events.RedisFanout
	logger zerolog.Logger
	http   *http.Server
}

// NewServer loads configuration, connects storage and wires the
// application together.
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, err
	}

	repos, dbPool, err := bootstrap.SetupStorage(cfg, lgr)
	if err != nil {
		return nil, err
	}

	deps, err := bootstrap.BuildDependencies(cfg, repos, lgr)
	if err != nil {
		if dbPool != nil {
			dbPool.Close()
		}
		return nil, err
	}

	router := bootstrap.SetupRouter(cfg, deps, lgr)

	return &Server{
		config: cfg,
		router: router,
		dbPool: dbPool,
		fanout: deps.Fanout,
		logger: lgr,
		http: &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
			Handler: router,
		},
	}, nil
}

// Run starts the HTTP server and blocks until shutdown
func (s *Server) Run() error {
	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info().Str("port", s.config.Server.Port).Msg("Starting server")
		serverErrors <- s.http.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-quit:
		s.logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
		if err := s.Shutdown(); err != nil {
			return err
		}
	}

	return nil
}

// Shutdown gracefully stops the HTTP server and closes storage
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		s.logger.Error().Err(err).Msg("Graceful shutdown failed, forcing close")
		if closeErr := s.http.Close(); closeErr != nil {
			return fmt.Errorf("could not stop server: %w", closeErr)
		}
	}

	if s.fanout != nil {
		if err := s.fanout.Close(); err != nil {
			s.logger.Warn().Err(err).Msg("Failed to close event fanout")
		}
	}

	if s.dbPool != nil {
		s.dbPool.Close()
		s.logger.Info().Msg("Database connection closed")
	}

	s.logger.Info().Msg("Server stopped")
	return nil
}
