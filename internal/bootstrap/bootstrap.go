package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/tnqdo/tnqdo-backend/internal/app/controllers"
	appMigrations "github.com/tnqdo/tnqdo-backend/internal/app/migrations"
	appRepos "github.com/tnqdo/tnqdo-backend/internal/app/repositories"
	appRoutes "github.com/tnqdo/tnqdo-backend/internal/app/routes"
	appServices "github.com/tnqdo/tnqdo-backend/internal/app/services"
	"github.com/tnqdo/tnqdo-backend/internal/config"
	"github.com/tnqdo/tnqdo-backend/internal/db"
	"github.com/tnqdo/tnqdo-backend/internal/events"
	"github.com/tnqdo/tnqdo-backend/internal/kvstore"
	appMiddleware "github.com/tnqdo/tnqdo-backend/internal/middleware"
	pkgAuth "github.com/tnqdo/tnqdo-backend/internal/pkg/auth"
	"github.com/tnqdo/tnqdo-backend/internal/pkg/logger"
	"github.com/tnqdo/tnqdo-backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService
	CourseService     appServices.CourseService
	BlogService       appServices.BlogService
	TeacherService    appServices.TeacherService
	FAQService        appServices.FAQService
	ContactService    appServices.ContactService
	StatsService      appServices.StatsService
	AuthController    *appControllers.AuthController
	CourseController  *appControllers.CourseController
	BlogController    *appControllers.BlogController
	TeacherController *appControllers.TeacherController
	FAQController     *appControllers.FAQController
	ContactController *appControllers.ContactController
	StatsController   *appControllers.StatsController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	Notifier          *events.Notifier
	Fanout            *events.RedisFanout
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStorage builds the repository set for the configured backend.
// The returned pool is nil for the local backend.
func SetupStorage(cfg *config.Config, lgr zerolog.Logger) (*appRepos.Repositories, *pgxpool.Pool, error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		return setupPostgres(cfg, lgr)
	case config.BackendLocal:
		repos, err := setupLocal(cfg, lgr)
		return repos, nil, err
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func setupLocal(cfg *config.Config, lgr zerolog.Logger) (*appRepos.Repositories, error) {
	if err := os.MkdirAll(cfg.Storage.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	storePath := filepath.Join(cfg.Storage.DataDir, "store.json")
	kv, err := kvstore.OpenFileStore(storePath, lgr)
	if err != nil {
		return nil, err
	}
	lgr.Info().Str("path", storePath).Msg("Using file-backed storage")
	return appRepos.NewLocalRepositories(kv, lgr), nil
}

func setupPostgres(cfg *config.Config, lgr zerolog.Logger) (*appRepos.Repositories, *pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	dbPool, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	migrator := appMigrations.NewMigrator(dbPool, lgr)
	if err := migrator.MigrateFromDirectory(context.Background(), "migrations"); err != nil {
		dbPool.Close()
		return nil, nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Using Postgres storage")
	return appRepos.NewPostgresRepositories(dbPool), dbPool, nil
}

// BuildDependencies wires repositories, services, controllers and
// middleware together and seeds default content into empty storage.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) (*Dependencies, error) {
	if err := seed.Apply(context.Background(), repos, lgr); err != nil {
		return nil, fmt.Errorf("seeding failed: %w", err)
	}

	notifier := events.NewNotifier(lgr)

	var fanout *events.RedisFanout
	if cfg.Events.RedisAddr != "" {
		f, err := events.NewRedisFanout(cfg.Events.RedisAddr, cfg.Events.RedisChannel, notifier, lgr)
		if err != nil {
			// The fanout is an optional optimization; a missing Redis
			// never blocks startup.
			lgr.Warn().Err(err).Msg("Redis fanout unavailable, events stay in-process")
		} else {
			ctx := context.Background()
			if err := f.Start(ctx); err != nil {
				lgr.Warn().Err(err).Msg("Redis fanout subscribe failed")
				_ = f.Close()
			} else {
				f.BindTopics(ctx,
					events.TopicCoursesUpdated,
					events.TopicCourseCreated,
					events.TopicCourseUpdated,
					events.TopicCourseDeleted,
					events.TopicBlogUpdated,
					events.TopicBlogCreated,
					events.TopicBlogDeleted,
				)
				fanout = f
				lgr.Info().Str("addr", cfg.Events.RedisAddr).Msg("Redis event fanout connected")
			}
		}
	}

	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.TokenExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})
	checker := pkgAuth.ContextChecker{}

	authService, err := appServices.NewAuthService(cfg.Admin.Email, cfg.Admin.Password, jwtService, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to build auth service: %w", err)
	}
	courseService := appServices.NewCourseService(repos.Courses, notifier, checker, lgr)
	blogService := appServices.NewBlogService(repos.Blog, notifier, checker, lgr)
	teacherService := appServices.NewTeacherService(repos.Teachers, lgr)
	faqService := appServices.NewFAQService(repos.FAQs, lgr)
	contactService := appServices.NewContactService(repos.Contact, checker, lgr)
	statsService := appServices.NewStatsService(repos, checker, lgr)

	deps := &Dependencies{
		AuthService:       authService,
		CourseService:     courseService,
		BlogService:       blogService,
		TeacherService:    teacherService,
		FAQService:        faqService,
		ContactService:    contactService,
		StatsService:      statsService,
		AuthController:    appControllers.NewAuthController(authService),
		CourseController:  appControllers.NewCourseController(courseService),
		BlogController:    appControllers.NewBlogController(blogService),
		TeacherController: appControllers.NewTeacherController(teacherService),
		FAQController:     appControllers.NewFAQController(faqService),
		ContactController: appControllers.NewContactController(contactService),
		StatsController:   appControllers.NewStatsController(statsService),
		AuthMiddleware:    appMiddleware.NewAuthMiddleware(jwtService),
		Repos:             repos,
		JWTService:        jwtService,
		Notifier:          notifier,
		Fanout:            fanout,
		Logger:            lgr,
	}
	return deps, nil
}

// SetupRouter builds the gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.CourseController,
		deps.BlogController,
		deps.TeacherController,
		deps.FAQController,
		deps.ContactController,
		deps.StatsController,
		deps.AuthMiddleware,
	)
	return router
}
