package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/edudigital/internal/api/http"
	"github.com/spec-kit/edudigital/internal/api/http/handlers"
	"github.com/spec-kit/edudigital/internal/auth"
	"github.com/spec-kit/edudigital/internal/config"
	"github.com/spec-kit/edudigital/internal/events"
	"github.com/spec-kit/edudigital/internal/observability"
	"github.com/spec-kit/edudigital/internal/persistence"
	"github.com/spec-kit/edudigital/internal/repository"
	"github.com/spec-kit/edudigital/internal/service"
	"github.com/spec-kit/edudigital/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewNoopMetrics()
	if cfg.Metrics.Enabled {
		metrics, err = observability.NewMetrics()
		if err != nil {
			logger.Fatal("failed to init metrics", zap.Error(err))
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	enrollmentRepo := repository.NewEnrollmentRepository(pool)
	wishlistRepo := repository.NewWishlistRepository(pool)
	quizRepo := repository.NewQuizRepository(pool)
	discussionRepo := repository.NewDiscussionRepository(pool)
	statsRepo := repository.NewStatsRepository(pool)
	resetRepo := repository.NewPasswordResetRepository(redis.Client)
	statsCache := repository.NewRedisCache(redis.Client, "edu:stats:")

	codec, err := auth.NewCodec(cfg.Auth.TokenMode, cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL())
	if err != nil {
		logger.Fatal("failed to build token codec", zap.Error(err))
	}
	if cfg.Auth.TokenMode == config.TokenModeLegacy {
		logger.Warn("legacy token mode issues unsigned credentials; use only for migrating old clients")
	}

	guardOpts := []auth.MiddlewareOption{auth.WithOutcomeRecorder(metrics)}
	if cfg.Auth.CookieFallback {
		guardOpts = append(guardOpts, auth.WithCookieFallback(cfg.Auth.CookieName))
	}
	authMiddleware := auth.NewAuthMiddleware(auth.NewGuard(codec), guardOpts...)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService, logger)

	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		UserRepo:          userRepo,
		PasswordResetRepo: resetRepo,
		Codec:             codec,
		Dispatcher:        dispatcher,
		Logger:            logger,
	})
	courseService := service.NewCourseService(courseRepo, dispatcher, logger)
	discussionService := service.NewDiscussionService(discussionRepo, dispatcher, logger)
	profileService := service.NewProfileService(userRepo)
	enrollmentService := service.NewEnrollmentService(service.EnrollmentDependencies{
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
		WishlistRepo:   wishlistRepo,
		Dispatcher:     dispatcher,
		Logger:         logger,
	})
	quizService := service.NewQuizService(service.QuizDependencies{
		QuizRepo:       quizRepo,
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
		Dispatcher:     dispatcher,
		Logger:         logger,
	})
	statsService := service.NewStatsService(statsRepo, statsCache, cfg.Cache.StatsTTL(), logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httptransport.ErrorHandler,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Pinger{
			"postgres": pg,
			"redis":    redis,
		}),
		Auth:           handlers.NewAuthHandler(authService),
		Courses:        handlers.NewCoursesHandler(courseService, discussionService),
		Profile:        handlers.NewProfileHandler(profileService),
		Student:        handlers.NewStudentHandler(enrollmentService, quizService),
		Teacher:        handlers.NewTeacherHandler(courseService, quizService),
		Admin:          handlers.NewAdminHandler(statsService, profileService),
		AuthMiddleware: authMiddleware,
		MetricsPath:    metricsPath,
		LoginRateLimit: cfg.App.LoginRateLimit,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Warn("fiber shutdown", zap.Error(err))
	}
	if err := metrics.Shutdown(shutdownCtx); err != nil {
		logger.Warn("metrics shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
