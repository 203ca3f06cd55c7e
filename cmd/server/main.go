package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/csexamtest/examtest-backend/internal/config"
	"github.com/csexamtest/examtest-backend/internal/database"
	"github.com/csexamtest/examtest-backend/internal/handler"
	"github.com/csexamtest/examtest-backend/internal/logger"
	"github.com/csexamtest/examtest-backend/internal/repository"
	"github.com/csexamtest/examtest-backend/internal/router"
	"github.com/csexamtest/examtest-backend/internal/service"
	"github.com/csexamtest/examtest-backend/internal/session"
	"github.com/csexamtest/examtest-backend/internal/validator"
	"github.com/csexamtest/examtest-backend/internal/worker"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	if cfg.SessionSecret == "" {
		log.Warn().Msg("SESSION_SECRET not set, using development fallback secret")
	}
	log.Info().
		Str("port", cfg.ServerPort).
		Str("env", cfg.AppEnv).
		Str("mode", cfg.GinMode).
		Str("session_store", cfg.SessionStore).
		Bool("strict_attempt_ownership", cfg.StrictAttemptOwnership).
		Strs("trusted_proxies", cfg.TrustedProxies).
		Msg("Starting ExamTest Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis (optional) ───────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	if rdb != nil {
		defer rdb.Close()
	}

	// ─── Session Store ─────────────────────────────────────────────────
	store, err := newSessionStore(ctx, cfg, pool, rdb)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize session store")
	}
	sessions := session.NewManager(store, session.Options{
		Secret:     cfg.EffectiveSessionSecret(),
		TTL:        cfg.SessionTTL,
		Production: cfg.IsProduction(),
		Log:        log.With().Str("component", "session").Logger(),
	})

	// ─── Initialize Repositories ───────────────────────────────────────
	adminRepo := repository.NewAdminRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	questionRepo := repository.NewQuestionRepository(pool)
	attemptRepo := repository.NewTestAttemptRepository(pool)
	answerRepo := repository.NewTestAnswerRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(adminRepo, studentRepo, cfg.BcryptCost)
	studentService := service.NewStudentService(studentRepo, authService)
	courseService := service.NewCourseService(courseRepo)
	questionService := service.NewQuestionService(questionRepo)
	activityService := service.NewActivityService(rdb, log)
	testService := service.NewTestService(attemptRepo, answerRepo, questionRepo, activityService, cfg.StrictAttemptOwnership, log)
	dashboardService := service.NewDashboardService(dashboardRepo)
	exportService := service.NewExportService(dashboardRepo)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:      handler.NewAuthHandler(authService, studentService, sessions, log),
		Course:    handler.NewCourseHandler(courseService, log),
		Question:  handler.NewQuestionHandler(questionService, log),
		Test:      handler.NewTestHandler(testService, log),
		Dashboard: handler.NewDashboardHandler(dashboardService, exportService, log),
		Activity:  handler.NewActivityHandler(activityService, log, cfg.AllowedOrigins),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())
	workersDone := make(chan struct{})
	if pruner, ok := store.(session.Pruner); ok {
		pruneWorker := worker.NewSessionPruneWorker(pruner, cfg.SessionPruneInterval, log)
		go func() {
			pruneWorker.Start(workerCtx)
			close(workersDone)
		}()
	} else {
		close(workersDone)
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	r := router.SetupRouter(handlers, sessions, cfg, log, reg, reg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop background workers.
	workerCancel()
	<-workersDone

	log.Info().Msg("Shutdown complete")
}

// newSessionStore builds the backend selected by SESSION_STORE.
func newSessionStore(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, rdb *redis.Client) (session.Store, error) {
	switch cfg.SessionStore {
	case config.SessionStoreRedis:
		return session.NewRedisStore(rdb), nil
	case config.SessionStoreMemory:
		return session.NewMemoryStore(), nil
	default:
		store := session.NewPostgresStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return store, nil
	}
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
