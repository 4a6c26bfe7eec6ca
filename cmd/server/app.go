package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	// Registers the pgx driver with database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/planroom/teamplan-api/internal/api"
	"github.com/planroom/teamplan-api/internal/api/middleware"
	"github.com/planroom/teamplan-api/internal/config"
	"github.com/planroom/teamplan-api/internal/mail"
	"github.com/planroom/teamplan-api/internal/notify"
	"github.com/planroom/teamplan-api/internal/platform/cache"
	"github.com/planroom/teamplan-api/internal/platform/logger"
	"github.com/planroom/teamplan-api/internal/platform/postgres"
	"github.com/planroom/teamplan-api/internal/service"
	"github.com/planroom/teamplan-api/internal/service/auth"
)

const (
	dbMaxOpenConns    = 25
	dbMaxIdleConns    = 5
	dbConnMaxLifetime = 5 * time.Minute
	dbPingTimeout     = 5 * time.Second
)

// application holds the wired dependencies of the running server. Everything
// is assembled once in newApplication and torn down in cleanup.
type application struct {
	cfg    *config.Config
	logger *slog.Logger

	db          *sql.DB
	redisClient *redis.Client
	workerPool  *mail.WorkerPool

	authHandler         *api.AuthHandler
	projectHandler      *api.ProjectHandler
	taskHandler         *api.TaskHandler
	milestoneHandler    *api.MilestoneHandler
	notificationHandler *api.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// newApplication loads configuration and wires every layer of the server:
// database and migrations, stores, token and password services, the mail
// pipeline, the notification dispatcher, the optional Redis list cache, and
// finally the HTTP handlers.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	db, err := openDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := postgres.RunMigrations(db); err != nil {
		closeQuietly(db, log)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info("database migrations applied")

	userStore := postgres.NewPostgresUserStore(db, cfg.Auth.BcryptCost, log)
	projectStore := postgres.NewPostgresProjectStore(db, log)
	taskStore := postgres.NewPostgresTaskStore(db, log)
	milestoneStore := postgres.NewPostgresMilestoneStore(db, log)
	notificationStore := postgres.NewPostgresNotificationStore(db, log)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		closeQuietly(db, log)
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}
	passwordVerifier := auth.NewBcryptVerifier()

	mailQueue := mail.NewJobQueue(cfg.Mail.QueueSize, log)
	mailTransport := mail.NewSMTPTransport(cfg.Mail)
	workerPool := mail.NewWorkerPool(mailQueue, mailTransport, cfg.Mail.WorkerCount, log)
	workerPool.Start()
	log.Info("mail worker pool started",
		slog.Int("workers", cfg.Mail.WorkerCount),
		slog.Int("queue_size", cfg.Mail.QueueSize))

	dispatcher := notify.NewDispatcher(notificationStore, userStore, mailQueue, log)

	redisClient, listCache := setupListCache(cfg.Cache, log)

	authService := service.NewAuthService(userStore, passwordVerifier, jwtService, log)
	projectService := service.NewProjectService(projectStore, log)
	taskService := service.NewTaskService(taskStore, dispatcher, log)
	milestoneService := service.NewMilestoneService(milestoneStore, projectStore, dispatcher, log)
	notificationService := service.NewNotificationService(notificationStore, log)

	app := &application{
		cfg:                 cfg,
		logger:              log,
		db:                  db,
		redisClient:         redisClient,
		workerPool:          workerPool,
		authHandler:         api.NewAuthHandler(authService),
		projectHandler:      api.NewProjectHandler(projectService, listCache),
		taskHandler:         api.NewTaskHandler(taskService, listCache),
		milestoneHandler:    api.NewMilestoneHandler(milestoneService, listCache),
		notificationHandler: api.NewNotificationHandler(notificationService, listCache),
		authMiddleware:      middleware.NewAuthMiddleware(jwtService),
	}
	return app, nil
}

// run starts the HTTP server and blocks until shutdown completes.
func (app *application) run() error {
	router := app.setupRouter()
	return app.startHTTPServer(router)
}

// cleanup releases resources in reverse order of acquisition. Stopping the
// worker pool drains any buffered mail jobs before the process exits.
func (app *application) cleanup() {
	if app.workerPool != nil {
		app.logger.Info("stopping mail worker pool")
		app.workerPool.Stop()
	}
	if app.redisClient != nil {
		if err := app.redisClient.Close(); err != nil {
			app.logger.Warn("failed to close redis client", "error", err)
		}
	}
	if app.db != nil {
		closeQuietly(app.db, app.logger)
	}
}

// openDatabase opens the connection pool and verifies connectivity.
func openDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(dbMaxOpenConns)
	db.SetMaxIdleConns(dbMaxIdleConns)
	db.SetConnMaxLifetime(dbConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), dbPingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// setupListCache builds the Redis-backed list cache when a cache URL is
// configured. A missing URL or an unparseable one disables caching; the
// server still runs, list endpoints just always hit the database.
func setupListCache(cfg config.CacheConfig, log *slog.Logger) (*redis.Client, *cache.ListCache) {
	if cfg.URL == "" {
		log.Info("list cache disabled, no redis url configured")
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		log.Warn("invalid redis url, list cache disabled", "error", err)
		return nil, nil
	}

	ttl := cache.DefaultTTL
	if cfg.TTLSeconds > 0 {
		ttl = time.Duration(cfg.TTLSeconds) * time.Second
	}

	client := redis.NewClient(opts)
	log.Info("list cache enabled", slog.Duration("ttl", ttl))
	return client, cache.New(client, ttl, log)
}

func closeQuietly(db *sql.DB, log *slog.Logger) {
	if err := db.Close(); err != nil {
		log.Warn("failed to close database", "error", err)
	}
}
