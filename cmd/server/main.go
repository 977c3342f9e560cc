package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/config"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/handler"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/infrastructure/database"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/logger"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/metrics"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/migration"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/realtime"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/repository"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/service"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/validator"
)

const version = "1.0.0"

// repositories is the set of stores the services run on.
type repositories struct {
	content     repository.ContentRepository
	tasks       repository.TaskRepository
	prompts     repository.PromptRepository
	preferences repository.PreferencesRepository
	jobs        repository.RestoreJobRepository
}

func postgresRepositories(pool *pgxpool.Pool) repositories {
	return repositories{
		content:     repository.NewPostgresContentRepository(pool),
		tasks:       repository.NewPostgresTaskRepository(pool),
		prompts:     repository.NewPostgresPromptRepository(pool),
		preferences: repository.NewPostgresPreferencesRepository(pool),
		jobs:        repository.NewPostgresJobRepository(pool),
	}
}

func memoryRepositories() repositories {
	return repositories{
		content:     repository.NewMemoryContentRepository(),
		tasks:       repository.NewMemoryTaskRepository(),
		prompts:     repository.NewMemoryPromptRepository(),
		preferences: repository.NewMemoryPreferencesRepository(),
		jobs:        repository.NewMemoryJobRepository(),
	}
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatal("Invalid log level",
			slog.String("error", err.Error()))
	}
	logger.SetLevel(level)
	handler.SetDebugErrors(cfg.DebugErrors)

	// Select the store
	var (
		pool  *pgxpool.Pool
		repos repositories
	)
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		logger.Warn("Using the in-memory store, data is lost on exit")
		repos = memoryRepositories()
	default:
		pool, err = database.NewPostgres(context.Background(), cfg.Postgres())
		if err != nil {
			logger.Fatal("Failed to connect to database",
				slog.String("error", err.Error()))
		}
		defer pool.Close()

		// Start database pool metrics collector
		poolStatsCollector := metrics.NewPoolStatsCollector(pool)
		poolStatsCollector.Start(15 * time.Second)
		defer poolStatsCollector.Stop()

		repos = postgresRepositories(pool)
	}

	// Change feed
	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	hub := realtime.NewHub(cfg.CORSAllowedOrigins)
	go hub.Run(hubCtx)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	contentService := service.NewContentService(repos.content, v, hub)
	taskService := service.NewTaskService(repos.tasks, repos.content, v)
	promptService := service.NewPromptService(repos.prompts, v)
	preferencesService := service.NewPreferencesService(repos.preferences, v)
	boardService := service.NewBoardService(contentService, repos.tasks)
	backupService := service.NewBackupService(
		repos.content,
		repos.tasks,
		repos.preferences,
		repos.jobs,
		v,
		contentService,
		cfg.WorkerPoolSize,
	)
	reconciler := migration.NewReconciler(repos.content, migration.NewArchiveStore(cfg.ArchiveDir))
	migrationService := service.NewMigrationService(reconciler, contentService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(handler.Handlers{
		Content:     handler.NewContentHandler(contentService),
		Board:       handler.NewBoardHandler(boardService, contentService),
		Task:        handler.NewTaskHandler(taskService),
		Prompt:      handler.NewPromptHandler(promptService),
		Preferences: handler.NewPreferencesHandler(preferencesService),
		Backup:      handler.NewBackupHandler(backupService),
		Migration:   handler.NewMigrationHandler(migrationService),
		Health:      handler.NewHealthHandler(pool, hub, version),
		Realtime:    hub.ServeWS,
	})

	corsOptions := cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "If-None-Match", "X-Request-ID"},
		ExposedHeaders: []string{"ETag", "X-Request-ID", "Content-Disposition"},
	}
	if len(cfg.CORSAllowedOrigins) > 0 {
		corsOptions.AllowedOrigins = cfg.CORSAllowedOrigins
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      cors.New(corsOptions).Handler(router),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Close services first to stop accepting new work
	logger.Info("Closing backup service")
	backupService.Close()

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}
	stopHub()

	logger.Info("Server exited")
}
