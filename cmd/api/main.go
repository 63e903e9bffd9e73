package main

// @title El Point Directory API
// @version 1.0.0
// @description Бэкенд мобильного справочника мест: генеративный поиск с привязкой к геопозиции, избранное, история просмотров, личные заметки и сессия пользователя.
// @description
// @description Режим хранения выбирается один раз при старте: при наличии credentials Postgres включается удалённый режим, иначе локальный (mock) режим поверх SQLite.

// @contact.name API Support
// @contact.email support@elpoint.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/luis-epic/el-point-ai/docs"
	"github.com/luis-epic/el-point-ai/internal/config"
	httpDelivery "github.com/luis-epic/el-point-ai/internal/delivery/http"
	"github.com/luis-epic/el-point-ai/internal/delivery/http/handler"
	"github.com/luis-epic/el-point-ai/internal/domain/repository"
	"github.com/luis-epic/el-point-ai/internal/infrastructure/gemini"
	"github.com/luis-epic/el-point-ai/internal/pkg/logger"
	"github.com/luis-epic/el-point-ai/internal/repository/cache"
	"github.com/luis-epic/el-point-ai/internal/repository/local"
	"github.com/luis-epic/el-point-ai/internal/repository/remote"
	"github.com/luis-epic/el-point-ai/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting El Point Directory")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Bool("remote_backend", cfg.UseRemoteBackend()),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// 3. Select storage backend: remote when database credentials are present
	var store repository.Store
	if cfg.UseRemoteBackend() {
		db, err := remote.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()

		if err := db.EnsureSchema(ctx); err != nil {
			log.Fatal("Failed to ensure schema", zap.Error(err))
		}

		store = remote.NewStore(db, cfg.Auth, log)
		log.Info("Remote backend active")
	} else {
		db, err := local.New(&cfg.LocalStore, log)
		if err != nil {
			log.Fatal("Failed to open local store", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close local store", zap.Error(err))
			}
		}()

		store = local.NewStore(db, log)
		log.Info("Local (mock) backend active")
	}

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Initialize Repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	searchRepo := gemini.NewClient(&cfg.Gemini, log)

	log.Info("Repositories initialized")

	// 6. Initialize Use Cases
	authUC := usecase.NewAuthUseCase(ctx, store, log)
	directoryUC := usecase.NewDirectoryUseCase(store, log)
	searchUC := usecase.NewSearchUseCase(
		searchRepo,
		cacheRepo,
		log,
		cfg.Cache.SearchCacheTTL,
	)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP Handlers
	authHandler := handler.NewAuthHandler(authUC, log)
	searchHandler := handler.NewSearchHandler(searchUC, log)
	directoryHandler := handler.NewDirectoryHandler(directoryUC, log)

	log.Info("HTTP handlers initialized")

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		authHandler,
		searchHandler,
		directoryHandler,
	)

	log.Info("HTTP server initialized")

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}
