package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/luis-epic/el-point-ai/internal/config"
	"github.com/luis-epic/el-point-ai/internal/delivery/http/handler"
	"github.com/luis-epic/el-point-ai/internal/delivery/http/middleware"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	authHandler      *handler.AuthHandler
	searchHandler    *handler.SearchHandler
	directoryHandler *handler.DirectoryHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	authHandler *handler.AuthHandler,
	searchHandler *handler.SearchHandler,
	directoryHandler *handler.DirectoryHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "El Point Directory",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		authHandler:      authHandler,
		searchHandler:    searchHandler,
		directoryHandler: directoryHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Backend capability badge
	api.Get("/backend", s.directoryHandler.GetBackend)

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signin", s.authHandler.SignIn)
	auth.Post("/signup", s.authHandler.SignUp)
	auth.Post("/signout", s.authHandler.SignOut)
	auth.Get("/me", s.authHandler.Me)

	// Search routes
	api.Get("/search", s.searchHandler.Search)

	// Favorites routes
	api.Get("/favorites", s.directoryHandler.GetFavorites)
	api.Post("/favorites", s.directoryHandler.AddFavorite)
	api.Delete("/favorites/:id", s.directoryHandler.RemoveFavorite)
	api.Post("/favorites/:id/toggle", s.directoryHandler.ToggleFavorite)

	// Notes
	api.Put("/notes/:id", s.directoryHandler.UpdateNote)

	// History routes
	api.Get("/history", s.directoryHandler.GetHistory)
	api.Post("/history", s.directoryHandler.AddToHistory)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
