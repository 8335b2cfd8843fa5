// Package server contains the HTTP layer for the story library API.
package server

import (
	"context"

	"github.com/fjnwajei/story-reader-app/internal/config"
	"github.com/fjnwajei/story-reader-app/internal/middleware"
	"github.com/fjnwajei/story-reader-app/internal/repository"
	"github.com/fjnwajei/story-reader-app/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	promMiddleware *fiberprometheus.FiberPrometheus
	storyRepo      repository.StoryRepository
	storyService   *service.StoryService
}

// NewServer creates a Server using an already-initialized database handle.
// The bootstrap layer is responsible for opening the database and seeding
// the demo stories before any routes are served.
func NewServer(cfg *config.Config, db *gorm.DB) *Server {
	storyRepo := repository.NewStoryRepository(db)

	server := &Server{
		config:         cfg,
		db:             db,
		promMiddleware: fiberprometheus.New("story-reader-api"),
		storyRepo:      storyRepo,
	}
	server.storyService = service.NewStoryService(storyRepo)

	return server
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate the request ID into the request context
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS is open to any origin; the API carries no credentials.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	api := app.Group("/api")

	stories := api.Group("/stories")
	stories.Get("/", s.ListStories)
	stories.Get("/:id", s.GetStory)
	stories.Post("/", s.CreateStory)
	stories.Put("/:id", s.UpdateStory)
	stories.Delete("/:id", s.DeleteStory)

	// Static assets (index.html and friends) are served from the same
	// process. Registered last so API routes win.
	if s.config.StaticDir != "" {
		app.Static("/", s.config.StaticDir)
	}
}

// LivenessCheck reports that the process is up.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// ReadinessCheck reports whether the database is reachable and seeded.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	count, err := s.storyRepo.Count(c.Context())
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
			"error":  err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"status":  "ok",
		"stories": count,
	})
}

// Shutdown releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
