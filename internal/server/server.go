package server

import (
	"log"
	"strings"
	"time"

	"workforce-bot-api/internal/bootstrap"
	"workforce-bot-api/internal/config"
	"workforce-bot-api/internal/pkg/ratelimit"
	"workforce-bot-api/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	errorHandler := NewErrorHandler(container.Logger, cfg.App.ExposeErrorDetails)

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.ServiceName,
		BodyLimit:             1 * 1024 * 1024,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          15 * time.Second,
		ErrorHandler:          errorHandler,
		DisableStartupMessage: cfg.App.Environment == "production",
	})

	// Credentials are only allowed with an explicit origin list.
	origins := cfg.App.CorsAllowedOrigins
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowCredentials: origins != "*" && strings.TrimSpace(origins) != "",
		AllowHeaders:     "*",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	app.Use(otelfiber.Middleware())
	app.Use(serverutils.RequestID())
	app.Use(serverutils.RequestLogger(container.Logger))
	app.Use(serverutils.ErrorHandlerMiddleware(errorHandler))
	app.Use(recover.New())

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown(timeout time.Duration) error {
	return s.app.ShutdownWithTimeout(timeout)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	c.SystemController.RegisterRoutes(app)

	var limit []fiber.Handler
	if c.RateLimiter != nil {
		limit = append(limit, ratelimit.Middleware(c.RateLimiter, ratelimit.KeyByParamOrIP("chat_id", "telegram_id")))
	}

	api := app.Group("/api")
	c.TelegramController.RegisterRoutes(api, limit...)
	c.ConversationController.RegisterRoutes(api, limit...)
}
