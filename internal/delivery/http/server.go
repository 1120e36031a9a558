package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/route-optimizer/internal/config"
	"github.com/route-optimizer/internal/delivery/http/handler"
	"github.com/route-optimizer/internal/delivery/http/middleware"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - Fiber-based HTTP server
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	routeHandler      *handler.RouteHandler
	geocodeHandler    *handler.GeocodeHandler
	vehicleHandler    *handler.VehicleHandler
	chargingHandler   *handler.ChargingHandler
	navigationHandler *handler.NavigationHandler
}

// NewServer - build the HTTP server with all routes wired
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	routeHandler *handler.RouteHandler,
	geocodeHandler *handler.GeocodeHandler,
	vehicleHandler *handler.VehicleHandler,
	chargingHandler *handler.ChargingHandler,
	navigationHandler *handler.NavigationHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Route Optimizer",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		routeHandler:      routeHandler,
		geocodeHandler:    geocodeHandler,
		vehicleHandler:    vehicleHandler,
		chargingHandler:   chargingHandler,
		navigationHandler: navigationHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

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

	// Route computation
	api.Post("/routes", s.routeHandler.ComputeRoute)
	api.Post("/routes/summaries", s.routeHandler.Summaries)

	// Geocoding
	api.Get("/geocode/search", s.geocodeHandler.Search)
	api.Post("/geocode/reverse", s.geocodeHandler.Reverse)

	// Vehicle catalog
	api.Get("/vehicles", s.vehicleHandler.List)
	api.Get("/vehicles/:id", s.vehicleHandler.GetByID)

	// EV charging
	api.Post("/charging/plan", s.chargingHandler.Plan)
	api.Get("/charging/stations", s.chargingHandler.Stations)

	// Simulated navigation
	api.Post("/navigation/start", s.navigationHandler.Start)
	api.Get("/navigation/:id", s.navigationHandler.Get)
	api.Delete("/navigation/:id", s.navigationHandler.Stop)
}

// Start - run the HTTP server
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful HTTP server shutdown
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the fiber app for handler tests.
func (s *Server) App() *fiber.App {
	return s.app
}

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
