package http

import (
	"context"
	"time"

	"github.com/asmit-inzanist/medic-all-sub000/internal/config"
	"github.com/asmit-inzanist/medic-all-sub000/internal/delivery/http/handler"
	"github.com/asmit-inzanist/medic-all-sub000/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server is the Fiber HTTP server.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	locationHandler  *handler.LocationHandler
	nearbyHandler    *handler.NearbyHandler
	routeHandler     *handler.RouteHandler
	inventoryHandler *handler.InventoryHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	locationHandler *handler.LocationHandler,
	nearbyHandler *handler.NearbyHandler,
	routeHandler *handler.RouteHandler,
	inventoryHandler *handler.InventoryHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Medic Geo Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		locationHandler:  locationHandler,
		nearbyHandler:    nearbyHandler,
		routeHandler:     routeHandler,
		inventoryHandler: inventoryHandler,
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

	// Location routes
	api.Post("/location/resolve", s.locationHandler.Resolve)
	api.Post("/reverse-geocode", s.locationHandler.ReverseGeocode)

	// Nearby facility routes
	api.Post("/nearby/pharmacies", s.nearbyHandler.SearchPharmacies)
	api.Post("/nearby/hospitals", s.nearbyHandler.SearchHospitals)

	// Route routes
	api.Post("/routes", s.routeHandler.GetRoute)
	api.Get("/routes/maps-links", s.routeHandler.MapsLinks)

	// Inventory routes
	api.Post("/medicines/search", s.inventoryHandler.Search)
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the underlying Fiber app for tests.
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
