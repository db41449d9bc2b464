package main

// @title Medic Geo Service API
// @version 1.0.0
// @description Geo and inventory backend for a patient-facing healthcare application. Resolves user locations, finds nearby pharmacies and hospitals from public map data, computes routes with a straight-line fallback, and searches medicine availability across the pharmacy network.

// @contact.name API Support
// @contact.email support@medic-all.dev

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

	_ "github.com/asmit-inzanist/medic-all-sub000/docs/swagger"
	"github.com/asmit-inzanist/medic-all-sub000/internal/config"
	httpDelivery "github.com/asmit-inzanist/medic-all-sub000/internal/delivery/http"
	"github.com/asmit-inzanist/medic-all-sub000/internal/delivery/http/handler"
	"github.com/asmit-inzanist/medic-all-sub000/internal/infrastructure/nominatim"
	"github.com/asmit-inzanist/medic-all-sub000/internal/infrastructure/openroute"
	"github.com/asmit-inzanist/medic-all-sub000/internal/infrastructure/overpass"
	"github.com/asmit-inzanist/medic-all-sub000/internal/pkg/logger"
	"github.com/asmit-inzanist/medic-all-sub000/internal/repository/cache"
	"github.com/asmit-inzanist/medic-all-sub000/internal/repository/postgres"
	"github.com/asmit-inzanist/medic-all-sub000/internal/usecase"
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

	log.Info("Starting Medic Geo Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

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

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	inventoryRepo := postgres.NewInventoryRepository(db)
	pharmacyRepo := postgres.NewPharmacyRepository(db)

	// External data service clients
	geocodingRepo := nominatim.NewClient(&cfg.Geocoding, log)
	poiRepo := overpass.NewClient(&cfg.Overpass, log)
	routingRepo := openroute.NewClient(&cfg.Routing, log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	locationUC := usecase.NewLocationUseCase(
		geocodingRepo,
		cacheRepo,
		log,
		cfg.Location.PositionTimeout,
		cfg.Location.PositionMaxAge,
		cfg.Cache.GeocodeCacheTTL,
	)

	nearbyUC := usecase.NewNearbyUseCase(
		poiRepo,
		log,
		cfg.Search.MaxPharmacyResults,
		cfg.Search.MaxHospitalResults,
	)

	routeUC := usecase.NewRouteUseCase(
		routingRepo,
		log,
		cfg.Routing.FallbackSpeedKmh,
	)

	inventoryUC := usecase.NewInventoryUseCase(
		inventoryRepo,
		pharmacyRepo,
		log,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	locationHandler := handler.NewLocationHandler(locationUC, log)
	nearbyHandler := handler.NewNearbyHandler(nearbyUC, log)
	routeHandler := handler.NewRouteHandler(routeUC, log)
	inventoryHandler := handler.NewInventoryHandler(inventoryUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		locationHandler,
		nearbyHandler,
		routeHandler,
		inventoryHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close database", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
