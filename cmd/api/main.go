package main

// @title Route Optimizer API
// @version 1.0.0
// @description Route planning and navigation simulation service. Computes optimized routes for different objectives (fastest, economic, eco, truck-legal), estimates trip cost, emissions and EV charging needs, and drives tick-based navigation simulations with hazard alerts.
// @description
// @description Core capabilities:
// @description - Route computation with deterministic fallback when the routing engine is down
// @description - Per-objective route selection and cost/emission summaries
// @description - Geocoding search and reverse geocoding with coordinate fallback labels
// @description - EV charging need estimation and rule-based schedule advisory
// @description - Simulated turn-by-turn navigation with hazard alerts

// @contact.name API Support
// @contact.email support@route-optimizer.dev

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

	_ "github.com/route-optimizer/docs/swagger"
	"github.com/route-optimizer/internal/config"
	httpDelivery "github.com/route-optimizer/internal/delivery/http"
	"github.com/route-optimizer/internal/delivery/http/handler"
	"github.com/route-optimizer/internal/infrastructure/advisory"
	"github.com/route-optimizer/internal/infrastructure/nominatim"
	"github.com/route-optimizer/internal/infrastructure/osrm"
	"github.com/route-optimizer/internal/navigation"
	"github.com/route-optimizer/internal/pkg/logger"
	"github.com/route-optimizer/internal/repository/cache"
	"github.com/route-optimizer/internal/repository/postgres"
	"github.com/route-optimizer/internal/usecase"
	"github.com/route-optimizer/internal/worker"
	"github.com/route-optimizer/internal/worker/environment"
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

	log.Info("Starting Route Optimizer")
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

	// 6. Initialize repositories and capability clients
	cacheRepo := cache.NewCacheRepository(redisClient)
	vehicleRepo := postgres.NewVehicleRepository(db, log)
	stationRepo := postgres.NewChargingStationRepository(db, log)

	routingClient := osrm.NewClient(&cfg.Routing, log)
	geocodingClient := nominatim.NewClient(&cfg.Geocoding, log)
	advisoryClient := advisory.NewClient(&cfg.Advisory, log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	routeUC := usecase.NewRouteUseCase(routingClient, cacheRepo, log, cfg.Cache.RouteCacheTTL, cfg.Simulator.FallbackSegments)
	costUC := usecase.NewCostUseCase(log)
	chargingUC := usecase.NewChargingUseCase(stationRepo, log)
	advisoryUC := usecase.NewAdvisoryUseCase(advisoryClient, log)
	geocodeUC := usecase.NewGeocodeUseCase(geocodingClient, cacheRepo, log, cfg.Cache.GeocodeCacheTTL)
	environmentUC := usecase.NewEnvironmentUseCase(cacheRepo, log, cfg.Cache.EnvironmentCacheTTL)
	vehicleUC := usecase.NewVehicleUseCase(vehicleRepo, log)

	navManager := navigation.NewManager(cfg.Simulator.TickInterval, cfg.Simulator.ProximityWindow, log)

	log.Info("Use cases initialized")

	// 8. Initialize handlers
	routeHandler := handler.NewRouteHandler(routeUC, costUC, advisoryUC, geocodeUC, environmentUC, vehicleUC, log)
	geocodeHandler := handler.NewGeocodeHandler(geocodeUC, log)
	vehicleHandler := handler.NewVehicleHandler(vehicleUC, log)
	chargingHandler := handler.NewChargingHandler(chargingUC, routeUC, vehicleUC, log)
	navigationHandler := handler.NewNavigationHandler(navManager, routeUC, advisoryUC, geocodeUC, vehicleUC, log)

	// 9. Background workers
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	workerManager := worker.NewWorkerManager(log)
	if cfg.Worker.Enabled {
		workerManager.Register(environment.NewRefreshWorker(environmentUC, cfg.Worker.EnvironmentRefreshInterval, log))
		if err := workerManager.Start(workerCtx); err != nil {
			log.Fatal("Failed to start workers", zap.Error(err))
		}
	}

	// 10. Start HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		routeHandler,
		geocodeHandler,
		vehicleHandler,
		chargingHandler,
		navigationHandler,
	)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// 11. Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	case sig := <-quit:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))
	}

	// 12. Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	navManager.StopAll()

	if cfg.Worker.Enabled {
		if err := workerManager.Stop(); err != nil {
			log.Error("Workers shutdown failed", zap.Error(err))
		}
	}

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown failed", zap.Error(err))
	}

	log.Info("Route Optimizer stopped")
}
