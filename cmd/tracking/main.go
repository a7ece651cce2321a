package main

import (
	"context"
	"log"
	"time"

	"github.com/caravelo/fleettrack/internal/pkg/config"
	"github.com/caravelo/fleettrack/internal/pkg/database"
	"github.com/caravelo/fleettrack/internal/pkg/health"
	"github.com/caravelo/fleettrack/internal/pkg/logger"
	"github.com/caravelo/fleettrack/internal/pkg/middleware"
	natspkg "github.com/caravelo/fleettrack/internal/pkg/nats"
	nrpkg "github.com/caravelo/fleettrack/internal/pkg/newrelic"
	nsqpkg "github.com/caravelo/fleettrack/internal/pkg/nsq"
	"github.com/caravelo/fleettrack/internal/pkg/server"
	"github.com/caravelo/fleettrack/services/tracking/gateway"
	"github.com/caravelo/fleettrack/services/tracking/handler"
	"github.com/caravelo/fleettrack/services/tracking/repository"
	"github.com/caravelo/fleettrack/services/tracking/usecase"
	"github.com/labstack/echo/v4"
)

func main() {
	configs := config.InitConfig(".env")

	// New Relic is optional; the logger forwards entries when it is on
	nrApp := nrpkg.InitNewRelic(configs.NewRelic)

	zapLogger, err := logger.NewZapLogger(configs.Logger, nrApp)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize Postgres client
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to Postgres", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize NATS client
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// NSQ is optional; without it alert events are not fanned out
	var nsqProducer *nsqpkg.Producer
	if configs.NSQ.Address != "" {
		nsqProducer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			logger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		defer nsqProducer.Stop()
	}

	// Initialize repository
	trackingRepo := repository.NewTrackingRepository(redisClient, postgresClient.GetDB())

	// Initialize gateways
	telemetryGW := gateway.NewTelemetryGW(configs.Telemetry)
	eventGW := gateway.NewEventGW(natsClient, nsqProducer, configs.NSQ.AlertsTopic)

	// Initialize usecase and start the polling loop
	trackingUC := usecase.NewTrackingUC(configs, trackingRepo, telemetryGW, eventGW)
	if err := trackingUC.Start(context.Background()); err != nil {
		logger.Fatal("Failed to start snapshot polling", logger.Err(err))
	}
	defer trackingUC.Stop()

	// Initialize handlers
	trackingHandler, err := handler.NewHandler(trackingUC, natsClient, configs)
	if err != nil {
		logger.Fatal("Failed to initialize handlers", logger.Err(err))
	}
	if err := trackingHandler.InitNATSConsumers(); err != nil {
		logger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}
	defer trackingHandler.Close()

	// Stream published snapshots to WebSocket clients
	streamCtx, cancelStream := context.WithCancel(context.Background())
	defer cancelStream()
	trackingHandler.StartSnapshotStream(streamCtx)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.RequestLogger())

	trackingHandler.RegisterRoutes(e, map[string]health.Checker{
		"redis":    redisClient,
		"postgres": postgresClient,
	})

	// Periodically prune ingested pings past the retention window
	pruneCtx, cancelPrune := context.WithCancel(context.Background())
	defer cancelPrune()
	go pruneHistoryLoop(pruneCtx, trackingRepo, configs.Tracking.HistoryRetention)

	// Start server with graceful shutdown
	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := gracefulServer.Start(); err != nil {
		logger.Error("Server stopped with error", logger.Err(err))
	}
}

// pruneHistoryLoop deletes pings older than the retention window once per
// hour
func pruneHistoryLoop(ctx context.Context, repo interface {
	PruneHistory(ctx context.Context, olderThan time.Time) (int64, error)
}, retention time.Duration) {
	if retention <= 0 {
		return
	}

	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pruned, err := repo.PruneHistory(ctx, time.Now().Add(-retention))
			if err != nil {
				logger.Warn("Failed to prune location history", logger.Err(err))
				continue
			}
			if pruned > 0 {
				logger.Info("Pruned location history", logger.Int("rows", int(pruned)))
			}
		}
	}
}
