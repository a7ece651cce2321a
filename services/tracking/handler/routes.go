package handler

import (
	"context"
	"fmt"

	"github.com/caravelo/fleettrack/internal/pkg/health"
	"github.com/caravelo/fleettrack/internal/pkg/models"
	natspkg "github.com/caravelo/fleettrack/internal/pkg/nats"
	wspkg "github.com/caravelo/fleettrack/internal/pkg/websocket"
	"github.com/caravelo/fleettrack/services/tracking"
	httpHandler "github.com/caravelo/fleettrack/services/tracking/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler combines the HTTP, WebSocket, NATS and NSQ handlers for the
// tracking service
type Handler struct {
	trackingUC    tracking.TrackingUC
	trackingHTTP  *httpHandler.TrackingHandler
	pingConsumer  *PingConsumer
	alertNotifier *AlertNotifier
	wsHub         *wspkg.Hub
	serviceName   string
}

// NewHandler creates a new combined handler
func NewHandler(trackingUC tracking.TrackingUC, natsClient *natspkg.Client, cfg *models.Config) (*Handler, error) {
	hub := wspkg.NewHub()

	notifier, err := NewAlertNotifier(cfg.NSQ, hub)
	if err != nil {
		return nil, fmt.Errorf("failed to start alert notifier: %w", err)
	}

	return &Handler{
		trackingUC:    trackingUC,
		trackingHTTP:  httpHandler.NewTrackingHandler(trackingUC),
		pingConsumer:  NewPingConsumer(trackingUC, natsClient, cfg.Tracking.IngestBufferSize),
		alertNotifier: notifier,
		wsHub:         hub,
		serviceName:   cfg.App.Name,
	}, nil
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, checkers map[string]health.Checker) {
	e.GET("/health", health.NewPingHandler(h.serviceName))
	e.GET("/ready", health.NewReadyHandler(checkers))

	e.GET("/tracking", h.trackingHTTP.GetTracking)
	e.GET("/tracking/:id", h.trackingHTTP.GetVehicleTracking)
	e.GET("/alerts", h.trackingHTTP.GetAlerts)
	e.POST("/alerts/:id/acknowledge", h.trackingHTTP.AcknowledgeAlert)
	e.GET("/dashboard/stats", h.trackingHTTP.GetDashboardStats)
	e.GET("/history", h.trackingHTTP.GetLocationHistory)

	e.GET("/ws/tracking", h.wsHub.HandleConnection)
}

// StartSnapshotStream begins forwarding published snapshots to WebSocket
// clients
func (h *Handler) StartSnapshotStream(ctx context.Context) {
	go h.wsHub.Run(ctx, h.trackingUC.SubscribeSnapshots())
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.pingConsumer.InitConsumers()
}

// Close shuts down the NATS and NSQ consumers
func (h *Handler) Close() {
	h.pingConsumer.Close()
	h.alertNotifier.Close()
}
