package tracking

import (
	"context"

	"github.com/caravelo/fleettrack/internal/pkg/models"
)

// TelemetryGW is the boundary to the upstream telemetry provider. All
// tracking, alert and history data originates behind this interface.
type TelemetryGW interface {
	FetchTracking(ctx context.Context) ([]models.VehicleTracking, error)
	FetchAlerts(ctx context.Context) ([]models.SpeedAlert, error)
	FetchDashboardStats(ctx context.Context) (models.DashboardStats, error)
	FetchLocationHistory(ctx context.Context, filters models.TrackingFilters) ([]models.LocationHistory, error)
	SubmitAcknowledge(ctx context.Context, alertID string) error
}

// EventGW publishes tracking lifecycle events to the message brokers
type EventGW interface {
	// PublishSnapshot announces a newly published tracking snapshot on NATS
	PublishSnapshot(ctx context.Context, snapshot models.TrackingSnapshot) error
	// PublishAlertEvent pushes a speed alert lifecycle event to NSQ for
	// notification consumers
	PublishAlertEvent(ctx context.Context, event models.AlertEvent) error
}
