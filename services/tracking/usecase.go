package tracking

import (
	"context"

	"github.com/caravelo/fleettrack/internal/pkg/models"
)

// TrackingUC defines the business logic of the tracking service
type TrackingUC interface {
	// Polling lifecycle
	Start(ctx context.Context) error
	Stop()

	// Snapshot reads
	GetSnapshot(ctx context.Context) (*models.TrackingSnapshot, error)
	SubscribeSnapshots() <-chan models.TrackingSnapshot
	GetVehicle(ctx context.Context, vehicleID string) (*models.VehicleTracking, error)
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)

	// Alerts
	GetAlerts(ctx context.Context, acknowledged *bool) ([]models.SpeedAlert, error)
	AcknowledgeAlert(ctx context.Context, alertID string) error

	// History queries
	GetLocationHistory(ctx context.Context, filters models.TrackingFilters) ([]models.LocationHistory, error)

	// Ping ingest
	IngestPing(ctx context.Context, location *models.GPSLocation) error
}
