package tracking

import (
	"context"
	"time"

	"github.com/caravelo/fleettrack/internal/pkg/models"
)

// TrackingRepo defines the data access operations for ingested telemetry
// and alert persistence
type TrackingRepo interface {
	// Ping history (Postgres)
	StorePing(ctx context.Context, location *models.GPSLocation) error
	GetLocationSeries(ctx context.Context, vehicleID string, start, end time.Time) ([]models.GPSLocation, error)
	ListVehicleIDs(ctx context.Context, start, end time.Time) ([]string, error)
	PruneHistory(ctx context.Context, olderThan time.Time) (int64, error)

	// Live positions and alert audit trail (Redis)
	UpdateLatestPosition(ctx context.Context, location *models.GPSLocation) error
	GetLatestPosition(ctx context.Context, vehicleID string) (*models.GPSLocation, error)
	StoreAlert(ctx context.Context, alert *models.SpeedAlert) error
	GetAlert(ctx context.Context, alertID string) (*models.SpeedAlert, error)
	CacheSnapshot(ctx context.Context, snapshot *models.TrackingSnapshot) error
}
