package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/caravelo/fleettrack/internal/pkg/logger"
	"github.com/caravelo/fleettrack/internal/pkg/models"
	"github.com/caravelo/fleettrack/services/tracking"
)

// trackingUC implements tracking.TrackingUC
type trackingUC struct {
	cfg         *models.Config
	repo        tracking.TrackingRepo
	telemetryGW tracking.TelemetryGW
	eventGW     tracking.EventGW

	engine     *AlertEngine
	aggregator *HistoryAggregator
	scheduler  *SnapshotScheduler
}

// NewTrackingUC creates the tracking use case and its snapshot scheduler
func NewTrackingUC(
	cfg *models.Config,
	repo tracking.TrackingRepo,
	telemetryGW tracking.TelemetryGW,
	eventGW tracking.EventGW,
) tracking.TrackingUC {
	uc := &trackingUC{
		cfg:         cfg,
		repo:        repo,
		telemetryGW: telemetryGW,
		eventGW:     eventGW,
		engine:      NewAlertEngine(cfg.Tracking.CriticalFactor),
		aggregator: NewHistoryAggregator(AggregatorConfig{
			StopSpeedKmh:    cfg.Tracking.StopSpeedKmh,
			MinStopDuration: cfg.Tracking.MinStopDuration,
			MaxStopMergeGap: cfg.Tracking.MaxStopMergeGap,
		}),
	}

	uc.scheduler = NewSnapshotScheduler(
		telemetryGW,
		cfg.Tracking.PollInterval,
		func(err error) {
			logger.Warn("Poll tick discarded, previous snapshot retained", logger.Err(err))
		},
		uc.onSnapshotPublished,
	)

	return uc
}

// Start begins periodic snapshot polling
func (uc *trackingUC) Start(ctx context.Context) error {
	uc.scheduler.Start(ctx)
	logger.Info("Snapshot polling started",
		logger.Duration("interval", uc.cfg.Tracking.PollInterval))
	return nil
}

// Stop cancels the polling loop; in-flight results are discarded
func (uc *trackingUC) Stop() {
	uc.scheduler.Cancel()
	logger.Info("Snapshot polling stopped")
}

// onSnapshotPublished runs after every atomic snapshot swap: the alert
// engine reconciles fetched identities, the snapshot is cached in Redis and
// announced on NATS.
func (uc *trackingUC) onSnapshotPublished(snapshot models.TrackingSnapshot) {
	uc.engine.Reconcile(snapshot.Alerts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := uc.repo.CacheSnapshot(ctx, &snapshot); err != nil {
		logger.Warn("Failed to cache snapshot", logger.Err(err))
	}
	if err := uc.eventGW.PublishSnapshot(ctx, snapshot); err != nil {
		logger.Warn("Failed to publish snapshot event", logger.Err(err))
	}
}

// GetSnapshot returns the latest published snapshot with the vehicles
// marked offline when their last update went stale
func (uc *trackingUC) GetSnapshot(ctx context.Context) (*models.TrackingSnapshot, error) {
	snapshot := uc.scheduler.Current()
	if snapshot == nil {
		return nil, tracking.ErrSnapshotUnavailable
	}

	out := *snapshot
	out.Vehicles = uc.markStale(snapshot.Vehicles)
	out.Alerts = uc.engine.Alerts()
	return &out, nil
}

// SubscribeSnapshots returns a channel receiving every published snapshot.
// Used by the WebSocket hub to stream updates to dashboards.
func (uc *trackingUC) SubscribeSnapshots() <-chan models.TrackingSnapshot {
	return uc.scheduler.Subscribe()
}

// markStale derives online flags from the staleness policy without mutating
// the published snapshot
func (uc *trackingUC) markStale(vehicles []models.VehicleTracking) []models.VehicleTracking {
	staleAfter := uc.cfg.Tracking.StaleAfter
	if staleAfter <= 0 {
		return vehicles
	}

	cutoff := time.Now().Add(-staleAfter)
	out := make([]models.VehicleTracking, len(vehicles))
	copy(out, vehicles)
	for i := range out {
		if out[i].IsOnline && out[i].LastUpdate.Before(cutoff) {
			out[i].IsOnline = false
		}
	}
	return out
}

// GetVehicle returns one vehicle's tracking state from the current snapshot
func (uc *trackingUC) GetVehicle(ctx context.Context, vehicleID string) (*models.VehicleTracking, error) {
	snapshot, err := uc.GetSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	for i := range snapshot.Vehicles {
		if snapshot.Vehicles[i].VehicleID == vehicleID {
			vehicle := snapshot.Vehicles[i]
			if vehicle.CurrentLocation == nil {
				// The provider may omit positions; the ingest pipeline
				// keeps the freshest reading in Redis.
				if latest, err := uc.repo.GetLatestPosition(ctx, vehicleID); err == nil {
					vehicle.CurrentLocation = latest
				}
			}
			return &vehicle, nil
		}
	}
	return nil, tracking.ErrVehicleNotFound
}

// GetDashboardStats recomputes the fleet counters from the current snapshot
// and the live alert set
func (uc *trackingUC) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	snapshot, err := uc.GetSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	stats := ComputeDashboardStats(snapshot.Vehicles, snapshot.Alerts)
	return &stats, nil
}

// GetAlerts returns the alert set, optionally filtered by acknowledgement
func (uc *trackingUC) GetAlerts(ctx context.Context, acknowledged *bool) ([]models.SpeedAlert, error) {
	alerts := uc.engine.Alerts()
	if acknowledged == nil {
		return alerts, nil
	}
	filtered := make([]models.SpeedAlert, 0, len(alerts))
	for _, alert := range alerts {
		if alert.Acknowledged == *acknowledged {
			filtered = append(filtered, alert)
		}
	}
	return filtered, nil
}

// AcknowledgeAlert marks an alert acknowledged locally, persists the audit
// record and forwards the acknowledgement to the provider. Acknowledging an
// already acknowledged alert is a no-op.
func (uc *trackingUC) AcknowledgeAlert(ctx context.Context, alertID string) error {
	alert, err := uc.engine.Acknowledge(alertID)
	if errors.Is(err, tracking.ErrAlertNotFound) {
		// The engine loses its state across restarts; the audit trail in
		// Redis still knows the alert.
		stored, repoErr := uc.repo.GetAlert(ctx, alertID)
		if repoErr != nil {
			return err
		}
		if stored.Acknowledged {
			return nil
		}
		stored.Acknowledged = true
		alert = stored
	} else if err != nil {
		return err
	}

	if err := uc.repo.StoreAlert(ctx, alert); err != nil {
		logger.Warn("Failed to persist acknowledged alert",
			logger.String("alert_id", alertID),
			logger.Err(err))
	}

	if err := uc.telemetryGW.SubmitAcknowledge(ctx, alertID); err != nil {
		// The local state is authoritative for the UI; the provider sync
		// is retried implicitly on the next reconcile.
		logger.Warn("Failed to submit acknowledge upstream",
			logger.String("alert_id", alertID),
			logger.Err(err))
	}

	event := models.AlertEvent{
		Type:      models.AlertEventAcknowledged,
		Alert:     *alert,
		Timestamp: time.Now().UTC(),
	}
	if err := uc.eventGW.PublishAlertEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish alert event", logger.Err(err))
	}

	return nil
}
