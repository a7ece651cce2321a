package usecase

import (
	"context"
	"time"

	"github.com/caravelo/fleettrack/internal/pkg/logger"
	"github.com/caravelo/fleettrack/internal/pkg/models"
	"github.com/caravelo/fleettrack/internal/utils"
	"github.com/google/uuid"
)

// IngestPing processes one raw GPS reading: validates it, persists it to
// the history store, updates the vehicle's live position and evaluates it
// against the vehicle's speed limit.
func (uc *trackingUC) IngestPing(ctx context.Context, location *models.GPSLocation) error {
	point := utils.GeoPoint{Latitude: location.Latitude, Longitude: location.Longitude}
	if !point.Valid() {
		return utils.ErrInvalidCoordinate
	}

	if location.ID == "" {
		location.ID = uuid.New().String()
	}
	touchTimestamp(location)
	location.Direction = utils.NormalizeBearing(location.Direction)

	if err := uc.repo.StorePing(ctx, location); err != nil {
		return err
	}

	if err := uc.repo.UpdateLatestPosition(ctx, location); err != nil {
		// History is already recorded; live position catches up on the
		// next ping.
		logger.Warn("Failed to update live position",
			logger.String("vehicle_id", location.VehicleID),
			logger.Err(err))
	}

	plate, limit, ok := uc.speedLimitFor(location.VehicleID)
	if !ok {
		// Vehicle not in the current snapshot; nothing to evaluate
		// against.
		return nil
	}

	decision := uc.engine.Evaluate(location, plate, limit)
	switch decision.Kind {
	case NoViolation:
		return nil
	case NewAlert:
		uc.emitAlertEvent(ctx, models.AlertEventCreated, decision.Alert)
	case UpdateExisting:
		uc.emitAlertEvent(ctx, models.AlertEventUpdated, decision.Alert)
	}

	return nil
}

// speedLimitFor resolves a vehicle's plate and speed limit from the current
// snapshot
func (uc *trackingUC) speedLimitFor(vehicleID string) (string, float64, bool) {
	snapshot := uc.scheduler.Current()
	if snapshot == nil {
		return "", 0, false
	}
	for i := range snapshot.Vehicles {
		if snapshot.Vehicles[i].VehicleID == vehicleID {
			return snapshot.Vehicles[i].Plate, snapshot.Vehicles[i].SpeedLimit, true
		}
	}
	return "", 0, false
}

func (uc *trackingUC) emitAlertEvent(ctx context.Context, eventType models.AlertEventType, alert *models.SpeedAlert) {
	if err := uc.repo.StoreAlert(ctx, alert); err != nil {
		logger.Warn("Failed to persist alert",
			logger.String("alert_id", alert.ID),
			logger.Err(err))
	}

	event := models.AlertEvent{
		Type:      eventType,
		Alert:     *alert,
		Timestamp: time.Now().UTC(),
	}
	if err := uc.eventGW.PublishAlertEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish alert event",
			logger.String("alert_id", alert.ID),
			logger.Err(err))
	}
}
