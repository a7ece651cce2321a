package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/caravelo/fleettrack/internal/pkg/constants"
	"github.com/caravelo/fleettrack/internal/pkg/models"
	"github.com/caravelo/fleettrack/internal/utils"
)

const (
	// positionTTL keeps live positions around long enough for staleness
	// checks without letting dead vehicles linger
	positionTTL = 24 * time.Hour
	// snapshotTTL bounds how long a cached snapshot can serve restarts
	snapshotTTL = 5 * time.Minute
	// positionGeohashPrecision gives ~150m cells, enough for fleet views
	positionGeohashPrecision = 7
)

// UpdateLatestPosition stores a vehicle's most recent reading in a hash and
// refreshes the fleet geo index
func (r *trackingRepo) UpdateLatestPosition(ctx context.Context, location *models.GPSLocation) error {
	key := fmt.Sprintf(constants.KeyVehicleLocation, location.VehicleID)
	point := utils.GeoPoint{Latitude: location.Latitude, Longitude: location.Longitude}

	fields := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(location.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(location.Longitude, 'f', -1, 64),
		constants.FieldSpeed:     strconv.FormatFloat(location.Speed, 'f', -1, 64),
		constants.FieldDirection: strconv.FormatFloat(location.Direction, 'f', -1, 64),
		constants.FieldGeohash:   utils.EncodePoint(point, positionGeohashPrecision),
		constants.FieldTimestamp: strconv.FormatInt(location.Timestamp.Unix(), 10),
	}

	if err := r.redisClient.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to store latest position: %w", err)
	}
	if err := r.redisClient.Expire(ctx, key, positionTTL); err != nil {
		return fmt.Errorf("failed to set position TTL: %w", err)
	}

	if err := r.redisClient.GeoAdd(ctx, constants.KeyVehicleGeoIndex, location.Longitude, location.Latitude, location.VehicleID); err != nil {
		return fmt.Errorf("failed to update geo index: %w", err)
	}

	return nil
}

// GetLatestPosition returns a vehicle's most recent stored reading
func (r *trackingRepo) GetLatestPosition(ctx context.Context, vehicleID string) (*models.GPSLocation, error) {
	key := fmt.Sprintf(constants.KeyVehicleLocation, vehicleID)

	values, err := r.redisClient.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest position: %w", err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no position data for vehicle %s", vehicleID)
	}

	lat, err := strconv.ParseFloat(values[constants.FieldLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(values[constants.FieldLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}
	speed, err := strconv.ParseFloat(values[constants.FieldSpeed], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid speed: %w", err)
	}
	direction, err := strconv.ParseFloat(values[constants.FieldDirection], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid direction: %w", err)
	}
	ts, err := strconv.ParseInt(values[constants.FieldTimestamp], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	return &models.GPSLocation{
		VehicleID: vehicleID,
		Latitude:  lat,
		Longitude: lng,
		Speed:     speed,
		Direction: direction,
		Timestamp: time.Unix(ts, 0),
	}, nil
}

// StoreAlert persists one alert as a hash and indexes its id
func (r *trackingRepo) StoreAlert(ctx context.Context, alert *models.SpeedAlert) error {
	key := fmt.Sprintf(constants.KeyAlert, alert.ID)

	data, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}

	if err := r.redisClient.Set(ctx, key, data, 0); err != nil {
		return fmt.Errorf("failed to store alert: %w", err)
	}
	if err := r.redisClient.SAdd(ctx, constants.KeyAlertIndex, alert.ID); err != nil {
		return fmt.Errorf("failed to index alert: %w", err)
	}

	return nil
}

// GetAlert retrieves one alert by id
func (r *trackingRepo) GetAlert(ctx context.Context, alertID string) (*models.SpeedAlert, error) {
	key := fmt.Sprintf(constants.KeyAlert, alertID)

	data, err := r.redisClient.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}

	var alert models.SpeedAlert
	if err := json.Unmarshal([]byte(data), &alert); err != nil {
		return nil, fmt.Errorf("failed to unmarshal alert: %w", err)
	}
	return &alert, nil
}

// CacheSnapshot stores the latest published snapshot
func (r *trackingRepo) CacheSnapshot(ctx context.Context, snapshot *models.TrackingSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := r.redisClient.Set(ctx, constants.KeySnapshot, data, snapshotTTL); err != nil {
		return fmt.Errorf("failed to cache snapshot: %w", err)
	}
	return nil
}
