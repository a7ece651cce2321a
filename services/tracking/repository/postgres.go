package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/caravelo/fleettrack/internal/pkg/models"
)

// StorePing inserts one GPS reading into the history table
func (r *trackingRepo) StorePing(ctx context.Context, location *models.GPSLocation) error {
	query := `
		INSERT INTO gps_locations (
			id, vehicle_id, latitude, longitude, speed, direction,
			timestamp, altitude, accuracy
		) VALUES (:id, :vehicle_id, :latitude, :longitude, :speed, :direction,
			:timestamp, :altitude, :accuracy)
	`
	if _, err := r.db.NamedExecContext(ctx, query, location); err != nil {
		return fmt.Errorf("failed to store gps ping: %w", err)
	}
	return nil
}

// GetLocationSeries returns a vehicle's readings within the inclusive time
// range, ascending by timestamp
func (r *trackingRepo) GetLocationSeries(ctx context.Context, vehicleID string, start, end time.Time) ([]models.GPSLocation, error) {
	query := `
		SELECT id, vehicle_id, latitude, longitude, speed, direction,
			timestamp, altitude, accuracy
		FROM gps_locations
		WHERE vehicle_id = $1 AND timestamp >= $2 AND timestamp <= $3
		ORDER BY timestamp ASC
	`
	var series []models.GPSLocation
	if err := r.db.SelectContext(ctx, &series, query, vehicleID, start, end); err != nil {
		return nil, fmt.Errorf("failed to query location series: %w", err)
	}
	return series, nil
}

// ListVehicleIDs returns the distinct vehicle ids with readings in the
// inclusive time range
func (r *trackingRepo) ListVehicleIDs(ctx context.Context, start, end time.Time) ([]string, error) {
	query := `
		SELECT DISTINCT vehicle_id
		FROM gps_locations
		WHERE timestamp >= $1 AND timestamp <= $2
		ORDER BY vehicle_id
	`
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, start, end); err != nil {
		return nil, fmt.Errorf("failed to list vehicle ids: %w", err)
	}
	return ids, nil
}

// PruneHistory deletes readings older than the cutoff and returns the
// number of rows removed
func (r *trackingRepo) PruneHistory(ctx context.Context, olderThan time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM gps_locations WHERE timestamp < $1`, olderThan)
	if err != nil {
		return 0, fmt.Errorf("failed to prune history: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read pruned row count: %w", err)
	}
	return rows, nil
}
