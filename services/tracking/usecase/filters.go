package usecase

import (
	"context"
	"fmt"

	"github.com/caravelo/fleettrack/internal/pkg/logger"
	"github.com/caravelo/fleettrack/internal/pkg/models"
	"github.com/caravelo/fleettrack/services/tracking"
)

// ValidateFilters rejects malformed filters before any request is issued
func ValidateFilters(filters models.TrackingFilters) error {
	if filters.StartDate.IsZero() || filters.EndDate.IsZero() {
		return fmt.Errorf("start and end date are required: %w", tracking.ErrInvalidRange)
	}
	if filters.StartDate.After(filters.EndDate) {
		return fmt.Errorf("start date after end date: %w", tracking.ErrInvalidRange)
	}
	if filters.SpeedMin != nil && filters.SpeedMax != nil && *filters.SpeedMin > *filters.SpeedMax {
		return fmt.Errorf("speed min above speed max: %w", tracking.ErrInvalidRange)
	}
	return nil
}

// GetLocationHistory validates the filters, forwards them to the telemetry
// provider and derives route aggregates for any history returned as a raw
// series. When the provider is unavailable or has nothing for the window,
// the histories are rebuilt from the locally ingested ping store.
func (uc *trackingUC) GetLocationHistory(ctx context.Context, filters models.TrackingFilters) ([]models.LocationHistory, error) {
	if err := ValidateFilters(filters); err != nil {
		return nil, err
	}

	histories, err := uc.telemetryGW.FetchLocationHistory(ctx, filters)
	if err != nil {
		logger.Warn("Provider history fetch failed, serving from ingested pings",
			logger.Err(err))
		return uc.historyFromIngestedPings(ctx, filters, err)
	}
	if len(histories) == 0 {
		return uc.historyFromIngestedPings(ctx, filters, nil)
	}

	out := make([]models.LocationHistory, 0, len(histories))
	for i := range histories {
		history := histories[i]

		// A pre-aggregated history passes through untouched; filtering its
		// samples would desync them from the provider's derived values.
		if history.Aggregated() {
			out = append(out, history)
			continue
		}

		history.Locations = applySpeedBounds(history.Locations, filters.SpeedMin, filters.SpeedMax)
		aggregated, err := uc.aggregator.Aggregate(history.VehicleID, history.Locations)
		if err != nil {
			return nil, err
		}
		out = append(out, *aggregated)
	}

	return out, nil
}

// historyFromIngestedPings rebuilds the requested histories from the pings
// the ingest pipeline persisted. fetchErr carries the provider failure that
// triggered the fallback, if any; it is surfaced when the local store
// cannot serve either.
func (uc *trackingUC) historyFromIngestedPings(ctx context.Context, filters models.TrackingFilters, fetchErr error) ([]models.LocationHistory, error) {
	vehicleIDs := []string{filters.VehicleID}
	if filters.VehicleID == "" {
		ids, err := uc.repo.ListVehicleIDs(ctx, filters.StartDate, filters.EndDate)
		if err != nil {
			if fetchErr != nil {
				return nil, &tracking.TransientFetchError{Op: "history", Err: fetchErr}
			}
			return nil, fmt.Errorf("failed to list vehicles with history: %w", err)
		}
		vehicleIDs = ids
	}

	out := make([]models.LocationHistory, 0, len(vehicleIDs))
	for _, vehicleID := range vehicleIDs {
		series, err := uc.repo.GetLocationSeries(ctx, vehicleID, filters.StartDate, filters.EndDate)
		if err != nil {
			if fetchErr != nil {
				return nil, &tracking.TransientFetchError{Op: "history", Err: fetchErr}
			}
			return nil, fmt.Errorf("failed to load location series: %w", err)
		}

		series = applySpeedBounds(series, filters.SpeedMin, filters.SpeedMax)
		if len(series) == 0 {
			continue
		}
		aggregated, err := uc.aggregator.Aggregate(vehicleID, series)
		if err != nil {
			return nil, err
		}
		out = append(out, *aggregated)
	}

	return out, nil
}

// applySpeedBounds drops samples outside the requested speed window. The
// provider may ignore the bounds, so they are enforced locally as well.
func applySpeedBounds(locations []models.GPSLocation, min, max *float64) []models.GPSLocation {
	if min == nil && max == nil {
		return locations
	}
	filtered := make([]models.GPSLocation, 0, len(locations))
	for _, loc := range locations {
		if min != nil && loc.Speed < *min {
			continue
		}
		if max != nil && loc.Speed > *max {
			continue
		}
		filtered = append(filtered, loc)
	}
	return filtered
}
