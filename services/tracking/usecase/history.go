package usecase

import (
	"fmt"
	"time"

	"github.com/caravelo/fleettrack/internal/pkg/models"
	"github.com/caravelo/fleettrack/internal/utils"
	"github.com/caravelo/fleettrack/services/tracking"
	"github.com/google/uuid"
)

// AggregatorConfig carries the tunable thresholds of route aggregation
type AggregatorConfig struct {
	// StopSpeedKmh is the speed below which a sample counts as stopped
	StopSpeedKmh float64
	// MinStopDuration filters out GPS jitter at intersections and lights
	MinStopDuration time.Duration
	// MaxStopMergeGap merges stop runs separated by at most this gap
	MaxStopMergeGap time.Duration
}

// DefaultAggregatorConfig returns the documented default thresholds
func DefaultAggregatorConfig() AggregatorConfig {
	return AggregatorConfig{
		StopSpeedKmh:    2.0,
		MinStopDuration: 3 * time.Minute,
		MaxStopMergeGap: 2 * time.Minute,
	}
}

// HistoryAggregator derives route statistics from an ordered location
// series. It is a pure function of its input and configuration.
type HistoryAggregator struct {
	cfg AggregatorConfig
}

// NewHistoryAggregator creates an aggregator; zero config fields fall back
// to the defaults
func NewHistoryAggregator(cfg AggregatorConfig) *HistoryAggregator {
	defaults := DefaultAggregatorConfig()
	if cfg.StopSpeedKmh <= 0 {
		cfg.StopSpeedKmh = defaults.StopSpeedKmh
	}
	if cfg.MinStopDuration <= 0 {
		cfg.MinStopDuration = defaults.MinStopDuration
	}
	if cfg.MaxStopMergeGap <= 0 {
		cfg.MaxStopMergeGap = defaults.MaxStopMergeGap
	}
	return &HistoryAggregator{cfg: cfg}
}

// Aggregate derives distance, speed and stop statistics from a
// chronologically ordered location series for one vehicle. The caller must
// sort ascending by timestamp; inversions fail with ErrUnsortedInput.
func (a *HistoryAggregator) Aggregate(vehicleID string, locations []models.GPSLocation) (*models.LocationHistory, error) {
	history := &models.LocationHistory{
		VehicleID: vehicleID,
		Locations: locations,
		Stops:     []models.LocationStop{},
	}

	if len(locations) == 0 {
		return history, nil
	}

	for i := 1; i < len(locations); i++ {
		if locations[i].Timestamp.Before(locations[i-1].Timestamp) {
			return nil, fmt.Errorf("sample %d precedes sample %d: %w", i, i-1, tracking.ErrUnsortedInput)
		}
	}

	var totalDistance, speedSum, maxSpeed float64
	for i, loc := range locations {
		speedSum += loc.Speed
		if loc.Speed > maxSpeed {
			maxSpeed = loc.Speed
		}
		if i == 0 {
			continue
		}
		prev := locations[i-1]
		segment, err := utils.DistanceKm(
			utils.GeoPoint{Latitude: prev.Latitude, Longitude: prev.Longitude},
			utils.GeoPoint{Latitude: loc.Latitude, Longitude: loc.Longitude},
		)
		if err != nil {
			return nil, err
		}
		totalDistance += segment
	}

	history.TotalDistance = totalDistance
	history.MaxSpeed = maxSpeed
	// Arithmetic mean of sample speeds. Distance/time is unreliable at
	// sparse sampling rates, so it is deliberately not used here.
	history.AverageSpeed = speedSum / float64(len(locations))
	if len(locations) > 1 {
		first := locations[0].Timestamp
		last := locations[len(locations)-1].Timestamp
		history.TotalTime = last.Sub(first).Minutes()
	}

	history.Stops = a.detectStops(locations)

	return history, nil
}

// stopRun is a contiguous span of low-speed samples
type stopRun struct {
	first int
	last  int
}

func (a *HistoryAggregator) detectStops(locations []models.GPSLocation) []models.LocationStop {
	var runs []stopRun
	for i := 0; i < len(locations); i++ {
		if locations[i].Speed >= a.cfg.StopSpeedKmh {
			continue
		}
		if len(runs) > 0 && runs[len(runs)-1].last == i-1 {
			runs[len(runs)-1].last = i
			continue
		}
		runs = append(runs, stopRun{first: i, last: i})
	}

	// Merge runs separated by a short timestamp gap; a light traffic burst
	// between two halts is still one stop.
	merged := runs[:0]
	for _, run := range runs {
		if len(merged) > 0 {
			prev := &merged[len(merged)-1]
			gap := locations[run.first].Timestamp.Sub(locations[prev.last].Timestamp)
			if gap <= a.cfg.MaxStopMergeGap {
				prev.last = run.last
				continue
			}
		}
		merged = append(merged, run)
	}

	stops := []models.LocationStop{}
	for _, run := range merged {
		start := locations[run.first].Timestamp
		end := locations[run.last].Timestamp
		duration := end.Sub(start)
		if duration < a.cfg.MinStopDuration {
			continue
		}
		stops = append(stops, models.LocationStop{
			ID:        uuid.New().String(),
			StartTime: start,
			EndTime:   end,
			Duration:  duration.Minutes(),
			Location: models.AlertLocation{
				Latitude:  locations[run.first].Latitude,
				Longitude: locations[run.first].Longitude,
			},
		})
	}
	return stops
}
