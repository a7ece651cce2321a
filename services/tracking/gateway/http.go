package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/caravelo/fleettrack/internal/pkg/circuitbreaker"
	httpclient "github.com/caravelo/fleettrack/internal/pkg/http"
	"github.com/caravelo/fleettrack/internal/pkg/models"
	"github.com/caravelo/fleettrack/services/tracking"
)

// telemetryGW is the HTTP client for the upstream telemetry provider. All
// requests run behind one circuit breaker: a flapping provider fails fast
// and the scheduler keeps serving the previous snapshot.
type telemetryGW struct {
	client  *httpclient.Client
	breaker *circuitbreaker.CircuitBreaker
}

// NewTelemetryGW creates a telemetry provider gateway
func NewTelemetryGW(cfg models.TelemetryConfig) tracking.TelemetryGW {
	breakerCfg := circuitbreaker.DefaultConfig("telemetry-provider")
	breakerCfg.IsFailure = func(err error) bool {
		if err == nil {
			return false
		}
		// 4xx responses are the provider answering; only transport
		// failures and 5xx count against the breaker.
		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) && statusErr.Code < http.StatusInternalServerError {
			return false
		}
		return true
	}

	return &telemetryGW{
		client:  httpclient.NewClient(cfg.BaseURL, cfg.APIKey, cfg.Timeout),
		breaker: circuitbreaker.New(breakerCfg),
	}
}

// FetchTracking retrieves the current fleet tracking states
func (g *telemetryGW) FetchTracking(ctx context.Context) ([]models.VehicleTracking, error) {
	var out []models.VehicleTracking
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.client.GetJSON(ctx, "/tracking", &out)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tracking: %w", err)
	}
	return out, nil
}

// FetchAlerts retrieves the current speed alert set
func (g *telemetryGW) FetchAlerts(ctx context.Context) ([]models.SpeedAlert, error) {
	var out []models.SpeedAlert
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.client.GetJSON(ctx, "/alerts", &out)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch alerts: %w", err)
	}
	return out, nil
}

// FetchDashboardStats retrieves the provider-side fleet counters
func (g *telemetryGW) FetchDashboardStats(ctx context.Context) (models.DashboardStats, error) {
	var out models.DashboardStats
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.client.GetJSON(ctx, "/dashboard/stats", &out)
	})
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("failed to fetch dashboard stats: %w", err)
	}
	return out, nil
}

// FetchLocationHistory retrieves location histories matching the filters.
// The provider may return raw series without aggregates.
func (g *telemetryGW) FetchLocationHistory(ctx context.Context, filters models.TrackingFilters) ([]models.LocationHistory, error) {
	params := url.Values{}
	params.Set("start_date", filters.StartDate.Format(time.RFC3339))
	params.Set("end_date", filters.EndDate.Format(time.RFC3339))
	if filters.VehicleID != "" {
		params.Set("vehicle_id", filters.VehicleID)
	}
	if filters.SpeedMin != nil {
		params.Set("speed_min", strconv.FormatFloat(*filters.SpeedMin, 'f', -1, 64))
	}
	if filters.SpeedMax != nil {
		params.Set("speed_max", strconv.FormatFloat(*filters.SpeedMax, 'f', -1, 64))
	}

	var out []models.LocationHistory
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.client.GetJSON(ctx, "/history?"+params.Encode(), &out)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch location history: %w", err)
	}
	return out, nil
}

// SubmitAcknowledge forwards an alert acknowledgement to the provider
func (g *telemetryGW) SubmitAcknowledge(ctx context.Context, alertID string) error {
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.client.PostJSON(ctx, fmt.Sprintf("/alerts/%s/acknowledge", alertID), nil, nil)
	})
	if err != nil {
		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			return tracking.ErrAlertNotFound
		}
		return fmt.Errorf("failed to submit acknowledge: %w", err)
	}
	return nil
}
