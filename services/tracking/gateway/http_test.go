package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/caravelo/fleettrack/internal/pkg/models"
	"github.com/caravelo/fleettrack/services/tracking"
)

func newTestGW(server *httptest.Server) tracking.TelemetryGW {
	return NewTelemetryGW(models.TelemetryConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	})
}

func TestFetchTracking_Success(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tracking", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))

		vehicles := []models.VehicleTracking{
			{VehicleID: "vehicle-1", Plate: "B 1234 XYZ", IsOnline: true, SpeedLimit: 60},
		}
		json.NewEncoder(w).Encode(vehicles)
	}))
	defer server.Close()

	gw := newTestGW(server)

	// Act
	vehicles, err := gw.FetchTracking(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.Len(t, vehicles, 1)
	assert.Equal(t, "B 1234 XYZ", vehicles[0].Plate)
	assert.Equal(t, 60.0, vehicles[0].SpeedLimit)
}

func TestFetchTracking_ServerError(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	gw := newTestGW(server)

	// Act
	vehicles, err := gw.FetchTracking(context.Background())

	// Assert
	assert.Error(t, err)
	assert.Nil(t, vehicles)
	assert.Contains(t, err.Error(), "failed to fetch tracking")
}

func TestFetchDashboardStats_Success(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dashboard/stats", r.URL.Path)
		json.NewEncoder(w).Encode(models.DashboardStats{
			TotalVehicles:  10,
			ActiveVehicles: 7,
			AverageSpeed:   38.5,
		})
	}))
	defer server.Close()

	gw := newTestGW(server)

	// Act
	stats, err := gw.FetchDashboardStats(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 10, stats.TotalVehicles)
	assert.Equal(t, 7, stats.ActiveVehicles)
	assert.Equal(t, 38.5, stats.AverageSpeed)
}

func TestFetchLocationHistory_QueryParams(t *testing.T) {
	// Arrange
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	speedMin := 10.0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/history", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "vehicle-1", query.Get("vehicle_id"))
		assert.Equal(t, start.Format(time.RFC3339), query.Get("start_date"))
		assert.Equal(t, end.Format(time.RFC3339), query.Get("end_date"))
		assert.Equal(t, "10", query.Get("speed_min"))
		assert.Empty(t, query.Get("speed_max"))

		json.NewEncoder(w).Encode([]models.LocationHistory{{VehicleID: "vehicle-1"}})
	}))
	defer server.Close()

	gw := newTestGW(server)

	// Act
	histories, err := gw.FetchLocationHistory(context.Background(), models.TrackingFilters{
		VehicleID: "vehicle-1",
		StartDate: start,
		EndDate:   end,
		SpeedMin:  &speedMin,
	})

	// Assert
	assert.NoError(t, err)
	assert.Len(t, histories, 1)
}

func TestSubmitAcknowledge_Success(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/alerts/alert-1/acknowledge", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	gw := newTestGW(server)

	// Act
	err := gw.SubmitAcknowledge(context.Background(), "alert-1")

	// Assert
	assert.NoError(t, err)
}

func TestSubmitAcknowledge_NotFound(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	gw := newTestGW(server)

	// Act
	err := gw.SubmitAcknowledge(context.Background(), "missing")

	// Assert
	assert.ErrorIs(t, err, tracking.ErrAlertNotFound)
}
