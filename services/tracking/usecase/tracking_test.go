package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/caravelo/fleettrack/internal/pkg/models"
	"github.com/caravelo/fleettrack/services/tracking"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestGetSnapshot_UnavailableBeforeFirstPoll(t *testing.T) {
	// Arrange
	uc, _, _, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	// Act
	snapshot, err := uc.GetSnapshot(context.Background())

	// Assert
	assert.ErrorIs(t, err, tracking.ErrSnapshotUnavailable)
	assert.Nil(t, snapshot)
}

func TestGetSnapshot_MarksStaleVehiclesOffline(t *testing.T) {
	// Arrange - one fresh vehicle, one silent past the staleness window
	uc, _, _, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	now := time.Now()
	seedSnapshot(uc, []models.VehicleTracking{
		{VehicleID: "vehicle-1", IsOnline: true, LastUpdate: now},
		{VehicleID: "vehicle-2", IsOnline: true, LastUpdate: now.Add(-2 * time.Minute)},
	})

	// Act
	snapshot, err := uc.GetSnapshot(context.Background())

	// Assert - staleness projected onto the read, published state untouched
	assert.NoError(t, err)
	assert.True(t, snapshot.Vehicles[0].IsOnline)
	assert.False(t, snapshot.Vehicles[1].IsOnline)
	assert.True(t, uc.scheduler.Current().Vehicles[1].IsOnline)
}

func TestGetVehicle_Found(t *testing.T) {
	// Arrange
	uc, _, _, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	seedSnapshot(uc, []models.VehicleTracking{
		{
			VehicleID:       "vehicle-1",
			Plate:           "B 1234 XYZ",
			IsOnline:        true,
			LastUpdate:      time.Now(),
			CurrentLocation: &models.GPSLocation{Speed: 48},
		},
	})

	// Act
	vehicle, err := uc.GetVehicle(context.Background(), "vehicle-1")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "B 1234 XYZ", vehicle.Plate)
	assert.Equal(t, 48.0, vehicle.CurrentLocation.Speed)
}

func TestGetVehicle_FillsLocationFromLiveStore(t *testing.T) {
	// Arrange - the provider omitted the position; the ingest pipeline's
	// latest reading fills the gap
	uc, mockRepo, _, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	seedSnapshot(uc, []models.VehicleTracking{
		{VehicleID: "vehicle-1", Plate: "B 1234 XYZ", IsOnline: true, LastUpdate: time.Now()},
	})

	latest := &models.GPSLocation{
		VehicleID: "vehicle-1",
		Latitude:  -6.1750,
		Longitude: 106.8270,
		Speed:     52,
	}
	mockRepo.EXPECT().GetLatestPosition(gomock.Any(), "vehicle-1").Return(latest, nil)

	// Act
	vehicle, err := uc.GetVehicle(context.Background(), "vehicle-1")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, latest, vehicle.CurrentLocation)
}

func TestGetVehicle_LiveStoreMissIsNotFatal(t *testing.T) {
	// Arrange - no stored position either; the vehicle is still returned
	uc, mockRepo, _, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	seedSnapshot(uc, []models.VehicleTracking{
		{VehicleID: "vehicle-1", Plate: "B 1234 XYZ", LastUpdate: time.Now()},
	})

	mockRepo.EXPECT().
		GetLatestPosition(gomock.Any(), "vehicle-1").
		Return(nil, errors.New("no position data"))

	// Act
	vehicle, err := uc.GetVehicle(context.Background(), "vehicle-1")

	// Assert
	assert.NoError(t, err)
	assert.Nil(t, vehicle.CurrentLocation)
}

func TestGetVehicle_NotFound(t *testing.T) {
	// Arrange
	uc, _, _, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	seedSnapshot(uc, []models.VehicleTracking{
		{VehicleID: "vehicle-1", LastUpdate: time.Now()},
	})

	// Act
	vehicle, err := uc.GetVehicle(context.Background(), "vehicle-9")

	// Assert
	assert.ErrorIs(t, err, tracking.ErrVehicleNotFound)
	assert.Nil(t, vehicle)
}

func TestGetDashboardStats_RecomputedFromSnapshot(t *testing.T) {
	// Arrange
	uc, _, _, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	now := time.Now()
	seedSnapshot(uc, []models.VehicleTracking{
		{
			VehicleID:       "vehicle-1",
			IsOnline:        true,
			LastUpdate:      now,
			CurrentLocation: &models.GPSLocation{Speed: 50},
		},
		{VehicleID: "vehicle-2", LastUpdate: now},
	})

	// Act
	stats, err := uc.GetDashboardStats(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 2, stats.TotalVehicles)
	assert.Equal(t, 1, stats.ActiveVehicles)
	assert.InDelta(t, 50.0, stats.AverageSpeed, 0.001)
}

func TestGetAlerts_FilterByAcknowledged(t *testing.T) {
	// Arrange - one live and one acknowledged alert
	uc, _, _, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	first := uc.engine.Evaluate(&models.GPSLocation{
		VehicleID: "vehicle-1", Speed: 70, Timestamp: time.Now(),
	}, "B 1111 AA", 60)
	_, err := uc.engine.Acknowledge(first.Alert.ID)
	assert.NoError(t, err)

	uc.engine.Evaluate(&models.GPSLocation{
		VehicleID: "vehicle-2", Speed: 80, Timestamp: time.Now(),
	}, "B 2222 BB", 60)

	// Act
	all, err := uc.GetAlerts(context.Background(), nil)
	assert.NoError(t, err)

	acked := true
	acknowledged, err := uc.GetAlerts(context.Background(), &acked)
	assert.NoError(t, err)

	live := false
	unacknowledged, err := uc.GetAlerts(context.Background(), &live)
	assert.NoError(t, err)

	// Assert
	assert.Len(t, all, 2)
	assert.Len(t, acknowledged, 1)
	assert.True(t, acknowledged[0].Acknowledged)
	assert.Len(t, unacknowledged, 1)
	assert.Equal(t, "vehicle-2", unacknowledged[0].VehicleID)
}
