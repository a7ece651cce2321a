package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/caravelo/fleettrack/internal/pkg/models"
	"github.com/caravelo/fleettrack/internal/utils"
	"github.com/caravelo/fleettrack/services/tracking"
	"github.com/caravelo/fleettrack/services/tracking/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func newTestUC(t *testing.T) (*trackingUC, *mocks.MockTrackingRepo, *mocks.MockTelemetryGW, *mocks.MockEventGW, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockTrackingRepo(ctrl)
	mockGW := mocks.NewMockTelemetryGW(ctrl)
	mockEventGW := mocks.NewMockEventGW(ctrl)

	uc := NewTrackingUC(testConfig(), mockRepo, mockGW, mockEventGW).(*trackingUC)
	return uc, mockRepo, mockGW, mockEventGW, ctrl
}

// seedSnapshot installs a published snapshot without running the polling
// loop
func seedSnapshot(uc *trackingUC, vehicles []models.VehicleTracking) {
	uc.scheduler.current = &models.TrackingSnapshot{
		Generation: 1,
		Vehicles:   vehicles,
		FetchedAt:  time.Now(),
	}
}

func TestIngestPing_InvalidCoordinate(t *testing.T) {
	// Arrange - no repo expectations: validation must fail first
	uc, _, _, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	location := &models.GPSLocation{
		VehicleID: "vehicle-1",
		Latitude:  95.0, // out of range
		Longitude: 106.8270,
	}

	// Act
	err := uc.IngestPing(context.Background(), location)

	// Assert
	assert.ErrorIs(t, err, utils.ErrInvalidCoordinate)
}

func TestIngestPing_NoViolation(t *testing.T) {
	// Arrange
	uc, mockRepo, _, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	seedSnapshot(uc, []models.VehicleTracking{
		{VehicleID: "vehicle-1", Plate: "B 1234 XYZ", SpeedLimit: 60},
	})

	location := &models.GPSLocation{
		VehicleID: "vehicle-1",
		Latitude:  -6.1750,
		Longitude: 106.8270,
		Speed:     40,
		Direction: 370, // wraps to 10
	}

	mockRepo.EXPECT().StorePing(gomock.Any(), location).Return(nil)
	mockRepo.EXPECT().UpdateLatestPosition(gomock.Any(), location).Return(nil)

	// Act
	err := uc.IngestPing(context.Background(), location)

	// Assert - id and timestamp were filled, bearing was normalized
	assert.NoError(t, err)
	assert.NotEmpty(t, location.ID)
	assert.False(t, location.Timestamp.IsZero())
	assert.InDelta(t, 10.0, location.Direction, 0.001)
	assert.Equal(t, 0, uc.engine.ActiveCount())
}

func TestIngestPing_ViolationEmitsCreatedEvent(t *testing.T) {
	// Arrange
	uc, mockRepo, _, mockEventGW, ctrl := newTestUC(t)
	defer ctrl.Finish()

	seedSnapshot(uc, []models.VehicleTracking{
		{VehicleID: "vehicle-1", Plate: "B 1234 XYZ", SpeedLimit: 60},
	})

	location := &models.GPSLocation{
		VehicleID: "vehicle-1",
		Latitude:  -6.1750,
		Longitude: 106.8270,
		Speed:     75,
	}

	mockRepo.EXPECT().StorePing(gomock.Any(), location).Return(nil)
	mockRepo.EXPECT().UpdateLatestPosition(gomock.Any(), location).Return(nil)
	mockRepo.EXPECT().StoreAlert(gomock.Any(), gomock.Any()).Return(nil)
	mockEventGW.EXPECT().
		PublishAlertEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.AlertEvent) error {
			assert.Equal(t, models.AlertEventCreated, event.Type)
			assert.Equal(t, "vehicle-1", event.Alert.VehicleID)
			assert.Equal(t, "B 1234 XYZ", event.Alert.Plate)
			assert.Equal(t, 75.0, event.Alert.CurrentSpeed)
			assert.Equal(t, models.SeverityCritical, event.Alert.Severity)
			return nil
		})

	// Act
	err := uc.IngestPing(context.Background(), location)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 1, uc.engine.ActiveCount())
}

func TestIngestPing_RepeatedViolationEmitsUpdatedEvent(t *testing.T) {
	// Arrange - the vehicle already carries a live alert
	uc, mockRepo, _, mockEventGW, ctrl := newTestUC(t)
	defer ctrl.Finish()

	seedSnapshot(uc, []models.VehicleTracking{
		{VehicleID: "vehicle-1", Plate: "B 1234 XYZ", SpeedLimit: 60},
	})
	uc.engine.Evaluate(&models.GPSLocation{
		VehicleID: "vehicle-1",
		Speed:     70,
		Timestamp: time.Now(),
	}, "B 1234 XYZ", 60)

	location := &models.GPSLocation{
		VehicleID: "vehicle-1",
		Latitude:  -6.1750,
		Longitude: 106.8270,
		Speed:     68,
	}

	mockRepo.EXPECT().StorePing(gomock.Any(), location).Return(nil)
	mockRepo.EXPECT().UpdateLatestPosition(gomock.Any(), location).Return(nil)
	mockRepo.EXPECT().StoreAlert(gomock.Any(), gomock.Any()).Return(nil)
	mockEventGW.EXPECT().
		PublishAlertEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.AlertEvent) error {
			assert.Equal(t, models.AlertEventUpdated, event.Type)
			assert.Equal(t, 68.0, event.Alert.CurrentSpeed)
			return nil
		})

	// Act
	err := uc.IngestPing(context.Background(), location)

	// Assert - still exactly one live alert
	assert.NoError(t, err)
	assert.Equal(t, 1, uc.engine.ActiveCount())
}

func TestIngestPing_UnknownVehicleSkipsEvaluation(t *testing.T) {
	// Arrange - the snapshot does not contain the vehicle, so there is no
	// speed limit to check against
	uc, mockRepo, _, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	seedSnapshot(uc, []models.VehicleTracking{
		{VehicleID: "vehicle-2", SpeedLimit: 60},
	})

	location := &models.GPSLocation{
		VehicleID: "vehicle-1",
		Latitude:  -6.1750,
		Longitude: 106.8270,
		Speed:     120,
	}

	mockRepo.EXPECT().StorePing(gomock.Any(), location).Return(nil)
	mockRepo.EXPECT().UpdateLatestPosition(gomock.Any(), location).Return(nil)

	// Act
	err := uc.IngestPing(context.Background(), location)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 0, uc.engine.ActiveCount())
}

func TestIngestPing_StoreFailure(t *testing.T) {
	// Arrange
	uc, mockRepo, _, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	location := &models.GPSLocation{
		VehicleID: "vehicle-1",
		Latitude:  -6.1750,
		Longitude: 106.8270,
		Speed:     40,
	}

	storeErr := errors.New("database unavailable")
	mockRepo.EXPECT().StorePing(gomock.Any(), location).Return(storeErr)

	// Act
	err := uc.IngestPing(context.Background(), location)

	// Assert
	assert.ErrorIs(t, err, storeErr)
}

func TestAcknowledgeAlert_FullFlow(t *testing.T) {
	// Arrange - a live alert created through the engine
	uc, mockRepo, mockGW, mockEventGW, ctrl := newTestUC(t)
	defer ctrl.Finish()

	decision := uc.engine.Evaluate(&models.GPSLocation{
		VehicleID: "vehicle-1",
		Speed:     70,
		Timestamp: time.Now(),
	}, "B 1234 XYZ", 60)

	mockRepo.EXPECT().StoreAlert(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().SubmitAcknowledge(gomock.Any(), decision.Alert.ID).Return(nil)
	mockEventGW.EXPECT().
		PublishAlertEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.AlertEvent) error {
			assert.Equal(t, models.AlertEventAcknowledged, event.Type)
			assert.True(t, event.Alert.Acknowledged)
			return nil
		})

	// Act
	err := uc.AcknowledgeAlert(context.Background(), decision.Alert.ID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 0, uc.engine.ActiveCount())
}

func TestAcknowledgeAlert_UpstreamFailureIsNotFatal(t *testing.T) {
	// Arrange - local state stays authoritative when the provider rejects
	// the acknowledge
	uc, mockRepo, mockGW, mockEventGW, ctrl := newTestUC(t)
	defer ctrl.Finish()

	decision := uc.engine.Evaluate(&models.GPSLocation{
		VehicleID: "vehicle-1",
		Speed:     70,
		Timestamp: time.Now(),
	}, "B 1234 XYZ", 60)

	mockRepo.EXPECT().StoreAlert(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().SubmitAcknowledge(gomock.Any(), decision.Alert.ID).Return(errors.New("upstream down"))
	mockEventGW.EXPECT().PublishAlertEvent(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	err := uc.AcknowledgeAlert(context.Background(), decision.Alert.ID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 0, uc.engine.ActiveCount())
}

func TestAcknowledgeAlert_RecoversFromAuditTrail(t *testing.T) {
	// Arrange - the engine lost its state (restart); the alert still lives
	// in the Redis audit trail
	uc, mockRepo, mockGW, mockEventGW, ctrl := newTestUC(t)
	defer ctrl.Finish()

	stored := &models.SpeedAlert{
		ID:           "alert-1",
		VehicleID:    "vehicle-1",
		Plate:        "B 1234 XYZ",
		CurrentSpeed: 75,
		SpeedLimit:   60,
		Severity:     models.SeverityCritical,
	}
	mockRepo.EXPECT().GetAlert(gomock.Any(), "alert-1").Return(stored, nil)
	mockRepo.EXPECT().
		StoreAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *models.SpeedAlert) error {
			assert.True(t, alert.Acknowledged)
			return nil
		})
	mockGW.EXPECT().SubmitAcknowledge(gomock.Any(), "alert-1").Return(nil)
	mockEventGW.EXPECT().
		PublishAlertEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.AlertEvent) error {
			assert.Equal(t, models.AlertEventAcknowledged, event.Type)
			return nil
		})

	// Act
	err := uc.AcknowledgeAlert(context.Background(), "alert-1")

	// Assert
	assert.NoError(t, err)
}

func TestAcknowledgeAlert_AlreadyAcknowledgedInAudit(t *testing.T) {
	// Arrange - re-acknowledging an alert only the audit trail knows is a
	// no-op, same as for a live one
	uc, mockRepo, _, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().
		GetAlert(gomock.Any(), "alert-1").
		Return(&models.SpeedAlert{ID: "alert-1", Acknowledged: true}, nil)

	// Act
	err := uc.AcknowledgeAlert(context.Background(), "alert-1")

	// Assert
	assert.NoError(t, err)
}

func TestAcknowledgeAlert_UnknownEverywhere(t *testing.T) {
	// Arrange - neither the engine nor the audit trail knows the id
	uc, mockRepo, _, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().
		GetAlert(gomock.Any(), "alert-9").
		Return(nil, errors.New("failed to get alert"))

	// Act
	err := uc.AcknowledgeAlert(context.Background(), "alert-9")

	// Assert
	assert.ErrorIs(t, err, tracking.ErrAlertNotFound)
}
