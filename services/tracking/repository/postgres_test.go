package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caravelo/fleettrack/internal/pkg/database"
	"github.com/caravelo/fleettrack/internal/pkg/models"
)

func setupTrackingRepoTest(t *testing.T) (*trackingRepo, sqlmock.Sqlmock, func()) {
	// Create SQL mock
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	// Create sqlx DB with mock
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	// Redis is not exercised by the Postgres paths
	repo := &trackingRepo{
		redisClient: &database.RedisClient{},
		db:          sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestStorePing(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	location := &models.GPSLocation{
		ID:        "ping-1",
		VehicleID: "vehicle-1",
		Latitude:  -6.175392,
		Longitude: 106.827153,
		Speed:     42.5,
		Direction: 170,
		Timestamp: now,
	}

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO gps_locations").
					WithArgs("ping-1", "vehicle-1", -6.175392, 106.827153, 42.5, 170.0, now, nil, nil).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO gps_locations").
					WillReturnError(errors.New("connection reset"))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to store gps ping")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Setup
			repo, mock, cleanup := setupTrackingRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			// Execute
			err := repo.StorePing(context.Background(), location)

			// Assert
			tc.assertFunc(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetLocationSeries(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, series []models.GPSLocation, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{
					"id", "vehicle_id", "latitude", "longitude", "speed",
					"direction", "timestamp", "altitude", "accuracy",
				}).
					AddRow("ping-1", "vehicle-1", -6.1750, 106.8270, 30.0, 90.0, start.Add(time.Hour), nil, nil).
					AddRow("ping-2", "vehicle-1", -6.1760, 106.8275, 45.0, 92.0, start.Add(2*time.Hour), nil, nil)
				mock.ExpectQuery("SELECT (.+) FROM gps_locations WHERE vehicle_id").
					WithArgs("vehicle-1", start, end).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, series []models.GPSLocation, err error) {
				assert.NoError(t, err)
				assert.Len(t, series, 2)
				assert.Equal(t, "ping-1", series[0].ID)
				assert.Equal(t, 45.0, series[1].Speed)
			},
		},
		{
			name: "Empty Result",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{
					"id", "vehicle_id", "latitude", "longitude", "speed",
					"direction", "timestamp", "altitude", "accuracy",
				})
				mock.ExpectQuery("SELECT (.+) FROM gps_locations WHERE vehicle_id").
					WithArgs("vehicle-1", start, end).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, series []models.GPSLocation, err error) {
				assert.NoError(t, err)
				assert.Empty(t, series)
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM gps_locations WHERE vehicle_id").
					WithArgs("vehicle-1", start, end).
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, series []models.GPSLocation, err error) {
				assert.Error(t, err)
				assert.Nil(t, series)
				assert.Contains(t, err.Error(), "failed to query location series")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupTrackingRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			series, err := repo.GetLocationSeries(context.Background(), "vehicle-1", start, end)

			tc.assertFunc(t, series, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListVehicleIDs(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	t.Run("Success", func(t *testing.T) {
		repo, mock, cleanup := setupTrackingRepoTest(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"vehicle_id"}).
			AddRow("vehicle-1").
			AddRow("vehicle-2")
		mock.ExpectQuery("SELECT DISTINCT vehicle_id").
			WithArgs(start, end).
			WillReturnRows(rows)

		ids, err := repo.ListVehicleIDs(context.Background(), start, end)

		assert.NoError(t, err)
		assert.Equal(t, []string{"vehicle-1", "vehicle-2"}, ids)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		repo, mock, cleanup := setupTrackingRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("SELECT DISTINCT vehicle_id").
			WithArgs(start, end).
			WillReturnError(errors.New("database error"))

		ids, err := repo.ListVehicleIDs(context.Background(), start, end)

		assert.Error(t, err)
		assert.Nil(t, ids)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPruneHistory(t *testing.T) {
	cutoff := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		repo, mock, cleanup := setupTrackingRepoTest(t)
		defer cleanup()

		mock.ExpectExec("DELETE FROM gps_locations WHERE timestamp").
			WithArgs(cutoff).
			WillReturnResult(sqlmock.NewResult(0, 128))

		pruned, err := repo.PruneHistory(context.Background(), cutoff)

		assert.NoError(t, err)
		assert.Equal(t, int64(128), pruned)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		repo, mock, cleanup := setupTrackingRepoTest(t)
		defer cleanup()

		mock.ExpectExec("DELETE FROM gps_locations WHERE timestamp").
			WithArgs(cutoff).
			WillReturnError(errors.New("database error"))

		pruned, err := repo.PruneHistory(context.Background(), cutoff)

		assert.Error(t, err)
		assert.Equal(t, int64(0), pruned)
		assert.Contains(t, err.Error(), "failed to prune history")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
