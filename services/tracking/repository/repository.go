package repository

import (
	"github.com/caravelo/fleettrack/internal/pkg/database"
	"github.com/caravelo/fleettrack/services/tracking"
	"github.com/jmoiron/sqlx"
)

// trackingRepo implements tracking.TrackingRepo over Redis (live positions,
// alert audit, snapshot cache) and Postgres (ping history)
type trackingRepo struct {
	redisClient *database.RedisClient
	db          *sqlx.DB
}

// NewTrackingRepository creates a new tracking repository
func NewTrackingRepository(redisClient *database.RedisClient, db *sqlx.DB) tracking.TrackingRepo {
	return &trackingRepo{
		redisClient: redisClient,
		db:          db,
	}
}
