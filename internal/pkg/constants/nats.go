package constants

// NATS subjects
const (
	// SubjectLocationPing carries raw GPS pings from the ingest edge
	SubjectLocationPing = "telemetry.location.ping"
	// SubjectSnapshotPublished announces a newly published tracking snapshot
	SubjectSnapshotPublished = "tracking.snapshot.published"
)

// NSQ topics
const (
	// TopicSpeedAlerts carries speed alert lifecycle events for
	// notification consumers
	TopicSpeedAlerts = "fleet_speed_alerts"
)
