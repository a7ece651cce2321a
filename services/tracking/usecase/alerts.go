package usecase

import (
	"sync"
	"time"

	"github.com/caravelo/fleettrack/internal/pkg/models"
	"github.com/caravelo/fleettrack/services/tracking"
	"github.com/google/uuid"
)

// DecisionKind classifies the outcome of evaluating one reading
type DecisionKind int

const (
	// NoViolation means the reading is within the speed limit
	NoViolation DecisionKind = iota
	// NewAlert means a new alert was created for the vehicle
	NewAlert
	// UpdateExisting means the vehicle's unacknowledged alert was updated
	// in place
	UpdateExisting
)

// AlertDecision is the result of evaluating a GPS reading against a speed
// limit
type AlertDecision struct {
	Kind  DecisionKind
	Alert *models.SpeedAlert
}

// AlertEngine owns the live speed alert set. It enforces the dedup
// invariant: at most one unacknowledged alert per vehicle at any time.
// Acknowledged alerts are kept as an append-only audit trail.
type AlertEngine struct {
	criticalFactor float64

	mu       sync.Mutex
	unacked  map[string]*models.SpeedAlert // vehicle id -> live alert
	byID     map[string]*models.SpeedAlert // alert id -> alert (live + audit)
	auditLog []*models.SpeedAlert
}

// NewAlertEngine creates an alert engine. criticalFactor is the multiple of
// the speed limit at which a violation escalates to critical.
func NewAlertEngine(criticalFactor float64) *AlertEngine {
	if criticalFactor <= 1 {
		criticalFactor = 1.2
	}
	return &AlertEngine{
		criticalFactor: criticalFactor,
		unacked:        make(map[string]*models.SpeedAlert),
		byID:           make(map[string]*models.SpeedAlert),
	}
}

// severityFor bands an exceedance using the current reading only
func (e *AlertEngine) severityFor(speed, limit float64) models.AlertSeverity {
	if speed >= limit*e.criticalFactor {
		return models.SeverityCritical
	}
	return models.SeverityWarning
}

// Evaluate checks one reading against the vehicle's speed limit and applies
// the alert lifecycle. While an unacknowledged alert exists for the vehicle,
// a violating reading updates it in place instead of creating a duplicate.
func (e *AlertEngine) Evaluate(reading *models.GPSLocation, plate string, limit float64) AlertDecision {
	if limit <= 0 || reading.Speed <= limit {
		return AlertDecision{Kind: NoViolation}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	severity := e.severityFor(reading.Speed, limit)

	if existing, ok := e.unacked[reading.VehicleID]; ok {
		existing.CurrentSpeed = reading.Speed
		existing.Timestamp = reading.Timestamp
		existing.Severity = severity
		existing.Location = models.AlertLocation{
			Latitude:  reading.Latitude,
			Longitude: reading.Longitude,
		}
		return AlertDecision{Kind: UpdateExisting, Alert: copyAlert(existing)}
	}

	alert := &models.SpeedAlert{
		ID:           uuid.New().String(),
		VehicleID:    reading.VehicleID,
		Plate:        plate,
		CurrentSpeed: reading.Speed,
		SpeedLimit:   limit,
		Location: models.AlertLocation{
			Latitude:  reading.Latitude,
			Longitude: reading.Longitude,
		},
		Timestamp: reading.Timestamp,
		Severity:  severity,
	}
	e.unacked[reading.VehicleID] = alert
	e.byID[alert.ID] = alert

	return AlertDecision{Kind: NewAlert, Alert: copyAlert(alert)}
}

// Acknowledge marks an alert as acknowledged. The transition is one-way and
// idempotent: acknowledging twice is a no-op. Unknown ids fail with
// ErrAlertNotFound.
func (e *AlertEngine) Acknowledge(alertID string) (*models.SpeedAlert, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	alert, ok := e.byID[alertID]
	if !ok {
		return nil, tracking.ErrAlertNotFound
	}
	if alert.Acknowledged {
		return copyAlert(alert), nil
	}

	alert.Acknowledged = true
	delete(e.unacked, alert.VehicleID)
	e.auditLog = append(e.auditLog, alert)

	return copyAlert(alert), nil
}

// Reconcile merges provider-fetched alerts into the engine without breaking
// local identities. A fetched unacknowledged alert for a vehicle that
// already has a live local alert updates it in place; anything else is
// adopted as-is.
func (e *AlertEngine) Reconcile(fetched []models.SpeedAlert) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range fetched {
		remote := fetched[i]

		if remote.Acknowledged {
			if local, ok := e.byID[remote.ID]; ok {
				if !local.Acknowledged {
					local.Acknowledged = true
					delete(e.unacked, local.VehicleID)
					e.auditLog = append(e.auditLog, local)
				}
				continue
			}
			adopted := remote
			e.byID[adopted.ID] = &adopted
			e.auditLog = append(e.auditLog, &adopted)
			continue
		}

		if local, ok := e.unacked[remote.VehicleID]; ok {
			local.CurrentSpeed = remote.CurrentSpeed
			local.Timestamp = remote.Timestamp
			local.Severity = remote.Severity
			local.Location = remote.Location
			continue
		}

		adopted := remote
		e.unacked[adopted.VehicleID] = &adopted
		e.byID[adopted.ID] = &adopted
	}
}

// Alerts returns the current alert set, live alerts first, then the audit
// trail in acknowledgement order
func (e *AlertEngine) Alerts() []models.SpeedAlert {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.SpeedAlert, 0, len(e.unacked)+len(e.auditLog))
	for _, alert := range e.unacked {
		out = append(out, *alert)
	}
	for _, alert := range e.auditLog {
		out = append(out, *alert)
	}
	return out
}

// ActiveCount returns the number of unacknowledged alerts
func (e *AlertEngine) ActiveCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.unacked)
}

// ActiveForVehicle returns the live alert for a vehicle, if any
func (e *AlertEngine) ActiveForVehicle(vehicleID string) (*models.SpeedAlert, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	alert, ok := e.unacked[vehicleID]
	if !ok {
		return nil, false
	}
	return copyAlert(alert), true
}

func copyAlert(alert *models.SpeedAlert) *models.SpeedAlert {
	clone := *alert
	return &clone
}

// touchTimestamp fills a zero reading timestamp so alerts always carry an
// instant
func touchTimestamp(reading *models.GPSLocation) {
	if reading.Timestamp.IsZero() {
		reading.Timestamp = time.Now().UTC()
	}
}
