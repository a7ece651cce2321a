package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// VehicleStatus is the lifecycle status of a vehicle in the fleet
type VehicleStatus string

const (
	VehicleStatusActive      VehicleStatus = "active"
	VehicleStatusInactive    VehicleStatus = "inactive"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
)

// UnmarshalJSON rejects status values outside the closed set
func (s *VehicleStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch VehicleStatus(raw) {
	case VehicleStatusActive, VehicleStatusInactive, VehicleStatusMaintenance:
		*s = VehicleStatus(raw)
		return nil
	}
	return fmt.Errorf("invalid vehicle status: %q", raw)
}

// AlertSeverity is the severity band of a speed alert
type AlertSeverity string

const (
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// UnmarshalJSON rejects severity values outside the closed set
func (s *AlertSeverity) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch AlertSeverity(raw) {
	case SeverityWarning, SeverityCritical:
		*s = AlertSeverity(raw)
		return nil
	}
	return fmt.Errorf("invalid alert severity: %q", raw)
}

// GPSLocation represents one timestamped position+speed sample for a vehicle.
// Immutable once recorded.
type GPSLocation struct {
	ID        string    `json:"id" db:"id"`
	VehicleID string    `json:"vehicle_id" db:"vehicle_id"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Speed     float64   `json:"speed" db:"speed"`         // km/h
	Direction float64   `json:"direction" db:"direction"` // degrees [0,360)
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	Altitude  *float64  `json:"altitude,omitempty" db:"altitude"`
	Accuracy  *float64  `json:"accuracy,omitempty" db:"accuracy"`
}

// VehicleTracking is the live tracking state of one vehicle. Instances are
// replaced wholesale on every poll tick, never mutated field by field.
type VehicleTracking struct {
	VehicleID       string        `json:"vehicle_id"`
	Plate           string        `json:"plate"`
	Model           string        `json:"model"`
	CurrentLocation *GPSLocation  `json:"current_location"`
	IsOnline        bool          `json:"is_online"`
	LastUpdate      time.Time     `json:"last_update"`
	Status          VehicleStatus `json:"status"`
	SpeedLimit      float64       `json:"speed_limit"` // km/h
}

// AlertLocation is the position attached to a speed alert or stop
type AlertLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// SpeedAlert records a vehicle exceeding its speed limit. While
// unacknowledged it is updated in place by subsequent violations; once
// acknowledged it becomes part of an append-only audit trail.
type SpeedAlert struct {
	ID           string        `json:"id"`
	VehicleID    string        `json:"vehicle_id"`
	Plate        string        `json:"plate"`
	CurrentSpeed float64       `json:"current_speed"`
	SpeedLimit   float64       `json:"speed_limit"`
	Location     AlertLocation `json:"location"`
	Timestamp    time.Time     `json:"timestamp"`
	Severity     AlertSeverity `json:"severity"`
	Acknowledged bool          `json:"acknowledged"`
}

// LocationStop is a contiguous low-speed span long enough to represent a
// real halt rather than GPS noise. Derived, never persisted on its own.
type LocationStop struct {
	ID        string        `json:"id"`
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Duration  float64       `json:"duration"` // minutes
	Location  AlertLocation `json:"location"`
}

// LocationHistory is a chronologically ordered location series for one
// vehicle plus its derived route aggregates.
type LocationHistory struct {
	VehicleID     string         `json:"vehicle_id"`
	Locations     []GPSLocation  `json:"locations"`
	TotalDistance float64        `json:"total_distance"` // km
	AverageSpeed  float64        `json:"average_speed"`  // km/h
	MaxSpeed      float64        `json:"max_speed"`      // km/h
	TotalTime     float64        `json:"total_time"`     // minutes
	Stops         []LocationStop `json:"stops"`
}

// Aggregated reports whether the history already carries derived values.
// A provider may return raw series only, in which case the aggregates are
// computed locally.
func (h *LocationHistory) Aggregated() bool {
	return h.TotalDistance > 0 || h.AverageSpeed > 0 || h.MaxSpeed > 0 ||
		h.TotalTime > 0 || len(h.Stops) > 0
}

// AlertEventType tags a speed alert lifecycle event
type AlertEventType string

const (
	AlertEventCreated      AlertEventType = "created"
	AlertEventUpdated      AlertEventType = "updated"
	AlertEventAcknowledged AlertEventType = "acknowledged"
)

// AlertEvent is published to notification consumers whenever the alert set
// changes
type AlertEvent struct {
	Type      AlertEventType `json:"type"`
	Alert     SpeedAlert     `json:"alert"`
	Timestamp time.Time      `json:"timestamp"`
}

// TrackingFilters constrains a location history query. StartDate/EndDate
// form an inclusive range.
type TrackingFilters struct {
	VehicleID string    `json:"vehicle_id,omitempty" query:"vehicle_id"`
	StartDate time.Time `json:"start_date" query:"start_date"`
	EndDate   time.Time `json:"end_date" query:"end_date"`
	SpeedMin  *float64  `json:"speed_min,omitempty" query:"speed_min"`
	SpeedMax  *float64  `json:"speed_max,omitempty" query:"speed_max"`
}

// DashboardStats is a pure projection of the current fleet snapshot plus
// alert set. Recomputed on demand, never stored.
type DashboardStats struct {
	TotalVehicles  int     `json:"total_vehicles"`
	ActiveVehicles int     `json:"active_vehicles"`
	AverageSpeed   float64 `json:"average_speed"`
	TotalAlerts    int     `json:"total_alerts"`
	CriticalAlerts int     `json:"critical_alerts"`
}

// TrackingSnapshot is an immutable, internally consistent bundle of
// tracking state, alerts and stats published at one point in time.
// Generation is monotonically increasing across publishes.
type TrackingSnapshot struct {
	Generation uint64            `json:"generation"`
	Vehicles   []VehicleTracking `json:"vehicles"`
	Alerts     []SpeedAlert      `json:"alerts"`
	Stats      DashboardStats    `json:"stats"`
	FetchedAt  time.Time         `json:"fetched_at"`
}
