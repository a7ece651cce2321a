package usecase

import "github.com/caravelo/fleettrack/internal/pkg/models"

// ComputeDashboardStats projects the current fleet snapshot and alert set
// into fleet-wide counters. Vehicles without a current location are
// excluded from the speed mean rather than counted as zero.
func ComputeDashboardStats(vehicles []models.VehicleTracking, alerts []models.SpeedAlert) models.DashboardStats {
	stats := models.DashboardStats{
		TotalVehicles: len(vehicles),
		TotalAlerts:   len(alerts),
	}

	var speedSum float64
	var located int
	for _, vehicle := range vehicles {
		if vehicle.IsOnline {
			stats.ActiveVehicles++
		}
		if vehicle.CurrentLocation != nil {
			speedSum += vehicle.CurrentLocation.Speed
			located++
		}
	}
	if located > 0 {
		stats.AverageSpeed = speedSum / float64(located)
	}

	for _, alert := range alerts {
		if alert.Severity == models.SeverityCritical && !alert.Acknowledged {
			stats.CriticalAlerts++
		}
	}

	return stats
}
