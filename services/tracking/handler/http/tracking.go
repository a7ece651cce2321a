package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/caravelo/fleettrack/internal/pkg/logger"
	"github.com/caravelo/fleettrack/internal/pkg/models"
	"github.com/caravelo/fleettrack/internal/utils"
	"github.com/caravelo/fleettrack/services/tracking"
	"github.com/labstack/echo/v4"
)

// TrackingHandler handles HTTP requests for tracking operations
type TrackingHandler struct {
	trackingUC tracking.TrackingUC
}

// NewTrackingHandler creates a new tracking HTTP handler
func NewTrackingHandler(trackingUC tracking.TrackingUC) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: trackingUC,
	}
}

// GetTracking returns the current fleet tracking snapshot
func (h *TrackingHandler) GetTracking(c echo.Context) error {
	snapshot, err := h.trackingUC.GetSnapshot(c.Request().Context())
	if err != nil {
		if errors.Is(err, tracking.ErrSnapshotUnavailable) {
			return utils.ServiceUnavailableResponse(c, "tracking data not available yet")
		}
		logger.Error("Failed to get tracking snapshot", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get tracking data")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tracking data retrieved", snapshot.Vehicles)
}

// GetVehicleTracking returns one vehicle's tracking state
func (h *TrackingHandler) GetVehicleTracking(c echo.Context) error {
	vehicleID := c.Param("id")
	if vehicleID == "" {
		return utils.BadRequestResponse(c, "vehicle id is required")
	}

	vehicle, err := h.trackingUC.GetVehicle(c.Request().Context(), vehicleID)
	if err != nil {
		if errors.Is(err, tracking.ErrVehicleNotFound) {
			return utils.NotFoundResponse(c, "vehicle not found")
		}
		if errors.Is(err, tracking.ErrSnapshotUnavailable) {
			return utils.ServiceUnavailableResponse(c, "tracking data not available yet")
		}
		logger.Error("Failed to get vehicle tracking",
			logger.String("vehicle_id", vehicleID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get vehicle tracking")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicle tracking retrieved", vehicle)
}

// GetAlerts returns the alert set, optionally filtered by acknowledgement
func (h *TrackingHandler) GetAlerts(c echo.Context) error {
	var acknowledged *bool
	if raw := c.QueryParam("acknowledged"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "acknowledged must be a boolean")
		}
		acknowledged = &value
	}

	alerts, err := h.trackingUC.GetAlerts(c.Request().Context(), acknowledged)
	if err != nil {
		logger.Error("Failed to get alerts", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get alerts")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Alerts retrieved", alerts)
}

// AcknowledgeAlert marks an alert as acknowledged
func (h *TrackingHandler) AcknowledgeAlert(c echo.Context) error {
	alertID := c.Param("id")
	if alertID == "" {
		return utils.BadRequestResponse(c, "alert id is required")
	}

	if err := h.trackingUC.AcknowledgeAlert(c.Request().Context(), alertID); err != nil {
		if errors.Is(err, tracking.ErrAlertNotFound) {
			return utils.NotFoundResponse(c, "alert not found")
		}
		logger.Error("Failed to acknowledge alert",
			logger.String("alert_id", alertID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to acknowledge alert")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Alert acknowledged", map[string]string{"alert_id": alertID})
}

// GetDashboardStats returns the fleet-wide dashboard counters
func (h *TrackingHandler) GetDashboardStats(c echo.Context) error {
	stats, err := h.trackingUC.GetDashboardStats(c.Request().Context())
	if err != nil {
		if errors.Is(err, tracking.ErrSnapshotUnavailable) {
			return utils.ServiceUnavailableResponse(c, "tracking data not available yet")
		}
		logger.Error("Failed to get dashboard stats", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get dashboard stats")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Dashboard stats retrieved", stats)
}

// GetLocationHistory returns filtered location histories with route
// aggregates
func (h *TrackingHandler) GetLocationHistory(c echo.Context) error {
	filters, err := parseFilters(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	histories, err := h.trackingUC.GetLocationHistory(c.Request().Context(), filters)
	if err != nil {
		if errors.Is(err, tracking.ErrInvalidRange) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to get location history", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get location history")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location history retrieved", histories)
}

// parseFilters reads TrackingFilters from query parameters. Dates accept
// RFC 3339 or plain dates; plain end dates extend to the end of the day so
// the range stays inclusive.
func parseFilters(c echo.Context) (models.TrackingFilters, error) {
	filters := models.TrackingFilters{
		VehicleID: c.QueryParam("vehicle_id"),
	}

	start, err := parseDate(c.QueryParam("start_date"), false)
	if err != nil {
		return filters, err
	}
	filters.StartDate = start

	end, err := parseDate(c.QueryParam("end_date"), true)
	if err != nil {
		return filters, err
	}
	filters.EndDate = end

	if raw := c.QueryParam("speed_min"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filters, errors.New("speed_min must be a number")
		}
		filters.SpeedMin = &value
	}
	if raw := c.QueryParam("speed_max"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filters, errors.New("speed_max must be a number")
		}
		filters.SpeedMax = &value
	}

	return filters, nil
}

func parseDate(raw string, endOfDay bool) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("start_date and end_date are required")
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, errors.New("dates must be RFC 3339 or YYYY-MM-DD")
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
