package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caravelo/fleettrack/internal/pkg/models"
	wspkg "github.com/caravelo/fleettrack/internal/pkg/websocket"
)

func dialHub(t *testing.T, hub *wspkg.Hub) (*httptest.Server, *websocket.Conn) {
	e := echo.New()
	e.GET("/ws/tracking", hub.HandleConnection)
	server := httptest.NewServer(e)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/tracking"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)

	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	require.Equal(t, 1, hub.ClientCount())

	return server, conn
}

func TestAlertNotifier_PushesEventToDashboards(t *testing.T) {
	// Arrange - one dashboard connected to the hub
	hub := wspkg.NewHub()
	server, conn := dialHub(t, hub)
	defer server.Close()
	defer conn.Close()

	notifier := &AlertNotifier{hub: hub}

	body, err := json.Marshal(models.AlertEvent{
		Type: models.AlertEventCreated,
		Alert: models.SpeedAlert{
			ID:           "alert-1",
			VehicleID:    "vehicle-1",
			CurrentSpeed: 75,
			SpeedLimit:   60,
			Severity:     models.SeverityCritical,
		},
		Timestamp: time.Now().UTC(),
	})
	require.NoError(t, err)

	// Act
	require.NoError(t, notifier.handleMessage(body))

	// Assert - the dashboard receives the typed alert event
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var event wspkg.Event
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "tracking.alert.created", event.Event)

	alert, ok := event.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "alert-1", alert["id"])
	assert.Equal(t, "vehicle-1", alert["vehicle_id"])
}

func TestAlertNotifier_MalformedMessageRequeued(t *testing.T) {
	// Arrange
	notifier := &AlertNotifier{hub: wspkg.NewHub()}

	// Act & Assert - the error propagates so NSQ requeues the message
	assert.Error(t, notifier.handleMessage([]byte("{not json")))
}

func TestNewAlertNotifier_InertWithoutAddress(t *testing.T) {
	// Arrange & Act - no NSQ configured
	notifier, err := NewAlertNotifier(models.NSQConfig{}, wspkg.NewHub())

	// Assert - the notifier exists but consumes nothing; Close is safe
	assert.NoError(t, err)
	assert.NotNil(t, notifier)
	notifier.Close()
}
