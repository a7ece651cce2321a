package handler

import (
	"github.com/caravelo/fleettrack/internal/pkg/logger"
	"github.com/caravelo/fleettrack/internal/pkg/models"
	nsqpkg "github.com/caravelo/fleettrack/internal/pkg/nsq"
	wspkg "github.com/caravelo/fleettrack/internal/pkg/websocket"
)

// AlertNotifier consumes alert lifecycle events from NSQ and pushes them to
// connected dashboards. Going through the broker instead of calling the hub
// in-process means notifications also flow for alerts raised by other
// service instances.
type AlertNotifier struct {
	consumer *nsqpkg.Consumer
	hub      *wspkg.Hub
}

// NewAlertNotifier creates the notifier and connects it to NSQ. Without an
// NSQ address the notifier is inert; alert events then reach dashboards
// only through snapshot broadcasts.
func NewAlertNotifier(cfg models.NSQConfig, hub *wspkg.Hub) (*AlertNotifier, error) {
	notifier := &AlertNotifier{hub: hub}
	if cfg.Address == "" {
		return notifier, nil
	}

	consumer, err := nsqpkg.NewConsumer(cfg.AlertsTopic, cfg.ConsumeChannel, cfg.Address, notifier.handleMessage)
	if err != nil {
		return nil, err
	}
	if len(cfg.LookupAddrs) > 0 {
		if err := consumer.ConnectToLookupd(cfg.LookupAddrs); err != nil {
			consumer.Stop()
			return nil, err
		}
	}
	notifier.consumer = consumer

	logger.Info("Alert notifier consuming",
		logger.String("topic", cfg.AlertsTopic),
		logger.String("channel", cfg.ConsumeChannel))
	return notifier, nil
}

// handleMessage fans one alert event out to the connected dashboards
func (n *AlertNotifier) handleMessage(body []byte) error {
	var event models.AlertEvent
	if err := nsqpkg.UnmarshalMessage(body, &event); err != nil {
		return err
	}

	logger.Info("Alert notification",
		logger.String("alert_id", event.Alert.ID),
		logger.String("vehicle_id", event.Alert.VehicleID),
		logger.String("type", string(event.Type)))

	n.hub.BroadcastEvent(wspkg.Event{
		Event: "tracking.alert." + string(event.Type),
		Data:  event.Alert,
	})
	return nil
}

// Close stops the NSQ consumer
func (n *AlertNotifier) Close() {
	if n.consumer != nil {
		n.consumer.Stop()
	}
}
