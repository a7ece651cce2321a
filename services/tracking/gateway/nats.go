package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/caravelo/fleettrack/internal/pkg/constants"
	"github.com/caravelo/fleettrack/internal/pkg/models"
	natspkg "github.com/caravelo/fleettrack/internal/pkg/nats"
	nsqpkg "github.com/caravelo/fleettrack/internal/pkg/nsq"
	"github.com/caravelo/fleettrack/internal/pkg/retry"
	"github.com/caravelo/fleettrack/services/tracking"
)

// eventGW publishes tracking lifecycle events: snapshots on NATS, alert
// events on NSQ. Broker publishes are retried with exponential backoff
// since both brokers recover from short outages.
type eventGW struct {
	natsClient  *natspkg.Client
	nsqProducer *nsqpkg.Producer
	alertsTopic string
	retrier     *retry.Retrier
}

// NewEventGW creates the event gateway. nsqProducer may be nil when NSQ is
// not configured; alert events are then dropped.
func NewEventGW(natsClient *natspkg.Client, nsqProducer *nsqpkg.Producer, alertsTopic string) tracking.EventGW {
	if alertsTopic == "" {
		alertsTopic = constants.TopicSpeedAlerts
	}
	return &eventGW{
		natsClient:  natsClient,
		nsqProducer: nsqProducer,
		alertsTopic: alertsTopic,
		retrier:     retry.NewWithDefaults(),
	}
}

// PublishSnapshot announces a newly published tracking snapshot on NATS
func (g *eventGW) PublishSnapshot(ctx context.Context, snapshot models.TrackingSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.natsClient.Publish(constants.SubjectSnapshotPublished, data)
	})
}

// PublishAlertEvent pushes a speed alert lifecycle event to NSQ
func (g *eventGW) PublishAlertEvent(ctx context.Context, event models.AlertEvent) error {
	if g.nsqProducer == nil {
		return nil
	}
	return g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.nsqProducer.Publish(g.alertsTopic, event)
	})
}
