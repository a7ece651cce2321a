package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/caravelo/fleettrack/internal/pkg/constants"
	pkgcontext "github.com/caravelo/fleettrack/internal/pkg/context"
	"github.com/caravelo/fleettrack/internal/pkg/logger"
	"github.com/caravelo/fleettrack/internal/pkg/models"
	natspkg "github.com/caravelo/fleettrack/internal/pkg/nats"
	"github.com/caravelo/fleettrack/services/tracking"
	"github.com/nats-io/nats.go"
)

// PingConsumer consumes raw GPS pings from NATS and feeds them into the
// tracking pipeline. Pings are decoded on the NATS dispatcher goroutine and
// handed to a buffered worker so slow persistence never stalls message
// delivery for the whole subscription.
type PingConsumer struct {
	trackingUC tracking.TrackingUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription

	queue chan *models.GPSLocation
	done  chan struct{}
}

// NewPingConsumer creates a ping consumer with the given ingest buffer. A
// full buffer blocks the dispatcher, which is the backpressure signal.
func NewPingConsumer(trackingUC tracking.TrackingUC, natsClient *natspkg.Client, bufferSize int) *PingConsumer {
	if bufferSize <= 0 {
		bufferSize = 256
	}

	consumer := &PingConsumer{
		trackingUC: trackingUC,
		natsClient: natsClient,
		subs:       make([]*nats.Subscription, 0),
		queue:      make(chan *models.GPSLocation, bufferSize),
		done:       make(chan struct{}),
	}
	go consumer.ingestLoop()

	return consumer
}

// InitConsumers subscribes to the ping subject within the service queue
// group
func (h *PingConsumer) InitConsumers() error {
	sub, err := h.natsClient.QueueSubscribe(constants.SubjectLocationPing, "tracking-service", h.handlePing)
	if err != nil {
		return fmt.Errorf("failed to subscribe to location pings: %w", err)
	}
	h.subs = append(h.subs, sub)

	logger.Info("Subscribed to location pings",
		logger.String("subject", constants.SubjectLocationPing))
	return nil
}

// handlePing decodes one raw GPS ping message and enqueues it for ingest
func (h *PingConsumer) handlePing(msg *nats.Msg) {
	var location models.GPSLocation
	if err := json.Unmarshal(msg.Data, &location); err != nil {
		logger.Error("Failed to unmarshal GPS ping", logger.Err(err))
		return
	}

	h.queue <- &location
}

// ingestLoop drains the ping queue until Close
func (h *PingConsumer) ingestLoop() {
	defer close(h.done)

	for location := range h.queue {
		h.ingest(location)
	}
}

func (h *PingConsumer) ingest(location *models.GPSLocation) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ctx = pkgcontext.WithRequestID(ctx, "")
	ctx = pkgcontext.WithVehicleID(ctx, location.VehicleID)

	if err := h.trackingUC.IngestPing(ctx, location); err != nil {
		logger.Error("Failed to ingest GPS ping",
			logger.String("request_id", pkgcontext.GetRequestID(ctx)),
			logger.String("vehicle_id", location.VehicleID),
			logger.Err(err))
	}
}

// Close drains all subscriptions, then waits for the worker to finish the
// buffered pings
func (h *PingConsumer) Close() {
	for _, sub := range h.subs {
		if err := sub.Drain(); err != nil {
			logger.Warn("Failed to drain subscription", logger.Err(err))
		}
	}

	close(h.queue)
	<-h.done
}
