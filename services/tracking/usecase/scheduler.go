package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/caravelo/fleettrack/internal/pkg/logger"
	"github.com/caravelo/fleettrack/internal/pkg/models"
	"github.com/caravelo/fleettrack/services/tracking"
)

// ErrorSink receives non-fatal polling failures
type ErrorSink func(error)

// PublishHook is invoked after each successful snapshot swap
type PublishHook func(snapshot models.TrackingSnapshot)

// SnapshotScheduler drives periodic polling of the telemetry provider. On
// each tick it fans out three concurrent fetches (tracking, alerts, stats)
// and swaps the published snapshot as one unit. Readers never observe a mix
// of old alerts with new tracking data.
//
// Single writer: only the scheduler mutates the current snapshot. A
// generation counter detects results from cancelled or superseded ticks so
// they are dropped on arrival instead of clobbering newer state.
type SnapshotScheduler struct {
	gw       tracking.TelemetryGW
	interval time.Duration
	errSink  ErrorSink
	onPub    PublishHook

	generation atomic.Uint64
	inFlight   atomic.Bool

	mu      sync.RWMutex
	current *models.TrackingSnapshot

	subMu sync.Mutex
	subs  []chan models.TrackingSnapshot

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSnapshotScheduler creates a scheduler. errSink and onPublish may be
// nil.
func NewSnapshotScheduler(gw tracking.TelemetryGW, interval time.Duration, errSink ErrorSink, onPublish PublishHook) *SnapshotScheduler {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	if errSink == nil {
		errSink = func(error) {}
	}
	return &SnapshotScheduler{
		gw:       gw,
		interval: interval,
		errSink:  errSink,
		onPub:    onPublish,
	}
}

// Start begins the polling loop. The first poll runs immediately so
// consumers do not wait a full interval for data.
func (s *SnapshotScheduler) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(runCtx)
}

func (s *SnapshotScheduler) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick starts one fan-out unless the previous one is still in flight
// (single-flight). The fan-out runs in its own goroutine so a slow provider
// never blocks the ticker.
func (s *SnapshotScheduler) tick(ctx context.Context) {
	if !s.inFlight.CompareAndSwap(false, true) {
		logger.Debug("Skipping poll tick, previous fan-out still in flight")
		return
	}

	gen := s.generation.Add(1)

	// Cancellation is non-preemptive: loop shutdown must not abort the
	// fan-out's requests. They run to completion and a stale result is
	// dropped via the generation counter.
	fetchCtx := context.WithoutCancel(ctx)

	go func() {
		defer s.inFlight.Store(false)
		s.poll(fetchCtx, gen)
	}()
}

// poll fans out the three provider requests, waits for all of them, and
// publishes the combined snapshot. Any failure discards the whole tick; the
// previously published snapshot stays current.
func (s *SnapshotScheduler) poll(ctx context.Context, gen uint64) {
	var (
		wg       sync.WaitGroup
		vehicles []models.VehicleTracking
		alerts   []models.SpeedAlert
		stats    models.DashboardStats

		errMu    sync.Mutex
		firstErr error
	)

	report := func(op string, err error) {
		errMu.Lock()
		defer errMu.Unlock()
		if firstErr == nil {
			firstErr = &tracking.TransientFetchError{Op: op, Err: err}
		}
	}

	wg.Add(3)
	go func() {
		defer wg.Done()
		v, err := s.gw.FetchTracking(ctx)
		if err != nil {
			report("tracking", err)
			return
		}
		vehicles = v
	}()
	go func() {
		defer wg.Done()
		a, err := s.gw.FetchAlerts(ctx)
		if err != nil {
			report("alerts", err)
			return
		}
		alerts = a
	}()
	go func() {
		defer wg.Done()
		st, err := s.gw.FetchDashboardStats(ctx)
		if err != nil {
			report("stats", err)
			return
		}
		stats = st
	}()
	wg.Wait()

	if firstErr != nil {
		// A failure from a superseded tick is noise; only the current
		// generation reports to the sink.
		if gen != s.generation.Load() {
			logger.Debug("Dropping stale poll failure", logger.Uint64("generation", gen))
			return
		}
		s.errSink(firstErr)
		return
	}

	// A result tagged with a stale generation arrives after Cancel bumped
	// the counter; drop it silently.
	if gen != s.generation.Load() {
		logger.Debug("Dropping stale poll result", logger.Uint64("generation", gen))
		return
	}

	snapshot := models.TrackingSnapshot{
		Generation: gen,
		Vehicles:   vehicles,
		Alerts:     alerts,
		Stats:      stats,
		FetchedAt:  time.Now().UTC(),
	}

	s.publish(snapshot)
}

func (s *SnapshotScheduler) publish(snapshot models.TrackingSnapshot) {
	s.mu.Lock()
	s.current = &snapshot
	s.mu.Unlock()

	s.notify(snapshot)

	if s.onPub != nil {
		s.onPub(snapshot)
	}
}

func (s *SnapshotScheduler) notify(snapshot models.TrackingSnapshot) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, sub := range s.subs {
		select {
		case sub <- snapshot:
		default:
			// Slow subscriber; it will catch up on the next publish.
		}
	}
}

// Subscribe returns a channel that receives every published snapshot
func (s *SnapshotScheduler) Subscribe() <-chan models.TrackingSnapshot {
	ch := make(chan models.TrackingSnapshot, 1)
	s.subMu.Lock()
	s.subs = append(s.subs, ch)
	s.subMu.Unlock()
	return ch
}

// Current returns the latest published snapshot, or nil before the first
// successful poll
func (s *SnapshotScheduler) Current() *models.TrackingSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Cancel stops the timer. An in-flight fan-out is allowed to complete but
// its result is discarded via the generation counter.
func (s *SnapshotScheduler) Cancel() {
	if s.cancel == nil {
		return
	}
	s.generation.Add(1)
	s.cancel()
	<-s.done
}

// PollOnce runs a single fan-out synchronously, outside the timer loop.
// Used at startup and in tests.
func (s *SnapshotScheduler) PollOnce(ctx context.Context) {
	gen := s.generation.Add(1)
	s.poll(ctx, gen)
}
