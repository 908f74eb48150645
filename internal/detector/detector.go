package detector

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dhowlett/scarebox/internal/logger"
	"github.com/dhowlett/scarebox/internal/sensor"
)

// ErrNilHandler is returned when Subscribe is given a nil handler.
var ErrNilHandler = errors.New("handler must not be nil")

// Handler receives the new sensor state on every edge, rising and
// falling. Handlers that only care about one edge ignore the other.
type Handler interface {
	OnMotion(ctx context.Context, active bool) error
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ctx context.Context, active bool) error

// OnMotion calls f.
func (f HandlerFunc) OnMotion(ctx context.Context, active bool) error {
	return f(ctx, active)
}

// Detector turns level-triggered sensor sampling into edge-triggered
// events. It samples the input on a fixed interval and notifies
// subscribed handlers, in registration order, whenever the level changes
// between consecutive samples.
//
// The loop is fully sequential: an edge is handled to completion before
// the next sample is taken, so motion during a scare cycle is simply
// missed rather than queued.
type Detector struct {
	input    sensor.Input
	handlers []Handler

	prev, curr bool

	closeOnce sync.Once
	closeErr  error
}

// New creates a Detector over the given sensor input.
func New(input sensor.Input) *Detector {
	return &Detector{input: input}
}

// Subscribe registers a handler. Handlers are invoked in registration
// order on every edge.
func (d *Detector) Subscribe(h Handler) error {
	if h == nil {
		return ErrNilHandler
	}

	d.handlers = append(d.handlers, h)

	return nil
}

// Read samples the sensor, shifting the current state into the previous
// one. A failed sample is logged and treated as inactive; the loop
// carries on.
func (d *Detector) Read(ctx context.Context) bool {
	level, err := d.input.Read()
	if err != nil {
		logger.ErrorKV(ctx, "Sensor read failed, treating as inactive", "error", err)

		level = false
	}

	d.prev = d.curr
	d.curr = level

	return d.curr
}

// Start runs the polling loop until the context is canceled. One priming
// read establishes the initial state so the first iteration cannot
// report a spurious edge.
func (d *Detector) Start(ctx context.Context, pollInterval time.Duration) error {
	logger.InfoKV(ctx, "Starting motion detection", "poll_interval", pollInterval.String())

	d.Read(ctx)
	// Align prev with the primed value; only genuine changes from here on
	// count as edges.
	d.prev = d.curr

	logger.InfoKV(ctx, "Sensor primed", "state", stateString(d.curr))

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Motion detection stopped")

			return nil
		case <-ticker.C:
			d.Read(ctx)

			if d.curr != d.prev {
				logger.InfoKV(ctx, "Sensor state changed", "state", stateString(d.curr))
				d.dispatch(ctx, d.curr)
			}
		}
	}
}

// dispatch notifies every handler with the new state. A handler error or
// panic is logged and never prevents the remaining handlers from running
// or stops the polling loop.
func (d *Detector) dispatch(ctx context.Context, active bool) {
	for _, h := range d.handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.ErrorKV(ctx, "Motion handler panicked", "panic", r)
				}
			}()

			if err := h.OnMotion(ctx, active); err != nil {
				logger.ErrorKV(ctx, "Motion handler failed", "error", err)
			}
		}()
	}
}

// Close releases the sensor resource. Idempotent.
func (d *Detector) Close() error {
	d.closeOnce.Do(func() {
		d.closeErr = d.input.Close()
	})

	return d.closeErr
}

// stateString renders a sensor level the way the logs describe pins.
func stateString(active bool) string {
	if active {
		return "HIGH"
	}

	return "LOW"
}
