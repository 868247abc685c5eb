// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package collector aggregates events from many goroutines through a
// ringq.MPSCBuffer and hands them to a sink in periodic batches.
//
// Emit never blocks: when the buffer is full the event is dropped and
// counted. A single goroutine running Run sweeps the buffer every interval
// and once more on shutdown.
package collector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"go.uber.org/multierr"

	"code.hybscloud.com/ringq"
	"code.hybscloud.com/ringq/internal/logging"
)

// Sink receives one batch per call. The slice is reused after the call
// returns; a Sink must copy anything it keeps.
type Sink[E any] func(batch []E) error

// Ticker implements a time source for periodic sweeps.
// Tests pass their own to control time.
type Ticker interface {
	Channel() <-chan time.Time
	Stop()
}

// TimeTicker implements a Ticker based on time.Ticker.
type TimeTicker struct {
	*time.Ticker
}

// NewTimeTicker returns a new time.Ticker with the configured duration.
func NewTimeTicker(d time.Duration) Ticker {
	return &TimeTicker{Ticker: time.NewTicker(d)}
}

// Channel exposes the ticker's channel.
func (t *TimeTicker) Channel() <-chan time.Time {
	return t.C
}

// Collector buffers events from any number of emitters for one sweeper.
type Collector[E any] struct {
	opts    Options
	buf     *ringq.MPSCBuffer[E]
	sink    Sink[E]
	logger  logr.Logger
	metrics metrics

	// Sweeper-owned
	batch []E
	visit ringq.Visitor[E]
}

// New validates opts and creates a Collector. Metrics are recorded under
// opts.Name; call Register to expose them.
func New[E any](opts Options, sink Sink[E], logger logr.Logger) (*Collector[E], error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("collector: %w", err)
	}
	if sink == nil {
		return nil, errors.New("collector: nil sink")
	}
	opts = opts.withDefaults()

	c := &Collector[E]{
		opts:    opts,
		buf:     ringq.NewMPSCBuffer[E](opts.Capacity),
		sink:    sink,
		logger:  logger.WithValues("collector", opts.Name),
		metrics: newMetrics(opts.Name),
		batch:   make([]E, 0, opts.BatchSize),
	}
	c.visit = func(e E) error {
		c.batch = append(c.batch, e)
		return nil
	}
	return c, nil
}

// Emit offers e to the buffer. Safe for concurrent use.
// Returns ringq.ErrWouldBlock if the buffer is full; the event is dropped.
func (c *Collector[E]) Emit(e E) error {
	if err := c.buf.Offer(&e); err != nil {
		c.metrics.dropped.Inc()
		return err
	}
	c.metrics.emitted.Inc()
	return nil
}

// Pending returns a snapshot of the buffered event count.
func (c *Collector[E]) Pending() int {
	return c.buf.Size()
}

// Sweep drains up to one buffer's worth of events into the sink in batches
// of at most BatchSize. Events emitted during the sweep may wait for the
// next one. A failing sink batch is not retried; the sweep continues and
// the errors are combined with any drain errors.
//
// Sweep must not run concurrently with itself or Run.
func (c *Collector[E]) Sweep() (int, error) {
	c.metrics.pending.Set(float64(c.buf.Size()))

	var errs error
	total := 0
	for limit := c.buf.Cap(); total < limit; {
		c.batch = c.batch[:0]
		n, err := c.buf.DrainLimit(c.visit, min(c.opts.BatchSize, limit-total))
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("collector %s: %w", c.opts.Name, err))
		}
		if n == 0 {
			break
		}
		total += n
		c.metrics.swept.Add(float64(n))
		if len(c.batch) == 0 {
			continue
		}

		if err := c.sink(c.batch); err != nil {
			c.metrics.sinkErrors.Inc()
			errs = multierr.Append(errs, fmt.Errorf("collector %s: sink: %w", c.opts.Name, err))
		}
	}
	clear(c.batch)
	return total, errs
}

// Run sweeps every Interval until ctx is cancelled, then sweeps once more
// and returns nil. Sink errors are logged and counted, never returned.
func (c *Collector[E]) Run(ctx context.Context) error {
	return c.RunWithTicker(ctx, NewTimeTicker(c.opts.Interval))
}

// RunWithTicker is Run driven by the given ticker. The ticker is stopped on
// return.
func (c *Collector[E]) RunWithTicker(ctx context.Context, ticker Ticker) error {
	c.logger.V(logging.DEFAULT).Info("starting collection", "capacity", c.opts.Capacity, "interval", c.opts.Interval)
	defer func() {
		ticker.Stop()
		c.logger.V(logging.DEFAULT).Info("terminating collection")
	}()

	for {
		select {
		case <-ctx.Done():
			c.sweepAndLog()
			return nil
		case <-ticker.Channel():
			c.sweepAndLog()
		}
	}
}

func (c *Collector[E]) sweepAndLog() {
	n, err := c.Sweep()
	if err != nil {
		for _, e := range multierr.Errors(err) {
			c.logger.Error(e, "sweep failed", "swept", n)
		}
	}
	c.logger.V(logging.TRACE).Info("swept", "count", n, "pending", c.buf.Size())
}
