// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"golang.org/x/sync/errgroup"
)

// Config is one measurement: how many producers feed one consumer, for how
// long, through a pipe of what capacity.
type Config struct {
	Producers   int
	Duration    time.Duration
	Capacity    int
	PinConsumer int // CPU to pin the consumer thread to; negative disables
}

// Validate checks the Config for invalid values.
func (cfg Config) Validate() error {
	if cfg.Producers < 1 {
		return fmt.Errorf("invalid producers %d: must be at least 1", cfg.Producers)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("invalid duration %s: must be positive", cfg.Duration)
	}
	if cfg.Capacity < 1 {
		return fmt.Errorf("invalid capacity %d: must be at least 1", cfg.Capacity)
	}
	return nil
}

// Result holds the outcome of one Run.
type Result struct {
	Target     string        `json:"target"`
	Producers  int           `json:"producers"`
	Capacity   int           `json:"capacity"`
	Produced   int64         `json:"produced"`
	Consumed   int64         `json:"consumed"`
	Duration   time.Duration `json:"duration_ns"` // requested
	Elapsed    time.Duration `json:"elapsed_ns"`  // measured, including the final drain
	Throughput float64       `json:"throughput_msgs_sec"`
	Timestamp  int64         `json:"timestamp"`
	GoVersion  string        `json:"go_version"`
}

// Run spawns cfg.Producers producers and one consumer that run for
// cfg.Duration. When the duration expires producers stop and the consumer
// drains whatever remains, so Consumed equals Produced on success.
//
// Producers retry a full pipe with iox.Backoff. Single-producer targets run
// with exactly one producer regardless of cfg.Producers.
func Run(ctx context.Context, target Target, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("bench: %w", err)
	}
	if target.SingleProducer {
		cfg.Producers = 1
	}
	pipe := target.New(cfg.Capacity)

	start := time.Now()
	runCtx, cancel := context.WithTimeout(ctx, cfg.Duration)
	defer cancel()

	var produced atomix.Int64
	var producersDone atomix.Bool
	var consumed int64

	cg, gctx := errgroup.WithContext(runCtx)
	cg.Go(func() error {
		if cfg.PinConsumer >= 0 {
			if err := PinCurrentThread(cfg.PinConsumer); err != nil {
				return fmt.Errorf("bench: pin consumer: %w", err)
			}
		}
		backoff := iox.Backoff{}
		for {
			if _, ok := pipe.Recv(); ok {
				consumed++
				backoff.Reset()
				continue
			}
			if producersDone.Load() {
				// Every Send has returned: what remains is all there is.
				for {
					if _, ok := pipe.Recv(); !ok {
						return nil
					}
					consumed++
				}
			}
			backoff.Wait()
		}
	})

	// Producers poll a flag rather than gctx.Err(), which takes a lock.
	var stop atomix.Bool
	go func() {
		<-gctx.Done()
		stop.Store(true)
	}()

	var pg errgroup.Group
	for p := range cfg.Producers {
		pg.Go(func() error {
			backoff := iox.Backoff{}
			var n int64
			for v := p; !stop.Load(); {
				if pipe.Send(&v) != nil {
					backoff.Wait()
					continue
				}
				backoff.Reset()
				n++
				v += cfg.Producers
			}
			produced.Add(n)
			return nil
		})
	}

	_ = pg.Wait()
	producersDone.Store(true)
	if err := cg.Wait(); err != nil {
		return Result{}, err
	}
	elapsed := time.Since(start)

	res := Result{
		Target:    target.Name,
		Producers: cfg.Producers,
		Capacity:  cfg.Capacity,
		Produced:  produced.Load(),
		Consumed:  consumed,
		Duration:  cfg.Duration,
		Elapsed:   elapsed,
		Timestamp: time.Now().Unix(),
		GoVersion: runtime.Version(),
	}
	if elapsed > 0 {
		res.Throughput = float64(consumed) / elapsed.Seconds()
	}
	if res.Consumed != res.Produced {
		return res, fmt.Errorf("bench: %s: consumed %d of %d produced", target.Name, res.Consumed, res.Produced)
	}
	return res, nil
}
