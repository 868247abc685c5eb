// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package collector

import (
	"fmt"
	"time"
)

const (
	DefaultCapacity = 4096
	DefaultInterval = time.Second
	DefaultName     = "default"
)

// Options configures a Collector. Zero fields take their defaults.
type Options struct {
	Capacity  int           // Buffer capacity; emits beyond it are dropped.
	Interval  time.Duration // Time between sweeps in Run.
	BatchSize int           // Max elements handed to the sink per call. Defaults to Capacity.
	Name      string        // Value of the "collector" metric label.
}

// withDefaults returns a copy of opts with zero fields filled in.
func (opts Options) withDefaults() Options {
	if opts.Capacity == 0 {
		opts.Capacity = DefaultCapacity
	}
	if opts.Interval == 0 {
		opts.Interval = DefaultInterval
	}
	if opts.BatchSize == 0 {
		opts.BatchSize = opts.Capacity
	}
	if opts.Name == "" {
		opts.Name = DefaultName
	}
	return opts
}

// Validate checks the Options for invalid values after defaulting.
func (opts Options) Validate() error {
	opts = opts.withDefaults()
	if opts.Capacity < 0 {
		return fmt.Errorf("invalid capacity %d: must be positive", opts.Capacity)
	}
	if opts.Interval < 0 {
		return fmt.Errorf("invalid interval %s: must be positive", opts.Interval)
	}
	if opts.BatchSize < 0 || opts.BatchSize > opts.Capacity {
		return fmt.Errorf("invalid batch size %d: must be in [1, %d]", opts.BatchSize, opts.Capacity)
	}
	return nil
}
