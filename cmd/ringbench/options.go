// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"runtime"
	"slices"
	"time"

	"github.com/spf13/pflag"

	"code.hybscloud.com/ringq/internal/bench"
	"code.hybscloud.com/ringq/internal/logging"
)

const (
	DefaultDuration   = 2 * time.Second
	DefaultCapacity   = 1024
	DefaultIterations = 3
)

// Options contains the command-line configuration for ringbench.
type Options struct {
	//
	// Workload.
	//
	Targets    []string      // Target names, in run order.
	Producers  []int         // Producer counts to sweep; single-producer targets run once with 1.
	Duration   time.Duration // Length of each run.
	Capacity   int           // Pipe capacity.
	Iterations int           // Runs per (target, producers) pair.
	Pin        int           // CPU for the consumer thread; negative disables pinning.
	//
	// Output.
	//
	JSONFile string // Append the session to this JSON report.
	Markdown bool   // Print a Markdown summary to stdout.
	PlotFile string // Render a throughput chart to this image.
	Progress bool   // Show a progress bar on stderr.
	//
	// Diagnostics.
	//
	LogVerbosity int  // Number for the log level verbosity.
	Development  bool // Human-readable console logs.

	// internal
	targets []bench.Target // resolved in Complete()
}

// NewOptions returns a new Options struct initialized with default values.
func NewOptions() *Options {
	return &Options{
		Targets:      bench.TargetNames(),
		Producers:    []int{1, 2, 4},
		Duration:     DefaultDuration,
		Capacity:     DefaultCapacity,
		Iterations:   DefaultIterations,
		Pin:          -1,
		LogVerbosity: logging.DEFAULT,
	}
}

// AddFlags binds the Options fields to command-line flags on the given FlagSet.
func (opts *Options) AddFlags(fs *pflag.FlagSet) {
	if fs == nil {
		fs = pflag.CommandLine
	}

	fs.StringSliceVar(&opts.Targets, "targets", opts.Targets,
		fmt.Sprintf("Comma-separated targets to run. Known: %v.", bench.TargetNames()))
	fs.IntSliceVar(&opts.Producers, "producers", opts.Producers,
		"Comma-separated producer counts to sweep.")
	fs.DurationVar(&opts.Duration, "duration", opts.Duration,
		"Length of each run.")
	fs.IntVar(&opts.Capacity, "capacity", opts.Capacity,
		"Capacity of the queue under test.")
	fs.IntVar(&opts.Iterations, "iterations", opts.Iterations,
		"Runs per target and producer count.")
	fs.IntVar(&opts.Pin, "pin", opts.Pin,
		"Pin the consumer thread to this CPU. Negative disables pinning.")
	fs.StringVar(&opts.JSONFile, "json", opts.JSONFile,
		"Append the session to this JSON report file.")
	fs.BoolVar(&opts.Markdown, "markdown", opts.Markdown,
		"Print a Markdown summary table to stdout.")
	fs.StringVar(&opts.PlotFile, "plot", opts.PlotFile,
		"Render a median throughput bar chart to this image file (.png, .svg, .pdf).")
	fs.BoolVar(&opts.Progress, "progress", opts.Progress,
		"Display a progress bar on stderr.")
	fs.IntVarP(&opts.LogVerbosity, "v", "v", opts.LogVerbosity,
		"Number for the log level verbosity.")
	fs.BoolVar(&opts.Development, "development", opts.Development,
		"Use human-readable console logging.")
}

// Complete performs post-processing of parsed command-line arguments.
func (opts *Options) Complete() error {
	opts.Targets = compact(opts.Targets)
	opts.Producers = compact(opts.Producers)
	targets, err := bench.Lookup(opts.Targets...)
	if err != nil {
		return err
	}
	opts.targets = targets
	return nil
}

// Validate checks the Options for invalid or conflicting values.
func (opts *Options) Validate() error {
	if len(opts.targets) == 0 {
		return errors.New("no targets selected")
	}
	if len(opts.Producers) == 0 {
		return errors.New("no producer counts given")
	}
	for _, p := range opts.Producers {
		if p < 1 {
			return fmt.Errorf("invalid value %d for flag %q: must be at least 1", p, "producers")
		}
	}
	if opts.Duration <= 0 {
		return fmt.Errorf("invalid value %s for flag %q: must be positive", opts.Duration, "duration")
	}
	if opts.Capacity < 1 {
		return fmt.Errorf("invalid value %d for flag %q: must be at least 1", opts.Capacity, "capacity")
	}
	if opts.Iterations < 1 {
		return fmt.Errorf("invalid value %d for flag %q: must be at least 1", opts.Iterations, "iterations")
	}
	if opts.Pin >= runtime.NumCPU() {
		return fmt.Errorf("invalid value %d for flag %q: only %d CPUs", opts.Pin, "pin", runtime.NumCPU())
	}
	return nil
}

// producerCounts returns the producer counts to sweep for t.
func (opts *Options) producerCounts(t bench.Target) []int {
	if t.SingleProducer {
		return []int{1}
	}
	return opts.Producers
}

// totalRuns is the number of Run calls the options describe.
func (opts *Options) totalRuns() int {
	n := 0
	for _, t := range opts.targets {
		n += len(opts.producerCounts(t)) * opts.Iterations
	}
	return n
}

// compact drops repeated values, keeping first occurrences.
func compact[E comparable](in []E) []E {
	out := make([]E, 0, len(in))
	for _, v := range in {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
