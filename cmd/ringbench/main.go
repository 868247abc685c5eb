// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command ringbench measures producer/consumer throughput of the ringq
// queues against a buffered channel and a mutex-guarded queue.
//
//	ringbench --targets=spsc,mpsc,channel --producers=1,4,8 --duration=5s --markdown
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/go-logr/logr"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/pflag"

	"code.hybscloud.com/ringq/internal/bench"
	"code.hybscloud.com/ringq/internal/logging"
)

func main() {
	opts := NewOptions()
	fs := pflag.NewFlagSet("ringbench", pflag.ExitOnError)
	opts.AddFlags(fs)
	_ = fs.Parse(os.Args[1:])

	if err := opts.Complete(); err != nil {
		fmt.Fprintln(os.Stderr, "ringbench:", err)
		os.Exit(2)
	}
	if err := opts.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "ringbench:", err)
		os.Exit(2)
	}

	logger, err := logging.NewLogger(opts.LogVerbosity, opts.Development)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ringbench: logger:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session, err := runSession(ctx, opts, logger, os.Stderr)
	if err != nil {
		logging.Fatal(logger, err, "benchmark failed")
	}
	if err := writeOutputs(opts, session, os.Stdout); err != nil {
		logging.Fatal(logger, err, "writing results failed")
	}
}

// runSession executes every configured run and collects the results.
func runSession(ctx context.Context, opts *Options, logger logr.Logger, progressOut io.Writer) (bench.Session, error) {
	session := bench.Session{
		SessionTime: time.Now().Format(time.RFC3339),
		SystemInfo:  bench.GatherSystemInfo(),
	}
	logger.V(logging.DEFAULT).Info("starting session",
		"targets", opts.Targets, "producers", opts.Producers,
		"duration", opts.Duration, "capacity", opts.Capacity,
		"cpus", session.SystemInfo.NumCPU, "cpuModel", session.SystemInfo.CPUModel)

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.NewOptions(opts.totalRuns(),
			progressbar.OptionSetWriter(progressOut),
			progressbar.OptionSetDescription("ringbench"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionClearOnFinish(),
		)
		defer func() { _ = bar.Finish() }()
	}

	for _, target := range opts.targets {
		for _, producers := range opts.producerCounts(target) {
			for iteration := 1; iteration <= opts.Iterations; iteration++ {
				if err := ctx.Err(); err != nil {
					return session, err
				}
				runtime.GC()

				cfg := bench.Config{
					Producers:   producers,
					Duration:    opts.Duration,
					Capacity:    opts.Capacity,
					PinConsumer: opts.Pin,
				}
				res, err := bench.Run(ctx, target, cfg)
				if err != nil {
					return session, fmt.Errorf("%s/p%d iteration %d: %w", target.Name, producers, iteration, err)
				}
				session.Results = append(session.Results, res)
				logger.V(logging.VERBOSE).Info("run complete",
					"target", res.Target, "producers", res.Producers, "iteration", iteration,
					"consumed", res.Consumed, "throughput", fmt.Sprintf("%.0f", res.Throughput),
					"elapsed", res.Elapsed)

				if bar != nil {
					_ = bar.Add(1)
				}
			}
		}
	}
	return session, nil
}

// writeOutputs emits the session in every format the options request.
func writeOutputs(opts *Options, session bench.Session, stdout io.Writer) error {
	if opts.Markdown {
		if err := bench.Markdown(stdout, session); err != nil {
			return err
		}
	}
	if opts.JSONFile != "" {
		if err := bench.AppendReport(opts.JSONFile, session); err != nil {
			return err
		}
	}
	if opts.PlotFile != "" {
		if err := bench.Plot(session, opts.PlotFile); err != nil {
			return err
		}
	}
	return nil
}
