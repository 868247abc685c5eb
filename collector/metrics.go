// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package collector

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "ringq"
	subsystem = "collector"
	nameLabel = "collector"
)

var (
	emittedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "emitted_total",
			Help:      "Count of elements accepted into the collector buffer.",
		},
		[]string{nameLabel},
	)
	droppedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "dropped_total",
			Help:      "Count of elements rejected because the buffer was full.",
		},
		[]string{nameLabel},
	)
	sweptCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "swept_total",
			Help:      "Count of elements drained from the buffer and handed to the sink.",
		},
		[]string{nameLabel},
	)
	sinkErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "sink_errors_total",
			Help:      "Count of sink calls that returned an error.",
		},
		[]string{nameLabel},
	)
	pendingGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "pending",
			Help:      "Buffered elements observed at the start of the last sweep.",
		},
		[]string{nameLabel},
	)
)

var registerMetrics sync.Once

// Register all metrics on reg. Only the first call has any effect.
func Register(reg prometheus.Registerer) {
	registerMetrics.Do(func() {
		reg.MustRegister(emittedCounter)
		reg.MustRegister(droppedCounter)
		reg.MustRegister(sweptCounter)
		reg.MustRegister(sinkErrorCounter)
		reg.MustRegister(pendingGauge)
	})
}

// metrics holds the label-bound series for one collector.
type metrics struct {
	emitted    prometheus.Counter
	dropped    prometheus.Counter
	swept      prometheus.Counter
	sinkErrors prometheus.Counter
	pending    prometheus.Gauge
}

func newMetrics(name string) metrics {
	return metrics{
		emitted:    emittedCounter.WithLabelValues(name),
		dropped:    droppedCounter.WithLabelValues(name),
		swept:      sweptCounter.WithLabelValues(name),
		sinkErrors: sinkErrorCounter.WithLabelValues(name),
		pending:    pendingGauge.WithLabelValues(name),
	}
}
