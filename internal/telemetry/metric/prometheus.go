package metric

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "vecmap_bench"

var labelNames = []string{"contender", "op", "size"}

// Registry holds the benchmark metrics.
type Registry struct {
	reg *prometheus.Registry

	OpSeconds *prometheus.HistogramVec
	OpsTotal  *prometheus.CounterVec
	NsPerOp   *prometheus.GaugeVec
}

// NewRegistry creates a registry with all benchmark metrics registered.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		OpSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "op_seconds",
			Help:      "Mean latency of one operation, observed once per timed round.",
			// 1ns .. ~65µs
			Buckets: prometheus.ExponentialBuckets(1e-9, 2, 17),
		}, labelNames),
		OpsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ops_total",
			Help:      "Operations executed.",
		}, labelNames),
		NsPerOp: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ns_per_op",
			Help:      "Mean nanoseconds per operation over the whole run.",
		}, labelNames),
	}
	r.reg.MustRegister(r.OpSeconds, r.OpsTotal, r.NsPerOp)
	return r
}

// ObserveRound records one timed round of ops operations that took elapsed.
func (r *Registry) ObserveRound(contender, op string, size, ops int, elapsed time.Duration) {
	if ops <= 0 {
		return
	}
	lvs := []string{contender, op, strconv.Itoa(size)}
	r.OpSeconds.WithLabelValues(lvs...).Observe(elapsed.Seconds() / float64(ops))
	r.OpsTotal.WithLabelValues(lvs...).Add(float64(ops))
}

// SetResult records the final mean latency of a (contender, op, size) cell.
func (r *Registry) SetResult(contender, op string, size int, nsPerOp float64) {
	r.NsPerOp.WithLabelValues(contender, op, strconv.Itoa(size)).Set(nsPerOp)
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// WriteFile writes all metrics to path in the Prometheus text format.
func (r *Registry) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("write metrics file: %w", err)
	}
	return nil
}
