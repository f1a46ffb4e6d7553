package scengo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordExtract is called after each grid extraction.
	// objects is the number of objects emitted, err is nil if successful.
	RecordExtract(objects int, duration time.Duration, err error)

	// RecordCluster is called after each clustering run.
	// k is the requested cluster count, duration the total pipeline time.
	RecordCluster(k int, duration time.Duration, err error)

	// RecordSweep is called after each k sweep.
	// runs is the number of candidate k values attempted.
	RecordSweep(runs int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordExtract(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordCluster(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSweep(int, time.Duration, error)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ExtractCount      atomic.Int64
	ExtractErrors     atomic.Int64
	ExtractTotalNanos atomic.Int64
	ObjectsEmitted    atomic.Int64
	ClusterCount      atomic.Int64
	ClusterErrors     atomic.Int64
	ClusterTotalNanos atomic.Int64
	SweepCount        atomic.Int64
	SweepErrors       atomic.Int64
	SweepTotalNanos   atomic.Int64
}

func (m *BasicMetricsCollector) RecordExtract(objects int, duration time.Duration, err error) {
	m.ExtractCount.Add(1)
	m.ExtractTotalNanos.Add(int64(duration))
	if err != nil {
		m.ExtractErrors.Add(1)
		return
	}
	m.ObjectsEmitted.Add(int64(objects))
}

func (m *BasicMetricsCollector) RecordCluster(k int, duration time.Duration, err error) {
	m.ClusterCount.Add(1)
	m.ClusterTotalNanos.Add(int64(duration))
	if err != nil {
		m.ClusterErrors.Add(1)
	}
}

func (m *BasicMetricsCollector) RecordSweep(runs int, duration time.Duration, err error) {
	m.SweepCount.Add(1)
	m.SweepTotalNanos.Add(int64(duration))
	if err != nil {
		m.SweepErrors.Add(1)
	}
}
