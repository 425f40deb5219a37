package frontier

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the Prometheus collectors updated by an Instrumented frontier.
// A single Metrics value may be shared by any number of frontiers (for
// example one per search run); all collectors are goroutine-safe.
type Metrics struct {
	Inserts  prometheus.Counter // elements inserted
	Removals prometheus.Counter // elements removed
	Size     prometheus.Gauge   // current number of stored elements
	MaxSize  prometheus.Gauge   // peak size of the most recent frontier
}

// NewMetrics creates unregistered collectors named
// <namespace>_frontier_{inserts_total,removals_total,size,max_size},
// labelled with the frontier discipline.
func NewMetrics(namespace string, d Discipline) *Metrics {
	labels := prometheus.Labels{"discipline": string(d)}

	return &Metrics{
		Inserts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "frontier",
			Name:        "inserts_total",
			Help:        "Total number of elements inserted into the search frontier",
			ConstLabels: labels,
		}),
		Removals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "frontier",
			Name:        "removals_total",
			Help:        "Total number of elements removed from the search frontier",
			ConstLabels: labels,
		}),
		Size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "frontier",
			Name:        "size",
			Help:        "Current number of elements in the search frontier",
			ConstLabels: labels,
		}),
		MaxSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "frontier",
			Name:        "max_size",
			Help:        "Peak number of elements held by the search frontier",
			ConstLabels: labels,
		}),
	}
}

// Collectors returns all collectors, e.g. for a custom registry.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.Inserts, m.Removals, m.Size, m.MaxSize}
}

// Register registers every collector with reg. Registration errors are joined.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	var errs []error
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Instrumented decorates a Frontier and records every operation in Metrics.
// The ordering of the wrapped frontier is left untouched.
type Instrumented[T any] struct {
	inner Frontier[T]
	m     *Metrics
	peak  int
}

// NewInstrumented wraps inner. It panics if inner or m is nil.
func NewInstrumented[T any](inner Frontier[T], m *Metrics) *Instrumented[T] {
	if inner == nil || m == nil {
		panic("frontier: NewInstrumented requires a frontier and metrics")
	}
	m.Size.Set(float64(inner.Len()))
	m.MaxSize.Set(float64(inner.Len()))

	return &Instrumented[T]{inner: inner, m: m, peak: inner.Len()}
}

// IsEmpty delegates to the wrapped frontier.
func (f *Instrumented[T]) IsEmpty() bool { return f.inner.IsEmpty() }

// Len delegates to the wrapped frontier.
func (f *Instrumented[T]) Len() int { return f.inner.Len() }

// Peak returns the largest size observed by this frontier.
func (f *Instrumented[T]) Peak() int { return f.peak }

// Insert delegates and updates the insert counter and size gauges.
func (f *Instrumented[T]) Insert(v T) {
	f.inner.Insert(v)
	f.m.Inserts.Inc()
	n := f.inner.Len()
	f.m.Size.Set(float64(n))
	if n > f.peak {
		f.peak = n
		f.m.MaxSize.Set(float64(n))
	}
}

// RemoveNext delegates and updates the removal counter and size gauge.
func (f *Instrumented[T]) RemoveNext() T {
	v := f.inner.RemoveNext()
	f.m.Removals.Inc()
	f.m.Size.Set(float64(f.inner.Len()))

	return v
}
