// Package prometheusadapters exposes the store and handler metrics through a Prometheus registry.
package prometheusadapters

import (
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Chalhotra/LibMgmt/store"
)

const (
	helpDuration = "library operation duration"
	helpCounter  = "library operation counter"
	helpGauge    = "library current value"
)

// MetricsCollector implements store.MetricsCollector with Prometheus vectors.
//
// A vector is registered on the first observation of a metric name and its label names are
// fixed by that observation. Later observations with a different label set, and names the
// registry rejects, are dropped.
type MetricsCollector struct {
	registerer prometheus.Registerer
	buckets    []float64

	mu         sync.Mutex
	histograms map[string]*prometheus.HistogramVec
	counters   map[string]*prometheus.CounterVec
	gauges     map[string]*prometheus.GaugeVec
	rejected   map[string]struct{}
}

// Option configures a MetricsCollector.
type Option func(*MetricsCollector)

// WithBuckets sets the histogram buckets in seconds. The default is prometheus.DefBuckets.
func WithBuckets(buckets []float64) Option {
	return func(m *MetricsCollector) {
		m.buckets = buckets
	}
}

// NewMetricsCollector creates a MetricsCollector registering into registerer.
func NewMetricsCollector(registerer prometheus.Registerer, options ...Option) *MetricsCollector {
	m := &MetricsCollector{
		registerer: registerer,
		buckets:    prometheus.DefBuckets,
		histograms: make(map[string]*prometheus.HistogramVec),
		counters:   make(map[string]*prometheus.CounterVec),
		gauges:     make(map[string]*prometheus.GaugeVec),
		rejected:   make(map[string]struct{}),
	}

	for _, option := range options {
		option(m)
	}

	return m
}

// RecordDuration observes duration in seconds.
func (m *MetricsCollector) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	vec := m.histogram(metric, labels)
	if vec == nil {
		return
	}

	observer, err := vec.GetMetricWith(prometheus.Labels(labels))
	if err != nil {
		return
	}

	observer.Observe(duration.Seconds())
}

// IncrementCounter adds one to the counter.
func (m *MetricsCollector) IncrementCounter(metric string, labels map[string]string) {
	vec := m.counter(metric, labels)
	if vec == nil {
		return
	}

	counter, err := vec.GetMetricWith(prometheus.Labels(labels))
	if err != nil {
		return
	}

	counter.Inc()
}

// RecordValue sets the gauge.
func (m *MetricsCollector) RecordValue(metric string, value float64, labels map[string]string) {
	vec := m.gauge(metric, labels)
	if vec == nil {
		return
	}

	gauge, err := vec.GetMetricWith(prometheus.Labels(labels))
	if err != nil {
		return
	}

	gauge.Set(value)
}

func (m *MetricsCollector) histogram(name string, labels map[string]string) *prometheus.HistogramVec {
	m.mu.Lock()
	defer m.mu.Unlock()

	if vec, ok := m.histograms[name]; ok {
		return vec
	}

	vec := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: name, Help: helpDuration, Buckets: m.buckets},
		labelNames(labels),
	)
	if !m.register(name, vec) {
		return nil
	}

	m.histograms[name] = vec

	return vec
}

func (m *MetricsCollector) counter(name string, labels map[string]string) *prometheus.CounterVec {
	m.mu.Lock()
	defer m.mu.Unlock()

	if vec, ok := m.counters[name]; ok {
		return vec
	}

	vec := prometheus.NewCounterVec(prometheus.CounterOpts{Name: name, Help: helpCounter}, labelNames(labels))
	if !m.register(name, vec) {
		return nil
	}

	m.counters[name] = vec

	return vec
}

func (m *MetricsCollector) gauge(name string, labels map[string]string) *prometheus.GaugeVec {
	m.mu.Lock()
	defer m.mu.Unlock()

	if vec, ok := m.gauges[name]; ok {
		return vec
	}

	vec := prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: name, Help: helpGauge}, labelNames(labels))
	if !m.register(name, vec) {
		return nil
	}

	m.gauges[name] = vec

	return vec
}

// register must be called with mu held.
func (m *MetricsCollector) register(name string, collector prometheus.Collector) bool {
	if _, ok := m.rejected[name]; ok {
		return false
	}

	if err := m.registerer.Register(collector); err != nil {
		m.rejected[name] = struct{}{}
		return false
	}

	return true
}

func labelNames(labels map[string]string) []string {
	names := make([]string, 0, len(labels))
	for name := range labels {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

var _ store.MetricsCollector = (*MetricsCollector)(nil)
