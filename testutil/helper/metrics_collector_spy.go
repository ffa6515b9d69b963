package helper

import (
	"maps"
	"sync"
	"time"

	"github.com/Chalhotra/LibMgmt/store"
)

var _ store.MetricsCollector = (*MetricsCollectorSpy)(nil)

// MetricsCollectorSpy is a MetricsCollector that captures every call for inspection in tests.
type MetricsCollectorSpy struct {
	durationRecords []SpyMetricRecord
	counterRecords  []SpyMetricRecord
	valueRecords    []SpyMetricRecord
	mu              sync.Mutex
	recordCalls     bool
}

// SpyMetricRecord represents a recorded metric call. Duration is set for duration records,
// Value for value records.
type SpyMetricRecord struct {
	Metric   string
	Duration time.Duration
	Value    float64
	Labels   map[string]string
}

// NewMetricsCollectorSpy creates a new MetricsCollectorSpy.
// Set recordCalls to true to capture all metrics calls for inspection in tests.
func NewMetricsCollectorSpy(recordCalls bool) *MetricsCollectorSpy {
	return &MetricsCollectorSpy{recordCalls: recordCalls}
}

// RecordDuration implements store.MetricsCollector.
func (s *MetricsCollectorSpy) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	s.record(&s.durationRecords, SpyMetricRecord{Metric: metric, Duration: duration, Labels: maps.Clone(labels)})
}

// IncrementCounter implements store.MetricsCollector.
func (s *MetricsCollectorSpy) IncrementCounter(metric string, labels map[string]string) {
	s.record(&s.counterRecords, SpyMetricRecord{Metric: metric, Labels: maps.Clone(labels)})
}

// RecordValue implements store.MetricsCollector.
func (s *MetricsCollectorSpy) RecordValue(metric string, value float64, labels map[string]string) {
	s.record(&s.valueRecords, SpyMetricRecord{Metric: metric, Value: value, Labels: maps.Clone(labels)})
}

func (s *MetricsCollectorSpy) record(into *[]SpyMetricRecord, record SpyMetricRecord) {
	if !s.recordCalls {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	*into = append(*into, record)
}

// GetCounterRecords returns a copy of all captured counter records.
func (s *MetricsCollectorSpy) GetCounterRecords() []SpyMetricRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyMetricRecord(nil), s.counterRecords...)
}

// GetDurationRecordCount returns the number of captured duration records.
func (s *MetricsCollectorSpy) GetDurationRecordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.durationRecords)
}

// GetCounterRecordCount returns the number of captured counter records.
func (s *MetricsCollectorSpy) GetCounterRecordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.counterRecords)
}

// Reset clears all captured metric records.
func (s *MetricsCollectorSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.durationRecords = nil
	s.counterRecords = nil
	s.valueRecords = nil
}

// CountCounterRecordsForMetric counts how many counter records exist for a specific metric.
func (s *MetricsCollectorSpy) CountCounterRecordsForMetric(metric string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, record := range s.counterRecords {
		if record.Metric == metric {
			count++
		}
	}

	return count
}

// MetricRecordMatcher provides a fluent interface for checking metric records.
// The chain narrows the candidate records, Assert reports whether any record is left.
type MetricRecordMatcher struct {
	candidates []SpyMetricRecord
}

// HasDurationRecordForMetric starts a fluent chain to check a duration record.
func (s *MetricsCollectorSpy) HasDurationRecordForMetric(metric string) *MetricRecordMatcher {
	return s.matcherFor(s.durationRecords, metric)
}

// HasCounterRecordForMetric starts a fluent chain to check a counter record.
func (s *MetricsCollectorSpy) HasCounterRecordForMetric(metric string) *MetricRecordMatcher {
	return s.matcherFor(s.counterRecords, metric)
}

// HasValueRecordForMetric starts a fluent chain to check a value record.
func (s *MetricsCollectorSpy) HasValueRecordForMetric(metric string) *MetricRecordMatcher {
	return s.matcherFor(s.valueRecords, metric)
}

func (s *MetricsCollectorSpy) matcherFor(records []SpyMetricRecord, metric string) *MetricRecordMatcher {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := &MetricRecordMatcher{}
	for _, record := range records {
		if record.Metric == metric {
			m.candidates = append(m.candidates, record)
		}
	}

	return m
}

// WithLabel keeps the records carrying the label with the given value.
func (m *MetricRecordMatcher) WithLabel(key, value string) *MetricRecordMatcher {
	kept := m.candidates[:0:0]
	for _, record := range m.candidates {
		if v, ok := record.Labels[key]; ok && v == value {
			kept = append(kept, record)
		}
	}

	m.candidates = kept

	return m
}

// WithStatus keeps the records with the given status label.
func (m *MetricRecordMatcher) WithStatus(status string) *MetricRecordMatcher {
	return m.WithLabel("status", status)
}

// WithOperation keeps the records with the given operation label.
func (m *MetricRecordMatcher) WithOperation(operation string) *MetricRecordMatcher {
	return m.WithLabel("operation", operation)
}

// Assert returns true if all conditions in the fluent chain were met.
func (m *MetricRecordMatcher) Assert() bool {
	return len(m.candidates) > 0
}
