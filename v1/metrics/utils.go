package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ObserveDocumentsIndexed counts documents submitted for indexing.
// Safe to call on a nil receiver so instrumentation stays optional.
func (m *Metrics) ObserveDocumentsIndexed(collection string, n int) {
	if m == nil {
		return
	}
	m.documentsIndexed.WithLabelValues(collection).Add(float64(n))
}

// ObservePointsUpserted counts points written to the vector store.
func (m *Metrics) ObservePointsUpserted(collection string, n int) {
	if m == nil {
		return
	}
	m.pointsUpserted.WithLabelValues(collection).Add(float64(n))
}

// ObserveRetrieval counts one retrieval call with its outcome status and
// the number of documents it returned.
func (m *Metrics) ObserveRetrieval(collection, status string, docs int) {
	if m == nil {
		return
	}
	m.retrievals.WithLabelValues(collection, status).Inc()
	if docs > 0 {
		m.documentsRetrieved.WithLabelValues(collection).Add(float64(docs))
	}
}

// RecordOperationDuration records the duration of an adapter operation.
// Example: defer m.RecordOperationDuration(time.Now(), "index", collection)
func (m *Metrics) RecordOperationDuration(start time.Time, operation, collection string) {
	if m == nil {
		return
	}
	m.operationDuration.WithLabelValues(operation, collection).Observe(time.Since(start).Seconds())
}

// CreateCounter creates a new CounterVec metric and registers it.
func (m *Metrics) CreateCounter(name, help string, labels []string) *prometheus.CounterVec {
	counter := createCounterVec(name, help, labels)
	m.Registry.MustRegister(counter)
	return counter
}

// CreateHistogram creates a new HistogramVec metric and registers it.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	hist := createHistogramVec(name, help, labels, buckets)
	m.Registry.MustRegister(hist)
	return hist
}

// createCounterVec defines a new CounterVec with standard options.
// Used internally by NewMetrics to maintain consistency.
func createCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}

// createHistogramVec defines a new HistogramVec with configurable buckets.
// Used internally by NewMetrics for latency tracking.
func createHistogramVec(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: buckets,
		},
		labels,
	)
}
