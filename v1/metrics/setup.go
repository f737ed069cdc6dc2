package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and HTTP server responsible
// for exposing adapter metrics.
//
// Each process maintains its own isolated registry to prevent metric name
// collisions when several services share a binary.
type Metrics struct {
	// Server defines the HTTP server used to expose the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry where all metrics are registered.
	Registry *prometheus.Registry

	// Adapter instruments
	documentsIndexed   *prometheus.CounterVec
	pointsUpserted     *prometheus.CounterVec
	retrievals         *prometheus.CounterVec
	documentsRetrieved *prometheus.CounterVec
	operationDuration  *prometheus.HistogramVec
}

// NewMetrics initializes and returns a new instance of the Metrics struct.
// It sets up a dedicated Prometheus registry, registers the adapter
// instruments (and optionally the default system collectors), wraps all
// metrics with a constant `service` label, and creates an HTTP server
// exposing the /metrics endpoint.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Address:                 ":9090",
//	    ServiceName:             "document-index",
//	    EnableDefaultCollectors: true,
//	})
//	go m.Server.ListenAndServe()
//
// Access metrics at: http://localhost:9090/metrics
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	// All metrics emitted by this service automatically include the label
	// service="<cfg.ServiceName>".
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
	}

	m.documentsIndexed = createCounterVec("documents_indexed_total",
		"Total number of documents submitted for indexing", []string{"collection"})
	m.pointsUpserted = createCounterVec("points_upserted_total",
		"Total number of points written to the vector store", []string{"collection"})
	m.retrievals = createCounterVec("retrievals_total",
		"Total number of retrieval calls", []string{"collection", "status"})
	m.documentsRetrieved = createCounterVec("documents_retrieved_total",
		"Total number of documents returned by retrieval calls", []string{"collection"})
	m.operationDuration = createHistogramVec("operation_duration_seconds",
		"Duration of index and retrieve operations in seconds",
		[]string{"operation", "collection"}, prometheus.DefBuckets)

	wrappedRegistry.MustRegister(
		m.documentsIndexed,
		m.pointsUpserted,
		m.retrievals,
		m.documentsRetrieved,
		m.operationDuration,
	)

	// GoCollector: memory usage, goroutines, GC stats.
	// ProcessCollector: CPU, file descriptors, memory stats.
	// BuildInfoCollector: binary version/build info.
	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}

	return m
}
