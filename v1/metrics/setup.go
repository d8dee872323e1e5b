package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and HTTP server responsible
// for exposing the pool builder's metrics.
type Metrics struct {
	// Server defines the HTTP server used to expose the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry where all metrics are registered.
	// Each service maintains its own isolated registry to prevent metric name collisions.
	Registry *prometheus.Registry

	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	poolChannels      *prometheus.GaugeVec
	poolDiscovered    *prometheus.GaugeVec
}

// NewMetrics initializes and returns a new instance of the Metrics struct.
// It sets up a dedicated Prometheus registry, wraps all metrics with a
// constant `service` label, and creates an HTTP server exposing /metrics.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{Address: ":9090", ServiceName: "orders-api"})
//	go m.Server.ListenAndServe()
//
//	builder.WithObserver(m)
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	// All metrics emitted by this service will automatically include the label:
	//   service="<cfg.ServiceName>"
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
	}

	m.operationsTotal = createCounterVec("rabbitpool_operations_total",
		"Total number of pool builder operations", []string{"component", "operation", "status"})
	m.operationDuration = createHistogramVec("rabbitpool_operation_duration_seconds",
		"Duration of pool builder operations in seconds", []string{"component", "operation"}, prometheus.DefBuckets)
	m.poolChannels = createGaugeVec("rabbitpool_pool_channels",
		"Channels in the last pool built per topology key", []string{"store_key"})
	m.poolDiscovered = createGaugeVec("rabbitpool_pool_discovered_nodes",
		"Nodes discovered by the last build per topology key", []string{"store_key"})

	wrappedRegistry.MustRegister(
		m.operationsTotal,
		m.operationDuration,
		m.poolChannels,
		m.poolDiscovered,
	)

	// Register standard collectors if enabled.
	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: mux,
	}
	return m
}
