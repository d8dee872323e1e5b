package metrics

import (
	"github.com/Aleph-Alpha/rabbit-pool/v1/observability"
	"github.com/prometheus/client_golang/prometheus"
)

// ObserveOperation counts the operation, records its duration and, for a
// completed channelpool build, updates the pool gauges.
func (m *Metrics) ObserveOperation(op observability.OperationContext) {
	status := "success"
	if op.Error != nil {
		status = "error"
	}
	m.operationsTotal.WithLabelValues(op.Component, op.Operation, status).Inc()
	m.operationDuration.WithLabelValues(op.Component, op.Operation).Observe(op.Duration.Seconds())

	if op.Component == "channelpool" && op.Operation == "build" && op.Error == nil {
		discovered, _ := op.Metadata["discovered"].(int)
		m.SetPoolSize(op.Resource, int(op.Size), discovered)
	}
}

// SetPoolSize records the channel count of the pool built from storeKey.
// Example: metrics.SetPoolSize("rabbitmq/orders", 2, 3)
func (m *Metrics) SetPoolSize(storeKey string, channels, discovered int) {
	m.poolChannels.WithLabelValues(storeKey).Set(float64(channels))
	m.poolDiscovered.WithLabelValues(storeKey).Set(float64(discovered))
}

// createCounterVec defines a new CounterVec with standard options.
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

// createGaugeVec defines a new GaugeVec.
func createGaugeVec(name, help string, labels []string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}
