package metrics

import (
	"github.com/Aleph-Alpha/rabbit-pool/v1/observability"
)

// MetricsCollector turns operation notifications into Prometheus metrics.
//
// This interface is implemented by the concrete *Metrics type.
type MetricsCollector interface {
	observability.Observer

	// SetPoolSize records the channel count of the pool built from storeKey.
	SetPoolSize(storeKey string, channels, discovered int)
}
