package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Aleph-Alpha/rabbit-pool/v1/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveOperation(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "test"})

	m.ObserveOperation(observability.OperationContext{Component: "rabbit", Operation: "dial", Duration: time.Millisecond})
	m.ObserveOperation(observability.OperationContext{Component: "rabbit", Operation: "dial", Error: errors.New("refused")})
	m.ObserveOperation(observability.OperationContext{Component: "rabbit", Operation: "dial"})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues("rabbit", "dial", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues("rabbit", "dial", "error")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.operationDuration))
}

func TestObserveBuildSetsPoolGauges(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "test"})

	m.ObserveOperation(observability.OperationContext{
		Component: "channelpool",
		Operation: "build",
		Resource:  "rabbitmq/orders",
		Size:      2,
		Metadata:  map[string]interface{}{"discovered": 3},
	})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.poolChannels.WithLabelValues("rabbitmq/orders")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.poolDiscovered.WithLabelValues("rabbitmq/orders")))

	// a failed build leaves the gauges alone
	m.ObserveOperation(observability.OperationContext{
		Component: "channelpool",
		Operation: "build",
		Resource:  "rabbitmq/orders",
		Error:     errors.New("no record found"),
	})
	assert.Equal(t, 2.0, testutil.ToFloat64(m.poolChannels.WithLabelValues("rabbitmq/orders")))
}

func TestMetricsEndpoint(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "orders-api", EnableDefaultCollectors: true})
	m.SetPoolSize("rabbitmq/orders", 1, 1)

	rec := httptest.NewRecorder()
	m.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `rabbitpool_pool_channels{service="orders-api",store_key="rabbitmq/orders"} 1`)
	assert.Contains(t, body, "go_goroutines")
}

func TestMetricsImplementsCollector(t *testing.T) {
	var _ MetricsCollector = NewMetrics(Config{})
	var _ observability.Observer = NewMetrics(Config{})
}
