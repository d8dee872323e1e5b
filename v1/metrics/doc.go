// Package metrics exposes the pool builder's operations as Prometheus metrics.
//
// *Metrics implements observability.Observer. Attached to the rabbit dialer
// and to the channelpool builder it records:
//
//   - rabbitpool_operations_total{component, operation, status}
//   - rabbitpool_operation_duration_seconds{component, operation}
//   - rabbitpool_pool_channels{store_key}
//   - rabbitpool_pool_discovered_nodes{store_key}
//
// every series carrying the constant service label. A pool whose channel
// gauge is below its discovered gauge runs degraded.
//
// # Direct Usage (Without FX)
//
//	m := metrics.NewMetrics(metrics.Config{Address: ":9090", ServiceName: "orders-api"})
//	go m.Server.ListenAndServe()
//	defer m.Server.Shutdown(context.Background())
//
//	dialer.WithObserver(m)
//	builder.WithObserver(m)
//
// # FX Module
//
// FXModule provides *Metrics and the observability.Observer interface and
// runs the HTTP server between application start and stop.
package metrics
