// Package channelpool builds a pool of confirm-mode RabbitMQ channels, one
// per live node of a cluster.
//
// A build runs these stages in order:
//
//  1. read the cluster descriptor from the topology store (kvstore)
//  2. namespace exchange names with the instance suffix and queue names with
//     suffix + "@" + host (topology)
//  3. discover the nodes registered under the descriptor's prefix (discovery)
//  4. connect to every node
//  5. open one confirm channel per connection
//  6. declare the required exchanges with their bound queues, then bind
//
// Stages 4 to 6 fan out over all items and wait for every item to settle
// before the next stage starts. A failed item is dropped and its resources
// are closed; survivors keep their discovery order. Only invalid arguments,
// a missing or malformed descriptor, an unknown required exchange and
// store or discovery transport failures make Build return an error.
//
// # Usage
//
//	b := channelpool.NewBuilder(store, discoverer, dialer).
//		WithLogger(log).
//		WithObserver(metrics)
//
//	pool, err := b.Build(ctx, "rabbitmq/cluster", []string{"orders"}, "svc1")
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if pool.Report.Degraded() {
//		log.Warn("running on a partial cluster", nil, map[string]interface{}{
//			"discovered": pool.Report.Discovered,
//			"pooled":     pool.Len(),
//		})
//	}
//
// # Partial topology
//
// Declarations are not rolled back. A channel that fails its third exchange
// has already declared the first two on the broker.
package channelpool
