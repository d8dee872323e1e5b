// Package discovery resolves the live broker nodes of a cluster.
//
// A cluster descriptor names a service prefix; every registered service
// whose name starts with it contributes its nodes. Backends:
//   - ConsulDiscoverer: Consul catalog + health endpoints
//   - DNSDiscoverer: SRV records _<prefix>._tcp.<domain>
//   - StaticDiscoverer: a fixed table, for tests and local clusters
//
// Addresses are returned as "host:port", in a stable order, so the pool
// built from them keeps the discovery order.
package discovery
