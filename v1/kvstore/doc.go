// Package kvstore reads cluster descriptors from the topology store.
//
// The Store interface has a single Get method. A missing key is reported as
// (nil, nil) so that callers can tell "no record" apart from an unreachable
// store. Backends:
//   - ConsulStore: Consul KV, one agent picked per request by a selector
//   - RedisStore: a string value under the key
//   - PostgresStore: a key/value table managed through gorm
//   - MinioStore: an object named after the key
//   - MemoryStore: an in-process map
//
// Configuration via environment (with the CLI's prefix):
//
//	TOPOLOGY_STORE_BACKEND=redis
//	TOPOLOGY_STORE_REDIS_ADDRESSES=redis-0:6379,redis-1:6379
//	TOPOLOGY_STORE_CONSUL_ADDRESSES=consul-0:8500,consul-1:8500
package kvstore
