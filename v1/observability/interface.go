// Package observability defines the hook through which components report the
// operations they perform, so that metrics and tracing backends can be
// attached without the components depending on them.
package observability

import "time"

// OperationContext describes a single completed operation.
type OperationContext struct {
	// Component is the reporting package, e.g. "rabbit" or "channelpool".
	Component string

	// Operation is the verb, e.g. "dial", "create_channel", "install_topology".
	Operation string

	// Resource is the primary object of the operation (node address, exchange, key).
	Resource string

	// SubResource adds optional detail such as a routing key or a queue name.
	SubResource string

	// Duration is the wall time the operation took.
	Duration time.Duration

	// Error is nil when the operation succeeded.
	Error error

	// Size is an optional payload size in bytes, or an item count.
	Size int64

	// Metadata carries free-form extra attributes.
	Metadata map[string]interface{}
}

// Observer receives operation notifications. Implementations must be safe
// for concurrent use because fan-out stages report from many goroutines.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}
