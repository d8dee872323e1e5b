package rabbit

import (
	"time"

	"github.com/Aleph-Alpha/rabbit-pool/v1/observability"
)

// observeOperation notifies the observer about an operation if one is configured.
// This is used internally to track dial, channel and declare operations for metrics.
func (d *AMQPDialer) observeOperation(operation, resource, subResource string, duration time.Duration, err error) {
	if d == nil || d.observer == nil {
		return
	}
	d.observer.ObserveOperation(observability.OperationContext{
		Component:   "rabbit",
		Operation:   operation,
		Resource:    resource,
		SubResource: subResource,
		Duration:    duration,
		Error:       err,
	})
}
