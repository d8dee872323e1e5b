package channelpool

import (
	"context"
	"time"

	"github.com/Aleph-Alpha/rabbit-pool/v1/observability"
)

func (b *Builder) logInfo(ctx context.Context, msg string, fields map[string]interface{}) {
	if b.logger != nil {
		b.logger.InfoWithContext(ctx, msg, nil, fields)
	}
}

func (b *Builder) logWarn(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if b.logger != nil {
		b.logger.WarnWithContext(ctx, msg, err, fields)
	}
}

func (b *Builder) logError(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if b.logger != nil {
		b.logger.ErrorWithContext(ctx, msg, err, fields)
	}
}

// observeOperation notifies the observer about an operation if one is configured.
func (b *Builder) observeOperation(operation, resource, subResource string, duration time.Duration, err error, size int64, metadata map[string]interface{}) {
	if b.observer == nil {
		return
	}
	b.observer.ObserveOperation(observability.OperationContext{
		Component:   "channelpool",
		Operation:   operation,
		Resource:    resource,
		SubResource: subResource,
		Duration:    duration,
		Error:       err,
		Size:        size,
		Metadata:    metadata,
	})
}
