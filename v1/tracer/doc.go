// Package tracer sets up OpenTelemetry tracing.
//
// NewClient installs an SDK TracerProvider as the otel global, optionally
// exporting over OTLP/HTTP. The channelpool builder opens one span per build
// and one child span per stage on the global tracer, so installing the
// provider is all that is needed to see builds in a tracing backend.
//
// Example:
//
//	t, err := tracer.NewClient(tracer.Config{ServiceName: "orders-api", EnableExport: true}, log)
//	if err != nil {
//		return err
//	}
//	defer t.Shutdown(ctx)
//
//	ctx, span := t.StartSpan(ctx, "startup")
//	defer span.End()
package tracer
