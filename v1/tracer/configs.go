package tracer

// Config defines the tracer settings.
type Config struct {
	// ServiceName is reported as the service.name resource attribute.
	ServiceName string `envconfig:"SERVICE_NAME" default:"rabbit-pool"`

	// AppEnv is reported as deployment.environment, e.g. "production".
	AppEnv string `envconfig:"APP_ENV" default:"development"`

	// EnableExport sends spans to an OTLP/HTTP collector. The collector
	// endpoint is read from the standard OTEL_EXPORTER_OTLP_* variables.
	EnableExport bool `envconfig:"ENABLE_EXPORT" default:"false"`
}
