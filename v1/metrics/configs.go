package metrics

// Config defines the configuration for the Prometheus metrics server.
type Config struct {
	// Address determines the network address where the Prometheus
	// metrics HTTP server listens, e.g. ":9090" or "127.0.0.1:9100".
	Address string `envconfig:"ADDRESS" default:":9090"`

	// EnableDefaultCollectors registers the Go runtime, process and build
	// info collectors.
	EnableDefaultCollectors bool `envconfig:"ENABLE_DEFAULT_COLLECTORS" default:"true"`

	// ServiceName is attached to every metric as the constant "service" label.
	ServiceName string `envconfig:"SERVICE_NAME" default:"rabbit-pool"`
}
