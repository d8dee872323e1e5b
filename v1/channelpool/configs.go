package channelpool

// Config holds the arguments of the build run by the FX module.
type Config struct {
	// StoreKey is the topology store key of the cluster descriptor.
	StoreKey string `envconfig:"STORE_KEY"`

	// RequiredExchanges are the exchange keys to declare on every channel.
	// Empty skips topology installation.
	RequiredExchanges []string `envconfig:"REQUIRED_EXCHANGES"`

	// InstanceSuffix namespaces exchange and queue names. A leading dash is
	// added when missing.
	InstanceSuffix string `envconfig:"INSTANCE_SUFFIX"`

	// HostID overrides os.Hostname in queue names. Two processes on the
	// same host with the same suffix must set distinct values.
	HostID string `envconfig:"HOST_ID"`

	// MaxConcurrency bounds in-flight operations per stage; 0 is unbounded.
	MaxConcurrency int `envconfig:"MAX_CONCURRENCY" default:"0"`
}
