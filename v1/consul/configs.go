package consul

// Config lists the Consul agents a client may talk to. Every request goes to
// one agent chosen by the caller's selector.
type Config struct {
	// Addresses are agent HTTP addresses ("host:port").
	Addresses []string `envconfig:"ADDRESSES" default:"127.0.0.1:8500"`

	// Scheme is "http" or "https".
	Scheme string `envconfig:"SCHEME" default:"http"`

	// Token is the ACL token sent with every request.
	Token string `envconfig:"TOKEN"`

	// Datacenter overrides the agent's datacenter.
	Datacenter string `envconfig:"DATACENTER"`
}
