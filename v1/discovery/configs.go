package discovery

import (
	"time"

	"github.com/Aleph-Alpha/rabbit-pool/v1/consul"
)

// Supported values of Config.Backend.
const (
	BackendConsul = "consul"
	BackendDNS    = "dns"
	BackendStatic = "static"
)

// Config selects and configures the discovery backend.
type Config struct {
	Backend string `envconfig:"BACKEND" default:"consul"`

	Consul ConsulConfig `envconfig:"CONSUL"`
	DNS    DNSConfig    `envconfig:"DNS"`

	// Static lists "prefix=addr|addr" entries, e.g.
	// "rabbitmq-orders=10.0.0.1:5672|10.0.0.2:5672".
	Static []string `envconfig:"STATIC"`
}

// ConsulConfig configures Consul catalog discovery.
type ConsulConfig struct {
	consul.Config

	// PassingOnly drops nodes whose health checks are not passing.
	PassingOnly bool `envconfig:"PASSING_ONLY" default:"true"`
}

// DNSConfig configures DNS SRV discovery. Nodes of prefix p are looked up
// as _p._<Proto>.<Domain>.
type DNSConfig struct {
	// Server is "host:port" of the resolver. Empty reads /etc/resolv.conf.
	Server  string        `envconfig:"SERVER"`
	Domain  string        `envconfig:"DOMAIN" default:"service.consul"`
	Proto   string        `envconfig:"PROTO" default:"tcp"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"5s"`
}
