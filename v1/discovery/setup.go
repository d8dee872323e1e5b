package discovery

import (
	"fmt"

	"github.com/Aleph-Alpha/rabbit-pool/v1/consul"
	"github.com/Aleph-Alpha/rabbit-pool/v1/selector"
)

// New builds the backend selected by cfg.Backend.
func New(cfg Config) (Discoverer, error) {
	switch cfg.Backend {
	case BackendConsul, "":
		clients, err := consul.NewAgents(cfg.Consul.Config)
		if err != nil {
			return nil, err
		}
		return NewConsulDiscoverer(AgentsFromClients(clients), selector.NewRandomFromTime[ConsulAgent](), cfg.Consul.PassingOnly), nil

	case BackendDNS:
		return NewDNSDiscoverer(cfg.DNS)

	case BackendStatic:
		return NewStaticDiscoverer(parseStatic(cfg.Static)), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
