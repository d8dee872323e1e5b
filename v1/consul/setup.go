// Package consul builds the set of Consul agent clients shared by the
// topology store and node discovery backends.
package consul

import (
	"errors"
	"fmt"

	"github.com/hashicorp/consul/api"
)

// ErrNoAgents is returned when the configuration lists no agent.
var ErrNoAgents = errors.New("consul: no agent addresses configured")

// NewAgents returns one API client per configured agent address, in order.
func NewAgents(cfg Config) ([]*api.Client, error) {
	if len(cfg.Addresses) == 0 {
		return nil, ErrNoAgents
	}

	agents := make([]*api.Client, 0, len(cfg.Addresses))
	for _, addr := range cfg.Addresses {
		c, err := api.NewClient(&api.Config{
			Address:    addr,
			Scheme:     cfg.Scheme,
			Token:      cfg.Token,
			Datacenter: cfg.Datacenter,
		})
		if err != nil {
			return nil, fmt.Errorf("consul: failed to create client for agent %s: %w", addr, err)
		}
		agents = append(agents, c)
	}
	return agents, nil
}
