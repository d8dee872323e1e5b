package discovery

import (
	"context"
	"fmt"
	"net"
	"sort"
	"strconv"
	"strings"

	"github.com/Aleph-Alpha/rabbit-pool/v1/selector"
	"github.com/hashicorp/consul/api"
)

// ConsulCatalog is the subset of *api.Catalog used for discovery.
type ConsulCatalog interface {
	Services(q *api.QueryOptions) (map[string][]string, *api.QueryMeta, error)
}

// ConsulHealth is the subset of *api.Health used for discovery.
type ConsulHealth interface {
	Service(service, tag string, passingOnly bool, q *api.QueryOptions) ([]*api.ServiceEntry, *api.QueryMeta, error)
}

// ConsulAgent is one agent's catalog and health endpoints.
type ConsulAgent struct {
	Catalog ConsulCatalog
	Health  ConsulHealth
}

// AgentsFromClients adapts API clients.
func AgentsFromClients(clients []*api.Client) []ConsulAgent {
	agents := make([]ConsulAgent, 0, len(clients))
	for _, c := range clients {
		agents = append(agents, ConsulAgent{Catalog: c.Catalog(), Health: c.Health()})
	}
	return agents
}

// ConsulDiscoverer lists every catalog service whose name starts with a
// prefix and collects the nodes of those services. All lookups of one
// Discover call go to the same agent.
type ConsulDiscoverer struct {
	agents      []ConsulAgent
	selector    selector.Selector[ConsulAgent]
	passingOnly bool
}

// NewConsulDiscoverer builds a discoverer. A nil selector picks agents at random.
func NewConsulDiscoverer(agents []ConsulAgent, sel selector.Selector[ConsulAgent], passingOnly bool) *ConsulDiscoverer {
	if sel == nil {
		sel = selector.NewRandomFromTime[ConsulAgent]()
	}
	return &ConsulDiscoverer{agents: agents, selector: sel, passingOnly: passingOnly}
}

func (d *ConsulDiscoverer) Discover(ctx context.Context, prefixes []string) (map[string][]string, error) {
	agent, ok := d.selector.Pick(d.agents)
	if !ok {
		return nil, ErrNoAgent
	}
	q := (&api.QueryOptions{}).WithContext(ctx)

	services, _, err := agent.Catalog.Services(q)
	if err != nil {
		return nil, fmt.Errorf("discovery: consul catalog: %w", err)
	}
	names := make([]string, 0, len(services))
	for name := range services {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string][]string, len(prefixes))
	for _, prefix := range prefixes {
		addrs := []string{}
		for _, name := range names {
			if !strings.HasPrefix(name, prefix) {
				continue
			}
			entries, _, err := agent.Health.Service(name, "", d.passingOnly, q)
			if err != nil {
				return nil, fmt.Errorf("discovery: consul health %s: %w", name, err)
			}
			addrs = append(addrs, entryAddresses(entries)...)
		}
		out[prefix] = addrs
	}
	return out, nil
}

// entryAddresses renders entries as host:port ordered by node name. The
// service address wins over the node address when set.
func entryAddresses(entries []*api.ServiceEntry) []string {
	sorted := append([]*api.ServiceEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return nodeName(sorted[i]) < nodeName(sorted[j])
	})

	addrs := make([]string, 0, len(sorted))
	for _, e := range sorted {
		if e == nil || e.Service == nil {
			continue
		}
		host := e.Service.Address
		if host == "" && e.Node != nil {
			host = e.Node.Address
		}
		if host == "" {
			continue
		}
		addrs = append(addrs, net.JoinHostPort(host, strconv.Itoa(e.Service.Port)))
	}
	return addrs
}

func nodeName(e *api.ServiceEntry) string {
	if e == nil || e.Node == nil {
		return ""
	}
	return e.Node.Node
}
