package kvstore

import (
	"context"
	"fmt"

	"github.com/Aleph-Alpha/rabbit-pool/v1/selector"
	"github.com/hashicorp/consul/api"
)

// ConsulKV is the subset of *api.KV used by ConsulStore.
type ConsulKV interface {
	Get(key string, q *api.QueryOptions) (*api.KVPair, *api.QueryMeta, error)
}

// ConsulStore reads descriptors from the Consul KV store. Each Get is sent
// to one agent picked by the selector.
type ConsulStore struct {
	agents   []ConsulKV
	selector selector.Selector[ConsulKV]
}

// NewConsulStore builds a store over the given agents. A nil selector picks
// agents at random.
func NewConsulStore(agents []ConsulKV, sel selector.Selector[ConsulKV]) *ConsulStore {
	if sel == nil {
		sel = selector.NewRandomFromTime[ConsulKV]()
	}
	return &ConsulStore{agents: agents, selector: sel}
}

// NewConsulStoreFromClients adapts API clients to agents.
func NewConsulStoreFromClients(clients []*api.Client, sel selector.Selector[ConsulKV]) *ConsulStore {
	agents := make([]ConsulKV, 0, len(clients))
	for _, c := range clients {
		agents = append(agents, c.KV())
	}
	return NewConsulStore(agents, sel)
}

func (s *ConsulStore) Get(ctx context.Context, key string) (*Record, error) {
	agent, ok := s.selector.Pick(s.agents)
	if !ok {
		return nil, ErrNoAgent
	}

	pair, _, err := agent.Get(key, (&api.QueryOptions{}).WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("kvstore: consul get %s: %w", key, err)
	}
	if pair == nil {
		return nil, nil
	}
	return &Record{Key: pair.Key, Value: pair.Value}, nil
}
