package discovery

import (
	"context"
	"strings"
)

// StaticDiscoverer answers from a fixed table.
type StaticDiscoverer struct {
	nodes map[string][]string
}

// NewStaticDiscoverer copies nodes.
func NewStaticDiscoverer(nodes map[string][]string) *StaticDiscoverer {
	cp := make(map[string][]string, len(nodes))
	for k, v := range nodes {
		cp[k] = append([]string(nil), v...)
	}
	return &StaticDiscoverer{nodes: cp}
}

// parseStatic reads the "prefix=a|b|c" entries of Config.Static. Entries
// without '=' are ignored.
func parseStatic(entries []string) map[string][]string {
	nodes := make(map[string][]string, len(entries))
	for _, entry := range entries {
		prefix, list, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		prefix = strings.TrimSpace(prefix)
		for _, addr := range strings.Split(list, "|") {
			if addr = strings.TrimSpace(addr); addr != "" {
				nodes[prefix] = append(nodes[prefix], addr)
			}
		}
	}
	return nodes
}

func (s *StaticDiscoverer) Discover(ctx context.Context, prefixes []string) (map[string][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make(map[string][]string, len(prefixes))
	for _, p := range prefixes {
		out[p] = append([]string{}, s.nodes[p]...)
	}
	return out, nil
}
