package discovery

import "context"

// Discoverer resolves broker node addresses by service name prefix.
//
// The result maps every requested prefix to the ordered "host:port"
// addresses of the live nodes found for it. A prefix without nodes maps to
// an empty slice; that is not an error.
//
//go:generate mockgen -source=interface.go -destination=mock_interface.go -package=discovery
type Discoverer interface {
	Discover(ctx context.Context, prefixes []string) (map[string][]string, error)
}
