package discovery

import (
	"context"
	"fmt"
	"net"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/miekg/dns"
)

// DNSExchanger is the subset of *dns.Client used for SRV lookups.
type DNSExchanger interface {
	ExchangeContext(ctx context.Context, m *dns.Msg, address string) (*dns.Msg, time.Duration, error)
}

// DNSDiscoverer resolves nodes through SRV records.
type DNSDiscoverer struct {
	client DNSExchanger
	server string
	domain string
	proto  string
}

// NewDNSDiscoverer builds a discoverer querying server. An empty server is
// taken from /etc/resolv.conf.
func NewDNSDiscoverer(cfg DNSConfig) (*DNSDiscoverer, error) {
	server := cfg.Server
	if server == "" {
		cc, err := dns.ClientConfigFromFile("/etc/resolv.conf")
		if err != nil {
			return nil, fmt.Errorf("discovery: read resolv.conf: %w", err)
		}
		if len(cc.Servers) == 0 {
			return nil, fmt.Errorf("discovery: resolv.conf lists no nameserver")
		}
		server = net.JoinHostPort(cc.Servers[0], cc.Port)
	}
	return newDNSDiscoverer(&dns.Client{Timeout: cfg.Timeout}, server, cfg), nil
}

func newDNSDiscoverer(client DNSExchanger, server string, cfg DNSConfig) *DNSDiscoverer {
	proto := cfg.Proto
	if proto == "" {
		proto = "tcp"
	}
	return &DNSDiscoverer{
		client: client,
		server: server,
		domain: strings.Trim(cfg.Domain, "."),
		proto:  proto,
	}
}

// srvName returns _prefix._proto.domain.
func (d *DNSDiscoverer) srvName(prefix string) string {
	return dns.Fqdn("_" + prefix + "._" + d.proto + "." + d.domain)
}

func (d *DNSDiscoverer) Discover(ctx context.Context, prefixes []string) (map[string][]string, error) {
	out := make(map[string][]string, len(prefixes))
	for _, prefix := range prefixes {
		m := new(dns.Msg)
		m.SetQuestion(d.srvName(prefix), dns.TypeSRV)

		resp, _, err := d.client.ExchangeContext(ctx, m, d.server)
		if err != nil {
			return nil, fmt.Errorf("discovery: srv lookup %s: %w", prefix, err)
		}
		switch resp.Rcode {
		case dns.RcodeSuccess:
		case dns.RcodeNameError:
			out[prefix] = []string{}
			continue
		default:
			return nil, fmt.Errorf("discovery: srv lookup %s: %s", prefix, dns.RcodeToString[resp.Rcode])
		}
		out[prefix] = srvAddresses(resp.Answer)
	}
	return out, nil
}

// srvAddresses orders records by priority, then heavier weight first, then target.
func srvAddresses(answer []dns.RR) []string {
	var records []*dns.SRV
	for _, rr := range answer {
		if srv, ok := rr.(*dns.SRV); ok {
			records = append(records, srv)
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if a.Weight != b.Weight {
			return a.Weight > b.Weight
		}
		return a.Target < b.Target
	})

	addrs := make([]string, 0, len(records))
	for _, r := range records {
		addrs = append(addrs, net.JoinHostPort(strings.TrimSuffix(r.Target, "."), strconv.Itoa(int(r.Port))))
	}
	return addrs
}
