package channelpool

import (
	"errors"

	"github.com/Aleph-Alpha/rabbit-pool/v1/rabbit"
	"github.com/Aleph-Alpha/rabbit-pool/v1/topology"
)

// Entry is one pooled channel together with the connection it was opened on.
type Entry struct {
	// Index is the node's position in the discovery result.
	Index int

	// Node is the broker address, "host:port".
	Node string

	Connection rabbit.Connection
	Channel    rabbit.Channel
}

// Stage names used in Report and in logs.
const (
	StageConnect   = "connect"
	StageProvision = "provision"
	StageInstall   = "install"
)

// Failure records one dropped node.
type Failure struct {
	Stage string
	Index int
	Node  string
	Err   error
}

// Report counts the survivors of every stage. Callers compare Installed
// with Discovered to detect a degraded pool.
type Report struct {
	Discovered  int
	Connected   int
	Provisioned int
	Installed   int

	// TopologySkipped is true when no exchange was required.
	TopologySkipped bool

	Failures []Failure
}

// Degraded reports whether any discovered node is missing from the pool.
func (r Report) Degraded() bool {
	return r.Installed < r.Discovered
}

// Pool is the result of a build. The caller owns every connection and
// channel in it and releases them with Close.
type Pool struct {
	Entries []Entry

	// Settings are the namespaced exchange settings the pool was built with.
	Settings topology.ExchangeSettings

	Report Report
}

// Channels returns the pooled channels in discovery order.
func (p *Pool) Channels() []rabbit.Channel {
	channels := make([]rabbit.Channel, 0, len(p.Entries))
	for _, e := range p.Entries {
		channels = append(channels, e.Channel)
	}
	return channels
}

// Len returns the number of pooled channels.
func (p *Pool) Len() int {
	return len(p.Entries)
}

// Nodes returns the address of every pooled channel's node.
func (p *Pool) Nodes() []string {
	nodes := make([]string, 0, len(p.Entries))
	for _, e := range p.Entries {
		nodes = append(nodes, e.Node)
	}
	return nodes
}

// Close closes every channel and then its connection. It keeps going on
// failure and returns the joined errors.
func (p *Pool) Close() error {
	var errs []error
	for _, e := range p.Entries {
		errs = append(errs, closeEntry(e)...)
	}
	p.Entries = nil
	return errors.Join(errs...)
}

func closeEntry(e Entry) []error {
	var errs []error
	if e.Channel != nil {
		if err := e.Channel.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if e.Connection != nil {
		if err := e.Connection.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
