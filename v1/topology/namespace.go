package topology

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Decode parses a stored descriptor and checks the fields the pipeline relies on.
func Decode(raw []byte) (*ClusterDescriptor, error) {
	var d ClusterDescriptor
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDescriptor, err)
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

func (d *ClusterDescriptor) validate() error {
	if d.ServicesNamePrefix == "" {
		return fmt.Errorf("%w: missing rabbitmqConsulServicesNamePrefix", ErrMalformedDescriptor)
	}
	for exKey, ex := range d.Settings.Exchanges {
		if ex.Name == "" || ex.Type == "" {
			return fmt.Errorf("%w: exchange %q needs a name and a type", ErrMalformedDescriptor, exKey)
		}
		for bindKey, b := range ex.Binds {
			if b.MQ.Name == "" {
				return fmt.Errorf("%w: bind %q of exchange %q has no queue name", ErrMalformedDescriptor, bindKey, exKey)
			}
		}
	}
	return nil
}

// NormalizeSuffix makes sure the suffix starts with a single leading dash.
func NormalizeSuffix(suffix string) (string, error) {
	if suffix == "" {
		return "", ErrInvalidSuffix
	}
	if strings.HasPrefix(suffix, "-") {
		return suffix, nil
	}
	return "-" + suffix, nil
}

// ExchangeName is the tenant-scoped exchange name. Exchanges are shared by
// every instance of the tenant.
func ExchangeName(raw, suffix string) string {
	return raw + suffix
}

// QueueName is the instance-scoped queue name: raw + suffix + "@" + host.
func QueueName(raw, suffix, host string) string {
	return raw + suffix + "@" + host
}

// Namespace returns a copy of d with every exchange name and bound queue
// name rewritten for the given suffix and host. suffix must already be
// normalized. d itself is left untouched.
func Namespace(d *ClusterDescriptor, suffix, host string) *ClusterDescriptor {
	out := &ClusterDescriptor{
		ServicesNamePrefix: d.ServicesNamePrefix,
		PlainAuth:          d.PlainAuth,
		Settings: ExchangeSettings{
			Exchanges: make(map[string]Exchange, len(d.Settings.Exchanges)),
		},
	}
	for exKey, ex := range d.Settings.Exchanges {
		binds := make(map[string]Binding, len(ex.Binds))
		for bindKey, b := range ex.Binds {
			b.MQ.Name = QueueName(b.MQ.Name, suffix, host)
			binds[bindKey] = b
		}
		ex.Name = ExchangeName(ex.Name, suffix)
		ex.Binds = binds
		out.Settings.Exchanges[exKey] = ex
	}
	return out
}
