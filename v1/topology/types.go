package topology

import (
	"math"
	"sort"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ClusterDescriptor is the record kept in the topology store for one cluster.
type ClusterDescriptor struct {
	// ServicesNamePrefix selects the broker services in service discovery.
	ServicesNamePrefix string `json:"rabbitmqConsulServicesNamePrefix"`

	// PlainAuth is the connection URI prefix including credentials,
	// e.g. "amqp://user:secret@". Node addresses are appended to it.
	PlainAuth string `json:"plainAuth"`

	Settings ExchangeSettings `json:"settings"`
}

// ExchangeSettings holds every exchange of the cluster keyed by exchange key.
type ExchangeSettings struct {
	Exchanges map[string]Exchange `json:"exchanges"`
}

// Exchange is one exchange and the queues bound to it, keyed by bind key.
type Exchange struct {
	Name  string             `json:"name"`
	Type  string             `json:"type"`
	Opts  ExchangeOptions    `json:"opts"`
	Binds map[string]Binding `json:"binds"`
}

// Binding routes messages from the owning exchange to MQ.
type Binding struct {
	MQ         Queue  `json:"mq"`
	RoutingKey string `json:"routingKey"`
}

// Queue is a queue declaration.
type Queue struct {
	Name string       `json:"name"`
	Opts QueueOptions `json:"opts"`
}

// ExchangeOptions mirrors the option object stored with each exchange.
// Durable defaults to true when absent.
type ExchangeOptions struct {
	Durable           *bool                  `json:"durable,omitempty"`
	Internal          bool                   `json:"internal,omitempty"`
	AutoDelete        bool                   `json:"autoDelete,omitempty"`
	AlternateExchange string                 `json:"alternateExchange,omitempty"`
	Arguments         map[string]interface{} `json:"arguments,omitempty"`
}

// QueueOptions mirrors the option object stored with each bound queue.
// Durable defaults to true when absent.
type QueueOptions struct {
	Exclusive            bool                   `json:"exclusive,omitempty"`
	Durable              *bool                  `json:"durable,omitempty"`
	AutoDelete           bool                   `json:"autoDelete,omitempty"`
	MessageTTL           int64                  `json:"messageTtl,omitempty"`
	Expires              int64                  `json:"expires,omitempty"`
	DeadLetterExchange   string                 `json:"deadLetterExchange,omitempty"`
	DeadLetterRoutingKey string                 `json:"deadLetterRoutingKey,omitempty"`
	MaxLength            int64                  `json:"maxLength,omitempty"`
	MaxPriority          int64                  `json:"maxPriority,omitempty"`
	Overflow             string                 `json:"overflow,omitempty"`
	Arguments            map[string]interface{} `json:"arguments,omitempty"`
}

// IsDurable reports the effective durability.
func (o ExchangeOptions) IsDurable() bool {
	return o.Durable == nil || *o.Durable
}

// Args renders the options that travel as declaration arguments.
func (o ExchangeOptions) Args() amqp.Table {
	args := tableFrom(o.Arguments)
	if o.AlternateExchange != "" {
		args["alternate-exchange"] = o.AlternateExchange
	}
	return nilIfEmpty(args)
}

// IsDurable reports the effective durability.
func (o QueueOptions) IsDurable() bool {
	return o.Durable == nil || *o.Durable
}

// Args renders the x-* queue arguments.
func (o QueueOptions) Args() amqp.Table {
	args := tableFrom(o.Arguments)
	if o.MessageTTL > 0 {
		args["x-message-ttl"] = o.MessageTTL
	}
	if o.Expires > 0 {
		args["x-expires"] = o.Expires
	}
	if o.DeadLetterExchange != "" {
		args["x-dead-letter-exchange"] = o.DeadLetterExchange
	}
	if o.DeadLetterRoutingKey != "" {
		args["x-dead-letter-routing-key"] = o.DeadLetterRoutingKey
	}
	if o.MaxLength > 0 {
		args["x-max-length"] = o.MaxLength
	}
	if o.MaxPriority > 0 {
		args["x-max-priority"] = o.MaxPriority
	}
	if o.Overflow != "" {
		args["x-overflow"] = o.Overflow
	}
	return nilIfEmpty(args)
}

// tableFrom copies raw JSON arguments into an amqp.Table. JSON numbers decode
// as float64; whole numbers are sent as int64 because the broker rejects
// floating point values for the numeric x-* arguments.
func tableFrom(raw map[string]interface{}) amqp.Table {
	t := amqp.Table{}
	for k, v := range raw {
		if f, ok := v.(float64); ok && f == math.Trunc(f) && math.Abs(f) < math.MaxInt64 {
			t[k] = int64(f)
			continue
		}
		t[k] = v
	}
	return t
}

func nilIfEmpty(t amqp.Table) amqp.Table {
	if len(t) == 0 {
		return nil
	}
	return t
}

// Require returns the exchanges for keys in the given order.
func (s ExchangeSettings) Require(keys []string) ([]Exchange, error) {
	out := make([]Exchange, 0, len(keys))
	for _, k := range keys {
		ex, ok := s.Exchanges[k]
		if !ok {
			return nil, &UnknownExchangeError{Key: k}
		}
		out = append(out, ex)
	}
	return out, nil
}

// BindKeys returns the bind keys of e in sorted order so that declarations
// and bindings are issued deterministically.
func (e Exchange) BindKeys() []string {
	keys := make([]string, 0, len(e.Binds))
	for k := range e.Binds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ExchangeKeys returns the exchange keys in sorted order.
func (s ExchangeSettings) ExchangeKeys() []string {
	keys := make([]string, 0, len(s.Exchanges))
	for k := range s.Exchanges {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// UnknownExchangeError names the missing key. It matches ErrUnknownExchange.
type UnknownExchangeError struct {
	Key string
}

func (e *UnknownExchangeError) Error() string {
	return ErrUnknownExchange.Error() + ": " + e.Key
}

func (e *UnknownExchangeError) Unwrap() error { return ErrUnknownExchange }
