package topology

import (
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ordersDescriptor = `{
  "rabbitmqConsulServicesNamePrefix": "rabbitmq-orders",
  "plainAuth": "amqp://svc:secret@",
  "settings": {
    "exchanges": {
      "orders": {
        "name": "orders",
        "type": "topic",
        "opts": {"durable": false, "alternateExchange": "orders.unrouted"},
        "binds": {
          "inbound": {
            "mq": {"name": "orders.in", "opts": {"messageTtl": 60000, "deadLetterExchange": "dlx"}},
            "routingKey": "orders.#"
          },
          "audit": {
            "mq": {"name": "orders.audit", "opts": {}},
            "routingKey": "#"
          }
        }
      },
      "billing": {
        "name": "billing",
        "type": "direct",
        "opts": {},
        "binds": {}
      }
    }
  }
}`

func decodeOrders(t *testing.T) *ClusterDescriptor {
	t.Helper()
	d, err := Decode([]byte(ordersDescriptor))
	require.NoError(t, err)
	return d
}

func TestDecode(t *testing.T) {
	d := decodeOrders(t)

	assert.Equal(t, "rabbitmq-orders", d.ServicesNamePrefix)
	assert.Equal(t, "amqp://svc:secret@", d.PlainAuth)
	require.Contains(t, d.Settings.Exchanges, "orders")

	orders := d.Settings.Exchanges["orders"]
	assert.False(t, orders.Opts.IsDurable())
	assert.Equal(t, []string{"audit", "inbound"}, orders.BindKeys())
	assert.True(t, d.Settings.Exchanges["billing"].Opts.IsDurable())
}

func TestDecodeRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":       `{"settings":`,
		"no prefix":      `{"plainAuth":"amqp://","settings":{"exchanges":{}}}`,
		"no type":        `{"rabbitmqConsulServicesNamePrefix":"p","settings":{"exchanges":{"a":{"name":"a"}}}}`,
		"no queue name":  `{"rabbitmqConsulServicesNamePrefix":"p","settings":{"exchanges":{"a":{"name":"a","type":"fanout","binds":{"b":{"mq":{}}}}}}}`,
		"wrong exchange": `{"rabbitmqConsulServicesNamePrefix":"p","settings":{"exchanges":[]}}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(raw))
			assert.ErrorIs(t, err, ErrMalformedDescriptor)
		})
	}
}

func TestNormalizeSuffix(t *testing.T) {
	s, err := NormalizeSuffix("svc1")
	require.NoError(t, err)
	assert.Equal(t, "-svc1", s)

	s, err = NormalizeSuffix("-svc1")
	require.NoError(t, err)
	assert.Equal(t, "-svc1", s)

	_, err = NormalizeSuffix("")
	assert.ErrorIs(t, err, ErrInvalidSuffix)
}

func TestNamespace(t *testing.T) {
	raw := decodeOrders(t)
	suffix, _ := NormalizeSuffix("svc1")

	ns := Namespace(raw, suffix, "host-a")

	orders := ns.Settings.Exchanges["orders"]
	assert.Equal(t, "orders-svc1", orders.Name)
	assert.Equal(t, "orders.in-svc1@host-a", orders.Binds["inbound"].MQ.Name)
	assert.Equal(t, "orders.audit-svc1@host-a", orders.Binds["audit"].MQ.Name)
	assert.Equal(t, "orders.#", orders.Binds["inbound"].RoutingKey)
	assert.Equal(t, "billing-svc1", ns.Settings.Exchanges["billing"].Name)

	// the raw descriptor is not rewritten
	assert.Equal(t, "orders", raw.Settings.Exchanges["orders"].Name)
	assert.Equal(t, "orders.in", raw.Settings.Exchanges["orders"].Binds["inbound"].MQ.Name)
}

func TestNamespaceDeterministic(t *testing.T) {
	raw := decodeOrders(t)

	a := Namespace(raw, "-svc1", "host-a")
	b := Namespace(raw, "-svc1", "host-a")
	assert.Equal(t, a, b)
}

func TestNamespaceQueuesDifferPerHost(t *testing.T) {
	raw := decodeOrders(t)

	a := Namespace(raw, "-svc1", "host-a")
	b := Namespace(raw, "-svc1", "host-b")

	seen := map[string]bool{}
	for _, d := range []*ClusterDescriptor{a, b} {
		for _, ex := range d.Settings.Exchanges {
			for _, bind := range ex.Binds {
				assert.False(t, seen[bind.MQ.Name], "queue %s collides", bind.MQ.Name)
				seen[bind.MQ.Name] = true
			}
		}
	}
	assert.Equal(t, a.Settings.Exchanges["orders"].Name, b.Settings.Exchanges["orders"].Name)
}

func TestRequire(t *testing.T) {
	d := decodeOrders(t)

	exs, err := d.Settings.Require([]string{"billing", "orders"})
	require.NoError(t, err)
	require.Len(t, exs, 2)
	assert.Equal(t, "billing", exs[0].Name)
	assert.Equal(t, "orders", exs[1].Name)

	_, err = d.Settings.Require([]string{"orders", "missing"})
	assert.ErrorIs(t, err, ErrUnknownExchange)
	assert.Contains(t, err.Error(), "missing")
}

func TestOptionArgs(t *testing.T) {
	d := decodeOrders(t)
	orders := d.Settings.Exchanges["orders"]

	assert.Equal(t, amqp.Table{"alternate-exchange": "orders.unrouted"}, orders.Opts.Args())
	assert.Equal(t, amqp.Table{
		"x-message-ttl":          int64(60000),
		"x-dead-letter-exchange": "dlx",
	}, orders.Binds["inbound"].MQ.Opts.Args())
	assert.Nil(t, orders.Binds["audit"].MQ.Opts.Args())
}

func TestRawArgumentsNumbers(t *testing.T) {
	opts := QueueOptions{Arguments: map[string]interface{}{
		"x-queue-type":     "quorum",
		"x-delivery-limit": float64(5),
		"x-ratio":          0.5,
	}}

	assert.Equal(t, amqp.Table{
		"x-queue-type":     "quorum",
		"x-delivery-limit": int64(5),
		"x-ratio":          0.5,
	}, opts.Args())
}
