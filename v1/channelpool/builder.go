package channelpool

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Aleph-Alpha/rabbit-pool/v1/discovery"
	"github.com/Aleph-Alpha/rabbit-pool/v1/kvstore"
	"github.com/Aleph-Alpha/rabbit-pool/v1/observability"
	"github.com/Aleph-Alpha/rabbit-pool/v1/rabbit"
	"github.com/Aleph-Alpha/rabbit-pool/v1/topology"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/Aleph-Alpha/rabbit-pool/v1/channelpool"

// Logger is an interface that matches the v1/logger.Logger interface.
type Logger interface {
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

// Builder assembles channel pools. A Builder holds no per-build state and
// may run several builds concurrently.
type Builder struct {
	store      kvstore.Store
	discoverer discovery.Discoverer
	dialer     rabbit.Dialer

	logger         Logger
	observer       observability.Observer
	tracer         trace.Tracer
	hostID         func() (string, error)
	maxConcurrency int
}

// NewBuilder creates a builder reading topology from store, resolving nodes
// with discoverer and connecting with dialer. The host identifier defaults
// to os.Hostname.
func NewBuilder(store kvstore.Store, discoverer discovery.Discoverer, dialer rabbit.Dialer) *Builder {
	return &Builder{
		store:      store,
		discoverer: discoverer,
		dialer:     dialer,
		tracer:     otel.Tracer(instrumentationName),
		hostID:     os.Hostname,
	}
}

// WithLogger attaches a logger. Dropped nodes are logged at warn level.
func (b *Builder) WithLogger(logger Logger) *Builder {
	b.logger = logger
	return b
}

// WithObserver attaches an observer notified once per stage and once per build.
func (b *Builder) WithObserver(observer observability.Observer) *Builder {
	b.observer = observer
	return b
}

// WithTracer replaces the global otel tracer.
func (b *Builder) WithTracer(tracer trace.Tracer) *Builder {
	b.tracer = tracer
	return b
}

// WithHostname fixes the host identifier appended to queue names. An empty
// host keeps os.Hostname.
func (b *Builder) WithHostname(host string) *Builder {
	if host != "" {
		b.hostID = func() (string, error) { return host, nil }
	}
	return b
}

// WithMaxConcurrency bounds the number of in-flight operations per stage.
// Zero or less means unbounded.
func (b *Builder) WithMaxConcurrency(n int) *Builder {
	b.maxConcurrency = n
	return b
}

// Build reads the cluster descriptor stored under storeKey, namespaces it
// with instanceSuffix and the host identifier, connects to every discovered
// node, opens one confirm channel per connection and, when
// requiredExchanges is not empty, declares those exchanges with their bound
// queues on every channel.
//
// Only precondition failures are returned as errors. A node that fails at
// any stage is dropped from the pool, so an empty pool is a valid result.
//
// Example:
//
//	pool, err := channelpool.NewBuilder(store, disc, dialer).
//		Build(ctx, "rabbitmq/cluster", []string{"orders"}, "svc1")
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
func (b *Builder) Build(ctx context.Context, storeKey string, requiredExchanges []string, instanceSuffix string) (*Pool, error) {
	start := time.Now()
	ctx, span := b.tracer.Start(ctx, "channelpool.Build", trace.WithAttributes(
		attribute.String("store.key", storeKey),
		attribute.StringSlice("exchanges.required", requiredExchanges),
	))
	defer span.End()

	pool, err := b.build(ctx, storeKey, requiredExchanges, instanceSuffix)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		b.logError(ctx, "channel pool build failed", err, map[string]interface{}{"store_key": storeKey})
		b.observeOperation("build", storeKey, "", time.Since(start), err, 0, nil)
		return nil, err
	}

	span.SetAttributes(attribute.Int("pool.size", pool.Len()))
	b.observeOperation("build", storeKey, "", time.Since(start), nil, int64(pool.Len()), map[string]interface{}{
		"discovered":  pool.Report.Discovered,
		"connected":   pool.Report.Connected,
		"provisioned": pool.Report.Provisioned,
		"installed":   pool.Report.Installed,
	})
	b.logInfo(ctx, "channel pool built", map[string]interface{}{
		"store_key":  storeKey,
		"discovered": pool.Report.Discovered,
		"pool_size":  pool.Len(),
	})
	return pool, nil
}

func (b *Builder) build(ctx context.Context, storeKey string, requiredExchanges []string, instanceSuffix string) (*Pool, error) {
	if storeKey == "" {
		return nil, ErrInvalidStoreKey
	}
	suffix, err := topology.NormalizeSuffix(instanceSuffix)
	if err != nil {
		return nil, err
	}
	host, err := b.hostID()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHostID, err)
	}
	if host == "" {
		return nil, ErrHostID
	}

	raw, err := b.loadDescriptor(ctx, storeKey)
	if err != nil {
		return nil, err
	}
	if _, err := raw.Settings.Require(requiredExchanges); err != nil {
		return nil, err
	}

	descriptor := topology.Namespace(raw, suffix, host)

	nodes, err := b.discover(ctx, descriptor.ServicesNamePrefix)
	if err != nil {
		return nil, err
	}

	report := Report{Discovered: len(nodes)}
	entries := make([]Entry, len(nodes))
	for i, node := range nodes {
		entries[i] = Entry{Index: i, Node: node}
	}

	entries = b.connect(ctx, descriptor.PlainAuth, entries, &report)
	report.Connected = len(entries)

	entries = b.provision(ctx, entries, &report)
	report.Provisioned = len(entries)

	if len(requiredExchanges) == 0 {
		report.TopologySkipped = true
	} else {
		exchanges, _ := descriptor.Settings.Require(requiredExchanges)
		entries = b.install(ctx, exchanges, entries, &report)
	}
	report.Installed = len(entries)

	return &Pool{Entries: entries, Settings: descriptor.Settings, Report: report}, nil
}

func (b *Builder) loadDescriptor(ctx context.Context, storeKey string) (*topology.ClusterDescriptor, error) {
	ctx, span := b.tracer.Start(ctx, "channelpool.loadDescriptor")
	defer span.End()

	start := time.Now()
	record, err := b.store.Get(ctx, storeKey)
	b.observeOperation("load_descriptor", storeKey, "", time.Since(start), err, recordSize(record), nil)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if record == nil || len(record.Value) == 0 {
		return nil, fmt.Errorf("%w: key %q", ErrRecordNotFound, storeKey)
	}
	return topology.Decode(record.Value)
}

func recordSize(r *kvstore.Record) int64 {
	if r == nil {
		return 0
	}
	return int64(len(r.Value))
}

func (b *Builder) discover(ctx context.Context, prefix string) ([]string, error) {
	ctx, span := b.tracer.Start(ctx, "channelpool.discover", trace.WithAttributes(
		attribute.String("services.prefix", prefix),
	))
	defer span.End()

	start := time.Now()
	found, err := b.discoverer.Discover(ctx, []string{prefix})
	if err != nil {
		span.RecordError(err)
		b.observeOperation("discover", prefix, "", time.Since(start), err, 0, nil)
		return nil, fmt.Errorf("%w: %w", ErrDiscoveryFailed, err)
	}
	nodes := found[prefix]
	span.SetAttributes(attribute.Int("nodes.count", len(nodes)))
	b.observeOperation("discover", prefix, "", time.Since(start), nil, int64(len(nodes)), nil)

	if len(nodes) == 0 {
		b.logWarn(ctx, "no broker node discovered", nil, map[string]interface{}{"prefix": prefix})
	}
	return nodes, nil
}

func (b *Builder) connect(ctx context.Context, plainAuth string, entries []Entry, report *Report) []Entry {
	return b.stage(ctx, StageConnect, entries, report, func(ctx context.Context, e Entry) (Entry, error) {
		conn, err := b.dialer.Dial(ctx, plainAuth+e.Node)
		if err != nil {
			return e, err
		}
		e.Connection = conn
		return e, nil
	})
}

func (b *Builder) provision(ctx context.Context, entries []Entry, report *Report) []Entry {
	return b.stage(ctx, StageProvision, entries, report, func(ctx context.Context, e Entry) (Entry, error) {
		ch, err := e.Connection.CreateConfirmChannel(ctx)
		if err != nil {
			return e, err
		}
		e.Channel = ch
		return e, nil
	})
}

func (b *Builder) install(ctx context.Context, exchanges []topology.Exchange, entries []Entry, report *Report) []Entry {
	return b.stage(ctx, StageInstall, entries, report, func(ctx context.Context, e Entry) (Entry, error) {
		return e, installTopology(ctx, e.Channel, exchanges)
	})
}

// stage fans fn out over entries, drops and closes the failed ones and
// returns the survivors in order.
func (b *Builder) stage(ctx context.Context, name string, entries []Entry, report *Report, fn func(context.Context, Entry) (Entry, error)) []Entry {
	ctx, span := b.tracer.Start(ctx, "channelpool."+name, trace.WithAttributes(
		attribute.Int("items.count", len(entries)),
	))
	defer span.End()

	start := time.Now()
	outcomes := SettleAll(ctx, b.maxConcurrency, entries, fn)

	for _, o := range Rejected(outcomes) {
		failed := entries[o.Index]
		report.Failures = append(report.Failures, Failure{Stage: name, Index: failed.Index, Node: failed.Node, Err: o.Err})
		b.logWarn(ctx, "dropping broker node", o.Err, map[string]interface{}{
			"stage":  name,
			"node":   failed.Node,
			"reason": rabbit.TranslateError(o.Err).Error(),
		})
		for _, err := range closeEntry(failed) {
			b.logWarn(ctx, "failed to release dropped node", err, map[string]interface{}{"stage": name, "node": failed.Node})
		}
	}

	survivors := Fulfilled(outcomes)
	span.SetAttributes(attribute.Int("items.survived", len(survivors)))
	b.observeOperation(name, "", "", time.Since(start), nil, int64(len(survivors)), map[string]interface{}{
		"attempted": len(entries),
		"failed":    len(entries) - len(survivors),
	})
	return survivors
}

// installTopology asserts every exchange and every queue bound to it, then
// binds the queues. Nothing is bound unless every assertion succeeded.
// Declarations made before a failure are left in place.
func installTopology(ctx context.Context, ch rabbit.Channel, exchanges []topology.Exchange) error {
	for _, ex := range exchanges {
		if err := ch.AssertExchange(ctx, ex.Name, ex.Type, ex.Opts); err != nil {
			return err
		}
		for _, key := range ex.BindKeys() {
			q := ex.Binds[key].MQ
			if err := ch.AssertQueue(ctx, q.Name, q.Opts); err != nil {
				return err
			}
		}
	}

	for _, ex := range exchanges {
		for _, key := range ex.BindKeys() {
			bind := ex.Binds[key]
			if err := ch.BindQueue(ctx, bind.MQ.Name, ex.Name, bind.RoutingKey); err != nil {
				return err
			}
		}
	}
	return nil
}
