package channelpool

import (
	"context"

	"github.com/Aleph-Alpha/rabbit-pool/v1/discovery"
	"github.com/Aleph-Alpha/rabbit-pool/v1/kvstore"
	"github.com/Aleph-Alpha/rabbit-pool/v1/observability"
	"github.com/Aleph-Alpha/rabbit-pool/v1/rabbit"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

// FXModule provides a *Builder and the *Pool it builds from Config. The
// pool is built when the application starts and closed when it stops.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    kvstore.FXModule,
//	    discovery.FXModule,
//	    rabbit.FXModule,
//	    channelpool.FXModule,
//	    fx.Provide(loadConfigs),
//	    fx.Invoke(func(p *channelpool.Pool) { ... }),
//	)
var FXModule = fx.Module("channelpool",
	fx.Provide(
		NewBuilderWithDI,
		NewPoolWithDI,
	),
)

// BuilderParams groups the dependencies needed to create a Builder
type BuilderParams struct {
	fx.In

	Config     Config
	Store      kvstore.Store
	Discoverer discovery.Discoverer
	Dialer     rabbit.Dialer
	Logger     Logger                 `optional:"true"`
	Observer   observability.Observer `optional:"true"`
	Tracer     trace.Tracer           `optional:"true"`
}

// NewBuilderWithDI creates a Builder using dependency injection.
func NewBuilderWithDI(params BuilderParams) *Builder {
	b := NewBuilder(params.Store, params.Discoverer, params.Dialer).
		WithHostname(params.Config.HostID).
		WithMaxConcurrency(params.Config.MaxConcurrency)

	if params.Logger != nil {
		b.WithLogger(params.Logger)
	}

	if params.Observer != nil {
		b.WithObserver(params.Observer)
	}

	if params.Tracer != nil {
		b.WithTracer(params.Tracer)
	}

	return b
}

// PoolParams groups the dependencies needed to build the Pool
type PoolParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    Config
	Builder   *Builder
}

// NewPoolWithDI provides the pool described by Config. The pool is built in
// an OnStart hook under the start context, so it stays empty until the
// application has started; a build failure aborts the start. The pool is
// closed on stop.
func NewPoolWithDI(params PoolParams) *Pool {
	cfg := params.Config
	pool := &Pool{}

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			built, err := params.Builder.Build(ctx, cfg.StoreKey, cfg.RequiredExchanges, cfg.InstanceSuffix)
			if err != nil {
				return err
			}
			*pool = *built
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return pool.Close()
		},
	})
	return pool
}
