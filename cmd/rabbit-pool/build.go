package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Aleph-Alpha/rabbit-pool/v1/channelpool"
	"github.com/Aleph-Alpha/rabbit-pool/v1/discovery"
	"github.com/Aleph-Alpha/rabbit-pool/v1/kvstore"
	"github.com/Aleph-Alpha/rabbit-pool/v1/logger"
	"github.com/Aleph-Alpha/rabbit-pool/v1/metrics"
	"github.com/Aleph-Alpha/rabbit-pool/v1/rabbit"
	"github.com/Aleph-Alpha/rabbit-pool/v1/tracer"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

type buildOptions struct {
	storeKey       string
	exchanges      []string
	suffix         string
	hostID         string
	descriptorFile string
	serve          bool
	timeout        time.Duration
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "rabbit-pool",
		Short:         "Confirm-channel pools for discovered RabbitMQ clusters",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newBuildCommand())
	return root
}

func newBuildCommand() *cobra.Command {
	var opts buildOptions

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a channel pool and print the nodes it covers",
		Long: "Reads the cluster descriptor from the topology store, discovers the broker nodes, " +
			"opens one confirm channel per node and declares the required exchanges. " +
			"Backends are configured through the environment (KVSTORE_*, DISCOVERY_*, RABBIT_*).",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runBuild(cmd.Context(), cmd.OutOrStdout(), cfg, opts)
		},
	}

	cmd.Flags().StringVar(&opts.storeKey, "store-key", "", "topology store key of the cluster descriptor (env POOL_STORE_KEY)")
	cmd.Flags().StringArrayVar(&opts.exchanges, "exchange", nil, "required exchange key, repeatable (env POOL_REQUIRED_EXCHANGES)")
	cmd.Flags().StringVar(&opts.suffix, "suffix", "", "instance suffix (env POOL_INSTANCE_SUFFIX)")
	cmd.Flags().StringVar(&opts.hostID, "host-id", "", "host identifier used in queue names, defaults to the hostname")
	cmd.Flags().StringVar(&opts.descriptorFile, "descriptor-file", "", "read the descriptor from this file instead of the topology store")
	cmd.Flags().BoolVar(&opts.serve, "serve", false, "keep the pool open and serve metrics until interrupted")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "bounds the pool build and the shutdown")
	return cmd
}

// apply overrides the environment with the flags that were set.
func (o buildOptions) apply(cfg *appConfig) {
	if o.storeKey != "" {
		cfg.Pool.StoreKey = o.storeKey
	}
	if len(o.exchanges) > 0 {
		cfg.Pool.RequiredExchanges = o.exchanges
	}
	if o.suffix != "" {
		cfg.Pool.InstanceSuffix = o.suffix
	}
	if o.hostID != "" {
		cfg.Pool.HostID = o.hostID
	}
}

func runBuild(ctx context.Context, out io.Writer, cfg appConfig, opts buildOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	opts.apply(&cfg)

	storeOption, err := storeModule(cfg, opts)
	if err != nil {
		return err
	}

	var pool *channelpool.Pool
	options := []fx.Option{
		fx.NopLogger,
		fx.Supply(cfg.Logger, cfg.Discovery, cfg.Rabbit, cfg.Pool, cfg.Tracer),
		logger.FXModule,
		fx.Provide(
			func(l logger.Logger) rabbit.Logger { return l },
			func(l logger.Logger) channelpool.Logger { return l },
			func(l logger.Logger) tracer.Logger { return l },
			func(t *tracer.Tracer) trace.Tracer { return t.Tracer() },
		),
		tracer.FXModule,
		storeOption,
		discovery.FXModule,
		rabbit.FXModule,
		channelpool.FXModule,
		fx.Populate(&pool),
	}
	if opts.serve {
		options = append(options, fx.Supply(cfg.Metrics), metrics.FXModule)
	}

	app := fx.New(options...)
	if err := app.Err(); err != nil {
		return err
	}

	// the pool is built while the app starts, so --timeout bounds the build
	startCtx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}

	printSummary(out, cfg.Pool.StoreKey, pool)

	if opts.serve {
		<-app.Done()
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), opts.timeout)
	defer cancelStop()
	return app.Stop(stopCtx)
}

// storeModule provides the configured store, or a memory store seeded from
// --descriptor-file.
func storeModule(cfg appConfig, opts buildOptions) (fx.Option, error) {
	if opts.descriptorFile == "" {
		return fx.Options(fx.Supply(cfg.Store), kvstore.FXModule), nil
	}

	raw, err := os.ReadFile(opts.descriptorFile)
	if err != nil {
		return nil, fmt.Errorf("read descriptor file: %w", err)
	}
	store := kvstore.NewMemoryStore(map[string]string{cfg.Pool.StoreKey: string(raw)})
	return fx.Provide(func() kvstore.Store { return store }), nil
}

func printSummary(out io.Writer, storeKey string, pool *channelpool.Pool) {
	r := pool.Report
	fmt.Fprintf(out, "pool %s: %d/%d channels\n", storeKey, pool.Len(), r.Discovered)
	for _, e := range pool.Entries {
		fmt.Fprintf(out, "  [%d] %s\n", e.Index, e.Node)
	}
	for _, f := range r.Failures {
		fmt.Fprintf(out, "  dropped [%d] %s at %s: %v\n", f.Index, f.Node, f.Stage, f.Err)
	}
	if r.TopologySkipped {
		fmt.Fprintln(out, "  topology installation skipped")
	}
}
