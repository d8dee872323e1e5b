package discovery

import "go.uber.org/fx"

// FXModule provides the Discoverer selected by a discovery.Config.
//
// Usage:
//
//	app := fx.New(
//	    discovery.FXModule,
//	    fx.Provide(func() discovery.Config { return loadDiscoveryConfig() }),
//	)
var FXModule = fx.Module("discovery",
	fx.Provide(New),
)
