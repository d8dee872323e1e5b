package kvstore

import (
	"context"

	"go.uber.org/fx"
)

// FXModule provides the Store selected by a kvstore.Config and closes its
// connections when the application stops.
//
// Usage:
//
//	app := fx.New(
//	    kvstore.FXModule,
//	    fx.Provide(func() kvstore.Config { return loadStoreConfig() }),
//	)
var FXModule = fx.Module("kvstore",
	fx.Provide(NewStoreWithDI),
)

// StoreParams groups the dependencies needed to create a Store.
type StoreParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    Config
}

// NewStoreWithDI builds the store and registers its close hook.
func NewStoreWithDI(params StoreParams) (Store, error) {
	store, closeStore, err := New(params.Config)
	if err != nil {
		return nil, err
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return closeStore()
		},
	})
	return store, nil
}
