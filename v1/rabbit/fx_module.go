package rabbit

import (
	"github.com/Aleph-Alpha/rabbit-pool/v1/observability"
	"go.uber.org/fx"
)

// FXModule is an fx.Module that provides the broker dialer.
//
// The module provides:
// 1. *AMQPDialer (concrete type) for direct use
// 2. Dialer interface for dependency injection
//
// Usage:
//
//	app := fx.New(
//	    rabbit.FXModule,
//	    // other modules...
//	)
var FXModule = fx.Module("rabbit",
	fx.Provide(
		NewDialerWithDI, // Provides *AMQPDialer
		// Also provide the Dialer interface
		fx.Annotate(
			func(d *AMQPDialer) Dialer { return d },
			fx.As(new(Dialer)),
		),
	),
)

// RabbitParams groups the dependencies needed to create a dialer
type RabbitParams struct {
	fx.In

	Config   Config
	Logger   Logger                 `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewDialerWithDI creates a dialer using dependency injection. The logger
// and observer are attached when the container provides them.
//
// Example usage with fx:
//
//	app := fx.New(
//	    rabbit.FXModule,
//	    logger.FXModule,  // Optional: provides logger
//	    fx.Provide(func() rabbit.Config { return loadRabbitConfig() }),
//	)
func NewDialerWithDI(params RabbitParams) (*AMQPDialer, error) {
	dialer, err := NewDialer(params.Config)
	if err != nil {
		return nil, err
	}

	if params.Logger != nil {
		dialer.WithLogger(params.Logger)
	}

	if params.Observer != nil {
		dialer.WithObserver(params.Observer)
	}

	return dialer, nil
}
