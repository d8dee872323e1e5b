package main

import (
	"fmt"

	"github.com/Aleph-Alpha/rabbit-pool/v1/channelpool"
	"github.com/Aleph-Alpha/rabbit-pool/v1/discovery"
	"github.com/Aleph-Alpha/rabbit-pool/v1/kvstore"
	"github.com/Aleph-Alpha/rabbit-pool/v1/logger"
	"github.com/Aleph-Alpha/rabbit-pool/v1/metrics"
	"github.com/Aleph-Alpha/rabbit-pool/v1/rabbit"
	"github.com/Aleph-Alpha/rabbit-pool/v1/tracer"
	"github.com/kelseyhightower/envconfig"
)

// appConfig gathers every component configuration. Each one is read from
// the environment under its own prefix, e.g. KVSTORE_BACKEND or
// DISCOVERY_CONSUL_ADDRESSES.
type appConfig struct {
	Logger    logger.Config
	Store     kvstore.Config
	Discovery discovery.Config
	Rabbit    rabbit.Config
	Pool      channelpool.Config
	Metrics   metrics.Config
	Tracer    tracer.Config
}

func loadConfig() (appConfig, error) {
	var cfg appConfig
	sections := []struct {
		prefix string
		target interface{}
	}{
		// logger keys are unprefixed: ZAP_LOGGER_LEVEL, LOGGER_SERVICE_NAME
		{"", &cfg.Logger},
		{"KVSTORE", &cfg.Store},
		{"DISCOVERY", &cfg.Discovery},
		{"RABBIT", &cfg.Rabbit},
		{"POOL", &cfg.Pool},
		{"METRICS", &cfg.Metrics},
		{"TRACER", &cfg.Tracer},
	}
	for _, s := range sections {
		if err := envconfig.Process(s.prefix, s.target); err != nil {
			return appConfig{}, fmt.Errorf("load %s config: %w", s.prefix, err)
		}
	}
	return cfg, nil
}
