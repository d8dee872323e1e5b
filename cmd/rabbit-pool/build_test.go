package main

import (
	"bytes"
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Aleph-Alpha/rabbit-pool/v1/channelpool"
	"github.com/Aleph-Alpha/rabbit-pool/v1/discovery"
	"github.com/Aleph-Alpha/rabbit-pool/v1/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const descriptor = `{
  "rabbitmqConsulServicesNamePrefix": "rabbitmq-orders",
  "plainAuth": "amqp://svc:secret@",
  "settings": {"exchanges": {"orders": {"name": "orders", "type": "topic", "opts": {}, "binds": {}}}}
}`

func TestLoadConfig(t *testing.T) {
	t.Setenv("KVSTORE_BACKEND", "redis")
	t.Setenv("KVSTORE_REDIS_ADDRESSES", "r1:6379,r2:6379")
	t.Setenv("DISCOVERY_BACKEND", "static")
	t.Setenv("DISCOVERY_STATIC", "rabbitmq-orders=10.0.0.1:5672|10.0.0.2:5672")
	t.Setenv("DISCOVERY_CONSUL_ADDRESSES", "c1:8500")
	t.Setenv("POOL_REQUIRED_EXCHANGES", "orders,billing")
	t.Setenv("ZAP_LOGGER_LEVEL", "debug")

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, kvstore.BackendRedis, cfg.Store.Backend)
	assert.Equal(t, []string{"r1:6379", "r2:6379"}, cfg.Store.Redis.Addresses)
	assert.Equal(t, discovery.BackendStatic, cfg.Discovery.Backend)
	assert.Equal(t, []string{"rabbitmq-orders=10.0.0.1:5672|10.0.0.2:5672"}, cfg.Discovery.Static)
	assert.Equal(t, []string{"c1:8500"}, cfg.Discovery.Consul.Addresses)
	assert.True(t, cfg.Discovery.Consul.PassingOnly)
	assert.Equal(t, []string{"orders", "billing"}, cfg.Pool.RequiredExchanges)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, ":9090", cfg.Metrics.Address)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	cfg := appConfig{Pool: channelpool.Config{StoreKey: "env-key", InstanceSuffix: "env", RequiredExchanges: []string{"a"}}}
	buildOptions{storeKey: "flag-key", exchanges: []string{"orders"}, hostID: "h1"}.apply(&cfg)

	assert.Equal(t, "flag-key", cfg.Pool.StoreKey)
	assert.Equal(t, "env", cfg.Pool.InstanceSuffix)
	assert.Equal(t, []string{"orders"}, cfg.Pool.RequiredExchanges)
	assert.Equal(t, "h1", cfg.Pool.HostID)
}

func TestBuildCommandWithDescriptorFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "descriptor.json")
	require.NoError(t, os.WriteFile(file, []byte(descriptor), 0o600))

	// no node registered: the pool is empty but the build succeeds
	t.Setenv("DISCOVERY_BACKEND", "static")

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"build", "--store-key", "rabbitmq/orders", "--suffix", "svc1", "--exchange", "orders", "--descriptor-file", file})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "pool rabbitmq/orders: 0/0 channels")
}

func TestBuildCommandPreconditionFails(t *testing.T) {
	file := filepath.Join(t.TempDir(), "descriptor.json")
	require.NoError(t, os.WriteFile(file, []byte(descriptor), 0o600))
	t.Setenv("DISCOVERY_BACKEND", "static")

	cfg, err := loadConfig()
	require.NoError(t, err)

	var out bytes.Buffer
	err = runBuild(context.Background(), &out, cfg, buildOptions{
		storeKey:       "rabbitmq/orders",
		exchanges:      []string{"shipping"},
		suffix:         "svc1",
		descriptorFile: file,
		timeout:        10 * time.Second,
	})
	assert.ErrorContains(t, err, "unknown exchange key")
	assert.Empty(t, out.String())
}

// silentNode accepts TCP connections and never speaks AMQP.
func silentNode(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	conns := make(chan net.Conn, 16)
	go func() {
		for {
			c, err := l.Accept()
			if err != nil {
				return
			}
			conns <- c
		}
	}()
	t.Cleanup(func() {
		_ = l.Close()
		for {
			select {
			case c := <-conns:
				_ = c.Close()
			default:
				return
			}
		}
	})
	return l.Addr().String()
}

func TestBuildCommandTimeoutBoundsSilentNode(t *testing.T) {
	file := filepath.Join(t.TempDir(), "descriptor.json")
	require.NoError(t, os.WriteFile(file, []byte(descriptor), 0o600))

	t.Setenv("DISCOVERY_BACKEND", "static")
	t.Setenv("DISCOVERY_STATIC", "rabbitmq-orders="+silentNode(t))
	t.Setenv("RABBIT_DIAL_TIMEOUT", "1m")

	cfg, err := loadConfig()
	require.NoError(t, err)

	var out bytes.Buffer
	done := make(chan error, 1)
	go func() {
		done <- runBuild(context.Background(), &out, cfg, buildOptions{
			storeKey:       "rabbitmq/orders",
			exchanges:      []string{"orders"},
			suffix:         "svc1",
			descriptorFile: file,
			timeout:        500 * time.Millisecond,
		})
	}()

	select {
	case err := <-done:
		// either the start deadline surfaces or the node is dropped in time
		if err != nil {
			assert.ErrorContains(t, err, "deadline exceeded")
		} else {
			assert.Contains(t, out.String(), "pool rabbitmq/orders: 0/1 channels")
		}
	case <-time.After(10 * time.Second):
		t.Fatal("build still blocked after the start timeout")
	}
}

func TestPrintSummary(t *testing.T) {
	pool := &channelpool.Pool{
		Entries: []channelpool.Entry{{Index: 0, Node: "n1:5672"}, {Index: 2, Node: "n3:5672"}},
		Report: channelpool.Report{
			Discovered:      3,
			TopologySkipped: true,
			Failures:        []channelpool.Failure{{Stage: channelpool.StageConnect, Index: 1, Node: "n2:5672", Err: errors.New("refused")}},
		},
	}

	var out bytes.Buffer
	printSummary(&out, "rabbitmq/orders", pool)
	assert.Equal(t, "pool rabbitmq/orders: 2/3 channels\n"+
		"  [0] n1:5672\n"+
		"  [2] n3:5672\n"+
		"  dropped [1] n2:5672 at connect: refused\n"+
		"  topology installation skipped\n", out.String())
}
