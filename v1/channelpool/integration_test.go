//go:build integration

package channelpool

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/Aleph-Alpha/rabbit-pool/v1/discovery"
	"github.com/Aleph-Alpha/rabbit-pool/v1/kvstore"
	"github.com/Aleph-Alpha/rabbit-pool/v1/rabbit"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const integrationDescriptor = `{
  "rabbitmqConsulServicesNamePrefix": "rabbitmq-it",
  "plainAuth": "amqp://guest:guest@",
  "settings": {
    "exchanges": {
      "orders": {
        "name": "orders",
        "type": "topic",
        "opts": {"durable": false},
        "binds": {
          "inbound": {
            "mq": {"name": "orders.in", "opts": {"durable": false, "autoDelete": true, "messageTtl": 60000}},
            "routingKey": "orders.#"
          }
        }
      }
    }
  }
}`

// TestBuildAgainstRabbitMQ builds a pool over one live broker and one dead
// address, then publishes through the pooled confirm channel.
func TestBuildAgainstRabbitMQ(t *testing.T) {
	ctx := context.Background()

	hostPort, err := getFreePort()
	require.NoError(t, err)
	containerInstance, err := createRabbitMQContainer(ctx, hostPort)
	require.NoError(t, err)
	defer func() {
		if err := containerInstance.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}()

	host, err := containerInstance.Host(ctx)
	require.NoError(t, err)
	port, err := containerInstance.MappedPort(ctx, "5672")
	require.NoError(t, err)

	deadPort, err := getFreePort()
	require.NoError(t, err)

	live := net.JoinHostPort(host, port.Port())
	dead := net.JoinHostPort("127.0.0.1", deadPort)

	store := kvstore.NewMemoryStore(map[string]string{"rabbitmq/it": integrationDescriptor})
	disc := discovery.NewStaticDiscoverer(map[string][]string{"rabbitmq-it": {dead, live}})
	dialer, err := rabbit.NewDialer(rabbit.Config{Heartbeat: 2 * time.Second, DialTimeout: 2 * time.Second, ConnectionName: "channelpool-it"})
	require.NoError(t, err)

	pool, err := NewBuilder(store, disc, dialer).
		WithHostname("it-host").
		Build(ctx, "rabbitmq/it", []string{"orders"}, "svc1")
	require.NoError(t, err)
	defer func() { assert.NoError(t, pool.Close()) }()

	require.Equal(t, 1, pool.Len())
	assert.Equal(t, []string{live}, pool.Nodes())
	assert.Equal(t, 1, pool.Entries[0].Index)
	assert.True(t, pool.Report.Degraded())

	ch := pool.Channels()[0].AMQP()
	require.NotNil(t, ch)

	queue := pool.Settings.Exchanges["orders"].Binds["inbound"].MQ.Name
	require.Equal(t, "orders.in-svc1@it-host", queue)

	confirm, err := ch.PublishWithDeferredConfirmWithContext(ctx, "orders-svc1", "orders.created", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        []byte(`{"id":1}`),
	})
	require.NoError(t, err)
	require.True(t, confirm.Wait())

	require.Eventually(t, func() bool {
		msg, ok, err := ch.Get(queue, true)
		return err == nil && ok && string(msg.Body) == `{"id":1}`
	}, 5*time.Second, 100*time.Millisecond)
}

// createRabbitMQContainer starts a RabbitMQ container bound to hostPort and
// waits until the broker reports healthy.
func createRabbitMQContainer(ctx context.Context, hostPort string) (testcontainers.Container, error) {
	var containerInstance testcontainers.Container
	var lastErr error

	for attempt := 0; attempt < 3; attempt++ {
		portBindings := nat.PortMap{
			"5672/tcp": []nat.PortBinding{{HostPort: hostPort}},
		}

		req := testcontainers.ContainerRequest{
			Image:        "rabbitmq:4-management",
			ExposedPorts: []string{"5672/tcp"},
			HostConfigModifier: func(cfg *container.HostConfig) {
				cfg.PortBindings = portBindings
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5672/tcp").WithStartupTimeout(30*time.Second),
				wait.ForExec([]string{"rabbitmq-diagnostics", "status"}).WithExitCodeMatcher(func(exitCode int) bool {
					return exitCode == 0
				}).WithStartupTimeout(20*time.Second),
			),
		}

		containerInstance, lastErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		if lastErr == nil {
			return containerInstance, nil
		}

		// Retry only for Docker socket-related issues
		if strings.Contains(lastErr.Error(), "docker.sock") || errors.Is(lastErr, io.EOF) {
			log.Printf("Attempt %d: Docker socket error, retrying in %d seconds: %v", attempt+1, attempt+1, lastErr)
			time.Sleep(time.Duration(attempt+1) * time.Second)
			continue
		}

		break
	}

	return nil, fmt.Errorf("failed to start RabbitMQ container after %d attempts: %w", 3, lastErr)
}

func getFreePort() (string, error) {
	l, err := net.Listen("tcp", ":0")
	if err != nil {
		return "", err
	}
	defer l.Close()
	return strconv.Itoa(l.Addr().(*net.TCPAddr).Port), nil
}
