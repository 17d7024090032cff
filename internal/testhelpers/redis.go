package testhelpers

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/config"
	gatewayredis "github.com/DanielPopoola/checkout-payment-gateway/internal/infrastructure/persistence/redis"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type TestRedis struct {
	Container testcontainers.Container
	Client    *redis.Client
	Config    config.RedisConfig
}

// SetupTestRedis starts redis in a container. Tests using it are skipped
// with -short.
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor: wait.ForLog("Ready to accept connections").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	cfg := config.RedisConfig{
		Addr:        fmt.Sprintf("%s:%d", host, port.Int()),
		DialTimeout: 5 * time.Second,
		Timeout:     3 * time.Second,
	}

	client, err := gatewayredis.Connect(ctx, cfg)
	require.NoError(t, err)

	return &TestRedis{
		Container: container,
		Client:    client,
		Config:    cfg,
	}
}

func (tr *TestRedis) Cleanup(t *testing.T) {
	_ = tr.Client.Close()
	require.NoError(t, tr.Container.Terminate(context.Background()))
}

func (tr *TestRedis) Flush(t *testing.T) {
	require.NoError(t, tr.Client.FlushDB(context.Background()).Err())
}
