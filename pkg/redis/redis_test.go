package redis

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// closedPort returns a local port nothing listens on
func closedPort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())
	return port
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, NewRedisConfig().Validate())
	assert.Error(t, NewRedisConfig().WithHost("").Validate())
	assert.Error(t, NewRedisConfig().WithPort(0).Validate())
	assert.Error(t, NewRedisConfig().WithDatabase(16).Validate())
	assert.Error(t, NewRedisConfig().WithMaxRetries(-2).Validate())
	assert.Error(t, NewRedisConfig().WithDialTimeout(-time.Second).Validate())
}

func TestNewClientRejectsInvalidConfig(t *testing.T) {
	_, err := NewClient(NewRedisConfig().WithPort(70000))
	assert.Error(t, err)
}

func TestKey(t *testing.T) {
	client, err := NewClient(NewRedisConfig().WithKeyPrefix("weather"))
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	assert.Equal(t, "weather:last-search", client.Key("last-search"))

	client.GetConfig().WithKeyPrefix("")
	assert.Equal(t, "last-search", client.Key("last-search"))
}

func TestHealthCheckUnreachableServer(t *testing.T) {
	config := NewRedisConfig().
		WithHost("127.0.0.1").
		WithPort(closedPort(t)).
		WithMaxRetries(-1).
		WithDialTimeout(200 * time.Millisecond)
	client, err := NewClient(config)
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	health := NewHealthChecker(client).HealthCheck(context.Background())

	assert.Equal(t, StatusDown, health.Status)
	assert.Contains(t, health.Details["last_error"], "ping failed")
	assert.Equal(t, config.Addr(), health.Details["address"])
}
