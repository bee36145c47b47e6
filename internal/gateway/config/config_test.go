package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.HTTPAddress, ":8080")
	assert.Equal(t, c.AccountAddress, "127.0.0.1:50051")
	assert.Equal(t, c.ServiceTokenSecret, "serviceSecret")
	assert.Equal(t, c.ServiceName, "gateway")
	assert.Equal(t, c.MaxRetries, 3)
	assert.Equal(t, c.BackoffBase, 500*time.Millisecond)
	assert.Equal(t, c.CallTimeout, 15*time.Second)
	assert.Equal(t, c.ServiceTokenTTL, 1*time.Minute)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	c, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, c, "LoadConfig must not return nil")

	assert.Equal(t, c.HTTPAddress, ":8080")
	assert.Equal(t, c.MaxRetries, 3)
	assert.Equal(t, c.CallTimeout, 15*time.Second)
}

func TestParseEnv_Overlays(t *testing.T) {
	t.Setenv("GATEWAY_HTTP_ADDRESS", ":9090")
	t.Setenv("GATEWAY_RPC_MAX_RETRIES", "5")
	t.Setenv("GATEWAY_RPC_BACKOFF_BASE", "250ms")

	var c Config
	c.LoadDefaults()
	require.NoError(t, parseEnv(&c))

	assert.Equal(t, c.HTTPAddress, ":9090")
	assert.Equal(t, c.MaxRetries, 5)
	assert.Equal(t, c.BackoffBase, 250*time.Millisecond)
	// untouched values keep their defaults
	assert.Equal(t, c.AccountAddress, "127.0.0.1:50051")
}
