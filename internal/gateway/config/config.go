// Package config handles configuration for the public gateway, including
// defaults, environment overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the gateway.
//
// Fields:
//   - HTTPAddress: bind address for the public HTTP endpoint.
//   - AccountAddress: gRPC address of the account service.
//   - ServiceTokenSecret: HMAC secret used to mint service tokens.
//   - ServiceName: name this gateway asserts in its service tokens.
//   - MaxRetries: transient-failure retries per account call.
//   - BackoffBase: base delay for the exponential retry backoff.
//   - CallTimeout: per-call deadline for account RPCs.
//   - ServiceTokenTTL: validity window of each minted service token.
type Config struct {
	HTTPAddress        string        `env:"GATEWAY_HTTP_ADDRESS"`
	AccountAddress     string        `env:"GATEWAY_ACCOUNT_ADDRESS"`
	ServiceTokenSecret string        `env:"SERVICE_TOKEN_SECRET"`
	ServiceName        string        `env:"GATEWAY_SERVICE_NAME"`
	MaxRetries         int           `env:"GATEWAY_RPC_MAX_RETRIES"`
	BackoffBase        time.Duration `env:"GATEWAY_RPC_BACKOFF_BASE"`
	CallTimeout        time.Duration `env:"GATEWAY_RPC_CALL_TIMEOUT"`
	ServiceTokenTTL    time.Duration `env:"GATEWAY_SERVICE_TOKEN_TTL"`
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.HTTPAddress = ":8080"
	c.AccountAddress = "127.0.0.1:50051"
	c.ServiceTokenSecret = "serviceSecret"
	c.ServiceName = "gateway"
	c.MaxRetries = 3
	c.BackoffBase = 500 * time.Millisecond
	c.CallTimeout = 15 * time.Second
	c.ServiceTokenTTL = 1 * time.Minute
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from environment variables and finally from command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	return cfg, nil
}
