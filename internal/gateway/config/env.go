package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays values from the environment onto cfg. Unset variables
// leave the current values (defaults or earlier overlays) untouched.
func parseEnv(cfg *Config) error {
	return env.Parse(cfg)
}
