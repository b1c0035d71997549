// Package config defines the runtime configuration for stepd and
// loads the deployment's process configuration file.
package config

import (
	"fmt"

	errs "stepd/internal/errors"
	"stepd/util"
)

// Config holds every tuneable for one stepd run.
type Config struct {
	// ── Listener ─────────────────────────────────────────────────────
	Host string // bind address ("" or "0.0.0.0" = all interfaces)
	Port int

	// ── Process configuration ────────────────────────────────────────
	ConfigPath string // JSON file selecting and tuning the process variant

	// ── Observability ────────────────────────────────────────────────
	MetricsPort int  // HTTP /metrics port, 0 = disabled
	Verbose     int
	Quiet       bool // suppress everything but errors

	// ── Behaviour ────────────────────────────────────────────────────
	DryRun bool // validate configuration and exit
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return &errs.ConfigError{
			Field:   "port",
			Value:   c.Port,
			Message: "port out of range 1-65535",
		}
	}
	if err := util.ValidateBindHost(c.Host); err != nil {
		return &errs.ConfigError{
			Field:   "host",
			Value:   c.Host,
			Message: err.Error(),
			Hint:    "bind to an address, not a hostname",
		}
	}
	if c.MetricsPort < 0 || c.MetricsPort > 65535 {
		return &errs.ConfigError{
			Field:   "metrics-port",
			Value:   c.MetricsPort,
			Message: "port out of range 0-65535",
		}
	}
	if c.MetricsPort != 0 && c.MetricsPort == c.Port {
		return &errs.ConfigError{
			Field:   "metrics-port",
			Value:   c.MetricsPort,
			Message: fmt.Sprintf("collides with the listen port %d", c.Port),
		}
	}
	return nil
}

// ListenAddr returns the host:port to bind.
func (c *Config) ListenAddr() string {
	return util.FormatAddr(c.Host, c.Port)
}
