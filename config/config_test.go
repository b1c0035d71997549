package config

import (
	"testing"

	errs "stepd/internal/errors"
)

// ── Validate ─────────────────────────────────────────────────────────

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"loopback host", func(c *Config) { c.Host = "127.0.0.1" }, false},
		{"empty host", func(c *Config) { c.Host = "" }, false},
		{"ipv6 host", func(c *Config) { c.Host = "::1" }, false},
		{"hostname rejected", func(c *Config) { c.Host = "example.com" }, true},
		{"port zero", func(c *Config) { c.Port = 0 }, true},
		{"port too high", func(c *Config) { c.Port = 70000 }, true},
		{"negative metrics port", func(c *Config) { c.MetricsPort = -1 }, true},
		{"metrics port ok", func(c *Config) { c.MetricsPort = 9090 }, false},
		{"metrics port collides", func(c *Config) { c.MetricsPort = c.Port }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr = %v", err, tt.wantErr)
			}
			if err != nil {
				var ce *errs.ConfigError
				if !errs.As(err, &ce) {
					t.Errorf("error type = %T, want *ConfigError", err)
				}
			}
		})
	}
}

func TestConfig_ListenAddr(t *testing.T) {
	cfg := &Config{Host: "0.0.0.0", Port: 11111}
	if got := cfg.ListenAddr(); got != "0.0.0.0:11111" {
		t.Errorf("ListenAddr() = %q", got)
	}
}
