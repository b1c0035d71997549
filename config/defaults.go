package config

// ── Default values ───────────────────────────────────────────────────
//
// All tuneable defaults live here so they are easy to audit and reuse
// across CLI flags, environment variable loading, and tests.

const (
	// DefaultHost binds all interfaces.
	DefaultHost = "0.0.0.0"

	// DefaultPort is the well-known stepd port.
	DefaultPort = 11111

	// DefaultConfigPath is where a container deployment mounts the
	// process configuration.
	DefaultConfigPath = "/config/config.json"

	// FallbackConfigPath is consulted when the primary path is
	// unreadable, relative to the working directory.
	FallbackConfigPath = "config/default_config.json"

	// DefaultMetricsPort disables the metrics endpoint.
	DefaultMetricsPort = 0
)

// Default returns a Config populated with every default value.
func Default() *Config {
	return &Config{
		Host:        DefaultHost,
		Port:        DefaultPort,
		ConfigPath:  "",
		MetricsPort: DefaultMetricsPort,
	}
}
