package config

// loader.go - environment overlay and process-config file loading.
//
// Precedence order for server settings (highest wins):
//   1. CLI flags  (handled by cmd/root.go)
//   2. Environment variables  (this file)
//   3. Defaults   (defaults.go)
//
// The process configuration is a separate concern: a JSON file whose
// location comes from the flag/env chain and whose content is read
// permissively — a missing or malformed file yields an empty object so
// that the daemon always boots with the default process variant.

import (
	"encoding/json"
	"os"
	"strconv"
)

// ── Environment variable mapping ─────────────────────────────────────
//
// HOST, PORT, and CONFIG_PATH are the daemon's container contract and
// carry no prefix; the rest use STEPD_.

// LoadFromEnv overlays environment variables onto cfg.  Only non-empty
// env vars override the existing value.  This should be called BEFORE
// CLI flag parsing so that flags take precedence.
func LoadFromEnv(cfg *Config) {
	if v := os.Getenv("HOST"); v != "" {
		cfg.Host = v
	}
	if v := envInt("PORT"); v > 0 {
		cfg.Port = v
	}
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfg.ConfigPath = v
	}
	if v := envInt("METRICS_PORT"); v > 0 {
		cfg.MetricsPort = v
	}
	if v := envInt("STEPD_VERBOSE"); v > 0 {
		cfg.Verbose = v
	}
}

// ── Process configuration ────────────────────────────────────────────

// ReadProcessConfig resolves the process configuration object.  The
// primary source is the configured path (or DefaultConfigPath when
// unset); if that file cannot be opened, FallbackConfigPath is tried.
// A missing or malformed source yields an empty object, never an
// error.
func ReadProcessConfig(cfg *Config) map[string]interface{} {
	primary := cfg.ConfigPath
	if primary == "" {
		primary = DefaultConfigPath
	}

	if obj, ok := readJSONFile(primary); ok {
		return obj
	}
	if obj, ok := readJSONFile(FallbackConfigPath); ok {
		return obj
	}
	return map[string]interface{}{}
}

// readJSONFile reads path as a JSON object.  The second return is
// false only when the file cannot be opened; unparseable content
// reports true with an empty object, matching the permissive policy
// (a present-but-broken primary config does not fall through to the
// fallback's different settings).
func readJSONFile(path string) (map[string]interface{}, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var obj map[string]interface{}
	if err := json.Unmarshal(data, &obj); err != nil || obj == nil {
		return map[string]interface{}{}, true
	}
	return obj, true
}

// ── helpers ──────────────────────────────────────────────────────────

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
