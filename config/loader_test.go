package config

import (
	"os"
	"path/filepath"
	"testing"
)

// ── Environment overlay ──────────────────────────────────────────────

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "4242")
	t.Setenv("CONFIG_PATH", "/tmp/custom.json")
	t.Setenv("METRICS_PORT", "9091")
	t.Setenv("STEPD_VERBOSE", "2")

	cfg := Default()
	LoadFromEnv(cfg)

	if cfg.Host != "127.0.0.1" {
		t.Errorf("Host = %q", cfg.Host)
	}
	if cfg.Port != 4242 {
		t.Errorf("Port = %d", cfg.Port)
	}
	if cfg.ConfigPath != "/tmp/custom.json" {
		t.Errorf("ConfigPath = %q", cfg.ConfigPath)
	}
	if cfg.MetricsPort != 9091 {
		t.Errorf("MetricsPort = %d", cfg.MetricsPort)
	}
	if cfg.Verbose != 2 {
		t.Errorf("Verbose = %d", cfg.Verbose)
	}
}

func TestLoadFromEnv_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("METRICS_PORT", "-5")

	cfg := Default()
	LoadFromEnv(cfg)

	if cfg.Port != DefaultPort {
		t.Errorf("Port = %d, want default %d", cfg.Port, DefaultPort)
	}
	if cfg.MetricsPort != DefaultMetricsPort {
		t.Errorf("MetricsPort = %d, want default", cfg.MetricsPort)
	}
}

// ── Process configuration ────────────────────────────────────────────

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadProcessConfig_Primary(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.json", `{"process":"counter","rate":2.5}`)

	obj := ReadProcessConfig(&Config{ConfigPath: path})
	if obj["process"] != "counter" || obj["rate"] != 2.5 {
		t.Errorf("obj = %v", obj)
	}
}

// TestReadProcessConfig_MalformedPrimary verifies a present-but-broken
// primary yields an empty object rather than falling through to the
// fallback or erroring.
func TestReadProcessConfig_MalformedPrimary(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.json", `{"process": `)

	obj := ReadProcessConfig(&Config{ConfigPath: path})
	if len(obj) != 0 {
		t.Errorf("obj = %v, want empty", obj)
	}
}

// chdir switches the working directory for one test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestReadProcessConfig_MissingEverything(t *testing.T) {
	// Point the primary at a nonexistent file and run from a directory
	// with no fallback file.
	chdir(t, t.TempDir())

	obj := ReadProcessConfig(&Config{ConfigPath: "/nonexistent/config.json"})
	if obj == nil || len(obj) != 0 {
		t.Errorf("obj = %v, want empty object", obj)
	}
}

func TestReadProcessConfig_Fallback(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.MkdirAll(filepath.Join(dir, "config"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "config"), "default_config.json",
		`{"process":"decay","rate":0.25}`)

	obj := ReadProcessConfig(&Config{ConfigPath: "/nonexistent/config.json"})
	if obj["process"] != "decay" || obj["rate"] != 0.25 {
		t.Errorf("obj = %v", obj)
	}
}

func TestReadJSONFile_NonObject(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "list.json", `[1,2,3]`)

	obj, ok := readJSONFile(path)
	if !ok {
		t.Fatal("expected the file to be readable")
	}
	if len(obj) != 0 {
		t.Errorf("obj = %v, want empty", obj)
	}
}
