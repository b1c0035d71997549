// Package cmd wires up the CLI flags and dispatches to the stepd server.
package cmd

import (
	"context"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"stepd/config"
	"stepd/internal/metrics"
	"stepd/internal/process"
	"stepd/internal/server"
	"stepd/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X stepd/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// Execute parses args and runs the daemon.
func Execute(ctx context.Context, args []string) error {
	cfg := config.Default()
	config.LoadFromEnv(cfg)

	fs := flag.NewFlagSet("stepd", flag.ContinueOnError)

	// ── listener ─────────────────────────────────────────────────
	fs.StringVarP(&cfg.Host, "host", "H", cfg.Host, "Bind address")
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "Listen port")

	// ── process config ───────────────────────────────────────────
	fs.StringVarP(&cfg.ConfigPath, "config", "C", cfg.ConfigPath,
		"Process configuration file (JSON)")

	// ── observability ────────────────────────────────────────────
	fs.IntVarP(&cfg.MetricsPort, "metrics-port", "m", cfg.MetricsPort,
		"Prometheus metrics port (0 = disabled)")

	// Count flags reset their target on registration, so go through a
	// scratch variable to keep an env-provided verbosity.
	var verbose int
	fs.CountVarP(&verbose, "verbose", "v", "Increase verbosity (repeatable)")
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "Log errors only")

	// ── meta ─────────────────────────────────────────────────────
	var showVersion, showHelp bool
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Validate configuration and exit")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(fs) }

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp {
		printUsage(fs)
		return nil
	}
	if showVersion {
		fmt.Printf("stepd %s\n", version)
		return nil
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected argument %q", fs.Args()[0])
	}
	if fs.Changed("verbose") {
		cfg.Verbose = verbose
	}

	// ── validate ─────────────────────────────────────────────────
	if err := cfg.Validate(); err != nil {
		return err
	}

	// ── build components ─────────────────────────────────────────
	// Verbosity 0 still shows Info-level lifecycle messages; -v adds
	// per-connection detail, -vv per-request detail, and -q drops
	// everything but errors.
	verbosity := cfg.Verbose + 1
	if cfg.Quiet {
		verbosity = int(util.LogQuiet)
	}
	logger := util.NewLogger(verbosity)

	procCfg := config.ReadProcessConfig(cfg)
	logger.Verbose("process config: %v (variants: %v)", procCfg, process.Variants())

	if cfg.DryRun {
		logger.Info("configuration OK (process %q on %s)",
			variantName(procCfg), cfg.ListenAddr())
		return nil
	}

	collector := metrics.New()
	if cfg.MetricsPort > 0 {
		ms := &metrics.Server{
			Addr:      util.FormatAddr(cfg.Host, cfg.MetricsPort),
			Collector: collector,
			Logger:    logger,
		}
		go func() {
			if err := ms.Run(ctx); err != nil {
				logger.Warn("metrics server: %v", err)
			}
		}()
	}

	srv := &server.Server{
		Address: cfg.ListenAddr(),
		Build:   func() process.Process { return process.Build(procCfg) },
		Logger:  logger,
		Metrics: collector,
	}
	return srv.Run(ctx)
}

// ── helpers ──────────────────────────────────────────────────────────

func variantName(procCfg map[string]interface{}) string {
	if v, ok := procCfg["process"].(string); ok && v != "" {
		return v
	}
	return process.DefaultVariant
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `stepd – simulation step server v%s

Serves a pluggable simulation-step process over newline-delimited JSON
on a TCP socket.

Usage:
  stepd [options]

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Environment:
  HOST, PORT, CONFIG_PATH, METRICS_PORT, STEPD_VERBOSE
  (flags take precedence over the environment)

Examples:
  stepd                                       Listen on 0.0.0.0:11111
  stepd -p 9000 -C ./config/default_config.json
  stepd -m 9090 -vv                           With metrics and debug logs
  printf '{"command":"inputs"}\n' | nc localhost 11111
`)
}
