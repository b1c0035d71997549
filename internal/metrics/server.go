package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"stepd/util"
)

// Server exposes a Collector over HTTP at /metrics, with a trivial
// /health endpoint alongside.  It is optional: the daemon only starts
// one when a metrics port is configured.
type Server struct {
	Addr      string
	Collector *Collector
	Logger    *util.Logger

	srv *http.Server
}

// Run serves until the context is cancelled.  It returns nil on a
// clean shutdown.  Metrics serving is best-effort: callers log a
// failure and carry on rather than taking the daemon down.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(
		s.Collector.Registry(),
		promhttp.HandlerOpts{},
	))
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK\n"))
	})

	s.srv = &http.Server{Addr: s.Addr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(shutdownCtx)
	}()

	s.Logger.Verbose("metrics on http://%s/metrics", s.Addr)

	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
