// Package server owns the listening socket: it accepts connections,
// binds each one to a freshly built process instance, and runs one
// worker goroutine per connection until the shutdown signal fires.
package server

import (
	"context"
	"net"
	"time"

	errs "stepd/internal/errors"
	"stepd/internal/metrics"
	"stepd/internal/process"
	"stepd/internal/retry"
	"stepd/internal/session"
	"stepd/util"
)

// Factory yields one independent process instance.  The server calls
// it per accepted connection, so connections never share process
// state.
type Factory func() process.Process

// Server accepts connections on Address and serves the command
// protocol on each.
type Server struct {
	Address string
	Build   Factory
	Logger  *util.Logger
	Metrics *metrics.Collector // nil disables metrics

	// Listener, when non-nil, is served instead of binding Address.
	// Tests use this to drive the accept loop with a fake listener.
	Listener net.Listener
}

// Run listens on the configured address and accepts until ctx is
// cancelled.  A bind/listen failure is returned immediately — the
// caller treats it as fatal.  Any other end of the accept loop,
// including an unrecoverable accept error, drains: the listener is
// closed and Run returns nil without waiting for in-flight
// connections, which are fire-and-forget and run until their peer
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	ln := s.Listener
	if ln == nil {
		var err error
		ln, err = net.Listen("tcp", s.Address)
		if err != nil {
			return errs.Wrap("listen", s.Address, err)
		}
	}
	defer ln.Close()

	s.Logger.Info("listening on %s (tcp)", ln.Addr())

	// Shut the listener down when the context expires, waking the
	// blocked Accept below.
	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	backoff := retry.DefaultBackoff()
	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				s.Logger.Info("shutdown: listener closed")
				return nil
			default:
			}

			// Temporary failures (fd exhaustion and friends) back off
			// and retry; anything else ends the accept loop.
			if errs.IsRetryable(err) {
				delay := backoff.Next()
				s.Logger.Warn("accept: %v; retrying in %v", err, delay)
				select {
				case <-ctx.Done():
					return nil
				case <-time.After(delay):
				}
				continue
			}

			// An unrecoverable accept error ends the loop but is not
			// fatal to the process: only a failed bind carries a
			// non-zero exit.
			s.Logger.Error("%v", errs.Wrap("accept", s.Address, err))
			return nil
		}
		backoff.Reset()

		s.Logger.Verbose("connection from %s", conn.RemoteAddr())

		sess := session.New(conn, s.Build(), s.Logger)
		go s.serve(ctx, sess)
	}
}
