package server

import (
	"context"
	"time"

	errs "stepd/internal/errors"
	"stepd/internal/protocol"
	"stepd/internal/session"
	"stepd/internal/transport"
)

// serve is the per-connection worker: read one frame, dispatch it,
// write one response, strictly in order with no pipelining.  It exits
// when the peer closes, a transport error occurs, or the shutdown
// signal is observed between frames.  A worker blocked in a read at
// shutdown time is not interrupted; it unblocks only when its peer
// sends data or disconnects.
func (s *Server) serve(ctx context.Context, sess *session.Session) {
	defer sess.Close()

	s.Metrics.ConnectionOpened()
	defer s.Metrics.ConnectionClosed()

	for ctx.Err() == nil {
		frame, err := sess.Reader.ReadFrame()
		if err != nil {
			if !errs.Is(err, errs.ErrStreamEnd) {
				sess.Logger.Warn("%v", err)
			}
			sess.Logger.Verbose("connection closed")
			return
		}

		// Blank lines are keep-alives: no dispatch, no response.
		if transport.IsBlank(frame) {
			continue
		}

		start := time.Now()
		res := protocol.Handle(frame, sess.Proc)
		if res.Reason != "" {
			s.Metrics.ProtocolError(res.Reason)
			sess.Logger.Debug("protocol error: %s", res.Reason)
		} else {
			s.Metrics.RequestHandled(res.Command, time.Since(start))
		}

		if err := sess.Writer.WriteFrame(res.Payload); err != nil {
			sess.Logger.Warn("%v", err)
			return
		}
	}
}
