// Package session represents a single connection lifecycle, binding a
// network connection with its private process instance and framing.
//
// Sessions decouple the worker loop from concrete I/O — the worker
// reads frames and steps the process without caring whether the far
// side is a real socket or a test pipe.
package session

import (
	"net"

	"stepd/internal/process"
	"stepd/internal/transport"
	"stepd/util"
)

// Session encapsulates the runtime context for one accepted
// connection.  The process instance is owned exclusively by this
// session and dies with it.
type Session struct {
	Conn   net.Conn
	Proc   process.Process
	Reader *transport.LineReader
	Writer *transport.LineWriter
	Logger *util.Logger
}

// New creates a Session bound to the given connection and process
// instance.
func New(conn net.Conn, proc process.Process, logger *util.Logger) *Session {
	addr := conn.RemoteAddr().String()
	return &Session{
		Conn:   conn,
		Proc:   proc,
		Reader: transport.NewLineReader(conn, addr),
		Writer: transport.NewLineWriter(conn, addr),
		Logger: logger.WithPrefix(addr),
	}
}

// Close releases the connection.  Safe to call more than once.
func (s *Session) Close() error {
	return s.Conn.Close()
}
