// Package transport frames a connection's byte stream into
// newline-delimited units.  It handles the "how" of data movement —
// reading frames off the socket and writing them back — independent of
// what the frames mean (which is the protocol layer's job).
package transport

import (
	"bufio"
	"bytes"
	"io"

	errs "stepd/internal/errors"
	"stepd/util"
)

// LineReader turns an io.Reader into a sequence of newline-terminated
// frames.
type LineReader struct {
	br   *bufio.Reader
	addr string
}

// NewLineReader wraps r.  addr is used only for error context.
func NewLineReader(r io.Reader, addr string) *LineReader {
	return &LineReader{br: bufio.NewReader(r), addr: addr}
}

// ReadFrame returns the next frame, excluding the '\n' terminator.
// When the peer closes with a partial line pending, that partial line
// is delivered as the final frame; the next call reports the end of
// the stream via [errs.ErrStreamEnd].  Any other read failure ends the
// stream with a NetworkError.
func (r *LineReader) ReadFrame() ([]byte, error) {
	data, err := r.br.ReadBytes('\n')
	switch {
	case err == nil:
		return data[:len(data)-1], nil
	case err == io.EOF:
		if len(data) > 0 {
			return data, nil
		}
		return nil, errs.ErrStreamEnd
	default:
		return nil, errs.Wrap("read", r.addr, err)
	}
}

// IsBlank reports whether a frame is empty or whitespace-only.  Blank
// frames are keep-alives: skipped without dispatch and without a
// response.
func IsBlank(frame []byte) bool {
	return len(bytes.TrimSpace(frame)) == 0
}

// LineWriter writes single frames back to the connection, each
// terminated by exactly one '\n'.
type LineWriter struct {
	w    io.Writer
	addr string
}

// NewLineWriter wraps w.  addr is used only for error context.
func NewLineWriter(w io.Writer, addr string) *LineWriter {
	return &LineWriter{w: w, addr: addr}
}

// WriteFrame appends the terminator and writes the whole frame with a
// single Write call, so the write is atomic from the dispatcher's
// perspective.  (net.Conn.Write already retries partial writes until
// the buffer is drained or a real error occurs.)
func (w *LineWriter) WriteFrame(payload []byte) error {
	buf := util.GetBuf()
	defer util.PutBuf(buf)

	buf.Write(payload)
	buf.WriteByte('\n')

	if _, err := w.w.Write(buf.Bytes()); err != nil {
		return errs.Wrap("write", w.addr, err)
	}
	return nil
}
