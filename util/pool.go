package util

import (
	"bytes"
	"sync"
)

// bufPool provides reusable buffers for response serialization,
// reducing GC pressure on the per-request hot path.
var bufPool = sync.Pool{
	New: func() interface{} {
		return new(bytes.Buffer)
	},
}

// GetBuf retrieves an empty buffer from the pool.  Callers must return
// it with [PutBuf] when finished.
func GetBuf() *bytes.Buffer {
	return bufPool.Get().(*bytes.Buffer)
}

// PutBuf resets a buffer and returns it to the pool for reuse.
func PutBuf(buf *bytes.Buffer) {
	if buf == nil {
		return
	}
	buf.Reset()
	bufPool.Put(buf)
}
