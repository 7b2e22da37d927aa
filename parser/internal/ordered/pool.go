package ordered

import (
	"bytes"
	"sync"
)

// Pool size limits
const (
	bufferInitialSize = 4096    // 4KB - covers most small documents
	bufferMaxSize     = 1 << 20 // 1MB - prevent memory leaks
)

var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, bufferInitialSize))
	},
}

// getBuffer retrieves a buffer from the pool and resets it.
func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// putBuffer returns a buffer to the pool if not oversized.
func putBuffer(buf *bytes.Buffer) {
	if buf == nil {
		return
	}
	if buf.Cap() > bufferMaxSize {
		return // Let GC collect oversized buffers
	}
	bufferPool.Put(buf)
}

// detach copies the contents of a pooled buffer so the buffer can be
// returned to the pool.
func detach(buf *bytes.Buffer) []byte {
	return bytes.Clone(buf.Bytes())
}
