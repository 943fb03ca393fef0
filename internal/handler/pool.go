package handler

import (
	"bytes"
	"sync"
)

const (
	// a 5x5 spin result with its grid and wins encodes to a few KB
	initialBufferBytes = 4 << 10
	// buffers grown by oversized result pages are not kept
	maxPooledBufferBytes = 64 << 10
)

var encodeBuffers = sync.Pool{
	New: func() any { return bytes.NewBuffer(make([]byte, 0, initialBufferBytes)) },
}

func getBuffer() *bytes.Buffer {
	return encodeBuffers.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferBytes {
		return
	}
	buf.Reset()
	encodeBuffers.Put(buf)
}
