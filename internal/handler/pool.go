package handler

import (
	"bytes"
	"sync"
)

// Item lists for a full shop encode to a few KB; 4KB covers the default stock.
const encodeBufferSize = 4 << 10

var encodeBuffers = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, encodeBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return encodeBuffers.Get().(*bytes.Buffer)
}

// putBuffer drops oversized buffers so one large report does not pin memory.
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 16*encodeBufferSize {
		return
	}
	buf.Reset()
	encodeBuffers.Put(buf)
}
