package sbml

import (
	"bytes"
	"sync"
)

// bufferPool recycles the buffers documents and XML fragments are
// serialized into.
type bufferPool struct {
	p sync.Pool
}

func newBufferPool() *bufferPool {
	p := &bufferPool{}
	p.p.New = func() interface{} { return new(bytes.Buffer) }
	return p
}

var buffers = newBufferPool()
