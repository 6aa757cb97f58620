//go:build debug
// +build debug

package sbml

import (
	"bytes"
	"sync/atomic"

	"github.com/GodYY/gutils/assert"
)

var bufferTotalGetTimes int64
var bufferTotalPutTimes int64

func getBufferTotalGetTimes() int64 {
	return atomic.LoadInt64(&bufferTotalGetTimes)
}

func getBufferTotalPutTimes() int64 {
	return atomic.LoadInt64(&bufferTotalPutTimes)
}

func (p *bufferPool) get() *bytes.Buffer {
	atomic.AddInt64(&bufferTotalGetTimes, 1)
	return p.p.Get().(*bytes.Buffer)
}

func (p *bufferPool) put(b *bytes.Buffer) {
	assert.Assert(b != nil, "buffer nil")
	atomic.AddInt64(&bufferTotalPutTimes, 1)
	b.Reset()
	p.p.Put(b)
}
