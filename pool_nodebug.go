//go:build !debug
// +build !debug

package sbml

import "bytes"

func (p *bufferPool) get() *bytes.Buffer {
	return p.p.Get().(*bytes.Buffer)
}

func (p *bufferPool) put(b *bytes.Buffer) {
	b.Reset()
	p.p.Put(b)
}
