package model

import (
	"bytes"
	"sync"
)

// FrameToPool returns a frame buffer to the pool for reuse
func FrameToPool(frame *bytes.Buffer, pool *FramePool) {
	if pool == nil || frame == nil {
		return
	}

	pool.Put(frame)
}

// FramePool recycles rendered frame buffers between the stepper and the printer
type FramePool struct {
	pool sync.Pool
}

func NewFramePool() *FramePool {
	return &FramePool{
		pool: sync.Pool{
			New: func() interface{} {
				return new(bytes.Buffer)
			},
		},
	}
}

// Get retrieves an empty buffer with room for at least size bytes
func (p *FramePool) Get(size int) *bytes.Buffer {
	buf := p.pool.Get().(*bytes.Buffer)
	buf.Grow(size)
	return buf
}

// Put returns a buffer to the pool, clearing its contents
func (p *FramePool) Put(buf *bytes.Buffer) {
	buf.Reset()
	p.pool.Put(buf)
}
