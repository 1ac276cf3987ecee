package image

import "sync"

// Pool is a thread-safe pool for reusing PixelBuffer instances.
//
// Pool groups buffers by their dimensions. A batch of equally sized images
// then runs its filter stages without allocating a fresh output per image.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*PixelBuffer
	maxSize int // max buffers per bucket
}

// poolKey identifies a bucket of identically sized buffers.
type poolKey struct {
	width  int
	height int
}

// NewPool creates a new buffer pool with the given maximum buffers per bucket.
// A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*PixelBuffer),
		maxSize: maxPerBucket,
	}
}

// Get retrieves a zeroed buffer from the pool or creates a new one.
// Returns ErrInvalidDimensions for non-positive sizes.
func (p *Pool) Get(width, height int) (*PixelBuffer, error) {
	key := poolKey{width: width, height: height}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		buf.Fill(0)
		return buf, nil
	}
	p.mu.Unlock()

	return NewPixelBuffer(width, height)
}

// GetLike is Get with the dimensions of src.
func (p *Pool) GetLike(src *PixelBuffer) *PixelBuffer {
	buf, err := p.Get(src.width, src.height)
	if err != nil {
		// src already has valid dimensions.
		return NewLike(src)
	}
	return buf
}

// Put returns a buffer to the pool for reuse. The caller must not touch buf
// afterwards. If buf is nil or its bucket is full, it is discarded.
func (p *Pool) Put(buf *PixelBuffer) {
	if buf == nil {
		return
	}

	key := poolKey{width: buf.width, height: buf.height}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}

// Len returns the number of idle buffers held for the given size.
func (p *Pool) Len(width, height int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[poolKey{width: width, height: height}])
}
