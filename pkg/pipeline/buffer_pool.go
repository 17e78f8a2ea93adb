package pipeline

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/asticode/go-astikit"
	"github.com/google/uuid"
)

// BufferPoolOptionVideoMeta asks the pool to attach pixel-layout metadata to
// the buffers it hands out.
const BufferPoolOptionVideoMeta = "video-meta"

const DeltaStatNameAllocatedBuffers = "pipeline.allocated.buffers"

type BufferPoolConfig struct {
	Caps    *Caps
	Max     int
	Min     int
	Size    int
	options map[string]bool
}

func (c *BufferPoolConfig) AddOption(o string) {
	if c.options == nil {
		c.options = make(map[string]bool)
	}
	c.options[o] = true
}

func (c BufferPoolConfig) HasOption(o string) bool {
	return c.options[o]
}

func (c BufferPoolConfig) copy() BufferPoolConfig {
	i := c
	i.options = make(map[string]bool, len(c.options))
	for o := range c.options {
		i.options[o] = true
	}
	return i
}

// BufferPool is a reusable allocator of fixed-size payload regions. The
// source only decides pool policy; any implementation satisfying this
// interface can back it.
type BufferPool interface {
	Acquire() (*Buffer, error)
	Config() BufferPoolConfig
	DeltaStats() []astikit.DeltaStat
	Release(b *Buffer)
	SetConfig(c BufferPoolConfig) error
	fmt.Stringer
}

var _ BufferPool = (*VideoBufferPool)(nil)

// VideoBufferPool is the default pool implementation: a free list of
// fixed-size buffers behind one mutex.
type VideoBufferPool struct {
	bs          []*Buffer
	c           *astikit.Closer
	cfg         BufferPoolConfig
	closed      bool
	cs          *videoBufferPoolCumulativeStats
	id          uuid.UUID
	m           sync.Mutex // Locks bs, cfg, closed and outstanding
	outstanding int
}

type videoBufferPoolCumulativeStats struct {
	allocatedBuffers uint64
}

func NewVideoBufferPool(c *astikit.Closer) *VideoBufferPool {
	// Create pool
	if c == nil {
		c = astikit.NewCloser()
	}
	p := &VideoBufferPool{
		c:  c,
		cs: &videoBufferPoolCumulativeStats{},
		id: uuid.New(),
	}

	// Make sure pool is closed properly
	c.Add(p.close)
	return p
}

func (p *VideoBufferPool) String() string {
	return fmt.Sprintf("buffer_pool_%s", p.id)
}

func (p *VideoBufferPool) close() {
	p.m.Lock()
	defer p.m.Unlock()
	p.bs = nil
	p.closed = true
}

func (p *VideoBufferPool) Config() BufferPoolConfig {
	p.m.Lock()
	defer p.m.Unlock()
	return p.cfg.copy()
}

func (p *VideoBufferPool) SetConfig(c BufferPoolConfig) error {
	p.m.Lock()
	defer p.m.Unlock()

	// Invalid state
	if p.closed {
		return ErrPoolClosed
	}
	if p.outstanding > 0 {
		return ErrPoolActive
	}

	// Invalid size
	if c.Size <= 0 {
		return fmt.Errorf("pipeline: invalid buffer pool size %d", c.Size)
	}

	// Drop buffers sized for the previous config
	if c.Size != p.cfg.Size {
		p.bs = nil
	}

	// Update
	p.cfg = c.copy()
	return nil
}

func (p *VideoBufferPool) Acquire() (b *Buffer, err error) {
	// Lock
	p.m.Lock()
	defer p.m.Unlock()

	// Invalid state
	if p.closed {
		err = ErrPoolClosed
		return
	}
	if p.cfg.Size <= 0 {
		err = ErrPoolNotConfigured
		return
	}

	// Free list is empty
	if len(p.bs) == 0 {
		// Maximum number of buffers is outstanding
		if p.cfg.Max > 0 && p.outstanding >= p.cfg.Max {
			err = ErrPoolExhausted
			return
		}

		// Allocate buffer
		b = NewBufferWithSize(p.cfg.Size)

		// Increment allocated buffers
		atomic.AddUint64(&p.cs.allocatedBuffers, 1)
		p.outstanding++
		return
	}

	// Use first buffer in free list
	b = p.bs[0]
	p.bs = p.bs[1:]
	p.outstanding++
	return
}

func (p *VideoBufferPool) Release(b *Buffer) {
	// Lock
	p.m.Lock()
	defer p.m.Unlock()

	// Reset metadata
	b.reset()

	// Update
	if p.outstanding > 0 {
		p.outstanding--
	}

	// Closed pools drop released buffers
	if p.closed {
		return
	}

	// Append
	p.bs = append(p.bs, b)
}

func (p *VideoBufferPool) DeltaStats() []astikit.DeltaStat {
	return []astikit.DeltaStat{
		{
			Metadata: astikit.DeltaStatMetadata{
				Description: "Number of allocated buffers",
				Label:       "Allocated buffers",
				Name:        DeltaStatNameAllocatedBuffers,
				Unit:        "b",
			},
			Valuer: astikit.NewAtomicUint64CumulativeDeltaStat(&p.cs.allocatedBuffers),
		},
	}
}
