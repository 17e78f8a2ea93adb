package testpattern

import (
	"fmt"

	"github.com/AlexanderStein/gst-plugin-pattern/pkg/pipeline"
)

// DecideAllocation selects or creates the buffer pool backing the pulls and
// reports the decision on the query: a fresh pool when the requester
// proposed none, an update of the first proposal otherwise. The resolved
// size is never smaller than the negotiated frame size.
func (src *Source) DecideAllocation(q *pipeline.AllocationQuery) error {
	// Lock
	src.ms.Lock()

	// Not negotiated
	if src.s.info == nil {
		src.ms.Unlock()
		return fmt.Errorf("testpattern: deciding allocation failed: %w", pipeline.ErrNotNegotiated)
	}
	negotiatedSize := src.s.info.Size()
	src.st = StatusAllocating
	src.ms.Unlock()

	// Take the first proposal, if any
	var (
		max, min int
		pool     pipeline.BufferPool
		update   bool
	)
	size := negotiatedSize
	if ps := q.Pools(); len(ps) > 0 {
		p := ps[0]
		max = p.Max
		min = p.Min
		pool = p.Pool
		update = true
		if p.Size > size {
			size = p.Size
		}
	}

	// Synthesize a fresh pool
	if pool == nil {
		pool = pipeline.NewVideoBufferPool(src.c.NewChild())
	}

	// Configure pool
	cfg := pool.Config()
	cfg.Caps = q.Caps()
	cfg.Max = max
	cfg.Min = min
	cfg.Size = size
	if q.SupportsMeta(pipeline.MetaAPIVideo) {
		cfg.AddOption(pipeline.BufferPoolOptionVideoMeta)
	}
	if err := pool.SetConfig(cfg); err != nil {
		// No partial pool state is retained
		src.ms.Lock()
		src.st = StatusNegotiated
		src.ms.Unlock()
		return pipeline.AllocationError{Err: err}
	}

	// Report decision
	p := pipeline.AllocationPool{
		Max:  max,
		Min:  min,
		Pool: pool,
		Size: size,
	}
	if update {
		if err := q.SetPool(0, p); err != nil {
			src.ms.Lock()
			src.st = StatusNegotiated
			src.ms.Unlock()
			return pipeline.AllocationError{Err: err}
		}
	} else {
		q.AddPool(p)
	}

	// Store pool
	src.ms.Lock()
	src.pool = pool
	src.st = StatusStreaming
	src.ms.Unlock()

	src.l.Infof("testpattern: %s: streaming from %s with size %d", src, pool, size)
	src.e.Emit(EventNameSourceStreaming, nil)
	return nil
}
