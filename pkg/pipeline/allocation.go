package pipeline

import "fmt"

// MetaAPIVideo is the allocation meta a requester declares support for when
// it can consume pixel-layout metadata on buffers.
const MetaAPIVideo = "video-meta"

// AllocationPool is one pool proposal or decision carried by an
// AllocationQuery.
type AllocationPool struct {
	Max  int
	Min  int
	Pool BufferPool
	Size int
}

// AllocationQuery carries the requester's pool proposals and supported metas
// towards the source, and the source's pool decision back.
type AllocationQuery struct {
	caps  *Caps
	metas map[string]bool
	pools []AllocationPool
}

func NewAllocationQuery(caps *Caps) *AllocationQuery {
	return &AllocationQuery{
		caps:  caps,
		metas: make(map[string]bool),
	}
}

func (q *AllocationQuery) Caps() *Caps {
	return q.caps
}

// AddMeta declares requester support for an allocation meta API.
func (q *AllocationQuery) AddMeta(api string) {
	q.metas[api] = true
}

func (q *AllocationQuery) SupportsMeta(api string) bool {
	return q.metas[api]
}

func (q *AllocationQuery) Pools() []AllocationPool {
	ps := make([]AllocationPool, len(q.pools))
	copy(ps, q.pools)
	return ps
}

// AddPool reports a new pool.
func (q *AllocationQuery) AddPool(p AllocationPool) {
	q.pools = append(q.pools, p)
}

// SetPool reports an update of an already proposed pool.
func (q *AllocationQuery) SetPool(idx int, p AllocationPool) error {
	if idx < 0 || idx >= len(q.pools) {
		return fmt.Errorf("pipeline: no allocation pool at index %d", idx)
	}
	q.pools[idx] = p
	return nil
}
