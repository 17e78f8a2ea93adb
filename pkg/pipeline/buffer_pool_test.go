package pipeline

import (
	"fmt"
	"testing"
	"time"

	"github.com/asticode/go-astikit"
	"github.com/stretchr/testify/require"
)

func requireDeltaStats(t *testing.T, expected map[string]interface{}, ss []astikit.DeltaStat) {
	require.Len(t, ss, len(expected))
	for _, s := range ss {
		v, ok := expected[s.Metadata.Name]
		if !ok {
			require.Fail(t, fmt.Sprintf("delta stat %s shouldn't be here", s.Metadata.Name))
		}
		require.Equal(t, v, s.Valuer.Value(time.Second))
	}
}

func TestVideoBufferPool(t *testing.T) {
	c := astikit.NewCloser()
	p := NewVideoBufferPool(c)

	dss := p.DeltaStats()

	// Unconfigured pool
	_, err := p.Acquire()
	require.ErrorIs(t, err, ErrPoolNotConfigured)

	// Invalid size
	cfg := p.Config()
	require.Error(t, p.SetConfig(cfg))

	// Configure
	cfg.Size = 16
	cfg.Max = 1
	cfg.AddOption(BufferPoolOptionVideoMeta)
	require.NoError(t, p.SetConfig(cfg))
	require.True(t, p.Config().HasOption(BufferPoolOptionVideoMeta))

	// Acquire
	b1, err := p.Acquire()
	require.NoError(t, err)
	require.Equal(t, 16, b1.Size())
	require.True(t, b1.PTS().IsNone())
	require.Equal(t, BufferOffsetNone, b1.Offset())
	requireDeltaStats(t, map[string]interface{}{DeltaStatNameAllocatedBuffers: uint64(1)}, dss)

	// Exhausted
	_, err = p.Acquire()
	require.ErrorIs(t, err, ErrPoolExhausted)

	// Active pool can't be reconfigured
	require.ErrorIs(t, p.SetConfig(cfg), ErrPoolActive)

	// Release resets metadata and allows reuse
	b1.SetPTS(42)
	b1.SetOffset(7)
	p.Release(b1)
	b2, err := p.Acquire()
	require.NoError(t, err)
	require.Same(t, b1, b2)
	require.True(t, b2.PTS().IsNone())
	require.Equal(t, BufferOffsetNone, b2.Offset())
	requireDeltaStats(t, map[string]interface{}{DeltaStatNameAllocatedBuffers: uint64(1)}, dss)
	p.Release(b2)

	// Closed pool
	c.Close()
	_, err = p.Acquire()
	require.ErrorIs(t, err, ErrPoolClosed)
}

func TestAllocationQuery(t *testing.T) {
	caps := NewCaps(NewStructure("video/x-raw"))
	q := NewAllocationQuery(caps)
	require.Same(t, caps, q.Caps())

	require.False(t, q.SupportsMeta(MetaAPIVideo))
	q.AddMeta(MetaAPIVideo)
	require.True(t, q.SupportsMeta(MetaAPIVideo))

	require.Error(t, q.SetPool(0, AllocationPool{}))
	q.AddPool(AllocationPool{Size: 16})
	require.NoError(t, q.SetPool(0, AllocationPool{Size: 32}))
	require.Len(t, q.Pools(), 1)
	require.Equal(t, 32, q.Pools()[0].Size)
}
