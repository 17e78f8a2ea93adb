package testpattern

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/AlexanderStein/gst-plugin-pattern/pkg/pipeline"
	"github.com/AlexanderStein/gst-plugin-pattern/pkg/video"
	"github.com/asticode/go-astikit"
)

const (
	EventNameSourceNegotiated astikit.EventName = "testpattern.source.negotiated"
	EventNameSourceStarted    astikit.EventName = "testpattern.source.started"
	EventNameSourceStreaming  astikit.EventName = "testpattern.source.streaming"
)

const (
	DeltaStatNameOutgoingByteRate = "testpattern.outgoing.byte_rate"
	DeltaStatNameProducedRate     = "testpattern.produced.rate"
)

var countSource uint64

var _ pipeline.VideoSource = (*Source)(nil)

// Source produces a deterministic animated test pattern: a horizontal white
// bar scrolling vertically over black.
type Source struct {
	c    *astikit.Closer
	cs   *sourceCumulativeStats
	e    *astikit.EventManager
	l    astikit.CompleteLogger
	md   Metadata
	ms   sync.Mutex // Locks s, pool and st
	pool pipeline.BufferPool
	s    settings
	st   Status
}

type sourceCumulativeStats struct {
	outgoingBytes  uint64
	producedFrames uint64
}

type SourceOptions struct {
	Logger   astikit.StdLogger
	Metadata Metadata
}

func NewSource(o SourceOptions) *Source {
	return &Source{
		c:  astikit.NewCloser(),
		cs: &sourceCumulativeStats{},
		e:  astikit.NewEventManager(),
		l:  astikit.AdaptStdLogger(o.Logger),
		md: Metadata{
			Name: fmt.Sprintf("testpattern_%d", atomic.AddUint64(&countSource, 1)),
			Tags: []string{"source", "video"},
		}.Merge(o.Metadata),
		s:  defaultSettings(),
		st: StatusUnconfigured,
	}
}

func (src *Source) String() string {
	return src.md.Name
}

func (src *Source) Metadata() Metadata {
	return src.md
}

func (src *Source) Status() Status {
	src.ms.Lock()
	defer src.ms.Unlock()
	return src.st
}

func (src *Source) Close() error {
	return src.c.Close()
}

func (src *Source) Emit(n astikit.EventName, payload interface{}) {
	src.e.Emit(n, payload)
}

func (src *Source) On(n astikit.EventName, h astikit.EventHandler) astikit.EventRemover {
	return src.e.On(n, h)
}

// Start zeroes the timing state and installs the default working format
// (RGBA, 320x240, unconstrained framerate) so the source is in a valid
// state even before the first negotiation.
func (src *Source) Start() error {
	src.ms.Lock()
	src.s.accumFrames = 0
	src.s.accumRTime = 0
	src.s.nFrames = 0
	src.s.runningTime = 0
	src.s.offset = 0
	info := video.NewInfo(video.FormatRGBA, defaultWidth, defaultHeight)
	src.s.info = &info
	src.st = StatusNegotiated
	src.ms.Unlock()

	src.l.Infof("testpattern: %s is started", src)
	src.e.Emit(EventNameSourceStarted, nil)
	return nil
}

// Produce runs one pull: acquire a buffer, fill its pixels and stamp its
// timing metadata. Ownership of the returned buffer transfers to the
// caller. A failed pull doesn't advance the timing state.
func (src *Source) Produce() (b *pipeline.Buffer, err error) {
	// Lock
	src.ms.Lock()
	defer src.ms.Unlock()

	// Not negotiated
	if src.st == StatusUnconfigured || src.s.info == nil {
		err = fmt.Errorf("testpattern: producing failed: %w", pipeline.ErrNotNegotiated)
		return
	}

	// Acquire buffer
	if src.pool != nil {
		if b, err = src.pool.Acquire(); err != nil {
			err = fmt.Errorf("testpattern: acquiring buffer failed: %w", err)
			return
		}
	} else {
		b = pipeline.NewBufferWithSize(src.s.info.Size())
	}

	// Make sure an aborted pull returns the buffer to its pool
	defer func() {
		if err != nil {
			if src.pool != nil && b != nil {
				src.pool.Release(b)
			}
			b = nil
		}
	}()

	// Fill
	if err = src.fillUnsafe(b); err != nil {
		return
	}

	// Stamp
	if err = src.stampUnsafe(b); err != nil {
		return
	}

	// Increment stats
	atomic.AddUint64(&src.cs.producedFrames, 1)
	atomic.AddUint64(&src.cs.outgoingBytes, uint64(b.Size()))
	return
}

func (src *Source) DeltaStats() []astikit.DeltaStat {
	ss := []astikit.DeltaStat{
		{
			Metadata: astikit.DeltaStatMetadata{
				Description: "Number of frames produced per second",
				Label:       "Produced rate",
				Name:        DeltaStatNameProducedRate,
				Unit:        "fps",
			},
			Valuer: astikit.NewAtomicUint64RateDeltaStat(&src.cs.producedFrames),
		},
		{
			Metadata: astikit.DeltaStatMetadata{
				Description: "Number of bytes going out per second",
				Label:       "Outgoing byte rate",
				Name:        DeltaStatNameOutgoingByteRate,
				Unit:        "Bps",
			},
			Valuer: astikit.NewAtomicUint64RateDeltaStat(&src.cs.outgoingBytes),
		},
	}
	src.ms.Lock()
	pool := src.pool
	src.ms.Unlock()
	if pool != nil {
		ss = append(ss, pool.DeltaStats()...)
	}
	return ss
}
