package testpattern

import (
	"fmt"
	"math"
	"time"

	"github.com/AlexanderStein/gst-plugin-pattern/pkg/pipeline"
)

// Stamp sets the buffer's presentation timestamp, duration and sequence
// offsets, then advances the timing state by one frame. The timestamp is
// the accumulated running time of all prior negotiated epochs plus the
// running time of the current one, so it's monotonically non-decreasing
// across renegotiations.
func (src *Source) Stamp(b *pipeline.Buffer) error {
	src.ms.Lock()
	defer src.ms.Unlock()
	return src.stampUnsafe(b)
}

// Mutex should be locked
func (src *Source) stampUnsafe(b *pipeline.Buffer) error {
	if src.s.info == nil {
		return fmt.Errorf("testpattern: stamping buffer failed: %w", pipeline.ErrNotNegotiated)
	}

	pts := src.s.accumRTime + src.s.runningTime
	offset := src.s.accumFrames + src.s.nFrames
	nFrames := src.s.nFrames + 1

	fps := src.s.info.Fps
	if fps.Num <= 0 {
		// Unconstrained framerate, no duration can be derived
		b.SetPTS(pts)
		b.SetDTS(pipeline.ClockTimeNone)
		b.SetDuration(pipeline.ClockTimeNone)
		b.SetOffset(offset)
		b.SetOffsetEnd(offset + 1)
		src.s.nFrames = nFrames
		return nil
	}

	// Timing state is only advanced once the scale is known to be valid
	next, err := pipeline.ScaleUint64(nFrames, uint64(fps.Den)*uint64(time.Second), uint64(fps.Num))
	if err == nil && next > math.MaxInt64 {
		err = pipeline.ErrScaleOverflow
	}
	if err != nil {
		return fmt.Errorf("testpattern: computing running time failed: %w", err)
	}

	b.SetPTS(pts)
	// Decode timestamps don't apply to live generation
	b.SetDTS(pipeline.ClockTimeNone)
	b.SetDuration(pipeline.ClockTime(next) - src.s.runningTime)
	b.SetOffset(offset)
	b.SetOffsetEnd(offset + 1)

	src.s.nFrames = nFrames
	src.s.runningTime = pipeline.ClockTime(next)
	return nil
}
