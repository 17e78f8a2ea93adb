package testpattern

import (
	"fmt"
	"math"

	"github.com/AlexanderStein/gst-plugin-pattern/pkg/pipeline"
	"github.com/AlexanderStein/gst-plugin-pattern/pkg/video"
)

const (
	defaultHeight = 240
	defaultWidth  = 320
)

// TemplateCaps returns the capability set the source always advertises on
// its output direction.
func TemplateCaps() *pipeline.Caps {
	s := pipeline.NewStructure(video.MediaTypeRaw)
	s.Set("format", video.FormatBGRx.String())
	s.Set("width", pipeline.IntRange{Min: 0, Max: math.MaxInt32})
	s.Set("height", pipeline.IntRange{Min: 0, Max: math.MaxInt32})
	s.Set("framerate", pipeline.FractionRange{
		Min: pipeline.NewFraction(0, 1),
		Max: pipeline.NewFraction(math.MaxInt32, 1),
	})
	return pipeline.NewCaps(s)
}

// Fixate resolves the open ranges of a candidate capability set to concrete
// values nearest to the source defaults (320x240 @ 30/1). When the
// foreground color requests alpha compositing, fixation is refused and the
// set is returned unchanged.
func (src *Source) Fixate(caps *pipeline.Caps) *pipeline.Caps {
	src.ms.Lock()
	fg := src.s.foregroundColor
	src.ms.Unlock()

	// Alpha compositing is not supported
	if fg>>24 != 0xff {
		src.l.Warnf("testpattern: %s: %s", src, pipeline.ErrAlphaUnsupported)
		return caps
	}

	caps = caps.Copy()
	s := caps.Structure(0)
	if s == nil {
		return caps
	}
	s.FixateFieldNearestInt("width", defaultWidth)
	s.FixateFieldNearestInt("height", defaultHeight)
	if s.Has("framerate") {
		s.FixateFieldNearestFraction("framerate", pipeline.NewFraction(30, 1))
	} else {
		s.Set("framerate", pipeline.NewFraction(30, 1))
	}

	// Remaining generic fixation
	s.Fixate()
	return caps
}

// SetCaps accepts a negotiated capability set, stores the resulting format
// descriptor and carries the current epoch over into the accumulated
// counters so the presentation-time clock stays continuous across
// renegotiations.
func (src *Source) SetCaps(caps *pipeline.Caps) error {
	info, err := video.NewInfoFromCaps(caps)
	if err != nil {
		return fmt.Errorf("testpattern: building video info failed: %w", err)
	}

	src.ms.Lock()
	var delta string
	if src.s.info != nil {
		delta = src.s.info.Delta(info)
	}
	src.s.info = &info

	src.s.accumRTime += src.s.runningTime
	src.s.accumFrames += src.s.nFrames
	src.s.runningTime = 0
	src.s.nFrames = 0

	src.st = StatusNegotiated
	src.ms.Unlock()

	if delta != "" {
		src.l.Infof("testpattern: %s: format updated: %s", src, delta)
	}
	src.e.Emit(EventNameSourceNegotiated, info)
	return nil
}
