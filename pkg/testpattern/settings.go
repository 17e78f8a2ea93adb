package testpattern

import (
	"github.com/AlexanderStein/gst-plugin-pattern/pkg/pipeline"
	"github.com/AlexanderStein/gst-plugin-pattern/pkg/video"
)

// Default property values. Colors are big-endian ARGB.
const (
	DefaultBackgroundColor uint32 = 0xff000000
	DefaultBarSize         uint32 = 50
	DefaultForegroundColor uint32 = 0xffffffff
	DefaultSpeed           uint32 = 5
)

// settings is the single source of truth for the source configuration and
// its derived timing state. All fields are guarded by Source.ms.
type settings struct {
	// Frames and running time accumulated across all prior negotiated
	// formats, carried forward so renegotiation doesn't reset the timeline
	accumFrames uint64
	accumRTime  pipeline.ClockTime

	// Stored but never consulted by the painter, which emits hard-coded
	// white/black; only the foreground alpha byte is consulted during
	// fixation
	backgroundColor uint32
	foregroundColor uint32

	barSize uint32
	info    *video.Info
	// Current top row of the bar, always in [0, height) once negotiated
	offset uint32
	speed  uint32

	// Frames and running time since the last renegotiation
	nFrames     uint64
	runningTime pipeline.ClockTime
}

func defaultSettings() settings {
	return settings{
		backgroundColor: DefaultBackgroundColor,
		barSize:         DefaultBarSize,
		foregroundColor: DefaultForegroundColor,
		speed:           DefaultSpeed,
	}
}

func (src *Source) ForegroundColor() uint32 {
	src.ms.Lock()
	defer src.ms.Unlock()
	return src.s.foregroundColor
}

func (src *Source) SetForegroundColor(v uint32) {
	src.ms.Lock()
	defer src.ms.Unlock()
	src.s.foregroundColor = v
}

func (src *Source) BackgroundColor() uint32 {
	src.ms.Lock()
	defer src.ms.Unlock()
	return src.s.backgroundColor
}

func (src *Source) SetBackgroundColor(v uint32) {
	src.ms.Lock()
	defer src.ms.Unlock()
	src.s.backgroundColor = v
}

func (src *Source) Speed() uint32 {
	src.ms.Lock()
	defer src.ms.Unlock()
	return src.s.speed
}

func (src *Source) SetSpeed(v uint32) {
	src.ms.Lock()
	defer src.ms.Unlock()
	src.s.speed = v
}

func (src *Source) BarSize() uint32 {
	src.ms.Lock()
	defer src.ms.Unlock()
	return src.s.barSize
}

func (src *Source) SetBarSize(v uint32) {
	src.ms.Lock()
	defer src.ms.Unlock()
	src.s.barSize = v
}

// Info returns the current format descriptor, if any.
func (src *Source) Info() (video.Info, bool) {
	src.ms.Lock()
	defer src.ms.Unlock()
	if src.s.info == nil {
		return video.Info{}, false
	}
	return *src.s.info, true
}
