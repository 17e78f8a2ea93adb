package video

import (
	"fmt"

	"github.com/AlexanderStein/gst-plugin-pattern/pkg/pipeline"
)

// Frame is a writable per-row view over a buffer payload laid out according
// to an Info. It only exposes the exact payload region described by the
// stride/width metadata.
type Frame struct {
	data []byte
	info Info
}

// Map maps a buffer payload into a writable frame view.
func Map(b *pipeline.Buffer, i Info) (*Frame, error) {
	if !i.Format.Known() {
		return nil, fmt.Errorf("video: mapping format %s: %w", i.Format, pipeline.ErrUnsupportedFormat)
	}
	if b.Size() < i.Size() {
		return nil, fmt.Errorf("video: payload is too small: %d < %d", b.Size(), i.Size())
	}
	return &Frame{
		data: b.Data(),
		info: i,
	}, nil
}

func (f *Frame) Width() int {
	return f.info.Width
}

func (f *Frame) Height() int {
	return f.info.Height
}

func (f *Frame) Stride() int {
	return f.info.Stride()
}

// Row returns the payload bytes of row idx, excluding any stride padding.
func (f *Frame) Row(idx int) []byte {
	start := idx * f.info.Stride()
	return f.data[start : start+f.info.Width*BytesPerPixel]
}
