package video

import (
	"fmt"
	"strings"

	"github.com/AlexanderStein/gst-plugin-pattern/pkg/pipeline"
)

// MediaTypeRaw is the media type name this source advertises and accepts.
const MediaTypeRaw = "video/x-raw"

// Info describes a negotiated raw video format.
type Info struct {
	Format           Format
	Fps              pipeline.Fraction
	Height           int
	PixelAspectRatio pipeline.Fraction
	// RowStride overrides the natural row byte length when > 0, to account
	// for padding added by the allocator.
	RowStride int
	Views     int
	Width     int
}

func NewInfo(f Format, width, height int) Info {
	return Info{
		Format:           f,
		Fps:              pipeline.NewFraction(0, 1),
		Height:           height,
		PixelAspectRatio: pipeline.NewFraction(0, 1),
		Views:            1,
		Width:            width,
	}
}

// Stride returns the byte length of one row, which may exceed
// Width*BytesPerPixel due to padding.
func (i Info) Stride() int {
	if i.RowStride > 0 {
		return i.RowStride
	}
	return i.Width * BytesPerPixel
}

// Size returns the byte size of one frame.
func (i Info) Size() int {
	return i.Stride() * i.Height
}

func NewInfoFromCaps(c *pipeline.Caps) (i Info, err error) {
	// Invalid media type
	s := c.Structure(0)
	if s == nil {
		err = fmt.Errorf("video: empty caps: %w", pipeline.ErrUnsupportedFormat)
		return
	}
	if s.Name() != MediaTypeRaw {
		err = fmt.Errorf("video: media type %q: %w", s.Name(), pipeline.ErrUnsupportedFormat)
		return
	}

	// Invalid format
	name, _ := s.Str("format")
	f := FormatFromString(name)
	if !f.Known() {
		err = fmt.Errorf("video: format %q: %w", name, pipeline.ErrUnsupportedFormat)
		return
	}

	// Invalid dimensions
	width, ok := s.Int("width")
	if !ok {
		err = fmt.Errorf("video: width is not fixed in %s", s)
		return
	}
	height, ok := s.Int("height")
	if !ok {
		err = fmt.Errorf("video: height is not fixed in %s", s)
		return
	}

	// Create info
	i = NewInfo(f, width, height)
	if fps, ok := s.Fraction("framerate"); ok {
		i.Fps = fps
	}
	return
}

func (i Info) Caps() *pipeline.Caps {
	s := pipeline.NewStructure(MediaTypeRaw)
	s.Set("format", i.Format.String())
	s.Set("width", i.Width)
	s.Set("height", i.Height)
	s.Set("framerate", i.Fps)
	return pipeline.NewCaps(s)
}

func (i Info) Equal(o Info) bool {
	return i.Format == o.Format &&
		i.Fps == o.Fps &&
		i.Height == o.Height &&
		i.PixelAspectRatio == o.PixelAspectRatio &&
		i.Views == o.Views &&
		i.Width == o.Width
}

// Delta returns a human-readable description of what changed between two
// negotiated formats.
func (i Info) Delta(after Info) string {
	var ss []string
	if i.Format != after.Format {
		ss = append(ss, fmt.Sprintf("format changed: %s --> %s", i.Format, after.Format))
	}
	if i.Fps.Float64() != after.Fps.Float64() {
		ss = append(ss, fmt.Sprintf("framerate changed: %s --> %s", i.Fps, after.Fps))
	}
	if i.Height != after.Height {
		ss = append(ss, fmt.Sprintf("height changed: %d --> %d", i.Height, after.Height))
	}
	if i.Width != after.Width {
		ss = append(ss, fmt.Sprintf("width changed: %d --> %d", i.Width, after.Width))
	}
	return strings.Join(ss, " && ")
}
