package video

import (
	"testing"

	"github.com/AlexanderStein/gst-plugin-pattern/pkg/pipeline"
	"github.com/stretchr/testify/require"
)

func TestInfo(t *testing.T) {
	i := NewInfo(FormatBGRx, 320, 240)
	require.Equal(t, 1280, i.Stride())
	require.Equal(t, 307200, i.Size())
	require.Equal(t, pipeline.NewFraction(0, 1), i.Fps)
	require.Equal(t, 1, i.Views)

	// Stride padding
	i.RowStride = 1296
	require.Equal(t, 1296, i.Stride())
	require.Equal(t, 311040, i.Size())
}

func TestNewInfoFromCaps(t *testing.T) {
	s := pipeline.NewStructure(MediaTypeRaw)
	s.Set("format", "BGRx")
	s.Set("width", 320)
	s.Set("height", 240)
	s.Set("framerate", pipeline.NewFraction(30, 1))
	i, err := NewInfoFromCaps(pipeline.NewCaps(s))
	require.NoError(t, err)
	require.Equal(t, FormatBGRx, i.Format)
	require.Equal(t, 320, i.Width)
	require.Equal(t, 240, i.Height)
	require.Equal(t, pipeline.NewFraction(30, 1), i.Fps)

	// Invalid media type
	_, err = NewInfoFromCaps(pipeline.NewCaps(pipeline.NewStructure("audio/x-raw")))
	require.ErrorIs(t, err, pipeline.ErrUnsupportedFormat)

	// Invalid format
	s = pipeline.NewStructure(MediaTypeRaw)
	s.Set("format", "I420")
	s.Set("width", 320)
	s.Set("height", 240)
	_, err = NewInfoFromCaps(pipeline.NewCaps(s))
	require.ErrorIs(t, err, pipeline.ErrUnsupportedFormat)

	// Unfixed dimension
	s = pipeline.NewStructure(MediaTypeRaw)
	s.Set("format", "BGRx")
	s.Set("width", pipeline.IntRange{Min: 0, Max: 4096})
	s.Set("height", 240)
	_, err = NewInfoFromCaps(pipeline.NewCaps(s))
	require.Error(t, err)
}

func TestInfoDelta(t *testing.T) {
	before := NewInfo(FormatRGBA, 320, 240)
	after := NewInfo(FormatBGRx, 640, 240)
	after.Fps = pipeline.NewFraction(30, 1)
	require.Equal(t, "format changed: RGBA --> BGRx && framerate changed: 0/1 --> 30/1 && width changed: 320 --> 640", before.Delta(after))
	require.Equal(t, "", before.Delta(before))
}

func TestMap(t *testing.T) {
	i := NewInfo(FormatBGRx, 4, 2)
	i.RowStride = 20

	// Payload too small
	_, err := Map(pipeline.NewBufferWithSize(16), i)
	require.Error(t, err)

	// Unknown format
	_, err = Map(pipeline.NewBufferWithSize(64), NewInfo(FormatUnknown, 4, 2))
	require.ErrorIs(t, err, pipeline.ErrUnsupportedFormat)

	// Rows exclude stride padding
	b := pipeline.NewBufferWithSize(i.Size())
	f, err := Map(b, i)
	require.NoError(t, err)
	require.Equal(t, 2, f.Height())
	require.Equal(t, 20, f.Stride())
	require.Len(t, f.Row(0), 16)
	f.Row(1)[0] = 0xff
	require.Equal(t, byte(0xff), b.Data()[20])
}
