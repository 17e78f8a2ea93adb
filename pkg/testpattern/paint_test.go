package testpattern

import (
	"bytes"
	"strings"
	"testing"

	"github.com/AlexanderStein/gst-plugin-pattern/pkg/pipeline"
	"github.com/AlexanderStein/gst-plugin-pattern/pkg/video"
	"github.com/asticode/go-astikit"
	"github.com/stretchr/testify/require"
)

func paintFrame(t *testing.T, i video.Info, s *settings) *pipeline.Buffer {
	b := pipeline.NewBufferWithSize(i.Size())
	// Prefill so untouched bytes are detectable
	for idx := range b.Data() {
		b.Data()[idx] = 0xaa
	}
	f, err := video.Map(b, i)
	require.NoError(t, err)
	paint(f, s)
	return b
}

func TestPaintDeterminism(t *testing.T) {
	i := video.NewInfo(video.FormatBGRx, 320, 240)
	s1 := settings{barSize: 50, offset: 10, speed: 5}
	s2 := settings{barSize: 50, offset: 10, speed: 5}

	b1 := paintFrame(t, i, &s1)
	b2 := paintFrame(t, i, &s2)
	require.True(t, bytes.Equal(b1.Data(), b2.Data()))
	require.Equal(t, s1.offset, s2.offset)
	require.Equal(t, uint32(15), s1.offset)
}

func TestPaintOffsetWrap(t *testing.T) {
	i := video.NewInfo(video.FormatBGRx, 16, 240)
	s := settings{barSize: 50, offset: 3, speed: 7}
	const n = 100
	for idx := 0; idx < n; idx++ {
		paintFrame(t, i, &s)
	}
	require.Equal(t, uint32((3+n*7)%240), s.offset)
	require.Less(t, s.offset, uint32(240))
}

func TestPaintBarBoundary(t *testing.T) {
	i := video.NewInfo(video.FormatBGRx, 320, 240)
	i.RowStride = i.Width*video.BytesPerPixel + 16
	s := settings{barSize: 50, offset: 0, speed: 5}
	b := paintFrame(t, i, &s)

	for row := 0; row < i.Height; row++ {
		line := b.Data()[row*i.Stride():]
		var want byte
		if row < 50 {
			want = 0xff
		}
		for x := 0; x < i.Width*video.BytesPerPixel; x += video.BytesPerPixel {
			require.Equal(t, want, line[x], "row %d", row)
			require.Equal(t, want, line[x+1], "row %d", row)
			require.Equal(t, want, line[x+2], "row %d", row)
			// 4th byte is left untouched
			require.Equal(t, byte(0xaa), line[x+3], "row %d", row)
		}
		// Stride padding is left untouched
		for x := i.Width * video.BytesPerPixel; x < i.Stride(); x++ {
			require.Equal(t, byte(0xaa), line[x], "row %d", row)
		}
	}
}

func TestFillNotNegotiated(t *testing.T) {
	src := NewSource(SourceOptions{})
	err := src.Fill(pipeline.NewBufferWithSize(16))
	require.ErrorIs(t, err, pipeline.ErrNotNegotiated)
}

func TestFillMapFailureIsDowngraded(t *testing.T) {
	l := astikit.NewMockedLogger()
	l.SkipFunc = func(msg string) (skip bool) {
		return !strings.Contains(msg, "mapping buffer failed")
	}
	src := NewSource(SourceOptions{Logger: l})
	require.NoError(t, src.Start())

	// A buffer too small for the negotiated format is handed back untouched
	b := pipeline.NewBufferWithSize(16)
	b.Data()[0] = 0x42
	require.NoError(t, src.Fill(b))
	require.Equal(t, byte(0x42), b.Data()[0])
	require.Len(t, l.Items, 1)
	require.Contains(t, l.Items[0].Message, "mapping buffer failed")
}
