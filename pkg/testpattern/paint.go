package testpattern

import (
	"fmt"

	"github.com/AlexanderStein/gst-plugin-pattern/pkg/pipeline"
	"github.com/AlexanderStein/gst-plugin-pattern/pkg/video"
)

// paint writes one frame of the pattern into f and advances the scroll
// offset by speed, modulo the frame height. Rows whose index lies in
// [offset, offset+barSize) get white pixels, every other row black. Only
// the RGB channels are written; the 4th byte of each pixel is left
// untouched. The configured colors are not consulted here: painting emits
// hard-coded white/black, the foreground color only matters for its alpha
// byte during fixation.
func paint(f *video.Frame, s *settings) {
	height := uint32(f.Height())
	if height == 0 {
		return
	}
	for row := 0; row < f.Height(); row++ {
		line := f.Row(row)
		idx := uint32(row)
		white := idx >= s.offset && idx < s.offset+s.barSize
		for x := 0; x+video.BytesPerPixel <= len(line); x += video.BytesPerPixel {
			if white {
				line[x] = 0xff
				line[x+1] = 0xff
				line[x+2] = 0xff
			} else {
				line[x] = 0x00
				line[x+1] = 0x00
				line[x+2] = 0x00
			}
		}
	}
	s.offset = (s.offset + s.speed) % height
}

// Fill paints the pattern into a buffer payload. A payload that can't be
// mapped is handed back untouched rather than failing the pull.
func (src *Source) Fill(b *pipeline.Buffer) error {
	src.ms.Lock()
	defer src.ms.Unlock()
	return src.fillUnsafe(b)
}

// Mutex should be locked
func (src *Source) fillUnsafe(b *pipeline.Buffer) error {
	if src.s.info == nil || !src.s.info.Format.Known() {
		return fmt.Errorf("testpattern: filling buffer failed: %w", pipeline.ErrNotNegotiated)
	}
	f, err := video.Map(b, *src.s.info)
	if err != nil {
		src.l.Debugf("testpattern: %s: mapping buffer failed: %s", src, err)
		return nil
	}
	paint(f, &src.s)
	return nil
}
