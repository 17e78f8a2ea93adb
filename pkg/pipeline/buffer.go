package pipeline

// BufferOffsetNone marks an unset sequence offset.
const BufferOffsetNone = ^uint64(0)

// Buffer is one unit of pipeline memory: a payload region plus the metadata
// stamped on it before it is handed downstream. Ownership transfers to the
// caller of the pull once stamped.
type Buffer struct {
	data      []byte
	dts       ClockTime
	duration  ClockTime
	offset    uint64
	offsetEnd uint64
	pts       ClockTime
}

func NewBufferWithSize(size int) *Buffer {
	b := &Buffer{data: make([]byte, size)}
	b.reset()
	return b
}

func (b *Buffer) reset() {
	b.dts = ClockTimeNone
	b.duration = ClockTimeNone
	b.offset = BufferOffsetNone
	b.offsetEnd = BufferOffsetNone
	b.pts = ClockTimeNone
}

func (b *Buffer) Data() []byte {
	return b.data
}

func (b *Buffer) Size() int {
	return len(b.data)
}

func (b *Buffer) PTS() ClockTime {
	return b.pts
}

func (b *Buffer) SetPTS(t ClockTime) {
	b.pts = t
}

func (b *Buffer) DTS() ClockTime {
	return b.dts
}

func (b *Buffer) SetDTS(t ClockTime) {
	b.dts = t
}

func (b *Buffer) Duration() ClockTime {
	return b.duration
}

func (b *Buffer) SetDuration(d ClockTime) {
	b.duration = d
}

func (b *Buffer) Offset() uint64 {
	return b.offset
}

func (b *Buffer) SetOffset(o uint64) {
	b.offset = o
}

func (b *Buffer) OffsetEnd() uint64 {
	return b.offsetEnd
}

func (b *Buffer) SetOffsetEnd(o uint64) {
	b.offsetEnd = o
}
