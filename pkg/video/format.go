package video

// BytesPerPixel is the byte size of one pixel in all formats the source
// handles: packed 4-byte interleaved RGB plus a pad/alpha byte.
const BytesPerPixel = 4

// Format enumerates the packed pixel layouts the source handles.
type Format int

const (
	FormatUnknown Format = iota
	FormatBGRx
	FormatRGBA
)

func (f Format) Known() bool {
	return f == FormatBGRx || f == FormatRGBA
}

func (f Format) String() string {
	switch f {
	case FormatBGRx:
		return "BGRx"
	case FormatRGBA:
		return "RGBA"
	default:
		return "unknown"
	}
}

func FormatFromString(s string) Format {
	switch s {
	case "BGRx":
		return FormatBGRx
	case "RGBA":
		return FormatRGBA
	default:
		return FormatUnknown
	}
}
