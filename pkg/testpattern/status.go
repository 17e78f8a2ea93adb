package testpattern

type Status uint32

// Must be in order of execution
const (
	StatusUnconfigured Status = iota
	StatusNegotiated
	StatusAllocating
	StatusStreaming
)

func (s Status) String() string {
	switch s {
	case StatusUnconfigured:
		return "unconfigured"
	case StatusNegotiated:
		return "negotiated"
	case StatusAllocating:
		return "allocating"
	default:
		return "streaming"
	}
}
