package pipeline

import (
	"errors"
	"fmt"
)

var (
	ErrAlphaUnsupported    = errors.New("pipeline: foreground color with alpha is not supported")
	ErrNotNegotiated       = errors.New("pipeline: not negotiated")
	ErrPoolActive          = errors.New("pipeline: buffer pool has outstanding buffers")
	ErrPoolClosed          = errors.New("pipeline: buffer pool is closed")
	ErrPoolExhausted       = errors.New("pipeline: buffer pool is exhausted")
	ErrPoolNotConfigured   = errors.New("pipeline: buffer pool is not configured")
	ErrScaleDivisionByZero = errors.New("pipeline: scale division by zero")
	ErrScaleOverflow       = errors.New("pipeline: scale overflow")
	ErrUnsupportedFormat   = errors.New("pipeline: unsupported format")
)

// AllocationError wraps a pool configuration rejection surfaced to the
// allocation-decision caller.
type AllocationError struct {
	Err error
}

func (e AllocationError) Error() string {
	return fmt.Sprintf("pipeline: allocation failed: %s", e.Err)
}

func (e AllocationError) Unwrap() error {
	return e.Err
}
