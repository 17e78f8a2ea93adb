package pipeline

import (
	"math/bits"
	"time"
)

// ClockTime is a timestamp or duration expressed in nanoseconds.
type ClockTime int64

// ClockTimeNone marks an unset timestamp or duration.
const ClockTimeNone ClockTime = -1

func (t ClockTime) IsNone() bool {
	return t < 0
}

func (t ClockTime) Duration() time.Duration {
	if t.IsNone() {
		return 0
	}
	return time.Duration(t)
}

func (t ClockTime) String() string {
	if t.IsNone() {
		return "none"
	}
	return time.Duration(t).String()
}

// ScaleUint64 returns v * num / den using a 128-bit intermediate so that
// large frame counts never silently wrap. It fails closed instead: a
// quotient that doesn't fit 64 bits returns ErrScaleOverflow.
func ScaleUint64(v, num, den uint64) (uint64, error) {
	if den == 0 {
		return 0, ErrScaleDivisionByZero
	}
	hi, lo := bits.Mul64(v, num)
	if hi >= den {
		return 0, ErrScaleOverflow
	}
	q, _ := bits.Div64(hi, lo, den)
	return q, nil
}
