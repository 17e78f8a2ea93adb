package pipeline

import "fmt"

// Fraction represents a rational value such as a framerate.
// A zero numerator means the value is unconstrained.
type Fraction struct {
	Num int
	Den int
}

func NewFraction(num, den int) Fraction {
	return Fraction{Num: num, Den: den}
}

func (f Fraction) Float64() float64 {
	if f.Den == 0 {
		return 0
	}
	return float64(f.Num) / float64(f.Den)
}

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}
