package geometry

import "fmt"

// Range is a closed interval [Lo, Hi] along one spatial axis.
type Range struct {
	Lo, Hi float64
}

// NewRange creates a Range from lo to hi.
func NewRange(lo, hi float64) *Range {
	return &Range{Lo: lo, Hi: hi}
}

// Extent returns the length of the interval.
func (r *Range) Extent() float64 {
	return r.Hi - r.Lo
}

// Mid returns the midpoint of the interval.
func (r *Range) Mid() float64 {
	return 0.5 * (r.Lo + r.Hi)
}

// Copy returns an independent copy.
func (r *Range) Copy() *Range {
	return &Range{Lo: r.Lo, Hi: r.Hi}
}

// Contains reports whether other lies entirely within r.
func (r *Range) Contains(other *Range) bool {
	return r.Lo <= other.Lo && other.Hi <= r.Hi
}

func (r *Range) String() string {
	return fmt.Sprintf("%5.2f to %5.2f", r.Lo, r.Hi)
}
