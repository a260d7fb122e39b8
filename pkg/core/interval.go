package core

import (
	"fmt"
	"math"
)

// Interval is a range of ray parameters accepted as valid hits
type Interval struct {
	Min, Max float64
}

var (
	// EmptyInterval contains nothing
	EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	// UniverseInterval contains every value except NaN
	UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}
)

// NewInterval creates a new interval. min <= max is not enforced.
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Contains reports whether min <= x <= max
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether min < x < max.
// Hit tests use this rather than Contains so that a root sitting exactly on
// the near bound (the surface a ray just left) is rejected.
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Size returns max - min
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// IsEmpty reports whether the interval has min > max
func (i Interval) IsEmpty() bool {
	return i.Min > i.Max
}

// Clamp returns x limited to [min, max]
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

func (i Interval) String() string {
	return fmt.Sprintf("(%g, %g)", i.Min, i.Max)
}
