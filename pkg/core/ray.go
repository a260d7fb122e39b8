package core

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateDirection is returned by Ray.Validate for a zero direction
	ErrDegenerateDirection = errors.New("ray direction is the zero vector")
	// ErrNonFiniteRay is returned by Ray.Validate when a component is NaN or infinite
	ErrNonFiniteRay = errors.New("ray has non-finite components")
)

// Ray represents a ray with an origin and direction.
// The direction does not need to be unit length.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Validate checks that the ray can be intersected meaningfully.
// Intersection code does not call it; callers building rays from
// untrusted input should check once at construction.
func (r Ray) Validate() error {
	if !r.Origin.IsFinite() || !r.Direction.IsFinite() {
		return fmt.Errorf("origin %v direction %v: %w", r.Origin, r.Direction, ErrNonFiniteRay)
	}
	if r.Direction.IsZero() {
		return fmt.Errorf("origin %v: %w", r.Origin, ErrDegenerateDirection)
	}
	return nil
}
