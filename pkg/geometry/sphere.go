package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/material"
)

var (
	// ErrInvalidRadius is returned when a sphere radius is not a positive finite number
	ErrInvalidRadius = errors.New("sphere radius must be positive and finite")
	// ErrInvalidCenter is returned when a sphere center has NaN or infinite components
	ErrInvalidCenter = errors.New("sphere center must be finite")
)

// Sphere represents a sphere shape. The sphere owns its material value;
// hit records refer to it through the material.Material interface.
type Sphere[M material.Material] struct {
	Center   core.Vec3
	Radius   float64
	Material M
}

// NewSphere creates a new sphere, rejecting geometry the hit test cannot
// produce a meaningful normal for.
func NewSphere[M material.Material](center core.Vec3, radius float64, mat M) (*Sphere[M], error) {
	if !center.IsFinite() {
		return nil, fmt.Errorf("center %v: %w", center, ErrInvalidCenter)
	}
	if !(radius > 0) || math.IsInf(radius, 1) {
		return nil, fmt.Errorf("radius %g: %w", radius, ErrInvalidRadius)
	}
	return &Sphere[M]{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}, nil
}

// Hit tests if a ray intersects with the sphere.
// A zero ray direction gives a = 0 and a NaN root, which no interval
// surrounds, so such rays always miss.
func (s *Sphere[M]) Hit(ray core.Ray, interval core.Interval) (material.HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := s.Center.Subtract(ray.Origin)

	// Quadratic in t with b = -2h: a*t² - 2h*t + c = 0
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return material.HitRecord{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (h - sqrtD) / a
	if !interval.Surrounds(root) {
		// Origin inside the sphere or near root clipped: try the far one
		root = (h + sqrtD) / a
		if !interval.Surrounds(root) {
			return material.HitRecord{}, false
		}
	}

	point := ray.At(root)
	return material.NewHitRecord(ray, point, root, s.OutwardNormal(point), s.Material), true
}

// OutwardNormal returns the unit normal at a point on the sphere surface
func (s *Sphere[M]) OutwardNormal(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Divide(s.Radius)
}
