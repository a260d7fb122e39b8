package geometry

import (
	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Hit returns the nearest hit whose t lies strictly inside interval, so a
// caller combining several shapes can narrow interval.Max to the closest t
// found so far and keep the last hit reported.
type Shape interface {
	Hit(ray core.Ray, interval core.Interval) (material.HitRecord, bool)
}
