package material

import (
	"github.com/df07/go-raytracer-core/pkg/core"
)

// Material interface for objects that can scatter rays.
// Geometry only stores and forwards a Material; it never calls into it.
// Implementations must be safe to read from many goroutines at once.
type Material interface {
	Scatter(rayIn core.Ray, hit HitRecord) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Incoming    core.Ray  // The incoming ray
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
	PDF         float64   // Probability density function (0 for specular materials)
}

// IsSpecular returns true if this is specular scattering (no PDF)
func (s ScatterResult) IsSpecular() bool {
	return s.PDF <= 0
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Outward unit normal at Point, never flipped
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether the ray arrived from outside the surface
	Material  Material  // Material of the hit object
}

// NewHitRecord builds the record for a hit at parameter t.
// outwardNormal must already be unit length.
func NewHitRecord(ray core.Ray, point core.Vec3, t float64, outwardNormal core.Vec3, mat Material) HitRecord {
	return HitRecord{
		Point:     point,
		Normal:    outwardNormal,
		T:         t,
		FrontFace: ray.Direction.Dot(outwardNormal) < 0,
		Material:  mat,
	}
}

// FacingNormal returns the normal oriented against the incoming ray
func (h HitRecord) FacingNormal() core.Vec3 {
	if h.FrontFace {
		return h.Normal
	}
	return h.Normal.Negate()
}
