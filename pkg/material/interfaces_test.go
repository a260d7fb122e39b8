package material

import (
	"testing"

	"github.com/df07/go-raytracer-core/pkg/core"
)

// absorber is a minimal Material used to check that handles pass through untouched
type absorber struct {
	name string
}

func (a *absorber) Scatter(rayIn core.Ray, hit HitRecord) (ScatterResult, bool) {
	return ScatterResult{Incoming: rayIn}, false
}

func TestNewHitRecord_FrontFace(t *testing.T) {
	mat := &absorber{name: "black"}
	outward := core.NewVec3(0, 0, 1)
	point := core.NewVec3(0, 0, 1)

	tests := []struct {
		name           string
		direction      core.Vec3
		expectedFront  bool
		expectedFacing core.Vec3
	}{
		{"arriving from outside", core.NewVec3(0, 0, -1), true, core.NewVec3(0, 0, 1)},
		{"leaving from inside", core.NewVec3(0, 0, 1), false, core.NewVec3(0, 0, -1)},
		{"grazing", core.NewVec3(1, 0, 0), false, core.NewVec3(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(0, 0, 2), tt.direction)
			hit := NewHitRecord(ray, point, 1.5, outward, mat)

			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if hit.Normal != outward {
				t.Errorf("Normal must stay outward: expected %v, got %v", outward, hit.Normal)
			}
			if hit.FacingNormal() != tt.expectedFacing {
				t.Errorf("Expected facing normal %v, got %v", tt.expectedFacing, hit.FacingNormal())
			}
			if hit.T != 1.5 || hit.Point != point {
				t.Errorf("Unexpected point/t: %v, %f", hit.Point, hit.T)
			}
			if hit.Material != Material(mat) {
				t.Errorf("Expected material handle %p to be forwarded, got %v", mat, hit.Material)
			}
		})
	}
}

func TestScatterResult_IsSpecular(t *testing.T) {
	if !(ScatterResult{PDF: 0}).IsSpecular() {
		t.Error("Zero PDF should be specular")
	}
	if (ScatterResult{PDF: 0.3}).IsSpecular() {
		t.Error("Positive PDF should not be specular")
	}
}
