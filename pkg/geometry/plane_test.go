package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
)

func TestPlane_Intersect_BasicIntersection(t *testing.T) {
	// Floor at y=0, lit from above, so the stored normal points down
	plane := &Plane{Origin: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, -1, 0), Albedo: 0.5}

	// Ray shooting down from above
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	hit, isHit := plane.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	expectedT := 1.0
	if math.Abs(hit.Distance-expectedT) > 1e-9 {
		t.Errorf("Expected t=%f, got t=%f", expectedT, hit.Distance)
	}

	expectedPoint := core.NewVec3(0, 0, 0)
	if hit.Point.Subtract(expectedPoint).Length() > 1e-9 {
		t.Errorf("Expected hit point %v, got %v", expectedPoint, hit.Point)
	}
}

func TestPlane_Intersect_UnnormalizedNormal(t *testing.T) {
	plane := &Plane{Origin: core.NewVec3(0, -8, 0), Normal: core.NewVec3(0, -7, 0), Albedo: 0.05}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, -1))

	hit, isHit := plane.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	expectedT := 8 * math.Sqrt2
	if math.Abs(hit.Distance-expectedT) > 1e-9 {
		t.Errorf("Expected t=%f, got t=%f", expectedT, hit.Distance)
	}
	if math.Abs(hit.Point.Y+8) > 1e-9 {
		t.Errorf("Expected hit on y=-8, got %v", hit.Point)
	}
}

func TestPlane_Intersect_Rejected(t *testing.T) {
	plane := &Plane{Origin: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, -1, 0), Albedo: 0.5}

	tests := []struct {
		name         string
		rayOrigin    core.Vec3
		rayDirection core.Vec3
	}{
		{"parallel", core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0)},
		{"back face", core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0)},
		{"nearly parallel below epsilon", core.NewVec3(0, 1, 0), core.NewVec3(1, -1e-7, 0)},
		{"behind ray origin", core.NewVec3(0, -1, 0), core.NewVec3(0, -1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			if hit, isHit := plane.Intersect(ray); isHit {
				t.Errorf("Expected miss, but got hit at t=%f", hit.Distance)
			}
		})
	}
}

func TestPlane_Intersect_DenominatorAtOrBelowEpsilon(t *testing.T) {
	plane := &Plane{Origin: core.NewVec3(0, 0, -5), Normal: core.NewVec3(0, 0, -1), Albedo: 0.5}

	for _, z := range []float64{-1e-7, 0, 0.3, 1} {
		ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, z))
		if plane.Normal.Dot(ray.Direction) > PlaneEpsilon {
			t.Fatalf("Test ray %v should not face the plane", ray.Direction)
		}
		if _, isHit := plane.Intersect(ray); isHit {
			t.Errorf("Expected miss for direction %v", ray.Direction)
		}
	}
}

func TestPlane_SurfaceNormal(t *testing.T) {
	plane := &Plane{Origin: core.NewVec3(18, 0, 0), Normal: core.NewVec3(6, 0, 0), Albedo: 0.1}
	expected := core.NewVec3(-1, 0, 0)

	for _, point := range []core.Vec3{
		core.NewVec3(18, 0, 0),
		core.NewVec3(18, 100, -50),
		core.NewVec3(-3, 2, 1), // not even on the plane
	} {
		normal := plane.SurfaceNormal(point)
		if normal.Subtract(expected).Length() > 1e-12 {
			t.Errorf("Expected normal %v at %v, got %v", expected, point, normal)
		}
	}
}

func TestPlane_Validate(t *testing.T) {
	plane := &Plane{Origin: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 0), Albedo: 0.5}
	if err := plane.Validate(); err == nil {
		t.Error("Expected error for zero normal")
	}

	plane.Normal = core.NewVec3(0, 1, 0)
	if err := plane.Validate(); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	plane.Albedo = 2
	if err := plane.Validate(); err == nil {
		t.Error("Expected error for albedo above one")
	}
}
