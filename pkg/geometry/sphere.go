package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	Color  core.Color
	Albedo float64

	// Legacy selects the distance formula adj² - (r² - d²) used by the
	// original renderer instead of the nearest root along the ray.
	Legacy bool
}

// Intersect tests if a ray intersects with the sphere.
// The ray direction must be unit length.
func (s *Sphere) Intersect(ray core.Ray) (Hit, bool) {
	// Vector from ray origin to sphere center
	oc := s.Center.Subtract(ray.Origin)

	// Projection of oc onto the ray, and squared distance from the center to the ray
	adj := oc.Dot(ray.Direction)
	d2 := oc.Dot(oc) - adj*adj
	radius2 := s.Radius * s.Radius

	if d2 > radius2 {
		return Hit{}, false
	}

	if s.Legacy {
		dist := adj*adj - (radius2 - d2)
		return Hit{Distance: dist, Point: ray.At(dist)}, true
	}

	// Half chord length inside the sphere
	thc := math.Sqrt(radius2 - d2)

	// Try the closer intersection point first; the farther one applies when
	// the ray starts inside the sphere
	root := adj - thc
	if root < 0 {
		root = adj + thc
		if root < 0 {
			return Hit{}, false
		}
	}

	return Hit{Distance: root, Point: ray.At(root)}, true
}

// SurfaceNormal returns the outward unit normal at a point on the sphere
func (s *Sphere) SurfaceNormal(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// Validate checks the sphere's parameters
func (s *Sphere) Validate() error {
	if !(s.Radius > 0) {
		return fmt.Errorf("sphere radius must be positive, got %g", s.Radius)
	}
	return validateAlbedo(s.Albedo)
}

func validateAlbedo(albedo float64) error {
	if !(albedo >= 0 && albedo <= 1) {
		return fmt.Errorf("albedo must be in [0,1], got %g", albedo)
	}
	return nil
}
