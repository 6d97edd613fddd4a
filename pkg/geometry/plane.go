package geometry

import (
	"fmt"

	"github.com/df07/go-raycaster/pkg/core"
)

// PlaneEpsilon is the smallest normal·direction accepted as a plane hit
const PlaneEpsilon = 1e-6

// Plane represents an infinite one-sided plane defined by a point and normal.
// Only rays travelling along the stored normal hit it, and the lit face is the
// one facing against the normal.
type Plane struct {
	Origin core.Vec3 // A point on the plane
	Normal core.Vec3 // Need not be unit length
	Color  core.Color
	Albedo float64
}

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(ray core.Ray) (Hit, bool) {
	// Parallel rays and rays hitting the back face are rejected together
	denominator := p.Normal.Dot(ray.Direction)
	if denominator <= PlaneEpsilon {
		return Hit{}, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Origin.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < 0 {
		return Hit{}, false
	}

	return Hit{Distance: t, Point: ray.At(t)}, true
}

// SurfaceNormal returns the negated unit normal regardless of the point
func (p *Plane) SurfaceNormal(_ core.Vec3) core.Vec3 {
	return p.Normal.Normalize().Negate()
}

// Validate checks the plane's parameters
func (p *Plane) Validate() error {
	if p.Normal.IsZero() {
		return fmt.Errorf("plane normal must be non-zero")
	}
	return validateAlbedo(p.Albedo)
}
