package geometry

import (
	"fmt"

	"github.com/df07/go-raycaster/pkg/core"
)

// Kind identifies which variant a Primitive holds
type Kind int

const (
	KindSphere Kind = iota + 1
	KindPlane
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindPlane:
		return "plane"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Hit is the result of a successful ray intersection
type Hit struct {
	Distance float64   // Distance along the ray
	Point    core.Vec3 // Intersection point
}

// Primitive is a tagged union over the supported shapes. Only the field named
// by Kind is meaningful.
type Primitive struct {
	Kind   Kind
	Sphere Sphere
	Plane  Plane
}

// NewSphere creates a sphere primitive
func NewSphere(center core.Vec3, radius float64, color core.Color, albedo float64) Primitive {
	return Primitive{
		Kind: KindSphere,
		Sphere: Sphere{
			Center: center,
			Radius: radius,
			Color:  color,
			Albedo: albedo,
		},
	}
}

// NewPlane creates a plane primitive
func NewPlane(origin, normal core.Vec3, color core.Color, albedo float64) Primitive {
	return Primitive{
		Kind: KindPlane,
		Plane: Plane{
			Origin: origin,
			Normal: normal,
			Color:  color,
			Albedo: albedo,
		},
	}
}

// Intersect returns the distance and point where the ray meets the primitive
func (p *Primitive) Intersect(ray core.Ray) (Hit, bool) {
	switch p.Kind {
	case KindSphere:
		return p.Sphere.Intersect(ray)
	case KindPlane:
		return p.Plane.Intersect(ray)
	default:
		panic(fmt.Sprintf("geometry: intersect on invalid primitive %v", p.Kind))
	}
}

// SurfaceNormal returns the unit shading normal at a point on the primitive
func (p *Primitive) SurfaceNormal(point core.Vec3) core.Vec3 {
	switch p.Kind {
	case KindSphere:
		return p.Sphere.SurfaceNormal(point)
	case KindPlane:
		return p.Plane.SurfaceNormal(point)
	default:
		panic(fmt.Sprintf("geometry: surface normal on invalid primitive %v", p.Kind))
	}
}

// Color returns the surface color
func (p *Primitive) Color() core.Color {
	switch p.Kind {
	case KindSphere:
		return p.Sphere.Color
	case KindPlane:
		return p.Plane.Color
	default:
		panic(fmt.Sprintf("geometry: color on invalid primitive %v", p.Kind))
	}
}

// Albedo returns the fraction of incident light diffusely reflected
func (p *Primitive) Albedo() float64 {
	switch p.Kind {
	case KindSphere:
		return p.Sphere.Albedo
	case KindPlane:
		return p.Plane.Albedo
	default:
		panic(fmt.Sprintf("geometry: albedo on invalid primitive %v", p.Kind))
	}
}

// Validate checks the active variant's parameters
func (p *Primitive) Validate() error {
	switch p.Kind {
	case KindSphere:
		return p.Sphere.Validate()
	case KindPlane:
		return p.Plane.Validate()
	default:
		return fmt.Errorf("invalid primitive kind %v", p.Kind)
	}
}
