package renderer

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/scene"
)

// ShadowBias offsets shadow ray origins along the surface normal so they do
// not re-hit the surface they start on
const ShadowBias = 1e-6

// Shade returns the Lambertian color of a hit point under the scene's light,
// clamped to [0, 1]
func Shade(prim *geometry.Primitive, hitPoint core.Vec3, s *scene.Scene) core.Color {
	color, _ := shade(prim, hitPoint, s)
	return color
}

// LightIntensityAt returns the light intensity reaching a hit point: zero when
// another object blocks the way to the light, the light's intensity otherwise
func LightIntensityAt(prim *geometry.Primitive, hitPoint core.Vec3, s *scene.Scene) float64 {
	normal := prim.SurfaceNormal(hitPoint)
	if inShadow(hitPoint, normal, directionToLight(s), s) {
		return 0
	}
	return s.Light.Intensity
}

func shade(prim *geometry.Primitive, hitPoint core.Vec3, s *scene.Scene) (core.Color, bool) {
	normal := prim.SurfaceNormal(hitPoint)
	toLight := directionToLight(s)

	shadowed := inShadow(hitPoint, normal, toLight, s)
	lightIntensity := s.Light.Intensity
	if shadowed {
		lightIntensity = 0
	}

	lightPower := math.Max(0, normal.Dot(toLight)) * lightIntensity
	lightReflected := prim.Albedo() / math.Pi

	color := prim.Color().
		MultiplyColor(s.Light.Color).
		Multiply(lightPower).
		Multiply(lightReflected)

	return color.Clamp(), shadowed
}

func directionToLight(s *scene.Scene) core.Vec3 {
	return s.Light.Direction.Negate().Normalize()
}

// inShadow casts a shadow ray toward the light. The light is infinitely far
// away, so any hit at any distance blocks it.
func inShadow(hitPoint, normal, toLight core.Vec3, s *scene.Scene) bool {
	shadowRay := core.NewRay(hitPoint.Add(normal.Multiply(ShadowBias)), toLight)
	return Occluded(shadowRay, s)
}
