package renderer

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/scene"
)

// NearestHit returns the closest object the ray hits and the hit point.
// Objects are tested in scene order and a later object must be strictly
// closer to win, so the earliest object wins ties.
func NearestHit(ray core.Ray, s *scene.Scene) (*geometry.Primitive, core.Vec3, bool) {
	var closest *geometry.Primitive
	var closestPoint core.Vec3
	closestSoFar := math.Inf(1)

	for i := range s.Objects {
		hit, isHit := s.Objects[i].Intersect(ray)
		if isHit && hit.Distance < closestSoFar {
			closestSoFar = hit.Distance
			closest = &s.Objects[i]
			closestPoint = hit.Point
		}
	}

	return closest, closestPoint, closest != nil
}

// Occluded reports whether the ray hits any object at any distance
func Occluded(ray core.Ray, s *scene.Scene) bool {
	for i := range s.Objects {
		if _, isHit := s.Objects[i].Intersect(ray); isHit {
			return true
		}
	}
	return false
}
