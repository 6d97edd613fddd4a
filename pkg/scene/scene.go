package scene

import (
	"fmt"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
)

// DirectionalLight is an infinitely distant light
type DirectionalLight struct {
	Direction core.Vec3  // Direction the light travels, not the direction to the light
	Color     core.Color // Light color
	Intensity float64    // Non-negative scale factor
}

// Scene contains all the elements needed for rendering. A scene must not be
// modified while a render is in progress.
type Scene struct {
	BackgroundColor core.Color
	Width           int     // Image width, must exceed Height
	Height          int     // Image height
	FOV             float64 // Vertical field of view in degrees
	Objects         []geometry.Primitive
	Light           DirectionalLight
}

// Validate checks that the scene can be rendered
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.Width <= s.Height {
		return fmt.Errorf("image width must exceed height, got %dx%d", s.Width, s.Height)
	}
	if !(s.FOV > 0 && s.FOV < 180) {
		return fmt.Errorf("field of view must be in (0, 180) degrees, got %g", s.FOV)
	}
	if s.Light.Direction.IsZero() {
		return fmt.Errorf("light direction must be non-zero")
	}
	if !(s.Light.Intensity >= 0) {
		return fmt.Errorf("light intensity must be non-negative, got %g", s.Light.Intensity)
	}
	for i := range s.Objects {
		if err := s.Objects[i].Validate(); err != nil {
			return fmt.Errorf("object %d (%v): %v", i, s.Objects[i].Kind, err)
		}
	}
	return nil
}

// UseLegacySphereDistance switches every sphere to the original renderer's
// distance formula. Call before rendering.
func (s *Scene) UseLegacySphereDistance() {
	for i := range s.Objects {
		if s.Objects[i].Kind == geometry.KindSphere {
			s.Objects[i].Sphere.Legacy = true
		}
	}
}

// GetPrimitiveCounts returns the number of spheres and planes in the scene
func (s *Scene) GetPrimitiveCounts() (spheres, planes int) {
	for i := range s.Objects {
		switch s.Objects[i].Kind {
		case geometry.KindSphere:
			spheres++
		case geometry.KindPlane:
			planes++
		}
	}
	return spheres, planes
}
