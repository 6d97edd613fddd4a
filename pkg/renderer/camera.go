package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/scene"
)

// Camera generates primary rays from a fixed eye at the origin looking down -Z
type Camera struct {
	width, height float64
	aspectRatio   float64
	fovAdjustment float64 // tan(fov/2)
}

// NewCamera creates a camera for the scene's image size and field of view.
// It panics unless the image is wider than it is tall.
func NewCamera(s *scene.Scene) *Camera {
	if s.Width <= s.Height {
		panic(fmt.Sprintf("renderer: image width must exceed height, got %dx%d", s.Width, s.Height))
	}

	width := float64(s.Width)
	height := float64(s.Height)
	return &Camera{
		width:         width,
		height:        height,
		aspectRatio:   width / height,
		fovAdjustment: math.Tan(s.FOV * math.Pi / 180 / 2),
	}
}

// GetRay returns the primary ray through the center of pixel (x, y).
// Pixel (0, 0) is the top-left corner.
func (c *Camera) GetRay(x, y int) core.Ray {
	return c.SensorRay(float64(x)+0.5, float64(y)+0.5)
}

// SensorRay returns the ray through a continuous image position measured in
// pixels, so (width/2, height/2) is the exact image center
func (c *Camera) SensorRay(px, py float64) core.Ray {
	sensorX := (px/c.width*2 - 1) * c.aspectRatio * c.fovAdjustment
	sensorY := (1 - py/c.height*2) * c.fovAdjustment

	return core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(sensorX, sensorY, -1))
}

// PrimaryRay returns the camera ray for pixel (x, y) of the scene's image
func PrimaryRay(x, y int, s *scene.Scene) core.Ray {
	return NewCamera(s).GetRay(x, y)
}
