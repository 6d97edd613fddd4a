package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
)

// Navy is the background color shared by the built-in scenes
var Navy = core.NewColor(0.13, 0.18, 0.216)

// NewDefaultScene creates two spheres in front of a floor and a right-hand wall,
// lit from the upper left
func NewDefaultScene() *Scene {
	pink := core.NewColor(0.84, 0.54, 0.46)
	teal := core.NewColor(0.07, 0.313, 0.35)
	gray := core.NewColor(0.80, 0.84, 0.86)
	green := core.NewColor(0.29, 0.3921, 0.1921)

	return &Scene{
		BackgroundColor: Navy,
		Width:           800,
		Height:          600,
		FOV:             90,
		Objects: []geometry.Primitive{
			geometry.NewSphere(core.NewVec3(-4, 3, -9), 3, pink, 0.4), // behind
			geometry.NewSphere(core.NewVec3(0, 2, -7), 3, teal, 0.4),  // in front
			geometry.NewPlane(core.NewVec3(0, -8, 0), core.NewVec3(0, -7, 0), gray, 0.05),
			geometry.NewPlane(core.NewVec3(18, 0, 0), core.NewVec3(6, 0, 0), green, 0.1),
		},
		Light: DirectionalLight{
			Direction: core.NewVec3(4, -9, 0),
			Color:     core.NewColor(1, 1, 1),
			Intensity: 7,
		},
	}
}

// NewSingleSphereScene creates one sphere floating against the background
func NewSingleSphereScene() *Scene {
	return &Scene{
		BackgroundColor: Navy,
		Width:           800,
		Height:          600,
		FOV:             90,
		Objects: []geometry.Primitive{
			geometry.NewSphere(core.NewVec3(0, 2, -7), 3, core.NewColor(0.07, 0.313, 0.35), 0.4),
		},
		Light: DirectionalLight{
			Direction: core.NewVec3(4, -9, 0),
			Color:     core.NewColor(1, 1, 1),
			Intensity: 7,
		},
	}
}

// NewShadowScene creates a small sphere hovering over a floor so that its
// shadow falls directly below it
func NewShadowScene() *Scene {
	return &Scene{
		BackgroundColor: Navy,
		Width:           640,
		Height:          480,
		FOV:             60,
		Objects: []geometry.Primitive{
			geometry.NewSphere(core.NewVec3(0, 0, -6), 1, core.NewColor(0.9, 0.3, 0.2), 0.6),
			geometry.NewPlane(core.NewVec3(0, -2, 0), core.NewVec3(0, -1, 0), core.NewColor(0.9, 0.9, 0.9), 0.5),
		},
		Light: DirectionalLight{
			Direction: core.NewVec3(0, -1, 0),
			Color:     core.NewColor(1, 1, 1),
			Intensity: 5,
		},
	}
}
