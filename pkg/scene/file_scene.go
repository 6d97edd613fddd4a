package scene

import (
	"fmt"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/loaders"
)

const maxImageDimension = 8192

// NewFileScene creates a scene from a scene description file
func NewFileScene(filepath string) (*Scene, error) {
	sceneFile, err := loaders.LoadSceneFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene file: %v", err)
	}

	scene, err := ConvertSceneFile(sceneFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", filepath, err)
	}
	return scene, nil
}

// ConvertSceneFile builds a scene from parsed statements. Missing Film,
// Camera and Background statements fall back to 800x600, 90 degrees and black;
// a missing LightSource yields a light with zero intensity.
func ConvertSceneFile(sceneFile *loaders.SceneFile) (*Scene, error) {
	scene := &Scene{
		Width:   800,
		Height:  600,
		FOV:     90,
		Objects: make([]geometry.Primitive, 0, len(sceneFile.Shapes)),
		Light: DirectionalLight{
			Direction: core.NewVec3(0, -1, 0),
			Color:     core.NewColor(1, 1, 1),
		},
	}

	if err := convertFilm(sceneFile.Film, scene); err != nil {
		return nil, err
	}
	if err := convertCamera(sceneFile.Camera, scene); err != nil {
		return nil, err
	}
	if err := convertBackground(sceneFile.Background, scene); err != nil {
		return nil, err
	}
	if err := convertLight(sceneFile.Light, scene); err != nil {
		return nil, err
	}

	for i := range sceneFile.Shapes {
		shape, err := convertShape(&sceneFile.Shapes[i])
		if err != nil {
			return nil, err
		}
		scene.Objects = append(scene.Objects, shape)
	}

	if err := scene.Validate(); err != nil {
		return nil, err
	}
	return scene, nil
}

func convertFilm(stmt *loaders.Statement, scene *Scene) error {
	if stmt == nil {
		return nil
	}

	if width, ok, err := stmt.GetIntParam("xresolution"); err != nil {
		return fmt.Errorf("line %d: %v", stmt.Line, err)
	} else if ok {
		if width <= 0 || width > maxImageDimension {
			return fmt.Errorf("line %d: invalid image width %d: must be between 1 and %d", stmt.Line, width, maxImageDimension)
		}
		scene.Width = width
	}

	if height, ok, err := stmt.GetIntParam("yresolution"); err != nil {
		return fmt.Errorf("line %d: %v", stmt.Line, err)
	} else if ok {
		if height <= 0 || height > maxImageDimension {
			return fmt.Errorf("line %d: invalid image height %d: must be between 1 and %d", stmt.Line, height, maxImageDimension)
		}
		scene.Height = height
	}

	return nil
}

func convertCamera(stmt *loaders.Statement, scene *Scene) error {
	if stmt == nil {
		return nil
	}
	if stmt.Subtype != "perspective" {
		return fmt.Errorf("line %d: unsupported camera type %q", stmt.Line, stmt.Subtype)
	}

	fov, ok, err := stmt.GetFloatParam("fov")
	if err != nil {
		return fmt.Errorf("line %d: %v", stmt.Line, err)
	}
	if ok {
		scene.FOV = fov
	}
	return nil
}

func convertBackground(stmt *loaders.Statement, scene *Scene) error {
	if stmt == nil {
		return nil
	}

	color, _, err := stmt.GetRGBParam("color")
	if err != nil {
		return fmt.Errorf("line %d: %v", stmt.Line, err)
	}
	scene.BackgroundColor = color
	return nil
}

func convertLight(stmt *loaders.Statement, scene *Scene) error {
	if stmt == nil {
		return nil
	}
	if stmt.Subtype != "distant" {
		return fmt.Errorf("line %d: unsupported light type %q", stmt.Line, stmt.Subtype)
	}

	direction, err := requireVec3(stmt, "direction")
	if err != nil {
		return err
	}
	scene.Light.Direction = direction

	if color, ok, err := stmt.GetRGBParam("color"); err != nil {
		return fmt.Errorf("line %d: %v", stmt.Line, err)
	} else if ok {
		scene.Light.Color = color
	}

	intensity, err := requireFloat(stmt, "intensity")
	if err != nil {
		return err
	}
	scene.Light.Intensity = intensity
	return nil
}

func convertShape(stmt *loaders.Statement) (geometry.Primitive, error) {
	color, ok, err := stmt.GetRGBParam("color")
	if err != nil {
		return geometry.Primitive{}, fmt.Errorf("line %d: %v", stmt.Line, err)
	}
	if !ok {
		return geometry.Primitive{}, fmt.Errorf("line %d: %s %q is missing required parameter color", stmt.Line, stmt.Type, stmt.Subtype)
	}
	albedo, err := requireFloat(stmt, "albedo")
	if err != nil {
		return geometry.Primitive{}, err
	}

	switch stmt.Subtype {
	case "sphere":
		center, err := requireVec3(stmt, "center")
		if err != nil {
			return geometry.Primitive{}, err
		}
		radius, err := requireFloat(stmt, "radius")
		if err != nil {
			return geometry.Primitive{}, err
		}
		return geometry.NewSphere(center, radius, color, albedo), nil

	case "plane":
		origin, err := requireVec3(stmt, "origin")
		if err != nil {
			return geometry.Primitive{}, err
		}
		normal, err := requireVec3(stmt, "normal")
		if err != nil {
			return geometry.Primitive{}, err
		}
		return geometry.NewPlane(origin, normal, color, albedo), nil

	default:
		return geometry.Primitive{}, fmt.Errorf("line %d: unsupported shape type %q", stmt.Line, stmt.Subtype)
	}
}

func requireFloat(stmt *loaders.Statement, name string) (float64, error) {
	val, ok, err := stmt.GetFloatParam(name)
	if err != nil {
		return 0, fmt.Errorf("line %d: %v", stmt.Line, err)
	}
	if !ok {
		return 0, fmt.Errorf("line %d: %s %q is missing required parameter %s", stmt.Line, stmt.Type, stmt.Subtype, name)
	}
	return val, nil
}

func requireVec3(stmt *loaders.Statement, name string) (core.Vec3, error) {
	val, ok, err := stmt.GetVec3Param(name)
	if err != nil {
		return core.Vec3{}, fmt.Errorf("line %d: %v", stmt.Line, err)
	}
	if !ok {
		return core.Vec3{}, fmt.Errorf("line %d: %s %q is missing required parameter %s", stmt.Line, stmt.Type, stmt.Subtype, name)
	}
	return val, nil
}
