package renderer

import (
	"image"

	"github.com/df07/go-raycaster/pkg/scene"
)

// TileRenderer renders rectangular regions of a scene into a shared raster
type TileRenderer struct {
	scene  *scene.Scene
	camera *Camera
}

// NewTileRenderer creates a new tile renderer for the given scene
func NewTileRenderer(s *scene.Scene) *TileRenderer {
	return &TileRenderer{
		scene:  s,
		camera: NewCamera(s),
	}
}

// RenderTileBounds renders the pixels within bounds into raster. Callers
// rendering concurrently must pass disjoint bounds.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, raster *Raster) RenderStats {
	stats := RenderStats{
		TotalPixels: bounds.Dx() * bounds.Dy(),
		Tiles:       1,
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ray := tr.camera.GetRay(x, y)

			prim, hitPoint, isHit := NearestHit(ray, tr.scene)
			if !isHit {
				raster.Set(x, y, tr.scene.BackgroundColor)
				continue
			}

			color, shadowed := shade(prim, hitPoint, tr.scene)
			raster.Set(x, y, color)

			stats.HitPixels++
			if shadowed {
				stats.ShadowedPixels++
			}
		}
	}

	return stats
}
