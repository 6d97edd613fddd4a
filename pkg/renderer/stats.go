package renderer

import (
	"image"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	HitPixels      int           // Pixels whose primary ray hit an object
	ShadowedPixels int           // Hit pixels whose shadow ray was blocked
	Tiles          int           // Tiles rendered
	Workers        int           // Workers used
	Duration       time.Duration // Wall-clock render time
}

// Merge adds the per-tile counters of other into s
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.HitPixels += other.HitPixels
	s.ShadowedPixels += other.ShadowedPixels
	s.Tiles += other.Tiles
}

// BackgroundPixels returns the number of pixels that missed every object
func (s *RenderStats) BackgroundPixels() int {
	return s.TotalPixels - s.HitPixels
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an image in [0, 1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	var total float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA() // 16-bit channels
			total += (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 0xffff
		}
	}
	return total / float64(pixels)
}
