package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-raycaster/pkg/core"
)

// Raster is an 8-bit RGB image stored row-major, three bytes per pixel.
// It implements image.Image so it can be passed straight to an encoder.
type Raster struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewRaster allocates a black raster
func NewRaster(width, height int) *Raster {
	return &Raster{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// Set writes a color to pixel (x, y), clamping and truncating each channel
func (r *Raster) Set(x, y int, c core.Color) {
	i := r.offset(x, y)
	r.Pix[i], r.Pix[i+1], r.Pix[i+2] = c.ToRGB()
}

// RGBAt returns the 8-bit channels of pixel (x, y)
func (r *Raster) RGBAt(x, y int) (uint8, uint8, uint8) {
	i := r.offset(x, y)
	return r.Pix[i], r.Pix[i+1], r.Pix[i+2]
}

func (r *Raster) offset(x, y int) int {
	return (y*r.Width + x) * 3
}

// ColorModel implements image.Image
func (r *Raster) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.Width, r.Height)
}

// At implements image.Image. Pixels outside the bounds are transparent black.
func (r *Raster) At(x, y int) color.Color {
	if !image.Pt(x, y).In(r.Bounds()) {
		return color.RGBA{}
	}
	red, green, blue := r.RGBAt(x, y)
	return color.RGBA{R: red, G: green, B: blue, A: 255}
}

// ToRGBA copies the raster into an opaque *image.RGBA
func (r *Raster) ToRGBA() *image.RGBA {
	img := image.NewRGBA(r.Bounds())
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			red, green, blue := r.RGBAt(x, y)
			img.SetRGBA(x, y, color.RGBA{R: red, G: green, B: blue, A: 255})
		}
	}
	return img
}
