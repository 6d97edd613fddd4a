package core

// Color is a linear RGB triple. Channels are unbounded until Clamp is called.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor returns the component-wise product of two colors
func (c Color) MultiplyColor(other Color) Color {
	return Color{
		R: c.R * other.R,
		G: c.G * other.G,
		B: c.B * other.B,
	}
}

// Clamp returns the color with every channel limited to [0, 1]
func (c Color) Clamp() Color {
	return Color{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
	}
}

// ToRGB converts the color to 8-bit channels. The color is clamped first and
// each channel is truncated, so 1.0 maps to 255 and 0.999 maps to 254.
func (c Color) ToRGB() (r, g, b uint8) {
	c = c.Clamp()
	return uint8(255 * c.R), uint8(255 * c.G), uint8(255 * c.B)
}

// clamp01 also maps NaN to 0, since both comparisons fail for NaN
func clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v >= 0 {
		return v
	}
	return 0
}
