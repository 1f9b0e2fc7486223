package pulse

import (
	"github.com/oliverbestmann/texquad/glm"
	"github.com/oliverbestmann/webgpu/wgpu"
)

var ColorWhite = Color{R: 1, G: 1, B: 1, A: 1}
var ColorBlack = Color{A: 1}
var ColorTransparent = Color{}

// Color is a straight rgba color. Values are written to the target as is,
// there is no color space conversion.
type Color struct {
	R, G, B, A float32
}

func ColorOf(color glm.Vec4f) Color {
	return Color{R: color[0], G: color[1], B: color[2], A: color[3]}
}

// ColorOpaque returns the color with alpha set to one.
func ColorOpaque(rgb glm.Vec3f) Color {
	return ColorOf(rgb.Extend(1))
}

func (c Color) ToWGPU() wgpu.Color {
	return wgpu.Color{
		R: float64(c.R),
		G: float64(c.G),
		B: float64(c.B),
		A: float64(c.A),
	}
}

// WithAlpha returns a new color with the alpha component set to the given value.
func (c Color) WithAlpha(alpha float32) Color {
	c.A = alpha
	return c
}

// RGBA8 clamps the color to 0..1 and returns it as 8 bit values.
func (c Color) RGBA8() [4]uint8 {
	return [4]uint8{toByte(c.R), toByte(c.G), toByte(c.B), toByte(c.A)}
}

func toByte(value float32) uint8 {
	return uint8(min(max(value, 0), 1)*255 + 0.5)
}
