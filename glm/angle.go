package glm

import (
	"math"

	"github.com/chewxy/math32"
)

// Sincos returns the sine and cosine of the angle in single precision.
func (r Rad) Sincos() (sin, cos float32) {
	return math32.Sincos(float32(r))
}

// Degrees returns the angle in degrees.
func (r Rad) Degrees() float32 {
	return RadToDeg[float32](r)
}

func DegToRad[T float](deg T) Rad {
	return Rad(float64(deg) * (math.Pi / 180))
}

func RadToDeg[T float](rad Rad) (deg T) {
	return T(float64(rad) * (180 / math.Pi))
}
