package glm

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-5

func assertMatEqual(t *testing.T, expected, actual Mat4f) {
	t.Helper()

	for idx := range expected {
		assert.InDelta(t, expected[idx], actual[idx], epsilon, "element %d (row %d, col %d)", idx, idx%4, idx/4)
	}
}

func TestIdentityIsNeutral(t *testing.T) {
	m := TranslationMat4[float32](1, 2, 3).Scale(4, 5, 6)

	assert.Equal(t, m, IdentityMat4[float32]().Mul(m))
	assert.Equal(t, m, m.Mul(IdentityMat4[float32]()))
}

func TestRotationYMatchesReference(t *testing.T) {
	for _, angle := range []float32{0, 0.25, 1, math.Pi / 2, 3, -2.5} {
		expected := Mat4f(mgl32.HomogRotate3DY(angle))
		assertMatEqual(t, expected, RotationYMat4[float32](Rad(angle)))
	}
}

func TestRotationYAtZeroIsIdentity(t *testing.T) {
	assert.Equal(t, IdentityMat4[float32](), RotationYMat4[float32](0))
}

func TestTranslationAndScaleMatchReference(t *testing.T) {
	assertMatEqual(t, Mat4f(mgl32.Translate3D(1, -2, 3)), TranslationMat4[float32](1, -2, 3))
	assertMatEqual(t, Mat4f(mgl32.Scale3D(2, 1, 0.5)), ScaleMat4[float32](2, 1, 0.5))
}

func TestMulMatchesReference(t *testing.T) {
	a := RotationYMat4[float32](0.7).Translate(1, 2, 3)
	b := ScaleMat4[float32](2, 3, 4).Translate(-1, 0, 5)

	expected := mgl32.Mat4(a).Mul4(mgl32.Mat4(b))
	assertMatEqual(t, Mat4f(expected), a.Mul(b))
}

func TestMulAppliesRightHandSideFirst(t *testing.T) {
	m := TranslationMat4[float32](1, 0, 0).Scale(2, 2, 2)

	// scaled first, then translated
	actual := m.Transform(Vec4f{1, 1, 1, 1})
	assert.Equal(t, Vec4f{3, 2, 2, 1}, actual)
}

func TestTransposeRoundTrip(t *testing.T) {
	m := RotationYMat4[float32](1.2).Translate(4, 5, 6)

	assert.Equal(t, m, m.Transpose().Transpose())
	assert.Equal(t, m.At(1, 3), m.Transpose().At(3, 1))
}

func TestAt(t *testing.T) {
	m := TranslationMat4[float32](7, 8, 9)

	assert.Equal(t, float32(7), m.At(0, 3))
	assert.Equal(t, float32(8), m.At(1, 3))
	assert.Equal(t, float32(9), m.At(2, 3))
	assert.Equal(t, float32(1), m.At(3, 3))
}
