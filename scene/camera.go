package scene

import (
	"math"

	"github.com/oliverbestmann/texquad/glm"
)

// Camera turns the current settings into the transform block of a frame.
type Camera interface {
	Transform(settings Settings) TransformBlock
}

// Viewport is the size of the output surface in pixels.
type Viewport struct {
	Width  uint32
	Height uint32
}

// DefaultViewport is the fixed window size of the demo.
var DefaultViewport = Viewport{Width: 768, Height: 768}

func (v Viewport) Aspect() float32 {
	return float32(v.Width) / float32(v.Height)
}

// Project transforms pos into screen space. x and y are in pixels with the
// origin in the top left corner, z is the depth in 0..1.
func (v Viewport) Project(wvp glm.Mat4f, pos glm.Vec3f) glm.Vec3f {
	clip := wvp.Transform(pos.Extend(1))
	x, y, z, w := clip.XYZW()

	ndcX, ndcY, ndcZ := x/w, y/w, z/w

	return glm.Vec3f{
		(ndcX + 1) / 2 * float32(v.Width),
		(1 - ndcY) / 2 * float32(v.Height),
		ndcZ,
	}
}

// minDistance keeps the translation camera from sitting exactly on the quad.
const minDistance = 0.0001

// TranslationCamera is the camera of the flat shaded variant. It has no
// projection, the quad is scaled along x and pushed along z.
type TranslationCamera struct{}

func (TranslationCamera) Transform(settings Settings) TransformBlock {
	distance := settings.Distance
	if distance == 0 {
		distance = minDistance
	}

	world := glm.ScaleMat4[float32](settings.Scale, 1, 1)
	view := glm.TranslationMat4[float32](0, 0, distance)

	return TransformBlock{
		World:         world,
		WorldViewProj: view.Mul(world),
	}
}

// PerspectiveCamera looks at the target from Eye through a perspective projection.
// The quad is scaled uniformly and rotated around the y axis.
type PerspectiveCamera struct {
	Eye    glm.Vec3f
	Target glm.Vec3f
	Up     glm.Vec3f

	FovY glm.Rad
	Near float32
	Far  float32

	Viewport Viewport
}

// DefaultPerspectiveCamera is the camera of the textured variant.
func DefaultPerspectiveCamera() PerspectiveCamera {
	return PerspectiveCamera{
		Eye:      glm.Vec3f{0, 0, -2},
		Target:   glm.Vec3f{0, 0, 0},
		Up:       glm.Vec3f{0, 1, 0},
		FovY:     glm.Rad(0.45 * math.Pi),
		Near:     0.1,
		Far:      20,
		Viewport: DefaultViewport,
	}
}

func (c PerspectiveCamera) Transform(settings Settings) TransformBlock {
	world := glm.RotationYMat4[float32](glm.Rad(settings.Rotation)).
		Scale(settings.Scale, settings.Scale, settings.Scale)

	view := glm.LookAtLH(c.eye(settings.Distance), c.Target, c.Up)
	projection := glm.PerspectiveLH(c.FovY, c.Viewport.Aspect(), c.Near, c.Far)

	return TransformBlock{
		World:         world,
		WorldViewProj: projection.Mul(view).Mul(world),
	}
}

// eye moves the camera away from the target by distance
func (c PerspectiveCamera) eye(distance float32) glm.Vec3f {
	if distance == 0 {
		return c.Eye
	}

	back := c.Eye.Sub(c.Target).Normalize()
	return c.Eye.Add(back.MulScalar(distance))
}
