package glm

import "github.com/chewxy/math32"

// LookAtLH builds a left handed view matrix: the camera looks down +z of
// its own space, +x is to the right and +y is up.
func LookAtLH(eye, target, up Vec3f) Mat4f {
	z := target.Sub(eye).Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)

	return Mat4f{
		x[0], y[0], z[0], 0,
		x[1], y[1], z[1], 0,
		x[2], y[2], z[2], 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
}

// PerspectiveLH maps view space depth near..far to clip depth 0..1,
// which is the depth range webgpu expects.
func PerspectiveLH(fovY Rad, aspect, near, far float32) Mat4f {
	yScale := 1 / math32.Tan(float32(fovY)/2)
	xScale := yScale / aspect
	q := far / (far - near)

	return Mat4f{
		xScale, 0, 0, 0,
		0, yScale, 0, 0,
		0, 0, q, 1,
		0, 0, -q * near, 0,
	}
}
