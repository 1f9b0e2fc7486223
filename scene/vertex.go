package scene

import (
	"structs"
	"unsafe"

	"github.com/oliverbestmann/texquad/glm"
)

// ColorVertex is the vertex format of the flat shaded quad.
type ColorVertex struct {
	_ structs.HostLayout

	Position glm.Vec3f
	Color    glm.Vec3f
}

// TexturedVertex is the vertex format of the textured quad.
type TexturedVertex struct {
	_ structs.HostLayout

	Position glm.Vec3f
	UV       glm.Vec2f
}

const (
	ColorVertexSize    = 24
	TexturedVertexSize = 20
)

var _ [ColorVertexSize]byte = [unsafe.Sizeof(ColorVertex{})]byte{}
var _ [TexturedVertexSize]byte = [unsafe.Sizeof(TexturedVertex{})]byte{}

// QuadVertexCount is the number of vertices of the quad, two triangles.
const QuadVertexCount = 6

// ColoredQuad returns the two triangles of the quad with a color per vertex.
func ColoredQuad() []ColorVertex {
	return []ColorVertex{
		{Position: glm.Vec3f{-0.5, 0.5, 0}, Color: glm.Vec3f{0, 0, 0}},
		{Position: glm.Vec3f{0.5, -0.5, 0}, Color: glm.Vec3f{1, 1, 0}},
		{Position: glm.Vec3f{-0.5, -0.5, 0}, Color: glm.Vec3f{0, 1, 0}},

		{Position: glm.Vec3f{-0.5, 0.5, 0}, Color: glm.Vec3f{0, 0, 0}},
		{Position: glm.Vec3f{0.5, 0.5, 0}, Color: glm.Vec3f{1, 0, 0}},
		{Position: glm.Vec3f{0.5, -0.5, 0}, Color: glm.Vec3f{1, 1, 0}},
	}
}

// TexturedQuad returns the two triangles of the quad with texture coordinates.
// The v axis points down, (0, 0) is the top left corner of the image.
func TexturedQuad() []TexturedVertex {
	return []TexturedVertex{
		{Position: glm.Vec3f{-0.5, 0.5, 0}, UV: glm.Vec2f{0, 0}},
		{Position: glm.Vec3f{0.5, -0.5, 0}, UV: glm.Vec2f{1, 1}},
		{Position: glm.Vec3f{-0.5, -0.5, 0}, UV: glm.Vec2f{0, 1}},

		{Position: glm.Vec3f{-0.5, 0.5, 0}, UV: glm.Vec2f{0, 0}},
		{Position: glm.Vec3f{0.5, 0.5, 0}, UV: glm.Vec2f{1, 0}},
		{Position: glm.Vec3f{0.5, -0.5, 0}, UV: glm.Vec2f{1, 1}},
	}
}

// QuadCorners returns the four distinct corners of the quad, clockwise
// starting at the top left.
func QuadCorners() [4]glm.Vec3f {
	return [4]glm.Vec3f{
		{-0.5, 0.5, 0},
		{0.5, 0.5, 0},
		{0.5, -0.5, 0},
		{-0.5, -0.5, 0},
	}
}
