package scene

import (
	"structs"
	"unsafe"

	"github.com/oliverbestmann/texquad/glm"
)

// TransformBlock is the per frame constant buffer. It is rewritten
// completely every frame.
type TransformBlock struct {
	_ structs.HostLayout

	World         glm.Mat4f
	WorldViewProj glm.Mat4f
}

// LightBlock holds the point light. It is uploaded once.
type LightBlock struct {
	_ structs.HostLayout

	Position glm.Vec4f
	Color    glm.Vec4f
}

const (
	TransformBlockSize = 128
	LightBlockSize     = 32
)

// fails to compile if the go layout drifts from the wgsl layout
var _ [TransformBlockSize]byte = [unsafe.Sizeof(TransformBlock{})]byte{}
var _ [LightBlockSize]byte = [unsafe.Sizeof(LightBlock{})]byte{}

func DefaultLight() LightBlock {
	return LightBlock{
		Position: glm.Vec4f{0, 0, -2, 1},
		Color:    glm.Vec4f{1, 1, 1, 1},
	}
}
