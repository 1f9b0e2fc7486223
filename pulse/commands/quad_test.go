package commands

import (
	"os"
	"path/filepath"
	"testing"
	"unsafe"

	"github.com/oliverbestmann/texquad/pulse"
	"github.com/oliverbestmann/texquad/scene"
	"github.com/oliverbestmann/texquad/shaders"
	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBindings(t *testing.T) {
	assert.Equal(t, []uint32{bindingTransform}, renderBindings(scene.FeaturesColored))

	// the geometry stage consumes the transform
	assert.Equal(t,
		[]uint32{bindingLight, bindingTexture, bindingSampler},
		renderBindings(scene.FeaturesTextured),
	)

	assert.Empty(t, renderBindings(scene.Features{Geometry: true}))

	assert.Equal(t,
		[]uint32{bindingTransform, bindingLight, bindingTexture, bindingSampler},
		renderBindings(scene.Features{Texture: true, Depth: true}),
	)
}

func TestVertexLayouts(t *testing.T) {
	colored := vertexLayoutOf(scene.FeaturesColored)
	assert.EqualValues(t, scene.ColorVertexSize, colored.Stride)
	assert.Equal(t, "vs_color", colored.VertexEntryPoint)
	assert.Equal(t, "fs_color", colored.FragmentEntryPoint)
	require.Len(t, colored.Attributes, 2)
	assert.EqualValues(t, 12, colored.Attributes[1].Offset)

	textured := vertexLayoutOf(scene.FeaturesTextured)
	assert.EqualValues(t, scene.TexturedVertexSize, textured.Stride)
	assert.Equal(t, wgpu.VertexFormatFloat32x2, textured.Attributes[1].Format)
	assert.Equal(t, "fs_textured", textured.FragmentEntryPoint)
}

func TestRenderVertexLayoutWithGeometryStage(t *testing.T) {
	layout := renderVertexLayout(scene.FeaturesTextured)

	assert.EqualValues(t, expandedVertexSize, layout.Stride)
	assert.Equal(t, "vs_expanded", layout.VertexEntryPoint)
	assert.Equal(t, "fs_textured", layout.FragmentEntryPoint)
	require.Len(t, layout.Attributes, 4)

	for idx, attr := range layout.Attributes {
		assert.EqualValues(t, idx*16, attr.Offset)
		assert.EqualValues(t, idx, attr.ShaderLocation)
		assert.Equal(t, wgpu.VertexFormatFloat32x4, attr.Format)
	}

	// without the stage, the input layout is used directly
	assert.Equal(t, vertexLayoutOf(scene.FeaturesColored), renderVertexLayout(scene.FeaturesColored))
}

func TestExpandedVertexCount(t *testing.T) {
	assert.EqualValues(t, 6, expandedVertexCount(6, 0))
	assert.EqualValues(t, 12, expandedVertexCount(6, 0.25))
	assert.EqualValues(t, 12, expandedVertexCount(6, -0.25))
}

func TestWorkgroupCount(t *testing.T) {
	assert.EqualValues(t, 0, workgroupCount(0))
	assert.EqualValues(t, 1, workgroupCount(2))
	assert.EqualValues(t, 1, workgroupCount(64))
	assert.EqualValues(t, 2, workgroupCount(65))
}

func TestGeometryParams(t *testing.T) {
	assert.EqualValues(t, 16, unsafe.Sizeof(geometryParams{}))

	params := geometryParamsOf(vertexLayoutOf(scene.FeaturesTextured), 6, 0.5)
	assert.EqualValues(t, 6, params.VertexCount)
	assert.EqualValues(t, 5, params.Stride)
	assert.EqualValues(t, 2, params.AttrCount)
	assert.Equal(t, float32(0.5), params.Extrude)

	params = geometryParamsOf(vertexLayoutOf(scene.FeaturesColored), 6, 0)
	assert.EqualValues(t, 6, params.Stride)
	assert.EqualValues(t, 3, params.AttrCount)
}

func TestDepthStencilState(t *testing.T) {
	assert.Nil(t, depthStencilState(scene.FeaturesColored))

	state := depthStencilState(scene.FeaturesTextured)
	require.NotNil(t, state)
	assert.Equal(t, wgpu.CompareFunctionLess, state.DepthCompare)
	assert.Equal(t, wgpu.TextureFormatDepth24PlusStencil8, state.Format)
	assert.Equal(t, wgpu.OptionalBoolTrue, state.DepthWriteEnabled)
}

func writeShader(t *testing.T, name, source string) *shaders.Library {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(source), 0o644))

	return shaders.NewLibrary(dir)
}

func TestNewQuadCommandRejectsBrokenShader(t *testing.T) {
	// declares the vertex stage only
	library := writeShader(t, shaders.Quad, `
		@vertex
		fn vs_color(@location(0) pos: vec3<f32>) -> @builtin(position) vec4<f32> {
			return vec4<f32>(pos, 1.0);
		}
	`)

	// the device is never used, the shader is rejected first
	_, err := NewQuadCommand(&pulse.Context{}, QuadOptions{
		Features: scene.FeaturesColored,
		Shaders:  library,
	})

	var shaderErr *pulse.ShaderError
	require.ErrorAs(t, err, &shaderErr)
	assert.Equal(t, shaders.Quad, shaderErr.Name)
	assert.Contains(t, shaderErr.Diagnostics, "fs_color")
}

func TestNewQuadCommandRejectsBrokenGeometryShader(t *testing.T) {
	library := writeShader(t, shaders.Geometry, "// no entry point")

	_, err := NewQuadCommand(&pulse.Context{}, QuadOptions{
		Features: scene.Features{Geometry: true},
		Shaders:  library,
	})

	var shaderErr *pulse.ShaderError
	require.ErrorAs(t, err, &shaderErr)
	assert.Equal(t, shaders.Geometry, shaderErr.Name)
	assert.Contains(t, shaderErr.Diagnostics, "cs_main")
}
