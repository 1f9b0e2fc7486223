package pulse

import (
	"errors"
	"testing"

	"github.com/oliverbestmann/texquad/glm"
	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	writes [][]byte
	err    error
}

func (r *recordingWriter) WriteBuffer(_ *wgpu.Buffer, offset uint64, data []byte) error {
	if r.err != nil {
		return r.err
	}

	r.writes = append(r.writes, append([]byte(nil), data...))
	return nil
}

type block struct {
	A glm.Vec4f
	B float32
}

func TestUniformSizeIsAligned(t *testing.T) {
	assert.EqualValues(t, 16, UniformSize[glm.Vec4f]())
	assert.EqualValues(t, 32, UniformSize[block]())
	assert.EqualValues(t, 64, UniformSize[glm.Mat4f]())
}

func TestUniformUploadWritesWholeValue(t *testing.T) {
	writer := &recordingWriter{}
	uniform := &UniformBuffer[glm.Vec4f]{writer: writer, label: "test"}

	value := glm.Vec4f{1, 2, 3, 4}
	require.NoError(t, uniform.Upload(&value))

	value[0] = 5
	require.NoError(t, uniform.Upload(&value))

	require.Len(t, writer.writes, 2)
	assert.Len(t, writer.writes[0], 16)

	// each upload replaces the content, the latest value wins
	assert.Equal(t, AsByteSlice(&value), writer.writes[1])
}

func TestUniformUploadError(t *testing.T) {
	cause := errors.New("device lost")
	uniform := &UniformBuffer[glm.Vec4f]{writer: &recordingWriter{err: cause}, label: "transform"}

	err := uniform.Upload(&glm.Vec4f{})
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "transform")
}

func TestAsByteSlice(t *testing.T) {
	value := float32(1)
	assert.Equal(t, []byte{0, 0, 0x80, 0x3f}, AsByteSlice(&value))
}

func TestEntryPoints(t *testing.T) {
	source := `
		@vertex
		fn vs_main(@location(0) pos: vec3f) -> @builtin(position) vec4f { return vec4f(pos, 1.0); }

		@fragment fn fs_main() -> @location(0) vec4f { return vec4f(1.0); }

		@compute @workgroup_size(64)
		fn cs_main(@builtin(global_invocation_id) id: vec3u) {}

		fn helper() {}
	`

	assert.Equal(t, []string{"vs_main", "fs_main", "cs_main"}, EntryPoints(source))
}

func TestCheckEntryPoints(t *testing.T) {
	source := `@vertex fn vs_main() -> @builtin(position) vec4f { return vec4f(); }`

	require.NoError(t, CheckEntryPoints("quad", source, "vs_main"))

	err := CheckEntryPoints("quad", source, "vs_main", "fs_main")

	var shaderErr *ShaderError
	require.ErrorAs(t, err, &shaderErr)
	assert.Equal(t, "quad", shaderErr.Name)
	assert.Contains(t, shaderErr.Diagnostics, "fs_main")
}

func TestShaderErrorUnwrap(t *testing.T) {
	cause := errors.New("expected ';'")
	err := error(&ShaderError{Name: "quad", Diagnostics: cause.Error(), Err: cause})

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, `compile shader "quad": expected ';'`, err.Error())
}

func TestReleasersReverseOrder(t *testing.T) {
	var order []string

	var releasers Releasers
	releasers.Push("first", ReleaseFunc(func() { order = append(order, "first") }))
	releasers.Push("second", ReleaseFunc(func() { order = append(order, "second") }))
	releasers.Push("third", ReleaseFunc(func() { order = append(order, "third") }))

	require.Equal(t, 3, releasers.Len())

	releasers.Release()
	assert.Equal(t, []string{"third", "second", "first"}, order)

	// releasing twice does nothing
	releasers.Release()
	assert.Len(t, order, 3)
}

func TestReleaseGuard(t *testing.T) {
	var count int
	releaser := ReleaseFunc(func() { count++ })

	guard := NewReleaseGuard(releaser)
	guard.Release()
	guard.Release()
	assert.Equal(t, 1, count)

	kept := NewReleaseGuard(releaser)
	kept.Keep()
	kept.Release()
	assert.Equal(t, 1, count)
}

func TestRectangle(t *testing.T) {
	outer := RectangleFromXYWH[uint32](0, 0, 256, 128)

	assert.True(t, outer.Contains(RectangleFromXYWH[uint32](10, 10, 100, 100)))
	assert.True(t, outer.Contains(outer))
	assert.False(t, outer.Contains(RectangleFromXYWH[uint32](200, 0, 100, 10)))

	assert.EqualValues(t, 256, outer.Width())
	assert.EqualValues(t, 128, outer.Height())
	assert.Equal(t, "Rect(x=0, y=0, w=256, h=128)", outer.String())

	rect := RectangleFromPoints(glm.Vec2f{4, 3}, glm.Vec2f{1, 2}).Extend(glm.Vec2f{0, 5})
	assert.Equal(t, glm.Vec2f{0, 2}, rect.Min)
	assert.Equal(t, glm.Vec2f{4, 5}, rect.Max)
}

func TestColor(t *testing.T) {
	color := ColorOpaque(glm.Vec3f{0.45, 0.55, 0.6})
	assert.Equal(t, float32(1), color.A)

	assert.Equal(t, wgpu.Color{R: 0.5, G: 0.25, B: 1, A: 1}, Color{0.5, 0.25, 1, 1}.ToWGPU())
	assert.Equal(t, [4]uint8{255, 0, 128, 0}, Color{2, -1, 0.5, 0}.RGBA8())
}

func TestParseLogLevel(t *testing.T) {
	level, ok := parseLogLevel(" warn ")
	assert.True(t, ok)
	assert.Equal(t, wgpu.LogLevelWarn, level)

	_, ok = parseLogLevel("")
	assert.False(t, ok)
}
