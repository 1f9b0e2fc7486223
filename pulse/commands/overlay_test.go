package commands

import (
	"testing"
	"unsafe"

	"github.com/oliverbestmann/texquad/pulse"
	"github.com/oliverbestmann/texquad/shaders"
	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterizeTextSize(t *testing.T) {
	img := RasterizeText([]string{"abc", "abcdef"})

	// basicfont glyphs are 7 pixels wide and 13 pixels high
	assert.Equal(t, 6*7+2*overlayPadding, img.Bounds().Dx())
	assert.Equal(t, 2*13+2*overlayPadding, img.Bounds().Dy())
}

func TestRasterizeTextPixels(t *testing.T) {
	img := RasterizeText([]string{"##########"})

	// the padding only shows the background
	assert.Equal(t, overlayBackground, img.NRGBAAt(0, 0))

	var foreground int
	for y := range img.Bounds().Dy() {
		for x := range img.Bounds().Dx() {
			if img.NRGBAAt(x, y) == overlayForeground {
				foreground++
			}
		}
	}

	assert.Positive(t, foreground)
}

func TestRasterizeEmptyText(t *testing.T) {
	img := RasterizeText(nil)
	assert.Equal(t, 2*overlayPadding, img.Bounds().Dx())
	assert.Equal(t, 13+2*overlayPadding, img.Bounds().Dy())
}

func TestPanelBlockSize(t *testing.T) {
	assert.EqualValues(t, 32, unsafe.Sizeof(panelBlock{}))
}

func TestNewOverlayCommandRejectsBrokenShader(t *testing.T) {
	library := writeShader(t, shaders.Overlay, `
		@fragment
		fn fs_main() -> @location(0) vec4<f32> {
			return vec4<f32>(1.0);
		}
	`)

	_, err := NewOverlayCommand(&pulse.Context{}, library, wgpu.TextureFormatBGRA8Unorm, 1)

	var shaderErr *pulse.ShaderError
	require.ErrorAs(t, err, &shaderErr)
	assert.Equal(t, shaders.Overlay, shaderErr.Name)
	assert.Contains(t, shaderErr.Diagnostics, "vs_main")
}
