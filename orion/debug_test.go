package orion

import (
	"math"
	"testing"

	"github.com/oliverbestmann/texquad/glimpse"
	"github.com/oliverbestmann/texquad/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sliderNames(ui *DebugUI) []string {
	var names []string
	for _, slider := range ui.Sliders {
		names = append(names, slider.Name)
	}

	return names
}

func TestDebugUISlidersPerVariant(t *testing.T) {
	settings := scene.DefaultSettings()

	colored := NewDebugUI(scene.VariantColored, &settings)
	assert.Equal(t, []string{"scale", "dist", "clear r", "clear g", "clear b"}, sliderNames(colored))

	textured := NewDebugUI(scene.VariantTextured, &settings)
	assert.Equal(t, []string{"scale", "rotation", "clear r", "clear g", "clear b"}, sliderNames(textured))
	assert.InDelta(t, 2*math.Pi, textured.Sliders[0].Max, 1e-6)
}

func TestDebugUIEditsSettings(t *testing.T) {
	settings := scene.DefaultSettings()
	ui := NewDebugUI(scene.VariantColored, &settings)

	ui.HandleInput(pressed(glimpse.KeyLeft).Keys)
	assert.InDelta(t, 0.99, settings.Scale, 1e-6)

	// select dist and move it with shift
	ui.HandleInput(pressed(glimpse.KeyDown).Keys)
	ui.HandleInput(pressed(glimpse.KeyRight, glimpse.KeyLeftShift).Keys)
	assert.InDelta(t, 1.0, settings.Distance, 1e-6)
}

func TestDebugUIClampsValues(t *testing.T) {
	settings := scene.DefaultSettings()
	ui := NewDebugUI(scene.VariantColored, &settings)

	for range 5 {
		ui.HandleInput(pressed(glimpse.KeyRight, glimpse.KeyRightShift).Keys)
	}

	assert.Equal(t, float32(1), settings.Scale)
}

func TestDebugUISelectionWraps(t *testing.T) {
	settings := scene.DefaultSettings()
	ui := NewDebugUI(scene.VariantColored, &settings)

	ui.HandleInput(pressed(glimpse.KeyUp).Keys)
	assert.Equal(t, len(ui.Sliders)-1, ui.Selected)

	ui.HandleInput(pressed(glimpse.KeyDown).Keys)
	assert.Equal(t, 0, ui.Selected)
}

func TestDebugUIIgnoresInputWhileHidden(t *testing.T) {
	settings := scene.DefaultSettings()
	ui := NewDebugUI(scene.VariantColored, &settings)
	ui.Visible = false

	quit := ui.HandleInput(pressed(glimpse.KeyLeft).Keys)
	assert.False(t, quit)
	assert.Equal(t, float32(1), settings.Scale)

	// escape works regardless
	assert.True(t, ui.HandleInput(pressed(glimpse.KeyEscape).Keys))
}

func TestDebugUILines(t *testing.T) {
	settings := scene.DefaultSettings()
	ui := NewDebugUI(scene.VariantTextured, &settings)

	times := FrameTimes{AverageDuration: 16_000_000}

	lines := ui.Lines(&times)
	require.NotEmpty(t, lines)

	assert.Equal(t, "Hello, world!", lines[0])
	assert.Contains(t, lines, "Application average 16.000 ms/frame (62.5 FPS)")
	assert.Contains(t, lines[2], "> scale")
}
