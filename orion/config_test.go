package orion

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/oliverbestmann/texquad/glm"
	"github.com/oliverbestmann/texquad/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	config := DefaultConfig()
	require.NoError(t, config.Validate())

	assert.Equal(t, scene.VariantTextured, config.Variant)
	assert.Equal(t, scene.FeaturesTextured, config.EffectiveFeatures())
	assert.InDelta(t, 81, config.Camera.FovDegrees, 1e-4)
}

func TestDefaultCameraMatchesScene(t *testing.T) {
	config := DefaultConfig()

	camera, ok := config.SceneCamera().(scene.PerspectiveCamera)
	require.True(t, ok)

	expected := scene.DefaultPerspectiveCamera()
	assert.InDelta(t, float32(expected.FovY), float32(camera.FovY), 1e-6)
	assert.Equal(t, expected.Viewport, camera.Viewport)
	assert.Equal(t, expected.Eye, camera.Eye)
}

func TestParseConfig(t *testing.T) {
	config, err := ParseConfig([]byte(`
variant: colored
window:
  width: 640
  height: 480
settings:
  scale: 0.5
  distance: 2
rotationPeriod: 2s
extrudeDistance: 0.1
features:
  depth: true
msaa: true
logLevel: debug
`))

	require.NoError(t, err)

	assert.Equal(t, scene.VariantColored, config.Variant)
	assert.Equal(t, 640, config.Window.Width)
	assert.Equal(t, 2*time.Second, config.RotationPeriod)
	assert.Equal(t, float32(0.5), config.Settings.Scale)
	assert.Equal(t, float32(2), config.Settings.Distance)
	assert.Equal(t, float32(0.1), config.ExtrudeDistance)
	assert.Equal(t, scene.Features{Depth: true}, config.EffectiveFeatures())
	assert.True(t, config.MSAA)
	assert.IsType(t, scene.TranslationCamera{}, config.SceneCamera())

	// not in the file, keeps the default
	assert.Equal(t, "texquad", config.Window.Title)
	assert.Equal(t, glm.Vec3f{0.45, 0.55, 0.60}, config.Settings.ClearColor)
	assert.True(t, config.Overlay)

	level, err := ParseLogLevel(config.LogLevel)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestParseConfigRejectsInvalid(t *testing.T) {
	_, err := ParseConfig([]byte(`
window:
  width: 0
camera:
  near: 30
rotationPeriod: -1s
`))

	require.Error(t, err)
	assert.ErrorContains(t, err, "window size")
	assert.ErrorContains(t, err, "near plane")
	assert.ErrorContains(t, err, "rotation period")
}

func TestCameraUpMustNotFollowLineOfSight(t *testing.T) {
	config := DefaultConfig()
	config.Camera.Eye = glm.Vec3f{0, 0, -2}
	config.Camera.Target = glm.Vec3f{}
	config.Camera.Up = glm.Vec3f{0, 0, 1}

	assert.ErrorContains(t, config.Validate(), "camera up")

	config.Camera.Up = glm.Vec3f{}
	assert.ErrorContains(t, config.Validate(), "camera up")

	config.Camera.Up = glm.Vec3f{0, 1, 0}
	assert.NoError(t, config.Validate())
}

func TestParseConfigUnknownVariant(t *testing.T) {
	_, err := ParseConfig([]byte(`variant: wireframe`))
	assert.ErrorContains(t, err, "wireframe")
}

func TestWatchRequiresShaderDir(t *testing.T) {
	config := DefaultConfig()
	config.WatchShaders = true

	assert.ErrorContains(t, config.Validate(), "shader directory")
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "texquad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("overlay: false\n"), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.False(t, config.Overlay)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
