package scene

import (
	"testing"
	"time"

	"github.com/oliverbestmann/texquad/glm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateUpdateAdvancesRotation(t *testing.T) {
	state := NewState(DefaultPerspectiveCamera(), DefaultSettings())

	state.Update(400 * time.Millisecond)
	assert.InDelta(t, 0.5, state.Settings.Rotation, 1e-6)

	state.Update(800 * time.Millisecond)
	assert.InDelta(t, 1.5, state.Settings.Rotation, 1e-6)
}

func TestStateUpdateNeverWraps(t *testing.T) {
	state := NewState(DefaultPerspectiveCamera(), DefaultSettings())

	previous := state.Settings.Rotation
	for range 1000 {
		state.Update(16 * time.Millisecond)

		require.Greater(t, state.Settings.Rotation, previous)
		previous = state.Settings.Rotation
	}

	// 1000 * 16ms / 800ms
	assert.InDelta(t, 20, state.Settings.Rotation, 1e-3)
}

func TestStateUpdateReturnsCameraTransform(t *testing.T) {
	camera := DefaultPerspectiveCamera()
	state := NewState(camera, DefaultSettings())

	block := state.Update(time.Second)

	assert.Equal(t, camera.Transform(state.Settings), block)
	assert.Equal(t, block, *state.Transform())
}

func TestStateZeroPeriodDisablesRotation(t *testing.T) {
	state := NewState(TranslationCamera{}, DefaultSettings())
	state.RotationPeriod = 0

	state.Update(time.Second)
	assert.Zero(t, state.Settings.Rotation)
}

func TestStateInitialTransform(t *testing.T) {
	state := NewState(DefaultPerspectiveCamera(), DefaultSettings())

	// valid before the first update
	assert.False(t, state.Transform().WorldViewProj.IsZero())
	assert.Equal(t, glm.IdentityMat4[float32](), state.Transform().World)
}

func TestClearColorAlpha(t *testing.T) {
	settings := Settings{ClearColor: glm.Vec3f{0.1, 0.2, 0.3}}
	assert.Equal(t, glm.Vec4f{0.1, 0.2, 0.3, 1}, settings.ClearColorRGBA())
}
