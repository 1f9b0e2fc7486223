package scene

import (
	"time"

	"github.com/oliverbestmann/texquad/glm"
)

// TimePerRadian is the default time it takes to rotate the quad by one radian.
const TimePerRadian = 800 * time.Millisecond

// Settings are the values the debug ui can edit while the demo runs.
type Settings struct {
	Rotation float32 `yaml:"rotation"`
	Scale    float32 `yaml:"scale"`
	Distance float32 `yaml:"distance"`

	ClearColor glm.Vec3f `yaml:"clearColor"`
}

func DefaultSettings() Settings {
	return Settings{
		Scale:      1,
		ClearColor: glm.Vec3f{0.45, 0.55, 0.60},
	}
}

// ClearColorRGBA returns the clear color with alpha forced to one.
func (s Settings) ClearColorRGBA() glm.Vec4f {
	return s.ClearColor.Extend(1)
}

// State is the per frame scene state.
type State struct {
	Settings Settings
	Camera   Camera
	Light    LightBlock

	// RotationPeriod is the time for one radian of rotation. Zero
	// disables the automatic rotation.
	RotationPeriod time.Duration

	// the most recently computed transform
	transform TransformBlock
}

func NewState(camera Camera, settings Settings) *State {
	state := &State{
		Settings:       settings,
		Camera:         camera,
		Light:          DefaultLight(),
		RotationPeriod: TimePerRadian,
	}

	state.transform = camera.Transform(settings)

	return state
}

// Update advances the rotation by dt and recomputes the transform block.
// The rotation grows without bound, it is never wrapped.
func (s *State) Update(dt time.Duration) TransformBlock {
	if s.RotationPeriod > 0 && dt > 0 {
		s.Settings.Rotation += float32(dt.Seconds() / s.RotationPeriod.Seconds())
	}

	s.transform = s.Camera.Transform(s.Settings)
	return s.transform
}

// Transform returns the transform block computed by the last call to Update.
func (s *State) Transform() *TransformBlock {
	return &s.transform
}
