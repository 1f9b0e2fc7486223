package orion

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"github.com/oliverbestmann/texquad/glm"
	"github.com/oliverbestmann/texquad/scene"
	"gopkg.in/yaml.v3"
)

// Config describes one run of the demo. It is read from a yaml file,
// command line flags override single values.
type Config struct {
	Variant scene.Variant `yaml:"variant"`

	Window WindowConfig `yaml:"window"`

	// overrides the features of the variant if set
	Features *scene.Features `yaml:"features,omitempty"`

	Camera CameraConfig `yaml:"camera"`

	// initial values of the debug ui controls
	Settings scene.Settings `yaml:"settings"`

	// time for one radian of rotation, zero stops the rotation
	RotationPeriod time.Duration `yaml:"rotationPeriod"`

	// distance of the second copy emitted by the geometry stage, zero disables it
	ExtrudeDistance float32 `yaml:"extrudeDistance"`

	// directory with shader sources that take precedence over the embedded ones
	ShaderDir string `yaml:"shaderDir,omitempty"`

	// reload shaders from ShaderDir when they change
	WatchShaders bool `yaml:"watchShaders,omitempty"`

	Overlay bool `yaml:"overlay"`

	// render with four samples per pixel
	MSAA bool `yaml:"msaa"`

	// number of frames in a row that may fail to upload before the demo gives up
	MaxSkippedFrames int `yaml:"maxSkippedFrames"`

	LogLevel string `yaml:"logLevel"`
}

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

type CameraConfig struct {
	Eye    glm.Vec3f `yaml:"eye"`
	Target glm.Vec3f `yaml:"target"`
	Up     glm.Vec3f `yaml:"up"`

	FovDegrees float32 `yaml:"fovDegrees"`
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
}

func DefaultConfig() Config {
	camera := scene.DefaultPerspectiveCamera()

	return Config{
		Variant: scene.VariantTextured,

		Window: WindowConfig{
			Width:  int(scene.DefaultViewport.Width),
			Height: int(scene.DefaultViewport.Height),
			Title:  "texquad",
		},

		Camera: CameraConfig{
			Eye:        camera.Eye,
			Target:     camera.Target,
			Up:         camera.Up,
			FovDegrees: camera.FovY.Degrees(),
			Near:       camera.Near,
			Far:        camera.Far,
		},

		Settings:         scene.DefaultSettings(),
		RotationPeriod:   scene.TimePerRadian,
		Overlay:          true,
		MaxSkippedFrames: 60,
		LogLevel:         "info",
	}
}

// LoadConfig reads the config from a yaml file. Values missing in the
// file keep their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	return ParseConfig(data)
}

func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}

	if c.Camera.Near <= 0 {
		errs = append(errs, fmt.Errorf("near plane must be positive, got %v", c.Camera.Near))
	}

	if c.Camera.Near >= c.Camera.Far {
		errs = append(errs, fmt.Errorf("near plane %v must be closer than far plane %v", c.Camera.Near, c.Camera.Far))
	}

	if c.Camera.FovDegrees <= 0 || c.Camera.FovDegrees >= 180 {
		errs = append(errs, fmt.Errorf("field of view must be within (0, 180) degrees, got %v", c.Camera.FovDegrees))
	}

	if c.Camera.Eye == c.Camera.Target {
		errs = append(errs, errors.New("camera eye and target must differ"))
	} else {
		sight := c.Camera.Target.Sub(c.Camera.Eye)

		// also catches a zero up vector
		if c.Camera.Up.Cross(sight).Length() <= 1e-6*c.Camera.Up.Length()*sight.Length() {
			errs = append(errs, errors.New("camera up must not be parallel to the line of sight"))
		}
	}

	if c.RotationPeriod < 0 {
		errs = append(errs, fmt.Errorf("rotation period must not be negative, got %s", c.RotationPeriod))
	}

	if c.MaxSkippedFrames < 0 {
		errs = append(errs, fmt.Errorf("max skipped frames must not be negative, got %d", c.MaxSkippedFrames))
	}

	if c.WatchShaders && c.ShaderDir == "" {
		errs = append(errs, errors.New("watching shaders requires a shader directory"))
	}

	if math.IsNaN(float64(c.ExtrudeDistance)) {
		errs = append(errs, errors.New("extrude distance must be a number"))
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// EffectiveFeatures returns the feature override or the features of the variant.
func (c *Config) EffectiveFeatures() scene.Features {
	if c.Features != nil {
		return *c.Features
	}

	return c.Variant.Features()
}

// SceneCamera builds the camera of the configured variant.
func (c *Config) SceneCamera() scene.Camera {
	if c.Variant == scene.VariantColored {
		return scene.TranslationCamera{}
	}

	return scene.PerspectiveCamera{
		Eye:    c.Camera.Eye,
		Target: c.Camera.Target,
		Up:     c.Camera.Up,
		FovY:   glm.DegToRad(c.Camera.FovDegrees),
		Near:   c.Camera.Near,
		Far:    c.Camera.Far,

		Viewport: scene.Viewport{
			Width:  uint32(c.Window.Width),
			Height: uint32(c.Window.Height),
		},
	}
}

func ParseLogLevel(value string) (slog.Level, error) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", value)
	}

	return level, nil
}
