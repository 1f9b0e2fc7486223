package orion

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/texquad/assets"
	"github.com/oliverbestmann/texquad/glimpse"
	"github.com/oliverbestmann/texquad/pulse"
	"github.com/oliverbestmann/texquad/pulse/commands"
	"github.com/oliverbestmann/texquad/scene"
	"github.com/oliverbestmann/texquad/shaders"
)

// RunDemo acquires the window and all gpu resources, runs the frame loop
// until the window closes and releases everything in reverse order.
func RunDemo(config Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	features := config.EffectiveFeatures()

	slog.Info("Starting demo",
		slog.String("variant", config.Variant.String()),
		slog.String("features", features.String()),
		slog.Int("width", config.Window.Width),
		slog.Int("height", config.Window.Height),
		slog.Bool("msaa", config.MSAA),
	)

	var releasers pulse.Releasers
	defer releasers.Release()

	// create a new window
	win, err := glimpse.NewWindow(glimpse.WindowOptions{
		Width:     config.Window.Width,
		Height:    config.Window.Height,
		Title:     config.Window.Title,
		Resizable: config.Window.Resizable,
	})
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	releasers.Push("window", pulse.ReleaseFunc(win.Terminate))

	// initialize the webgpu device
	ctx, err := pulse.New(win.SurfaceDescriptor())
	if err != nil {
		return fmt.Errorf("initializing wgpu: %w", err)
	}

	releasers.Push("context", ctx)
	releasers.Push("samplers", pulse.ReleaseFunc(pulse.PurgeSamplers))

	view, err := pulse.NewView(ctx, pulse.ViewOptions{MSAA: config.MSAA, Depth: features.Depth})
	if err != nil {
		return fmt.Errorf("create view: %w", err)
	}

	releasers.Push("view", view)

	library := shaders.NewLibrary(config.ShaderDir)

	var texture *pulse.Texture
	if features.Texture {
		texture, err = pulse.DecodeTextureFromMemory(ctx, assets.QuadTexture)
		if err != nil {
			return fmt.Errorf("load quad texture: %w", err)
		}

		releasers.Push("texture", texture)
	}

	state := scene.NewState(config.SceneCamera(), config.Settings)
	state.RotationPeriod = config.RotationPeriod

	quad, err := commands.NewQuadCommand(ctx, commands.QuadOptions{
		Features:        features,
		Shaders:         library,
		Texture:         texture,
		Light:           state.Light,
		ExtrudeDistance: config.ExtrudeDistance,

		TargetFormat:      view.Format(),
		TargetSampleCount: view.SampleCount(),
	})
	if err != nil {
		return fmt.Errorf("create quad command: %w", err)
	}

	releasers.Push("quad", quad)

	device := &gpuDevice{view: view, quad: quad}
	releasers.Push("device", device)

	if config.Overlay {
		overlay, err := commands.NewOverlayCommand(ctx, library, view.Format(), view.SampleCount())
		if err != nil {
			return fmt.Errorf("create overlay command: %w", err)
		}

		releasers.Push("overlay", overlay)
		device.overlay = overlay
	}

	debug := NewDebugUI(config.Variant, &state.Settings)
	debug.Visible = config.Overlay

	loop := &Loop{
		Window:           win,
		Device:           device,
		State:            state,
		Debug:            debug,
		MaxSkippedFrames: config.MaxSkippedFrames,
	}

	if config.WatchShaders {
		watcher, err := shaders.Watch(config.ShaderDir)
		if err != nil {
			return fmt.Errorf("watch shaders: %w", err)
		}

		releasers.Push("watcher", pulse.ReleaseFunc(func() { _ = watcher.Close() }))
		loop.Shaders = watcher
	}

	slog.Info("Startup complete", slog.Int("resources", releasers.Len()))

	return loop.Run()
}
