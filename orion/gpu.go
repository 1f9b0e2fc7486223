package orion

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/texquad/pulse"
	"github.com/oliverbestmann/texquad/pulse/commands"
	"github.com/oliverbestmann/texquad/scene"
	"github.com/oliverbestmann/webgpu/wgpu"
)

// gpuDevice renders the frame phases with webgpu.
type gpuDevice struct {
	view    *pulse.View
	quad    *commands.QuadCommand
	overlay *commands.OverlayCommand

	// valid between Draw and Present
	surface     *wgpu.Texture
	surfaceView *wgpu.TextureView
	target      *pulse.RenderTarget
}

func (g *gpuDevice) Configure(width, height uint32) error {
	return g.view.Configure(width, height)
}

func (g *gpuDevice) Upload(block *scene.TransformBlock) error {
	return g.quad.UploadTransform(block)
}

func (g *gpuDevice) Draw(clear pulse.Color) error {
	if err := g.acquireSurface(); err != nil {
		return err
	}

	if err := g.quad.Draw(g.target, clear); err != nil {
		g.releaseSurface()
		return err
	}

	return nil
}

func (g *gpuDevice) acquireSurface() error {
	// release anything left over from a frame that was not presented
	g.releaseSurface()

	surface, err := g.view.Surface.GetCurrentTexture()
	if err != nil {
		slog.Warn("Surface texture not available, reconfigure", slog.Any("err", err))

		width, height := g.view.Size()
		if err := g.view.Configure(width, height); err != nil {
			return fmt.Errorf("reconfigure surface: %w", err)
		}

		return fmt.Errorf("get current texture: %w", ErrSkipFrame)
	}

	surfaceView, err := surface.CreateView(nil)
	if err != nil {
		surface.Release()
		return fmt.Errorf("create surface view: %w", err)
	}

	g.surface = surface
	g.surfaceView = surfaceView
	g.target = g.view.RenderTarget(surface, surfaceView)

	return nil
}

func (g *gpuDevice) DrawOverlay(lines []string) error {
	if g.overlay == nil || g.target == nil {
		return nil
	}

	if err := g.overlay.SetText(lines); err != nil {
		return err
	}

	return g.overlay.Draw(g.target)
}

func (g *gpuDevice) Present() error {
	if g.surface == nil {
		return nil
	}

	g.view.Surface.Present()

	// the surface texture belongs to the surface after presenting
	g.surface = nil
	g.releaseSurface()

	return nil
}

func (g *gpuDevice) ReloadShaders() error {
	return g.quad.ReloadShaders()
}

func (g *gpuDevice) releaseSurface() {
	if g.surfaceView != nil {
		g.surfaceView.Release()
		g.surfaceView = nil
	}

	if g.surface != nil {
		g.surface.Release()
		g.surface = nil
	}

	g.target = nil
}

func (g *gpuDevice) Release() {
	g.releaseSurface()
}
