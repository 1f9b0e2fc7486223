package pulse

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// DepthFormat is the format of the depth buffer, 24 bit depth with
// an 8 bit stencil.
const DepthFormat = wgpu.TextureFormatDepth24PlusStencil8

type ViewOptions struct {
	// render with four samples per pixel and resolve into the surface
	MSAA bool

	// allocate a depth buffer with the size of the surface
	Depth bool
}

type View struct {
	*Context

	surfaceConfig *wgpu.SurfaceConfiguration

	// only configured if we have a multisample texture configured
	msaaTexture *Texture

	// depth texture to render to.
	// has the same sampleCount as the surface itself
	depthTexture *Texture

	sampleCount uint32

	// true if depth is enabled
	depth bool
}

func NewView(dev *Context, opts ViewOptions) (*View, error) {
	st := &View{Context: dev, depth: opts.Depth}

	if opts.MSAA {
		st.sampleCount = 4
	} else {
		st.sampleCount = 1
	}

	caps := dev.Surface.GetCapabilities(dev.Adapter)
	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	if len(caps.AlphaModes) == 0 {
		return nil, fmt.Errorf("surface does not support any alpha mode")
	}

	st.surfaceConfig = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      wgpu.TextureFormatBGRA8Unorm,
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],

		// try to reduce input latency
		DesiredMaximumFrameLatency: 1,
	}

	return st, nil
}

func (vs *View) MSAA() bool {
	return vs.sampleCount > 1
}

func (vs *View) Depth() bool {
	return vs.depth
}

func (vs *View) Format() wgpu.TextureFormat {
	return vs.surfaceConfig.Format
}

func (vs *View) SampleCount() uint32 {
	return vs.sampleCount
}

// Size returns the size the surface was last configured with.
func (vs *View) Size() (uint32, uint32) {
	return vs.surfaceConfig.Width, vs.surfaceConfig.Height
}

// RenderTarget describes the current surface texture as something to render into.
func (vs *View) RenderTarget(screen *wgpu.Texture, screenView *wgpu.TextureView) *RenderTarget {
	target := &RenderTarget{
		View:        screenView,
		Format:      screen.GetFormat(),
		Width:       screen.GetWidth(),
		Height:      screen.GetHeight(),
		SampleCount: 1,
	}

	if vs.MSAA() {
		target.View = vs.msaaTexture.view
		target.ResolveTarget = screenView
		target.SampleCount = vs.sampleCount
	}

	if vs.depthTexture != nil {
		target.DepthView = vs.depthTexture.view
		target.DepthFormat = vs.depthTexture.format
	}

	return target
}

func (vs *View) releaseTextures() {
	if vs.depthTexture != nil {
		vs.depthTexture.Release()
		vs.depthTexture = nil
	}

	if vs.msaaTexture != nil {
		vs.msaaTexture.Release()
		vs.msaaTexture = nil
	}
}

func (vs *View) Release() {
	vs.releaseTextures()
}

// Configure (re)configures the surface and recreates all textures that
// depend on the surface size.
func (vs *View) Configure(width, height uint32) error {
	if width == 0 || height == 0 {
		return fmt.Errorf("invalid surface size %dx%d", width, height)
	}

	vs.surfaceConfig.Width = width
	vs.surfaceConfig.Height = height
	vs.Surface.Configure(vs.Device, vs.surfaceConfig)

	vs.releaseTextures()

	if vs.depth {
		depthTexture, err := createDepthTexture(vs.Context, width, height, vs.sampleCount)
		if err != nil {
			return fmt.Errorf("create depth texture: %w", err)
		}

		vs.depthTexture = depthTexture
	}

	if vs.MSAA() {
		msaaTexture, err := createMultisampleTexture(vs.Context, vs.surfaceConfig, vs.sampleCount)
		if err != nil {
			return fmt.Errorf("create multisample texture: %w", err)
		}

		vs.msaaTexture = msaaTexture
	}

	return nil
}

func createMultisampleTexture(ctx *Context, surfaceConfig *wgpu.SurfaceConfiguration, sampleCount uint32) (*Texture, error) {
	return NewTextureFromDesc(ctx, &wgpu.TextureDescriptor{
		Label: "MultisampleRenderTarget",
		Usage: wgpu.TextureUsageRenderAttachment,
		Size: wgpu.Extent3D{
			Width:              surfaceConfig.Width,
			Height:             surfaceConfig.Height,
			DepthOrArrayLayers: 1,
		},
		Format:        surfaceConfig.Format,
		Dimension:     wgpu.TextureDimension2D,
		SampleCount:   sampleCount,
		MipLevelCount: 1,
	})
}

func createDepthTexture(ctx *Context, width, height, sampleCount uint32) (*Texture, error) {
	return NewTextureFromDesc(ctx, &wgpu.TextureDescriptor{
		Label:     "DepthTexture",
		Usage:     wgpu.TextureUsageRenderAttachment,
		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
		Format:        DepthFormat,
		MipLevelCount: 1,
		SampleCount:   sampleCount,
	})
}
