package pulse

import "github.com/oliverbestmann/webgpu/wgpu"

// RenderTarget holds all the information of something that can be rendered to.
// This is normally either an offscreen Texture or the screen.
type RenderTarget struct {
	View *wgpu.TextureView

	// In case of multisample rendering, this might hold the
	// texture the multisampled fragment is resolved to.
	ResolveTarget *wgpu.TextureView

	// Texture format of View
	Format wgpu.TextureFormat

	// Optional depth buffer, same size and sample count as View
	DepthView   *wgpu.TextureView
	DepthFormat wgpu.TextureFormat

	// Size of the target to render to
	Width  uint32
	Height uint32

	// The number of samples of the View texture
	SampleCount uint32
}

func (t *RenderTarget) HasDepth() bool {
	return t.DepthView != nil
}

// ColorAttachment returns the attachment for the color target.
func (t *RenderTarget) ColorAttachment(loadOp wgpu.LoadOp, clear Color) wgpu.RenderPassColorAttachment {
	return wgpu.RenderPassColorAttachment{
		View:          t.View,
		ResolveTarget: t.ResolveTarget,
		LoadOp:        loadOp,
		StoreOp:       wgpu.StoreOpStore,
		ClearValue:    clear.ToWGPU(),
	}
}

// DepthAttachment returns an attachment that clears depth to one and
// stencil to zero, or nil if the target has no depth buffer.
func (t *RenderTarget) DepthAttachment() *wgpu.RenderPassDepthStencilAttachment {
	if t.DepthView == nil {
		return nil
	}

	return &wgpu.RenderPassDepthStencilAttachment{
		View:              t.DepthView,
		DepthLoadOp:       wgpu.LoadOpClear,
		DepthStoreOp:      wgpu.StoreOpStore,
		DepthClearValue:   1,
		StencilLoadOp:     wgpu.LoadOpClear,
		StencilStoreOp:    wgpu.StoreOpStore,
		StencilClearValue: 0,
	}
}
