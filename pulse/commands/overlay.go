package commands

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"slices"
	"structs"

	"github.com/oliverbestmann/texquad/glm"
	"github.com/oliverbestmann/texquad/pulse"
	"github.com/oliverbestmann/texquad/shaders"
	"github.com/oliverbestmann/webgpu/wgpu"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// distance of the panel to the top left corner of the screen
const overlayMargin = 16

// space between the panel border and the text
const overlayPadding = 6

var overlayBackground = color.NRGBA{A: 170}
var overlayForeground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

var nearestClamp = wgpu.SamplerDescriptor{
	Label:         "NearestClamp",
	AddressModeU:  wgpu.AddressModeClampToEdge,
	AddressModeV:  wgpu.AddressModeClampToEdge,
	AddressModeW:  wgpu.AddressModeClampToEdge,
	MagFilter:     wgpu.FilterModeNearest,
	MinFilter:     wgpu.FilterModeNearest,
	MipmapFilter:  wgpu.MipmapFilterModeNearest,
	LodMaxClamp:   32,
	MaxAnisotropy: 1,
}

type panelBlock struct {
	_ structs.HostLayout

	Screen glm.Vec2f
	Origin glm.Vec2f
	Size   glm.Vec2f
	_      glm.Vec2f
}

// OverlayCommand draws a panel of text on top of the frame.
type OverlayCommand struct {
	ctx *pulse.Context

	pipelineCache *pulse.PipelineCache[overlayPipelineConfig, *wgpu.RenderPipeline]
	source        string

	panel   *pulse.UniformBuffer[panelBlock]
	sampler *wgpu.Sampler

	// texture holding the rasterized text, recreated when the size changes
	texture *pulse.Texture

	lines []string
}

// NewOverlayCommand creates the overlay and compiles its pipeline for
// targets of the given format and sample count.
func NewOverlayCommand(ctx *pulse.Context, library *shaders.Library, format wgpu.TextureFormat, sampleCount uint32) (*OverlayCommand, error) {
	source, err := library.Load(shaders.Overlay)
	if err != nil {
		return nil, err
	}

	if err := pulse.CheckEntryPoints(shaders.Overlay, source, "vs_main", "fs_main"); err != nil {
		return nil, err
	}

	panel, err := pulse.NewUniformBuffer[panelBlock](ctx, "Overlay.Panel")
	if err != nil {
		return nil, err
	}

	sampler, err := pulse.CachedSampler(ctx.Device, nearestClamp)
	if err != nil {
		panel.Release()
		return nil, err
	}

	cmd := &OverlayCommand{
		ctx:           ctx,
		pipelineCache: pulse.NewPipelineCache[overlayPipelineConfig, *wgpu.RenderPipeline](ctx),
		source:        source,
		panel:         panel,
		sampler:       sampler,
	}

	_, err = cmd.pipelineCache.Get(overlayPipelineConfig{
		TargetFormat:      format,
		TargetSampleCount: sampleCount,
		ShaderSource:      source,
	})
	if err != nil {
		cmd.Release()
		return nil, err
	}

	return cmd, nil
}

// SetText updates the text of the panel. The text is only rasterized and
// uploaded if it differs from the current one.
func (o *OverlayCommand) SetText(lines []string) error {
	if o.texture != nil && slices.Equal(o.lines, lines) {
		return nil
	}

	img := RasterizeText(lines)
	size := img.Bounds().Size()

	if o.texture == nil || o.texture.Width() != uint32(size.X) || o.texture.Height() != uint32(size.Y) {
		if o.texture != nil {
			o.texture.Release()
			o.texture = nil
		}

		slog.Debug("Allocate overlay texture", slog.Int("width", size.X), slog.Int("height", size.Y))

		texture, err := pulse.NewTexture(o.ctx, pulse.NewTextureOptions{
			Format: wgpu.TextureFormatRGBA8Unorm,
			Width:  uint32(size.X),
			Height: uint32(size.Y),
			Label:  "Overlay",
		})
		if err != nil {
			return fmt.Errorf("create overlay texture: %w", err)
		}

		o.texture = texture
	}

	if err := o.texture.WritePixels(o.ctx, img.Pix); err != nil {
		return err
	}

	o.lines = slices.Clone(lines)

	return nil
}

// Draw blends the panel over the current content of the target.
func (o *OverlayCommand) Draw(target *pulse.RenderTarget) error {
	if o.texture == nil {
		return nil
	}

	block := panelBlock{
		Screen: glm.Vec2f{float32(target.Width), float32(target.Height)},
		Origin: glm.Vec2f{overlayMargin, overlayMargin},
		Size:   glm.Vec2f{float32(o.texture.Width()), float32(o.texture.Height())},
	}

	if err := o.panel.Upload(&block); err != nil {
		return err
	}

	pc, err := o.pipelineCache.Get(overlayPipelineConfig{
		TargetFormat:      target.Format,
		TargetSampleCount: target.SampleCount,
		ShaderSource:      o.source,
	})
	if err != nil {
		return err
	}

	bindGroup, err := o.ctx.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Overlay",
		Layout: pc.GetBindGroupLayout(0),
		Entries: []wgpu.BindGroupEntry{
			o.panel.BindGroupEntry(0),
			{Binding: 1, TextureView: o.texture.View()},
			{Binding: 2, Sampler: o.sampler},
		},
	})
	if err != nil {
		return fmt.Errorf("create bind group: %w", err)
	}

	defer bindGroup.Release()

	encoder, err := o.ctx.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "Overlay"})
	if err != nil {
		return err
	}

	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "Overlay",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			target.ColorAttachment(wgpu.LoadOpLoad, pulse.ColorTransparent),
		},
	})

	passGuard := pulse.NewReleaseGuard(pass)
	defer passGuard.Release()

	pass.SetPipeline(pc.Pipeline)
	pass.SetBindGroup(0, bindGroup, nil)
	pass.Draw(6, 1, 0, 0)

	if err := pass.End(); err != nil {
		return err
	}

	passGuard.Release()

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		return err
	}

	defer cmdBuffer.Release()

	o.ctx.Submit(cmdBuffer)

	return nil
}

func (o *OverlayCommand) Release() {
	o.pipelineCache.Release()

	if o.texture != nil {
		o.texture.Release()
		o.texture = nil
	}

	o.panel.Release()
}

// RasterizeText renders the lines in white onto a translucent black panel.
func RasterizeText(lines []string) *image.NRGBA {
	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil()

	var width int
	for _, line := range lines {
		width = max(width, font.MeasureString(face, line).Ceil())
	}

	bounds := image.Rect(0, 0,
		width+2*overlayPadding,
		max(1, len(lines))*lineHeight+2*overlayPadding,
	)

	img := image.NewNRGBA(bounds)
	draw.Draw(img, bounds, image.NewUniform(overlayBackground), image.Point{}, draw.Src)

	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(overlayForeground),
		Face: face,
	}

	ascent := face.Metrics().Ascent.Ceil()

	for idx, line := range lines {
		drawer.Dot = fixed.P(overlayPadding, overlayPadding+idx*lineHeight+ascent)
		drawer.DrawString(line)
	}

	return img
}

type overlayPipelineConfig struct {
	TargetFormat      wgpu.TextureFormat
	TargetSampleCount uint32
	ShaderSource      string
}

func (conf overlayPipelineConfig) Specialize(dev *wgpu.Device) (*wgpu.RenderPipeline, error) {
	slog.Info(
		"Create RenderPipeline for overlay",
		slog.Any("format", conf.TargetFormat),
		slog.Any("sampleCount", conf.TargetSampleCount),
	)

	shader, err := pulse.CompileShader(dev, shaders.Overlay, conf.ShaderSource, "vs_main", "fs_main")
	if err != nil {
		return nil, err
	}

	defer shader.Release()

	pipeline, err := dev.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: "Overlay",
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    conf.TargetFormat,
					Blend:     &wgpu.BlendStateAlphaBlending,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: conf.TargetSampleCount,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("build overlay pipeline: %w", err)
	}

	return pipeline, nil
}
