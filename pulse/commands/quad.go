package commands

import (
	"fmt"
	"log/slog"
	"structs"
	"unsafe"

	"github.com/oliverbestmann/texquad/pulse"
	"github.com/oliverbestmann/texquad/scene"
	"github.com/oliverbestmann/texquad/shaders"
	"github.com/oliverbestmann/webgpu/wgpu"
)

const (
	bindingTransform = 0
	bindingLight     = 1
	bindingTexture   = 2
	bindingSampler   = 3
)

// size of one vertex written by the geometry stage
const expandedVertexSize = 64

// must match @workgroup_size in geometry.wgsl
const geometryWorkgroupSize = 64

type geometryParams struct {
	_ structs.HostLayout

	VertexCount uint32
	Stride      uint32
	AttrCount   uint32
	Extrude     float32
}

type QuadOptions struct {
	Features scene.Features
	Shaders  *shaders.Library

	// sampled by the pixel stage, required if Features.Texture is set
	Texture *pulse.Texture

	Light scene.LightBlock

	// emit every triangle a second time, moved along its normal
	ExtrudeDistance float32

	// the pipeline for this target is compiled during construction.
	// Defaults to a single sampled BGRA8Unorm target.
	TargetFormat      wgpu.TextureFormat
	TargetSampleCount uint32
}

// QuadCommand draws the quad with one configurable pipeline.
type QuadCommand struct {
	ctx      *pulse.Context
	features scene.Features
	shaders  *shaders.Library

	renderCache   *pulse.PipelineCache[quadPipelineConfig, *wgpu.RenderPipeline]
	geometryCache *pulse.PipelineCache[geometryPipelineConfig, *wgpu.ComputePipeline]

	layout      vertexLayout
	vertices    *wgpu.Buffer
	vertexCount uint32

	transform *pulse.UniformBuffer[scene.TransformBlock]
	light     *pulse.UniformBuffer[scene.LightBlock]

	// only used with the geometry stage
	params        *pulse.UniformBuffer[geometryParams]
	expanded      *wgpu.Buffer
	expandedCount uint32

	texture *pulse.Texture
	sampler *wgpu.Sampler

	targetFormat      wgpu.TextureFormat
	targetSampleCount uint32

	quadSource     string
	geometrySource string
}

func NewQuadCommand(ctx *pulse.Context, opts QuadOptions) (cmd *QuadCommand, err error) {
	if opts.Features.Texture && opts.Texture == nil {
		return nil, fmt.Errorf("texture feature requires a texture")
	}

	if opts.Shaders == nil {
		opts.Shaders = shaders.Embedded()
	}

	if opts.TargetFormat == wgpu.TextureFormatUndefined {
		opts.TargetFormat = wgpu.TextureFormatBGRA8Unorm
	}

	if opts.TargetSampleCount == 0 {
		opts.TargetSampleCount = 1
	}

	var releasers pulse.Releasers
	defer func() {
		if err != nil {
			releasers.Release()
		}
	}()

	cmd = &QuadCommand{
		ctx:      ctx,
		features: opts.Features,
		shaders:  opts.Shaders,
		layout:   vertexLayoutOf(opts.Features),
		texture:  opts.Texture,

		targetFormat:      opts.TargetFormat,
		targetSampleCount: opts.TargetSampleCount,
	}

	if err := cmd.loadShaders(); err != nil {
		return nil, err
	}

	// fail before allocating anything on the device
	if err := cmd.checkShaders(); err != nil {
		return nil, err
	}

	var contents []byte
	if opts.Features.Texture {
		contents = wgpu.ToBytes(scene.TexturedQuad())
	} else {
		contents = wgpu.ToBytes(scene.ColoredQuad())
	}

	cmd.vertexCount = scene.QuadVertexCount

	cmd.vertices, err = ctx.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Quad.Vertices",
		Contents: contents,

		// the geometry stage reads the vertices as storage buffer
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageStorage,
	})
	if err != nil {
		return nil, fmt.Errorf("create vertex buffer: %w", err)
	}

	releasers.Push("Quad.Vertices", cmd.vertices)

	cmd.transform, err = pulse.NewUniformBuffer[scene.TransformBlock](ctx, "Quad.Transform")
	if err != nil {
		return nil, err
	}

	releasers.Push("Quad.Transform", cmd.transform)

	cmd.light, err = pulse.NewUniformBuffer[scene.LightBlock](ctx, "Quad.Light")
	if err != nil {
		return nil, err
	}

	releasers.Push("Quad.Light", cmd.light)

	// the light never changes, upload it once
	if err := cmd.light.Upload(&opts.Light); err != nil {
		return nil, err
	}

	if opts.Features.Geometry {
		if err := cmd.initGeometryStage(&releasers, opts.ExtrudeDistance); err != nil {
			return nil, fmt.Errorf("initialize geometry stage: %w", err)
		}
	}

	if opts.Features.Texture {
		cmd.sampler, err = pulse.CachedSampler(ctx.Device, pulse.LinearClamp)
		if err != nil {
			return nil, err
		}
	}

	cmd.renderCache = pulse.NewPipelineCache[quadPipelineConfig, *wgpu.RenderPipeline](ctx)
	releasers.Push("Quad.RenderPipelines", cmd.renderCache)

	cmd.geometryCache = pulse.NewPipelineCache[geometryPipelineConfig, *wgpu.ComputePipeline](ctx)
	releasers.Push("Quad.GeometryPipelines", cmd.geometryCache)

	if err := cmd.compilePipelines(); err != nil {
		return nil, err
	}

	slog.Info("Quad command created",
		slog.String("features", opts.Features.String()),
		slog.Int("vertexCount", int(cmd.vertexCount)),
		slog.Int("expandedCount", int(cmd.expandedCount)),
	)

	return cmd, nil
}

func (q *QuadCommand) initGeometryStage(releasers *pulse.Releasers, extrude float32) error {
	var err error

	q.expandedCount = expandedVertexCount(q.vertexCount, extrude)

	q.expanded, err = q.ctx.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Quad.Expanded",
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageVertex,
		Size:  uint64(q.expandedCount) * expandedVertexSize,
	})
	if err != nil {
		return fmt.Errorf("create expanded vertex buffer: %w", err)
	}

	releasers.Push("Quad.Expanded", q.expanded)

	q.params, err = pulse.NewUniformBuffer[geometryParams](q.ctx, "Quad.GeometryParams")
	if err != nil {
		return err
	}

	releasers.Push("Quad.GeometryParams", q.params)

	params := geometryParamsOf(q.layout, q.vertexCount, extrude)
	return q.params.Upload(&params)
}

func (q *QuadCommand) loadShaders() error {
	quad, err := q.shaders.Load(shaders.Quad)
	if err != nil {
		return err
	}

	geometry, err := q.shaders.Load(shaders.Geometry)
	if err != nil {
		return err
	}

	q.quadSource = quad
	q.geometrySource = geometry

	return nil
}

// checkShaders verifies the loaded sources declare the entry points
// this feature set needs. It does not touch the device.
func (q *QuadCommand) checkShaders() error {
	layout := renderVertexLayout(q.features)

	err := pulse.CheckEntryPoints(shaders.Quad, q.quadSource, layout.VertexEntryPoint, layout.FragmentEntryPoint)
	if err != nil {
		return err
	}

	if q.features.Geometry {
		return pulse.CheckEntryPoints(shaders.Geometry, q.geometrySource, "cs_main")
	}

	return nil
}

// compilePipelines builds the pipelines for the configured target.
func (q *QuadCommand) compilePipelines() error {
	if _, err := q.renderPipeline(nil); err != nil {
		return err
	}

	if q.features.Geometry {
		if _, err := q.geometryCache.Get(geometryPipelineConfig{ShaderSource: q.geometrySource}); err != nil {
			return err
		}
	}

	return nil
}

// ReloadShaders reads the shader sources again and compiles them.
// A broken shader keeps the old pipelines in use.
func (q *QuadCommand) ReloadShaders() error {
	previousQuad, previousGeometry := q.quadSource, q.geometrySource

	if err := q.loadShaders(); err != nil {
		return err
	}

	err := q.checkShaders()
	if err == nil {
		err = q.compilePipelines()
	}

	if err != nil {
		q.quadSource, q.geometrySource = previousQuad, previousGeometry
		return err
	}

	return nil
}

// UploadTransform replaces the transform block used by the next draw.
func (q *QuadCommand) UploadTransform(block *scene.TransformBlock) error {
	return q.transform.Upload(block)
}

// Draw clears the target and renders the quad into it.
func (q *QuadCommand) Draw(target *pulse.RenderTarget, clear pulse.Color) error {
	encoder, err := q.ctx.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "Quad"})
	if err != nil {
		return err
	}

	defer encoder.Release()

	if q.features.Geometry {
		if err := q.encodeGeometryStage(encoder); err != nil {
			return fmt.Errorf("geometry stage: %w", err)
		}
	}

	if err := q.encodeRenderPass(encoder, target, clear); err != nil {
		return fmt.Errorf("render pass: %w", err)
	}

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		return err
	}

	defer cmdBuffer.Release()

	q.ctx.Submit(cmdBuffer)

	return nil
}

func (q *QuadCommand) encodeGeometryStage(encoder *wgpu.CommandEncoder) error {
	pc, err := q.geometryCache.Get(geometryPipelineConfig{ShaderSource: q.geometrySource})
	if err != nil {
		return err
	}

	bindGroup, err := q.ctx.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Quad.Geometry",
		Layout: pc.GetBindGroupLayout(0),
		Entries: []wgpu.BindGroupEntry{
			q.transform.BindGroupEntry(0),
			q.params.BindGroupEntry(1),
			{Binding: 2, Buffer: q.vertices, Size: wgpu.WholeSize},
			{Binding: 3, Buffer: q.expanded, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		return fmt.Errorf("create bind group: %w", err)
	}

	defer bindGroup.Release()

	pass := encoder.BeginComputePass(&wgpu.ComputePassDescriptor{Label: "Quad.Geometry"})

	passGuard := pulse.NewReleaseGuard(pass)
	defer passGuard.Release()

	pass.SetPipeline(pc.Pipeline)
	pass.SetBindGroup(0, bindGroup, nil)
	pass.DispatchWorkgroups(workgroupCount(q.vertexCount/3), 1, 1)

	if err := pass.End(); err != nil {
		return err
	}

	// must release pass before finishing the encoder
	passGuard.Release()

	return nil
}

func (q *QuadCommand) encodeRenderPass(encoder *wgpu.CommandEncoder, target *pulse.RenderTarget, clear pulse.Color) error {
	pc, err := q.renderPipeline(target)
	if err != nil {
		return err
	}

	bindGroup, err := q.createRenderBindGroup(pc)
	if err != nil {
		return err
	}

	if bindGroup != nil {
		defer bindGroup.Release()
	}

	desc := &wgpu.RenderPassDescriptor{
		Label: "Quad",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			target.ColorAttachment(wgpu.LoadOpClear, clear.WithAlpha(1)),
		},
	}

	// must agree with the pipeline chosen in renderPipeline
	if q.features.Depth && target.HasDepth() {
		desc.DepthStencilAttachment = target.DepthAttachment()
	}

	pass := encoder.BeginRenderPass(desc)

	passGuard := pulse.NewReleaseGuard(pass)
	defer passGuard.Release()

	pass.SetPipeline(pc.Pipeline)

	if bindGroup != nil {
		pass.SetBindGroup(0, bindGroup, nil)
	}

	if q.features.Geometry {
		pass.SetVertexBuffer(0, q.expanded, 0, wgpu.WholeSize)
		pass.Draw(q.expandedCount, 1, 0, 0)
	} else {
		pass.SetVertexBuffer(0, q.vertices, 0, wgpu.WholeSize)
		pass.Draw(q.vertexCount, 1, 0, 0)
	}

	if err := pass.End(); err != nil {
		return err
	}

	passGuard.Release()

	return nil
}

func (q *QuadCommand) renderPipeline(target *pulse.RenderTarget) (pulse.CachedPipeline[*wgpu.RenderPipeline], error) {
	conf := quadPipelineConfig{
		Features:          q.features,
		TargetFormat:      q.targetFormat,
		TargetSampleCount: q.targetSampleCount,
		ShaderSource:      q.quadSource,
	}

	if target != nil {
		conf.TargetFormat = target.Format
		conf.TargetSampleCount = target.SampleCount

		// a target without depth buffer can not depth test
		conf.Features.Depth = conf.Features.Depth && target.HasDepth()
	}

	return q.renderCache.Get(conf)
}

func (q *QuadCommand) createRenderBindGroup(pc pulse.CachedPipeline[*wgpu.RenderPipeline]) (*wgpu.BindGroup, error) {
	var entries []wgpu.BindGroupEntry

	for _, binding := range renderBindings(q.features) {
		switch binding {
		case bindingTransform:
			entries = append(entries, q.transform.BindGroupEntry(bindingTransform))
		case bindingLight:
			entries = append(entries, q.light.BindGroupEntry(bindingLight))
		case bindingTexture:
			entries = append(entries, wgpu.BindGroupEntry{Binding: bindingTexture, TextureView: q.texture.View()})
		case bindingSampler:
			entries = append(entries, wgpu.BindGroupEntry{Binding: bindingSampler, Sampler: q.sampler})
		}
	}

	if len(entries) == 0 {
		return nil, nil
	}

	bindGroup, err := q.ctx.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   "Quad",
		Layout:  pc.GetBindGroupLayout(0),
		Entries: entries,
	})
	if err != nil {
		return nil, fmt.Errorf("create bind group: %w", err)
	}

	return bindGroup, nil
}

func (q *QuadCommand) Release() {
	q.renderCache.Release()
	q.geometryCache.Release()

	if q.expanded != nil {
		q.expanded.Release()
	}

	if q.params != nil {
		q.params.Release()
	}

	q.light.Release()
	q.transform.Release()
	q.vertices.Release()
}

// renderBindings lists the bindings of group 0 used by the render pipeline.
// Pipelines use the automatic layout, which only contains bindings the
// selected entry points access.
func renderBindings(features scene.Features) []uint32 {
	var bindings []uint32

	// with the geometry stage, vertices arrive transformed
	if !features.Geometry {
		bindings = append(bindings, bindingTransform)
	}

	if features.Texture {
		bindings = append(bindings, bindingLight, bindingTexture, bindingSampler)
	}

	return bindings
}

func expandedVertexCount(vertexCount uint32, extrude float32) uint32 {
	if extrude != 0 {
		return 2 * vertexCount
	}

	return vertexCount
}

func workgroupCount(invocations uint32) uint32 {
	return (invocations + geometryWorkgroupSize - 1) / geometryWorkgroupSize
}

func geometryParamsOf(layout vertexLayout, vertexCount uint32, extrude float32) geometryParams {
	return geometryParams{
		VertexCount: vertexCount,
		Stride:      uint32(layout.Stride / 4),
		AttrCount:   layout.AttrCount,
		Extrude:     extrude,
	}
}

// vertexLayout describes the vertex format and the entry points for a feature set
type vertexLayout struct {
	Stride     uint64
	Attributes []wgpu.VertexAttribute

	// floats following the position
	AttrCount uint32

	VertexEntryPoint   string
	FragmentEntryPoint string
}

func vertexLayoutOf(features scene.Features) vertexLayout {
	var layout vertexLayout

	if features.Texture {
		layout = vertexLayout{
			Stride: uint64(unsafe.Sizeof(scene.TexturedVertex{})),
			Attributes: []wgpu.VertexAttribute{
				{
					Format:         wgpu.VertexFormatFloat32x3,
					Offset:         uint64(unsafe.Offsetof(scene.TexturedVertex{}.Position)),
					ShaderLocation: 0,
				},
				{
					Format:         wgpu.VertexFormatFloat32x2,
					Offset:         uint64(unsafe.Offsetof(scene.TexturedVertex{}.UV)),
					ShaderLocation: 1,
				},
			},
			AttrCount:          2,
			VertexEntryPoint:   "vs_textured",
			FragmentEntryPoint: "fs_textured",
		}
	} else {
		layout = vertexLayout{
			Stride: uint64(unsafe.Sizeof(scene.ColorVertex{})),
			Attributes: []wgpu.VertexAttribute{
				{
					Format:         wgpu.VertexFormatFloat32x3,
					Offset:         uint64(unsafe.Offsetof(scene.ColorVertex{}.Position)),
					ShaderLocation: 0,
				},
				{
					Format:         wgpu.VertexFormatFloat32x3,
					Offset:         uint64(unsafe.Offsetof(scene.ColorVertex{}.Color)),
					ShaderLocation: 1,
				},
			},
			AttrCount:          3,
			VertexEntryPoint:   "vs_color",
			FragmentEntryPoint: "fs_color",
		}
	}

	return layout
}

// renderVertexLayout is the layout the render pipeline consumes. With the
// geometry stage this is the expanded vertex written by the compute pass.
func renderVertexLayout(features scene.Features) vertexLayout {
	layout := vertexLayoutOf(features)
	if !features.Geometry {
		return layout
	}

	var attributes []wgpu.VertexAttribute
	for location := range uint32(4) {
		attributes = append(attributes, wgpu.VertexAttribute{
			Format:         wgpu.VertexFormatFloat32x4,
			Offset:         uint64(location) * 16,
			ShaderLocation: location,
		})
	}

	layout.Stride = expandedVertexSize
	layout.Attributes = attributes
	layout.VertexEntryPoint = "vs_expanded"

	return layout
}

type quadPipelineConfig struct {
	Features          scene.Features
	TargetFormat      wgpu.TextureFormat
	TargetSampleCount uint32
	ShaderSource      string
}

func (conf quadPipelineConfig) Specialize(dev *wgpu.Device) (*wgpu.RenderPipeline, error) {
	layout := renderVertexLayout(conf.Features)

	slog.Info(
		"Create RenderPipeline for quad",
		slog.String("features", conf.Features.String()),
		slog.Any("format", conf.TargetFormat),
		slog.Any("sampleCount", conf.TargetSampleCount),
	)

	shader, err := pulse.CompileShader(dev, shaders.Quad, conf.ShaderSource, layout.VertexEntryPoint, layout.FragmentEntryPoint)
	if err != nil {
		return nil, err
	}

	defer shader.Release()

	desc := &wgpu.RenderPipelineDescriptor{
		Label: fmt.Sprintf("Quad.%s", conf.Features),
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: layout.VertexEntryPoint,
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: layout.Stride,
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes:  layout.Attributes,
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: layout.FragmentEntryPoint,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    conf.TargetFormat,
					Blend:     &wgpu.BlendStateReplace,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCW,
			CullMode:  wgpu.CullModeBack,
		},
		DepthStencil: depthStencilState(conf.Features),
		Multisample: wgpu.MultisampleState{
			Count:                  conf.TargetSampleCount,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	}

	pipeline, err := dev.CreateRenderPipeline(desc)
	if err != nil {
		return nil, fmt.Errorf("build quad pipeline: %w", err)
	}

	return pipeline, nil
}

func depthStencilState(features scene.Features) *wgpu.DepthStencilState {
	if !features.Depth {
		return nil
	}

	keep := wgpu.StencilFaceState{
		Compare:     wgpu.CompareFunctionAlways,
		FailOp:      wgpu.StencilOperationKeep,
		DepthFailOp: wgpu.StencilOperationKeep,
		PassOp:      wgpu.StencilOperationKeep,
	}

	return &wgpu.DepthStencilState{
		Format:            pulse.DepthFormat,
		DepthWriteEnabled: wgpu.OptionalBoolTrue,
		DepthCompare:      wgpu.CompareFunctionLess,
		StencilFront:      keep,
		StencilBack:       keep,
		StencilReadMask:   0xff,
		StencilWriteMask:  0xff,
	}
}

type geometryPipelineConfig struct {
	ShaderSource string
}

func (conf geometryPipelineConfig) Specialize(dev *wgpu.Device) (*wgpu.ComputePipeline, error) {
	slog.Info("Create ComputePipeline for geometry stage")

	shader, err := pulse.CompileShader(dev, shaders.Geometry, conf.ShaderSource, "cs_main")
	if err != nil {
		return nil, err
	}

	defer shader.Release()

	pipeline, err := dev.CreateComputePipeline(&wgpu.ComputePipelineDescriptor{
		Label: "Quad.Geometry",
		Compute: wgpu.ProgrammableStageDescriptor{
			Module:     shader,
			EntryPoint: "cs_main",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("build geometry pipeline: %w", err)
	}

	return pipeline, nil
}
