package pulse

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oliverbestmann/webgpu/wgpu"
)

// Pipeline is either a render or a compute pipeline
type Pipeline interface {
	*wgpu.RenderPipeline | *wgpu.ComputePipeline

	GetBindGroupLayout(groupIndex uint32) *wgpu.BindGroupLayout
	Release()
}

type CachedPipeline[P Pipeline] struct {
	Pipeline   P
	bindGroups *lru.Cache[uint32, *wgpu.BindGroupLayout]
}

func (pc *CachedPipeline[P]) GetBindGroupLayout(idx uint32) *wgpu.BindGroupLayout {
	bindGroup, ok := pc.bindGroups.Get(idx)
	if ok {
		return bindGroup
	}

	bindGroup = pc.Pipeline.GetBindGroupLayout(idx)
	pc.bindGroups.Add(idx, bindGroup)

	return bindGroup
}

type PipelineConfig[P Pipeline] interface {
	comparable

	// Specialize creates a specialized pipeline for the
	// current PipelineConfig
	Specialize(dev *wgpu.Device) (P, error)
}

// PipelineCache creates pipelines on demand and keeps the most recently
// used ones. Evicted pipelines are released.
type PipelineCache[C PipelineConfig[P], P Pipeline] struct {
	device *wgpu.Device
	cache  *lru.Cache[C, CachedPipeline[P]]
}

func NewPipelineCache[C PipelineConfig[P], P Pipeline](ctx *Context) *PipelineCache[C, P] {
	cache, _ := lru.NewWithEvict[C, CachedPipeline[P]](16, releasePipelineOnEviction[C, P])

	return &PipelineCache[C, P]{
		device: ctx.Device,
		cache:  cache,
	}
}

func (p *PipelineCache[C, P]) Get(conf C) (CachedPipeline[P], error) {
	cached, ok := p.cache.Get(conf)
	if ok {
		return cached, nil
	}

	pipeline, err := conf.Specialize(p.device)
	if err != nil {
		return CachedPipeline[P]{}, fmt.Errorf("build pipeline: %w", err)
	}

	bindGroupsCache, _ := lru.NewWithEvict[uint32, *wgpu.BindGroupLayout](16, releaseBindGroupLayoutOnEviction)

	pc := CachedPipeline[P]{Pipeline: pipeline, bindGroups: bindGroupsCache}
	p.cache.Add(conf, pc)

	return pc, nil
}

func (p *PipelineCache[C, P]) Len() int {
	return p.cache.Len()
}

// Release releases all cached pipelines.
func (p *PipelineCache[C, P]) Release() {
	p.cache.Purge()
}

func releasePipelineOnEviction[C any, P Pipeline](_config C, pipe CachedPipeline[P]) {
	pipe.bindGroups.Purge()
	pipe.Pipeline.Release()
}

func releaseBindGroupLayoutOnEviction(_ uint32, ev *wgpu.BindGroupLayout) {
	ev.Release()
}
