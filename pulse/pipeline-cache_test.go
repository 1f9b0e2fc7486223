package pulse

import (
	"errors"
	"testing"

	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var specializeCalls map[string]int

type fakePipelineConfig struct {
	Shader string
	Fail   bool
}

func (c fakePipelineConfig) Specialize(dev *wgpu.Device) (*wgpu.RenderPipeline, error) {
	specializeCalls[c.Shader]++

	if c.Fail {
		return nil, errors.New("invalid shader")
	}

	return nil, nil
}

func TestPipelineCacheSpecializesOncePerConfig(t *testing.T) {
	specializeCalls = map[string]int{}

	cache := NewPipelineCache[fakePipelineConfig, *wgpu.RenderPipeline](&Context{})

	_, err := cache.Get(fakePipelineConfig{Shader: "a"})
	require.NoError(t, err)

	_, err = cache.Get(fakePipelineConfig{Shader: "a"})
	require.NoError(t, err)

	// a changed shader source is a different pipeline
	_, err = cache.Get(fakePipelineConfig{Shader: "b"})
	require.NoError(t, err)

	assert.Equal(t, 1, specializeCalls["a"])
	assert.Equal(t, 1, specializeCalls["b"])
	assert.Equal(t, 2, cache.Len())
}

func TestPipelineCacheDoesNotCacheErrors(t *testing.T) {
	specializeCalls = map[string]int{}

	cache := NewPipelineCache[fakePipelineConfig, *wgpu.RenderPipeline](&Context{})

	config := fakePipelineConfig{Shader: "broken", Fail: true}

	_, err := cache.Get(config)
	require.ErrorContains(t, err, "build pipeline")

	_, err = cache.Get(config)
	require.Error(t, err)

	assert.Equal(t, 2, specializeCalls["broken"])
	assert.Zero(t, cache.Len())
}
