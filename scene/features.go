package scene

import (
	"strings"
)

// Features selects the optional stages of the quad pipeline.
type Features struct {
	// Depth enables the depth buffer with a less-than depth test.
	Depth bool `yaml:"depth"`

	// Geometry runs the per-triangle geometry stage before rasterization.
	Geometry bool `yaml:"geometry"`

	// Texture draws TexturedVertex with a sampled, lit texture instead of
	// per vertex colors.
	Texture bool `yaml:"texture"`
}

var FeaturesColored = Features{}

var FeaturesTextured = Features{
	Depth:    true,
	Geometry: true,
	Texture:  true,
}

func (f Features) String() string {
	var names []string

	if f.Depth {
		names = append(names, "depth")
	}

	if f.Geometry {
		names = append(names, "geometry")
	}

	if f.Texture {
		names = append(names, "texture")
	}

	if len(names) == 0 {
		return "none"
	}

	return strings.Join(names, "+")
}
