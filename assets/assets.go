// Package assets holds resources that are baked into the binary.
package assets

import (
	_ "embed"
)

// QuadTexture is the png encoded image drawn onto the textured quad.
//
//go:embed quad.png
var QuadTexture []byte
