package assets

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuadTextureDecodes(t *testing.T) {
	img, err := png.Decode(bytes.NewReader(QuadTexture))
	require.NoError(t, err)

	assert.Equal(t, 128, img.Bounds().Dx())
	assert.Equal(t, 128, img.Bounds().Dy())
}
