package pulse

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/png"

	"github.com/oliverbestmann/texquad/glm"
	"github.com/oliverbestmann/webgpu/wgpu"
)

// Texture owns a wgpu.Texture together with a view on all of it.
type Texture struct {
	texture *wgpu.Texture
	view    *wgpu.TextureView

	format      wgpu.TextureFormat
	sampleCount uint32

	region Rectangle2u
}

// NewTextureOptions describes a single sampled texture that can be
// written from the cpu.
type NewTextureOptions struct {
	Format wgpu.TextureFormat
	Width  uint32
	Height uint32
	Label  string
}

func NewTexture(ctx *Context, opts NewTextureOptions) (*Texture, error) {
	return NewTextureFromDesc(ctx, &wgpu.TextureDescriptor{
		Label:         opts.Label,
		Format:        opts.Format,
		SampleCount:   1,
		MipLevelCount: 1,
		Dimension:     wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              opts.Width,
			Height:             opts.Height,
			DepthOrArrayLayers: 1,
		},
		Usage: wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
}

// NewTextureFromDesc creates a texture directly from a descriptor, this is
// used for render attachments like the depth buffer.
func NewTextureFromDesc(ctx *Context, desc *wgpu.TextureDescriptor) (*Texture, error) {
	texture, err := ctx.Device.CreateTexture(desc)
	if err != nil {
		return nil, fmt.Errorf("create texture %q: %w", desc.Label, err)
	}

	view, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return nil, fmt.Errorf("create view of texture %q: %w", desc.Label, err)
	}

	t := &Texture{
		texture:     texture,
		view:        view,
		format:      desc.Format,
		sampleCount: desc.SampleCount,
		region: RectangleFromSize(
			glm.Vec2u{},
			glm.Vec2u{desc.Size.Width, desc.Size.Height},
		),
	}

	return t, nil
}

func (t *Texture) Width() uint32 {
	return t.region.Width()
}

func (t *Texture) Height() uint32 {
	return t.region.Height()
}

func (t *Texture) Size() glm.Vec2u {
	return t.region.Size()
}

func (t *Texture) Format() wgpu.TextureFormat {
	return t.format
}

func (t *Texture) SampleCount() uint32 {
	return t.sampleCount
}

// View returns the view covering the full texture.
func (t *Texture) View() *wgpu.TextureView {
	return t.view
}

// Release releases the texture and its view. The texture must not be
// used afterwards.
func (t *Texture) Release() {
	t.view.Release()
	t.texture.Release()
}

// WritePixels replaces the full content of the texture with tightly packed rgba pixels.
func (t *Texture) WritePixels(ctx *Context, pixels []byte) error {
	return t.WritePixelsToRect(ctx, WritePixelsOptions{
		Pixels: pixels,
		Region: t.region,
	})
}

type WritePixelsOptions struct {
	Pixels []byte
	Region Rectangle2u

	// bytes per row in Pixels, defaults to four bytes per pixel of the region
	Stride uint32
}

func (t *Texture) WritePixelsToRect(ctx *Context, opts WritePixelsOptions) error {
	if !t.region.Contains(opts.Region) {
		return fmt.Errorf("target rect %s not in texture region %s", opts.Region, t.region)
	}

	if opts.Stride == 0 {
		opts.Stride = opts.Region.Width() * 4
	}

	if need := int(opts.Stride) * int(opts.Region.Height()); len(opts.Pixels) < need {
		return fmt.Errorf("expected at least %d bytes of pixel data, got %d", need, len(opts.Pixels))
	}

	dest := &wgpu.TexelCopyTextureInfo{
		Texture: t.texture,
		Origin: wgpu.Origin3D{
			X: opts.Region.Min[0],
			Y: opts.Region.Min[1],
		},
		Aspect: wgpu.TextureAspectAll,
	}

	layout := &wgpu.TexelCopyBufferLayout{
		BytesPerRow:  opts.Stride,
		RowsPerImage: opts.Region.Height(),
	}

	size := &wgpu.Extent3D{
		Width:              opts.Region.Width(),
		Height:             opts.Region.Height(),
		DepthOrArrayLayers: 1,
	}

	if err := ctx.WriteTexture(dest, opts.Pixels, layout, size); err != nil {
		return fmt.Errorf("copy pixels to texture: %w", err)
	}

	return nil
}

// DecodeTextureFromMemory decodes an encoded image and uploads it into a new texture.
func DecodeTextureFromMemory(ctx *Context, buf []byte) (*Texture, error) {
	src, err := DecodeImage(buf)
	if err != nil {
		return nil, err
	}

	return NewTextureFromImage(ctx, src)
}

// DecodeImage decodes an encoded image into non premultiplied 8 bit rgba pixels.
func DecodeImage(buf []byte) (*image.NRGBA, error) {
	src, _, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("decode image from memory: %w", err)
	}

	bounds := src.Bounds()
	rgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)

	return rgba, nil
}

func NewTextureFromImage(ctx *Context, src *image.NRGBA) (*Texture, error) {
	t, err := NewTexture(ctx, NewTextureOptions{
		Format: wgpu.TextureFormatRGBA8Unorm,
		Width:  uint32(src.Bounds().Dx()),
		Height: uint32(src.Bounds().Dy()),
		Label:  "ImageTexture",
	})
	if err != nil {
		return nil, err
	}

	err = t.WritePixelsToRect(ctx, WritePixelsOptions{
		Pixels: src.Pix,
		Region: t.region,
		Stride: uint32(src.Stride),
	})
	if err != nil {
		t.Release()
		return nil, fmt.Errorf("upload image: %w", err)
	}

	return t, nil
}
