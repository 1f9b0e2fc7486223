package pulse

import (
	"fmt"
	"unsafe"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// BufferWriter copies data from host memory into a gpu buffer.
// The wgpu.Queue implements this interface.
type BufferWriter interface {
	WriteBuffer(buffer *wgpu.Buffer, offset uint64, data []byte) error
}

// UniformBuffer is a gpu buffer that holds exactly one value of type T.
// T must have the memory layout the shader expects.
type UniformBuffer[T any] struct {
	writer BufferWriter
	buffer *wgpu.Buffer
	label  string
}

// UniformSize returns the size of T rounded up to 16 bytes.
func UniformSize[T any]() uint64 {
	var zeroT T

	size := uint64(unsafe.Sizeof(zeroT))
	return (size + 15) &^ 15
}

func NewUniformBuffer[T any](ctx *Context, label string) (*UniformBuffer[T], error) {
	buffer, err := ctx.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		Size:  UniformSize[T](),
	})

	if err != nil {
		return nil, fmt.Errorf("create uniform buffer %q: %w", label, err)
	}

	return &UniformBuffer[T]{writer: ctx.Queue, buffer: buffer, label: label}, nil
}

// Upload replaces the complete content of the buffer with value. The queue
// orders the write before any later submitted draw, the previous content
// is discarded.
func (u *UniformBuffer[T]) Upload(value *T) error {
	if err := u.writer.WriteBuffer(u.buffer, 0, AsByteSlice(value)); err != nil {
		return fmt.Errorf("upload uniform %q: %w", u.label, err)
	}

	return nil
}

func (u *UniformBuffer[T]) Buffer() *wgpu.Buffer {
	return u.buffer
}

func (u *UniformBuffer[T]) Size() uint64 {
	return UniformSize[T]()
}

// BindGroupEntry binds the whole buffer at the given binding.
func (u *UniformBuffer[T]) BindGroupEntry(binding uint32) wgpu.BindGroupEntry {
	return wgpu.BindGroupEntry{
		Binding: binding,
		Buffer:  u.buffer,
		Size:    u.Size(),
	}
}

func (u *UniformBuffer[T]) Release() {
	if u.buffer != nil {
		u.buffer.Release()
		u.buffer = nil
	}
}
