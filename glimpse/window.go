package glimpse

import "github.com/oliverbestmann/webgpu/wgpu"

type Window interface {
	GetSize() (uint32, uint32)
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// PollEvents processes pending window events without blocking and
	// returns the input state for the next frame.
	PollEvents() InputState

	ShouldClose() bool
	RequestClose()

	Terminate()
}
