package orion

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/oliverbestmann/texquad/glimpse"
	"github.com/oliverbestmann/texquad/pulse"
	"github.com/oliverbestmann/texquad/scene"
)

//go:generate go tool stringer -type=Phase -trimprefix=Phase

// Phase is the step of the frame loop that currently runs.
type Phase int

const (
	// PhaseIdle processes pending window events
	PhaseIdle Phase = iota
	PhaseUpdate
	PhaseUpload
	PhaseDraw
	PhaseOverlay
	PhasePresent
)

// ErrSkipFrame is returned by a Device that can not render the current frame,
// for example because the surface is outdated. The loop continues with the
// next frame.
var ErrSkipFrame = errors.New("skip frame")

// Window is the part of the platform window the loop needs.
type Window interface {
	PollEvents() glimpse.InputState
	ShouldClose() bool
	RequestClose()
	GetSize() (uint32, uint32)
}

// Device receives the gpu work of a frame.
type Device interface {
	// Configure resizes the surface
	Configure(width, height uint32) error

	// Upload replaces the transform block used by the next Draw
	Upload(block *scene.TransformBlock) error

	// Draw clears the surface and draws the scene
	Draw(clear pulse.Color) error

	DrawOverlay(lines []string) error
	Present() error

	ReloadShaders() error
}

// ShaderWatcher reports changed shader files without blocking.
type ShaderWatcher interface {
	Changed() []string
}

type Loop struct {
	Window Window
	Device Device
	State  *scene.State
	Debug  *DebugUI

	// optional, reloads shaders if set
	Shaders ShaderWatcher

	// the loop fails after more than this many frames in a row could not be uploaded
	MaxSkippedFrames int

	// returns the current time, defaults to time.Now
	Clock func() time.Time

	Times FrameTimes

	phase   Phase
	skipped int
	done    bool

	surfaceWidth  uint32
	surfaceHeight uint32
}

func (l *Loop) Phase() Phase {
	return l.phase
}

// Done returns true once the window was closed or quit was requested.
func (l *Loop) Done() bool {
	return l.done
}

// Run steps the loop until it is done or a frame fails.
func (l *Loop) Run() error {
	for !l.done {
		if err := l.Step(); err != nil {
			return err
		}
	}

	slog.Info("Frame loop finished", slog.Uint64("frames", l.Times.FrameCount))

	return nil
}

// Step runs one iteration of the loop. Frames that can not be uploaded are
// skipped, an error is only returned if too many frames in a row were skipped
// or drawing failed.
func (l *Loop) Step() error {
	defer l.enter(PhaseIdle)

	l.enter(PhaseIdle)

	input := l.Window.PollEvents()

	if l.Debug != nil && l.Debug.HandleInput(input.Keys) {
		slog.Info("Quit requested")
		l.Window.RequestClose()
	}

	if l.Window.ShouldClose() {
		l.done = true
		return nil
	}

	l.reloadShaders()

	render, err := l.configureSurface()
	if err != nil {
		return err
	}

	if !render {
		// the scene does not advance while minimized
		l.Times.Pause()
		return nil
	}

	l.enter(PhaseUpdate)

	now := l.now()
	dt := l.Times.Tick(now)
	block := l.State.Update(dt)

	l.enter(PhaseUpload)

	if err := l.Device.Upload(&block); err != nil {
		return l.skipFrame(err)
	}

	l.enter(PhaseDraw)

	if err := l.Device.Draw(pulse.ColorOpaque(l.State.Settings.ClearColor)); err != nil {
		if errors.Is(err, ErrSkipFrame) {
			return l.skipFrame(err)
		}

		return fmt.Errorf("draw frame %d: %w", l.Times.FrameCount, err)
	}

	if l.Debug != nil && l.Debug.Visible {
		l.enter(PhaseOverlay)

		if err := l.Device.DrawOverlay(l.Debug.Lines(&l.Times)); err != nil {
			return fmt.Errorf("draw overlay: %w", err)
		}
	}

	l.enter(PhasePresent)

	if err := l.Device.Present(); err != nil {
		return fmt.Errorf("present frame %d: %w", l.Times.FrameCount, err)
	}

	l.skipped = 0

	return nil
}

func (l *Loop) enter(phase Phase) {
	l.phase = phase
}

func (l *Loop) skipFrame(cause error) error {
	l.skipped++

	slog.Warn("Skip frame",
		slog.String("phase", l.phase.String()),
		slog.Int("skipped", l.skipped),
		slog.Any("err", cause),
	)

	if l.skipped > l.MaxSkippedFrames {
		return fmt.Errorf("skipped %d frames in a row: %w", l.skipped, cause)
	}

	return nil
}

// configureSurface reconfigures the device if the window size changed.
// It returns false if there is nothing to render into.
func (l *Loop) configureSurface() (bool, error) {
	width, height := l.Window.GetSize()

	if width == 0 || height == 0 {
		// minimized
		return false, nil
	}

	if width == l.surfaceWidth && height == l.surfaceHeight {
		return true, nil
	}

	slog.Debug("Resize surface",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
	)

	if err := l.Device.Configure(width, height); err != nil {
		return false, fmt.Errorf("resize surface: %w", err)
	}

	l.surfaceWidth = width
	l.surfaceHeight = height

	return true, nil
}

func (l *Loop) reloadShaders() {
	if l.Shaders == nil {
		return
	}

	changed := l.Shaders.Changed()
	if len(changed) == 0 {
		return
	}

	if err := l.Device.ReloadShaders(); err != nil {
		slog.Warn("Keep previous shaders", slog.Any("changed", changed), slog.Any("err", err))
		return
	}

	slog.Info("Shaders reloaded", slog.Any("changed", changed))
}

func (l *Loop) now() time.Time {
	if l.Clock != nil {
		return l.Clock()
	}

	return time.Now()
}
