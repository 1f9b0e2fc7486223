package orion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameTimesFirstFrameHasNoDelta(t *testing.T) {
	var times FrameTimes

	now := time.Now()
	assert.Zero(t, times.Tick(now))
	assert.Equal(t, 10*time.Millisecond, times.Tick(now.Add(10*time.Millisecond)))
	assert.EqualValues(t, 2, times.FrameCount)
}

func TestFrameTimesBackwardsClock(t *testing.T) {
	var times FrameTimes

	now := time.Now()
	times.Tick(now)
	assert.Zero(t, times.Tick(now.Add(-time.Second)))
}

func TestFrameTimesPause(t *testing.T) {
	var times FrameTimes

	now := time.Now()
	times.Tick(now)
	times.Tick(now.Add(16 * time.Millisecond))

	times.Pause()

	now = now.Add(10 * time.Second)
	assert.Zero(t, times.Tick(now))
	assert.Equal(t, 16*time.Millisecond, times.Tick(now.Add(16*time.Millisecond)))
	assert.Equal(t, 16*time.Millisecond, times.MaxDuration)
}

func TestFrameTimesAverage(t *testing.T) {
	var times FrameTimes

	now := time.Now()
	for range 100 {
		times.Tick(now)
		now = now.Add(20 * time.Millisecond)
	}

	assert.InDelta(t, 20, times.AverageMillis(), 1e-6)
	assert.InDelta(t, 50, times.FPS(), 1e-6)
	assert.Equal(t, 20*time.Millisecond, times.MaxDuration)
}

func TestFrameTimesFPSWithoutFrames(t *testing.T) {
	var times FrameTimes
	assert.Zero(t, times.FPS())
}
