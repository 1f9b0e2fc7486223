package orion

import (
	"time"
)

type FrameTimes struct {
	FrameCount      uint64
	AverageDuration time.Duration
	MaxDuration     time.Duration

	// Delta time to previous frame
	Delta time.Duration

	lastTime time.Time
}

func (t *FrameTimes) update(d time.Duration) {
	const window = 64

	t.Delta = d
	t.MaxDuration = max(t.MaxDuration, d)

	if t.FrameCount < window/2 {
		t.AverageDuration = d
	} else {
		t.AverageDuration = ((window-1)*t.AverageDuration + d) / window
	}
}

func (t *FrameTimes) FPS() float64 {
	if t.AverageDuration <= 0 {
		return 0
	}

	return 1.0 / t.AverageDuration.Seconds()
}

// AverageMillis returns the smoothed frame time in milliseconds.
func (t *FrameTimes) AverageMillis() float64 {
	return float64(t.AverageDuration) / float64(time.Millisecond)
}

// Tick records the start of a new frame at now and returns the time
// since the previous frame. The first frame, and the first frame after
// Pause, have a delta of zero.
func (t *FrameTimes) Tick(now time.Time) time.Duration {
	var dt time.Duration

	if t.FrameCount > 0 && !t.lastTime.IsZero() {
		dt = max(0, now.Sub(t.lastTime))
		t.update(dt)
	}

	t.lastTime = now
	t.FrameCount += 1

	return dt
}

// Pause forgets the time of the last frame. Time passing until the next
// Tick is not counted.
func (t *FrameTimes) Pause() {
	t.lastTime = time.Time{}
}
