// Package clock measures frame time and caps the frame rate.
package clock

import "time"

// FrameClock carries the duration of the previous frame in seconds. It is
// passed explicitly into every time-integrated update.
type FrameClock struct {
	Delta float32
}

// Timer turns successive frame timestamps into FrameClocks.
type Timer struct {
	last    time.Time
	started bool
}

// Tick returns the time elapsed since the previous Tick. The first Tick
// returns a zero delta.
func (t *Timer) Tick(now time.Time) FrameClock {
	if !t.started {
		t.last = now
		t.started = true
		return FrameClock{}
	}
	d := now.Sub(t.last)
	t.last = now
	if d < 0 {
		d = 0
	}
	return FrameClock{Delta: float32(d.Seconds())}
}

// Limiter caps the frame rate by sleeping out the rest of each frame.
type Limiter struct {
	FPS   int
	Sleep func(time.Duration)

	next time.Time
}

// NewLimiter returns a limiter for fps frames per second. Zero or negative
// fps disables the cap.
func NewLimiter(fps int) *Limiter {
	return &Limiter{FPS: fps, Sleep: time.Sleep}
}

// Wait blocks until the current frame's time slot has passed and returns
// how long it slept. Frames that overrun their slot do not sleep and
// restart the schedule from now.
func (l *Limiter) Wait(now time.Time) time.Duration {
	if l.FPS <= 0 {
		return 0
	}
	frame := time.Second / time.Duration(l.FPS)
	if l.next.IsZero() || now.After(l.next) {
		l.next = now.Add(frame)
		return 0
	}
	d := l.next.Sub(now)
	l.next = l.next.Add(frame)
	if l.Sleep != nil {
		l.Sleep(d)
	}
	return d
}
