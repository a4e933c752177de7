package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimer(t *testing.T) {
	var tm Timer
	start := time.Unix(100, 0)

	assert.Zero(t, tm.Tick(start).Delta)
	assert.InDelta(t, 0.25, tm.Tick(start.Add(250*time.Millisecond)).Delta, 1e-6)
	assert.InDelta(t, 0.5, tm.Tick(start.Add(750*time.Millisecond)).Delta, 1e-6)
	assert.Zero(t, tm.Tick(start).Delta, "clock going backwards")
}

func TestLimiterSleepsOutFrame(t *testing.T) {
	var slept []time.Duration
	l := NewLimiter(100)
	l.Sleep = func(d time.Duration) { slept = append(slept, d) }

	start := time.Unix(0, 0)
	assert.Zero(t, l.Wait(start))

	// 4ms into a 10ms frame.
	assert.Equal(t, 6*time.Millisecond, l.Wait(start.Add(4*time.Millisecond)))
	assert.Equal(t, []time.Duration{6 * time.Millisecond}, slept)
}

func TestLimiterOverrun(t *testing.T) {
	l := NewLimiter(100)
	l.Sleep = func(time.Duration) { t.Fatal("overrunning frame must not sleep") }

	start := time.Unix(0, 0)
	l.Wait(start)
	assert.Zero(t, l.Wait(start.Add(25*time.Millisecond)))
}

func TestLimiterDisabled(t *testing.T) {
	l := NewLimiter(0)
	l.Sleep = func(time.Duration) { t.Fatal("disabled limiter must not sleep") }
	assert.Zero(t, l.Wait(time.Now()))
}
