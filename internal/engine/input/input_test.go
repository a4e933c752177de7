package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/sannhet/internal/engine/controls"
)

func key(typ uint32, code sdl.Scancode) *sdl.KeyboardEvent {
	return &sdl.KeyboardEvent{Type: typ, Keysym: sdl.Keysym{Scancode: code}}
}

func TestKeyState(t *testing.T) {
	in := New()

	assert.False(t, in.handle(key(sdl.KEYDOWN, sdl.SCANCODE_W)))
	in.handle(key(sdl.KEYDOWN, sdl.SCANCODE_LSHIFT))
	s := in.State()
	assert.True(t, s.IsKeyDown(controls.KeyW))
	assert.True(t, s.IsKeyDown(controls.KeyLShift))

	in.handle(key(sdl.KEYUP, sdl.SCANCODE_W))
	assert.False(t, in.State().IsKeyDown(controls.KeyW))

	in.handle(key(sdl.KEYDOWN, sdl.SCANCODE_Q))
	assert.Equal(t, controls.Press(controls.KeyLShift), in.State())
}

func TestEscapeQuits(t *testing.T) {
	in := New()
	assert.True(t, in.handle(key(sdl.KEYDOWN, sdl.SCANCODE_ESCAPE)))
	assert.True(t, in.handle(&sdl.QuitEvent{Type: sdl.QUIT}))
	assert.Equal(t, EventQuit, in.Events()[0].Type)
}

func TestMouseMotionAccumulates(t *testing.T) {
	in := New()
	in.handle(&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, XRel: 3, YRel: 4})
	in.handle(&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, XRel: 2, YRel: -1})

	dx, dy := in.State().MouseDelta()
	assert.Equal(t, float32(5), dx)
	assert.Equal(t, float32(-3), dy, "SDL Y grows downwards")
}

func TestMouseButtonsAndWheel(t *testing.T) {
	in := New()
	in.handle(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_RIGHT})
	in.handle(&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 2})
	in.handle(&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 1, Direction: sdl.MOUSEWHEEL_FLIPPED})

	s := in.State()
	assert.True(t, s.IsButtonDown(controls.ButtonRight))
	assert.False(t, s.IsButtonDown(controls.ButtonLeft))
	assert.Equal(t, float32(WheelStep), s.ScrollDelta())

	in.handle(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_RIGHT})
	assert.False(t, in.State().IsButtonDown(controls.ButtonRight))
}

func TestWindowResize(t *testing.T) {
	in := New()
	in.handle(&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED, Data1: 800, Data2: 600})
	assert.Equal(t, []Event{{Type: EventWindowResize, Width: 800, Height: 600}}, in.Events())
}
