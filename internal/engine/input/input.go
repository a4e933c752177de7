// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/sannhet/internal/engine/controls"
)

// WheelStep is the scroll delta reported per wheel notch.
const WheelStep = 120

// EventType classifies the events the game loop reacts to directly.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
)

// Event represents a processed window event.
type Event struct {
	Type   EventType
	Width  int
	Height int
}

var keymap = map[sdl.Scancode]controls.Key{
	sdl.SCANCODE_W:      controls.KeyW,
	sdl.SCANCODE_S:      controls.KeyS,
	sdl.SCANCODE_A:      controls.KeyA,
	sdl.SCANCODE_D:      controls.KeyD,
	sdl.SCANCODE_SPACE:  controls.KeySpace,
	sdl.SCANCODE_LSHIFT: controls.KeyLShift,
	sdl.SCANCODE_ESCAPE: controls.KeyEscape,
}

var buttonmap = map[uint8]controls.Button{
	sdl.BUTTON_LEFT:   controls.ButtonLeft,
	sdl.BUTTON_RIGHT:  controls.ButtonRight,
	sdl.BUTTON_MIDDLE: controls.ButtonMiddle,
}

// Input handles all input processing.
type Input struct {
	state  controls.Snapshot
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 4),
	}
}

// Update polls SDL events into the frame's input state.
// Returns true if the game should quit.
func (i *Input) Update() bool {
	i.state.ClearDeltas()
	i.events = i.events[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if i.handle(event) {
			quit = true
		}
	}
	return quit
}

// handle applies one event and reports whether it asks the game to quit.
func (i *Input) handle(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		i.events = append(i.events, Event{Type: EventQuit})
		return true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			i.events = append(i.events, Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			})
		}

	case *sdl.KeyboardEvent:
		if k, ok := keymap[e.Keysym.Scancode]; ok {
			i.state.SetKey(k, e.Type == sdl.KEYDOWN)
		}
		if e.Type == sdl.KEYDOWN && e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
			return true
		}

	case *sdl.MouseMotionEvent:
		// SDL's Y grows downwards; the game expects positive DY upwards.
		i.state.DX += float32(e.XRel)
		i.state.DY -= float32(e.YRel)

	case *sdl.MouseButtonEvent:
		if b, ok := buttonmap[e.Button]; ok {
			i.state.SetButton(b, e.Type == sdl.MOUSEBUTTONDOWN)
		}

	case *sdl.MouseWheelEvent:
		dy := float32(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			dy = -dy
		}
		i.state.Scroll += dy * WheelStep
	}
	return false
}

// State returns the input state accumulated by the last Update.
func (i *Input) State() controls.Snapshot {
	return i.state
}

// Events returns the window events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
