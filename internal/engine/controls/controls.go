// Package controls defines the input state the game logic reads each frame,
// independent of the windowing backend that produces it.
package controls

// Key is a keyboard key the game reacts to.
type Key int

const (
	KeyW Key = iota
	KeyS
	KeyA
	KeyD
	KeySpace
	KeyLShift
	KeyEscape
	keyCount
)

// Button is a mouse button. The values match the classic 0=left, 1=right
// numbering.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
	buttonCount
)

// State is the input collaborator seen by movement and camera code.
type State interface {
	IsKeyDown(k Key) bool
	IsButtonDown(b Button) bool
	// MouseDelta returns the motion since the last frame. Positive DY is upwards.
	MouseDelta() (dx, dy float32)
	// ScrollDelta returns the wheel motion since the last frame. Positive is away from the user.
	ScrollDelta() float32
}

// Snapshot is a plain-value State. The zero value has nothing pressed.
type Snapshot struct {
	Keys    [keyCount]bool
	Buttons [buttonCount]bool
	DX, DY  float32
	Scroll  float32
}

// IsKeyDown reports whether k is held.
func (s Snapshot) IsKeyDown(k Key) bool {
	return k >= 0 && k < keyCount && s.Keys[k]
}

// IsButtonDown reports whether b is held.
func (s Snapshot) IsButtonDown(b Button) bool {
	return b >= 0 && b < buttonCount && s.Buttons[b]
}

// MouseDelta and ScrollDelta return the recorded deltas.
func (s Snapshot) MouseDelta() (dx, dy float32) { return s.DX, s.DY }

func (s Snapshot) ScrollDelta() float32 { return s.Scroll }

// SetKey records k as held or released. Out-of-range keys are ignored.
func (s *Snapshot) SetKey(k Key, down bool) {
	if k >= 0 && k < keyCount {
		s.Keys[k] = down
	}
}

// SetButton records b as held or released. Out-of-range buttons are ignored.
func (s *Snapshot) SetButton(b Button, down bool) {
	if b >= 0 && b < buttonCount {
		s.Buttons[b] = down
	}
}

// ClearDeltas zeroes the per-frame mouse and wheel motion.
func (s *Snapshot) ClearDeltas() {
	s.DX, s.DY, s.Scroll = 0, 0, 0
}

// Press returns a snapshot with the given keys held.
func Press(keys ...Key) Snapshot {
	var s Snapshot
	for _, k := range keys {
		s.SetKey(k, true)
	}
	return s
}
