package controls

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotKeys(t *testing.T) {
	s := Press(KeyW, KeyLShift)
	assert.True(t, s.IsKeyDown(KeyW))
	assert.True(t, s.IsKeyDown(KeyLShift))
	assert.False(t, s.IsKeyDown(KeyS))
	assert.False(t, s.IsKeyDown(Key(-1)))
	assert.False(t, s.IsKeyDown(keyCount))

	s.SetKey(KeyW, false)
	assert.False(t, s.IsKeyDown(KeyW))
	s.SetKey(Key(99), true)
}

func TestSnapshotButtonsAndDeltas(t *testing.T) {
	var s Snapshot
	s.SetButton(ButtonRight, true)
	s.DX, s.DY, s.Scroll = 3, -2, 120

	assert.True(t, s.IsButtonDown(ButtonRight))
	assert.False(t, s.IsButtonDown(ButtonLeft))
	assert.False(t, s.IsButtonDown(Button(7)))

	dx, dy := s.MouseDelta()
	assert.Equal(t, float32(3), dx)
	assert.Equal(t, float32(-2), dy)
	assert.Equal(t, float32(120), s.ScrollDelta())

	s.ClearDeltas()
	dx, dy = s.MouseDelta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
	assert.Zero(t, s.ScrollDelta())
	assert.True(t, s.IsButtonDown(ButtonRight), "held buttons survive ClearDeltas")
}

func TestSnapshotIsState(t *testing.T) {
	var _ State = Snapshot{}
	var _ State = &Snapshot{}
}
