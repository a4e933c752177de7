package character

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/sannhet/internal/config"
	"github.com/Faultbox/sannhet/internal/engine/animation"
	"github.com/Faultbox/sannhet/internal/engine/clock"
	"github.com/Faultbox/sannhet/internal/engine/controls"
	"github.com/Faultbox/sannhet/internal/engine/model"
	"github.com/Faultbox/sannhet/internal/game/entity"
)

type flatGround float32

func (g flatGround) HeightAt(x, z float32) float32 { return float32(g) }

func newPlayer(pos mgl32.Vec3) *entity.WorldObject {
	return entity.NewWorldObject(*entity.New(nil, pos, 0, 0, 0, 1), nil)
}

func newController() *Controller {
	return New(ConfigFrom(config.Default().Player), nil, nil)
}

func frame(dt float32) clock.FrameClock { return clock.FrameClock{Delta: dt} }

func TestGroundedStaysOnGround(t *testing.T) {
	c := newController()
	p := newPlayer(mgl32.Vec3{10, 7, 10})

	c.Update(p, frame(0.1), controls.Snapshot{}, flatGround(7))

	assert.Equal(t, float32(7), p.Position().Y())
	assert.Zero(t, p.Locomotion.VerticalVelocity)
	assert.False(t, p.Locomotion.Airborne)
}

func TestClampsToHigherGround(t *testing.T) {
	c := newController()
	p := newPlayer(mgl32.Vec3{0, 0, 0})

	c.Update(p, frame(0.016), controls.Snapshot{}, flatGround(12))

	assert.Equal(t, float32(12), p.Position().Y())
}

func TestJumpOnlyOnceWhileHeld(t *testing.T) {
	c := newController()
	p := newPlayer(mgl32.Vec3{0, 0, 0})
	in := controls.Press(controls.KeySpace)

	c.Update(p, frame(0.1), in, flatGround(0))
	require.True(t, p.Locomotion.Airborne)
	// 30 on takeoff, then one frame of gravity.
	assert.InDelta(t, 25, p.Locomotion.VerticalVelocity, 1e-4)
	assert.InDelta(t, 2.5, p.Position().Y(), 1e-4)

	c.Update(p, frame(0.1), in, flatGround(0))
	assert.True(t, p.Locomotion.Airborne)
	assert.InDelta(t, 20, p.Locomotion.VerticalVelocity, 1e-4)
}

func TestJumpIgnoredWhenAirborne(t *testing.T) {
	loco := &entity.Locomotion{Airborne: true, VerticalVelocity: -3}
	Jump(loco, 30)
	assert.Equal(t, float32(-3), loco.VerticalVelocity)

	loco.Airborne = false
	Jump(loco, 30)
	assert.Equal(t, float32(30), loco.VerticalVelocity)
	assert.True(t, loco.Airborne)
}

func TestRunForwardAlongHeading(t *testing.T) {
	tests := []struct {
		name   string
		keys   []controls.Key
		yaw    float32
		wantDX float32
		wantDZ float32
	}{
		{"forward", []controls.Key{controls.KeyW}, 0, 0, 20},
		{"backward", []controls.Key{controls.KeyS}, 0, 0, -20},
		{"sprint", []controls.Key{controls.KeyW, controls.KeyLShift}, 0, 0, 200},
		{"shift alone", []controls.Key{controls.KeyLShift}, 0, 0, 0},
		{"facing +x", []controls.Key{controls.KeyW}, 90, 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newController()
			p := newPlayer(mgl32.Vec3{})
			p.RotY = tt.yaw

			c.Update(p, frame(1), controls.Press(tt.keys...), flatGround(0))

			assert.InDelta(t, tt.wantDX, p.Position().X(), 1e-3)
			assert.InDelta(t, tt.wantDZ, p.Position().Z(), 1e-3)
		})
	}
}

func TestTurning(t *testing.T) {
	c := newController()
	p := newPlayer(mgl32.Vec3{})

	c.Update(p, frame(0.5), controls.Press(controls.KeyA), flatGround(0))
	assert.InDelta(t, 80, p.Yaw(), 1e-4)

	c.Update(p, frame(0.5), controls.Press(controls.KeyD), flatGround(0))
	assert.InDelta(t, 0, p.Yaw(), 1e-4)
}

func TestClipSwitchesOnMovementChange(t *testing.T) {
	run, err := animation.NewRunCycle(1)
	require.NoError(t, err)
	idle, err := animation.NewIdleCycle(2)
	require.NoError(t, err)

	anim, err := animation.NewAnimatedModel(model.RawModel{}, model.NewModelTexture(1), animation.FigureSkeleton())
	require.NoError(t, err)
	p := entity.NewWorldObject(*entity.New(nil, mgl32.Vec3{}, 0, 0, 0, 1), anim)
	c := New(ConfigFrom(config.Default().Player), run, idle)

	c.Update(p, frame(0.1), controls.Snapshot{}, flatGround(0))
	assert.Same(t, idle, anim.Animator.Clip())

	c.Update(p, frame(0.1), controls.Press(controls.KeyW), flatGround(0))
	assert.Same(t, run, anim.Animator.Clip())
	anim.Update(0.3)
	require.InDelta(t, 0.3, anim.Animator.Time(), 1e-5)

	// Still running: the clip keeps its time.
	c.Update(p, frame(0.1), controls.Press(controls.KeyW), flatGround(0))
	assert.InDelta(t, 0.3, anim.Animator.Time(), 1e-5)

	c.Update(p, frame(0.1), controls.Snapshot{}, flatGround(0))
	assert.Same(t, idle, anim.Animator.Clip())
	assert.Zero(t, anim.Animator.Time())
}

func TestNoLocomotionIsIgnored(t *testing.T) {
	p := &entity.WorldObject{Entity: *entity.New(nil, mgl32.Vec3{1, 2, 3}, 0, 0, 0, 1)}
	newController().Update(p, frame(1), controls.Press(controls.KeyW), flatGround(100))
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, p.Position())
}
