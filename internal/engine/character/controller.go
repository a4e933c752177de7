// Package character drives the player from keyboard input: running,
// turning, jumping and keeping to the ground.
package character

import (
	"github.com/Faultbox/sannhet/internal/config"
	"github.com/Faultbox/sannhet/internal/engine/animation"
	"github.com/Faultbox/sannhet/internal/engine/clock"
	"github.com/Faultbox/sannhet/internal/engine/controls"
	"github.com/Faultbox/sannhet/internal/game/entity"
	smath "github.com/Faultbox/sannhet/pkg/math"
)

// Config holds locomotion tuning. Speeds are per second, TurnSpeed in degrees.
type Config struct {
	RunSpeed         float32
	TurnSpeed        float32
	Gravity          float32 // negative pulls down
	JumpPower        float32
	SprintMultiplier float32
}

// ConfigFrom converts the player section of the game config.
func ConfigFrom(c config.PlayerConfig) Config {
	return Config{
		RunSpeed:         c.RunSpeed,
		TurnSpeed:        c.TurnSpeed,
		Gravity:          c.Gravity,
		JumpPower:        c.JumpPower,
		SprintMultiplier: c.SprintMultiplier,
	}
}

// GroundSampler reports the ground height under a world position.
type GroundSampler interface {
	HeightAt(x, z float32) float32
}

// Controller moves a WorldObject with Locomotion. Run and Idle are the clips
// played by an animated object while moving and standing; either may be nil.
type Controller struct {
	Config Config
	Run    *animation.Animation
	Idle   *animation.Animation
}

// New creates a controller.
func New(cfg Config, run, idle *animation.Animation) *Controller {
	return &Controller{Config: cfg, Run: run, Idle: idle}
}

// Jump launches loco upwards unless it is already in the air.
func Jump(loco *entity.Locomotion, power float32) {
	if loco.Airborne {
		return
	}
	loco.VerticalVelocity = power
	loco.Airborne = true
}

// Update advances obj by one frame. Objects without Locomotion are left alone.
func (c *Controller) Update(obj *entity.WorldObject, clk clock.FrameClock, in controls.State, ground GroundSampler) {
	loco := obj.Locomotion
	if loco == nil {
		return
	}
	dt := clk.Delta

	c.readInput(loco, in)

	obj.IncreaseRotation(0, loco.TurnSpeed*dt, 0)

	distance := loco.ForwardSpeed * dt
	obj.IncreasePosition(distance*smath.Sin(obj.RotY), 0, distance*smath.Cos(obj.RotY))

	loco.VerticalVelocity += c.Config.Gravity * dt
	obj.IncreasePosition(0, loco.VerticalVelocity*dt, 0)

	if ground != nil {
		pos := obj.Entity.Position
		if h := ground.HeightAt(pos.X(), pos.Z()); pos.Y() < h {
			obj.Entity.Position[1] = h
			loco.VerticalVelocity = 0
			loco.Airborne = false
		}
	}

	if obj.Animation != nil {
		clip := c.Idle
		if loco.ForwardSpeed != 0 {
			clip = c.Run
		}
		if obj.Animation.Animator.Clip() != clip {
			obj.Animation.Play(clip)
		}
	}
}

func (c *Controller) readInput(loco *entity.Locomotion, in controls.State) {
	switch {
	case in.IsKeyDown(controls.KeyW):
		loco.ForwardSpeed = c.Config.RunSpeed
		if in.IsKeyDown(controls.KeyLShift) {
			loco.ForwardSpeed *= c.Config.SprintMultiplier
		}
	case in.IsKeyDown(controls.KeyS):
		loco.ForwardSpeed = -c.Config.RunSpeed
	default:
		loco.ForwardSpeed = 0
	}

	switch {
	case in.IsKeyDown(controls.KeyD):
		loco.TurnSpeed = -c.Config.TurnSpeed
	case in.IsKeyDown(controls.KeyA):
		loco.TurnSpeed = c.Config.TurnSpeed
	default:
		loco.TurnSpeed = 0
	}

	if in.IsKeyDown(controls.KeySpace) {
		Jump(loco, c.Config.JumpPower)
	}
}
