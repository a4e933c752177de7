package entity

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sannhet/internal/engine/animation"
)

// Locomotion is the movement state of an object that walks, turns and jumps.
type Locomotion struct {
	ForwardSpeed     float32 // units per second, negative when backing up
	TurnSpeed        float32 // degrees per second
	VerticalVelocity float32
	Airborne         bool
}

// WorldObject is an entity with optional capabilities. The player is an
// entity with Locomotion and an animated model.
type WorldObject struct {
	Entity
	Locomotion *Locomotion
	Animation  *animation.AnimatedModel
}

// NewWorldObject wraps e with a fresh Locomotion and the given animated
// model, which may be nil.
func NewWorldObject(e Entity, anim *animation.AnimatedModel) *WorldObject {
	return &WorldObject{
		Entity:     e,
		Locomotion: &Locomotion{},
		Animation:  anim,
	}
}

// Position returns the object's world position.
func (o *WorldObject) Position() mgl32.Vec3 { return o.Entity.Position }

// Yaw returns the heading in degrees.
func (o *WorldObject) Yaw() float32 { return o.RotY }

// IsAnimated reports whether the object carries a skinned model.
func (o *WorldObject) IsAnimated() bool { return o.Animation != nil }
