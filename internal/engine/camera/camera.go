// Package camera provides the orbit camera that follows the player.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sannhet/internal/config"
	"github.com/Faultbox/sannhet/internal/engine/controls"
	smath "github.com/Faultbox/sannhet/pkg/math"
)

// ChestOffset raises the camera so it aims at the subject's chest rather
// than its feet.
const ChestOffset = 5

// Subject is anything the camera can follow.
type Subject interface {
	Position() mgl32.Vec3
	// Yaw returns the subject's heading in degrees.
	Yaw() float32
}

// Rig orbits a subject. Angles are in degrees.
//
// Pitch is unclamped: dragging far enough flips the view over the subject.
type Rig struct {
	ZoomSensitivity  float32
	PitchSensitivity float32
	YawSensitivity   float32
	MinDistance      float32

	distance    float32
	pitch       float32
	angleAround float32

	subject  Subject
	position mgl32.Vec3
	yaw      float32
	roll     float32
}

// New returns a rig following subject, positioned for the subject's current pose.
func New(subject Subject, cfg config.CameraConfig) *Rig {
	r := &Rig{
		distance:         cfg.Distance,
		pitch:            cfg.Pitch,
		angleAround:      cfg.YawOffset,
		ZoomSensitivity:  cfg.ZoomSensitivity,
		PitchSensitivity: cfg.PitchSensitivity,
		YawSensitivity:   cfg.YawSensitivity,
		MinDistance:      cfg.MinDistance,
		subject:          subject,
	}
	r.follow()
	return r
}

// Move applies this frame's zoom and drag input and re-derives the camera pose.
// Pitch follows vertical drag while the right button is held; the orbit
// angle follows horizontal drag while the left button is held.
func (r *Rig) Move(in controls.State) {
	r.Zoom(in.ScrollDelta())

	dx, dy := in.MouseDelta()
	if in.IsButtonDown(controls.ButtonRight) {
		r.pitch -= dy * r.PitchSensitivity
	}
	if in.IsButtonDown(controls.ButtonLeft) {
		r.angleAround -= dx * r.YawSensitivity
	}

	r.follow()
}

// Zoom moves the camera towards the subject by scroll*ZoomSensitivity,
// never closer than MinDistance.
func (r *Rig) Zoom(scroll float32) {
	r.distance -= scroll * r.ZoomSensitivity
	if r.distance < r.MinDistance {
		r.distance = r.MinDistance
	}
}

func (r *Rig) follow() {
	horizontal := r.distance * smath.Cos(r.pitch)
	vertical := r.distance * smath.Sin(r.pitch)

	theta := r.subject.Yaw() + r.angleAround
	offsetX := horizontal * smath.Sin(theta)
	offsetZ := horizontal * smath.Cos(theta)

	p := r.subject.Position()
	r.position = mgl32.Vec3{
		p.X() - offsetX,
		p.Y() + vertical + ChestOffset,
		p.Z() - offsetZ,
	}
	r.yaw = 180 - theta
}

// Position returns the camera position derived by the last Move.
func (r *Rig) Position() mgl32.Vec3 { return r.position }

// Distance returns the orbit radius. It may be negative down to MinDistance,
// which puts the camera in front of the subject.
func (r *Rig) Distance() float32 { return r.distance }

// Pitch returns the elevation angle in degrees.
func (r *Rig) Pitch() float32 { return r.pitch }

// AngleAround returns the orbit offset relative to the subject's heading.
func (r *Rig) AngleAround() float32 { return r.angleAround }

// Yaw returns the camera heading in degrees.
func (r *Rig) Yaw() float32 { return r.yaw }

// Roll returns the camera roll in degrees. The rig never rolls.
func (r *Rig) Roll() float32 { return r.roll }

// ViewMatrix returns the world-to-view transform.
func (r *Rig) ViewMatrix() mgl32.Mat4 {
	return smath.ViewMatrix(r.position, r.pitch, r.yaw)
}
