// Package math provides the small set of geometry helpers the engine needs on
// top of mgl32: barycentric height interpolation and the model/view matrices
// built from Euler angles in degrees.
package math

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Barycentric interpolates the Y component of the triangle p1, p2, p3 at the
// point pos, where pos.X() is the X coordinate and pos.Y() the Z coordinate.
// A degenerate triangle yields p1.Y().
func Barycentric(p1, p2, p3 mgl32.Vec3, pos mgl32.Vec2) float32 {
	det := (p2.Z()-p3.Z())*(p1.X()-p3.X()) + (p3.X()-p2.X())*(p1.Z()-p3.Z())
	if det == 0 {
		return p1.Y()
	}
	l1 := ((p2.Z()-p3.Z())*(pos.X()-p3.X()) + (p3.X()-p2.X())*(pos.Y()-p3.Z())) / det
	l2 := ((p3.Z()-p1.Z())*(pos.X()-p3.X()) + (p1.X()-p3.X())*(pos.Y()-p3.Z())) / det
	l3 := 1 - l1 - l2
	return l1*p1.Y() + l2*p2.Y() + l3*p3.Y()
}

// TransformationMatrix builds translate * rotX * rotY * rotZ * scale.
// Rotations are in degrees.
func TransformationMatrix(translation mgl32.Vec3, rx, ry, rz, scale float32) mgl32.Mat4 {
	m := mgl32.Translate3D(translation.X(), translation.Y(), translation.Z())
	m = m.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(rx)))
	m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(ry)))
	m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(rz)))
	return m.Mul4(mgl32.Scale3D(scale, scale, scale))
}

// ViewMatrix builds the view matrix of a camera at position looking along
// pitch and yaw (degrees): rotX(pitch) * rotY(yaw) * translate(-position).
func ViewMatrix(position mgl32.Vec3, pitch, yaw float32) mgl32.Mat4 {
	m := mgl32.HomogRotate3DX(mgl32.DegToRad(pitch))
	m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(yaw)))
	return m.Mul4(mgl32.Translate3D(-position.X(), -position.Y(), -position.Z()))
}

// Sin returns sin of an angle in degrees.
func Sin(deg float32) float32 {
	return float32(gomath.Sin(float64(mgl32.DegToRad(deg))))
}

// Cos returns cos of an angle in degrees.
func Cos(deg float32) float32 {
	return float32(gomath.Cos(float64(mgl32.DegToRad(deg))))
}

// Clampf clamps v to [lo, hi].
func Clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
