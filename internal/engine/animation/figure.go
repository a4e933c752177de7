package animation

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sannhet/internal/engine/model"
)

// Joint indices of the demo figure.
const (
	FigureTorso = iota
	FigureHead
	FigureArmL
	FigureArmR
	FigureLegL
	FigureLegR
	FigureJoints
)

var figureNames = [FigureJoints]string{"torso", "head", "armL", "armR", "legL", "legR"}

// Bind-pose joint offsets relative to the parent joint.
var figureOffsets = [FigureJoints]mgl32.Vec3{
	FigureTorso: {0, 4, 0},
	FigureHead:  {0, 3, 0},
	FigureArmL:  {-1.3, 3, 0},
	FigureArmR:  {1.3, 3, 0},
	FigureLegL:  {-0.5, 0, 0},
	FigureLegR:  {0.5, 0, 0},
}

// FigureSkeleton builds the demo figure's joint hierarchy: a torso pivoting
// at the hips with a head, two arms hanging from the shoulders and two legs.
func FigureSkeleton() *Joint {
	joint := func(i int) *Joint {
		o := figureOffsets[i]
		return NewJoint(i, figureNames[i], mgl32.Translate3D(o.X(), o.Y(), o.Z()))
	}
	root := joint(FigureTorso)
	for i := FigureHead; i < FigureJoints; i++ {
		root.AddChild(joint(i))
	}
	return root
}

// FigureMesh builds the skinned box figure matching FigureSkeleton, standing
// on y=0 and about 8.2 units tall. Every part follows exactly one joint.
func FigureMesh() *model.Mesh {
	parts := []struct {
		joint  int32
		size   mgl32.Vec3
		offset mgl32.Vec3
	}{
		{FigureTorso, mgl32.Vec3{2, 3, 1}, mgl32.Vec3{0, 4, 0}},
		{FigureHead, mgl32.Vec3{1.2, 1.2, 1.2}, mgl32.Vec3{0, 7, 0}},
		{FigureArmL, mgl32.Vec3{0.6, 3, 0.6}, mgl32.Vec3{-1.3, 4, 0}},
		{FigureArmR, mgl32.Vec3{0.6, 3, 0.6}, mgl32.Vec3{1.3, 4, 0}},
		{FigureLegL, mgl32.Vec3{0.8, 4, 0.8}, mgl32.Vec3{-0.5, 0, 0}},
		{FigureLegR, mgl32.Vec3{0.8, 4, 0.8}, mgl32.Vec3{0.5, 0, 0}},
	}
	m := &model.Mesh{Skinned: true}
	for _, p := range parts {
		part := model.Box(p.size)
		part.BindJoint(p.joint)
		m.Append(part, p.offset)
	}
	return m
}

// figurePose poses the figure with arms and legs swung around X by the given
// degrees and the torso raised by bob units.
func figurePose(arms, legs, bob float32) map[string]JointTransform {
	rest := func(i int) JointTransform {
		return JointTransform{Position: figureOffsets[i], Rotation: mgl32.QuatIdent()}
	}
	swung := func(i int, deg float32) JointTransform {
		t := rest(i)
		t.Rotation = mgl32.QuatRotate(mgl32.DegToRad(deg), mgl32.Vec3{1, 0, 0})
		return t
	}

	torso := rest(FigureTorso)
	torso.Position = torso.Position.Add(mgl32.Vec3{0, bob, 0})

	return map[string]JointTransform{
		figureNames[FigureTorso]: torso,
		figureNames[FigureHead]:  rest(FigureHead),
		figureNames[FigureArmL]:  swung(FigureArmL, -arms),
		figureNames[FigureArmR]:  swung(FigureArmR, arms),
		figureNames[FigureLegL]:  swung(FigureLegL, legs),
		figureNames[FigureLegR]:  swung(FigureLegR, -legs),
	}
}

// NewRunCycle returns a looping run clip of the given length in seconds.
func NewRunCycle(length float32) (*Animation, error) {
	q := length / 4
	return NewAnimation("run", length, []KeyFrame{
		{TimeStamp: 0, Pose: figurePose(35, 35, 0)},
		{TimeStamp: q, Pose: figurePose(0, 0, 0.4)},
		{TimeStamp: 2 * q, Pose: figurePose(-35, -35, 0)},
		{TimeStamp: 3 * q, Pose: figurePose(0, 0, 0.4)},
	})
}

// NewIdleCycle returns a slow breathing clip of the given length in seconds.
func NewIdleCycle(length float32) (*Animation, error) {
	return NewAnimation("idle", length, []KeyFrame{
		{TimeStamp: 0, Pose: figurePose(2, 0, 0)},
		{TimeStamp: length / 2, Pose: figurePose(5, 0, 0.1)},
	})
}
