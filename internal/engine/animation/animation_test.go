package animation

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/sannhet/internal/engine/gfx"
	"github.com/Faultbox/sannhet/internal/engine/model"
)

func rotY(deg float32) mgl32.Quat {
	return mgl32.QuatRotate(mgl32.DegToRad(deg), mgl32.Vec3{0, 1, 0})
}

func assertIdentity(t *testing.T, m mgl32.Mat4, msgAndArgs ...any) {
	t.Helper()
	ident := mgl32.Ident4()
	assert.InDeltaSlice(t, ident[:], m[:], 1e-5, msgAndArgs...)
}

func assertQuat(t *testing.T, want, got mgl32.Quat) {
	t.Helper()
	assert.InDelta(t, want.W, got.W, 1e-5, "got %v", got)
	assert.InDeltaSlice(t, want.V[:], got.V[:], 1e-5, "got %v", got)
}

func newTestModel(t *testing.T, root *Joint) *AnimatedModel {
	t.Helper()
	m, err := NewAnimatedModel(model.RawModel{}, nil, root)
	require.NoError(t, err)
	return m
}

func TestInterpolate(t *testing.T) {
	a := JointTransform{Position: mgl32.Vec3{0, 0, 0}, Rotation: mgl32.QuatIdent()}
	b := JointTransform{Position: mgl32.Vec3{2, 4, -2}, Rotation: rotY(90)}

	mid := Interpolate(a, b, 0.5)
	assert.Equal(t, mgl32.Vec3{1, 2, -1}, mid.Position)
	assertQuat(t, rotY(45), mid.Rotation)

	assert.Equal(t, a.Position, Interpolate(a, b, 0).Position)
	assertQuat(t, b.Rotation, Interpolate(a, b, 1).Rotation)
}

func TestNewAnimationValidation(t *testing.T) {
	_, err := NewAnimation("empty", 1, nil)
	assert.ErrorIs(t, err, ErrNoKeyFrames)

	frame := KeyFrame{Pose: map[string]JointTransform{}}
	_, err = NewAnimation("zero", 0, []KeyFrame{frame})
	assert.ErrorIs(t, err, ErrBadLength)

	_, err = NewAnimation("late", 1, []KeyFrame{frame, {TimeStamp: 2}})
	assert.ErrorIs(t, err, ErrBadLength)

	clip, err := NewAnimation("sorted", 1, []KeyFrame{{TimeStamp: 0.5}, {TimeStamp: 0}})
	require.NoError(t, err)
	assert.Equal(t, float32(0), clip.KeyFrames[0].TimeStamp)
	assert.Equal(t, float32(0.5), clip.KeyFrames[1].TimeStamp)
}

func slideClip(t *testing.T) *Animation {
	t.Helper()
	at := func(x float32) map[string]JointTransform {
		return map[string]JointTransform{"j": {Position: mgl32.Vec3{x, 0, 0}, Rotation: mgl32.QuatIdent()}}
	}
	clip, err := NewAnimation("slide", 2, []KeyFrame{
		{TimeStamp: 0, Pose: at(0)},
		{TimeStamp: 1, Pose: at(10)},
	})
	require.NoError(t, err)
	return clip
}

func TestAnimationPose(t *testing.T) {
	clip := slideClip(t)

	tests := []struct {
		name string
		time float32
		want float32
	}{
		{"first keyframe", 0, 0},
		{"between keyframes", 0.25, 2.5},
		{"second keyframe", 1, 10},
		{"blending back to the start", 1.5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pose := clip.Pose(tt.time)
			assert.InDelta(t, tt.want, pose["j"].Position.X(), 1e-5)
		})
	}
}

func TestAnimationPoseBeforeFirstKeyFrame(t *testing.T) {
	slide := func(x float32) map[string]JointTransform {
		return map[string]JointTransform{"j": {Position: mgl32.Vec3{x, 0, 0}, Rotation: mgl32.QuatIdent()}}
	}
	clip, err := NewAnimation("late", 1, []KeyFrame{
		{TimeStamp: 0.5, Pose: slide(0)},
		{TimeStamp: 0.75, Pose: slide(10)},
	})
	require.NoError(t, err)

	tests := []struct {
		time float32
		want float32
	}{
		{0.999, 6.68},
		{0, 6.6667},
		{0.25, 3.3333},
		{0.49, 0.1333},
		{0.5, 0},
		{0.625, 5},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, clip.Pose(tt.time)["j"].Position.X(), 1e-3, "t=%v", tt.time)
	}
}

func TestAnimatorPlayIsHardCut(t *testing.T) {
	root := NewJoint(0, "j", mgl32.Ident4())
	a := NewAnimator(root)
	slide := slideClip(t)
	other := slideClip(t)

	a.Play(slide)
	a.Update(0.5)
	assert.InDelta(t, 0.5, a.Time(), 1e-6)

	a.Play(slide)
	assert.InDelta(t, 0.5, a.Time(), 1e-6, "replaying the active clip keeps time")

	a.Play(other)
	assert.Same(t, other, a.Clip())
	assert.Zero(t, a.Time())
}

func TestAnimatorLoops(t *testing.T) {
	root := NewJoint(0, "j", mgl32.Ident4())
	a := NewAnimator(root)
	a.Play(slideClip(t))

	a.Update(1.5)
	a.Update(1.0)
	assert.InDelta(t, 0.5, a.Time(), 1e-5)

	a.Update(4.25)
	assert.InDelta(t, 0.75, a.Time(), 1e-5)
}

func TestAnimatorRestPose(t *testing.T) {
	root := FigureSkeleton()
	m := newTestModel(t, root)

	m.Update(0.1)
	for i, jt := range m.JointTransforms() {
		assertIdentity(t, jt, "joint %d", i)
	}
}

func TestBindPoseClipYieldsIdentity(t *testing.T) {
	m := newTestModel(t, FigureSkeleton())
	clip, err := NewAnimation("bind", 1, []KeyFrame{{TimeStamp: 0, Pose: figurePose(0, 0, 0)}})
	require.NoError(t, err)

	m.Play(clip)
	m.Update(0.3)
	for i, jt := range m.JointTransforms() {
		assertIdentity(t, jt, "joint %d", i)
	}
}

func TestHierarchyPropagates(t *testing.T) {
	m := newTestModel(t, FigureSkeleton())
	turned := map[string]JointTransform{
		"torso": {Position: mgl32.Vec3{0, 4, 0}, Rotation: rotY(90)},
	}
	clip, err := NewAnimation("turn", 1, []KeyFrame{{TimeStamp: 0, Pose: turned}})
	require.NoError(t, err)

	m.Play(clip)
	m.Update(0)
	joints := m.JointTransforms()

	// The head is rigidly attached, so it moves exactly like the torso.
	assert.InDeltaSlice(t, joints[FigureTorso][:], joints[FigureHead][:], 1e-5)

	// A point on the right shoulder swings round to the front.
	p := joints[FigureArmR].Mul4x1(mgl32.Vec4{1.3, 7, 0, 1})
	got := p.Vec3()
	assert.InDeltaSlice(t, []float32{0, 7, -1.3}, got[:], 1e-4, "got %v", p)
}

func TestJointTransformsIndexed(t *testing.T) {
	m := newTestModel(t, FigureSkeleton())
	assert.Equal(t, FigureJoints, m.JointCount)
	assert.Len(t, m.JointTransforms(), FigureJoints)
	assert.LessOrEqual(t, m.JointCount, MaxJoints)

	seen := map[int]bool{}
	m.Root.Walk(func(j *Joint) { seen[j.Index] = true })
	assert.Len(t, seen, FigureJoints)
}

func TestNewAnimatedModelJointLimit(t *testing.T) {
	chain := func(n int) *Joint {
		root := NewJoint(0, "j0", mgl32.Ident4())
		j := root
		for i := 1; i < n; i++ {
			j = j.AddChild(NewJoint(i, fmt.Sprintf("j%d", i), mgl32.Translate3D(0, 1, 0)))
		}
		return root
	}

	m, err := NewAnimatedModel(model.RawModel{}, nil, chain(MaxJoints))
	require.NoError(t, err)
	assert.Len(t, m.JointTransforms(), MaxJoints)

	_, err = NewAnimatedModel(model.RawModel{}, nil, chain(MaxJoints+1))
	assert.ErrorIs(t, err, ErrTooManyJoints)

	root := NewJoint(0, "root", mgl32.Ident4())
	root.AddChild(NewJoint(MaxJoints, "stray", mgl32.Ident4()))
	_, err = NewAnimatedModel(model.RawModel{}, nil, root)
	assert.ErrorIs(t, err, ErrTooManyJoints)
}

func TestFigureMesh(t *testing.T) {
	mesh := FigureMesh()
	data := mesh.Data()
	require.NoError(t, data.Validate())
	require.True(t, data.Skinned())

	for i := 0; i < len(data.JointIDs); i += gfx.MaxJointWeights {
		assert.Less(t, data.JointIDs[i], int32(FigureJoints))
		assert.Equal(t, float32(1), data.Weights[i])
	}
	assert.Zero(t, mesh.Bounds.Min.Y())
	assert.InDelta(t, 8.2, mesh.Bounds.Max.Y(), 1e-5)
}

func TestDemoClips(t *testing.T) {
	run, err := NewRunCycle(0.8)
	require.NoError(t, err)
	assert.Len(t, run.KeyFrames, 4)
	assert.Equal(t, float32(0.8), run.Length)

	idle, err := NewIdleCycle(2)
	require.NoError(t, err)
	assert.Len(t, idle.KeyFrames, 2)
	assert.Contains(t, idle.KeyFrames[0].Pose, "torso")
}
