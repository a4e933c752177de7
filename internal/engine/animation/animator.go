package animation

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sannhet/internal/engine/model"
)

// ErrTooManyJoints is returned for skeletons that do not fit the skinning
// shader's joint array.
var ErrTooManyJoints = errors.New("animation: skeleton exceeds joint limit")

// Animator plays one clip at a time on a skeleton.
type Animator struct {
	root *Joint
	clip *Animation
	time float32
}

// NewAnimator returns an animator in rest pose.
func NewAnimator(root *Joint) *Animator {
	return &Animator{root: root}
}

// Play switches to clip with a hard cut: playback restarts at time 0.
// Playing the clip that is already active does nothing. A nil clip
// returns the skeleton to its rest pose.
func (a *Animator) Play(clip *Animation) {
	if clip == a.clip {
		return
	}
	a.clip = clip
	a.time = 0
}

// Clip returns the active clip, nil in rest pose.
func (a *Animator) Clip() *Animation { return a.clip }

// Time returns the playback position within the active clip in seconds.
func (a *Animator) Time() float32 { return a.time }

// Update advances playback by dt seconds, wrapping at the clip length, and
// recomputes every joint's Animated transform.
func (a *Animator) Update(dt float32) {
	if a.clip == nil {
		a.root.Walk(func(j *Joint) { j.Animated = mgl32.Ident4() })
		return
	}

	a.time += dt
	if a.time >= a.clip.Length || a.time < 0 {
		a.time = float32(gomath.Mod(float64(a.time), float64(a.clip.Length)))
		if a.time < 0 {
			a.time += a.clip.Length
		}
	}

	a.apply(a.clip.Pose(a.time), a.root, mgl32.Ident4())
}

// apply resolves parent-relative poses into model space. Joints missing
// from the pose keep their bind transform.
func (a *Animator) apply(pose map[string]JointTransform, j *Joint, parent mgl32.Mat4) {
	local := j.LocalBind
	if t, ok := pose[j.Name]; ok {
		local = t.Local()
	}
	current := parent.Mul4(local)
	for _, c := range j.Children {
		a.apply(pose, c, current)
	}
	j.Animated = current.Mul4(j.InverseBind)
}

// AnimatedModel is a skinned model with its skeleton and playback state.
type AnimatedModel struct {
	Model      model.RawModel
	Texture    *model.ModelTexture
	Root       *Joint
	JointCount int
	Animator   *Animator
}

// NewAnimatedModel computes the skeleton's inverse bind transforms and
// attaches an animator in rest pose. Skeletons with more than MaxJoints
// joints, or with an index outside the shader array, are rejected.
func NewAnimatedModel(raw model.RawModel, texture *model.ModelTexture, root *Joint) (*AnimatedModel, error) {
	count := root.Count()
	if count > MaxJoints {
		return nil, fmt.Errorf("%w: %d joints, shader holds %d", ErrTooManyJoints, count, MaxJoints)
	}
	var bad *Joint
	root.Walk(func(j *Joint) {
		if bad == nil && (j.Index < 0 || j.Index >= MaxJoints) {
			bad = j
		}
	})
	if bad != nil {
		return nil, fmt.Errorf("%w: joint %q has index %d", ErrTooManyJoints, bad.Name, bad.Index)
	}

	root.CalcInverseBind(mgl32.Ident4())
	return &AnimatedModel{
		Model:      raw,
		Texture:    texture,
		Root:       root,
		JointCount: count,
		Animator:   NewAnimator(root),
	}, nil
}

// Play forwards to the animator.
func (m *AnimatedModel) Play(clip *Animation) { m.Animator.Play(clip) }

// Update forwards to the animator.
func (m *AnimatedModel) Update(dt float32) { m.Animator.Update(dt) }

// JointTransforms returns the Animated transform of every joint, indexed by
// Joint.Index, ready to upload as one uniform array.
func (m *AnimatedModel) JointTransforms() []mgl32.Mat4 {
	out := make([]mgl32.Mat4, m.JointCount)
	for i := range out {
		out[i] = mgl32.Ident4()
	}
	m.Root.Walk(func(j *Joint) {
		if j.Index >= 0 && j.Index < len(out) {
			out[j.Index] = j.Animated
		}
	})
	return out
}
