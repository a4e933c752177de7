// Package animation evaluates skeletal poses: keyframed clips are sampled
// every frame and resolved into model-space joint transforms for skinning.
package animation

import (
	"github.com/go-gl/mathgl/mgl32"
)

// MaxJoints is the size of the joint transform array in the skinning shader.
const MaxJoints = 50

// Joint is one bone of a skeleton.
//
// LocalBind is the bind-pose transform relative to the parent. InverseBind
// maps model space into the joint's bind space. Animated is the result of the
// last pose evaluation: current model-space transform times InverseBind, so
// the bind pose yields identity.
type Joint struct {
	Index    int
	Name     string
	Children []*Joint

	LocalBind   mgl32.Mat4
	InverseBind mgl32.Mat4
	Animated    mgl32.Mat4
}

// NewJoint returns a childless joint in rest pose.
func NewJoint(index int, name string, localBind mgl32.Mat4) *Joint {
	return &Joint{
		Index:       index,
		Name:        name,
		LocalBind:   localBind,
		InverseBind: mgl32.Ident4(),
		Animated:    mgl32.Ident4(),
	}
}

// AddChild attaches child below j.
func (j *Joint) AddChild(child *Joint) *Joint {
	j.Children = append(j.Children, child)
	return child
}

// CalcInverseBind computes InverseBind for j and its subtree given the
// parent's model-space bind transform.
func (j *Joint) CalcInverseBind(parentBind mgl32.Mat4) {
	bind := parentBind.Mul4(j.LocalBind)
	j.InverseBind = bind.Inv()
	for _, c := range j.Children {
		c.CalcInverseBind(bind)
	}
}

// Count returns the number of joints in the subtree rooted at j.
func (j *Joint) Count() int {
	n := 1
	for _, c := range j.Children {
		n += c.Count()
	}
	return n
}

// Walk calls fn for j and every descendant, parents first.
func (j *Joint) Walk(fn func(*Joint)) {
	fn(j)
	for _, c := range j.Children {
		c.Walk(fn)
	}
}
