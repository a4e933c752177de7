package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sannhet/internal/engine/animation"
	"github.com/Faultbox/sannhet/internal/engine/gfx"
	"github.com/Faultbox/sannhet/internal/engine/model"
)

// AnimatedRenderer draws skinned models.
type AnimatedRenderer struct {
	program gfx.Program
	device  gfx.Device
}

// NewAnimatedRenderer loads the projection into program.
func NewAnimatedRenderer(program gfx.Program, device gfx.Device, projection mgl32.Mat4) *AnimatedRenderer {
	r := &AnimatedRenderer{program: program, device: device}
	r.SetProjection(projection)
	return r
}

// SetProjection uploads a new projection matrix.
func (r *AnimatedRenderer) SetProjection(projection mgl32.Mat4) {
	r.program.Use()
	r.program.SetMat4("projectionMatrix", projection)
	r.program.Unuse()
}

// Render draws m with the given model matrix and its current joint
// transforms. The program must be in use.
func (r *AnimatedRenderer) Render(m *animation.AnimatedModel, transform mgl32.Mat4) {
	if m == nil || m.Texture == nil {
		return
	}
	tm := &model.TexturedModel{Raw: m.Model, Texture: m.Texture}
	bindModel(r.program, r.device, tm, gfx.SkinnedAttribs)

	r.program.SetMat4("transformationMatrix", transform)
	r.program.SetVec2("offset", mgl32.Vec2{})
	r.program.SetMat4Array("jointTransforms", m.JointTransforms())
	r.device.DrawIndexed(m.Model.VertexCount)

	unbindModel(r.device, gfx.SkinnedAttribs)
}
