package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sannhet/internal/engine/gfx"
)

// EntityRenderer draws batched static entities.
type EntityRenderer struct {
	program gfx.Program
	device  gfx.Device
}

// NewEntityRenderer loads the projection into program.
func NewEntityRenderer(program gfx.Program, device gfx.Device, projection mgl32.Mat4) *EntityRenderer {
	r := &EntityRenderer{program: program, device: device}
	r.SetProjection(projection)
	return r
}

// SetProjection uploads a new projection matrix.
func (r *EntityRenderer) SetProjection(projection mgl32.Mat4) {
	r.program.Use()
	r.program.SetMat4("projectionMatrix", projection)
	r.program.Unuse()
}

// Render flushes b. The program must be in use.
func (r *EntityRenderer) Render(b *Batcher) {
	b.Flush(r.program, r.device)
}
