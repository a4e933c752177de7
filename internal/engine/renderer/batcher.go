package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sannhet/internal/engine/gfx"
	"github.com/Faultbox/sannhet/internal/engine/model"
	"github.com/Faultbox/sannhet/internal/game/entity"
)

// Batch is every entity submitted for one textured model.
type Batch struct {
	Model    *model.TexturedModel
	Entities []*entity.Entity
}

// Batcher groups entities by textured model so each mesh and material is
// bound once per frame. Batches are flushed in the order their model was
// first submitted.
type Batcher struct {
	order   []*model.TexturedModel
	batches map[*model.TexturedModel][]*entity.Entity
	count   int
}

// NewBatcher returns an empty batcher.
func NewBatcher() *Batcher {
	return &Batcher{batches: make(map[*model.TexturedModel][]*entity.Entity)}
}

// Submit queues e for the next Flush. Entities without a textured model are
// dropped.
func (b *Batcher) Submit(e *entity.Entity) {
	if e == nil || e.Model == nil || e.Model.Texture == nil {
		return
	}
	list, ok := b.batches[e.Model]
	if !ok {
		b.order = append(b.order, e.Model)
	}
	b.batches[e.Model] = append(list, e)
	b.count++
}

// Len returns the number of queued entities.
func (b *Batcher) Len() int { return b.count }

// Batches returns the queued batches in flush order.
func (b *Batcher) Batches() []Batch {
	out := make([]Batch, 0, len(b.order))
	for _, m := range b.order {
		out = append(out, Batch{Model: m, Entities: b.batches[m]})
	}
	return out
}

// Reset drops every queued entity.
func (b *Batcher) Reset() {
	b.order = b.order[:0]
	clear(b.batches)
	b.count = 0
}

// Flush draws every queued entity with the program in use, then empties the
// batcher. Each batch binds its mesh and material once and issues one draw
// per entity. Culling is switched back on after every batch.
func (b *Batcher) Flush(u gfx.Uniforms, device gfx.Device) {
	for _, m := range b.order {
		bindModel(u, device, m, gfx.StaticAttribs)
		for _, e := range b.batches[m] {
			u.SetMat4("transformationMatrix", e.Transform())
			u.SetVec2("offset", mgl32.Vec2{e.TextureXOffset(), e.TextureYOffset()})
			device.DrawIndexed(m.Raw.VertexCount)
		}
		unbindModel(device, gfx.StaticAttribs)
	}
	b.Reset()
}

// bindModel binds the mesh and material of m. Transparent materials are
// drawn with culling off so both faces show.
func bindModel(u gfx.Uniforms, device gfx.Device, m *model.TexturedModel, attribs int) {
	tex := m.Texture
	device.BindMesh(m.Raw.Mesh, attribs)
	u.SetFloat("numberOfRows", float32(tex.Rows()))
	u.SetBool("useFakeLighting", tex.UseFakeLighting)
	u.SetFloat("shineDamper", tex.ShineDamper)
	u.SetFloat("reflectivity", tex.Reflectivity)
	if tex.HasTransparency {
		device.SetCulling(false)
	}
	device.BindTexture(0, tex.ID)
}

func unbindModel(device gfx.Device, attribs int) {
	device.SetCulling(true)
	device.UnbindMesh(attribs)
}
