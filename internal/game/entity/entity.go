// Package entity implements placed models and the objects that move
// through the world.
package entity

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sannhet/internal/engine/model"
	smath "github.com/Faultbox/sannhet/pkg/math"
)

// Entity is one placed instance of a textured model. Rotations are in degrees.
type Entity struct {
	ID           uint32
	Model        *model.TexturedModel
	Position     mgl32.Vec3
	RotX         float32
	RotY         float32
	RotZ         float32
	Scale        float32
	TextureIndex int // cell in the model's texture atlas
}

// New creates an entity at pos with the given rotation and uniform scale.
func New(m *model.TexturedModel, pos mgl32.Vec3, rx, ry, rz, scale float32) *Entity {
	return &Entity{
		Model:    m,
		Position: pos,
		RotX:     rx,
		RotY:     ry,
		RotZ:     rz,
		Scale:    scale,
	}
}

// IncreasePosition moves the entity by (dx, dy, dz).
func (e *Entity) IncreasePosition(dx, dy, dz float32) {
	e.Position = e.Position.Add(mgl32.Vec3{dx, dy, dz})
}

// IncreaseRotation rotates the entity by the given degrees.
func (e *Entity) IncreaseRotation(dx, dy, dz float32) {
	e.RotX += dx
	e.RotY += dy
	e.RotZ += dz
}

func (e *Entity) rows() int {
	if e.Model == nil || e.Model.Texture == nil {
		return 1
	}
	return e.Model.Texture.Rows()
}

// TextureXOffset returns the U offset of the entity's atlas cell.
func (e *Entity) TextureXOffset() float32 {
	rows := e.rows()
	return float32(e.TextureIndex%rows) / float32(rows)
}

// TextureYOffset returns the V offset of the entity's atlas cell.
func (e *Entity) TextureYOffset() float32 {
	rows := e.rows()
	return float32(e.TextureIndex/rows) / float32(rows)
}

// Transform returns the model matrix.
func (e *Entity) Transform() mgl32.Mat4 {
	return smath.TransformationMatrix(e.Position, e.RotX, e.RotY, e.RotZ, e.Scale)
}

// Manager keeps placed entities in insertion order.
type Manager struct {
	entities []*Entity
	byID     map[uint32]*Entity
	nextID   uint32
}

// NewManager creates an empty entity manager.
func NewManager() *Manager {
	return &Manager{
		byID:   make(map[uint32]*Entity),
		nextID: 1,
	}
}

// Add registers e, assigning an ID when it has none.
func (m *Manager) Add(e *Entity) {
	if e.ID == 0 {
		e.ID = m.nextID
	}
	if e.ID >= m.nextID {
		m.nextID = e.ID + 1
	}
	if _, ok := m.byID[e.ID]; ok {
		m.Remove(e.ID)
	}
	m.byID[e.ID] = e
	m.entities = append(m.entities, e)
}

// Remove removes an entity.
func (m *Manager) Remove(id uint32) {
	if _, ok := m.byID[id]; !ok {
		return
	}
	delete(m.byID, id)
	for i, e := range m.entities {
		if e.ID == id {
			m.entities = append(m.entities[:i], m.entities[i+1:]...)
			return
		}
	}
}

// Get returns an entity by ID.
func (m *Manager) Get(id uint32) *Entity {
	return m.byID[id]
}

// All returns every entity in insertion order. The slice must not be modified.
func (m *Manager) All() []*Entity {
	return m.entities
}

// Count returns the number of entities.
func (m *Manager) Count() int {
	return len(m.entities)
}

// Clear removes all entities.
func (m *Manager) Clear() {
	m.entities = nil
	m.byID = make(map[uint32]*Entity)
}
