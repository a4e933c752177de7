// Package model provides GPU-resident models, their materials and
// procedurally built meshes.
package model

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sannhet/internal/engine/gfx"
)

// RawModel is an uploaded mesh. VertexCount is the number of indices.
type RawModel struct {
	Mesh        gfx.MeshHandle
	VertexCount int32
}

// ModelTexture is the material of a model: a texture plus its lighting
// parameters. A texture with NumberOfRows > 1 is an atlas of rows×rows cells.
type ModelTexture struct {
	ID              gfx.TextureHandle
	ShineDamper     float32
	Reflectivity    float32
	HasTransparency bool
	UseFakeLighting bool
	NumberOfRows    int
}

// NewModelTexture returns a matte, opaque, single-cell material.
func NewModelTexture(id gfx.TextureHandle) *ModelTexture {
	return &ModelTexture{
		ID:           id,
		ShineDamper:  1,
		NumberOfRows: 1,
	}
}

// Rows returns NumberOfRows, treating values below 1 as 1.
func (t *ModelTexture) Rows() int {
	if t.NumberOfRows < 1 {
		return 1
	}
	return t.NumberOfRows
}

// TexturedModel pairs a mesh with its material. Entities sharing a
// *TexturedModel are drawn in one batch.
type TexturedModel struct {
	Name    string
	Raw     RawModel
	Texture *ModelTexture
}

// Vertex is one mesh vertex. Joints and Weights are only used by skinned meshes.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec2
	Joints   [gfx.MaxJointWeights]int32
	Weights  [gfx.MaxJointWeights]float32
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Mesh is CPU-side geometry ready to be flattened for upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
	Skinned  bool
}

// Data flattens the mesh into per-attribute arrays.
func (m *Mesh) Data() gfx.MeshData {
	n := len(m.Vertices)
	data := gfx.MeshData{
		Positions: make([]float32, 0, n*3),
		TexCoords: make([]float32, 0, n*2),
		Normals:   make([]float32, 0, n*3),
		Indices:   m.Indices,
	}
	if m.Skinned {
		data.JointIDs = make([]int32, 0, n*gfx.MaxJointWeights)
		data.Weights = make([]float32, 0, n*gfx.MaxJointWeights)
	}
	for _, v := range m.Vertices {
		data.Positions = append(data.Positions, v.Position[:]...)
		data.TexCoords = append(data.TexCoords, v.TexCoord[:]...)
		data.Normals = append(data.Normals, v.Normal[:]...)
		if m.Skinned {
			data.JointIDs = append(data.JointIDs, v.Joints[:]...)
			data.Weights = append(data.Weights, v.Weights[:]...)
		}
	}
	return data
}

// Append copies other into m, translating its vertices by offset.
func (m *Mesh) Append(other *Mesh, offset mgl32.Vec3) {
	base := uint32(len(m.Vertices))
	for _, v := range other.Vertices {
		v.Position = v.Position.Add(offset)
		m.addVertex(v)
	}
	for _, idx := range other.Indices {
		m.Indices = append(m.Indices, base+idx)
	}
	m.Skinned = m.Skinned || other.Skinned
}

// BindJoint makes every vertex follow joint with full weight.
func (m *Mesh) BindJoint(joint int32) {
	for i := range m.Vertices {
		m.Vertices[i].Joints = [gfx.MaxJointWeights]int32{joint}
		m.Vertices[i].Weights = [gfx.MaxJointWeights]float32{1}
	}
	m.Skinned = true
}

func (m *Mesh) addVertex(v Vertex) uint32 {
	if len(m.Vertices) == 0 {
		m.Bounds = Bounds{Min: v.Position, Max: v.Position}
	} else {
		updateBounds(&m.Bounds, v.Position)
	}
	m.Vertices = append(m.Vertices, v)
	return uint32(len(m.Vertices) - 1)
}

func updateBounds(b *Bounds, p mgl32.Vec3) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
