package model

import (
	"github.com/go-gl/mathgl/mgl32"
)

// quad adds a flat quad a-b-c-d (counter-clockwise seen from the front).
func (m *Mesh) quad(a, b, c, d mgl32.Vec3, normal mgl32.Vec3) {
	i0 := m.addVertex(Vertex{Position: a, Normal: normal, TexCoord: mgl32.Vec2{0, 1}})
	i1 := m.addVertex(Vertex{Position: b, Normal: normal, TexCoord: mgl32.Vec2{1, 1}})
	i2 := m.addVertex(Vertex{Position: c, Normal: normal, TexCoord: mgl32.Vec2{1, 0}})
	i3 := m.addVertex(Vertex{Position: d, Normal: normal, TexCoord: mgl32.Vec2{0, 0}})
	m.Indices = append(m.Indices, i0, i1, i2, i2, i3, i0)
}

func (m *Mesh) triangle(a, b, c mgl32.Vec3) {
	normal := b.Sub(a).Cross(c.Sub(a)).Normalize()
	i0 := m.addVertex(Vertex{Position: a, Normal: normal, TexCoord: mgl32.Vec2{0, 1}})
	i1 := m.addVertex(Vertex{Position: b, Normal: normal, TexCoord: mgl32.Vec2{1, 1}})
	i2 := m.addVertex(Vertex{Position: c, Normal: normal, TexCoord: mgl32.Vec2{0.5, 0}})
	m.Indices = append(m.Indices, i0, i1, i2)
}

// Box builds an axis-aligned box of the given size, centred on X/Z with its
// base at y=0, so placing it at a ground height rests it on the ground.
func Box(size mgl32.Vec3) *Mesh {
	x, y, z := size[0]/2, size[1], size[2]/2
	m := &Mesh{}

	// +Z, -Z
	m.quad(mgl32.Vec3{-x, 0, z}, mgl32.Vec3{x, 0, z}, mgl32.Vec3{x, y, z}, mgl32.Vec3{-x, y, z}, mgl32.Vec3{0, 0, 1})
	m.quad(mgl32.Vec3{x, 0, -z}, mgl32.Vec3{-x, 0, -z}, mgl32.Vec3{-x, y, -z}, mgl32.Vec3{x, y, -z}, mgl32.Vec3{0, 0, -1})
	// +X, -X
	m.quad(mgl32.Vec3{x, 0, z}, mgl32.Vec3{x, 0, -z}, mgl32.Vec3{x, y, -z}, mgl32.Vec3{x, y, z}, mgl32.Vec3{1, 0, 0})
	m.quad(mgl32.Vec3{-x, 0, -z}, mgl32.Vec3{-x, 0, z}, mgl32.Vec3{-x, y, z}, mgl32.Vec3{-x, y, -z}, mgl32.Vec3{-1, 0, 0})
	// +Y, -Y
	m.quad(mgl32.Vec3{-x, y, z}, mgl32.Vec3{x, y, z}, mgl32.Vec3{x, y, -z}, mgl32.Vec3{-x, y, -z}, mgl32.Vec3{0, 1, 0})
	m.quad(mgl32.Vec3{-x, 0, -z}, mgl32.Vec3{x, 0, -z}, mgl32.Vec3{x, 0, z}, mgl32.Vec3{-x, 0, z}, mgl32.Vec3{0, -1, 0})

	return m
}

// Pyramid builds a four-sided pyramid with a square base of width base
// at y=0 and its apex at y=height.
func Pyramid(base, height float32) *Mesh {
	h := base / 2
	apex := mgl32.Vec3{0, height, 0}
	c := [4]mgl32.Vec3{{-h, 0, h}, {h, 0, h}, {h, 0, -h}, {-h, 0, -h}}
	m := &Mesh{}
	for i := 0; i < 4; i++ {
		m.triangle(c[i], c[(i+1)%4], apex)
	}
	m.quad(c[3], c[2], c[1], c[0], mgl32.Vec3{0, -1, 0})
	return m
}

// Tree builds a box trunk topped by a pyramid crown.
func Tree(trunkWidth, trunkHeight, crownWidth, crownHeight float32) *Mesh {
	m := Box(mgl32.Vec3{trunkWidth, trunkHeight, trunkWidth})
	m.Append(Pyramid(crownWidth, crownHeight), mgl32.Vec3{0, trunkHeight, 0})
	return m
}

// Grass builds two crossed vertical quads. Both faces are visible only when
// culling is off, which the renderer does for transparent textures.
func Grass(width, height float32) *Mesh {
	h := width / 2
	m := &Mesh{}
	m.quad(mgl32.Vec3{-h, 0, 0}, mgl32.Vec3{h, 0, 0}, mgl32.Vec3{h, height, 0}, mgl32.Vec3{-h, height, 0}, mgl32.Vec3{0, 0, 1})
	m.quad(mgl32.Vec3{0, 0, h}, mgl32.Vec3{0, 0, -h}, mgl32.Vec3{0, height, -h}, mgl32.Vec3{0, height, h}, mgl32.Vec3{1, 0, 0})
	return m
}
