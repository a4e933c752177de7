// Package gfx defines the boundary between the engine and the graphics API.
//
// Everything that touches GPU state goes through Device (buffers, textures,
// fixed-function toggles, draw calls) or Program (a linked shader with named
// uniforms). The OpenGL implementation lives in gfx/opengl; gfx/gfxtest
// provides a recording fake so batching and loading logic can be tested
// without a context.
package gfx

import (
	"errors"
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrEmptyMesh is returned when a mesh without indices is uploaded.
var ErrEmptyMesh = errors.New("gfx: mesh has no indices")

// MeshHandle identifies a GPU-resident vertex array.
type MeshHandle uint32

// TextureHandle identifies a GPU-resident 2D texture.
type TextureHandle uint32

// Vertex attribute locations shared by every shader.
const (
	AttribPosition = 0
	AttribTexCoord = 1
	AttribNormal   = 2
	AttribJointIDs = 3
	AttribWeights  = 4
)

// Attribute counts enabled per mesh kind.
const (
	StaticAttribs  = 3
	SkinnedAttribs = 5
)

// MaxJointWeights is the number of joint influences per skinned vertex.
const MaxJointWeights = 3

// MeshData is the flat per-vertex data of a mesh.
// JointIDs and Weights are optional and hold MaxJointWeights entries per vertex.
type MeshData struct {
	Positions []float32
	TexCoords []float32
	Normals   []float32
	Indices   []uint32
	JointIDs  []int32
	Weights   []float32
}

// VertexCount returns the number of indices, which is what indexed draw calls consume.
func (d MeshData) VertexCount() int32 {
	return int32(len(d.Indices))
}

// Skinned reports whether the mesh carries joint influences.
func (d MeshData) Skinned() bool {
	return len(d.JointIDs) > 0 && len(d.Weights) > 0
}

// Validate checks the arrays are consistent with each other.
func (d MeshData) Validate() error {
	if len(d.Indices) == 0 {
		return ErrEmptyMesh
	}
	if len(d.Positions)%3 != 0 {
		return errors.New("gfx: positions not a multiple of 3")
	}
	n := len(d.Positions) / 3
	if len(d.TexCoords) != 0 && len(d.TexCoords) != n*2 {
		return errors.New("gfx: texture coordinate count does not match vertex count")
	}
	if len(d.Normals) != 0 && len(d.Normals) != n*3 {
		return errors.New("gfx: normal count does not match vertex count")
	}
	if d.Skinned() && (len(d.JointIDs) != n*MaxJointWeights || len(d.Weights) != n*MaxJointWeights) {
		return errors.New("gfx: joint influence count does not match vertex count")
	}
	for _, idx := range d.Indices {
		if int(idx) >= n {
			return errors.New("gfx: index out of range")
		}
	}
	return nil
}

// TextureOptions controls texture sampling.
type TextureOptions struct {
	Mipmaps bool
	LODBias float32
	Clamp   bool
	Nearest bool
}

// Device is the GPU state collaborator.
type Device interface {
	UploadMesh(data MeshData) (MeshHandle, error)
	UploadTexture(img *image.RGBA, opts TextureOptions) (TextureHandle, error)
	DeleteMesh(h MeshHandle)
	DeleteTexture(h TextureHandle)

	// BindMesh binds the vertex array and enables attributes 0..attribs-1.
	BindMesh(h MeshHandle, attribs int)
	// UnbindMesh disables attributes 0..attribs-1 and unbinds the vertex array.
	UnbindMesh(attribs int)
	BindTexture(unit int, h TextureHandle)

	SetCulling(enabled bool)
	SetDepthTest(enabled bool)
	Clear(r, g, b float32)
	Viewport(width, height int)

	// DrawIndexed draws count indices of the bound mesh as triangles.
	DrawIndexed(count int32)
}

// Uniforms sets named uniforms on the program in use.
type Uniforms interface {
	SetFloat(name string, v float32)
	SetInt(name string, v int32)
	SetBool(name string, v bool)
	SetVec2(name string, v mgl32.Vec2)
	SetVec3(name string, v mgl32.Vec3)
	SetMat4(name string, v mgl32.Mat4)
	SetMat4Array(name string, v []mgl32.Mat4)
}

// Program is a linked shader program.
type Program interface {
	Uniforms
	Use()
	Unuse()
	Delete()
}
