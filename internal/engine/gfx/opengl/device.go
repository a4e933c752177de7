// Package opengl implements gfx.Device on OpenGL 4.1 core.
// Every method must be called from the thread that owns the GL context.
package opengl

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/sannhet/internal/engine/gfx"
	"github.com/Faultbox/sannhet/internal/logger"
)

// Device issues gfx operations against the current GL context.
type Device struct {
	// buffers owned by each vertex array, released with it
	buffers map[gfx.MeshHandle][]uint32
}

// New initializes the GL function pointers and sets the engine's default state
// (depth test on, back-face culling on).
func New() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	d := &Device{buffers: make(map[gfx.MeshHandle][]uint32)}
	d.SetDepthTest(true)
	d.SetCulling(true)
	return d, nil
}

// UploadMesh stores every attribute array in its own VBO under one VAO.
func (d *Device) UploadMesh(data gfx.MeshData) (gfx.MeshHandle, error) {
	if err := data.Validate(); err != nil {
		return 0, err
	}

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbos []uint32
	vbos = append(vbos, storeIndices(data.Indices))
	vbos = append(vbos, storeFloats(gfx.AttribPosition, 3, data.Positions))
	if len(data.TexCoords) > 0 {
		vbos = append(vbos, storeFloats(gfx.AttribTexCoord, 2, data.TexCoords))
	}
	if len(data.Normals) > 0 {
		vbos = append(vbos, storeFloats(gfx.AttribNormal, 3, data.Normals))
	}
	if data.Skinned() {
		vbos = append(vbos, storeInts(gfx.AttribJointIDs, gfx.MaxJointWeights, data.JointIDs))
		vbos = append(vbos, storeFloats(gfx.AttribWeights, gfx.MaxJointWeights, data.Weights))
	}

	gl.BindVertexArray(0)

	h := gfx.MeshHandle(vao)
	d.buffers[h] = vbos
	return h, nil
}

func storeIndices(indices []uint32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)
	return vbo
}

func storeFloats(attrib uint32, size int32, values []float32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(values)*4, unsafe.Pointer(&values[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(attrib, size, gl.FLOAT, false, 0, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vbo
}

func storeInts(attrib uint32, size int32, values []int32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(values)*4, unsafe.Pointer(&values[0]), gl.STATIC_DRAW)
	gl.VertexAttribIPointerWithOffset(attrib, size, gl.INT, 0, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vbo
}

// UploadTexture uploads RGBA pixels as a repeating 2D texture.
func (d *Device) UploadTexture(img *image.RGBA, opts gfx.TextureOptions) (gfx.TextureHandle, error) {
	b := img.Bounds()
	if b.Empty() {
		return 0, errors.New("opengl: empty texture image")
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))

	minFilter, magFilter := int32(gl.LINEAR), int32(gl.LINEAR)
	if opts.Nearest {
		minFilter, magFilter = gl.NEAREST, gl.NEAREST
	}
	if opts.Mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
		minFilter = gl.LINEAR_MIPMAP_LINEAR
		gl.TexParameterf(gl.TEXTURE_2D, gl.TEXTURE_LOD_BIAS, opts.LODBias)
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, magFilter)

	wrap := int32(gl.REPEAT)
	if opts.Clamp {
		wrap = gl.CLAMP_TO_EDGE
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return gfx.TextureHandle(tex), nil
}

// DeleteMesh frees the vertex array and its buffers.
func (d *Device) DeleteMesh(h gfx.MeshHandle) {
	if vbos, ok := d.buffers[h]; ok && len(vbos) > 0 {
		gl.DeleteBuffers(int32(len(vbos)), &vbos[0])
	}
	delete(d.buffers, h)
	vao := uint32(h)
	gl.DeleteVertexArrays(1, &vao)
}

// DeleteTexture frees a texture.
func (d *Device) DeleteTexture(h gfx.TextureHandle) {
	tex := uint32(h)
	gl.DeleteTextures(1, &tex)
}

// BindMesh binds the vertex array and enables attributes 0..attribs-1.
func (d *Device) BindMesh(h gfx.MeshHandle, attribs int) {
	gl.BindVertexArray(uint32(h))
	for i := 0; i < attribs; i++ {
		gl.EnableVertexAttribArray(uint32(i))
	}
}

// UnbindMesh disables attributes 0..attribs-1 and unbinds the vertex array.
func (d *Device) UnbindMesh(attribs int) {
	for i := 0; i < attribs; i++ {
		gl.DisableVertexAttribArray(uint32(i))
	}
	gl.BindVertexArray(0)
}

// BindTexture binds h to texture unit unit.
func (d *Device) BindTexture(unit int, h gfx.TextureHandle) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, uint32(h))
}

// SetCulling toggles back-face culling.
func (d *Device) SetCulling(enabled bool) {
	if enabled {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
		return
	}
	gl.Disable(gl.CULL_FACE)
}

// SetDepthTest toggles depth testing with a less-than comparison.
func (d *Device) SetDepthTest(enabled bool) {
	if enabled {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(gl.LESS)
		return
	}
	gl.Disable(gl.DEPTH_TEST)
}

// Clear clears colour and depth, filling with the given colour.
func (d *Device) Clear(r, g, b float32) {
	gl.ClearColor(r, g, b, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Viewport maps rendering to a width×height drawable.
func (d *Device) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// DrawIndexed draws count indices of the bound mesh as triangles.
func (d *Device) DrawIndexed(count int32) {
	gl.DrawElementsWithOffset(gl.TRIANGLES, count, gl.UNSIGNED_INT, 0)
}

var _ gfx.Device = (*Device)(nil)
