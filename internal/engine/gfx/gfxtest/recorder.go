// Package gfxtest provides a recording gfx.Device and gfx.Program for tests.
package gfxtest

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sannhet/internal/engine/gfx"
)

// Call is one recorded device or program call.
type Call struct {
	Op   string
	Args []any
}

// String formats the call as Op(args...).
func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Op, c.Args)
}

// Recorder implements gfx.Device and records every call in order.
type Recorder struct {
	Calls []Call

	Meshes   map[gfx.MeshHandle]gfx.MeshData
	Textures map[gfx.TextureHandle]image.Rectangle

	Culling   bool
	DepthTest bool

	next uint32
}

// NewRecorder returns an empty recorder with culling enabled, the engine's resting state.
func NewRecorder() *Recorder {
	return &Recorder{
		Meshes:   make(map[gfx.MeshHandle]gfx.MeshData),
		Textures: make(map[gfx.TextureHandle]image.Rectangle),
		Culling:  true,
	}
}

func (r *Recorder) record(op string, args ...any) {
	r.Calls = append(r.Calls, Call{Op: op, Args: args})
}

// Count returns how many calls named op were recorded.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Ops returns the recorded operation names in order.
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Reset forgets recorded calls but keeps uploaded resources.
func (r *Recorder) Reset() {
	r.Calls = nil
}

// The gfx.Device methods record themselves and never fail.

func (r *Recorder) UploadMesh(data gfx.MeshData) (gfx.MeshHandle, error) {
	if err := data.Validate(); err != nil {
		return 0, err
	}
	r.next++
	h := gfx.MeshHandle(r.next)
	r.Meshes[h] = data
	r.record("UploadMesh", h)
	return h, nil
}

func (r *Recorder) UploadTexture(img *image.RGBA, opts gfx.TextureOptions) (gfx.TextureHandle, error) {
	r.next++
	h := gfx.TextureHandle(r.next)
	r.Textures[h] = img.Bounds()
	r.record("UploadTexture", h)
	return h, nil
}

func (r *Recorder) DeleteMesh(h gfx.MeshHandle) {
	delete(r.Meshes, h)
	r.record("DeleteMesh", h)
}

func (r *Recorder) DeleteTexture(h gfx.TextureHandle) {
	delete(r.Textures, h)
	r.record("DeleteTexture", h)
}

func (r *Recorder) BindMesh(h gfx.MeshHandle, attribs int) { r.record("BindMesh", h, attribs) }
func (r *Recorder) UnbindMesh(attribs int)                 { r.record("UnbindMesh", attribs) }
func (r *Recorder) BindTexture(unit int, h gfx.TextureHandle) {
	r.record("BindTexture", unit, h)
}

func (r *Recorder) SetCulling(enabled bool) {
	r.Culling = enabled
	r.record("SetCulling", enabled)
}

func (r *Recorder) SetDepthTest(enabled bool) {
	r.DepthTest = enabled
	r.record("SetDepthTest", enabled)
}

func (r *Recorder) Clear(cr, cg, cb float32)   { r.record("Clear", cr, cg, cb) }
func (r *Recorder) Viewport(width, height int) { r.record("Viewport", width, height) }
func (r *Recorder) DrawIndexed(count int32)    { r.record("DrawIndexed", count) }

// Program implements gfx.Program and keeps the last value of every uniform.
// When Log is set, uniform writes and Use/Unuse are also appended to it.
type Program struct {
	Name   string
	Values map[string]any
	Sets   map[string]int
	InUse  bool
	Freed  bool
	Log    *Recorder
}

// NewProgram returns a program that records into log (which may be nil).
func NewProgram(name string, log *Recorder) *Program {
	return &Program{
		Name:   name,
		Values: make(map[string]any),
		Sets:   make(map[string]int),
		Log:    log,
	}
}

func (p *Program) set(name string, v any) {
	p.Values[name] = v
	p.Sets[name]++
	if p.Log != nil {
		p.Log.record("Uniform", p.Name, name)
	}
}

// Uniform setters store the value under its name.

func (p *Program) SetFloat(name string, v float32)   { p.set(name, v) }
func (p *Program) SetInt(name string, v int32)       { p.set(name, v) }
func (p *Program) SetBool(name string, v bool)       { p.set(name, v) }
func (p *Program) SetVec2(name string, v mgl32.Vec2) { p.set(name, v) }
func (p *Program) SetVec3(name string, v mgl32.Vec3) { p.set(name, v) }
func (p *Program) SetMat4(name string, v mgl32.Mat4) { p.set(name, v) }
func (p *Program) SetMat4Array(name string, v []mgl32.Mat4) {
	p.set(name, append([]mgl32.Mat4(nil), v...))
}

func (p *Program) Use() {
	p.InUse = true
	if p.Log != nil {
		p.Log.record("Use", p.Name)
	}
}

func (p *Program) Unuse() {
	p.InUse = false
	if p.Log != nil {
		p.Log.record("Unuse", p.Name)
	}
}

func (p *Program) Delete() {
	p.Freed = true
	if p.Log != nil {
		p.Log.record("DeleteProgram", p.Name)
	}
}

var (
	_ gfx.Device  = (*Recorder)(nil)
	_ gfx.Program = (*Program)(nil)
)
