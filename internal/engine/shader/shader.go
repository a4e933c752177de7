// Package shader compiles GLSL programs and exposes them as gfx.Program.
package shader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sannhet/internal/engine/gfx"
)

var (
	// ErrCompile is wrapped by every shader compilation failure.
	ErrCompile = errors.New("shader compile failed")
	// ErrLink is wrapped by every program link failure.
	ErrLink = errors.New("shader link failed")
)

// Attribute locations bound before linking. The index is the location.
var (
	StaticAttributes  = []string{"position", "textureCoordinates", "normal"}
	SkinnedAttributes = []string{"position", "textureCoordinates", "normal", "jointIndices", "weights"}
)

// Program is a linked GL program with a per-name uniform location cache.
type Program struct {
	name      string
	id        uint32
	locations map[string]int32
}

// Compile compiles and links a program, binding attributes[i] to location i.
func Compile(name, vertexSrc, fragmentSrc string, attributes []string) (*Program, error) {
	vert, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	defer gl.DeleteShader(vert)

	frag, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	defer gl.DeleteShader(frag)

	id := gl.CreateProgram()
	gl.AttachShader(id, vert)
	gl.AttachShader(id, frag)
	for loc, attr := range attributes {
		gl.BindAttribLocation(id, uint32(loc), gl.Str(attr+"\x00"))
	}
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := programLog(id)
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("%s: %w: %s", name, ErrLink, log)
	}
	gl.DetachShader(id, vert)
	gl.DetachShader(id, frag)

	return &Program{
		name:      name,
		id:        id,
		locations: make(map[string]int32),
	}, nil
}

func compileShader(source string, shaderType uint32, kind string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %w: %s", kind, ErrCompile, strings.TrimRight(log, "\x00"))
	}

	return shader, nil
}

func programLog(id uint32) string {
	var logLen int32
	gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLen)
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetProgramInfoLog(id, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

// Name returns the name the program was compiled under.
func (p *Program) Name() string { return p.name }

// location looks up and caches a uniform location.
// Unknown or optimized-out uniforms resolve to -1, which GL ignores.
func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

// Use makes p the active program; Unuse clears it.
func (p *Program) Use()   { gl.UseProgram(p.id) }
func (p *Program) Unuse() { gl.UseProgram(0) }

// Delete stops and frees the program.
func (p *Program) Delete() {
	gl.UseProgram(0)
	gl.DeleteProgram(p.id)
	p.id = 0
}

// SetFloat uploads a float uniform.
func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.location(name), v)
}

// SetInt uploads an int uniform, also used for sampler units.
func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.location(name), v)
}

// SetBool uploads b as a float (1 or 0).
func (p *Program) SetBool(name string, v bool) {
	var f float32
	if v {
		f = 1
	}
	gl.Uniform1f(p.location(name), f)
}

// SetVec2 uploads a vec2 uniform.
func (p *Program) SetVec2(name string, v mgl32.Vec2) {
	gl.Uniform2f(p.location(name), v[0], v[1])
}

// SetVec3 uploads a vec3 uniform.
func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(p.location(name), v[0], v[1], v[2])
}

// SetMat4 uploads a mat4 uniform.
func (p *Program) SetMat4(name string, v mgl32.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &v[0])
}

// SetMat4Array uploads name[0..len(v)-1].
func (p *Program) SetMat4Array(name string, v []mgl32.Mat4) {
	if len(v) == 0 {
		return
	}
	gl.UniformMatrix4fv(p.location(name+"[0]"), int32(len(v)), false, &v[0][0])
}

var _ gfx.Program = (*Program)(nil)
