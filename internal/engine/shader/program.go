package shader

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/calegray/deskscene/internal/logger"
	"go.uber.org/zap"
)

// Program is a linked GL program that writes uniforms by name. Uniform
// locations are looked up once and cached; writes to names the program
// does not declare are dropped after a single warning.
type Program struct {
	id        uint32
	locations map[string]int32
	missing   map[string]bool
}

// NewProgram compiles and links the shader pair.
func NewProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Program{
		id:        id,
		locations: make(map[string]int32),
		missing:   make(map[string]bool),
	}, nil
}

// Use makes the program current.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// ID returns the GL program name.
func (p *Program) ID() uint32 {
	return p.id
}

// Destroy deletes the program.
func (p *Program) Destroy() {
	gl.DeleteProgram(p.id)
	p.id = 0
}

func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.locations[name] = loc
	if loc < 0 && !p.missing[name] {
		p.missing[name] = true
		logger.Warn("Uniform not active in program",
			zap.String("uniform", name),
			zap.Uint32("program", p.id))
	}
	return loc
}

func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	if loc := p.location(name); loc >= 0 {
		gl.Uniform1i(loc, i)
	}
}

func (p *Program) SetInt(name string, v int32) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform1i(loc, v)
	}
}

func (p *Program) SetFloat(name string, v float32) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform1f(loc, v)
	}
}

func (p *Program) SetVec2(name string, v mgl32.Vec2) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform2f(loc, v[0], v[1])
	}
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform3f(loc, v[0], v[1], v[2])
	}
}

func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
	}
}

func (p *Program) SetMat4(name string, v mgl32.Mat4) {
	if loc := p.location(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, &v[0])
	}
}

// SetSampler binds the named sampler uniform to a texture unit.
func (p *Program) SetSampler(name string, unit int32) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform1i(loc, unit)
	}
}
