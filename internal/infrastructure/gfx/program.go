package gfx

import "github.com/go-gl/mathgl/mgl32"

// ProgramKind selects the shader a backend compiles for a Program.
type ProgramKind int

const (
	// ProgramQuad samples one texture per quad, multiplied by a tint.
	ProgramQuad ProgramKind = iota
	// ProgramText draws glyph runs from a font atlas.
	ProgramText
)

func (k ProgramKind) String() string {
	switch k {
	case ProgramQuad:
		return "quad"
	case ProgramText:
		return "text"
	default:
		return "unknown"
	}
}

// Program is the CPU side of a shader program: its kind and the projection
// and view uniforms. Backends keep their compiled handles keyed by *Program.
type Program struct {
	Kind       ProgramKind
	Projection mgl32.Mat4
	View       mgl32.Mat4

	spanW, spanH float32
}

// NewProgram returns a program with identity uniforms.
func NewProgram(kind ProgramKind) *Program {
	return &Program{
		Kind:       kind,
		Projection: mgl32.Ident4(),
		View:       mgl32.Ident4(),
	}
}

// SetOrtho loads an orthographic projection spanning [0,w] x [0,h] with the
// origin in the top-left corner and y growing downwards.
func (p *Program) SetOrtho(w, h int) {
	p.spanW, p.spanH = float32(w), float32(h)
	p.Projection = mgl32.Ortho2D(0, p.spanW, p.spanH, 0)
}

// Span returns the extent of the last orthographic projection.
func (p *Program) Span() mgl32.Vec2 {
	return mgl32.Vec2{p.spanW, p.spanH}
}

// ResetView restores the identity view matrix.
func (p *Program) ResetView() {
	p.View = mgl32.Ident4()
}

// MVP combines the uniforms with a model matrix.
func (p *Program) MVP(model mgl32.Mat4) mgl32.Mat4 {
	return p.Projection.Mul4(p.View).Mul4(model)
}
