package gfx

import (
	"errors"

	"cogentcore.org/core/math32"
)

// MatrixUniform is the name of the transform uniform read by MatrixVertexStage.
const MatrixUniform = "matrix"

var (
	ErrMissingVertexStage = errors.New("missing vertex stage")
	ErrEmptySource        = errors.New("empty source")
)

// Uniforms are the per-draw shader constants keyed by name.
type Uniforms map[string]Mat4

// EmptyUniforms binds nothing. Stages fall back to identity.
var EmptyUniforms Uniforms

// Mat4 returns the named matrix, or identity if it is not bound.
func (u Uniforms) Mat4(name string) Mat4 {
	if m, ok := u[name]; ok {
		return m
	}
	return Identity()
}

// VertexOut is the result of the vertex stage for one vertex.
type VertexOut struct {
	Clip  math32.Vector4
	Color [3]float32
}

// VertexStage transforms a single vertex.
type VertexStage func(v Vertex, u Uniforms) VertexOut

// MatrixVertexStage places the vertex at matrix * vec4(position, 0, 1) and
// passes its color through.
func MatrixVertexStage(v Vertex, u Uniforms) VertexOut {
	m := u.Mat4(MatrixUniform)
	return VertexOut{
		Clip:  math32.Vec4(v.Position[0], v.Position[1], 0, 1).MulMatrix4(&m),
		Color: v.Color,
	}
}

// ProgramSource is the vertex and fragment stage pair a Program is built from.
// Fragment is source text in the backend's shading language.
type ProgramSource struct {
	Vertex   VertexStage
	Fragment []byte
}

// Validate checks that both stages are present. It is the link step shared by
// all backends.
func (src ProgramSource) Validate() error {
	if src.Vertex == nil {
		return &ShaderCompileError{Stage: "vertex", Err: ErrMissingVertexStage}
	}
	if len(src.Fragment) == 0 {
		return &ShaderCompileError{Stage: "fragment", Err: ErrEmptySource}
	}
	return nil
}

// Program is a linked shader program. Handle holds the backend's compiled
// fragment stage.
type Program struct {
	vertex VertexStage
	handle any
}

// NewProgram links a validated source with the backend handle.
func NewProgram(src ProgramSource, handle any) (*Program, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	return &Program{vertex: src.Vertex, handle: handle}, nil
}

// Handle returns the backend-specific compiled fragment stage.
func (p *Program) Handle() any {
	return p.handle
}

// Shade runs the vertex stage over v.
func (p *Program) Shade(v Vertex, u Uniforms) VertexOut {
	return p.vertex(v, u)
}

// ClipToTarget maps a clip-space position to pixel coordinates on a target of
// the given size. Clip y points up, pixel y points down.
func ClipToTarget(clip math32.Vector4, width, height int) (x, y float32) {
	w := clip.W
	if w == 0 {
		w = 1
	}
	ndcX, ndcY := clip.X/w, clip.Y/w
	x = (ndcX + 1) / 2 * float32(width)
	y = (1 - ndcY) / 2 * float32(height)
	return x, y
}
