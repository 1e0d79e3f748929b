// Package gfx defines the display surface the frame loop draws through: vertex
// buffers, shader programs, uniforms and the per-frame draw contract.
// Backends such as gfx/ebiten implement Surface and Frame.
package gfx

import "errors"

var (
	ErrFrameFinished = errors.New("frame already finished")
	ErrNilResource   = errors.New("nil vertex buffer or program")
)

// Surface owns the GPU context and the presentation target.
type Surface interface {
	// NewVertexBuffer uploads vertices. It returns a *BufferAllocationError
	// on failure.
	NewVertexBuffer(vertices []Vertex) (*VertexBuffer, error)

	// CompileProgram compiles and links src. It returns a
	// *ShaderCompileError on failure.
	CompileProgram(src ProgramSource) (*Program, error)

	// Draw begins a new frame on the presentation target.
	Draw() (Frame, error)

	// Resize changes the presentation target size. Non-positive dimensions
	// are clamped to one pixel.
	Resize(width, height int)

	// Size returns the presentation target size.
	Size() (width, height int)
}

// Frame is a single frame being drawn. It must not be used after Finish.
type Frame interface {
	ClearColor(r, g, b, a float32)
	Draw(vb *VertexBuffer, indices NoIndices, program *Program, uniforms Uniforms) error
	Finish() error
}

// ClampSize clamps a requested target size to at least one pixel per side.
func ClampSize(width, height int) (int, int) {
	return max(width, 1), max(height, 1)
}

// CheckDraw validates the arguments common to every Frame.Draw.
func CheckDraw(vb *VertexBuffer, program *Program) error {
	if vb == nil || program == nil {
		return ErrNilResource
	}
	return nil
}
