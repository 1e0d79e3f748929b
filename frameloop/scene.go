package frameloop

import "github.com/plus3/trispin/gfx"

// Triangle is the vertex data uploaded at setup.
var Triangle = []gfx.Vertex{
	{Position: [2]float32{-0.5, -0.5}, Color: [3]float32{1, 0, 0}},
	{Position: [2]float32{0, 0.5}, Color: [3]float32{0, 1, 0}},
	{Position: [2]float32{0.5, -0.25}, Color: [3]float32{0, 0, 1}},
}

// FragmentSource outputs the interpolated vertex color as an opaque pixel.
const FragmentSource = `//kage:unit pixels

package main

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	return vec4(color.rgb, 1)
}
`

// ProgramSource returns the vertex and fragment stages of the triangle
// program.
func ProgramSource() gfx.ProgramSource {
	return gfx.ProgramSource{
		Vertex:   gfx.MatrixVertexStage,
		Fragment: []byte(FragmentSource),
	}
}

// Scene is everything uploaded to the surface once at setup.
type Scene struct {
	Vertices *gfx.VertexBuffer
	Indices  gfx.NoIndices
	Program  *gfx.Program
}

func newScene(surface gfx.Surface) (*Scene, error) {
	vertices, err := surface.NewVertexBuffer(Triangle)
	if err != nil {
		return nil, err
	}

	program, err := surface.CompileProgram(ProgramSource())
	if err != nil {
		return nil, err
	}

	return &Scene{
		Vertices: vertices,
		Indices:  gfx.NoIndices{Primitive: gfx.TrianglesList},
		Program:  program,
	}, nil
}

// submit draws the scene once into a fresh frame. Any failure is returned as
// a *gfx.FrameSubmissionError.
func (s *Scene) submit(surface gfx.Surface, clear [4]float32, uniforms gfx.Uniforms) error {
	frame, err := surface.Draw()
	if err != nil {
		return &gfx.FrameSubmissionError{Op: "begin", Err: err}
	}

	frame.ClearColor(clear[0], clear[1], clear[2], clear[3])

	if err := frame.Draw(s.Vertices, s.Indices, s.Program, uniforms); err != nil {
		return &gfx.FrameSubmissionError{Op: "draw", Err: err}
	}

	if err := frame.Finish(); err != nil {
		return &gfx.FrameSubmissionError{Op: "finish", Err: err}
	}
	return nil
}
