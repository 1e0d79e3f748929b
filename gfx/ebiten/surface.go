// Package ebiten implements gfx.Surface on top of Ebitengine.
//
// Frames render into an offscreen target sized like the window. The event
// source copies the target to the screen with Present on every Ebitengine
// Draw callback. Programs pair a Go vertex stage with a Kage fragment shader,
// since Kage does not expose a programmable vertex stage.
package ebiten

import (
	"errors"
	"fmt"
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/trispin/gfx"
)

var ErrForeignProgram = errors.New("program was not compiled by an ebiten surface")

// Surface is a gfx.Surface backed by an offscreen *ebiten.Image.
type Surface struct {
	target *eb.Image
	width  int
	height int

	scratch []eb.Vertex
}

// NewSurface creates a surface with a target of the given size.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, &gfx.SetupError{
			Op:  "surface",
			Err: fmt.Errorf("invalid size %dx%d", width, height),
		}
	}

	return &Surface{
		target: eb.NewImage(width, height),
		width:  width,
		height: height,
	}, nil
}

// NewVertexBuffer keeps the vertices on the CPU. Ebitengine uploads vertex
// data with every draw, so there is nothing to allocate up front.
func (s *Surface) NewVertexBuffer(vertices []gfx.Vertex) (*gfx.VertexBuffer, error) {
	return gfx.NewVertexBuffer(vertices)
}

// CompileProgram compiles src.Fragment as a Kage shader.
func (s *Surface) CompileProgram(src gfx.ProgramSource) (*gfx.Program, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}

	shader, err := eb.NewShader(src.Fragment)
	if err != nil {
		return nil, &gfx.ShaderCompileError{Stage: "fragment", Err: err}
	}

	return gfx.NewProgram(src, shader)
}

func (s *Surface) Draw() (gfx.Frame, error) {
	return &frame{surface: s}, nil
}

// Resize replaces the target with a blank one of the new size. The next
// frame draws into it.
func (s *Surface) Resize(width, height int) {
	width, height = gfx.ClampSize(width, height)
	if width == s.width && height == s.height {
		return
	}

	s.target.Deallocate()
	s.target = eb.NewImage(width, height)
	s.width, s.height = width, height
}

func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Present copies the target onto screen, scaled to fit if the sizes differ.
func (s *Surface) Present(screen *eb.Image) {
	op := &eb.DrawImageOptions{}

	bounds := screen.Bounds()
	if bounds.Dx() != s.width || bounds.Dy() != s.height {
		op.GeoM.Scale(float64(bounds.Dx())/float64(s.width), float64(bounds.Dy())/float64(s.height))
		op.Filter = eb.FilterLinear
	}

	screen.DrawImage(s.target, op)
}

type frame struct {
	surface  *Surface
	finished bool
}

func (f *frame) ClearColor(r, g, b, a float32) {
	f.surface.target.Fill(colorFromFloats(r, g, b, a))
}

func (f *frame) Draw(vb *gfx.VertexBuffer, indices gfx.NoIndices, program *gfx.Program, uniforms gfx.Uniforms) error {
	if f.finished {
		return gfx.ErrFrameFinished
	}
	if err := gfx.CheckDraw(vb, program); err != nil {
		return err
	}

	shader, ok := program.Handle().(*eb.Shader)
	if !ok || shader == nil {
		return ErrForeignProgram
	}

	s := f.surface
	s.scratch = shadeVertices(s.scratch[:0], vb, program, uniforms, s.width, s.height)
	s.target.DrawTrianglesShader(s.scratch, indices.Indices(vb.Len()), shader, &eb.DrawTrianglesShaderOptions{})
	return nil
}

func (f *frame) Finish() error {
	if f.finished {
		return gfx.ErrFrameFinished
	}
	f.finished = true
	return nil
}

// shadeVertices runs the vertex stage over vb and appends the results to dst
// in target pixel coordinates.
func shadeVertices(dst []eb.Vertex, vb *gfx.VertexBuffer, program *gfx.Program, uniforms gfx.Uniforms, width, height int) []eb.Vertex {
	for _, v := range vb.All() {
		out := program.Shade(v, uniforms)
		x, y := gfx.ClipToTarget(out.Clip, width, height)
		dst = append(dst, eb.Vertex{
			DstX:   x,
			DstY:   y,
			ColorR: out.Color[0],
			ColorG: out.Color[1],
			ColorB: out.Color[2],
			ColorA: 1,
		})
	}
	return dst
}

func colorFromFloats(r, g, b, a float32) color.NRGBA {
	return color.NRGBA{R: unit8(r), G: unit8(g), B: unit8(b), A: unit8(a)}
}

func unit8(v float32) uint8 {
	return uint8(min(max(v, 0), 1)*255 + 0.5)
}
