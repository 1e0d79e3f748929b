// Package gfxtest provides a gfx.Surface that records what is drawn instead of
// talking to a GPU.
package gfxtest

import "github.com/plus3/trispin/gfx"

// DrawCall is one recorded Frame.Draw.
type DrawCall struct {
	Vertices   int
	Primitive  gfx.PrimitiveType
	Primitives int
	Uniforms   gfx.Uniforms
	Clear      [4]float32
	Shaded     []gfx.VertexOut
}

// Recorder is an in-memory gfx.Surface. Set one of the Fail fields to make the
// matching operation return that error.
type Recorder struct {
	Width, Height int

	Buffers  int
	Programs int
	Frames   int
	Presents int
	Clears   [][4]float32
	Draws    []DrawCall
	Resizes  [][2]int

	FailAllocate error
	FailCompile  error
	FailBegin    error
	FailDraw     error
	FailFinish   error
}

// NewRecorder returns a recorder with a target of the given size.
func NewRecorder(width, height int) *Recorder {
	w, h := gfx.ClampSize(width, height)
	return &Recorder{Width: w, Height: h}
}

// Reset drops everything recorded so far, keeping the target size.
func (r *Recorder) Reset() {
	r.Frames = 0
	r.Presents = 0
	r.Clears = nil
	r.Draws = nil
	r.Resizes = nil
}

func (r *Recorder) NewVertexBuffer(vertices []gfx.Vertex) (*gfx.VertexBuffer, error) {
	if r.FailAllocate != nil {
		return nil, &gfx.BufferAllocationError{Len: len(vertices), Err: r.FailAllocate}
	}
	buf, err := gfx.NewVertexBuffer(vertices)
	if err != nil {
		return nil, err
	}
	r.Buffers++
	return buf, nil
}

func (r *Recorder) CompileProgram(src gfx.ProgramSource) (*gfx.Program, error) {
	if r.FailCompile != nil {
		return nil, &gfx.ShaderCompileError{Stage: "fragment", Err: r.FailCompile}
	}
	program, err := gfx.NewProgram(src, string(src.Fragment))
	if err != nil {
		return nil, err
	}
	r.Programs++
	return program, nil
}

func (r *Recorder) Draw() (gfx.Frame, error) {
	if r.FailBegin != nil {
		return nil, r.FailBegin
	}
	r.Frames++
	return &frame{recorder: r}, nil
}

func (r *Recorder) Resize(width, height int) {
	r.Width, r.Height = gfx.ClampSize(width, height)
	r.Resizes = append(r.Resizes, [2]int{r.Width, r.Height})
}

func (r *Recorder) Size() (int, int) {
	return r.Width, r.Height
}

type frame struct {
	recorder *Recorder
	clear    [4]float32
	finished bool
}

func (f *frame) ClearColor(r, g, b, a float32) {
	f.clear = [4]float32{r, g, b, a}
	f.recorder.Clears = append(f.recorder.Clears, f.clear)
}

func (f *frame) Draw(vb *gfx.VertexBuffer, indices gfx.NoIndices, program *gfx.Program, uniforms gfx.Uniforms) error {
	if f.finished {
		return gfx.ErrFrameFinished
	}
	if err := gfx.CheckDraw(vb, program); err != nil {
		return err
	}
	if f.recorder.FailDraw != nil {
		return f.recorder.FailDraw
	}

	call := DrawCall{
		Vertices:   vb.Len(),
		Primitive:  indices.Primitive,
		Primitives: indices.Primitive.Primitives(vb.Len()),
		Uniforms:   uniforms,
		Clear:      f.clear,
	}
	for _, v := range vb.All() {
		call.Shaded = append(call.Shaded, program.Shade(v, uniforms))
	}
	f.recorder.Draws = append(f.recorder.Draws, call)
	return nil
}

func (f *frame) Finish() error {
	if f.finished {
		return gfx.ErrFrameFinished
	}
	f.finished = true
	if f.recorder.FailFinish != nil {
		return f.recorder.FailFinish
	}
	f.recorder.Presents++
	return nil
}
