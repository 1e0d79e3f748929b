package frameloop

import "github.com/plus3/trispin/gfx"

// TimeSystem advances the animation clock by one step.
type TimeSystem struct{}

func (s *TimeSystem) Execute(frame *UpdateFrame) {
	frame.Time.Advance()
}

// TransformSystem derives the frame transform from the current time.
type TransformSystem struct{}

func (s *TransformSystem) Execute(frame *UpdateFrame) {
	frame.Transform = gfx.SpinTransform(frame.Time.T)
}

// DrawSystem submits the scene with the frame transform bound to the matrix
// uniform.
type DrawSystem struct {
	Submitted int64
}

func (s *DrawSystem) Execute(frame *UpdateFrame) {
	uniforms := gfx.Uniforms{gfx.MatrixUniform: frame.Transform}

	if err := frame.Scene.submit(frame.Surface, frame.ClearColor, uniforms); err != nil {
		frame.Fail(err)
		return
	}
	s.Submitted++
}
