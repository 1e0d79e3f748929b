package frameloop

import "github.com/plus3/trispin/gfx"

// UpdateFrame is the state shared by the systems of a single render step.
type UpdateFrame struct {
	Time       *TimeState
	Transform  gfx.Mat4
	Scene      *Scene
	Surface    gfx.Surface
	ClearColor [4]float32

	err error
}

func newUpdateFrame(l *Loop) *UpdateFrame {
	return &UpdateFrame{
		Time:       &l.time,
		Transform:  l.transform,
		Scene:      l.scene,
		Surface:    l.surface,
		ClearColor: l.cfg.ClearColor,
	}
}

// Fail records err as the reason the frame could not be completed. Systems
// after the failing one do not run. Only the first error is kept.
func (f *UpdateFrame) Fail(err error) {
	if f.err == nil {
		f.err = err
	}
}

// Err returns the error recorded by Fail, if any.
func (f *UpdateFrame) Err() error {
	return f.err
}
