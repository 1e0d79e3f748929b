// Package frameloop drives a rotating, oscillating triangle through a
// gfx.Surface. A Loop is created once per window, handles window events one
// at a time, and submits exactly one draw per redraw.
//
// A Loop is not safe for concurrent use; the event source must call it from
// the goroutine that owns the surface.
package frameloop

import (
	"log/slog"

	"github.com/kamstrup/intmap"
	"github.com/plus3/trispin/gfx"
)

type handler func(l *Loop, ev Event) (Action, error)

var handlers = func() *intmap.Map[EventKind, handler] {
	m := intmap.New[EventKind, handler](4)
	m.Put(EventCloseRequested, (*Loop).handleClose)
	m.Put(EventResized, (*Loop).handleResize)
	m.Put(EventRedrawRequested, (*Loop).handleRedraw)
	m.Put(EventAboutToWait, (*Loop).handleAboutToWait)
	return m
}()

// Loop owns the scene, the animation clock and the render schedule.
type Loop struct {
	cfg     Config
	log     *slog.Logger
	surface gfx.Surface
	scene   *Scene

	time      TimeState
	transform gfx.Mat4

	scheduler *Scheduler
	draws     *DrawSystem

	redrawPending bool
	exited        bool
}

// New uploads the triangle, compiles its program and draws one frame with no
// uniforms bound so the target has content before the first redraw. Errors
// are one of *gfx.BufferAllocationError, *gfx.ShaderCompileError or
// *gfx.FrameSubmissionError and should be treated as fatal.
func New(surface gfx.Surface, cfg Config) (*Loop, error) {
	cfg = cfg.withDefaults()

	scene, err := newScene(surface)
	if err != nil {
		return nil, err
	}

	if err := scene.submit(surface, cfg.ClearColor, gfx.EmptyUniforms); err != nil {
		return nil, err
	}

	l := &Loop{
		cfg:       cfg,
		log:       cfg.Logger,
		surface:   surface,
		scene:     scene,
		time:      TimeState{Step: cfg.Step},
		transform: gfx.Identity(),
		scheduler: NewScheduler(),
		draws:     &DrawSystem{},
	}

	l.scheduler.Register(&TimeSystem{})
	l.scheduler.Register(&TransformSystem{})
	l.scheduler.Register(l.draws)

	width, height := surface.Size()
	l.log.Info("frame loop ready", "vertices", scene.Vertices.Len(), "width", width, "height", height)
	return l, nil
}

// Handle processes one event. Unknown events are ignored. After an
// EventCloseRequested every call returns ActionExit and does nothing.
func (l *Loop) Handle(ev Event) (Action, error) {
	if l.exited {
		return ActionExit, nil
	}

	h, ok := handlers.Get(ev.Kind)
	if !ok {
		return ActionContinue, nil
	}
	return h(l, ev)
}

func (l *Loop) handleClose(Event) (Action, error) {
	l.exited = true
	l.redrawPending = false
	l.log.Info("close requested", "t", l.time.T, "frames", l.draws.Submitted)
	return ActionExit, nil
}

func (l *Loop) handleResize(ev Event) (Action, error) {
	l.surface.Resize(ev.Width, ev.Height)
	l.log.Debug("resized", "width", ev.Width, "height", ev.Height)
	return ActionContinue, nil
}

func (l *Loop) handleRedraw(Event) (Action, error) {
	l.redrawPending = false
	if err := l.RenderStep(); err != nil {
		return ActionExit, err
	}
	return ActionContinue, nil
}

func (l *Loop) handleAboutToWait(Event) (Action, error) {
	l.redrawPending = true
	return ActionContinue, nil
}

// RenderStep advances time by one step, recomputes the transform and submits
// one draw. A failure is a *gfx.FrameSubmissionError.
func (l *Loop) RenderStep() error {
	frame := newUpdateFrame(l)
	err := l.scheduler.Once(frame)
	l.transform = frame.Transform
	return err
}

// RedrawPending reports whether a redraw was requested and not yet handled.
func (l *Loop) RedrawPending() bool {
	return l.redrawPending
}

// TakeRedraw clears a pending redraw request and reports whether there was
// one.
func (l *Loop) TakeRedraw() bool {
	pending := l.redrawPending
	l.redrawPending = false
	return pending
}

// Exited reports whether the loop has handled EventCloseRequested.
func (l *Loop) Exited() bool {
	return l.exited
}

// Time returns the current animation time.
func (l *Loop) Time() float32 {
	return l.time.T
}

// Transform returns the transform used by the most recent render step.
func (l *Loop) Transform() gfx.Mat4 {
	return l.transform
}

// Frames returns how many render steps submitted a draw.
func (l *Loop) Frames() int64 {
	return l.draws.Submitted
}

// Stats returns execution statistics for the render step systems.
func (l *Loop) Stats() *SchedulerStats {
	return l.scheduler.GetStats()
}
