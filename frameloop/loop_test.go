package frameloop_test

import (
	"errors"
	"log/slog"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/plus3/trispin/frameloop"
	"github.com/plus3/trispin/gfx"
	"github.com/plus3/trispin/gfx/gfxtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietConfig() frameloop.Config {
	cfg := frameloop.DefaultConfig()
	cfg.Logger = slog.New(slog.DiscardHandler)
	return cfg
}

func newLoop(t *testing.T) (*frameloop.Loop, *gfxtest.Recorder) {
	t.Helper()

	surface := gfxtest.NewRecorder(800, 480)
	loop, err := frameloop.New(surface, quietConfig())
	require.NoError(t, err)
	return loop, surface
}

func TestSetupPrimesOneFrame(t *testing.T) {
	loop, surface := newLoop(t)

	assert.Equal(t, 1, surface.Buffers)
	assert.Equal(t, 1, surface.Programs)
	assert.Equal(t, 1, surface.Frames)
	assert.Equal(t, 1, surface.Presents)
	require.Len(t, surface.Draws, 1)

	call := surface.Draws[0]
	assert.Equal(t, 3, call.Vertices)
	assert.Equal(t, gfx.TrianglesList, call.Primitive)
	assert.Equal(t, 1, call.Primitives)
	assert.Empty(t, call.Uniforms)
	assert.Equal(t, [4]float32{0, 0, 1, 1}, call.Clear)

	for i, out := range call.Shaded {
		v := frameloop.Triangle[i]
		assert.Equal(t, math32.Vec4(v.Position[0], v.Position[1], 0, 1), out.Clip)
		assert.Equal(t, v.Color, out.Color)
	}

	assert.Zero(t, loop.Time())
	assert.Equal(t, gfx.Identity(), loop.Transform())
	assert.Zero(t, loop.Frames())
}

func TestRenderStepDrawsOnce(t *testing.T) {
	loop, surface := newLoop(t)
	surface.Reset()

	action, err := loop.Handle(frameloop.Event{Kind: frameloop.EventRedrawRequested})
	require.NoError(t, err)
	assert.Equal(t, frameloop.ActionContinue, action)

	require.Len(t, surface.Draws, 1)
	assert.Equal(t, 1, surface.Presents)

	call := surface.Draws[0]
	assert.Equal(t, 3, call.Vertices)
	assert.Equal(t, 1, call.Primitives)
	assert.Equal(t, [4]float32{0, 0, 1, 1}, call.Clear)

	require.Contains(t, call.Uniforms, gfx.MatrixUniform)
	assert.Equal(t, gfx.SpinTransform(loop.Time()), call.Uniforms[gfx.MatrixUniform])
	assert.Equal(t, gfx.SpinTransform(loop.Time()), loop.Transform())
	assert.InDelta(t, 0.02, loop.Time(), 1e-6)
	assert.Equal(t, int64(1), loop.Frames())
}

func TestTimeAccumulates(t *testing.T) {
	loop, _ := newLoop(t)

	prev := loop.Time()
	for i := 0; i < 20; i++ {
		require.NoError(t, loop.RenderStep())
		assert.Greater(t, loop.Time(), prev)
		prev = loop.Time()
	}

	assert.InDelta(t, 0.4, loop.Time(), 1e-6)
	assert.Equal(t, int64(20), loop.Frames())
}

func TestTimeStateAdvance(t *testing.T) {
	ts := frameloop.TimeState{Step: 0.02}
	for i := 0; i < 20; i++ {
		ts.Advance()
	}
	assert.InDelta(t, 0.4, ts.T, 1e-6)
}

func TestResizeDoesNotDraw(t *testing.T) {
	loop, surface := newLoop(t)
	surface.Reset()

	action, err := loop.Handle(frameloop.Resized(800, 600))
	require.NoError(t, err)
	assert.Equal(t, frameloop.ActionContinue, action)

	w, h := surface.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.Equal(t, [][2]int{{800, 600}}, surface.Resizes)
	assert.Empty(t, surface.Draws)
	assert.Zero(t, surface.Frames)
	assert.False(t, loop.RedrawPending())
}

func TestCloseStopsRendering(t *testing.T) {
	loop, surface := newLoop(t)
	surface.Reset()

	_, err := loop.Handle(frameloop.Event{Kind: frameloop.EventAboutToWait})
	require.NoError(t, err)

	action, err := loop.Handle(frameloop.Event{Kind: frameloop.EventCloseRequested})
	require.NoError(t, err)
	assert.Equal(t, frameloop.ActionExit, action)
	assert.True(t, loop.Exited())
	assert.False(t, loop.RedrawPending())

	action, err = loop.Handle(frameloop.Event{Kind: frameloop.EventRedrawRequested})
	require.NoError(t, err)
	assert.Equal(t, frameloop.ActionExit, action)

	assert.Empty(t, surface.Draws)
	assert.Zero(t, loop.Time())
}

func TestAboutToWaitRequestsRedraw(t *testing.T) {
	loop, surface := newLoop(t)
	surface.Reset()

	assert.False(t, loop.RedrawPending())

	_, err := loop.Handle(frameloop.Event{Kind: frameloop.EventAboutToWait})
	require.NoError(t, err)
	_, err = loop.Handle(frameloop.Event{Kind: frameloop.EventAboutToWait})
	require.NoError(t, err)

	assert.True(t, loop.RedrawPending())
	assert.Empty(t, surface.Draws)

	assert.True(t, loop.TakeRedraw())
	assert.False(t, loop.TakeRedraw())
}

func TestRedrawClearsPendingRequest(t *testing.T) {
	loop, _ := newLoop(t)

	_, err := loop.Handle(frameloop.Event{Kind: frameloop.EventAboutToWait})
	require.NoError(t, err)
	_, err = loop.Handle(frameloop.Event{Kind: frameloop.EventRedrawRequested})
	require.NoError(t, err)

	assert.False(t, loop.RedrawPending())
}

func TestUnknownEventsAreIgnored(t *testing.T) {
	loop, surface := newLoop(t)
	surface.Reset()

	for _, kind := range []frameloop.EventKind{frameloop.EventUnknown, 99} {
		action, err := loop.Handle(frameloop.Event{Kind: kind})
		require.NoError(t, err)
		assert.Equal(t, frameloop.ActionContinue, action)
	}

	assert.Empty(t, surface.Draws)
	assert.Empty(t, surface.Resizes)
	assert.False(t, loop.RedrawPending())
}

func TestSetupErrors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("buffer allocation", func(t *testing.T) {
		surface := gfxtest.NewRecorder(800, 480)
		surface.FailAllocate = boom

		_, err := frameloop.New(surface, quietConfig())

		var allocErr *gfx.BufferAllocationError
		require.True(t, errors.As(err, &allocErr))
		assert.ErrorIs(t, err, boom)
		assert.Zero(t, surface.Programs)
		assert.Zero(t, surface.Frames)
	})

	t.Run("shader compile", func(t *testing.T) {
		surface := gfxtest.NewRecorder(800, 480)
		surface.FailCompile = boom

		_, err := frameloop.New(surface, quietConfig())

		var compileErr *gfx.ShaderCompileError
		require.True(t, errors.As(err, &compileErr))
		assert.ErrorIs(t, err, boom)
		assert.Zero(t, surface.Frames)
	})

	t.Run("prime pass", func(t *testing.T) {
		surface := gfxtest.NewRecorder(800, 480)
		surface.FailFinish = boom

		_, err := frameloop.New(surface, quietConfig())

		var submitErr *gfx.FrameSubmissionError
		require.True(t, errors.As(err, &submitErr))
		assert.Equal(t, "finish", submitErr.Op)
	})
}

func TestFrameSubmissionErrors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name string
		fail func(r *gfxtest.Recorder)
		op   string
	}{
		{"begin", func(r *gfxtest.Recorder) { r.FailBegin = boom }, "begin"},
		{"draw", func(r *gfxtest.Recorder) { r.FailDraw = boom }, "draw"},
		{"finish", func(r *gfxtest.Recorder) { r.FailFinish = boom }, "finish"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loop, surface := newLoop(t)
			tt.fail(surface)

			action, err := loop.Handle(frameloop.Event{Kind: frameloop.EventRedrawRequested})

			assert.Equal(t, frameloop.ActionExit, action)
			var submitErr *gfx.FrameSubmissionError
			require.True(t, errors.As(err, &submitErr))
			assert.Equal(t, tt.op, submitErr.Op)
			assert.ErrorIs(t, err, boom)
			assert.Zero(t, loop.Frames())
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	surface := gfxtest.NewRecorder(10, 10)
	loop, err := frameloop.New(surface, frameloop.Config{Logger: slog.New(slog.DiscardHandler)})
	require.NoError(t, err)

	require.NoError(t, loop.RenderStep())
	assert.InDelta(t, frameloop.DefaultStep, loop.Time(), 1e-9)

	blue := [4]float32{0, 0, 1, 1}
	assert.Equal(t, [][4]float32{blue, blue}, surface.Clears)
	require.Len(t, surface.Draws, 2)
	assert.Equal(t, blue, surface.Draws[1].Clear)
}

func TestEventStrings(t *testing.T) {
	assert.Equal(t, "CloseRequested", frameloop.EventCloseRequested.String())
	assert.Equal(t, "AboutToWait", frameloop.EventAboutToWait.String())
	assert.Equal(t, "EventKind(9)", frameloop.EventKind(9).String())
	assert.Equal(t, "Exit", frameloop.ActionExit.String())
}
