package gfx

import "fmt"

// SetupError reports a failure to create the window, context or surface.
type SetupError struct {
	Op  string
	Err error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("setup %s: %v", e.Op, e.Err)
}

func (e *SetupError) Unwrap() error { return e.Err }

// ShaderCompileError reports a shader stage that failed to compile or a
// program that failed to link.
type ShaderCompileError struct {
	Stage string
	Err   error
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("compile %s shader: %v", e.Stage, e.Err)
}

func (e *ShaderCompileError) Unwrap() error { return e.Err }

// BufferAllocationError reports a vertex buffer that could not be created.
type BufferAllocationError struct {
	Len int
	Err error
}

func (e *BufferAllocationError) Error() string {
	return fmt.Sprintf("allocate vertex buffer of %d vertices: %v", e.Len, e.Err)
}

func (e *BufferAllocationError) Unwrap() error { return e.Err }

// FrameSubmissionError reports a failure while beginning, drawing or
// finishing a frame.
type FrameSubmissionError struct {
	Op  string
	Err error
}

func (e *FrameSubmissionError) Error() string {
	return fmt.Sprintf("frame %s: %v", e.Op, e.Err)
}

func (e *FrameSubmissionError) Unwrap() error { return e.Err }
