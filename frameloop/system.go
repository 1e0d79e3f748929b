package frameloop

// System is one stage of the render step. Systems run in registration order
// over a shared UpdateFrame and may keep their own state between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
