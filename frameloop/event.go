package frameloop

//go:generate go tool stringer -type=EventKind -trimprefix=Event
//go:generate go tool stringer -type=Action -trimprefix=Action

// EventKind identifies a window lifecycle event.
type EventKind uint8

const (
	EventUnknown EventKind = iota
	EventCloseRequested
	EventResized
	EventRedrawRequested
	EventAboutToWait
)

// Event is delivered to the loop by the event source. Width and Height are
// only set for EventResized.
type Event struct {
	Kind   EventKind
	Width  int
	Height int
}

// Resized returns an EventResized for the given outside size.
func Resized(width, height int) Event {
	return Event{Kind: EventResized, Width: width, Height: height}
}

// Action tells the event source what to do after an event was handled.
type Action uint8

const (
	ActionContinue Action = iota
	ActionExit
)
