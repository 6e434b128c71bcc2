package core

// EventKind tags a pointer event.
type EventKind int

const (
	EventPointerDown EventKind = iota
	EventPointerMove
	EventPointerUp
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPointerDown:
		return "PointerDown"
	case EventPointerMove:
		return "PointerMove"
	case EventPointerUp:
		return "PointerUp"
	default:
		return "Unknown"
	}
}

// Event is a raw pointer event in canvas coordinates.
type Event struct {
	Kind EventKind
	X, Y float64
}

// PointerDown builds a pointer-down event at (x, y).
func PointerDown(x, y float64) Event {
	return Event{Kind: EventPointerDown, X: x, Y: y}
}

// PointerMove builds a pointer-move event at (x, y).
func PointerMove(x, y float64) Event {
	return Event{Kind: EventPointerMove, X: x, Y: y}
}

// PointerUp builds a pointer-up event at (x, y).
func PointerUp(x, y float64) Event {
	return Event{Kind: EventPointerUp, X: x, Y: y}
}

// InputFrame collects the events delivered between two frames.
// Hosts push events as they arrive and drain them once per frame,
// before the scene is updated, preserving arrival order.
type InputFrame struct {
	events []Event
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{events: make([]Event, 0, 8)}
}

// Push appends an event for the next frame.
func (f *InputFrame) Push(ev Event) {
	f.events = append(f.events, ev)
}

// Len returns the number of queued events.
func (f InputFrame) Len() int {
	return len(f.events)
}

// Drain calls fn for every queued event in arrival order and empties the frame.
func (f *InputFrame) Drain(fn func(Event)) {
	for i := 0; i < len(f.events); i++ {
		fn(f.events[i])
	}
	f.events = f.events[:0]
}

// Clear drops all queued events.
func (f *InputFrame) Clear() {
	f.events = f.events[:0]
}
