package pane

import "github.com/hajimehoshi/ebiten/v2"

// Event is a single input or synthetic notification routed through the window
// tree. It is a tagged union over [EventKind]: only the fields relevant to a
// kind are populated. Pos is meaningful only when HasPos is set; its
// coordinate space depends on where the event is observed (global at the
// root, window-local inside a handler).
type Event struct {
	Kind EventKind

	// Pos is the pointer position for mouse and drop events.
	Pos    Point
	HasPos bool

	// Button is the pressed or released button for EventMouseDown/Up.
	Button MouseButton
	// Buttons is the mask of buttons held during an EventMouseMove.
	Buttons ButtonMask

	// Key is the key for EventKeyDown/Up.
	Key ebiten.Key

	// Sender identifies the object a synthetic event originated from: the
	// notifying widget for EventChange/EventClick, the originating
	// [DragSource] for EventDrop.
	Sender any

	// Data is the opaque payload carried by a drag. The toolkit never
	// interprets its contents; drop targets match on its shape.
	Data map[string]any

	// follower links a posted Drop event back to the drag window that
	// produced it, so the manager can resolve it after dispatch.
	follower *dragWindow
}

// clone returns a shallow copy of the event. Data is shared, not copied.
func (e *Event) clone() *Event {
	c := *e
	return &c
}
