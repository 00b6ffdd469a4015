package core

// Key is a semantic key, abstracted from physical key presses.
// Frontends map their own key codes onto these and drop everything else.
type Key int

const (
	KeyNone    Key = iota
	KeySpace       // Space, Up, W - start a run / jump
	KeyTheme       // T - cycle the color theme
	KeyConcede     // Esc - give up the current run
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeySpace:
		return "Space"
	case KeyTheme:
		return "Theme"
	case KeyConcede:
		return "Concede"
	default:
		return "Unknown"
	}
}

// EventKind distinguishes quit requests from key presses.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventQuit
)

// Event is a single discrete input event.
type Event struct {
	Kind EventKind
	Key  Key // Set for EventKeyDown
}

// KeyDown builds a key-press event.
func KeyDown(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// Quit builds a quit event.
func Quit() Event {
	return Event{Kind: EventQuit}
}

// InputSource is polled once per tick. PollEvents must not block and returns
// every event queued since the previous call.
type InputSource interface {
	PollEvents() []Event
}

// EventQueue is a simple FIFO InputSource. Frontends push events as they
// arrive and the game drains them at the start of each tick.
type EventQueue struct {
	events []Event
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 8)}
}

// Push appends an event.
func (q *EventQueue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// PollEvents returns and clears all pending events.
func (q *EventQueue) PollEvents() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}
