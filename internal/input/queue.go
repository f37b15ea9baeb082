// Package input queues player input so the game can apply it once per tick,
// in arrival order.
package input

import (
	"sync"

	"github.com/samdwyer/pelletmaze/internal/entity"
)

// Kind identifies an event type.
type Kind int

const (
	// KindDirection is a key press or release.
	KindDirection Kind = iota
	// KindPointer is a pointer down, move or up.
	KindPointer
	// KindRestart asks for a fresh level.
	KindRestart
	// KindQuit asks the game loop to exit.
	KindQuit
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindDirection:
		return "direction"
	case KindPointer:
		return "pointer"
	case KindRestart:
		return "restart"
	case KindQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is one input event. Fields not used by its Kind are zero.
type Event struct {
	Kind      Kind
	Direction entity.Direction
	Pressed   bool
	Pointer   entity.PointerPress
	X, Y      float64 // Map-local world coordinates
}

// Direction builds a key event.
func Direction(dir entity.Direction, pressed bool) Event {
	return Event{Kind: KindDirection, Direction: dir, Pressed: pressed}
}

// Pointer builds a pointer event.
func Pointer(press entity.PointerPress, x, y float64) Event {
	return Event{Kind: KindPointer, Pointer: press, X: x, Y: y}
}

// Restart builds a restart event.
func Restart() Event {
	return Event{Kind: KindRestart}
}

// Quit builds a quit event.
func Quit() Event {
	return Event{Kind: KindQuit}
}

// Queue is a FIFO of events. Push may be called from any goroutine; Drain is
// called by the tick.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event.
func (q *Queue) Push(ev Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// Drain removes and returns every queued event in arrival order.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	events := q.events
	q.events = nil
	return events
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Clear drops all queued events.
func (q *Queue) Clear() {
	q.mu.Lock()
	q.events = nil
	q.mu.Unlock()
}
