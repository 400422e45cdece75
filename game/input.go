package game

import (
	"fmt"
	"sync"
)

// EventKind identifies a host input event
type EventKind int

const (
	// EventPress is a finger or button going down at X, Y
	EventPress EventKind = iota

	// EventMove is a drag to X, Y while pressed
	EventMove

	// EventRelease is the finger or button going up
	EventRelease

	// EventBack is the back/cancel action
	EventBack

	// EventPause asks to pause, e.g. when the host loses focus
	EventPause

	// EventConfirm triggers the primary button of the current screen
	EventConfirm

	// EventResize carries a new logical screen size in W, H
	EventResize

	// EventRetune carries replacement gameplay constants in Tuning
	EventRetune
)

var eventKindNames = map[EventKind]string{
	EventPress:   "press",
	EventMove:    "move",
	EventRelease: "release",
	EventBack:    "back",
	EventPause:   "pause",
	EventConfirm: "confirm",
	EventResize:  "resize",
	EventRetune:  "retune",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one input intent from a host
type Event struct {
	Kind EventKind

	// X, Y are screen coordinates for press and move
	X, Y float64

	// W, H are the new size for resize
	W, H int

	// Tuning is set for retune
	Tuning *Tuning
}

// Press creates a press event
func Press(x, y float64) Event {
	return Event{Kind: EventPress, X: x, Y: y}
}

// Move creates a drag event
func Move(x, y float64) Event {
	return Event{Kind: EventMove, X: x, Y: y}
}

// Release creates a release event
func Release() Event {
	return Event{Kind: EventRelease}
}

// Resize creates a resize event
func Resize(w, h int) Event {
	return Event{Kind: EventResize, W: w, H: h}
}

// Retune creates an event swapping the gameplay constants
func Retune(t Tuning) Event {
	return Event{Kind: EventRetune, Tuning: &t}
}

// inputQueue hands events from host goroutines to the loop goroutine
type inputQueue struct {
	mu     sync.Mutex
	events []Event
}

func (q *inputQueue) push(ev Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// drain moves the pending events into buf and returns it
func (q *inputQueue) drain(buf []Event) []Event {
	q.mu.Lock()
	buf = append(buf, q.events...)
	clear(q.events)
	q.events = q.events[:0]
	q.mu.Unlock()
	return buf
}
