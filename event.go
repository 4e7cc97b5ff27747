package hotbind

import (
	"sync"
	"sync/atomic"
	"time"
)

// State distinguishes the two edges of a hotkey trigger.
type State uint8

const (
	Pressed State = iota
	Released
)

func (s State) String() string {
	if s == Released {
		return "released"
	}
	return "pressed"
}

// Event is one hotkey trigger. ID correlates back to the identifier returned
// by Register; the descriptor is deliberately not re-exposed here to keep
// the hot path allocation-free.
type Event struct {
	ID    int
	State State
}

// defaultStreamCap bounds the event buffer. Sixty-four unread triggers is
// far beyond what an interactive consumer accumulates.
const defaultStreamCap = 64

// Stream is the single ordered queue between the native delivery threads and
// application consumers. Producers never block: when the buffer is full the
// oldest unread event is dropped and the overflow counter incremented, so a
// stalled consumer cannot back up the OS's own event dispatch.
type Stream struct {
	ch       chan Event
	overflow atomic.Uint64

	// mu serializes producers so drop-oldest plus send stays one step and
	// cross-producer ordering is preserved.
	mu sync.Mutex
}

func newStream(capacity int) *Stream {
	if capacity <= 0 {
		capacity = defaultStreamCap
	}
	return &Stream{ch: make(chan Event, capacity)}
}

// push appends ev, evicting the oldest unread event if the buffer is full.
func (s *Stream) push(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		select {
		case s.ch <- ev:
			return
		default:
		}
		select {
		case <-s.ch:
			s.overflow.Add(1)
		default:
		}
	}
}

// C exposes the raw channel for select integration. Events read from it are
// consumed exactly once, in OS delivery order.
func (s *Stream) C() <-chan Event {
	return s.ch
}

// Poll returns the next event without blocking. ok is false when the buffer
// is empty.
func (s *Stream) Poll() (ev Event, ok bool) {
	select {
	case ev = <-s.ch:
		return ev, true
	default:
		return Event{}, false
	}
}

// Receive blocks until an event arrives.
func (s *Stream) Receive() Event {
	return <-s.ch
}

// ReceiveTimeout blocks up to d for an event. ok is false on timeout.
func (s *Stream) ReceiveTimeout(d time.Duration) (ev Event, ok bool) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case ev = <-s.ch:
		return ev, true
	case <-timer.C:
		return Event{}, false
	}
}

// Overflow reports how many unread events have been dropped since the
// stream was created.
func (s *Stream) Overflow() uint64 {
	return s.overflow.Load()
}
