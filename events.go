package reenact

const (
	ON_REWIND EventType = iota
	ON_EXHAUST
	ON_RESUME
)

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// RewindEvent is sent when a session received a rewind notification from its clock
type RewindEvent struct {
	Session *Session
}

func (e RewindEvent) Type() EventType { return ON_REWIND }

// ExhaustEvent is sent when a session ran past its last frame and holds its pose
type ExhaustEvent struct {
	Session *Session
}

func (e ExhaustEvent) Type() EventType { return ON_EXHAUST }

// ResumeEvent is sent when a held session plays new frames again
type ResumeEvent struct {
	Session *Session
}

func (e ResumeEvent) Type() EventType { return ON_RESUME }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	// Status of each session at the previous step, to detect transitions
	statuses map[*Session]Status
}

func NewEvents() Events {
	return Events{
		listeners: make(map[EventType][]EventListener),
		buffer:    make([]Event, 0, 64),
		statuses:  make(map[*Session]Status),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]EventListener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// processSessions compares each session status with the previous step
func (e *Events) processSessions(sessions []*Session) {
	if e.statuses == nil {
		e.statuses = make(map[*Session]Status)
	}

	for _, session := range sessions {
		if session.takeRewound() {
			e.buffer = append(e.buffer, RewindEvent{Session: session})
		}

		previous := e.statuses[session]
		current := session.Status()

		if previous != Frozen && current == Frozen {
			e.buffer = append(e.buffer, ExhaustEvent{Session: session})
		} else if previous == Frozen && current == Played {
			e.buffer = append(e.buffer, ResumeEvent{Session: session})
		}

		e.statuses[session] = current
	}
}

// forget drops the tracked state of a session
func (e *Events) forget(session *Session) {
	delete(e.statuses, session)
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}
