package reenact

import (
	"errors"
	"fmt"
)

const DEFAULT_WORKERS = 1

var (
	ErrNoPriority = errors.New("reenact: no priority session")
	ErrNoBlend    = errors.New("reenact: session has no blend setting")
)

// Stage plays several independent sessions against a shared clock
type Stage struct {
	// List of all sessions on stage
	Sessions []*Session
	Clock    Clock
	Workers  int

	// Priority is the session the controlling observer steers
	Priority *Session

	Events Events
}

func NewStage(clock Clock) *Stage {
	return &Stage{
		Clock:   clock,
		Workers: DEFAULT_WORKERS,
		Events:  NewEvents(),
	}
}

// AddSession adds a session to the stage, the first one added becomes the priority session
func (s *Stage) AddSession(session *Session) {
	s.Sessions = append(s.Sessions, session)
	if s.Priority == nil {
		s.Priority = session
	}
}

// RemoveSession removes a session from the stage
func (s *Stage) RemoveSession(session *Session) {
	k := -1
	for i, b := range s.Sessions {
		if b == session {
			k = i
			break
		}
	}

	if k != -1 {
		s.Sessions = append(s.Sessions[:k], s.Sessions[k+1:]...)
	}

	if s.Priority == session {
		s.Priority = nil
		if len(s.Sessions) > 0 {
			s.Priority = s.Sessions[0]
		}
	}

	s.Events.forget(session)
}

// SetPriorityBlend sets the blend factor of the priority session
func (s *Stage) SetPriorityBlend(value float64) error {
	if s.Priority == nil {
		return ErrNoPriority
	}
	if s.Priority.Config.Blend == nil {
		return fmt.Errorf("priority session %s: %w", s.Priority.ID, ErrNoBlend)
	}

	return s.Priority.Config.Blend.Set(value)
}

// Step plays every session at the current clock time
func (s *Stage) Step() {
	if s.Clock == nil {
		return
	}

	s.StepAt(s.Clock.Now())
}

// StepAt plays every session at time, then sends the events of the step
func (s *Stage) StepAt(time float64) {
	s.Workers = max(DEFAULT_WORKERS, s.Workers)

	task(s.Workers, s.Sessions, func(session *Session) {
		session.TickAt(time)
	})

	s.Events.processSessions(s.Sessions)
	s.Events.flush()
}
